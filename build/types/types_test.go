// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package types_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gx-org/backend/dtype"
	"github.com/gx-org/ivy/build/types"
)

func TestShape(t *testing.T) {
	tests := []struct {
		typ       types.Type
		wantDType dtype.DataType
		wantAxes  []int
	}{
		{
			typ:       types.Int(),
			wantDType: dtype.Int32,
		},
		{
			typ:       types.Vec(),
			wantDType: dtype.Float32,
			wantAxes:  []int{3},
		},
		{
			typ:       types.Array(types.BoolKind, false, 2, 3),
			wantDType: dtype.Bool,
			wantAxes:  []int{2, 3},
		},
		{
			typ:       types.Array(types.VecKind, true, 4),
			wantDType: dtype.Float32,
			wantAxes:  []int{4, 3},
		},
		{
			typ:       types.Buffer(3, types.SRGB),
			wantDType: dtype.Float32,
		},
	}
	for i, test := range tests {
		sh := test.typ.Shape()
		if sh.DType != test.wantDType {
			t.Errorf("test %d: %v: got data type %s but want %s", i, test.typ, sh.DType.String(), test.wantDType.String())
		}
		if !cmp.Equal(sh.AxisLengths, test.wantAxes) {
			t.Errorf("test %d: %v: got axes %v but want %v", i, test.typ, sh.AxisLengths, test.wantAxes)
		}
	}
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ  types.Type
		want string
	}{
		{typ: types.Unknown(), want: "unknown"},
		{typ: types.Float(), want: "float"},
		{typ: types.Array(types.IntKind, false, 2, 3), want: "int_array[2][3]"},
		{typ: types.Array(types.FloatKind, true, 8), want: "local float_array[8]"},
		{typ: types.Buffer(3, types.LAB), want: "buffer<3,LAB>"},
	}
	for i, test := range tests {
		if got := test.typ.String(); got != test.want {
			t.Errorf("test %d: got %q but want %q", i, got, test.want)
		}
	}
}

func TestTargetType(t *testing.T) {
	tests := []struct {
		typ     types.Type
		want    string
		wantRet string
	}{
		{typ: types.Unknown(), want: "", wantRet: "void"},
		{typ: types.Bool(), want: "bool", wantRet: "bool"},
		{typ: types.Int(), want: "int", wantRet: "int"},
		{typ: types.Vec(), want: "float<3>", wantRet: "float<3>"},
		{typ: types.Array(types.FloatKind, false, 4), want: "float", wantRet: ""},
		{typ: types.Buffer(1, types.Y), want: "", wantRet: ""},
	}
	for i, test := range tests {
		got, _ := test.typ.TargetType()
		if got != test.want {
			t.Errorf("test %d: target type of %v: got %q but want %q", i, test.typ, got, test.want)
		}
		gotRet, _ := test.typ.ReturnType()
		if gotRet != test.wantRet {
			t.Errorf("test %d: return type of %v: got %q but want %q", i, test.typ, gotRet, test.wantRet)
		}
	}
}

func TestColorSpace(t *testing.T) {
	cs, ok := types.ColorSpaceFromString("srgb")
	if !ok || cs != types.SRGB {
		t.Errorf("got %v, %v but want SRGB, true", cs, ok)
	}
	if _, ok := types.ColorSpaceFromString("cmyk"); ok {
		t.Errorf("cmyk should not be a color space")
	}
	if got, want := types.Conversion(types.SRGB, types.XYZ), "SRGBtoXYZ"; got != want {
		t.Errorf("got %s but want %s", got, want)
	}
	if types.Y.Channels() != 1 || types.LAB.Channels() != 3 {
		t.Errorf("incorrect number of channels")
	}
}

func TestParseConversion(t *testing.T) {
	tests := []struct {
		name     string
		from, to types.ColorSpace
		ok       bool
	}{
		{name: "SRGBtoXYZ", from: types.SRGB, to: types.XYZ, ok: true},
		{name: "LABtoL", from: types.LAB, to: types.L, ok: true},
		{name: "LtoY", from: types.L, to: types.Y, ok: true},
		{name: "ltoy"},
		{name: "Ytol"},
		{name: "srgbtoXYZ"},
		{name: "SRGBtoXYZW"},
		{name: "toXYZ"},
	}
	for _, test := range tests {
		from, to, ok := types.ParseConversion(test.name)
		if ok != test.ok || from != test.from || to != test.to {
			t.Errorf("ParseConversion(%q) = %v, %v, %v but want %v, %v, %v", test.name, from, to, ok, test.from, test.to, test.ok)
		}
	}
}
