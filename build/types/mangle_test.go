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
	"regexp"
	"testing"

	"github.com/gx-org/ivy/build/types"
)

func TestMangle(t *testing.T) {
	tests := []struct {
		name string
		args []types.Type
		want string
	}{
		{
			name: "f",
			want: "___0____f",
		},
		{
			name: "f",
			args: []types.Type{types.Int(), types.Float()},
			want: "___2_I_F____f",
		},
		{
			name: "g",
			args: []types.Type{types.Bool(), types.Vec()},
			want: "___2_B_V____g",
		},
		{
			name: "h",
			args: []types.Type{types.Array(types.FloatKind, false, 3)},
			want: "___1_FA1_3_0_0_0____h",
		},
		{
			name: "h",
			args: []types.Type{types.Array(types.VecKind, true, 2, 5)},
			want: "___1_LVA2_2_5_0_0____h",
		},
		{
			name: "k",
			args: []types.Type{types.Buffer(3, types.XYZ), types.Buffer(1, types.Y)},
			want: "___2_BUF3XYZ_BUF1Y____k",
		},
	}
	for i, test := range tests {
		got := types.Mangle(test.name, test.args)
		if got != test.want {
			t.Errorf("test %d: got %s but want %s", i, got, test.want)
		}
	}
}

func TestMangleDistinct(t *testing.T) {
	vectors := [][]types.Type{
		{},
		{types.Int()},
		{types.Float()},
		{types.Bool()},
		{types.Vec()},
		{types.Int(), types.Int()},
		{types.Array(types.IntKind, false, 3)},
		{types.Array(types.IntKind, true, 3)},
		{types.Array(types.IntKind, false, 4)},
		{types.Array(types.IntKind, false, 3, 1)},
		{types.Array(types.FloatKind, false, 3)},
		{types.Array(types.BoolKind, false, 3)},
		{types.Array(types.VecKind, false, 3)},
		{types.Array(types.FloatKind, false, 1, 2, 3, 4)},
		{types.Array(types.FloatKind, false, 1, 2, 3, 5)},
		{types.Buffer(1, types.SRGB)},
		{types.Buffer(3, types.SRGB)},
		{types.Buffer(3, types.LRGB)},
		{types.Buffer(3, types.LAB)},
		{types.Buffer(3, types.LCH)},
		{types.Buffer(1, types.L)},
		{types.Buffer(1, types.Y)},
	}
	seen := make(map[string]int)
	valid := regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	for i, args := range vectors {
		id := types.Mangle("f", args)
		if again := types.Mangle("f", args); again != id {
			t.Errorf("vector %d: mangling is not deterministic: %s != %s", i, id, again)
		}
		if !valid.MatchString(id) {
			t.Errorf("vector %d: %s is not a valid identifier", i, id)
		}
		if prev, ok := seen[id]; ok {
			t.Errorf("vector %d and %d share the identifier %s", prev, i, id)
		}
		seen[id] = i
	}
}

func TestArrayNormalizesDims(t *testing.T) {
	a := types.Array(types.IntKind, false, 7)
	b := types.Type{Kind: types.IntArrayKind, Rank: 1, Dims: [4]int{7}}
	if a != b {
		t.Errorf("got %v but want %v", a, b)
	}
	if got := types.Array(types.IntKind, false); !got.IsUnknown() {
		t.Errorf("array with no dimension: got %v but want unknown", got)
	}
	if got := types.Array(types.BufferKind, false, 1); !got.IsUnknown() {
		t.Errorf("array of buffers: got %v but want unknown", got)
	}
}

func TestFuncKey(t *testing.T) {
	if got, want := types.FuncKey("blend", 3), "___3_blend"; got != want {
		t.Errorf("got %s but want %s", got, want)
	}
}
