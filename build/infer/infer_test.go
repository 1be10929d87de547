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

package infer_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gx-org/ivy/build/infer"
	"github.com/gx-org/ivy/build/syntax"
	sh "github.com/gx-org/ivy/build/syntax/synhelper"
	"github.com/gx-org/ivy/build/types"
)

func TestPromote(t *testing.T) {
	tests := []struct {
		a, b types.Type
		want types.Type
		num  types.Type
	}{
		{a: types.Int(), b: types.Float(), want: types.Float(), num: types.Float()},
		{a: types.Float(), b: types.Int(), want: types.Float(), num: types.Float()},
		{a: types.Int(), b: types.Int(), want: types.Int(), num: types.Int()},
		{a: types.Bool(), b: types.Int(), want: types.Unknown(), num: types.Unknown()},
		{a: types.Vec(), b: types.Float(), want: types.Unknown(), num: types.Unknown()},
		{a: types.Vec(), b: types.Vec(), want: types.Vec(), num: types.Vec()},
		{a: types.Bool(), b: types.Bool(), want: types.Bool(), num: types.Unknown()},
		{
			a:    types.Array(types.FloatKind, false, 3),
			b:    types.Array(types.FloatKind, false, 3),
			want: types.Array(types.FloatKind, false, 3),
			num:  types.Unknown(),
		},
		{
			a:    types.Array(types.FloatKind, false, 3),
			b:    types.Array(types.FloatKind, true, 3),
			want: types.Unknown(),
			num:  types.Unknown(),
		},
	}
	inf := infer.New()
	for i, test := range tests {
		if got := inf.Promote(test.a, test.b); got != test.want {
			t.Errorf("test %d: Promote(%v, %v) = %v but want %v", i, test.a, test.b, got, test.want)
		}
		if got := inf.PromoteNum(test.a, test.b); got != test.num {
			t.Errorf("test %d: PromoteNum(%v, %v) = %v but want %v", i, test.a, test.b, got, test.num)
		}
	}
}

type returnTypes map[string]types.Type

func (r returnTypes) ReturnType(id string) (types.Type, bool) {
	typ, ok := r[id]
	return typ, ok
}

func TestTypeOf(t *testing.T) {
	inf := infer.New()
	inf.BindRoot("k", types.Float())
	inf.Open()
	defer inf.Close()
	inf.Bind("i", types.Int())
	inf.Bind("f", types.Float())
	inf.Bind("b", types.Bool())
	inf.Bind("v", types.Vec())
	inf.Bind("rgb", types.Buffer(3, types.SRGB))
	inf.Bind("mask", types.Buffer(1, types.Y))
	inf.Bind("lut", types.Array(types.FloatKind, false, 16))
	inf.Bind("mat", types.Array(types.IntKind, false, 3, 3))
	inf.SetFunctions(returnTypes{
		types.Mangle("f", []types.Type{types.Int()}): types.Vec(),
	})

	tests := []struct {
		expr syntax.Expr
		want types.Type
	}{
		{expr: sh.Int(1), want: types.Int()},
		{expr: sh.Float(1), want: types.Float()},
		{expr: sh.Bool(true), want: types.Bool()},
		{expr: sh.Ident("k"), want: types.Float()},
		{expr: sh.Ident("undefined"), want: types.Unknown()},
		{expr: sh.Paren(sh.Ident("i")), want: types.Int()},
		{expr: sh.Unary(syntax.Neg, sh.Ident("v")), want: types.Vec()},
		{expr: sh.Unary(syntax.Not, sh.Ident("b")), want: types.Bool()},
		{expr: sh.Binary(syntax.Add, sh.Ident("i"), sh.Ident("i")), want: types.Int()},
		{expr: sh.Binary(syntax.Add, sh.Ident("i"), sh.Ident("f")), want: types.Float()},
		{expr: sh.Binary(syntax.Mul, sh.Ident("v"), sh.Ident("f")), want: types.Vec()},
		{expr: sh.Binary(syntax.Div, sh.Ident("i"), sh.Int(2)), want: types.Float()},
		{expr: sh.Binary(syntax.Pow, sh.Ident("i"), sh.Int(2)), want: types.Float()},
		{expr: sh.Binary(syntax.Less, sh.Ident("i"), sh.Ident("f")), want: types.Bool()},
		{expr: sh.Binary(syntax.Add, sh.Ident("b"), sh.Ident("i")), want: types.Unknown()},
		{expr: sh.Component(sh.Ident("v"), 1), want: types.Float()},
		{expr: sh.Component(sh.Ident("rgb"), 0), want: types.Int()},
		{expr: sh.At("rgb", sh.Ident("i"), sh.Ident("i")), want: types.Vec()},
		{expr: sh.At("mask", sh.Ident("i"), sh.Ident("i")), want: types.Float()},
		{expr: sh.At("rgb", sh.Ident("i"), sh.Ident("i"), sh.Int(1)), want: types.Float()},
		{expr: sh.At("lut", sh.Int(3)), want: types.Float()},
		{expr: sh.At("mat", sh.Int(1), sh.Int(2)), want: types.Int()},
		{expr: sh.At("mat", sh.Int(1)), want: types.Unknown()},
		{expr: sh.Space(sh.At("rgb", sh.Ident("i"), sh.Ident("i")), types.LAB), want: types.Vec()},
		{expr: sh.Space(sh.At("rgb", sh.Ident("i"), sh.Ident("i")), types.L), want: types.Float()},
		{expr: sh.Prop(sh.At("mask", sh.Ident("i")), syntax.PropIdx), want: types.Int()},
		{expr: sh.Prop(sh.At("mask", sh.Ident("i")), syntax.PropPtr), want: types.Unknown()},
		{expr: sh.Array(sh.Int(1), sh.Float(2)), want: types.Array(types.FloatKind, false, 2)},
		{
			expr: sh.Array(sh.Array(sh.Int(1), sh.Int(2)), sh.Array(sh.Int(3), sh.Int(4)), sh.Array(sh.Int(5), sh.Int(6))),
			want: types.Array(types.IntKind, false, 3, 2),
		},
		{expr: sh.Call("int", sh.Ident("f")), want: types.Int()},
		{expr: sh.Call("get_global_id", sh.Int(0)), want: types.Int()},
		{expr: sh.Call("sqrt", sh.Ident("i")), want: types.Float()},
		{expr: sh.Call("max", sh.Ident("i"), sh.Ident("i")), want: types.Int()},
		{expr: sh.Call("clamp", sh.Ident("v"), sh.Float(0), sh.Float(1)), want: types.Vec()},
		{expr: sh.Call("atomic_add", sh.Ident("lut"), sh.Float(1)), want: types.Float()},
		{expr: sh.Call("vec_array", sh.Int(4), sh.Int(2)), want: types.Array(types.VecKind, false, 4, 2)},
		{expr: sh.Call("int_array", sh.Ident("i")), want: types.Unknown()},
		{expr: sh.Call("SRGBtoXYZ", sh.Ident("v")), want: types.Vec()},
		{expr: sh.Call("LABtoL", sh.Ident("v")), want: types.Float()},
		{expr: sh.Call("f", sh.Ident("i")), want: types.Vec()},
		{expr: sh.Call("f", sh.Ident("f")), want: types.Unknown()},
	}
	for i, test := range tests {
		got := inf.TypeOf(test.expr)
		if !cmp.Equal(got, test.want) {
			t.Errorf("test %d: incorrect type:\n%s", i, cmp.Diff(got, test.want))
		}
	}
}

func TestIsBuiltin(t *testing.T) {
	inf := infer.New()
	tests := []struct {
		name string
		want bool
	}{
		{name: "float", want: true},
		{name: "atomic_max", want: true},
		{name: "float_array", want: true},
		{name: "XYZtoLAB", want: true},
		{name: "XYZtoRGB", want: false},
		{name: "toXYZ", want: false},
		{name: "LtoY", want: true},
		{name: "ltoy", want: false},
		{name: "Ytol", want: false},
		{name: "blend", want: false},
	}
	for _, test := range tests {
		if got := inf.IsBuiltin(test.name, nil); got != test.want {
			t.Errorf("IsBuiltin(%q) = %v but want %v", test.name, got, test.want)
		}
	}
	if !infer.IsArrayConstructor("bool_array") || infer.IsArrayConstructor("vec") {
		t.Errorf("incorrect array constructor classification")
	}
}

func TestScopes(t *testing.T) {
	inf := infer.New()
	inf.BindRoot("c", types.Int())
	inf.Open()
	inf.Bind("return", types.Unknown())
	inf.Bind("x", types.Float())

	inf.OpenDetached()
	if _, ok := inf.Lookup("x"); ok {
		t.Errorf("function scope can see the variables of its caller")
	}
	if typ, ok := inf.Lookup("c"); !ok || typ != types.Int() {
		t.Errorf("function scope cannot see the constant c: got %v, %v", typ, ok)
	}
	inf.Bind("return", types.Unknown())
	if err := inf.Overwrite("return", types.Float()); err != nil {
		t.Fatal(err)
	}
	inf.Close()

	if typ, _ := inf.Lookup("return"); typ != types.Unknown() {
		t.Errorf("return type of the kernel has been overwritten by a function: %v", typ)
	}
	inf.Open()
	if err := inf.Overwrite("x", types.Vec()); err != nil {
		t.Fatal(err)
	}
	inf.Close()
	if typ, _ := inf.Lookup("x"); typ != types.Vec() {
		t.Errorf("overwrite in a nested scope did not update the owning scope: got %v", typ)
	}
	if err := inf.Overwrite("undefined", types.Int()); err == nil {
		t.Errorf("overwriting an undefined variable succeeded")
	}
	if got := inf.Depth(); got != 1 {
		t.Errorf("got depth %d but want 1", got)
	}
	inf.Reset()
	if _, ok := inf.Lookup("c"); ok {
		t.Errorf("reset did not clear the root scope")
	}
}
