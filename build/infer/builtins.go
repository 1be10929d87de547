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

package infer

import (
	"github.com/gx-org/ivy/build/syntax"
	"github.com/gx-org/ivy/build/types"
)

type resultFunc func(inf *Inference, args []syntax.Expr) types.Type

// builtin is a function provided by the runtime support of the target.
type builtin struct {
	result resultFunc
}

func fixed(typ types.Type) builtin {
	return builtin{result: func(*Inference, []syntax.Expr) types.Type {
		return typ
	}}
}

// sameAsArgs returns the arithmetic promotion of all the arguments.
func sameAsArgs(inf *Inference, args []syntax.Expr) types.Type {
	if len(args) == 0 {
		return types.Unknown()
	}
	typ := inf.TypeOf(args[0])
	for _, arg := range args[1:] {
		typ = inf.arith(typ, inf.TypeOf(arg))
	}
	return typ
}

// floating is like sameAsArgs but integers are promoted to floats.
func floating(inf *Inference, args []syntax.Expr) types.Type {
	typ := sameAsArgs(inf, args)
	if typ.Kind == types.IntKind {
		return types.Float()
	}
	return typ
}

// elemOfFirst returns the type of the elements of the array passed as the first argument.
func elemOfFirst(inf *Inference, args []syntax.Expr) types.Type {
	if len(args) == 0 {
		return types.Unknown()
	}
	return inf.TypeOf(args[0]).Elem()
}

// constructor builds an array type from literal extents.
func constructor(elem types.Kind) builtin {
	return builtin{result: func(inf *Inference, args []syntax.Expr) types.Type {
		dims := make([]int, len(args))
		for i, arg := range args {
			lit, ok := arg.(*syntax.IntLit)
			if !ok || lit.Val <= 0 {
				return types.Unknown()
			}
			dims[i] = int(lit.Val)
		}
		return types.Array(elem, false, dims...)
	}}
}

// builtins is filled by init: the result functions of the builtins
// infer the types of their arguments, which may call builtins.
var builtins map[string]builtin

func init() {
	builtins = map[string]builtin{
		"bool":          fixed(types.Bool()),
		"int":           fixed(types.Int()),
		"float":         fixed(types.Float()),
		"vec":           fixed(types.Vec()),
		"get_global_id": fixed(types.Int()),

		"dot":       fixed(types.Float()),
		"length":    fixed(types.Float()),
		"distance":  fixed(types.Float()),
		"cross":     fixed(types.Vec()),
		"normalize": fixed(types.Vec()),

		"abs":   {result: sameAsArgs},
		"min":   {result: sameAsArgs},
		"max":   {result: sameAsArgs},
		"clamp": {result: sameAsArgs},
		"sign":  {result: sameAsArgs},

		"sqrt":  {result: floating},
		"exp":   {result: floating},
		"log":   {result: floating},
		"log2":  {result: floating},
		"sin":   {result: floating},
		"cos":   {result: floating},
		"tan":   {result: floating},
		"asin":  {result: floating},
		"acos":  {result: floating},
		"atan":  {result: floating},
		"atan2": {result: floating},
		"pow":   {result: floating},
		"pown":  {result: floating},
		"floor": {result: floating},
		"ceil":  {result: floating},
		"round": {result: floating},
		"fract": {result: floating},
		"mix":   {result: floating},

		"atomic_add":     {result: elemOfFirst},
		"atomic_sub":     {result: elemOfFirst},
		"atomic_inc":     {result: elemOfFirst},
		"atomic_dec":     {result: elemOfFirst},
		"atomic_min":     {result: elemOfFirst},
		"atomic_max":     {result: elemOfFirst},
		"atomic_xchg":    {result: elemOfFirst},
		"atomic_cmpxchg": {result: elemOfFirst},

		"array":       constructor(types.FloatKind),
		"bool_array":  constructor(types.BoolKind),
		"int_array":   constructor(types.IntKind),
		"float_array": constructor(types.FloatKind),
		"vec_array":   constructor(types.VecKind),
	}
}

// conversion returns the builtin converting between two color spaces,
// for example SRGBtoXYZ.
func conversion(name string) (builtin, bool) {
	_, target, ok := types.ParseConversion(name)
	if !ok {
		return builtin{}, false
	}
	if target.Channels() == 1 {
		return fixed(types.Float()), true
	}
	return fixed(types.Vec()), true
}

func lookupBuiltin(name string) (builtin, bool) {
	if b, ok := builtins[name]; ok {
		return b, true
	}
	return conversion(name)
}

// IsBuiltin returns true if a call to a function with the given name
// and arguments is provided by the runtime support instead of the program.
func (inf *Inference) IsBuiltin(name string, args []syntax.Expr) bool {
	_, ok := lookupBuiltin(name)
	return ok
}

// IsArrayConstructor returns true if the function builds an array
// without initializing it.
func IsArrayConstructor(name string) bool {
	switch name {
	case "array", "bool_array", "int_array", "float_array", "vec_array":
		return true
	}
	return false
}
