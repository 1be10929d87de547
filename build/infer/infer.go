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

// Package infer resolves the types of Ivy expressions within nested variable scopes.
//
// Types are computed on demand from literals and from the types already bound
// in the scopes: the program is assumed to have been type-checked before.
package infer

import (
	"github.com/gx-org/ivy/build/syntax"
	"github.com/gx-org/ivy/build/types"
	"github.com/gx-org/ivy/internal/base/scope"
)

// ReturnTypes provides the return types of specialized functions given their mangled identifier.
type ReturnTypes interface {
	ReturnType(id string) (types.Type, bool)
}

// Inference binds variables to types and infers the types of expressions.
type Inference struct {
	scopes    *scope.Stack[types.Type]
	functions ReturnTypes
}

// New returns a new inference with an empty root scope.
func New() *Inference {
	return &Inference{scopes: scope.NewStack[types.Type]()}
}

// Reset the scopes to a single empty root scope.
func (inf *Inference) Reset() {
	inf.scopes.Reset()
}

// Open a scope nested in the current scope.
func (inf *Inference) Open() {
	inf.scopes.Open()
}

// OpenDetached opens a scope nested in the root scope.
func (inf *Inference) OpenDetached() {
	inf.scopes.OpenDetached()
}

// Close the innermost scope.
func (inf *Inference) Close() {
	inf.scopes.Close()
}

// Depth returns the number of open scopes above the root scope.
func (inf *Inference) Depth() int {
	return inf.scopes.Depth()
}

// Bind a name to a type in the current scope.
func (inf *Inference) Bind(name string, typ types.Type) {
	inf.scopes.Define(name, typ)
}

// BindRoot binds a name to a type in the root scope.
func (inf *Inference) BindRoot(name string, typ types.Type) {
	inf.scopes.Root().Define(name, typ)
}

// Lookup returns the type bound to a name.
func (inf *Inference) Lookup(name string) (types.Type, bool) {
	return inf.scopes.Find(name)
}

// Overwrite rebinds a name in the nearest scope owning it.
func (inf *Inference) Overwrite(name string, typ types.Type) error {
	return inf.scopes.Assign(name, typ)
}

// SetFunctions sets the source of return types of user functions.
func (inf *Inference) SetFunctions(functions ReturnTypes) {
	inf.functions = functions
}

// Promote returns the common type of two types,
// or Unknown if the types are incompatible.
// Int is promoted to Float. Other types are only compatible with themselves.
func (inf *Inference) Promote(a, b types.Type) types.Type {
	if a == b {
		return a
	}
	if isIntOrFloat(a) && isIntOrFloat(b) {
		return types.Float()
	}
	return types.Unknown()
}

// PromoteNum promotes two numerical types.
// Vec is only compatible with Vec.
func (inf *Inference) PromoteNum(a, b types.Type) types.Type {
	if !isNumber(a) || !isNumber(b) {
		return types.Unknown()
	}
	return inf.Promote(a, b)
}

func isIntOrFloat(t types.Type) bool {
	return t.Kind == types.IntKind || t.Kind == types.FloatKind
}

func isNumber(t types.Type) bool {
	return isIntOrFloat(t) || t.Kind == types.VecKind
}

// arith returns the type of an arithmetic operation.
// Unlike Promote, vectors can be combined with scalars.
func (inf *Inference) arith(a, b types.Type) types.Type {
	if !isNumber(a) || !isNumber(b) {
		return types.Unknown()
	}
	if a.Kind == types.VecKind || b.Kind == types.VecKind {
		return types.Vec()
	}
	return inf.Promote(a, b)
}

// TypeOf returns the type of an expression.
// Unknown is returned if the type cannot be inferred.
func (inf *Inference) TypeOf(expr syntax.Expr) types.Type {
	switch x := expr.(type) {
	case *syntax.BoolLit:
		return types.Bool()
	case *syntax.IntLit:
		return types.Int()
	case *syntax.FloatLit:
		return types.Float()
	case *syntax.Ident:
		typ, _ := inf.Lookup(x.Name)
		return typ
	case *syntax.ParenExpr:
		return inf.TypeOf(x.X)
	case *syntax.UnaryExpr:
		if x.Op == syntax.Not {
			return types.Bool()
		}
		return inf.TypeOf(x.X)
	case *syntax.BinaryExpr:
		return inf.binaryType(x)
	case *syntax.IndexExpr:
		return inf.indexType(x)
	case *syntax.ArrayLit:
		return inf.arrayLitType(x)
	case *syntax.CallExpr:
		return inf.callType(x)
	}
	return types.Unknown()
}

func (inf *Inference) binaryType(x *syntax.BinaryExpr) types.Type {
	if x.Op.IsComparison() || x.Op.IsLogical() {
		return types.Bool()
	}
	left, right := inf.TypeOf(x.X), inf.TypeOf(x.Y)
	switch x.Op {
	case syntax.Div:
		typ := inf.arith(left, right)
		if typ.Kind == types.IntKind {
			return types.Float()
		}
		return typ
	case syntax.Pow:
		if left.Kind == types.VecKind {
			return types.Vec()
		}
		if !isIntOrFloat(left) || !isNumber(right) {
			return types.Unknown()
		}
		return types.Float()
	}
	return inf.arith(left, right)
}

func (inf *Inference) indexType(x *syntax.IndexExpr) types.Type {
	switch index := x.Index.(type) {
	case *syntax.Component:
		switch inf.TypeOf(x.X).Kind {
		case types.VecKind:
			return types.Float()
		case types.BufferKind:
			return types.Int()
		}
	case *syntax.Coords:
		typ := inf.TypeOf(x.X)
		if typ.IsArrayOfRank(len(index.Exprs)) {
			return typ.Elem()
		}
		if typ.Kind != types.BufferKind || len(index.Exprs) > 3 {
			return types.Unknown()
		}
		if len(index.Exprs) == 2 && typ.Channels == 3 {
			return types.Vec()
		}
		return types.Float()
	case *syntax.SpaceIndex:
		if inf.bufferAccess(x.X, 2) == nil {
			return types.Unknown()
		}
		if index.Space.Channels() == 1 {
			return types.Float()
		}
		return types.Vec()
	case *syntax.PropIndex:
		if inf.bufferAccess(x.X, 0) == nil {
			return types.Unknown()
		}
		if index.Prop == syntax.PropInt || index.Prop == syntax.PropIdx {
			return types.Int()
		}
	}
	return types.Unknown()
}

// bufferAccess returns the coordinates of an expression indexing a buffer variable.
// If rank is not 0, the number of coordinates needs to match.
func (inf *Inference) bufferAccess(expr syntax.Expr, rank int) *syntax.Coords {
	access, ok := expr.(*syntax.IndexExpr)
	if !ok {
		return nil
	}
	coords, ok := access.Index.(*syntax.Coords)
	if !ok || (rank > 0 && len(coords.Exprs) != rank) {
		return nil
	}
	if inf.TypeOf(access.X).Kind != types.BufferKind {
		return nil
	}
	return coords
}

func (inf *Inference) arrayLitType(x *syntax.ArrayLit) types.Type {
	if len(x.Elems) == 0 {
		return types.Unknown()
	}
	elem := inf.TypeOf(x.Elems[0])
	for _, e := range x.Elems[1:] {
		elem = inf.Promote(elem, inf.TypeOf(e))
	}
	switch {
	case elem.Kind.IsScalar():
		return types.Array(elem.Kind, false, len(x.Elems))
	case elem.Kind.IsArray() && elem.Rank < types.MaxRank:
		dims := append([]int{len(x.Elems)}, elem.AxisLengths()...)
		return types.Array(elem.Elem().Kind, false, dims...)
	}
	return types.Unknown()
}

func (inf *Inference) argTypes(args []syntax.Expr) []types.Type {
	typs := make([]types.Type, len(args))
	for i, arg := range args {
		typs[i] = inf.TypeOf(arg)
	}
	return typs
}

func (inf *Inference) callType(x *syntax.CallExpr) types.Type {
	if b, ok := lookupBuiltin(x.Name); ok {
		return b.result(inf, x.Args)
	}
	if inf.functions == nil {
		return types.Unknown()
	}
	ret, ok := inf.functions.ReturnType(types.Mangle(x.Name, inf.argTypes(x.Args)))
	if !ok {
		return types.Unknown()
	}
	return ret
}
