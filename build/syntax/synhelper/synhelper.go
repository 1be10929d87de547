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

// Package synhelper provides helper functions to build syntax trees programmatically.
package synhelper

import (
	"github.com/gx-org/ivy/build/syntax"
	"github.com/gx-org/ivy/build/types"
)

// Ident returns an identifier.
func Ident(name string) *syntax.Ident {
	return &syntax.Ident{Name: name}
}

// Int returns an integer literal.
func Int(v int64) *syntax.IntLit {
	return &syntax.IntLit{Val: v}
}

// Float returns a float literal.
func Float(v float64) *syntax.FloatLit {
	return &syntax.FloatLit{Val: v}
}

// Bool returns a boolean literal.
func Bool(v bool) *syntax.BoolLit {
	return &syntax.BoolLit{Val: v}
}

// Call returns a call expression.
func Call(name string, args ...syntax.Expr) *syntax.CallExpr {
	return &syntax.CallExpr{Name: name, Args: args}
}

// Binary returns a binary expression.
func Binary(op syntax.BinaryOp, x, y syntax.Expr) *syntax.BinaryExpr {
	return &syntax.BinaryExpr{Op: op, X: x, Y: y}
}

// Unary returns a unary expression.
func Unary(op syntax.UnaryOp, x syntax.Expr) *syntax.UnaryExpr {
	return &syntax.UnaryExpr{Op: op, X: x}
}

// Paren returns an expression between parenthesis.
func Paren(x syntax.Expr) *syntax.ParenExpr {
	return &syntax.ParenExpr{X: x}
}

// Array returns an array literal.
func Array(elems ...syntax.Expr) *syntax.ArrayLit {
	return &syntax.ArrayLit{Elems: elems}
}

// At indexes a named variable with coordinates.
func At(name string, coords ...syntax.Expr) *syntax.IndexExpr {
	return &syntax.IndexExpr{
		X:     Ident(name),
		Index: &syntax.Coords{Exprs: coords},
	}
}

// Component selects a vector component or a buffer extent.
func Component(x syntax.Expr, n int) *syntax.IndexExpr {
	return &syntax.IndexExpr{X: x, Index: &syntax.Component{N: n}}
}

// Space reinterprets a buffer access in a color space.
func Space(x syntax.Expr, cs types.ColorSpace) *syntax.IndexExpr {
	return &syntax.IndexExpr{X: x, Index: &syntax.SpaceIndex{Space: cs}}
}

// Prop reads a property of a buffer access.
func Prop(x syntax.Expr, prop syntax.Prop) *syntax.IndexExpr {
	return &syntax.IndexExpr{X: x, Index: &syntax.PropIndex{Prop: prop}}
}

// Var declares a variable.
func Var(name string, x syntax.Expr) *syntax.VarStmt {
	return &syntax.VarStmt{Name: name, X: x}
}

// Assign assigns a value.
func Assign(target, x syntax.Expr) *syntax.AssignStmt {
	return &syntax.AssignStmt{Target: target, X: x}
}

// CallStmt calls a function as a statement.
func CallStmt(name string, args ...syntax.Expr) *syntax.CallStmt {
	return &syntax.CallStmt{Call: Call(name, args...)}
}

// Return returns a value. A nil value returns nothing.
func Return(x syntax.Expr) *syntax.ReturnStmt {
	return &syntax.ReturnStmt{X: x}
}

// If returns an if statement with a single condition.
func If(cond syntax.Expr, body ...syntax.Stmt) *syntax.IfStmt {
	return &syntax.IfStmt{Conds: []*syntax.CondBlock{{Cond: cond, Body: body}}}
}

// For returns a for loop.
func For(name string, from, to, step syntax.Expr, body ...syntax.Stmt) *syntax.ForStmt {
	return &syntax.ForStmt{Var: name, From: from, To: to, Step: step, Body: body}
}

// Const declares a top-level constant.
func Const(name string, x syntax.Expr) *syntax.ConstDecl {
	return &syntax.ConstDecl{Name: name, X: x}
}

// Func declares a function.
func Func(name string, params []string, body ...syntax.Stmt) *syntax.FuncDecl {
	return &syntax.FuncDecl{Name: name, Params: params, Body: body}
}

// Kernel declares a kernel.
func Kernel(name string, params []string, body ...syntax.Stmt) *syntax.KernelDecl {
	return &syntax.KernelDecl{Name: name, Params: params, Body: body}
}

// Params returns a list of parameter names.
func Params(names ...string) []string {
	return names
}
