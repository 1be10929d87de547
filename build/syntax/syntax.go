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

// Package syntax defines the tree of an Ivy program as produced by the parser.
//
// The tree is scoped but not fully typed: types are resolved by the
// inference while the code generator walks the tree.
package syntax

import (
	"go/token"

	"github.com/gx-org/ivy/build/types"
)

type (
	// Node in the tree.
	Node interface {
		Pos() token.Pos
	}

	// Expr is an expression.
	Expr interface {
		Node
		expr()
	}

	// Stmt is a statement in the body of a function or a kernel.
	Stmt interface {
		Node
		stmt()
	}

	// Decl is a top-level declaration.
	Decl interface {
		Node
		DeclName() string
		decl()
	}

	// Index is the suffix of an index expression.
	Index interface {
		Node
		index()
	}
)

// Src is the position of a node in the source.
type Src struct {
	At token.Pos
}

// Pos returns the position of the node.
func (s Src) Pos() token.Pos {
	return s.At
}

// ----------------------------------------------------------------------------
// Declarations.

type (
	// ConstDecl declares a constant shared by all the kernels.
	ConstDecl struct {
		Src
		Name string
		X    Expr
	}

	// FuncDecl declares a function. Parameters have no types: a function
	// is specialized for every list of argument types it is called with.
	FuncDecl struct {
		Src
		Name   string
		Params []string
		Body   []Stmt
	}

	// KernelDecl declares a kernel, that is an entry point of a program.
	KernelDecl struct {
		Src
		Name   string
		Params []string
		Body   []Stmt
	}
)

// DeclName returns the name of the constant.
func (d *ConstDecl) DeclName() string { return d.Name }

// DeclName returns the name of the function.
func (d *FuncDecl) DeclName() string { return d.Name }

// DeclName returns the name of the kernel.
func (d *KernelDecl) DeclName() string { return d.Name }

func (*ConstDecl) decl()  {}
func (*FuncDecl) decl()   {}
func (*KernelDecl) decl() {}

// ----------------------------------------------------------------------------
// Statements.

type (
	// VarStmt declares a variable.
	VarStmt struct {
		Src
		Name string
		X    Expr
	}

	// ConstStmt declares a local constant.
	ConstStmt struct {
		Src
		Name string
		X    Expr
	}

	// AssignStmt assigns a value to an identifier or to an index expression.
	AssignStmt struct {
		Src
		Target Expr
		X      Expr
	}

	// CallStmt calls a function and discards its result.
	CallStmt struct {
		Src
		Call *CallExpr
	}

	// ForStmt is a counted loop. Step is nil when omitted.
	ForStmt struct {
		Src
		Var            string
		From, To, Step Expr
		Body           []Stmt
	}

	// CondBlock is a condition and the statements executed if it holds.
	CondBlock struct {
		Src
		Cond Expr
		Body []Stmt
	}

	// IfStmt is a chain of if/else if/else blocks.
	IfStmt struct {
		Src
		// Conds has at least one element.
		Conds []*CondBlock
		Else  []Stmt
	}

	// WhileStmt is a while loop.
	WhileStmt struct {
		Src
		Cond Expr
		Body []Stmt
	}

	// ReturnStmt returns from a function. X is nil for a return without value.
	ReturnStmt struct {
		Src
		X Expr
	}

	// ContinueStmt continues a loop.
	ContinueStmt struct {
		Src
	}

	// BreakStmt breaks a loop.
	BreakStmt struct {
		Src
	}

	// CommentStmt is a comment kept in the generated code.
	CommentStmt struct {
		Src
		Text string
	}
)

func (*VarStmt) stmt()      {}
func (*ConstStmt) stmt()    {}
func (*AssignStmt) stmt()   {}
func (*CallStmt) stmt()     {}
func (*ForStmt) stmt()      {}
func (*IfStmt) stmt()       {}
func (*WhileStmt) stmt()    {}
func (*ReturnStmt) stmt()   {}
func (*ContinueStmt) stmt() {}
func (*BreakStmt) stmt()    {}
func (*CommentStmt) stmt()  {}

// ----------------------------------------------------------------------------
// Expressions.

type (
	// BoolLit is a boolean literal.
	BoolLit struct {
		Src
		Val bool
	}

	// IntLit is an integer literal.
	IntLit struct {
		Src
		Val int64
	}

	// FloatLit is a floating point literal.
	FloatLit struct {
		Src
		Val float64
	}

	// Ident references a variable, a parameter, or a constant.
	Ident struct {
		Src
		Name string
	}

	// UnaryExpr applies a unary operator.
	UnaryExpr struct {
		Src
		Op UnaryOp
		X  Expr
	}

	// BinaryExpr applies a binary operator.
	BinaryExpr struct {
		Src
		Op   BinaryOp
		X, Y Expr
	}

	// ParenExpr is an expression between parenthesis.
	ParenExpr struct {
		Src
		X Expr
	}

	// IndexExpr indexes an expression.
	IndexExpr struct {
		Src
		X     Expr
		Index Index
	}

	// ArrayLit is an array literal.
	ArrayLit struct {
		Src
		Elems []Expr
	}

	// CallExpr calls a builtin or a user function.
	CallExpr struct {
		Src
		Name string
		Args []Expr
	}
)

func (*BoolLit) expr()    {}
func (*IntLit) expr()     {}
func (*FloatLit) expr()   {}
func (*Ident) expr()      {}
func (*UnaryExpr) expr()  {}
func (*BinaryExpr) expr() {}
func (*ParenExpr) expr()  {}
func (*IndexExpr) expr()  {}
func (*ArrayLit) expr()   {}
func (*CallExpr) expr()   {}

// ----------------------------------------------------------------------------
// Indices.

type (
	// Component selects the x, y, or z component of a vector,
	// or an extent of a buffer.
	Component struct {
		Src
		N int
	}

	// Coords indexes an array or a buffer with 1 to 4 coordinates.
	Coords struct {
		Src
		Exprs []Expr
	}

	// SpaceIndex reinterprets a 2D buffer access in a color space.
	SpaceIndex struct {
		Src
		Space types.ColorSpace
	}

	// PropIndex reads a low-level property of a buffer access.
	PropIndex struct {
		Src
		Prop Prop
	}
)

func (*Component) index()  {}
func (*Coords) index()     {}
func (*SpaceIndex) index() {}
func (*PropIndex) index()  {}

// Prop is a low-level property of a buffer element.
type Prop int

// Buffer properties.
const (
	// PropInt reads the element as an integer word.
	PropInt Prop = iota
	// PropIdx is the flat index of the element.
	PropIdx
	// PropPtr is the address of the element.
	PropPtr
	// PropIntPtr is the address of the element as a pointer to integers.
	PropIntPtr
)

// String returns the name of the property in the source.
func (p Prop) String() string {
	switch p {
	case PropInt:
		return "int"
	case PropIdx:
		return "idx"
	case PropPtr:
		return "ptr"
	case PropIntPtr:
		return "intptr"
	}
	return "invalid"
}
