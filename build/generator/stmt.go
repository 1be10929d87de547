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

package generator

import (
	"fmt"
	"strings"

	"github.com/gx-org/ivy/build/fmterr"
	"github.com/gx-org/ivy/build/infer"
	"github.com/gx-org/ivy/build/syntax"
	"github.com/gx-org/ivy/build/types"
)

func (g *Generator) emitBlock(stmts []syntax.Stmt) string {
	var s strings.Builder
	for _, stmt := range stmts {
		s.WriteString(g.emitStmt(stmt))
	}
	return s.String()
}

// emitScopedBlock emits statements in a new nested scope.
func (g *Generator) emitScopedBlock(stmts []syntax.Stmt) string {
	g.inf.Open()
	defer g.inf.Close()
	return g.emitBlock(stmts)
}

func (g *Generator) emitStmt(stmt syntax.Stmt) string {
	switch s := stmt.(type) {
	case *syntax.VarStmt:
		return g.emitVar(s, s.Name, s.X)
	case *syntax.ConstStmt:
		return "const " + g.emitVar(s, s.Name, s.X)
	case *syntax.AssignStmt:
		return g.emitAssign(s)
	case *syntax.CallStmt:
		return g.emitCall(s.Call) + ";\n"
	case *syntax.ForStmt:
		return g.emitFor(s)
	case *syntax.IfStmt:
		return g.emitIf(s)
	case *syntax.WhileStmt:
		return g.emitWhile(s)
	case *syntax.ReturnStmt:
		return g.emitReturn(s)
	case *syntax.ContinueStmt:
		return "continue;\n"
	case *syntax.BreakStmt:
		return "break;\n"
	case *syntax.CommentStmt:
		return "//" + s.Text + "\n"
	}
	return g.failStmt(stmt, fmterr.Unsupported, "statement %T not supported", stmt)
}

// emitVar declares a variable. Its type is inferred after its initializer
// has been generated, such that the return types of the functions it calls are known.
func (g *Generator) emitVar(node syntax.Node, name string, x syntax.Expr) string {
	var init string
	switch x := x.(type) {
	case *syntax.CallExpr:
		if !infer.IsArrayConstructor(x.Name) {
			init = g.emitExpr(x)
		}
	default:
		init = g.emitExpr(x)
	}
	typ := g.inf.TypeOf(x)
	g.inf.Bind(name, typ)

	target, ok := typ.TargetType()
	switch {
	case typ.IsUnknown():
		return g.failStmt(node, fmterr.UnknownType, "cannot infer the type of %s", name)
	case !ok:
		return g.failStmt(node, fmterr.Unsupported, "variable %s of type %s not supported", name, typ)
	case typ.Kind.IsScalar():
		return fmt.Sprintf("%s %s = %s;\n", target, name, init)
	}
	if init != "" {
		if _, isLit := x.(*syntax.ArrayLit); !isLit {
			return g.failStmt(node, fmterr.Unsupported, "array %s can only be initialized with an array literal", name)
		}
		init = " = " + init
	}
	return fmt.Sprintf("%s %s %s%s;\n", target, name, arrayDims(typ), init)
}

var unitSteps = map[types.Kind]syntax.Expr{
	types.IntKind:   &syntax.IntLit{Val: 1},
	types.FloatKind: &syntax.FloatLit{Val: 1},
	types.VecKind:   &syntax.CallExpr{Name: "vec", Args: []syntax.Expr{&syntax.FloatLit{Val: 1}}},
}

func (g *Generator) emitFor(s *syntax.ForStmt) string {
	g.inf.Open()
	defer g.inf.Close()

	from := g.emitExpr(s.From)
	to := g.emitExpr(s.To)
	typ := g.inf.PromoteNum(g.inf.TypeOf(s.From), g.inf.TypeOf(s.To))
	var head string
	if s.Step != nil {
		step := g.emitExpr(s.Step)
		typ = g.inf.PromoteNum(typ, g.inf.TypeOf(s.Step))
		if typ.Kind != types.IntKind && typ.Kind != types.FloatKind {
			return g.failStmt(s, fmterr.Unsupported, "loop variable %s of type %s cannot have a step", s.Var, typ)
		}
		target, _ := typ.TargetType()
		head = fmt.Sprintf("for (%[1]s %[2]s = %[3]s; (%[5]s>0)?(%[2]s<=%[4]s):(%[2]s>=%[4]s); %[2]s += %[5]s) {\n", target, s.Var, from, to, step)
	} else {
		unit, ok := unitSteps[typ.Kind]
		if !ok {
			return g.failStmt(s, fmterr.Unsupported, "loop variable %s of type %s not supported", s.Var, typ)
		}
		target, _ := typ.TargetType()
		head = fmt.Sprintf("for (%[1]s %[2]s = %[3]s; %[2]s<=%[4]s; %[2]s += %[5]s) {\n", target, s.Var, from, to, g.emitExpr(unit))
	}
	g.inf.Bind(s.Var, typ)
	return head + g.emitBlock(s.Body) + "}\n"
}

// checkBool reports an internal error if a condition is not a boolean.
// The program is expected to have been type checked.
func (g *Generator) checkBool(cond syntax.Expr) {
	if typ := g.inf.TypeOf(cond); typ.Kind != types.BoolKind {
		g.internal(cond, "condition of type %s instead of bool", typ)
	}
}

func (g *Generator) emitIf(s *syntax.IfStmt) string {
	if len(s.Conds) == 0 {
		g.internal(s, "if statement without condition")
		return errorMarker + "\n"
	}
	var b strings.Builder
	for i, block := range s.Conds {
		cond := g.emitExpr(block.Cond)
		g.checkBool(block.Cond)
		if i == 0 {
			fmt.Fprintf(&b, "if (%s) {\n", cond)
		} else {
			fmt.Fprintf(&b, "} else if (%s) {\n", cond)
		}
		b.WriteString(g.emitScopedBlock(block.Body))
	}
	if len(s.Else) > 0 {
		b.WriteString("} else {\n")
		b.WriteString(g.emitScopedBlock(s.Else))
	}
	b.WriteString("}\n")
	return b.String()
}

func (g *Generator) emitWhile(s *syntax.WhileStmt) string {
	cond := g.emitExpr(s.Cond)
	g.checkBool(s.Cond)
	return fmt.Sprintf("while (%s) {\n%s}\n", cond, g.emitScopedBlock(s.Body))
}

// emitReturn updates the return type of the current function:
// the type of the returned value is promoted with the type of the previous returns.
func (g *Generator) emitReturn(s *syntax.ReturnStmt) string {
	ret, _ := g.inf.Lookup(returnName)
	if s.X == nil {
		if !ret.IsUnknown() {
			return g.failStmt(s, fmterr.InvalidReturn, "missing return value of type %s", ret)
		}
		return "return;\n"
	}
	x := g.emitExpr(s.X)
	typ := g.inf.TypeOf(s.X)
	if typ.IsUnknown() {
		return g.failStmt(s, fmterr.UnknownType, "cannot infer the type of the returned value")
	}
	if !ret.IsUnknown() {
		if typ = g.inf.Promote(typ, ret); typ.IsUnknown() {
			return g.failStmt(s, fmterr.InvalidReturn, "cannot return a value of type %s in a function returning %s", g.inf.TypeOf(s.X), ret)
		}
	}
	if err := g.inf.Overwrite(returnName, typ); err != nil {
		g.internal(s, "%v", err)
	}
	if fn, ok := g.pending[g.current]; ok {
		fn.ret = typ
	}
	return "return " + x + ";\n"
}
