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
	"strconv"
	"strings"

	"github.com/gx-org/ivy/build/fmterr"
	"github.com/gx-org/ivy/build/syntax"
	"github.com/gx-org/ivy/build/types"
)

func (g *Generator) emitExpr(expr syntax.Expr) string {
	switch x := expr.(type) {
	case *syntax.BoolLit:
		return strconv.FormatBool(x.Val)
	case *syntax.IntLit:
		return strconv.FormatInt(x.Val, 10)
	case *syntax.FloatLit:
		return floatLit(x.Val)
	case *syntax.Ident:
		return x.Name
	case *syntax.ParenExpr:
		return "(" + g.emitExpr(x.X) + ")"
	case *syntax.UnaryExpr:
		return g.emitUnary(x)
	case *syntax.BinaryExpr:
		return g.emitBinary(x)
	case *syntax.IndexExpr:
		return g.emitIndex(x)
	case *syntax.ArrayLit:
		elems := make([]string, len(x.Elems))
		for i, elem := range x.Elems {
			elems[i] = g.emitExpr(elem)
		}
		return "{" + strings.Join(elems, ", ") + "}"
	case *syntax.CallExpr:
		return g.emitCall(x)
	}
	return g.fail(expr, fmterr.Unsupported, "expression %T not supported", expr)
}

// floatLit formats a float literal with a fixed precision and a single precision suffix.
func floatLit(v float64) string {
	return fmt.Sprintf("%.7ff", v)
}

func (g *Generator) emitUnary(x *syntax.UnaryExpr) string {
	switch x.Op {
	case syntax.Not:
		return "!" + g.emitExpr(x.X)
	case syntax.Neg:
		return "(-" + g.emitExpr(x.X) + ")"
	}
	return g.fail(x, fmterr.Unsupported, "unary operator %s not supported", x.Op)
}

func (g *Generator) emitBinary(x *syntax.BinaryExpr) string {
	left, right := g.emitExpr(x.X), g.emitExpr(x.Y)
	switch x.Op {
	case syntax.And, syntax.Or, syntax.Add, syntax.Sub:
		return left + " " + x.Op.String() + " " + right
	case syntax.Mul, syntax.Mod:
		return left + x.Op.String() + right
	case syntax.Div:
		if g.inf.TypeOf(x.X).Kind == types.IntKind {
			return "((float)" + left + ")/" + right
		}
		return left + "/" + right
	case syntax.Pow:
		fn := "pow"
		if g.inf.TypeOf(x.Y).Kind == types.IntKind {
			fn = "pown"
		}
		if g.inf.TypeOf(x.X).Kind == types.IntKind {
			left = "(float)(" + left + ")"
		}
		return fmt.Sprintf("%s(%s, %s)", fn, left, right)
	}
	if x.Op.IsComparison() {
		return left + x.Op.String() + right
	}
	return g.fail(x, fmterr.Unsupported, "binary operator %s not supported", x.Op)
}
