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
	"regexp"
	"strings"

	"github.com/gx-org/ivy/build/fmterr"
	"github.com/gx-org/ivy/build/syntax"
	"github.com/gx-org/ivy/build/types"
)

// buffer generates accesses to a strided buffer passed with its layout:
//
//	___str_<name> = [X, Y, Z, stride x, stride y, stride z]
type buffer struct {
	name string
	typ  types.Type
}

var vecComponents = [...]string{"x", "y", "z"}

var simpleOperand = regexp.MustCompile(`^[A-Za-z0-9_.\[\]]+$`)

// operand parenthesizes an expression unless it is a single term.
func operand(x string) string {
	if simpleOperand.MatchString(x) {
		return x
	}
	return "(" + x + ")"
}

func (b buffer) layout(i int) string {
	return fmt.Sprintf("%s[%d]", strideName(b.name), i)
}

// offset returns the offset of an element given its coordinates.
func (b buffer) offset(x, y, c string) string {
	return fmt.Sprintf("%s*%s + %s*%s + %s*%s",
		operand(x), b.layout(3),
		operand(y), b.layout(4),
		operand(c), b.layout(5))
}

func (b buffer) at(offset string) string {
	return fmt.Sprintf("%s[(varying int)(%s)]", b.name, offset)
}

// pixel returns the 3 channels of a pixel as a vector.
func (b buffer) pixel(x, y string) string {
	return fmt.Sprintf("vec(%s, %s, %s)",
		b.at(b.offset(x, y, "0")),
		b.at(b.offset(x, y, "1")),
		b.at(b.offset(x, y, "2")))
}

// read returns the value of a pixel in the color space of the buffer.
func (b buffer) read(x, y string) string {
	if b.typ.Channels == 3 {
		return b.pixel(x, y)
	}
	return b.at(b.offset(x, y, "0"))
}

// guard returns a statement prefix executing the next statement only
// if the coordinates are within the extents of the buffer.
func (b buffer) guard(coords ...string) string {
	if len(coords) == 1 {
		return fmt.Sprintf("cif (%[1]s>=0 && %[1]s<(%[2]s * %[3]s * %[4]s)) ", coords[0], b.layout(0), b.layout(1), b.layout(2))
	}
	conds := make([]string, len(coords))
	for i, c := range coords {
		conds[i] = fmt.Sprintf("%[1]s>=0 && %[1]s<%[2]s", c, b.layout(i))
	}
	return "cif (" + strings.Join(conds, " && ") + ") "
}

// store returns the statements writing a vector into the 3 channels of a pixel.
func (b buffer) store(x, y, val string) string {
	var s strings.Builder
	fmt.Fprintf(&s, "{ float<3> __v = %s;", val)
	for c, comp := range vecComponents {
		fmt.Fprintf(&s, " %s = __v.%s;", b.at(b.offset(x, y, fmt.Sprint(c))), comp)
	}
	s.WriteString(" }")
	return s.String()
}

// bufferAccess returns the buffer and the coordinates of an expression indexing a buffer variable.
func (g *Generator) bufferAccess(expr syntax.Expr) (buffer, []string, bool) {
	access, ok := expr.(*syntax.IndexExpr)
	if !ok {
		return buffer{}, nil, false
	}
	coords, ok := access.Index.(*syntax.Coords)
	if !ok {
		return buffer{}, nil, false
	}
	ident, ok := access.X.(*syntax.Ident)
	if !ok {
		return buffer{}, nil, false
	}
	typ := g.inf.TypeOf(ident)
	if typ.Kind != types.BufferKind {
		return buffer{}, nil, false
	}
	return buffer{name: ident.Name, typ: typ}, g.emitExprs(coords.Exprs), true
}

func (g *Generator) emitExprs(exprs []syntax.Expr) []string {
	ss := make([]string, len(exprs))
	for i, expr := range exprs {
		ss[i] = g.emitExpr(expr)
	}
	return ss
}

func (g *Generator) emitIndex(x *syntax.IndexExpr) string {
	switch index := x.Index.(type) {
	case *syntax.Component:
		return g.emitComponent(x, index)
	case *syntax.Coords:
		return g.emitCoords(x, index)
	case *syntax.SpaceIndex:
		return g.emitSpaceRead(x, index)
	case *syntax.PropIndex:
		return g.emitProp(x, index)
	}
	return g.fail(x, fmterr.Unsupported, "index %T not supported", x.Index)
}

// emitComponent emits the component of a vector or an extent of a buffer.
func (g *Generator) emitComponent(x *syntax.IndexExpr, index *syntax.Component) string {
	if index.N < 0 || index.N >= len(vecComponents) {
		return g.fail(index, fmterr.Unsupported, "component %d out of range", index.N)
	}
	typ := g.inf.TypeOf(x.X)
	switch typ.Kind {
	case types.VecKind:
		return g.emitExpr(x.X) + "." + vecComponents[index.N]
	case types.BufferKind:
		if ident, ok := x.X.(*syntax.Ident); ok {
			return buffer{name: ident.Name, typ: typ}.layout(index.N)
		}
	}
	return g.fail(x, fmterr.Unsupported, "cannot select component %d of %s", index.N, typ)
}

// arrayElement returns an element of an array.
func arrayElement(name string, coords []string) string {
	var s strings.Builder
	s.WriteString(name)
	for _, c := range coords {
		fmt.Fprintf(&s, "[%s]", c)
	}
	return s.String()
}

// emitCoords emits the read of an array element or of a buffer element.
// Buffer reads are not guarded.
func (g *Generator) emitCoords(x *syntax.IndexExpr, index *syntax.Coords) string {
	ident, ok := x.X.(*syntax.Ident)
	if !ok {
		return g.fail(x, fmterr.Unsupported, "only variables can be indexed")
	}
	typ := g.inf.TypeOf(ident)
	coords := g.emitExprs(index.Exprs)
	if typ.IsArrayOfRank(len(coords)) {
		return arrayElement(ident.Name, coords)
	}
	if typ.Kind != types.BufferKind {
		return g.fail(x, fmterr.Unsupported, "cannot index %s of type %s with %d coordinates", ident.Name, typ, len(coords))
	}
	buf := buffer{name: ident.Name, typ: typ}
	switch len(coords) {
	case 1:
		return buf.at(coords[0])
	case 2:
		return buf.read(coords[0], coords[1])
	case 3:
		return buf.at(buf.offset(coords[0], coords[1], coords[2]))
	}
	return g.fail(x, fmterr.Unsupported, "cannot index buffer %s with %d coordinates", ident.Name, len(coords))
}

// emitSpaceRead converts a pixel from the color space of its buffer to another color space.
func (g *Generator) emitSpaceRead(x *syntax.IndexExpr, index *syntax.SpaceIndex) string {
	buf, coords, ok := g.bufferAccess(x.X)
	if !ok || len(coords) != 2 {
		return g.fail(x, fmterr.Unsupported, "color space %s can only be applied to a 2D buffer access", index.Space)
	}
	return types.Conversion(buf.typ.Space, index.Space) + "(" + buf.read(coords[0], coords[1]) + ")"
}

// emitProp emits a low-level property of a buffer element.
func (g *Generator) emitProp(x *syntax.IndexExpr, index *syntax.PropIndex) string {
	buf, coords, ok := g.bufferAccess(x.X)
	if !ok {
		return g.fail(x, fmterr.Unsupported, "property %s can only be read from a buffer element", index.Prop)
	}
	var idx string
	switch {
	case len(coords) == 1:
		idx = coords[0]
	case len(coords) == 2 && buf.typ.Channels == 1:
		idx = buf.offset(coords[0], coords[1], "0")
	case len(coords) == 3:
		idx = buf.offset(coords[0], coords[1], coords[2])
	default:
		return g.fail(x, fmterr.Unsupported, "property %s of buffer %s with %d coordinates not supported", index.Prop, buf.name, len(coords))
	}
	switch index.Prop {
	case syntax.PropInt:
		return fmt.Sprintf("(((uniform int*)%s)[%s])", buf.name, idx)
	case syntax.PropIdx:
		return idx
	case syntax.PropPtr:
		return fmt.Sprintf("(%s + %s)", buf.name, idx)
	case syntax.PropIntPtr:
		return fmt.Sprintf("(((uniform int*)%s) + %s)", buf.name, idx)
	}
	return g.fail(x, fmterr.Unsupported, "property %s not supported", index.Prop)
}
