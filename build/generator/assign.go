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

	"github.com/gx-org/ivy/build/fmterr"
	"github.com/gx-org/ivy/build/syntax"
	"github.com/gx-org/ivy/build/types"
)

// emitAssign emits an assignment. Writes into buffers are guarded
// such that lanes with coordinates outside of the buffer do not write.
func (g *Generator) emitAssign(s *syntax.AssignStmt) string {
	target, ok := s.Target.(*syntax.IndexExpr)
	if !ok {
		return fmt.Sprintf("%s = %s;\n", g.emitExpr(s.Target), g.emitExpr(s.X))
	}
	switch index := target.Index.(type) {
	case *syntax.SpaceIndex:
		return g.emitSpaceWrite(s, target, index)
	case *syntax.Coords:
		return g.emitCoordsWrite(s, target, index)
	}
	return fmt.Sprintf("%s = %s;\n", g.emitIndex(target), g.emitExpr(s.X))
}

func (g *Generator) emitCoordsWrite(s *syntax.AssignStmt, target *syntax.IndexExpr, index *syntax.Coords) string {
	ident, ok := target.X.(*syntax.Ident)
	if !ok {
		return g.failStmt(target, fmterr.Unsupported, "only variables can be indexed")
	}
	typ := g.inf.TypeOf(ident)
	coords := g.emitExprs(index.Exprs)
	val := g.emitExpr(s.X)
	if typ.IsArrayOfRank(len(coords)) {
		return fmt.Sprintf("%s = %s;\n", arrayElement(ident.Name, coords), val)
	}
	if typ.Kind != types.BufferKind {
		return g.failStmt(target, fmterr.Unsupported, "cannot assign to %s of type %s with %d coordinates", ident.Name, typ, len(coords))
	}
	buf := buffer{name: ident.Name, typ: typ}
	switch {
	case len(coords) == 1:
		return fmt.Sprintf("%s%s = %s;\n", buf.guard(coords...), buf.at(coords[0]), val)
	case len(coords) == 2 && typ.Channels == 1:
		return fmt.Sprintf("%s%s = %s;\n", buf.guard(coords...), buf.at(buf.offset(coords[0], coords[1], "0")), val)
	case len(coords) == 2 && typ.Channels == 3:
		return buf.guard(coords...) + buf.store(coords[0], coords[1], val) + "\n"
	case len(coords) == 3:
		return fmt.Sprintf("%s%s = %s;\n", buf.guard(coords...), buf.at(buf.offset(coords[0], coords[1], coords[2])), val)
	}
	return g.failStmt(target, fmterr.Unsupported, "cannot assign to buffer %s with %d coordinates", ident.Name, len(coords))
}

// emitSpaceWrite converts a value from the color space of the index
// to the color space of the buffer before writing it.
func (g *Generator) emitSpaceWrite(s *syntax.AssignStmt, target *syntax.IndexExpr, index *syntax.SpaceIndex) string {
	buf, coords, ok := g.bufferAccess(target.X)
	if !ok || len(coords) != 2 {
		return g.failStmt(target, fmterr.Unsupported, "color space %s can only be applied to a 2D buffer access", index.Space)
	}
	val := types.Conversion(index.Space, buf.typ.Space) + "(" + g.emitExpr(s.X) + ")"
	switch buf.typ.Channels {
	case 1:
		return fmt.Sprintf("%s%s = %s;\n", buf.guard(coords...), buf.at(buf.offset(coords[0], coords[1], "0")), val)
	case 3:
		return buf.guard(coords...) + buf.store(coords[0], coords[1], val) + "\n"
	}
	return g.failStmt(target, fmterr.Unsupported, "buffer %s with %d channels not supported", buf.name, buf.typ.Channels)
}
