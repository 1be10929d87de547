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
	"github.com/gx-org/ivy/build/syntax"
	"github.com/gx-org/ivy/build/types"
)

// function is the text of a function specialized for a list of argument types.
type function struct {
	id   string
	decl string
	def  string
	ret  types.Type

	// callees are the identifiers of the user functions called by the function.
	callees []string
	// diags are the diagnostics reported while generating the function.
	diags []error
}

// kernelState is the text generated for the kernel being specialized.
type kernelState struct {
	// text preceding the worker: constants and specialized functions.
	text string
	// used functions, already spliced in text.
	used map[string]bool
	errs *fmterr.Errors
}

// specialize returns the identifier of a user function specialized for a list of argument types.
// The text of the function is spliced into the current kernel if it has not been yet.
func (g *Generator) specialize(call *syntax.CallExpr, args []types.Type) string {
	id := types.Mangle(call.Name, args)
	if g.callees != nil {
		*g.callees = append(*g.callees, id)
	}
	if fn, ok := g.functions[id]; ok {
		g.splice(fn, true)
		return id
	}
	if _, ok := g.pending[id]; ok {
		// Recursive call: the function is spliced once its definition is complete.
		return id
	}
	decl, ok := g.index.function(call.Name, len(args))
	if !ok {
		g.app.Appendf(call, fmterr.NotFound, "function %s with %d parameters not found", call.Name, len(args))
		return id
	}
	fn := g.generate(id, decl, args)
	g.functions[id] = fn
	if g.tracer != nil {
		g.tracer.FunctionSpecialized(id)
	}
	g.splice(fn, false)
	return id
}

// splice the declaration of a function before the text generated so far
// and its definition after.
func (g *Generator) splice(fn *function, cached bool) {
	k := g.kernel
	if k.used[fn.id] {
		return
	}
	k.used[fn.id] = true
	if cached {
		for _, callee := range fn.callees {
			if dep, ok := g.functions[callee]; ok {
				g.splice(dep, true)
			}
		}
		if g.tracer != nil {
			g.tracer.FunctionReused(fn.id)
		}
	}
	k.text = fn.decl + "\n" + k.text + "\n" + fn.def + "\n"
	for _, err := range fn.diags {
		k.errs.Append(err)
	}
}

// generate the text of a function. The body of the function is generated
// in a scope nested in the root scope: functions cannot access the variables of their callers.
func (g *Generator) generate(id string, decl *syntax.FuncDecl, args []types.Type) *function {
	fn := &function{id: id, ret: types.Unknown()}
	g.pending[id] = fn
	defer delete(g.pending, id)

	errs := &fmterr.Errors{}
	prevApp, prevCurrent, prevCallees := g.app, g.current, g.callees
	defer func() {
		g.app, g.current, g.callees = prevApp, prevCurrent, prevCallees
	}()
	g.app = errs.NewAppender(g.fset)
	g.app.Push(fmterr.PrefixWith("function %s: ", id))
	g.current, g.callees = id, &fn.callees

	g.inf.OpenDetached()
	defer g.inf.Close()
	g.inf.Bind(returnName, types.Unknown())

	var sig strings.Builder
	sig.WriteString("(varying int _x, varying int _y, varying int _z")
	for i, name := range decl.Params {
		sig.WriteString(",\n\t")
		sig.WriteString(g.funcParam(decl, name, args[i]))
		g.inf.Bind(name, args[i])
	}
	sig.WriteString("\n)")

	body := g.emitBlock(decl.Body)

	fn.ret, _ = g.inf.Lookup(returnName)
	ret, ok := fn.ret.ReturnType()
	if !ok {
		ret = g.fail(decl, fmterr.InvalidReturn, "function %s cannot return a value of type %s", decl.Name, fn.ret)
	}
	fn.decl = fmt.Sprintf("%s %s%s;", ret, id, sig.String())
	fn.def = fmt.Sprintf("%s %s %s {\n%s}", ret, id, sig.String(), body)
	fn.diags = errs.Errors()
	return fn
}

// funcParam returns the declaration of a function parameter.
func (g *Generator) funcParam(node syntax.Node, name string, typ types.Type) string {
	switch {
	case typ.Kind == types.BufferKind:
		return fmt.Sprintf("uniform float %[1]s[], uniform int %[2]s[]", name, strideName(name))
	case typ.Kind.IsScalar():
		target, _ := typ.TargetType()
		return target + " " + name
	case typ.Kind.IsArray():
		target, _ := typ.TargetType()
		return target + " " + name + arrayDims(typ)
	}
	return g.fail(node, fmterr.UnknownType, "parameter %s has no type", name)
}

// arrayDims returns the extents of an array type as a declaration suffix.
func arrayDims(typ types.Type) string {
	var s strings.Builder
	for _, d := range typ.AxisLengths() {
		fmt.Fprintf(&s, "[%d]", d)
	}
	return s.String()
}
