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
	"strings"

	"github.com/gx-org/ivy/build/fmterr"
	"github.com/gx-org/ivy/build/syntax"
	"github.com/gx-org/ivy/build/types"
)

// globalIDs are the coordinates of the element processed by a lane.
var globalIDs = [...]string{"_x", "_y", "_z"}

var casts = map[string]string{
	"bool":  "(bool)",
	"int":   "(int)",
	"float": "(float)",
}

// floatAtomics are the atomic builtins with a dedicated implementation for float arrays.
var floatAtomics = map[string]string{
	"atomic_add": "_atomic_float_add",
	"atomic_sub": "_atomic_float_sub",
	"atomic_inc": "_atomic_float_inc",
	"atomic_dec": "_atomic_float_dec",
	"atomic_min": "_atomic_float_min",
	"atomic_max": "_atomic_float_max",
}

// emitCall emits a call to a builtin or to a user function.
// User functions are specialized for the types of the arguments
// and receive the coordinates of the lane as implicit arguments.
func (g *Generator) emitCall(call *syntax.CallExpr) string {
	if call.Name == "get_global_id" && len(call.Args) == 1 {
		if lit, ok := call.Args[0].(*syntax.IntLit); ok && lit.Val >= 0 && int(lit.Val) < len(globalIDs) {
			return globalIDs[lit.Val]
		}
	}
	args := make([]string, len(call.Args))
	for i, arg := range call.Args {
		args[i] = g.emitExpr(arg)
	}
	argTypes := make([]types.Type, len(call.Args))
	for i, arg := range call.Args {
		argTypes[i] = g.inf.TypeOf(arg)
	}
	if g.inf.IsBuiltin(call.Name, call.Args) {
		return builtinName(call.Name, argTypes) + "(" + callArgs(args, argTypes) + ")"
	}
	if g.kernel == nil {
		return g.fail(call, fmterr.Unsupported, "function %s cannot be called outside of a kernel", call.Name)
	}
	for i, typ := range argTypes {
		if typ.IsUnknown() {
			g.app.Appendf(call.Args[i], fmterr.UnknownType, "cannot infer the type of argument %d of %s", i, call.Name)
		}
	}
	id := g.specialize(call, argTypes)
	fnArgs := strings.Join(globalIDs[:], ", ")
	if len(args) > 0 {
		fnArgs += ", " + callArgs(args, argTypes)
	}
	return id + "(" + fnArgs + ")"
}

// builtinName returns the name of the runtime function implementing a builtin.
func builtinName(name string, args []types.Type) string {
	if cast, ok := casts[name]; ok {
		return cast
	}
	if len(args) > 0 && args[0].Kind == types.FloatArrayKind && args[0].Rank == 1 {
		if atomic, ok := floatAtomics[name]; ok {
			return atomic
		}
	}
	return name
}

// callArgs joins the arguments of a call. Buffers are passed with their layout.
func callArgs(args []string, argTypes []types.Type) string {
	var s []string
	for i, arg := range args {
		s = append(s, arg)
		if argTypes[i].Kind == types.BufferKind {
			s = append(s, strideName(arg))
		}
	}
	return strings.Join(s, ", ")
}
