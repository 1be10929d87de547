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

// Package generator specializes Ivy kernels and functions into ISPC source code.
//
// Functions are specialized on demand for every list of argument types they
// are called with. The text of a specialization is spliced into the translation
// unit of the kernel being generated such that callees always precede their callers.
package generator

import (
	"go/token"

	"github.com/gx-org/ivy/build/fmterr"
	"github.com/gx-org/ivy/build/infer"
	"github.com/gx-org/ivy/build/syntax"
	"github.com/gx-org/ivy/build/types"
)

type (
	// Inferer maintains the scopes of variables and infers the types of expressions.
	Inferer interface {
		// Reset the scopes to a single empty root scope.
		Reset()
		// Open a scope nested in the current scope.
		Open()
		// OpenDetached opens a scope nested in the root scope.
		OpenDetached()
		// Close the innermost scope.
		Close()
		// Bind a name to a type in the current scope.
		Bind(name string, typ types.Type)
		// BindRoot binds a name to a type in the root scope.
		BindRoot(name string, typ types.Type)
		// Lookup the type bound to a name.
		Lookup(name string) (types.Type, bool)
		// Overwrite rebinds a name in the nearest scope owning it.
		Overwrite(name string, typ types.Type) error
		// TypeOf returns the type of an expression.
		TypeOf(expr syntax.Expr) types.Type
		// Promote returns the common type of two types.
		Promote(a, b types.Type) types.Type
		// PromoteNum returns the common type of two numerical types.
		PromoteNum(a, b types.Type) types.Type
		// IsBuiltin returns true if a call is provided by the runtime support.
		IsBuiltin(name string, args []syntax.Expr) bool
		// SetFunctions sets the return types of the specialized functions.
		SetFunctions(infer.ReturnTypes)
	}

	// Tracer is notified when the generator specializes or reuses code.
	Tracer interface {
		// FunctionSpecialized is called when the text of a function is generated.
		FunctionSpecialized(id string)
		// FunctionReused is called when the cached text of a function
		// is spliced into a new kernel.
		FunctionReused(id string)
		// KernelReused is called when a kernel is found in the cache.
		KernelReused(id string)
	}

	// Option configures a generator.
	Option func(*Generator)
)

// WithInferer sets the inference used by the generator.
func WithInferer(inf Inferer) Option {
	return func(g *Generator) {
		g.inf = inf
	}
}

// WithFileSet sets the file set used to report the position of diagnostics.
func WithFileSet(fset *token.FileSet) Option {
	return func(g *Generator) {
		g.fset = fset
	}
}

// WithInclude sets the file included at the top of every translation unit.
func WithInclude(include string) Option {
	return func(g *Generator) {
		g.include = include
	}
}

// WithSwapThreshold sets the extent below which the x axis of a tile is swapped with its y axis.
func WithSwapThreshold(threshold int) Option {
	return func(g *Generator) {
		g.swapThreshold = threshold
	}
}

// WithTracer sets a tracer.
func WithTracer(tracer Tracer) Option {
	return func(g *Generator) {
		g.tracer = tracer
	}
}

// WithStrictDiagnostics makes a kernel specialization fail
// if any diagnostic has been reported.
func WithStrictDiagnostics() Option {
	return func(g *Generator) {
		g.strict = true
	}
}

const (
	// DefaultInclude is the runtime support included by every translation unit.
	DefaultInclude = "cs.ispc"
	// DefaultSwapThreshold is the default axis swap threshold.
	DefaultSwapThreshold = 16

	// returnName is the reserved name binding the return type of the function being generated.
	returnName = "return"
	// errorMarker replaces code that could not be generated.
	errorMarker = "/*** error ***/"
)

// Generator is the compilation context shared by all the specializations
// of a program. A generator is not safe for concurrent use.
type Generator struct {
	inf           Inferer
	fset          *token.FileSet
	include       string
	swapThreshold int
	tracer        Tracer
	strict        bool

	index *declIndex

	// constants rendered once for all the kernels.
	constants *constBlock
	// functions specialized by any kernel, by mangled identifier.
	functions map[string]*function
	// kernels successfully specialized, by mangled identifier.
	units map[string]*Unit
	// functions being specialized. Their return type is the type of the returns generated so far.
	pending map[string]*function

	// State of the kernel being specialized.
	kernel *kernelState
	// Identifier and callees of the function being generated.
	current string
	callees *[]string
	// Appender of the function or the kernel being generated.
	app *fmterr.Appender
}

// New returns a generator for a program given its top-level declarations.
func New(decls []syntax.Decl, opts ...Option) *Generator {
	g := &Generator{
		include:       DefaultInclude,
		swapThreshold: DefaultSwapThreshold,
		index:         newDeclIndex(decls),
		functions:     make(map[string]*function),
		units:         make(map[string]*Unit),
		pending:       make(map[string]*function),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.inf == nil {
		g.inf = infer.New()
	}
	return g
}

// KernelNames returns the names of the kernels declared in the program, sorted.
func (g *Generator) KernelNames() []string {
	return g.index.kernelNames()
}

// ReturnType returns the return type of a specialized function given its mangled identifier.
// The return type of a function still being generated, called recursively directly or
// through other functions, is the type of the returns generated so far.
func (g *Generator) ReturnType(id string) (types.Type, bool) {
	if fn, ok := g.pending[id]; ok {
		return fn.ret, !fn.ret.IsUnknown()
	}
	fn, ok := g.functions[id]
	if !ok {
		return types.Unknown(), false
	}
	return fn.ret, true
}

func (g *Generator) fail(node syntax.Node, kind fmterr.Kind, format string, a ...any) string {
	g.app.Appendf(node, kind, format, a...)
	return errorMarker
}

func (g *Generator) failStmt(node syntax.Node, kind fmterr.Kind, format string, a ...any) string {
	return g.fail(node, kind, format, a...) + "\n"
}

func (g *Generator) internal(node syntax.Node, format string, a ...any) {
	g.app.AppendInternalf(node, format, a...)
}

var _ infer.ReturnTypes = (*Generator)(nil)
