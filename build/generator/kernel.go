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

	"github.com/gx-org/ivy/base/tiling"
	"github.com/gx-org/ivy/base/tmpl"
	"github.com/gx-org/ivy/build/fmterr"
	"github.com/gx-org/ivy/build/syntax"
	"github.com/gx-org/ivy/build/types"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	_ "embed"
)

var (
	//go:embed worker.ispc.tmpl
	workerSource string
	workerTmpl   = tmpl.Parse("worker", workerSource)
)

// taskPrefix prefixes the identifier of a kernel to name its worker.
const taskPrefix = "___task_"

type (
	axis struct {
		Name                 string
		Axis                 int
		Origin, Extent, Tile int
	}

	worker struct {
		ID, Task string
		Params   []string
		Args     []string
		Axes     []axis
		Swap     string
		Body     string
	}
)

var axes = func() []axis {
	names := []string{"x", "y", "z"}
	axes := make([]axis, tiling.NumAxes)
	for i := range axes {
		axes[i] = axis{
			Name:   names[i],
			Axis:   i,
			Origin: tiling.OriginIndex(i),
			Extent: tiling.ExtentIndex(i),
			Tile:   tiling.TileIndex(i),
		}
	}
	return axes
}()

// constBlock is the text of the constants shared by all kernels.
type constBlock struct {
	text  string
	names []string
	types []types.Type
	diags []error
}

// renderConstants binds the constants in the root scope.
// Their text is generated the first time only.
func (g *Generator) renderConstants() *constBlock {
	if g.constants != nil {
		for i, name := range g.constants.names {
			g.inf.BindRoot(name, g.constants.types[i])
		}
		return g.constants
	}
	errs := &fmterr.Errors{}
	g.app = errs.NewAppender(g.fset)
	g.app.Push(fmterr.PrefixWith("constants: "))
	defer func() { g.app = nil }()
	block := &constBlock{}
	var s strings.Builder
	for _, decl := range g.index.constDecls() {
		s.WriteString("const ")
		s.WriteString(g.emitVar(decl, decl.Name, decl.X))
		typ, _ := g.inf.Lookup(decl.Name)
		block.names = append(block.names, decl.Name)
		block.types = append(block.types, typ)
	}
	block.text = s.String()
	block.diags = errs.Errors()
	g.constants = block
	return block
}

// Kernel specializes a kernel for a list of argument types.
// The result is cached: the same unit is returned for the same name and argument types.
func (g *Generator) Kernel(name string, args []types.Type) (*Unit, error) {
	g.inf.Reset()
	g.inf.SetFunctions(g)
	consts := g.renderConstants()

	id := types.Mangle(name, args)
	if unit, ok := g.units[id]; ok {
		if g.tracer != nil {
			g.tracer.KernelReused(id)
		}
		return unit, nil
	}
	decl, ok := g.index.kernel(name)
	if !ok {
		return nil, errors.Wrapf(ErrKernelNotFound, "cannot specialize %s", name)
	}
	if len(decl.Params) != len(args) {
		return nil, errors.Errorf("cannot specialize kernel %s: got %d argument types but the kernel has %d parameters", name, len(args), len(decl.Params))
	}

	errs := &fmterr.Errors{}
	for _, err := range consts.diags {
		errs.Append(err)
	}
	g.kernel = &kernelState{
		text: consts.text,
		used: make(map[string]bool),
		errs: errs,
	}
	g.app = errs.NewAppender(g.fset)
	g.app.Push(fmterr.PrefixWith("kernel %s: ", id))
	defer func() {
		g.kernel, g.app = nil, nil
	}()

	unit, err := g.emitKernel(id, decl, args)
	if err != nil {
		return nil, err
	}
	if errs.Has(fmterr.Internal) {
		return nil, errors.Wrapf(ErrInternal, "cannot specialize kernel %s:\n%v", name, errs)
	}
	if g.strict && !errs.Empty() {
		return nil, errs.ToError()
	}
	unit.Diagnostics = errs.Errors()
	g.units[id] = unit
	return unit, nil
}

func (g *Generator) emitKernel(id string, decl *syntax.KernelDecl, args []types.Type) (*Unit, error) {
	g.inf.Open()
	defer g.inf.Close()
	g.inf.Bind(returnName, types.Unknown())

	swap := fmt.Sprintf("%[1]s[%[2]d]<%[4]d && %[1]s[%[3]d]>%[4]d", dimName, tiling.ExtentIndex(0), tiling.ExtentIndex(1), g.swapThreshold)
	w := worker{
		ID:     id,
		Task:   taskPrefix + id,
		Params: []string{"uniform int " + dimName + "[]"},
		Args:   []string{dimName},
		Axes:   axes,
		Swap:   swap,
	}
	params := []Param{dimParam()}
	for i, name := range decl.Params {
		text, ps := g.kernelParam(decl, name, args[i])
		w.Params = append(w.Params, text)
		for _, p := range ps {
			params = append(params, p)
			w.Args = append(w.Args, p.Name)
		}
		g.inf.Bind(name, args[i])
	}
	w.Body = g.emitBlock(decl.Body)
	if ret, _ := g.inf.Lookup(returnName); !ret.IsUnknown() {
		return nil, errors.Wrapf(ErrKernelReturnsValue, "kernel %s returns a value of type %s", decl.Name, ret)
	}
	task, err := tmpl.Execute(workerTmpl, w)
	if err != nil {
		return nil, err
	}
	return &Unit{
		ID:     id,
		Task:   w.Task,
		Source: fmt.Sprintf("#include \"%s\"\n%s\n%s", g.include, g.kernel.text, task),
		Params: params,
	}, nil
}

// kernelParam returns the declaration of a parameter of the exported entry of a kernel
// and the physical parameters passing the value.
func (g *Generator) kernelParam(node syntax.Node, name string, typ types.Type) (string, []Param) {
	switch {
	case typ.Kind == types.BufferKind:
		return fmt.Sprintf("uniform float %[1]s[], uniform int %[2]s[]", name, strideName(name)), bufferParams(name, typ)
	case typ.Kind == types.BoolKind || typ.Kind == types.IntKind || typ.Kind == types.FloatKind:
		target, _ := typ.TargetType()
		return fmt.Sprintf("uniform %s %s", target, name), []Param{valueParam(name, typ)}
	case typ.IsArrayOfRank(1) && (typ.Kind == types.IntArrayKind || typ.Kind == types.FloatArrayKind):
		target, _ := typ.TargetType()
		return fmt.Sprintf("uniform %s %s[]", target, name), []Param{arrayParam(name, typ)}
	}
	return g.fail(node, fmterr.Unsupported, "kernel parameter %s of type %s not supported", name, typ), []Param{{Name: name, Shape: typ.Shape()}}
}

// Request to specialize a kernel.
type Request struct {
	Name string
	Args []types.Type
}

// Kernels specializes a list of kernels. All the kernels are specialized
// even if some fail: the units of failed kernels are nil.
func (g *Generator) Kernels(reqs ...Request) ([]*Unit, error) {
	units := make([]*Unit, len(reqs))
	var errs error
	for i, req := range reqs {
		unit, err := g.Kernel(req.Name, req.Args)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		units[i] = unit
	}
	return units, errs
}
