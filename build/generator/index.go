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
	"sort"

	"github.com/gx-org/ivy/build/syntax"
	"github.com/gx-org/ivy/build/types"
	"golang.org/x/exp/maps"
)

// declIndex owns the declarations of a program and indexes them by name.
type declIndex struct {
	decls []syntax.Decl

	constants []int
	// functions keyed by name and number of parameters.
	functions map[string]int
	kernels   map[string]int
}

func newDeclIndex(decls []syntax.Decl) *declIndex {
	idx := &declIndex{
		decls:     append([]syntax.Decl{}, decls...),
		functions: make(map[string]int),
		kernels:   make(map[string]int),
	}
	for i, decl := range idx.decls {
		switch decl := decl.(type) {
		case *syntax.ConstDecl:
			idx.constants = append(idx.constants, i)
		case *syntax.FuncDecl:
			idx.functions[types.FuncKey(decl.Name, len(decl.Params))] = i
		case *syntax.KernelDecl:
			idx.kernels[decl.Name] = i
		}
	}
	return idx
}

func (idx *declIndex) constDecls() []*syntax.ConstDecl {
	consts := make([]*syntax.ConstDecl, len(idx.constants))
	for i, pos := range idx.constants {
		consts[i] = idx.decls[pos].(*syntax.ConstDecl)
	}
	return consts
}

func (idx *declIndex) function(name string, arity int) (*syntax.FuncDecl, bool) {
	pos, ok := idx.functions[types.FuncKey(name, arity)]
	if !ok {
		return nil, false
	}
	return idx.decls[pos].(*syntax.FuncDecl), true
}

func (idx *declIndex) kernel(name string) (*syntax.KernelDecl, bool) {
	pos, ok := idx.kernels[name]
	if !ok {
		return nil, false
	}
	return idx.decls[pos].(*syntax.KernelDecl), true
}

func (idx *declIndex) kernelNames() []string {
	names := maps.Keys(idx.kernels)
	sort.Strings(names)
	return names
}
