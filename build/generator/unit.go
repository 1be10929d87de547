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

	ivyfmt "github.com/gx-org/ivy/base/fmt"
)

// Unit is a translation unit implementing a kernel specialized for a list of argument types.
type Unit struct {
	// ID is the mangled identifier of the kernel. It is also the name of the exported entry.
	ID string
	// Task is the name of the worker processing a tile.
	Task string
	// Source is the ISPC code of the unit.
	Source string
	// Params are the physical parameters of the exported entry.
	Params []Param
	// Diagnostics are the problems found while generating the unit.
	// The source contains an error marker where code could not be generated.
	Diagnostics []error
}

// Listing returns the source of the unit with line numbers.
func (u *Unit) Listing() string {
	return ivyfmt.Number(u.Source)
}

// String returns a summary of the unit and its diagnostics.
func (u *Unit) String() string {
	var s strings.Builder
	s.WriteString(u.ID)
	s.WriteString("(")
	for i, p := range u.Params {
		if i > 0 {
			s.WriteString(", ")
		}
		s.WriteString(p.Name)
	}
	s.WriteString(")\n")
	if len(u.Diagnostics) > 0 {
		s.WriteString(ivyfmt.Indent(ivyfmt.List(u.Diagnostics)))
	}
	return s.String()
}
