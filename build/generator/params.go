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
	"github.com/gx-org/backend/dtype"
	"github.com/gx-org/backend/shape"
	"github.com/gx-org/ivy/base/tiling"
	"github.com/gx-org/ivy/build/types"
)

// dimName is the name of the parameter passing the origins, the extents,
// and the tile sizes of the index space to a kernel.
const dimName = "_dim"

// strideBufferLen is the number of values describing the layout of a buffer:
// 3 extents followed by 3 strides.
const strideBufferLen = 6

// Param is a physical parameter of the exported entry of a kernel.
type Param struct {
	Name string
	// Shape of the value on the host. The axes of a buffer are only known at runtime.
	Shape *shape.Shape
	// Pointer is true if the value is passed as a pointer to its first element.
	Pointer bool
	// Dynamic is true if the size of the value is only known at runtime.
	Dynamic bool
}

// ElemSize returns the size in bytes of one element of the parameter.
func (p Param) ElemSize() int {
	return dtype.Sizeof(p.Shape.DType)
}

// ByteSize returns the size in bytes of the value passed to the kernel
// or -1 if the size is only known at runtime.
func (p Param) ByteSize() int {
	if p.Dynamic {
		return -1
	}
	return p.Shape.ByteSize()
}

func strideName(name string) string {
	return "___str_" + name
}

func dimParam() Param {
	return Param{
		Name: dimName,
		Shape: &shape.Shape{
			DType:       dtype.Int32,
			AxisLengths: []int{3 * tiling.NumAxes},
		},
		Pointer: true,
	}
}

func bufferParams(name string, typ types.Type) []Param {
	return []Param{
		{
			Name:    name,
			Shape:   typ.Shape(),
			Pointer: true,
			Dynamic: true,
		},
		{
			Name: strideName(name),
			Shape: &shape.Shape{
				DType:       dtype.Int32,
				AxisLengths: []int{strideBufferLen},
			},
			Pointer: true,
		},
	}
}

func valueParam(name string, typ types.Type) Param {
	return Param{Name: name, Shape: typ.Shape()}
}

// arrayParam returns the parameter of an array passed to a kernel.
// Arrays are passed as pointers: the generated code does not check their extents.
func arrayParam(name string, typ types.Type) Param {
	return Param{Name: name, Shape: typ.Shape(), Pointer: true}
}
