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

// Package types defines the closed set of value types of the Ivy language
// and the name mangling used to identify specialized functions and kernels.
package types

import (
	"fmt"
	"strings"

	"github.com/gx-org/backend/dtype"
	"github.com/gx-org/backend/shape"
)

// Kind of a value type.
type Kind uint

// Kinds supported by Ivy.
const (
	// UnknownKind is used while a type has not been inferred yet.
	UnknownKind Kind = iota
	BoolKind
	IntKind
	FloatKind
	// VecKind is a vector of 3 floats.
	VecKind
	BoolArrayKind
	IntArrayKind
	FloatArrayKind
	VecArrayKind
	// BufferKind is an opaque strided buffer of pixels.
	BufferKind
)

// String returns a string representation of a kind.
func (k Kind) String() string {
	switch k {
	case BoolKind:
		return "bool"
	case IntKind:
		return "int"
	case FloatKind:
		return "float"
	case VecKind:
		return "vec"
	case BoolArrayKind:
		return "bool_array"
	case IntArrayKind:
		return "int_array"
	case FloatArrayKind:
		return "float_array"
	case VecArrayKind:
		return "vec_array"
	case BufferKind:
		return "buffer"
	}
	return "unknown"
}

// IsArray returns true if the kind is one of the fixed-rank array kinds.
func (k Kind) IsArray() bool {
	switch k {
	case BoolArrayKind, IntArrayKind, FloatArrayKind, VecArrayKind:
		return true
	}
	return false
}

// IsScalar returns true for bool, int, float, and vec.
func (k Kind) IsScalar() bool {
	switch k {
	case BoolKind, IntKind, FloatKind, VecKind:
		return true
	}
	return false
}

// DType returns the backend data type storing one scalar of the kind.
// Vectors, float arrays, and buffers are backed by 32-bit floats.
func (k Kind) DType() dtype.DataType {
	switch k {
	case BoolKind, BoolArrayKind:
		return dtype.Bool
	case IntKind, IntArrayKind:
		return dtype.Int32
	case FloatKind, FloatArrayKind, VecKind, VecArrayKind, BufferKind:
		return dtype.Float32
	}
	return dtype.Invalid
}

// MaxRank is the maximum rank of an array.
const MaxRank = 4

// Type is a value type.
// Only the first Rank extents of Dims are meaningful: constructors set the others to 0.
type Type struct {
	Kind Kind

	// Rank of an array (1 to MaxRank).
	Rank int
	// Local is an opaque storage class bit for arrays.
	// It is preserved through mangling and code generation.
	Local bool
	// Dims are the extents of an array.
	Dims [MaxRank]int

	// Channels of a buffer (1 or 3).
	Channels int
	// Space is the color space of a buffer.
	Space ColorSpace
}

// Unknown returns the sentinel type for values not inferred yet.
func Unknown() Type { return Type{Kind: UnknownKind} }

// Bool returns the boolean type.
func Bool() Type { return Type{Kind: BoolKind} }

// Int returns the integer type.
func Int() Type { return Type{Kind: IntKind} }

// Float returns the floating point type.
func Float() Type { return Type{Kind: FloatKind} }

// Vec returns the 3-component vector type.
func Vec() Type { return Type{Kind: VecKind} }

// Array returns an array type given the kind of its elements.
// The rank of the array is the number of dimensions.
func Array(elem Kind, local bool, dims ...int) Type {
	typ := Type{Kind: ArrayOf(elem), Rank: len(dims), Local: local}
	if typ.Kind == UnknownKind || len(dims) == 0 || len(dims) > MaxRank {
		return Unknown()
	}
	copy(typ.Dims[:], dims)
	return typ
}

// Buffer returns a buffer type.
func Buffer(channels int, space ColorSpace) Type {
	return Type{Kind: BufferKind, Channels: channels, Space: space}
}

// ArrayOf returns the array kind storing elements of a scalar kind.
func ArrayOf(elem Kind) Kind {
	switch elem {
	case BoolKind:
		return BoolArrayKind
	case IntKind:
		return IntArrayKind
	case FloatKind:
		return FloatArrayKind
	case VecKind:
		return VecArrayKind
	}
	return UnknownKind
}

// Elem returns the type of the elements of an array.
// Unknown is returned if the type is not an array.
func (t Type) Elem() Type {
	switch t.Kind {
	case BoolArrayKind:
		return Bool()
	case IntArrayKind:
		return Int()
	case FloatArrayKind:
		return Float()
	case VecArrayKind:
		return Vec()
	}
	return Unknown()
}

// IsUnknown returns true if the type has not been inferred.
func (t Type) IsUnknown() bool {
	return t.Kind == UnknownKind
}

// IsArrayOfRank returns true if the type is an array of the given rank.
func (t Type) IsArrayOfRank(rank int) bool {
	return t.Kind.IsArray() && t.Rank == rank
}

// AxisLengths returns the extents of an array.
func (t Type) AxisLengths() []int {
	if !t.Kind.IsArray() {
		return nil
	}
	return append([]int{}, t.Dims[:t.Rank]...)
}

// TargetType returns the name of the scalar type in the target language.
// The second value is false if the type has no scalar representation.
func (t Type) TargetType() (string, bool) {
	switch t.Kind {
	case BoolKind, BoolArrayKind:
		return "bool", true
	case IntKind, IntArrayKind:
		return "int", true
	case FloatKind, FloatArrayKind:
		return "float", true
	case VecKind, VecArrayKind:
		return "float<3>", true
	}
	return "", false
}

// ReturnType returns the name of a function return type in the target language.
func (t Type) ReturnType() (string, bool) {
	if t.IsUnknown() {
		return "void", true
	}
	if !t.Kind.IsScalar() {
		return "", false
	}
	return t.TargetType()
}

// Shape returns the host-side shape of a value of the type.
// Buffers have no static extents: only their data type is set.
func (t Type) Shape() *shape.Shape {
	sh := &shape.Shape{DType: t.Kind.DType()}
	switch {
	case t.Kind.IsArray():
		sh.AxisLengths = t.AxisLengths()
		if t.Kind == VecArrayKind {
			sh.AxisLengths = append(sh.AxisLengths, 3)
		}
	case t.Kind == VecKind:
		sh.AxisLengths = []int{3}
	}
	return sh
}

// String returns a human readable representation of the type.
func (t Type) String() string {
	switch {
	case t.Kind.IsArray():
		var s strings.Builder
		if t.Local {
			s.WriteString("local ")
		}
		s.WriteString(t.Kind.String())
		for _, d := range t.AxisLengths() {
			fmt.Fprintf(&s, "[%d]", d)
		}
		return s.String()
	case t.Kind == BufferKind:
		return fmt.Sprintf("buffer<%d,%s>", t.Channels, t.Space)
	}
	return t.Kind.String()
}
