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

package types

import (
	"fmt"
	"strings"
)

// Tag returns the mangling tag of a type.
// Every tag ends with an underscore separator.
func (t Type) Tag() string {
	switch t.Kind {
	case BoolKind:
		return "B_"
	case IntKind:
		return "I_"
	case FloatKind:
		return "F_"
	case VecKind:
		return "V_"
	case BoolArrayKind, IntArrayKind, FloatArrayKind, VecArrayKind:
		prefix := ""
		if t.Local {
			prefix = "L"
		}
		return fmt.Sprintf("%s%sA%d_%d_%d_%d_%d_", prefix, arrayElemTag[t.Kind], t.Rank, t.Dims[0], t.Dims[1], t.Dims[2], t.Dims[3])
	case BufferKind:
		return fmt.Sprintf("BUF%d%s_", t.Channels, t.Space)
	}
	return "U_"
}

var arrayElemTag = map[Kind]string{
	BoolArrayKind:  "B",
	IntArrayKind:   "I",
	FloatArrayKind: "F",
	VecArrayKind:   "V",
}

// Mangle returns the identifier of a function or a kernel specialized for a list of argument types.
// The identifier is a valid symbol name in the target language:
//
//	___<number of arguments>_<tag of each argument>___<name>
func Mangle(name string, args []Type) string {
	var s strings.Builder
	fmt.Fprintf(&s, "___%d_", len(args))
	for _, arg := range args {
		s.WriteString(arg.Tag())
	}
	s.WriteString("___")
	s.WriteString(name)
	return s.String()
}

// FuncKey returns the key of a function in a declaration index.
// Functions are overloaded on their number of parameters.
func FuncKey(name string, arity int) string {
	return fmt.Sprintf("___%d_%s", arity, name)
}
