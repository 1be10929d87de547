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

package syntax

// UnaryOp is a unary operator.
type UnaryOp int

// Unary operators.
const (
	Not UnaryOp = iota
	Neg
)

// String returns the operator symbol.
func (op UnaryOp) String() string {
	switch op {
	case Not:
		return "!"
	case Neg:
		return "-"
	}
	return "?"
}

// BinaryOp is a binary operator.
type BinaryOp int

// Binary operators.
const (
	And BinaryOp = iota
	Or
	Add
	Sub
	Mul
	Div
	Mod
	Pow
	Equal
	NotEqual
	Less
	LessEqual
	Greater
	GreaterEqual
)

var binaryOpSymbols = map[BinaryOp]string{
	And:          "&&",
	Or:           "||",
	Add:          "+",
	Sub:          "-",
	Mul:          "*",
	Div:          "/",
	Mod:          "%",
	Pow:          "^",
	Equal:        "==",
	NotEqual:     "!=",
	Less:         "<",
	LessEqual:    "<=",
	Greater:      ">",
	GreaterEqual: ">=",
}

// String returns the operator symbol in the source language.
func (op BinaryOp) String() string {
	s, ok := binaryOpSymbols[op]
	if !ok {
		return "?"
	}
	return s
}

// IsComparison returns true if the operator compares its operands.
func (op BinaryOp) IsComparison() bool {
	switch op {
	case Equal, NotEqual, Less, LessEqual, Greater, GreaterEqual:
		return true
	}
	return false
}

// IsLogical returns true for the boolean operators.
func (op BinaryOp) IsLogical() bool {
	return op == And || op == Or
}
