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

package fmterr

import (
	"fmt"
	"go/token"
	"runtime/debug"

	"github.com/gx-org/ivy/build/syntax"
	"github.com/pkg/errors"
)

// Kind of a diagnostic.
type Kind int

const (
	// Unsupported is a statement, an expression, or an index of a shape
	// the code generator does not support.
	Unsupported Kind = iota
	// UnknownType is a value for which no type has been inferred.
	UnknownType
	// InvalidReturn is a return statement incompatible with the other returns of a function.
	InvalidReturn
	// NotFound is a reference to a declaration that does not exist.
	NotFound
	// Internal is a broken invariant: a bug in a previous compilation stage.
	Internal
)

// String returns a description of the kind.
func (k Kind) String() string {
	switch k {
	case Unsupported:
		return "unsupported"
	case UnknownType:
		return "unknown type"
	case InvalidReturn:
		return "invalid return"
	case NotFound:
		return "not found"
	case Internal:
		return "internal"
	}
	return "invalid"
}

type (
	// ErrorWithPos is an error attached to a position in Ivy code.
	ErrorWithPos interface {
		error
		Kind() Kind
		Position() token.Position
		Err() error
	}

	errorWithPos struct {
		kind Kind
		fset *token.FileSet
		pos  token.Pos
		err  error
	}
)

// Position adds Ivy position information to an error.
// The node may be nil when no position is known.
func Position(fset *token.FileSet, src syntax.Node, kind Kind, err error) ErrorWithPos {
	pos := token.NoPos
	if src != nil {
		pos = src.Pos()
	}
	return errorWithPos{
		kind: kind,
		fset: fset,
		pos:  pos,
		err:  err,
	}
}

// Errorf returns a formatted compiler error.
func Errorf(fset *token.FileSet, src syntax.Node, kind Kind, format string, a ...any) error {
	return Position(fset, src, kind, errors.Errorf(format, a...))
}

// Internalf returns a formatted internal error.
func Internalf(fset *token.FileSet, src syntax.Node, format string, a ...any) error {
	return Position(fset, src, Internal, errors.Errorf("Ivy internal error. This is a bug in a previous compilation stage. Error: "+format, a...))
}

// KindOf returns the kind of a diagnostic.
// The second value is false if the error carries no position.
func KindOf(err error) (Kind, bool) {
	var withPos ErrorWithPos
	if !errors.As(err, &withPos) {
		return 0, false
	}
	return withPos.Kind(), true
}

// Error returns a string description of the error.
func (err errorWithPos) Error() (s string) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		s = fmt.Sprintf("recovered from panic when building error message: %T:\n%v", err.err, string(debug.Stack()))
	}()
	if err.fset == nil || !err.pos.IsValid() {
		return err.err.Error()
	}
	return PosString(err.fset, err.pos) + " " + err.err.Error()
}

// Unwrap the error.
func (err errorWithPos) Unwrap() error {
	return err.err
}

// Format writes the error into the state of the formatter.
func (err errorWithPos) Format(s fmt.State, verb rune) {
	format(err, s, verb)
}

func (err errorWithPos) Kind() Kind {
	return err.kind
}

func (err errorWithPos) Position() token.Position {
	if err.fset == nil {
		return token.Position{}
	}
	return err.fset.Position(err.pos)
}

func (err errorWithPos) Err() error {
	return err.err
}

// PosString returns a position as a string that can be used for an error.
func PosString(fset *token.FileSet, pos token.Pos) string {
	return fset.Position(pos).String() + ":"
}
