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
	"go/token"

	"github.com/gx-org/ivy/build/syntax"
)

// Appender appends errors to a set within the context of a FileSet.
// Contexts pushed on the appender prefix the errors appended while they are active.
type Appender struct {
	prefixes []func(error) error
	errors   *Errors
	fset     *token.FileSet
}

// Push a new context in the error stack.
func (app *Appender) Push(f func(error) error) {
	app.prefixes = append(app.prefixes, f)
}

// Pop removes the last error context in the stack.
func (app *Appender) Pop() {
	app.prefixes = app.prefixes[:len(app.prefixes)-1]
}

// Append an error to the list of errors.
// Always returns false such that callers can write:
//
//	return app.Append(err)
func (app *Appender) Append(err error) bool {
	for i := len(app.prefixes) - 1; i >= 0; i-- {
		err = app.prefixes[i](err)
	}
	return app.errors.Append(err)
}

// Appendf appends an error at a position.
func (app *Appender) Appendf(node syntax.Node, kind Kind, format string, a ...any) bool {
	return app.Append(Errorf(app.fset, node, kind, format, a...))
}

// AppendInternalf appends an internal error at a position.
func (app *Appender) AppendInternalf(node syntax.Node, format string, a ...any) bool {
	return app.Append(Internalf(app.fset, node, format, a...))
}
