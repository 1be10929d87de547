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

// Package fmterr provides helpers to accumulate diagnostics while generating
// code and format them given a position in a file set.
package fmterr

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// PrefixWith returns a function to prefix errors with a formatted string.
// The kind and the position of a prefixed diagnostic are preserved.
func PrefixWith(s string, o ...any) func(err error) error {
	prefix := fmt.Sprintf(s, o...)
	return func(err error) error {
		withPos, ok := err.(errorWithPos)
		if !ok {
			return fmt.Errorf("%s%w", prefix, err)
		}
		withPos.err = fmt.Errorf("%s%w", prefix, withPos.err)
		return withPos
	}
}

func format(err error, s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "%s", err.Error())
			var withSt interface {
				StackTrace() errors.StackTrace
			}
			if errors.As(err, &withSt) {
				fmt.Fprintf(s, "\nError generated at:%+v\n", withSt.StackTrace())
			}
			return
		}
		fallthrough
	case 's':
		io.WriteString(s, err.Error())
	case 'q':
		fmt.Fprintf(s, "%q", err.Error())
	}
}
