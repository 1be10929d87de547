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
	"strings"
)

// Errors is a set of errors.
type Errors struct {
	errs []error
}

// NewAppender returns a new appender to collect errors.
func (errs *Errors) NewAppender(fset *token.FileSet) *Appender {
	return &Appender{errors: errs, fset: fset}
}

// Append an error to the list of errors.
func (errs *Errors) Append(err error) bool {
	errs.errs = append(errs.errs, err)
	return false
}

// Empty returns true if no error has been declared.
func (errs *Errors) Empty() bool {
	return errs == nil || len(errs.errs) == 0
}

// Len returns the number of errors.
func (errs *Errors) Len() int {
	if errs == nil {
		return 0
	}
	return len(errs.errs)
}

// Has returns true if the set contains an error of a given kind.
func (errs *Errors) Has(kind Kind) bool {
	for _, err := range errs.Errors() {
		if k, ok := KindOf(err); ok && k == kind {
			return true
		}
	}
	return false
}

// Error returns the current set of errors as a string.
func (errs *Errors) Error() string {
	var ss []string
	for _, err := range errs.errs {
		ss = append(ss, err.Error())
	}
	return strings.Join(ss, "\n")
}

// Errors returns the list of all collected errors.
func (errs *Errors) Errors() []error {
	if errs == nil {
		return nil
	}
	return append([]error{}, errs.errs...)
}

// ToError returns the errors as an error interface.
func (errs *Errors) ToError() error {
	if errs.Empty() {
		return nil
	}
	return errs
}

// Format writes the error into the state of the formatter.
func (errs *Errors) Format(s fmt.State, verb rune) {
	flag := ""
	if s.Flag('+') {
		flag = "+"
	}
	for _, e := range errs.errs {
		format := fmt.Sprintf("%%%s%s\n", flag, string(verb))
		fmt.Fprintf(s, format, e)
	}
}

// String representation of the error.
func (errs *Errors) String() string {
	return errs.Error()
}
