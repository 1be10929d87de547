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

// Package fmt formats generated source code for humans.
package fmt

import (
	"fmt"
	"strings"
)

// Number prefixes every line of a text with its line number.
// Numbers are padded with zeros to the width of the last line number.
func Number(x string) string {
	lines := strings.SplitAfter(x, "\n")
	if len(lines) > 1 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	format := fmt.Sprintf("%%0%dd %%s", len(fmt.Sprint(len(lines))))
	var s strings.Builder
	for i, line := range lines {
		fmt.Fprintf(&s, format, i+1, line)
	}
	return s.String()
}

// Indent every non-empty line of a text with a tabulation.
func Indent(x string) string {
	var s strings.Builder
	for _, line := range strings.SplitAfter(x, "\n") {
		if strings.TrimSpace(line) != "" {
			s.WriteString("\t")
		}
		s.WriteString(line)
	}
	return s.String()
}

// List formats a list of values, one per line, each prefixed with a dash.
func List[T any](vals []T) string {
	var s strings.Builder
	for _, val := range vals {
		fmt.Fprintf(&s, "- %v\n", val)
	}
	return s.String()
}
