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

// Package tmpl provides helper functions for templates generating source code.
package tmpl

import (
	"strings"
	"text/template"

	"github.com/pkg/errors"
)

// Funcs returns the functions available to source code templates:
//
//	join: joins a list of strings with a separator.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"join": func(ss []string, sep string) string {
			return strings.Join(ss, sep)
		},
	}
}

// Parse a template with the source code functions.
func Parse(name, text string) *template.Template {
	return template.Must(template.New(name).Funcs(Funcs()).Parse(text))
}

// Execute a template and returns the generated code.
func Execute(tmpl *template.Template, data any) (string, error) {
	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errors.Errorf("cannot generate code for %T with template %s: %v", data, tmpl.Name(), err)
	}
	return buf.String(), nil
}
