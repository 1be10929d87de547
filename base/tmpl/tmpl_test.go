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

package tmpl_test

import (
	"testing"

	"github.com/gx-org/ivy/base/tmpl"
)

func TestExecute(t *testing.T) {
	tests := []struct {
		text string
		data any
		want string
	}{
		{
			text: `f({{join . ", "}})`,
			data: []string{"a", "b", "c"},
			want: "f(a, b, c)",
		},
		{
			text: `g({{join . ", "}})`,
			data: []string{},
			want: "g()",
		},
	}
	for i, test := range tests {
		got, err := tmpl.Execute(tmpl.Parse("test", test.text), test.data)
		if err != nil {
			t.Errorf("test %d: %v", i, err)
			continue
		}
		if got != test.want {
			t.Errorf("test %d: got %q but want %q", i, got, test.want)
		}
	}
}

func TestExecuteError(t *testing.T) {
	if _, err := tmpl.Execute(tmpl.Parse("field", "{{.Missing}}"), struct{}{}); err == nil {
		t.Errorf("expected an error")
	}
}
