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

package fmterr_test

import (
	"go/token"
	"strings"
	"testing"

	"github.com/gx-org/ivy/build/fmterr"
	"github.com/gx-org/ivy/build/syntax"
)

func TestAppenderPosition(t *testing.T) {
	fset := token.NewFileSet()
	file := fset.AddFile("blur.ivy", -1, 100)
	file.SetLines([]int{0, 10, 20})
	node := &syntax.Ident{Src: syntax.Src{At: file.Pos(12)}, Name: "x"}

	var errs fmterr.Errors
	app := errs.NewAppender(fset)
	if app.Appendf(node, fmterr.Unsupported, "cannot index %s", "x") {
		t.Errorf("Appendf returned true")
	}
	if errs.Len() != 1 {
		t.Fatalf("got %d errors but want 1", errs.Len())
	}
	got := errs.Errors()[0]
	if want := "blur.ivy:2:3: cannot index x"; got.Error() != want {
		t.Errorf("got %q but want %q", got.Error(), want)
	}
	kind, ok := fmterr.KindOf(got)
	if !ok || kind != fmterr.Unsupported {
		t.Errorf("got kind %v, %v but want %v, true", kind, ok, fmterr.Unsupported)
	}
	withPos := got.(fmterr.ErrorWithPos)
	if pos := withPos.Position(); pos.Line != 2 || pos.Column != 3 {
		t.Errorf("got position %v but want line 2 column 3", pos)
	}
}

func TestAppenderContext(t *testing.T) {
	var errs fmterr.Errors
	app := errs.NewAppender(nil)
	app.Push(fmterr.PrefixWith("in function %s: ", "f"))
	app.AppendInternalf(nil, "condition is not a boolean")
	app.Pop()
	app.Appendf(nil, fmterr.NotFound, "g not found")

	all := errs.Errors()
	if len(all) != 2 {
		t.Fatalf("got %d errors but want 2", len(all))
	}
	if !strings.HasPrefix(all[0].Error(), "in function f: ") {
		t.Errorf("error %q has no context prefix", all[0].Error())
	}
	if kind, _ := fmterr.KindOf(all[0]); kind != fmterr.Internal {
		t.Errorf("prefixed error lost its kind: got %v", kind)
	}
	if all[1].Error() != "g not found" {
		t.Errorf("got %q but want %q", all[1].Error(), "g not found")
	}
	if !errs.Has(fmterr.Internal) || errs.Has(fmterr.InvalidReturn) {
		t.Errorf("incorrect Has result")
	}
}

func TestEmptyErrors(t *testing.T) {
	var errs *fmterr.Errors
	if !errs.Empty() {
		t.Errorf("nil set is not empty")
	}
	if errs.ToError() != nil {
		t.Errorf("nil set returns a non-nil error")
	}
}
