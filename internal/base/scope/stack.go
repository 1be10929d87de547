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

package scope

// Stack of scopes. Every Open or OpenDetached must be matched by a Close.
type Stack[V any] struct {
	root    *RWScope[V]
	current *RWScope[V]
	// previous current scopes, restored by Close.
	saved []*RWScope[V]
}

// NewStack returns a stack with an empty root scope.
func NewStack[V any]() *Stack[V] {
	st := &Stack[V]{}
	st.Reset()
	return st
}

// Reset the stack to a single empty root scope.
func (st *Stack[V]) Reset() {
	st.root = NewScope[V](nil)
	st.current = st.root
	st.saved = nil
}

// Root returns the outermost scope.
func (st *Stack[V]) Root() *RWScope[V] {
	return st.root
}

// Current returns the innermost scope.
func (st *Stack[V]) Current() *RWScope[V] {
	return st.current
}

// Depth returns the number of scopes opened and not closed yet.
func (st *Stack[V]) Depth() int {
	return len(st.saved)
}

// Open a scope nested in the current scope.
func (st *Stack[V]) Open() {
	st.push(NewScope(st.current))
}

// OpenDetached opens a scope nested in the root scope.
// Values defined in the scopes opened since the root are not visible
// until the detached scope is closed.
func (st *Stack[V]) OpenDetached() {
	st.push(NewScope(st.root))
}

func (st *Stack[V]) push(sc *RWScope[V]) {
	st.saved = append(st.saved, st.current)
	st.current = sc
}

// Close the innermost scope and restore the scope that was current when it was opened.
// Closing the root scope is a no-op.
func (st *Stack[V]) Close() {
	if len(st.saved) == 0 {
		return
	}
	st.current = st.saved[len(st.saved)-1]
	st.saved = st.saved[:len(st.saved)-1]
}

// Define a value in the current scope.
func (st *Stack[V]) Define(key string, value V) {
	st.current.Define(key, value)
}

// Find a value from the current scope.
func (st *Stack[V]) Find(key string) (V, bool) {
	return st.current.Find(key)
}

// Assign a value in the nearest scope defining the key.
func (st *Stack[V]) Assign(key string, value V) error {
	return st.current.Assign(key, value)
}
