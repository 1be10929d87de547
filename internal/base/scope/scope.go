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

// Package scope provides nested variable scopes and a stack discipline to open and close them.
package scope

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// RWScope stores key,value pairs.
// A value can retrieved from its key by querying the scope and,
// if not found, its parents recursively.
type RWScope[V any] struct {
	parent *RWScope[V]
	local  map[string]V
}

// NewScope returns a new scope given a parent, which can be nil.
func NewScope[V any](parent *RWScope[V]) *RWScope[V] {
	return &RWScope[V]{
		parent: parent,
		local:  make(map[string]V),
	}
}

// Parent returns the parent of the scope, nil for a root scope.
func (s *RWScope[V]) Parent() *RWScope[V] {
	return s.parent
}

// Define maps `key` to `value` in the local scope, overwriting if necessary.
func (s *RWScope[V]) Define(k string, v V) {
	s.local[k] = v
}

// IsLocal returns true if the key is defined in the local scope.
func (s *RWScope[V]) IsLocal(key string) bool {
	_, ok := s.local[key]
	return ok
}

// Find a key in the scope and its parent.
func (s *RWScope[V]) Find(key string) (value V, ok bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if value, ok = sc.local[key]; ok {
			return
		}
	}
	return
}

// Assign maps an existing `key` to `value`, failing if no matching mapping is found.
// The assignment starts at the scope's innermost namespace and cascades upwards through
// successive parent scopes.
func (s *RWScope[V]) Assign(key string, value V) error {
	for sc := s; sc != nil; sc = sc.parent {
		if sc.IsLocal(key) {
			sc.Define(key, value)
			return nil
		}
	}
	return errors.Errorf("cannot assign %s: not defined in scope", key)
}

// String representation of the scope.
func (s *RWScope[V]) String() string {
	var levels []string
	for sc := s; sc != nil; sc = sc.parent {
		keys := make([]string, 0, len(sc.local))
		for k := range sc.local {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var kvs []string
		for _, k := range keys {
			kvs = append(kvs, fmt.Sprintf("%s: %v", k, sc.local[k]))
		}
		levels = append(levels, "{"+strings.Join(kvs, ", ")+"}")
	}
	return strings.Join(levels, " -> ")
}
