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

package generator

import "github.com/pkg/errors"

var (
	// ErrKernelNotFound is returned when no kernel has the requested name.
	ErrKernelNotFound = errors.New("kernel not found")
	// ErrKernelReturnsValue is returned when the body of a kernel returns a value.
	ErrKernelReturnsValue = errors.New("kernel must not return a value")
	// ErrInternal is returned when the program breaks an invariant
	// established by a previous compilation stage.
	ErrInternal = errors.New("internal error")
)
