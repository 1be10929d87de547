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

package tiling_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gx-org/ivy/base/tiling"
)

func TestGrid(t *testing.T) {
	tests := []struct {
		dims tiling.Dims[int]
		want [3]int
	}{
		{
			dims: tiling.Dims[int]{Extent: [3]int{64, 64, 1}, Tile: [3]int{16, 16, 1}},
			want: [3]int{4, 4, 1},
		},
		{
			dims: tiling.Dims[int]{Extent: [3]int{100, 33, 3}, Tile: [3]int{32, 32, 1}},
			want: [3]int{4, 2, 3},
		},
	}
	for i, test := range tests {
		got := tiling.Grid(test.dims)
		if !cmp.Equal(got, test.want) {
			t.Errorf("test %d: got %v but want %v", i, got, test.want)
		}
	}
}

func TestBoundsNeverExceedExtent(t *testing.T) {
	d := tiling.Dims[int32]{Extent: [3]int32{100, 7, 1}, Tile: [3]int32{32, 3, 1}}
	grid := tiling.Grid(d)
	for axis := range 3 {
		covered := int32(0)
		for task := range grid[axis] {
			lo, hi := tiling.Bounds(d, axis, task)
			if hi > d.Extent[axis] {
				t.Errorf("axis %d task %d: upper bound %d exceeds extent %d", axis, task, hi, d.Extent[axis])
			}
			if lo != covered {
				t.Errorf("axis %d task %d: got lower bound %d but want %d", axis, task, lo, covered)
			}
			covered = hi
		}
		if covered != d.Extent[axis] {
			t.Errorf("axis %d: tasks cover [0, %d) but want [0, %d)", axis, covered, d.Extent[axis])
		}
	}
}

func TestSwapped(t *testing.T) {
	thin := tiling.Dims[int]{Extent: [3]int{8, 32, 1}}
	wide := tiling.Dims[int]{Extent: [3]int{32, 8, 1}}
	if !tiling.Swapped(thin, 16) {
		t.Errorf("8x32: axes not swapped")
	}
	if tiling.Swapped(wide, 16) {
		t.Errorf("32x8: axes swapped")
	}
}

func TestArray(t *testing.T) {
	d := tiling.Dims[int]{Origin: [3]int{1, 2, 3}, Extent: [3]int{4, 5, 6}, Tile: [3]int{7, 8, 9}}
	want := [9]int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	if got := d.Array(); got != want {
		t.Errorf("got %v but want %v", got, want)
	}
}
