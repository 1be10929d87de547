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

// Package tiling computes how a launcher partitions a 3D index space into tasks.
//
// The functions mirror the arithmetic emitted in the kernel launchers such that
// host code can size the dimension array passed to a kernel.
package tiling

import "golang.org/x/exp/constraints"

// Dims is the dimension array passed to every kernel:
// the origin, the extent, and the tile size of each axis.
type Dims[T constraints.Integer] struct {
	Origin, Extent, Tile [NumAxes]T
}

// NumAxes is the number of axes of the index space.
const NumAxes = 3

// OriginIndex returns the position of the origin of an axis in the dimension array.
func OriginIndex(axis int) int { return axis }

// ExtentIndex returns the position of the extent of an axis in the dimension array.
func ExtentIndex(axis int) int { return NumAxes + axis }

// TileIndex returns the position of the tile size of an axis in the dimension array.
func TileIndex(axis int) int { return 2*NumAxes + axis }

// Array returns the dimension array in the order read by the kernels:
// 3 origins, 3 extents, 3 tile sizes.
func (d Dims[T]) Array() [3 * NumAxes]T {
	var a [3 * NumAxes]T
	for axis := range NumAxes {
		a[OriginIndex(axis)] = d.Origin[axis]
		a[ExtentIndex(axis)] = d.Extent[axis]
		a[TileIndex(axis)] = d.Tile[axis]
	}
	return a
}

// CeilDiv returns the ceiling of a/b for positive values.
func CeilDiv[T constraints.Integer](a, b T) T {
	if b == 0 {
		return 0
	}
	return (a + b - 1) / b
}

// Grid returns the number of tasks launched along each axis.
func Grid[T constraints.Integer](d Dims[T]) [NumAxes]T {
	var grid [NumAxes]T
	for i := range grid {
		grid[i] = CeilDiv(d.Extent[i], d.Tile[i])
	}
	return grid
}

// Bounds returns the half-open range [min, max) of the indices processed
// by a task along an axis. The range never exceeds the extent of the axis.
func Bounds[T constraints.Integer](d Dims[T], axis int, task T) (lo, hi T) {
	lo = d.Origin[axis] + task*d.Tile[axis]
	hi = d.Origin[axis] + min((task+1)*d.Tile[axis], d.Extent[axis])
	return
}

// Swapped returns true if the kernels iterate over the y axis in their
// inner loop instead of the x axis.
func Swapped[T constraints.Integer](d Dims[T], threshold T) bool {
	return d.Extent[0] < threshold && d.Extent[1] > threshold
}
