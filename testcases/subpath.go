// seehuhn.de/go/grays - an anti-aliased scan converter
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.


package testcases

import "seehuhn.de/go/geom/path"

var subpathCases = []TestCase{
	{
		Name:   "overlapping_squares_nonzero",
		Path:   rectangle(rectangle(&path.Data{}, 8, 8, 40, 40), 24, 24, 56, 56),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "overlapping_squares_evenodd",
		Path:   rectangle(rectangle(&path.Data{}, 8, 8, 40, 40), 24, 24, 56, 56),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name:   "ring_opposite_winding",
		Path:   circle(circle(&path.Data{}, 32, 32, 26, false), 32, 32, 14, true),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "ring_same_winding_evenodd",
		Path:   circle(circle(&path.Data{}, 32, 32, 26, false), 32, 32, 14, false),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name:   "nested_squares_evenodd",
		Path:   nestedSquares(32, 32, 28, 4),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name:   "checkerboard",
		Path:   checkerboard(8, 8, 8),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
}

// nestedSquares builds concentric squares, all with the same orientation,
// which shrink by step on each side.
func nestedSquares(cx, cy, r, step float64) *path.Data {
	p := &path.Data{}
	for ; r > 0; r -= step {
		p = rectangle(p, cx-r, cy-r, cx+r, cy+r)
	}
	return p
}

// checkerboard builds a board of rows x cols squares of the given size,
// filling every other square.
func checkerboard(rows, cols int, size float64) *path.Data {
	p := &path.Data{}
	for row := range rows {
		for col := range cols {
			if (row+col)%2 != 0 {
				continue
			}
			x := float64(col) * size
			y := float64(row) * size
			p = rectangle(p, x, y, x+size, y+size)
		}
	}
	return p
}
