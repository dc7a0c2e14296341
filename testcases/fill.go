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

var fillCases = []TestCase{
	{
		Name:   "triangle_nonzero",
		Path:   polygon(&path.Data{}, pt(10, 50), pt(32, 10), pt(54, 50)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "triangle_evenodd",
		Path:   polygon(&path.Data{}, pt(10, 50), pt(32, 10), pt(54, 50)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name:   "pentagram_nonzero",
		Path:   star(&path.Data{}, 32, 32, 25, 5, 2),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "pentagram_evenodd",
		Path:   star(&path.Data{}, 32, 32, 25, 5, 2),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name:   "heptagram_evenodd",
		Path:   star(&path.Data{}, 32, 32, 28, 7, 3),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name:   "pixel_aligned_square",
		Path:   rectangle(&path.Data{}, 8, 8, 24, 24),
		Width:  32,
		Height: 32,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "single_pixel",
		Path:   rectangle(&path.Data{}, 3, 4, 4, 5),
		Width:  8,
		Height: 8,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "reversed_triangle",
		Path:   polygon(&path.Data{}, pt(54, 50), pt(32, 10), pt(10, 50)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
}
