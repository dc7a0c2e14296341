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

var precisionCases = []TestCase{
	{
		Name:   "subpixel_offset_25",
		Path:   rectangle(&path.Data{}, 4.25, 4.25, 12.25, 12.25),
		Width:  16,
		Height: 16,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "subpixel_offset_50",
		Path:   rectangle(&path.Data{}, 4.5, 4.5, 12.5, 12.5),
		Width:  16,
		Height: 16,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "subpixel_offset_75",
		Path:   rectangle(&path.Data{}, 4.75, 4.75, 12.75, 12.75),
		Width:  16,
		Height: 16,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "thin_sliver_horizontal",
		Path:   rectangle(&path.Data{}, 2, 7.4, 30, 7.6),
		Width:  32,
		Height: 16,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "thin_sliver_diagonal",
		Path:   polygon(&path.Data{}, pt(2, 2), pt(30, 29.5), pt(30, 30)),
		Width:  32,
		Height: 32,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "shallow_edge",
		Path:   polygon(&path.Data{}, pt(0, 10), pt(64, 9), pt(64, 16), pt(0, 16)),
		Width:  64,
		Height: 16,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "steep_edge",
		Path:   polygon(&path.Data{}, pt(10, 0), pt(9, 64), pt(16, 64), pt(16, 0)),
		Width:  16,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "sub_pixel_triangle",
		Path:   polygon(&path.Data{}, pt(3.1, 3.2), pt(3.9, 3.3), pt(3.5, 3.9)),
		Width:  8,
		Height: 8,
		Op:     Fill{Rule: NonZero},
	},
}
