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

// clipCases contain shapes which extend beyond the canvas. Edges left of
// the canvas still determine the coverage of the visible pixels.
var clipCases = []TestCase{
	{
		Name:   "overhang_left",
		Path:   polygon(&path.Data{}, pt(-40, 8), pt(24, 8), pt(24, 24), pt(-40, 24)),
		Width:  32,
		Height: 32,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "overhang_right",
		Path:   polygon(&path.Data{}, pt(8, 8), pt(80, 8), pt(80, 24), pt(8, 24)),
		Width:  32,
		Height: 32,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "slanted_left_edge",
		Path:   polygon(&path.Data{}, pt(-20, 0), pt(16, 0), pt(16, 32), pt(10, 32)),
		Width:  32,
		Height: 32,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "overhang_all_sides",
		Path:   circle(&path.Data{}, 16, 16, 20, false),
		Width:  32,
		Height: 32,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "outside",
		Path:   rectangle(&path.Data{}, 40, 40, 60, 60),
		Width:  32,
		Height: 32,
		Op:     Fill{Rule: NonZero},
	},
}
