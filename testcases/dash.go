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

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/graphics"
)

// dashCases exercise the dash pattern: odd-length patterns, phases,
// dashes which run around corners, and dashes of length zero.
var dashCases = []TestCase{
	{
		Name:   "single_element",
		Path:   line(5, 32, 59, 32),
		Width:  64,
		Height: 64,
		Op:     dashed(4, graphics.LineCapButt, 0, 10),
	},
	{
		Name:   "three_element",
		Path:   line(5, 32, 59, 32),
		Width:  64,
		Height: 64,
		Op:     dashed(4, graphics.LineCapButt, 0, 5, 3, 8),
	},
	{
		Name:   "phase_negative",
		Path:   line(5, 32, 59, 32),
		Width:  64,
		Height: 64,
		Op:     dashed(4, graphics.LineCapButt, -3, 8, 4),
	},
	{
		Name:   "phase_large",
		Path:   line(5, 32, 59, 32),
		Width:  64,
		Height: 64,
		Op:     dashed(4, graphics.LineCapSquare, 1001, 8, 4),
	},
	{
		Name:   "corner_in_dash",
		Path:   corner(10, 50, 32, 14, 54, 50),
		Width:  64,
		Height: 64,
		Op:     dashed(4, graphics.LineCapButt, 0, 38, 6),
	},
	{
		Name:   "closed_square",
		Path:   rectangle(&path.Data{}, 12, 12, 52, 52),
		Width:  64,
		Height: 64,
		Op:     dashed(3, graphics.LineCapButt, 5, 12, 6),
	},
	{
		Name:   "zero_round",
		Path:   line(8, 32, 56, 32),
		Width:  64,
		Height: 64,
		Op:     dashed(6, graphics.LineCapRound, 0, 0, 8),
	},
	{
		Name:   "zero_butt",
		Path:   line(8, 32, 56, 32),
		Width:  64,
		Height: 64,
		Op:     dashed(6, graphics.LineCapButt, 0, 0, 8),
	},
}

func dashed(width float64, lineCap graphics.LineCapStyle, phase float64, pattern ...float64) Stroke {
	return Stroke{
		Width:      width,
		Cap:        lineCap,
		Join:       graphics.LineJoinMiter,
		MiterLimit: 10,
		Dash:       pattern,
		DashPhase:  phase,
	}
}
