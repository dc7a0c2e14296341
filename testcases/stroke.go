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

var strokeCases = []TestCase{
	{
		Name:   "line_butt",
		Path:   line(12, 32, 52, 32),
		Width:  64,
		Height: 64,
		Op:     solid(8, graphics.LineCapButt, graphics.LineJoinMiter),
	},
	{
		Name:   "line_round",
		Path:   line(12, 32, 52, 32),
		Width:  64,
		Height: 64,
		Op:     solid(8, graphics.LineCapRound, graphics.LineJoinMiter),
	},
	{
		Name:   "line_square",
		Path:   line(12, 32, 52, 32),
		Width:  64,
		Height: 64,
		Op:     solid(8, graphics.LineCapSquare, graphics.LineJoinMiter),
	},
	{
		Name:   "diagonal_butt",
		Path:   line(10, 54, 54, 10),
		Width:  64,
		Height: 64,
		Op:     solid(5, graphics.LineCapButt, graphics.LineJoinMiter),
	},
	{
		Name:   "corner_miter",
		Path:   corner(12, 52, 32, 12, 52, 52),
		Width:  64,
		Height: 64,
		Op:     solid(6, graphics.LineCapButt, graphics.LineJoinMiter),
	},
	{
		Name:   "corner_round",
		Path:   corner(12, 52, 32, 12, 52, 52),
		Width:  64,
		Height: 64,
		Op:     solid(6, graphics.LineCapButt, graphics.LineJoinRound),
	},
	{
		Name:   "corner_bevel",
		Path:   corner(12, 52, 32, 12, 52, 52),
		Width:  64,
		Height: 64,
		Op:     solid(6, graphics.LineCapButt, graphics.LineJoinBevel),
	},
	{
		Name:   "sharp_miter_limited",
		Path:   corner(8, 40, 56, 32, 8, 24),
		Width:  64,
		Height: 64,
		Op:     solid(4, graphics.LineCapButt, graphics.LineJoinMiter),
	},
	{
		Name:   "closed_square",
		Path:   rectangle(&path.Data{}, 16, 16, 48, 48),
		Width:  64,
		Height: 64,
		Op:     solid(6, graphics.LineCapButt, graphics.LineJoinMiter),
	},
	{
		Name:   "circle_outline",
		Path:   circle(&path.Data{}, 32, 32, 20, false),
		Width:  64,
		Height: 64,
		Op:     solid(3, graphics.LineCapButt, graphics.LineJoinRound),
	},
	{
		Name:   "hairline",
		Path:   line(4, 4.5, 60, 30.5),
		Width:  64,
		Height: 64,
		Op:     solid(0, graphics.LineCapButt, graphics.LineJoinMiter),
	},
	{
		Name:   "dashed",
		Path:   line(4, 32, 60, 32),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      4,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 10,
			Dash:       []float64{8, 4},
		},
	},
	{
		Name:   "dashed_odd_phase",
		Path:   corner(8, 52, 32, 12, 56, 52),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      3,
			Cap:        graphics.LineCapRound,
			Join:       graphics.LineJoinRound,
			MiterLimit: 10,
			Dash:       []float64{6},
			DashPhase:  -2,
		},
	},
	{
		Name:   "dots",
		Path:   line(8, 32, 56, 32),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      6,
			Cap:        graphics.LineCapRound,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 10,
			Dash:       []float64{0, 12},
		},
	},
}

func solid(width float64, lineCap graphics.LineCapStyle, join graphics.LineJoinStyle) Stroke {
	return Stroke{Width: width, Cap: lineCap, Join: join, MiterLimit: 10}
}

func line(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).MoveTo(pt(x1, y1)).LineTo(pt(x2, y2))
}

func corner(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return (&path.Data{}).MoveTo(pt(x1, y1)).LineTo(pt(x2, y2)).LineTo(pt(x3, y3))
}
