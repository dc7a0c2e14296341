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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/graphics"
)

// complexCases mix lines and curves, and contain strokes which overlap
// themselves. Overlapping parts of a stroke must be covered only once.
var complexCases = []TestCase{
	{
		Name:   "mixed_lines_curves",
		Path:   mixedLinesCurves(),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "stroked_mixed",
		Path:   mixedLinesCurves(),
		Width:  64,
		Height: 64,
		Op:     solid(3, graphics.LineCapRound, graphics.LineJoinRound),
	},
	{
		Name:   "spiral_overlap",
		Path:   spiral(32, 32, 5, 25, 3),
		Width:  64,
		Height: 64,
		Op:     solid(4, graphics.LineCapRound, graphics.LineJoinRound),
	},
	{
		Name:   "figure_eight",
		Path:   figureEight(32, 32, 20),
		Width:  64,
		Height: 64,
		Op:     solid(4, graphics.LineCapButt, graphics.LineJoinRound),
	},
	{
		Name:   "zigzag_thick",
		Path:   zigzag(10, 32, 54, 20, 6),
		Width:  64,
		Height: 64,
		Op:     solid(8, graphics.LineCapButt, graphics.LineJoinMiter),
	},
}

func mixedLinesCurves() *path.Data {
	return (&path.Data{}).
		MoveTo(pt(10, 50)).
		LineTo(pt(20, 30)).
		QuadTo(pt(32, 10), pt(44, 30)).
		LineTo(pt(54, 50)).
		CubeTo(pt(48, 60), pt(16, 60), pt(10, 50)).
		Close()
}

// spiral is an open polyline spiralling outwards from radius r0 to r1 in
// the given number of turns.
func spiral(cx, cy, r0, r1 float64, turns int) *path.Data {
	const stepsPerTurn = 48
	n := turns * stepsPerTurn
	p := (&path.Data{}).MoveTo(pt(cx+r0, cy))
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		phi := 2 * math.Pi * float64(turns) * t
		r := r0 + (r1-r0)*t
		p = p.LineTo(pt(cx+r*math.Cos(phi), cy+r*math.Sin(phi)))
	}
	return p
}

// figureEight is a closed curve which crosses itself in the centre.
func figureEight(cx, cy, r float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(cx, cy)).
		CubeTo(pt(cx+r, cy-r), pt(cx+r, cy+r), pt(cx, cy)).
		CubeTo(pt(cx-r, cy-r), pt(cx-r, cy+r), pt(cx, cy)).
		Close()
}

func zigzag(x1, y, x2, amplitude float64, n int) *path.Data {
	p := (&path.Data{}).MoveTo(pt(x1, y))
	dx := (x2 - x1) / float64(n)
	for i := 1; i <= n; i++ {
		dy := amplitude / 2
		if i%2 == 1 {
			dy = -dy
		}
		if i == n {
			dy = 0
		}
		p = p.LineTo(pt(x1+float64(i)*dx, y+dy))
	}
	return p
}
