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

// largeCases need more cells than the initial cell pool holds, so that
// band splitting and pool growth are exercised.
var largeCases = []TestCase{
	{
		Name:   "large_disk",
		Path:   circle(&path.Data{}, 256, 256, 240, false),
		Width:  512,
		Height: 512,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "large_star",
		Path:   star(&path.Data{}, 256, 256, 250, 31, 15),
		Width:  512,
		Height: 512,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name:   "large_grid",
		Path:   grid(16, 16, 512, 512, 3),
		Width:  512,
		Height: 512,
		Op:     Fill{Rule: NonZero},
	},
}

// grid builds rows x cols rectangles covering a width x height area, with
// gap pixels between the rectangles.
func grid(rows, cols int, width, height, gap float64) *path.Data {
	w := width / float64(cols)
	h := height / float64(rows)

	p := &path.Data{}
	for row := range rows {
		for col := range cols {
			x := float64(col) * w
			y := float64(row) * h
			p = rectangle(p, x+gap, y+gap, x+w-gap, y+h-gap)
		}
	}
	return p
}
