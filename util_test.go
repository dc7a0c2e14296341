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


package grays

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/math/fixed"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// rowSpan is a span together with its row.
type rowSpan struct {
	Y int
	Span
}

// recorder collects all spans passed to its emit method.
type recorder struct {
	spans []rowSpan
	calls int
}

func (r *recorder) emit(y int, spans []Span) {
	r.calls++
	for _, s := range spans {
		r.spans = append(r.spans, rowSpan{y, s})
	}
}

// pixels returns the coverage of every pixel in the w x h area with the
// top left corner at (x0, y0).
func (r *recorder) pixels(x0, y0, w, h int) [][]uint8 {
	res := make([][]uint8, h)
	for i := range res {
		res[i] = make([]uint8, w)
	}
	for _, s := range r.spans {
		y := s.Y - y0
		if y < 0 || y >= h {
			continue
		}
		for x := s.X; x < s.X+s.Len; x++ {
			if x-x0 >= 0 && x-x0 < w {
				res[y][x-x0] = s.Coverage
			}
		}
	}
	return res
}

func pt26(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: toFixed(x), Y: toFixed(y)}
}

// addRect adds the rectangle [x1,x2]x[y1,y2] as a contour to o, running
// through (x1,y1), (x2,y1), (x2,y2), (x1,y2).
func addRect(o *Outline, x1, y1, x2, y2 float64) *Outline {
	return o.MoveTo(pt26(x1, y1)).
		LineTo(pt26(x2, y1)).
		LineTo(pt26(x2, y2)).
		LineTo(pt26(x1, y2)).
		Close()
}

// render scan-converts o in direct mode, clipped to the given area, using a
// raster with a pool of poolSize bytes.
func render(t *testing.T, o *Outline, rule FillRule, poolSize int) *recorder {
	t.Helper()
	r, err := NewRaster(poolSize)
	if err != nil {
		t.Fatal(err)
	}
	rec := &recorder{}
	err = r.Render(&Params{
		Source:   o,
		Flags:    FlagAA | FlagDirect,
		FillRule: rule,
		Spans:    rec.emit,
	})
	if err != nil {
		t.Fatal(err)
	}
	return rec
}
