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
	"math"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

func line(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x1, Y: y1}).
		LineTo(vec.Vec2{X: x2, Y: y2})
}

// stroke renders p with the settings applied by setup and returns the
// coverage of the w x h area at the origin.
func stroke(t *testing.T, p *path.Data, w, h int, setup func(r *Rasterizer)) [][]uint8 {
	t.Helper()
	r := NewRasterizer(rect.Rect{URx: float64(w), URy: float64(h)})
	if setup != nil {
		setup(r)
	}
	rec := &recorder{}
	if err := r.Stroke(p.Iter(), rec.emit); err != nil {
		t.Fatal(err)
	}
	return rec.pixels(0, 0, w, h)
}

// filled returns the coverage of the rectangle [x1,x2)x[y1,y2) in a w x h area,
// for integer coordinates.
func filled(w, h, x1, y1, x2, y2 int) [][]uint8 {
	res := make([][]uint8, h)
	for y := range res {
		res[y] = make([]uint8, w)
		for x := range res[y] {
			if x >= x1 && x < x2 && y >= y1 && y < y2 {
				res[y][x] = 255
			}
		}
	}
	return res
}

func TestStrokeCaps(t *testing.T) {
	cases := []struct {
		cap  graphics.LineCapStyle
		want [][]uint8
	}{
		{graphics.LineCapButt, filled(20, 10, 2, 3, 14, 7)},
		{graphics.LineCapSquare, filled(20, 10, 0, 3, 16, 7)},
	}
	for _, c := range cases {
		t.Run(c.cap.String(), func(t *testing.T) {
			got := stroke(t, line(2, 5, 14, 5), 20, 10, func(r *Rasterizer) {
				r.Width = 4
				r.Cap = c.cap
			})
			diff(t, c.want, got)
		})
	}
}

func TestStrokeRoundCap(t *testing.T) {
	got := stroke(t, line(4, 5, 14, 5), 20, 10, func(r *Rasterizer) {
		r.Width = 4
		r.Cap = graphics.LineCapRound
	})
	if got[5][3] != 255 || got[5][14] != 255 {
		t.Errorf("caps not filled: %v", got[5])
	}
	for _, x := range []int{2, 15} {
		if c := got[5][x]; c == 0 || c == 255 {
			t.Errorf("partial coverage expected at the tip, got %d", c)
		}
	}
	if got[5][1] != 0 {
		t.Errorf("cap too long: %v", got[5])
	}
	if got[3][1] != 0 || got[3][16] != 0 {
		t.Error("round cap covers the corners")
	}
}

func TestStrokeJoins(t *testing.T) {
	corner := (&path.Data{}).
		MoveTo(vec.Vec2{X: 4, Y: 20}).
		LineTo(vec.Vec2{X: 20, Y: 20}).
		LineTo(vec.Vec2{X: 20, Y: 4})

	cases := []struct {
		name    string
		join    graphics.LineJoinStyle
		limit   float64
		checkFn func(c uint8) bool
	}{
		{"miter", graphics.LineJoinMiter, 10, func(c uint8) bool { return c == 255 }},
		{"miter limit", graphics.LineJoinMiter, 1, func(c uint8) bool { return c == 0 }},
		{"bevel", graphics.LineJoinBevel, 10, func(c uint8) bool { return c == 0 }},
		{"round", graphics.LineJoinRound, 10, func(c uint8) bool { return c > 0 && c < 255 }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := stroke(t, corner, 30, 30, func(r *Rasterizer) {
				r.Width = 4
				r.Join = c.join
				r.MiterLimit = c.limit
			})
			if got[20][20] != 255 {
				t.Errorf("inner part of the join: got %d", got[20][20])
			}
			if !c.checkFn(got[21][21]) {
				t.Errorf("outer corner: unexpected coverage %d", got[21][21])
			}
			if got[17][17] != 0 {
				t.Errorf("inside of the corner: got %d", got[17][17])
			}
		})
	}
}

func TestStrokeClosed(t *testing.T) {
	square := (&path.Data{}).
		MoveTo(vec.Vec2{X: 4, Y: 4}).
		LineTo(vec.Vec2{X: 12, Y: 4}).
		LineTo(vec.Vec2{X: 12, Y: 12}).
		LineTo(vec.Vec2{X: 4, Y: 12}).
		Close()

	got := stroke(t, square, 16, 16, func(r *Rasterizer) {
		r.Width = 2
	})

	want := filled(16, 16, 3, 3, 13, 13)
	for y := 5; y < 11; y++ {
		for x := 5; x < 11; x++ {
			want[y][x] = 0
		}
	}
	diff(t, want, got)
}

func TestStrokeDash(t *testing.T) {
	got := stroke(t, line(0, 5, 28, 5), 32, 8, func(r *Rasterizer) {
		r.Width = 2
		r.Dash = []float64{4, 4}
	})

	want := filled(32, 8, 0, 4, 4, 6)
	for _, x0 := range []int{8, 16, 24} {
		for y := 4; y < 6; y++ {
			for x := x0; x < x0+4; x++ {
				want[y][x] = 255
			}
		}
	}
	diff(t, want, got)
}

func TestStrokeDashPhase(t *testing.T) {
	// the phase shifts the pattern backwards along the path
	got := stroke(t, line(0, 5, 28, 5), 32, 8, func(r *Rasterizer) {
		r.Width = 2
		r.Dash = []float64{4, 4}
		r.DashPhase = 6
	})

	want := filled(32, 8, 2, 4, 6, 6)
	for _, x0 := range []int{10, 18, 26} {
		for y := 4; y < 6; y++ {
			for x := x0; x < min(x0+4, 28); x++ {
				want[y][x] = 255
			}
		}
	}
	diff(t, want, got)
}

func TestStrokeDots(t *testing.T) {
	got := stroke(t, line(3, 5, 27, 5), 32, 10, func(r *Rasterizer) {
		r.Width = 4
		r.Cap = graphics.LineCapRound
		r.Dash = []float64{0, 6}
	})
	for _, x := range []int{3, 9, 15, 21, 27} {
		if got[4][x] != 255 || got[5][x-1] != 255 {
			t.Errorf("no dot at x=%d", x)
		}
	}
	for _, x := range []int{6, 12, 18, 24} {
		if got[5][x] != 0 {
			t.Errorf("gap at x=%d is covered: %d", x, got[5][x])
		}
	}

	// with butt caps, dashes of length zero are invisible
	got = stroke(t, line(3, 5, 27, 5), 32, 10, func(r *Rasterizer) {
		r.Width = 4
		r.Dash = []float64{0, 6}
	})
	diff(t, filled(32, 10, 0, 0, 0, 0), got)
}

func TestStrokeZeroLength(t *testing.T) {
	dot := (&path.Data{}).MoveTo(vec.Vec2{X: 5, Y: 5}).Close()

	got := stroke(t, dot, 10, 10, func(r *Rasterizer) {
		r.Width = 4
		r.Cap = graphics.LineCapRound
	})
	if got[4][4] != 255 || got[5][5] != 255 {
		t.Errorf("dot not drawn: %v", got[4:6])
	}

	got = stroke(t, dot, 10, 10, func(r *Rasterizer) {
		r.Width = 4
	})
	diff(t, filled(10, 10, 0, 0, 0, 0), got)
}

func TestStrokeHairline(t *testing.T) {
	got := stroke(t, line(2, 5.5, 10, 5.5), 12, 10, func(r *Rasterizer) {
		r.Width = 0
	})
	diff(t, filled(12, 10, 2, 5, 10, 6), got)
}

func TestStrokeCircleArea(t *testing.T) {
	const radius, width = 20.0, 3.0
	const k = 0.5522847498
	d := k * radius
	c := vec.Vec2{X: 25, Y: 25}
	circle := (&path.Data{}).
		MoveTo(vec.Vec2{X: c.X + radius, Y: c.Y}).
		CubeTo(vec.Vec2{X: c.X + radius, Y: c.Y + d}, vec.Vec2{X: c.X + d, Y: c.Y + radius}, vec.Vec2{X: c.X, Y: c.Y + radius}).
		CubeTo(vec.Vec2{X: c.X - d, Y: c.Y + radius}, vec.Vec2{X: c.X - radius, Y: c.Y + d}, vec.Vec2{X: c.X - radius, Y: c.Y}).
		CubeTo(vec.Vec2{X: c.X - radius, Y: c.Y - d}, vec.Vec2{X: c.X - d, Y: c.Y - radius}, vec.Vec2{X: c.X, Y: c.Y - radius}).
		CubeTo(vec.Vec2{X: c.X + d, Y: c.Y - radius}, vec.Vec2{X: c.X + radius, Y: c.Y - d}, vec.Vec2{X: c.X + radius, Y: c.Y}).
		Close()

	joins := []graphics.LineJoinStyle{
		graphics.LineJoinMiter, graphics.LineJoinRound, graphics.LineJoinBevel,
	}
	for _, join := range joins {
		got := stroke(t, circle, 50, 50, func(r *Rasterizer) {
			r.Width = width
			r.Join = join
		})
		sum := 0.0
		for _, row := range got {
			for _, v := range row {
				sum += float64(v) / 255
			}
		}
		want := 2 * math.Pi * radius * width
		if math.Abs(sum-want) > 0.01*want {
			t.Errorf("%s: ring area %.1f, want %.1f", join, sum, want)
		}
	}
}

// Caps and joins must not add coverage to pixels which the line body covers
// already.
func TestStrokeRoundCapEdge(t *testing.T) {
	got := stroke(t, line(5, 10, 25, 10), 30, 20, func(r *Rasterizer) {
		r.Width = 1
		r.Cap = graphics.LineCapRound
	})
	for _, y := range []int{9, 10} {
		for x := 5; x < 25; x++ {
			if v := got[y][x]; v < 127 || v > 129 {
				t.Errorf("pixel (%d,%d) = %d, want 128", x, y, v)
			}
		}
		if v := got[y][4]; v == 0 || v >= 128 {
			t.Errorf("cap pixel (4,%d) = %d", y, v)
		}
	}
}

func TestStrokeCornerArea(t *testing.T) {
	// two 16x4 bars which share a 2x2 square, plus the outer corner
	cases := []struct {
		join graphics.LineJoinStyle
		want float64
	}{
		{graphics.LineJoinBevel, 124 + 2},
		{graphics.LineJoinMiter, 124 + 4},
		{graphics.LineJoinRound, 124 + math.Pi},
	}
	corner := (&path.Data{}).
		MoveTo(vec.Vec2{X: 4.3, Y: 20.3}).
		LineTo(vec.Vec2{X: 20.3, Y: 20.3}).
		LineTo(vec.Vec2{X: 20.3, Y: 4.3})
	for _, c := range cases {
		t.Run(c.join.String(), func(t *testing.T) {
			got := stroke(t, corner, 30, 30, func(r *Rasterizer) {
				r.Width = 4
				r.Join = c.join
			})
			sum := 0.0
			for _, row := range got {
				for _, v := range row {
					sum += float64(v) / 255
				}
			}
			if math.Abs(sum-c.want) > 0.6 {
				t.Errorf("area %.2f, want %.2f", sum, c.want)
			}
		})
	}
}
