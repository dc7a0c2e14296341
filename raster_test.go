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
	"errors"
	"image"
	"math"
	"testing"
)

// TestTriangleCoverage verifies exact coverage values for a simple triangle.
// The triangle (0,0)→(8,0)→(8,1)→close has a diagonal edge y = x/8.
// Pixel x is covered to (2x+1)/16, so the coverage values are 16*(2x+1).
func TestTriangleCoverage(t *testing.T) {
	o := (&Outline{}).
		MoveTo(pt26(0, 0)).
		LineTo(pt26(8, 0)).
		LineTo(pt26(8, 1)).
		Close()

	for _, rule := range []FillRule{NonZero, EvenOdd} {
		rec := render(t, o, rule, MinPoolSize)
		got := rec.pixels(0, 0, 8, 1)[0]
		for x := range 8 {
			want := uint8(16 * (2*x + 1))
			if got[x] != want {
				t.Errorf("%s: pixel %d: expected coverage %d, got %d", rule, x, want, got[x])
			}
		}
	}
}

// TestRowSums checks that the coverage of each row matches the exact area
// of a convex polygon within that row.
func TestRowSums(t *testing.T) {
	// A trapezoid with corners on the 26.6 grid. Row y covers
	// 20 + (y+0.5)/2 pixels, for y in 0..7.
	o := (&Outline{}).
		MoveTo(pt26(10, 0)).
		LineTo(pt26(30, 0)).
		LineTo(pt26(34, 8)).
		LineTo(pt26(10, 8)).
		Close()
	rec := render(t, o, NonZero, MinPoolSize)

	sums := make([]int, 8)
	for _, s := range rec.spans {
		sums[s.Y] += s.Len * int(s.Coverage)
	}
	for y, sum := range sums {
		exact := (20 + (float64(y)+0.5)/2) * 256
		// full pixels count 255 instead of 256
		if math.Abs(float64(sum)-exact) > 24 {
			t.Errorf("row %d: coverage sum %d, exact area %g", y, sum, exact)
		}
	}
}

func TestPixelSquare(t *testing.T) {
	o := addRect(&Outline{}, 3, 4, 4, 5)
	rec := render(t, o, NonZero, MinPoolSize)
	want := []rowSpan{{4, Span{X: 3, Len: 1, Coverage: 255}}}
	diff(t, want, rec.spans)
}

func TestAlignedSquare(t *testing.T) {
	o := addRect(&Outline{}, 2, 1, 6, 4)
	rec := render(t, o, NonZero, MinPoolSize)
	var want []rowSpan
	for y := 1; y < 4; y++ {
		want = append(want, rowSpan{y, Span{X: 2, Len: 4, Coverage: 255}})
	}
	diff(t, want, rec.spans)
}

func TestFillRules(t *testing.T) {
	// two overlapping squares with the same orientation
	o := &Outline{}
	addRect(o, 0, 0, 4, 4)
	addRect(o, 2, 2, 6, 6)

	nz := render(t, o, NonZero, MinPoolSize).pixels(0, 0, 6, 6)
	eo := render(t, o, EvenOdd, MinPoolSize).pixels(0, 0, 6, 6)
	for y := range 6 {
		for x := range 6 {
			in1 := x < 4 && y < 4
			in2 := x >= 2 && y >= 2
			var wantNZ, wantEO uint8
			if in1 || in2 {
				wantNZ = 255
			}
			if in1 != in2 {
				wantEO = 255
			}
			if nz[y][x] != wantNZ {
				t.Errorf("nonzero (%d,%d): got %d, want %d", x, y, nz[y][x], wantNZ)
			}
			if eo[y][x] != wantEO {
				t.Errorf("even-odd (%d,%d): got %d, want %d", x, y, eo[y][x], wantEO)
			}
		}
	}
}

func TestOppositeWinding(t *testing.T) {
	o := &Outline{}
	addRect(o, 0, 0, 6, 6)
	o.MoveTo(pt26(2, 2)).LineTo(pt26(2, 4)).LineTo(pt26(4, 4)).LineTo(pt26(4, 2)).Close()

	got := render(t, o, NonZero, MinPoolSize).pixels(0, 0, 6, 6)
	for y := range 6 {
		for x := range 6 {
			var want uint8 = 255
			if x >= 2 && x < 4 && y >= 2 && y < 4 {
				want = 0
			}
			if got[y][x] != want {
				t.Errorf("(%d,%d): got %d, want %d", x, y, got[y][x], want)
			}
		}
	}
}

func TestLeftOfClip(t *testing.T) {
	// the left edge of the rectangle is outside the bitmap
	o := addRect(&Outline{}, -10, 0, 4.5, 2)
	bm := &Bitmap{Width: 8, Rows: 2, Pitch: -8, Buffer: make([]byte, 16)}

	r, err := NewRaster(MinPoolSize)
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Render(&Params{Source: o, Target: bm, Flags: FlagAA}); err != nil {
		t.Fatal(err)
	}
	want := []byte{255, 255, 255, 255, 128, 0, 0, 0}
	for y := range 2 {
		diff(t, want, bm.Buffer[8*y:8*y+8])
	}
}

func TestPoolMemory(t *testing.T) {
	for _, size := range []int{MinPoolSize, 8192, 10000} {
		r, err := NewRaster(size)
		if err != nil {
			t.Fatal(err)
		}
		cells := len(r.cellBuf) * cellSize
		rows := len(r.rowBuf) * rowSize
		if cells > size || cells <= size-cellSize {
			t.Errorf("%d: %d bytes of cells", size, cells)
		}
		if rows > size || rows <= size-rowSize {
			t.Errorf("%d: %d bytes of row heads", size, rows)
		}
	}
}

func TestRenderErrors(t *testing.T) {
	square := addRect(&Outline{}, 0, 0, 2, 2)
	bm := &Bitmap{Width: 4, Rows: 4, Pitch: 4, Buffer: make([]byte, 16)}
	spans := func(int, []Span) {}

	r, err := NewRaster(MinPoolSize)
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name string
		r    *Raster
		p    *Params
		want error
	}{
		{"no pool", &Raster{}, &Params{Source: square, Target: bm, Flags: FlagAA}, ErrInvalidArgument},
		{"no params", r, nil, ErrInvalidArgument},
		{"no outline", r, &Params{Target: bm, Flags: FlagAA}, ErrInvalidArgument},
		{"bad contours", r, &Params{
			Source: &Outline{Points: square.Points, Tags: square.Tags, Contours: []int{1}},
			Target: bm, Flags: FlagAA,
		}, ErrInvalidOutline},
		{"bad tags", r, &Params{
			Source: &Outline{Points: square.Points, Tags: []Tag{TagCubic, TagOn, TagOn, TagOn}, Contours: []int{3}},
			Target: bm, Flags: FlagAA,
		}, ErrInvalidOutline},
		{"no target", r, &Params{Source: square, Flags: FlagAA}, ErrInvalidArgument},
		{"empty target", r, &Params{Source: square, Target: &Bitmap{}, Flags: FlagAA}, ErrInvalidArgument},
		{"short buffer", r, &Params{
			Source: square, Target: &Bitmap{Width: 4, Rows: 4, Pitch: 4, Buffer: make([]byte, 15)}, Flags: FlagAA,
		}, ErrInvalidArgument},
		{"no span function", r, &Params{Source: square, Flags: FlagAA | FlagDirect}, ErrInvalidArgument},
		{"monochrome", r, &Params{Source: square, Target: bm}, ErrInvalidMode},
		{"monochrome direct", r, &Params{Source: square, Flags: FlagDirect, Spans: spans}, ErrInvalidMode},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.r.Render(c.p)
			if !errors.Is(err, c.want) {
				t.Errorf("got %v, want %v", err, c.want)
			}
		})
	}

	if _, err := NewRaster(MinPoolSize - 1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("NewRaster with tiny pool: got %v", err)
	}
}

func TestRenderNothing(t *testing.T) {
	r, err := NewRaster(MinPoolSize)
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name string
		o    *Outline
		clip image.Rectangle
	}{
		{"no points", &Outline{}, image.Rect(0, 0, 10, 10)},
		{"no contours", &Outline{Points: addRect(&Outline{}, 0, 0, 1, 1).Points}, image.Rect(0, 0, 10, 10)},
		{"outside clip", addRect(&Outline{}, 20, 20, 30, 30), image.Rect(0, 0, 10, 10)},
		{"empty clip", addRect(&Outline{}, 0, 0, 5, 5), image.Rectangle{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := &recorder{}
			err := r.Render(&Params{
				Source: c.o,
				Flags:  FlagAA | FlagDirect | FlagClip,
				Clip:   c.clip,
				Spans:  rec.emit,
			})
			if err != nil {
				t.Fatal(err)
			}
			if rec.calls != 0 {
				t.Errorf("got %d span calls, want 0", rec.calls)
			}
			if r.RenderedSpans() != 0 {
				t.Errorf("RenderedSpans() = %d", r.RenderedSpans())
			}
		})
	}
}

func TestClip(t *testing.T) {
	o := addRect(&Outline{}, -5, -5, 20, 20)
	r, err := NewRaster(MinPoolSize)
	if err != nil {
		t.Fatal(err)
	}
	rec := &recorder{}
	err = r.Render(&Params{
		Source: o,
		Flags:  FlagAA | FlagDirect | FlagClip,
		Clip:   image.Rect(2, 3, 6, 5),
		Spans:  rec.emit,
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []rowSpan{
		{3, Span{X: 2, Len: 4, Coverage: 255}},
		{4, Span{X: 2, Len: 4, Coverage: 255}},
	}
	diff(t, want, rec.spans)
}

func TestDeterministic(t *testing.T) {
	o := &Outline{}
	o.MoveTo(pt26(3.3, 1.2)).
		QuadTo(pt26(40, -10), pt26(50.5, 30)).
		CubeTo(pt26(30, 60), pt26(10, 20), pt26(3.3, 1.2)).
		Close()

	r, err := NewRaster(2048)
	if err != nil {
		t.Fatal(err)
	}
	var out [2]*recorder
	for i := range out {
		out[i] = &recorder{}
		err := r.Render(&Params{Source: o, Flags: FlagAA | FlagDirect, Spans: out[i].emit})
		if err != nil {
			t.Fatal(err)
		}
	}
	diff(t, out[0].spans, out[1].spans)
	if len(out[0].spans) == 0 {
		t.Error("no spans")
	}
}

// TestSpanOrder checks that rows arrive in increasing order, and that the
// spans of each row are sorted and do not overlap.
func TestSpanOrder(t *testing.T) {
	o := &Outline{}
	o.MoveTo(pt26(30, 2)).
		CubeTo(pt26(80, 2), pt26(-20, 60), pt26(30, 60)).
		CubeTo(pt26(80, 60), pt26(-20, 2), pt26(30, 2)).
		Close()
	rec := render(t, o, EvenOdd, MinPoolSize)
	if len(rec.spans) == 0 {
		t.Fatal("no spans")
	}

	for i := 1; i < len(rec.spans); i++ {
		a, b := rec.spans[i-1], rec.spans[i]
		if b.Y < a.Y || b.Y == a.Y && b.X < a.X+a.Len {
			t.Fatalf("span %d (%v) after %v", i, b, a)
		}
	}
}
