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

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

func TestGlyphOutline(t *testing.T) {
	f, err := sfnt.Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	var buf sfnt.Buffer
	idx, err := f.GlyphIndex(&buf, 'O')
	if err != nil {
		t.Fatal(err)
	}
	segs, err := f.LoadGlyph(&buf, idx, fixed.I(64), nil)
	if err != nil {
		t.Fatal(err)
	}

	o := &Outline{}
	GlyphOutline(o, segs, fixed.P(8, 60))
	if len(o.Contours) != 2 {
		t.Fatalf("got %d contours, want 2", len(o.Contours))
	}

	rec := render(t, o, NonZero, MinPoolSize)
	if len(rec.spans) == 0 {
		t.Fatal("no output")
	}
	yMin, yMax := rec.spans[0].Y, rec.spans[len(rec.spans)-1].Y
	if yMax-yMin < 30 || yMin < 0 {
		t.Fatalf("unexpected glyph rows %d to %d", yMin, yMax)
	}

	// the middle row crosses the left stroke, the hole, and the right stroke
	row := rec.pixels(0, (yMin+yMax)/2, 80, 1)[0]
	runs := 0
	for x := range row {
		if row[x] == 255 && (x == 0 || row[x-1] != 255) {
			runs++
		}
	}
	if runs != 2 {
		t.Errorf("found %d solid runs in %v", runs, row)
	}
}
