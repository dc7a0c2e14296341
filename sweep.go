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

// FillRule selects how overlapping parts of an outline combine.
type FillRule int

// Supported fill rules.
const (
	// NonZero fills every point with a non-zero winding number.
	NonZero FillRule = iota

	// EvenOdd fills every point with an odd winding number.
	EvenOdd
)

func (r FillRule) String() string {
	switch r {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "even-odd"
	default:
		return "FillRule(?)"
	}
}

// Span is a horizontal run of Len pixels, starting at column X, which all
// share the same coverage value. Coverage 255 means the pixels are fully
// inside the outline.
type Span struct {
	X        int
	Len      int
	Coverage uint8
}

// SpanFunc receives the spans of row y, in increasing x order. Rows are
// delivered in increasing order. A row may be split over several calls.
// The slice is reused after the function returns.
type SpanFunc func(y int, spans []Span)

// maxGraySpans is the number of spans collected before the span function
// is called.
const maxGraySpans = 32

// spanOut collects the spans of the current row.
type spanOut struct {
	spans    [maxGraySpans]Span
	numSpans int
	spanY    int

	fillRule FillRule
	emit     SpanFunc

	skip     int // number of spans still to be dropped
	rendered int // number of spans produced, including the dropped ones
}

// coverage converts an accumulated area, in units of 1/(2*onePixel*onePixel)
// pixel, to an 8-bit coverage value.
func (s *spanOut) coverage(area int) uint8 {
	c := area >> (2*pixelBits + 1 - 8)
	if c < 0 {
		c = -c
	}

	if s.fillRule == EvenOdd {
		c &= 511
		if c > 256 {
			c = 512 - c
		} else if c == 256 {
			c = 255
		}
	} else if c >= 256 {
		c = 255
	}
	return uint8(c)
}

// hline adds a run of count pixels with the given accumulated area, at
// band-relative position (x, y).
func (w *worker) hline(x, y, area, count int) {
	if count <= 0 || x >= w.countEx {
		return
	}
	count = min(count, w.countEx-x)

	c := w.coverage(area)
	if c == 0 {
		return
	}

	x += w.minEx
	y += w.minEy

	if n := w.numSpans; n > 0 && w.spanY == y {
		last := &w.spans[n-1]
		if last.X+last.Len == x && last.Coverage == c {
			last.Len += count
			return
		}
	}

	if w.spanY != y || w.numSpans >= maxGraySpans {
		w.flushSpans()
		w.spanY = y
	}
	w.spans[w.numSpans] = Span{X: x, Len: count, Coverage: c}
	w.numSpans++
}

// flushSpans hands the collected spans to the span function, after dropping
// the ones which were already delivered by an earlier attempt.
func (w *worker) flushSpans() {
	spans := w.spans[:w.numSpans]
	w.numSpans = 0
	w.rendered += len(spans)

	if w.skip > 0 {
		k := min(w.skip, len(spans))
		w.skip -= k
		spans = spans[k:]
	}
	if len(spans) > 0 {
		w.emit(w.spanY, spans)
	}
}

// sweep converts the cells of the current band into spans.
func (w *worker) sweep() {
	w.numSpans = 0

	for y, head := range w.ycells {
		cover := 0
		x := 0

		for i := head; i >= 0; {
			c := &w.cells[i]
			cx := int(c.x)

			if cx > x && cover != 0 {
				w.hline(x, y, cover*2*onePixel, cx-x)
			}

			cover += int(c.cover)
			area := cover*2*onePixel - int(c.area)
			if area != 0 && cx >= 0 {
				w.hline(cx, y, area, 1)
			}

			x = cx + 1
			i = c.next
		}

		if cover != 0 {
			w.hline(x, y, cover*2*onePixel, w.countEx-x)
		}
	}

	if w.numSpans > 0 {
		w.flushSpans()
	}
}
