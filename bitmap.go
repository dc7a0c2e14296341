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
	"fmt"
	"image"
)

// Bitmap is an 8-bit coverage buffer which Render can write to.
//
// Row y of the bitmap starts at byte (Rows-1-y)*Pitch of Buffer if Pitch is
// positive, so that the first row in memory is the last row of the
// bitmap, and at byte y*(-Pitch) if Pitch is negative.
type Bitmap struct {
	Width  int
	Rows   int
	Pitch  int
	Buffer []byte
}

// AlphaBitmap returns a bitmap which writes coverage values into img.
// Row y of the bitmap is row img.Rect.Min.Y+y of the image.
func AlphaBitmap(img *image.Alpha) *Bitmap {
	b := img.Rect
	return &Bitmap{
		Width:  b.Dx(),
		Rows:   b.Dy(),
		Pitch:  -img.Stride,
		Buffer: img.Pix,
	}
}

// check verifies that b describes a usable bitmap.
func (b *Bitmap) check() error {
	if b == nil {
		return fmt.Errorf("%w: no target bitmap", ErrInvalidArgument)
	}
	if b.Width <= 0 || b.Rows <= 0 {
		return fmt.Errorf("%w: target bitmap has size %dx%d",
			ErrInvalidArgument, b.Width, b.Rows)
	}
	pitch := b.Pitch
	if pitch < 0 {
		pitch = -pitch
	}
	if pitch < b.Width || len(b.Buffer) < (b.Rows-1)*pitch+b.Width {
		return fmt.Errorf("%w: buffer too small for %dx%d bitmap with pitch %d",
			ErrInvalidArgument, b.Width, b.Rows, b.Pitch)
	}
	return nil
}

// rowOffset returns the index in Buffer of the first byte of row y.
func (b *Bitmap) rowOffset(y int) int {
	if b.Pitch > 0 {
		return (b.Rows - 1 - y) * b.Pitch
	}
	return y * -b.Pitch
}

// writeSpans is the span function used when rendering into a bitmap.
func (b *Bitmap) writeSpans(y int, spans []Span) {
	row := b.Buffer[b.rowOffset(y):]
	for _, s := range spans {
		dst := row[s.X : s.X+s.Len]
		for i := range dst {
			dst[i] = s.Coverage
		}
	}
}

// At returns the coverage stored for pixel (x, y).
func (b *Bitmap) At(x, y int) uint8 {
	return b.Buffer[b.rowOffset(y)+x]
}
