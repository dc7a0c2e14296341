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

	"golang.org/x/image/math/fixed"
)

// Sub-pixel geometry.
//
// Outline coordinates arrive in 26.6 fixed point. Internally all positions
// are kept with pixelBits fractional bits, so that one pixel is onePixel
// sub-pixel units wide. Cell coordinates (ex, ey) are integer pixel indices.
const (
	pixelBits = 8
	onePixel  = 1 << pixelBits
	pixelMask = onePixel - 1

	// inputBits is the number of fractional bits of the outline coordinates.
	inputBits = 6
)

// trunc converts a sub-pixel position to the index of the pixel containing
// it. The shift rounds towards negative infinity.
func trunc(x int) int { return x >> pixelBits }

// subpixels converts a pixel index to the sub-pixel position of the pixel's
// left (or top) edge.
func subpixels(x int) int { return x << pixelBits }

// upscale converts a 26.6 coordinate to sub-pixel units.
func upscale(x fixed.Int26_6) int { return int(x) << (pixelBits - inputBits) }

// downscale converts sub-pixel units back to 26.6.
func downscale(x int) int { return x >> (pixelBits - inputBits) }

// floor26 and ceil26 convert 26.6 values to integer pixel bounds.
func floor26(x fixed.Int26_6) int { return int(x) >> inputBits }
func ceil26(x fixed.Int26_6) int  { return (int(x) + (1<<inputBits - 1)) >> inputBits }

// toFixed rounds a device-space coordinate to 26.6. Values outside the
// representable range are saturated.
func toFixed(x float64) fixed.Int26_6 {
	v := math.Round(x * (1 << inputBits))
	switch {
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < math.MinInt32:
		return math.MinInt32
	case math.IsNaN(v):
		return 0
	}
	return fixed.Int26_6(v)
}

// floorDivMod divides p by q (q > 0), rounding the quotient towards negative
// infinity, and returns the quotient and the non-negative remainder.
// Go's integer division truncates towards zero, so negative dividends need
// an explicit fix-up.
func floorDivMod(p, q int) (int, int) {
	d, m := p/q, p%q
	if m < 0 {
		d--
		m += q
	}
	return d, m
}
