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

import "golang.org/x/image/math/fixed"

// renderScanline accumulates the area and cover of a line segment which
// lies within the scanline ey. The segment runs from (x1, y1) to (x2, y2),
// where x is in absolute sub-pixel units and y is relative to the top of
// the scanline, 0 <= y <= onePixel.
func (w *worker) renderScanline(ey, x1, y1, x2, y2 int) error {
	ex1 := trunc(x1)
	ex2 := trunc(x2)
	fx1 := x1 - subpixels(ex1)
	fx2 := x2 - subpixels(ex2)

	// horizontal segments contribute nothing, only the cell changes
	if y1 == y2 {
		return w.setCell(ex2, ey)
	}

	// everything inside one cell
	if ex1 == ex2 {
		delta := y2 - y1
		w.area += (fx1 + fx2) * delta
		w.cover += delta
		return nil
	}

	// a run of adjacent cells on the same scanline
	dx := x2 - x1
	p := (onePixel - fx1) * (y2 - y1)
	first := onePixel
	incr := 1
	if dx < 0 {
		p = fx1 * (y2 - y1)
		first = 0
		incr = -1
		dx = -dx
	}

	delta, mod := floorDivMod(p, dx)

	w.area += (fx1 + first) * delta
	w.cover += delta

	ex1 += incr
	if err := w.setCell(ex1, ey); err != nil {
		return err
	}
	y1 += delta

	if ex1 != ex2 {
		lift, rem := floorDivMod(onePixel*(y2-y1+delta), dx)
		mod -= dx

		for ex1 != ex2 {
			delta = lift
			mod += rem
			if mod >= 0 {
				mod -= dx
				delta++
			}

			w.area += onePixel * delta
			w.cover += delta
			y1 += delta
			ex1 += incr
			if err := w.setCell(ex1, ey); err != nil {
				return err
			}
		}
	}

	delta = y2 - y1
	w.area += (fx2 + onePixel - first) * delta
	w.cover += delta
	return nil
}

// renderLine draws a line from the pen position to (toX, toY), given in
// sub-pixel units, and moves the pen there.
func (w *worker) renderLine(toX, toY int) error {
	err := w.renderLineSegments(toX, toY)
	w.x = toX
	w.y = toY
	w.lastEy = subpixels(trunc(toY))
	return err
}

func (w *worker) renderLineSegments(toX, toY int) error {
	ey1 := trunc(w.lastEy)
	ey2 := trunc(toY)
	fy1 := w.y - w.lastEy
	fy2 := toY - subpixels(ey2)

	dx := toX - w.x
	dy := toY - w.y

	// lines entirely above or below the band are skipped
	if min(ey1, ey2) >= w.maxEy || max(ey1, ey2) < w.minEy {
		return nil
	}

	// everything on a single scanline
	if ey1 == ey2 {
		return w.renderScanline(ey1, w.x, fy1, toX, fy2)
	}

	incr := 1

	// vertical line, no divisions needed
	if dx == 0 {
		ex := trunc(w.x)
		twoFx := (w.x - subpixels(ex)) << 1

		first := onePixel
		if dy < 0 {
			first = 0
			incr = -1
		}

		delta := first - fy1
		w.area += twoFx * delta
		w.cover += delta
		ey1 += incr
		if err := w.setCell(ex, ey1); err != nil {
			return err
		}

		delta = first + first - onePixel
		area := twoFx * delta
		for ey1 != ey2 {
			w.area += area
			w.cover += delta
			ey1 += incr
			if err := w.setCell(ex, ey1); err != nil {
				return err
			}
		}

		delta = fy2 - onePixel + first
		w.area += twoFx * delta
		w.cover += delta
		return nil
	}

	// several scanlines
	p := (onePixel - fy1) * dx
	first := onePixel
	if dy < 0 {
		p = fy1 * dx
		first = 0
		incr = -1
		dy = -dy
	}

	delta, mod := floorDivMod(p, dy)

	x := w.x + delta
	if err := w.renderScanline(ey1, w.x, fy1, x, first); err != nil {
		return err
	}

	ey1 += incr
	if err := w.setCell(trunc(x), ey1); err != nil {
		return err
	}

	if ey1 != ey2 {
		lift, rem := floorDivMod(onePixel*dx, dy)
		mod -= dy

		for ey1 != ey2 {
			delta = lift
			mod += rem
			if mod >= 0 {
				mod -= dy
				delta++
			}

			x2 := x + delta
			if err := w.renderScanline(ey1, x, onePixel-first, x2, first); err != nil {
				return err
			}
			x = x2

			ey1 += incr
			if err := w.setCell(trunc(x), ey1); err != nil {
				return err
			}
		}
	}

	return w.renderScanline(ey1, x, onePixel-first, toX, fy2)
}

// The methods below let the worker act as the sink of decompose.

func (w *worker) moveTo(to fixed.Point26_6) error {
	// record the current cell, if any
	if err := w.recordCell(); err != nil {
		return err
	}

	x := upscale(to.X)
	y := upscale(to.Y)
	if err := w.startCell(trunc(x), trunc(y)); err != nil {
		return err
	}
	w.x = x
	w.y = y
	return nil
}

func (w *worker) lineTo(to fixed.Point26_6) error {
	return w.renderLine(upscale(to.X), upscale(to.Y))
}

func (w *worker) conicTo(control, to fixed.Point26_6) error {
	return w.renderConic(control, to)
}

func (w *worker) cubicTo(control1, control2, to fixed.Point26_6) error {
	return w.renderCubic(control1, control2, to)
}
