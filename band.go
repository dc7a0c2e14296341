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

import "fmt"

// band is a range [min, max) of scanlines.
type band struct {
	min, max int
}

// Limits of the band manager.
const (
	maxBands    = 39 // number of bands the render area is divided into, at most
	bandStack   = 40 // depth of the band splitting stack
	maxShoots   = 8  // number of splits before the band size is reduced
	minBandSize = 16 // the band size is not reduced below this
)

// convert renders o band by band. The worker must already hold the clipped
// bounding box of the outline.
//
// A band whose cells do not fit into the pool is split into two halves,
// which are rendered one after the other, lower scanlines first. Only a
// band of height one which does not fit causes an error.
func (r *Raster) convert(o *Outline) error {
	w := &r.w
	minEy, maxEy := w.minEy, w.maxEy

	numBands := min(max((maxEy-minEy)/r.bandSize, 1), maxBands)

	var stack [bandStack]band
	shoots := 0

	lo := minEy
	for n := range numBands {
		hi := lo + r.bandSize
		if n == numBands-1 || hi > maxEy {
			hi = maxEy
		}

		stack[0] = band{lo, hi}
		top := 0
		for top >= 0 {
			b := stack[top]
			err := r.renderBand(o, b)
			if err == nil {
				w.sweep()
				top--
				continue
			}
			if err != errPoolOverflow {
				return err
			}

			middle := b.min + (b.max-b.min)>>1
			if middle == b.min || top+1 >= len(stack) {
				return fmt.Errorf("%w: %d bytes are not enough for scanline %d",
					ErrMemoryOverflow, r.poolSize, b.min)
			}
			shoots++
			Logger().Debug("band overflow", "min", b.min, "max", b.max, "middle", middle)

			stack[top] = band{middle, b.max}
			stack[top+1] = band{b.min, middle}
			top++
		}
		lo = hi
	}

	if shoots > maxShoots && r.bandSize > minBandSize {
		r.bandSize /= 2
		Logger().Debug("band size reduced", "splits", shoots, "bandSize", r.bandSize)
	}
	return nil
}

// renderBand accumulates the cells of all contours of o which fall into the
// scanlines of b.
func (r *Raster) renderBand(o *Outline, b band) error {
	w := &r.w
	height := b.max - b.min

	rowBytes := height * rowSize
	rowBytes = (rowBytes + cellSize - 1) / cellSize * cellSize
	maxCells := (r.poolSize - rowBytes) / cellSize
	if maxCells < 2 {
		return errPoolOverflow
	}

	w.ycells = r.rowBuf[:height]
	for i := range w.ycells {
		w.ycells[i] = -1
	}
	w.cells = r.cellBuf[:0:maxCells]

	w.minEy = b.min
	w.maxEy = b.max
	w.countEy = height
	w.area = 0
	w.cover = 0
	w.invalid = true

	if err := decompose(o, w); err != nil {
		return err
	}
	return w.recordCell()
}
