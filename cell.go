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
	"unsafe"
)

// Accumulation model:
//
// For every pixel touched by an edge we keep a cell with two values:
//   cover: the signed vertical distance the edges travel inside the pixel,
//          in sub-pixel units (positive for edges running towards larger y)
//   area:  the sum over the edge pieces inside the pixel of
//          (x-entry + x-exit) * dy, relative to the left pixel edge
//
// The coverage of a pixel is then
//   (accumulated cover of all cells to the left) * 2*onePixel - area
// in units of 1/(2*onePixel*onePixel) pixel. See sweep.

// cell is the accumulator for one pixel of one scanline. The cells of a
// scanline form a singly linked list through next, sorted by x.
type cell struct {
	x     int32 // pixel column, relative to minEx; -1 collects everything left of the clip
	next  int32 // index of the next cell in the row, or -1
	cover int32
	area  int64
}

// cellSize and rowSize are the number of pool bytes taken up by one cell and
// by the head of one scanline list.
const (
	cellSize = int(unsafe.Sizeof(cell{}))
	rowSize  = int(unsafe.Sizeof(int32(0)))
)

// errPoolOverflow is returned up the call chain when the cells of the
// current band do not fit into the pool. The band manager reacts by
// splitting the band; callers of Render never see this error.
var errPoolOverflow = errors.New("cell pool overflow")

// worker holds the state of one render call.
type worker struct {
	// clipped bounding box of the outline, in pixels; while a band is
	// rendered minEy and maxEy are the band limits
	minEx, maxEx int
	minEy, maxEy int
	countEx      int
	countEy      int

	// the cell currently being accumulated, relative to (minEx, minEy)
	ex, ey  int
	area    int
	cover   int
	invalid bool

	// pen position in sub-pixel units, and the top of its scanline
	x, y   int
	lastEy int

	cells  []cell  // cells in use; cap is the number available to this band
	ycells []int32 // head of the cell list per scanline of the band

	conicLevel int
	cubicLevel int
	bezStack   [32*3 + 1]point
	levStack   [32]int

	spanOut
}

// point is a position in sub-pixel units.
type point struct {
	x, y int
}

// findCell returns the index of the cell for the current position,
// allocating it in sorted position if necessary.
func (w *worker) findCell() (int32, error) {
	x := int32(min(w.ex, w.countEx))

	prev := int32(-1)
	i := w.ycells[w.ey]
	for i >= 0 {
		c := &w.cells[i]
		if c.x > x {
			break
		}
		if c.x == x {
			return i, nil
		}
		prev, i = i, c.next
	}

	n := len(w.cells)
	if n >= cap(w.cells) {
		return -1, errPoolOverflow
	}
	w.cells = w.cells[:n+1]
	w.cells[n] = cell{x: x, next: i}
	if prev < 0 {
		w.ycells[w.ey] = int32(n)
	} else {
		w.cells[prev].next = int32(n)
	}
	return int32(n), nil
}

// recordCell adds the pending area and cover to the current cell.
func (w *worker) recordCell() error {
	if w.invalid || (w.area == 0 && w.cover == 0) {
		return nil
	}
	i, err := w.findCell()
	if err != nil {
		return err
	}
	c := &w.cells[i]
	c.area += int64(w.area)
	c.cover += int32(w.cover)
	return nil
}

// setCell moves the accumulator to the pixel (ex, ey), given in absolute
// pixel coordinates, after recording the pending values of the previous
// cell.
//
// Columns right of the clip box are clamped to maxEx and never recorded,
// columns left of it all go to the sentinel column -1 so that their cover
// still reaches the visible pixels.
func (w *worker) setCell(ex, ey int) error {
	ey -= w.minEy
	ex = min(ex, w.maxEx) - w.minEx
	if ex < 0 {
		ex = -1
	}

	if ex != w.ex || ey != w.ey {
		if !w.invalid {
			if err := w.recordCell(); err != nil {
				return err
			}
		}
		w.area = 0
		w.cover = 0
	}

	w.ex = ex
	w.ey = ey
	w.invalid = ey < 0 || ey >= w.countEy || ex >= w.countEx
	return nil
}

// startCell begins a new contour at pixel (ex, ey).
func (w *worker) startCell(ex, ey int) error {
	ex = max(min(ex, w.maxEx), w.minEx-1)

	w.area = 0
	w.cover = 0
	w.ex = ex - w.minEx
	w.ey = ey - w.minEy
	w.lastEy = subpixels(ey)
	w.invalid = false

	return w.setCell(ex, ey)
}
