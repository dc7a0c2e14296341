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

// Base flatness thresholds, in 26.6 units. A curve is split once more for
// every factor of 4 (conic) or 8 (cubic) by which its deviation from the
// chord exceeds the threshold. setLevels scales them for large outlines.
const (
	baseConicLevel = 32
	baseCubicLevel = 16
)

// setLevels picks the flatness thresholds for an outline whose clipped
// bounding box measures countEx by countEy pixels. Larger shapes tolerate
// a coarser approximation: the thresholds double above 24 pixels and again
// above 120 pixels.
func (w *worker) setLevels() {
	level := 0
	if w.countEx > 24 || w.countEy > 24 {
		level++
	}
	if w.countEx > 120 || w.countEy > 120 {
		level++
	}
	w.conicLevel = baseConicLevel << level
	w.cubicLevel = baseCubicLevel << level
}

// renderConic flattens the quadratic Bézier curve from the pen position via
// control to to.
func (w *worker) renderConic(control, to fixed.Point26_6) error {
	dx := abs(downscale(w.x) + int(to.X) - 2*int(control.X))
	dy := abs(downscale(w.y) + int(to.Y) - 2*int(control.Y))
	dx = max(dx, dy)

	level := 1
	dx /= w.conicLevel
	for dx > 0 {
		dx >>= 2
		level++
	}

	// shortcut for flat curves: a single split, without the stack
	if level <= 1 {
		toX := upscale(to.X)
		toY := upscale(to.Y)
		midX := (w.x + toX + 2*upscale(control.X)) / 4
		midY := (w.y + toY + 2*upscale(control.Y)) / 4
		if err := w.renderLine(midX, midY); err != nil {
			return err
		}
		return w.renderLine(toX, toY)
	}

	level = min(level, len(w.levStack))

	// The arc is stored end point first: arc[0] is the end, arc[2] the
	// start. Splitting replaces arc[0:3] by two arcs in arc[0:5], with
	// the half which begins at the pen position on top of the stack.
	arc := w.bezStack[:]
	levels := w.levStack[:]
	top := 0
	levels[0] = level

	arc[0] = point{upscale(to.X), upscale(to.Y)}
	arc[1] = point{upscale(control.X), upscale(control.Y)}
	arc[2] = point{w.x, w.y}

	for top >= 0 {
		a := arc[2*top:]
		level := levels[top]
		if level > 1 && w.arcInBand(a[:3]) {
			splitConic(a)
			top++
			levels[top] = level - 1
			levels[top-1] = level - 1
			continue
		}

		toX, toY := a[0].x, a[0].y
		midX := (w.x + toX + 2*a[1].x) / 4
		midY := (w.y + toY + 2*a[1].y) / 4
		if err := w.renderLine(midX, midY); err != nil {
			return err
		}
		if err := w.renderLine(toX, toY); err != nil {
			return err
		}
		top--
	}
	return nil
}

// renderCubic flattens the cubic Bézier curve from the pen position via
// control1 and control2 to to.
func (w *worker) renderCubic(control1, control2, to fixed.Point26_6) error {
	x0 := downscale(w.x)
	y0 := downscale(w.y)

	da := max(
		abs(x0+int(to.X)-2*int(control1.X)),
		abs(y0+int(to.Y)-2*int(control1.Y)))
	db := max(
		abs(x0+int(to.X)-3*(int(control1.X)+int(control2.X))),
		abs(y0+int(to.Y)-3*(int(control1.Y)+int(control2.Y))))

	level := 1
	da /= w.cubicLevel
	db /= w.conicLevel
	for da > 0 || db > 0 {
		da >>= 2
		db >>= 3
		level++
	}

	if level <= 1 {
		toX := upscale(to.X)
		toY := upscale(to.Y)
		midX := (w.x + toX + 3*(upscale(control1.X)+upscale(control2.X))) / 8
		midY := (w.y + toY + 3*(upscale(control1.Y)+upscale(control2.Y))) / 8
		if err := w.renderLine(midX, midY); err != nil {
			return err
		}
		return w.renderLine(toX, toY)
	}

	level = min(level, len(w.levStack))

	arc := w.bezStack[:]
	levels := w.levStack[:]
	top := 0
	levels[0] = level

	arc[0] = point{upscale(to.X), upscale(to.Y)}
	arc[1] = point{upscale(control2.X), upscale(control2.Y)}
	arc[2] = point{upscale(control1.X), upscale(control1.Y)}
	arc[3] = point{w.x, w.y}

	for top >= 0 {
		a := arc[3*top:]
		level := levels[top]
		if level > 1 && w.arcInBand(a[:4]) {
			splitCubic(a)
			top++
			levels[top] = level - 1
			levels[top-1] = level - 1
			continue
		}

		toX, toY := a[0].x, a[0].y
		midX := (w.x + toX + 3*(a[1].x+a[2].x)) / 8
		midY := (w.y + toY + 3*(a[1].y+a[2].y)) / 8
		if err := w.renderLine(midX, midY); err != nil {
			return err
		}
		if err := w.renderLine(toX, toY); err != nil {
			return err
		}
		top--
	}
	return nil
}

// arcInBand reports whether the control polygon reaches into the band
// currently being rendered. Arcs outside the band are not subdivided any
// further.
func (w *worker) arcInBand(arc []point) bool {
	yMin, yMax := arc[0].y, arc[0].y
	for _, p := range arc[1:] {
		yMin = min(yMin, p.y)
		yMax = max(yMax, p.y)
	}
	return trunc(yMin) < w.maxEy && trunc(yMax) >= w.minEy
}

// splitConic splits the quadratic arc base[0:3] at its midpoint into
// base[2:5] (first half) and base[0:3] (second half).
func splitConic(base []point) {
	base[4] = base[2]
	a := base[1]
	b := base[4]
	base[3] = point{(b.x + a.x) / 2, (b.y + a.y) / 2}
	c := base[0]
	base[1] = point{(c.x + a.x) / 2, (c.y + a.y) / 2}
	base[2] = point{(base[1].x + base[3].x) / 2, (base[1].y + base[3].y) / 2}
}

// splitCubic splits the cubic arc base[0:4] at its midpoint into base[3:7]
// (first half) and base[0:4] (second half).
func splitCubic(base []point) {
	base[6] = base[3]
	c := base[1]
	d := base[2]
	base[1] = point{(base[0].x + c.x) / 2, (base[0].y + c.y) / 2}
	base[5] = point{(base[6].x + d.x) / 2, (base[6].y + d.y) / 2}
	c = point{(c.x + d.x) / 2, (c.y + d.y) / 2}
	base[2] = point{(base[1].x + c.x) / 2, (base[1].y + c.y) / 2}
	base[4] = point{(base[5].x + c.x) / 2, (base[5].y + c.y) / 2}
	base[3] = point{(base[2].x + base[4].x) / 2, (base[2].y + base[4].y) / 2}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
