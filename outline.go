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

	"golang.org/x/image/math/fixed"
)

// Tag classifies an outline point. Only the lowest two bits are used by the
// rasterizer; higher bits are available to the caller.
type Tag uint8

// Point tags.
const (
	TagConic Tag = 0 // control point of a quadratic Bézier segment
	TagOn    Tag = 1 // point on the curve
	TagCubic Tag = 2 // control point of a cubic Bézier segment
)

func curveTag(t Tag) Tag { return t & 3 }

// Outline describes the shape to be rendered as a list of closed contours.
//
// Points holds the coordinates of all contours, in 26.6 fixed point, one
// after another. Tags holds one tag per point. Contours[i] is the index of
// the last point of contour i; contour i starts right after the end of
// contour i-1.
//
// Each contour is closed implicitly, by a straight line from the last
// point back to the start point if the last point is on the curve, or by a
// curve segment if it is a control point.
type Outline struct {
	Points   []fixed.Point26_6
	Tags     []Tag
	Contours []int
}

// Reset clears the outline, keeping the allocated storage.
func (o *Outline) Reset() {
	o.Points = o.Points[:0]
	o.Tags = o.Tags[:0]
	o.Contours = o.Contours[:0]
}

// IsEmpty reports whether the outline has no points or no contours.
func (o *Outline) IsEmpty() bool {
	return len(o.Points) == 0 || len(o.Contours) == 0
}

// MoveTo closes the current contour, if any, and starts a new one at p.
func (o *Outline) MoveTo(p fixed.Point26_6) *Outline {
	o.Close()
	o.add(p, TagOn)
	return o
}

// LineTo adds a straight line from the current point to p.
func (o *Outline) LineTo(p fixed.Point26_6) *Outline {
	o.add(p, TagOn)
	return o
}

// QuadTo adds a quadratic Bézier segment with control point c, ending at p.
func (o *Outline) QuadTo(c, p fixed.Point26_6) *Outline {
	o.add(c, TagConic)
	o.add(p, TagOn)
	return o
}

// CubeTo adds a cubic Bézier segment with control points c1 and c2, ending
// at p.
func (o *Outline) CubeTo(c1, c2, p fixed.Point26_6) *Outline {
	o.add(c1, TagCubic)
	o.add(c2, TagCubic)
	o.add(p, TagOn)
	return o
}

// Close ends the current contour. Calling Close when no contour is open
// has no effect.
func (o *Outline) Close() *Outline {
	start := 0
	if n := len(o.Contours); n > 0 {
		start = o.Contours[n-1] + 1
	}
	if len(o.Points) > start {
		o.Contours = append(o.Contours, len(o.Points)-1)
	}
	return o
}

func (o *Outline) add(p fixed.Point26_6, tag Tag) {
	o.Points = append(o.Points, p)
	o.Tags = append(o.Tags, tag)
}

// validate checks the structural consistency of the outline.
// The check of the per-point tag sequences is done during decomposition.
func (o *Outline) validate() error {
	if len(o.Tags) != len(o.Points) {
		return fmt.Errorf("%w: %d tags for %d points",
			ErrInvalidOutline, len(o.Tags), len(o.Points))
	}
	last := -1
	for i, end := range o.Contours {
		if end <= last || end >= len(o.Points) {
			return fmt.Errorf("%w: contour %d ends at point %d",
				ErrInvalidOutline, i, end)
		}
		last = end
	}
	if last != len(o.Points)-1 {
		return fmt.Errorf("%w: contours cover %d of %d points",
			ErrInvalidOutline, last+1, len(o.Points))
	}
	return nil
}

// cbox returns the control box of the outline in integer pixels. The box
// includes all control points, so it may be larger than the exact bounding
// box of the filled area.
func (o *Outline) cbox() (xMin, yMin, xMax, yMax int) {
	if len(o.Points) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY := o.Points[0].X, o.Points[0].Y
	maxX, maxY := minX, minY
	for _, p := range o.Points[1:] {
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	return floor26(minX), floor26(minY), ceil26(maxX), ceil26(maxY)
}
