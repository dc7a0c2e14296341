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
	"fmt"

	"golang.org/x/image/math/fixed"
)

// sink receives the drawing commands produced by decompose.
// Any error stops the decomposition and is passed back to the caller.
type sink interface {
	moveTo(to fixed.Point26_6) error
	lineTo(to fixed.Point26_6) error
	conicTo(control, to fixed.Point26_6) error
	cubicTo(control1, control2, to fixed.Point26_6) error
}

// decompose walks the contours of o and issues one moveTo per contour,
// followed by the segments of the contour and the segment which closes it.
//
// The outline must have passed validate.
func decompose(o *Outline, s sink) error {
	first := 0
	for n, last := range o.Contours {
		if last < first {
			return fmt.Errorf("%w: contour %d is empty", ErrInvalidOutline, n)
		}
		if err := decomposeContour(o.Points[first:last+1], o.Tags[first:last+1], s); err != nil {
			if err == errBadTags {
				return fmt.Errorf("%w: bad point tags in contour %d", ErrInvalidOutline, n)
			}
			return err
		}
		first = last + 1
	}
	return nil
}

// errBadTags marks an illegal sequence of point tags inside one contour.
// decompose wraps it into ErrInvalidOutline.
var errBadTags = errors.New("bad tags")

func decomposeContour(pts []fixed.Point26_6, tags []Tag, s sink) error {
	limit := len(pts) - 1
	vStart := pts[0]
	vLast := pts[limit]

	i := 0
	switch curveTag(tags[0]) {
	case TagCubic:
		return errBadTags

	case TagConic:
		// The contour starts with a control point. The real start point
		// is either the last point, if it is on the curve, or the midpoint
		// between the first and the last control point.
		if curveTag(tags[limit]) == TagOn {
			vStart = vLast
			limit--
		} else {
			vStart = midpoint(vStart, vLast)
		}
		i = -1
	}

	if err := s.moveTo(vStart); err != nil {
		return err
	}

	for i < limit {
		i++
		switch curveTag(tags[i]) {
		case TagOn:
			if err := s.lineTo(pts[i]); err != nil {
				return err
			}

		case TagConic:
			control := pts[i]
			for {
				if i >= limit {
					// the contour ends on a control point
					return s.conicTo(control, vStart)
				}
				i++
				p := pts[i]
				tag := curveTag(tags[i])
				if tag == TagOn {
					if err := s.conicTo(control, p); err != nil {
						return err
					}
					break
				}
				if tag != TagConic {
					return errBadTags
				}
				// two control points in a row imply an on-curve point
				// half way between them
				if err := s.conicTo(control, midpoint(control, p)); err != nil {
					return err
				}
				control = p
			}

		default: // TagCubic
			if i+1 > limit || curveTag(tags[i+1]) != TagCubic {
				return errBadTags
			}
			c1, c2 := pts[i], pts[i+1]
			i += 2
			if i > limit {
				return s.cubicTo(c1, c2, vStart)
			}
			if curveTag(tags[i]) != TagOn {
				return errBadTags
			}
			if err := s.cubicTo(c1, c2, pts[i]); err != nil {
				return err
			}
		}
	}

	return s.lineTo(vStart)
}

func midpoint(a, b fixed.Point26_6) fixed.Point26_6 {
	return fixed.Point26_6{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}
