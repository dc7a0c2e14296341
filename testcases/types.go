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


package testcases

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// TestCase is a named scene for rendering tests.
type TestCase struct {
	Name   string        // lowercase a-z, digits and _ only
	Path   *path.Data    // the geometry to render, in user space
	Width  int           // canvas width in pixels
	Height int           // canvas height in pixels
	Op     Operation     // fill or stroke
	CTM    matrix.Matrix // user to device space; the zero value means identity
}

// Operation is the rendering operation to apply to the path.
type Operation interface {
	isOperation()
}

// FillRule specifies the rule for determining interior points.
type FillRule int

// Supported fill rules.
const (
	NonZero FillRule = iota
	EvenOdd
)

// Fill specifies a fill operation.
type Fill struct {
	Rule FillRule
}

func (Fill) isOperation() {}

// Stroke specifies a stroke operation.
type Stroke struct {
	Width      float64
	Cap        graphics.LineCapStyle
	Join       graphics.LineJoinStyle
	MiterLimit float64
	Dash       []float64 // nil for solid lines
	DashPhase  float64
}

func (Stroke) isOperation() {}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// polygon appends a closed polygon through the given points to p.
func polygon(p *path.Data, pts ...vec.Vec2) *path.Data {
	p = p.MoveTo(pts[0])
	for _, q := range pts[1:] {
		p = p.LineTo(q)
	}
	return p.Close()
}

// rectangle appends the rectangle [x1,x2]x[y1,y2] to p. The corners are
// visited in the order (x1,y1), (x2,y1), (x2,y2), (x1,y2).
func rectangle(p *path.Data, x1, y1, x2, y2 float64) *path.Data {
	return polygon(p, pt(x1, y1), pt(x2, y1), pt(x2, y2), pt(x1, y2))
}

// circle appends a circle made of four cubic Bézier segments to p.
func circle(p *path.Data, cx, cy, r float64, reverse bool) *path.Data {
	const kappa = 0.5522847498
	k := kappa * r
	p = p.MoveTo(pt(cx+r, cy))
	if reverse {
		p = p.CubeTo(pt(cx+r, cy-k), pt(cx+k, cy-r), pt(cx, cy-r)).
			CubeTo(pt(cx-k, cy-r), pt(cx-r, cy-k), pt(cx-r, cy)).
			CubeTo(pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r)).
			CubeTo(pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy))
	} else {
		p = p.CubeTo(pt(cx+r, cy+k), pt(cx+k, cy+r), pt(cx, cy+r)).
			CubeTo(pt(cx-k, cy+r), pt(cx-r, cy+k), pt(cx-r, cy)).
			CubeTo(pt(cx-r, cy-k), pt(cx-k, cy-r), pt(cx, cy-r)).
			CubeTo(pt(cx+k, cy-r), pt(cx+r, cy-k), pt(cx+r, cy))
	}
	return p.Close()
}

// star appends a star polygon with n corners to p, connecting every
// step-th corner.
func star(p *path.Data, cx, cy, r float64, n, step int) *path.Data {
	pts := make([]vec.Vec2, n)
	for i := range n {
		phi := float64(i*step)*2*math.Pi/float64(n) - math.Pi/2
		pts[i] = pt(cx+r*math.Cos(phi), cy+r*math.Sin(phi))
	}
	return polygon(p, pts...)
}
