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
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// subpath is a range pts[start:end] of a flattened polyline.
type subpath struct {
	start, end int
	closed     bool
}

// Tolerances of the stroker, in user-space units.
const (
	zeroLength  = 1e-9 // shorter segments are dropped
	collinear   = 1e-9 // smaller sines count as no turn
	maxArcSteps = 1024
)

// Stroke fills the outline of the path, drawn with the current line
// width, cap, join, miter limit and dash pattern.
//
// Every subpath and every dash becomes a single outline, with joins and
// caps inserted in order along the offset edges. The outlines are filled
// together with the nonzero rule.
func (r *Rasterizer) Stroke(p path.Path, emit SpanFunc) error {
	r.flattenPath(p)

	pts, subs := r.pts, r.subpaths
	if r.dashTotal() > 0 {
		r.applyDash()
		pts, subs = r.dashPts, r.dashSubs
	}

	d := r.Width / 2
	if r.Width <= 0 {
		d = 0.5 / r.deviceScale()
	}

	r.outline.Reset()
	if r.Cap == graphics.LineCapRound {
		for _, c := range r.dots {
			r.addDot(c, d)
		}
	}
	for _, s := range subs {
		r.strokeSubpath(pts[s.start:s.end], s.closed, d)
	}

	return r.render(NonZero, emit)
}

// flattenPath converts p into polylines in user space, stored in r.pts and
// r.subpaths. Subpaths of length zero are collected in r.dots.
func (r *Rasterizer) flattenPath(p path.Path) {
	r.pts = r.pts[:0]
	r.subpaths = r.subpaths[:0]
	r.dots = r.dots[:0]

	var current, start vec.Vec2
	first := 0
	open := false
	drawn := false

	finish := func(closed bool) {
		if !open {
			return
		}
		switch {
		case len(r.pts)-first >= 2:
			r.subpaths = append(r.subpaths, subpath{first, len(r.pts), closed})
		case drawn || closed:
			r.dots = append(r.dots, start)
			r.pts = r.pts[:first]
		default:
			r.pts = r.pts[:first]
		}
		open = false
	}
	begin := func(v vec.Vec2) {
		current, start = v, v
		first = len(r.pts)
		r.pts = append(r.pts, v)
		open = true
		drawn = false
	}
	lineTo := func(v vec.Vec2) {
		drawn = true
		if v.Sub(current).Length() < zeroLength {
			return
		}
		r.pts = append(r.pts, v)
		current = v
	}

	for cmd, pts := range p {
		if cmd != path.CmdMoveTo && cmd != path.CmdClose && !open {
			begin(current)
		}
		switch cmd {
		case path.CmdMoveTo:
			finish(false)
			begin(pts[0])
		case path.CmdLineTo:
			lineTo(pts[0])
		case path.CmdQuadTo:
			r.flattenQuadratic(current, pts[0], pts[1], lineTo)
			current = pts[1]
		case path.CmdCubeTo:
			r.flattenCubic(current, pts[0], pts[1], pts[2], lineTo)
			current = pts[2]
		case path.CmdClose:
			if open {
				lineTo(start)
				// the closing point duplicates the first one
				if n := len(r.pts); n-first > 2 && r.pts[n-1].Sub(r.pts[first]).Length() < zeroLength {
					r.pts = r.pts[:n-1]
				}
				finish(true)
				current = start
			}
		}
	}
	finish(false)
}

// flattenQuadratic approximates the quadratic Bézier curve p0, p1, p2 by
// line segments, calling lineTo for every segment end point. The number
// of segments is chosen so that the error in device space stays below
// r.Flatness.
func (r *Rasterizer) flattenQuadratic(p0, p1, p2 vec.Vec2, lineTo func(vec.Vec2)) {
	// the distance between the curve and its chord is at most |e|
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)
	errDev := transformLinear(r.CTM, e).Length()

	n := 1
	if errDev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(errDev / r.Flatness)))
	}
	n = min(n, maxArcSteps)

	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		lineTo(p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t)))
	}
}

// flattenCubic approximates the cubic Bézier curve p0, p1, p2, p3 by line
// segments, using Wang's formula for the number of segments.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2, lineTo func(vec.Vec2)) {
	d1 := transformLinear(r.CTM, p0.Sub(p1.Mul(2)).Add(p2))
	d2 := transformLinear(r.CTM, p1.Sub(p2.Mul(2)).Add(p3))
	m := max(d1.Length(), d2.Length())

	n := 1
	if m > 0 {
		if f := math.Sqrt(3 * m / (4 * r.Flatness)); f > 1 {
			n = int(math.Ceil(f))
		}
	}
	n = min(n, maxArcSteps)

	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		lineTo(p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t)))
	}
}

// dashTotal returns the length of one period of the dash pattern, or 0 if
// the pattern is not usable.
func (r *Rasterizer) dashTotal() float64 {
	total := 0.0
	for _, x := range r.Dash {
		if x < 0 || math.IsNaN(x) || math.IsInf(x, 0) {
			return 0
		}
		total += x
	}
	if len(r.Dash)%2 == 1 {
		total *= 2
	}
	return total
}

// applyDash cuts the flattened subpaths into dashes, stored in r.dashPts
// and r.dashSubs. Dashes of length zero are added to r.dots.
func (r *Rasterizer) applyDash() {
	r.dashPts = r.dashPts[:0]
	r.dashSubs = r.dashSubs[:0]

	dash := r.Dash
	total := r.dashTotal()
	phase := math.Mod(r.DashPhase, total)
	if phase < 0 {
		phase += total
	}

	for _, s := range r.subpaths {
		pts := r.pts[s.start:s.end]
		if s.closed {
			pts = append(pts[:len(pts):len(pts)], pts[0])
		}

		// find the dash element containing the phase
		idx := 0
		left := phase
		for left > 0 && left >= dash[idx%len(dash)] {
			left -= dash[idx%len(dash)]
			idx++
		}
		remaining := dash[idx%len(dash)] - left
		on := idx%2 == 0

		first := len(r.dashPts)
		if on {
			r.dashPts = append(r.dashPts, pts[0])
		}
		endDash := func() {
			n := len(r.dashPts) - first
			if n == 2 && r.dashPts[first+1].Sub(r.dashPts[first]).Length() < zeroLength {
				n = 1
			}
			switch {
			case n >= 2:
				r.dashSubs = append(r.dashSubs, subpath{first, len(r.dashPts), false})
			case n == 1:
				r.dots = append(r.dots, r.dashPts[first])
				r.dashPts = r.dashPts[:first]
			}
		}

		for i := 1; i < len(pts); i++ {
			a, b := pts[i-1], pts[i]
			segLen := b.Sub(a).Length()
			pos := 0.0
			for segLen-pos > remaining {
				pos += remaining
				q := a.Add(b.Sub(a).Mul(pos / segLen))
				if on {
					r.dashPts = append(r.dashPts, q)
					endDash()
				} else {
					first = len(r.dashPts)
					r.dashPts = append(r.dashPts, q)
				}
				on = !on
				idx++
				remaining = dash[idx%len(dash)]
			}
			remaining -= segLen - pos
			if on {
				r.dashPts = append(r.dashPts, b)
			}
		}
		if on {
			endDash()
		} else if remaining == 0 && dash[(idx+1)%len(dash)] == 0 {
			// a dash of length zero right at the end
			r.dots = append(r.dots, pts[len(pts)-1])
		}
	}
}

// strokeSubpath adds the outline of one stroked polyline to r.outline.
//
// An open polyline gives one contour: the left edge of the stroke is
// traversed forward and the right edge backward, with the caps in between.
// A closed polyline gives two loops, one along each side. The right edge
// is found as the left edge of the reversed polyline.
func (r *Rasterizer) strokeSubpath(pts []vec.Vec2, closed bool, d float64) {
	r.rev = append(r.rev[:0], pts...)
	slices.Reverse(r.rev)

	n := len(pts)
	r.poly = r.poly[:0]
	if closed {
		r.addSide(pts, true, d)
		r.addContour()
		if n > 2 {
			// for two points the first loop already covers both sides
			r.poly = r.poly[:0]
			r.addSide(r.rev, true, d)
			r.addContour()
		}
		return
	}

	r.addSide(pts, false, d)
	r.addCap(pts[n-1], pts[n-2], d)
	r.addSide(r.rev, false, d)
	r.addCap(pts[0], pts[1], d)
	r.addContour()
}

// addSide appends the left edge of the stroke of pts to r.poly, seen in
// the direction of the polyline. For closed polylines the edge runs once
// around the loop, with a join at every vertex.
func (r *Rasterizer) addSide(pts []vec.Vec2, closed bool, d float64) {
	n := len(pts)
	if closed {
		for i := range n {
			r.addJoin(pts[(i+n-1)%n], pts[i], pts[(i+1)%n], d)
		}
		return
	}

	t, _ := unit(pts[1].Sub(pts[0]))
	r.poly = append(r.poly, pts[0].Add(normal(t).Mul(d)))
	for i := 1; i < n-1; i++ {
		r.addJoin(pts[i-1], pts[i], pts[i+1], d)
	}
	t, _ = unit(pts[n-1].Sub(pts[n-2]))
	r.poly = append(r.poly, pts[n-1].Add(normal(t).Mul(d)))
}

// addJoin appends the left edge of the stroke around the vertex p, where
// the segment a-p meets p-b. The points run from the end of the offset
// line of a-p to the start of the offset line of p-b.
func (r *Rasterizer) addJoin(a, p, b vec.Vec2, d float64) {
	t1, ok1 := unit(p.Sub(a))
	t2, ok2 := unit(b.Sub(p))
	switch {
	case !ok1 && !ok2:
		r.poly = append(r.poly, p)
		return
	case !ok1:
		t1 = t2
	case !ok2:
		t2 = t1
	}
	n1 := normal(t1).Mul(d)
	n2 := normal(t2).Mul(d)

	sin := t1.X*t2.Y - t1.Y*t2.X
	cos := t1.Dot(t2)
	cusp := false
	if math.Abs(sin) < collinear {
		if cos > 0 {
			r.poly = append(r.poly, p.Add(n2))
			return
		}
		cusp = true
	}

	// 1+cos is 2*cos(phi/2)^2, where phi is the turning angle
	h := 1 + cos

	if sin > 0 && !cusp {
		// The left side is the inside of the turn. The offset lines cross
		// at distance d*tan(phi/2) from p, measured along the segments.
		cut := d * sin / h
		if 2*cut <= min(p.Sub(a).Length(), b.Sub(p).Length()) {
			r.poly = append(r.poly, p.Add(n1.Add(n2).Mul(1/h)))
		} else {
			r.poly = append(r.poly, p.Add(n1), p, p.Add(n2))
		}
		return
	}

	r.poly = append(r.poly, p.Add(n1))
	switch r.Join {
	case graphics.LineJoinRound:
		phi := math.Atan2(sin, cos)
		if cusp {
			phi = -math.Pi
		}
		r.addArc(p, n1, phi, r.arcSteps(d, -phi))
	case graphics.LineJoinMiter:
		// the miter ratio is 1/cos(phi/2)
		if !cusp && 2/h <= r.MiterLimit*r.MiterLimit {
			r.poly = append(r.poly, p.Add(n1.Add(n2).Mul(1/h)))
		}
	}
	r.poly = append(r.poly, p.Add(n2))
}

// addCap appends the cap at the end p of the segment q-p. The points run
// from the left edge of the stroke to the right edge.
func (r *Rasterizer) addCap(p, q vec.Vec2, d float64) {
	t, ok := unit(p.Sub(q))
	if !ok {
		return
	}
	n := normal(t).Mul(d)
	switch r.Cap {
	case graphics.LineCapRound:
		r.addArc(p, n, -math.Pi, r.arcSteps(d, math.Pi))
	case graphics.LineCapSquare:
		td := t.Mul(d)
		r.poly = append(r.poly, p.Add(n).Add(td), p.Sub(n).Add(td))
	}
}

// addDot adds a disc of radius d around c to r.outline. The disc has the
// same orientation as the contours made by strokeSubpath.
func (r *Rasterizer) addDot(c vec.Vec2, d float64) {
	v := vec.Vec2{Y: d}
	r.poly = append(r.poly[:0], c.Add(v))
	r.addArc(c, v, -2*math.Pi, max(r.arcSteps(d, 2*math.Pi), 8))
	r.addContour()
}

// addArc appends the inner points of the arc around c which starts at c+v
// and turns by the angle sweep, using n chords. Negative angles turn
// clockwise.
func (r *Rasterizer) addArc(c, v vec.Vec2, sweep float64, n int) {
	for k := 1; k < n; k++ {
		sin, cos := math.Sincos(sweep * float64(k) / float64(n))
		r.poly = append(r.poly, c.Add(vec.Vec2{
			X: v.X*cos - v.Y*sin,
			Y: v.X*sin + v.Y*cos,
		}))
	}
}

// arcSteps returns the number of chords needed to approximate an arc of
// radius d and the given angle within r.Flatness.
func (r *Rasterizer) arcSteps(d, angle float64) int {
	rad := d * r.deviceRadius()
	n := 1
	if rad > r.Flatness {
		if step := 2 * math.Acos(1-r.Flatness/rad); step > 0 {
			n = int(math.Ceil(angle / step))
		}
	}
	return min(max(n, 1), maxArcSteps)
}

// addContour adds the polygon in r.poly, given in user space, as one
// closed contour to r.outline.
func (r *Rasterizer) addContour() {
	if len(r.poly) < 3 {
		return
	}
	o := &r.outline
	o.MoveTo(devicePoint(r.CTM, r.poly[0]))
	for _, p := range r.poly[1:] {
		o.LineTo(devicePoint(r.CTM, p))
	}
	o.Close()
}

// deviceRadius returns the largest factor by which the CTM stretches a
// user-space length.
func (r *Rasterizer) deviceRadius() float64 {
	a := transformLinear(r.CTM, vec.Vec2{X: 1}).Length()
	b := transformLinear(r.CTM, vec.Vec2{Y: 1}).Length()
	return max(a, b)
}

// deviceScale returns the geometric mean of the CTM's stretch factors.
func (r *Rasterizer) deviceScale() float64 {
	det := math.Abs(r.CTM[0]*r.CTM[3] - r.CTM[1]*r.CTM[2])
	if det == 0 {
		return 1
	}
	return math.Sqrt(det)
}

func unit(v vec.Vec2) (vec.Vec2, bool) {
	l := v.Length()
	if l < zeroLength {
		return vec.Vec2{}, false
	}
	return v.Mul(1 / l), true
}

// normal returns v rotated by 90 degrees counter-clockwise.
func normal(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: -v.Y, Y: v.X}
}
