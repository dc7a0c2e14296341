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
	"image"
	"math"

	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Defaults used by NewRasterizer.
const (
	defaultFlatness   = 0.25
	defaultMiterLimit = 10.0

	// defaultPoolSize is the initial cell pool size of a Rasterizer.
	defaultPoolSize = 8192
)

// Rasterizer fills and strokes vector paths. Paths are transformed to
// device space by CTM, converted to fixed-point outlines and scan-converted
// by a Raster. Create one instance and reuse it for many paths; internal
// buffers grow as needed but are never released.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM transforms from user space to device space.
	CTM matrix.Matrix

	// Clip bounds the output to this device-space rectangle. Non-integer
	// limits are rounded outwards.
	Clip rect.Rect

	// Flatness is the maximal distance in device pixels between a curve and
	// the polygon used to approximate it for stroking. Filled curves are
	// flattened by the scan converter itself.
	Flatness float64

	// Width is the line width for Stroke, in user-space units. A width of
	// zero or less gives lines one device pixel wide.
	Width float64

	// Cap is the style used for the ends of open subpaths and dashes.
	Cap graphics.LineCapStyle

	// Join is the style used where two stroked segments meet.
	Join graphics.LineJoinStyle

	// MiterLimit is the largest ratio of miter length to line width for
	// which a miter join is drawn. Longer miters are beveled.
	MiterLimit float64

	// Dash gives alternating on and off lengths in user-space units. Nil
	// means solid lines. Patterns without a positive length are ignored.
	Dash []float64

	// DashPhase is the distance into the dash pattern at which each subpath
	// starts.
	DashPhase float64

	// MaxPoolSize limits the growth of the cell pool, in bytes. Zero means
	// DefaultMaxPoolSize.
	MaxPoolSize int

	raster  *Raster
	outline Outline

	// stroking state, see stroke.go
	pts      []vec.Vec2 // flattened subpaths in user space
	subpaths []subpath
	dots     []vec.Vec2 // subpaths of length zero
	dashPts  []vec.Vec2
	dashSubs []subpath
	rev      []vec.Vec2
	poly     []vec.Vec2
}

// NewRasterizer returns a Rasterizer with the given clip rectangle and the
// PDF default values for all other parameters.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	r := &Rasterizer{
		CTM:        matrix.Identity,
		Clip:       clip,
		Flatness:   defaultFlatness,
		Width:      1.0,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: defaultMiterLimit,
	}
	r.raster = newDefaultRaster()
	return r
}

// defaultPoolSize must be acceptable for NewRaster.
const _ = uint(defaultPoolSize - MinPoolSize)

func newDefaultRaster() *Raster {
	r, err := NewRaster(defaultPoolSize)
	if err != nil {
		panic(err)
	}
	return r
}

// FillNonZero fills the path using the nonzero winding rule. Open subpaths
// are closed implicitly.
func (r *Rasterizer) FillNonZero(p path.Path, emit SpanFunc) error {
	OutlineFromPath(&r.outline, p, r.CTM)
	return r.render(NonZero, emit)
}

// FillEvenOdd fills the path using the even-odd rule. Open subpaths are
// closed implicitly.
func (r *Rasterizer) FillEvenOdd(p path.Path, emit SpanFunc) error {
	OutlineFromPath(&r.outline, p, r.CTM)
	return r.render(EvenOdd, emit)
}

// render scan-converts r.outline, clipped to r.Clip.
func (r *Rasterizer) render(rule FillRule, emit SpanFunc) error {
	if r.raster == nil {
		r.raster = newDefaultRaster()
	}
	params := &Params{
		Source:   &r.outline,
		Flags:    FlagAA | FlagDirect | FlagClip,
		FillRule: rule,
		Clip:     r.clipRect(),
		Spans:    emit,
	}
	return r.raster.RenderWithRetry(params, r.MaxPoolSize)
}

// clipRect converts the clip rectangle to integer pixel bounds.
func (r *Rasterizer) clipRect() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.Clip.LLx)),
		int(math.Floor(r.Clip.LLy)),
		int(math.Ceil(r.Clip.URx)),
		int(math.Ceil(r.Clip.URy)),
	)
}

// OutlineFromPath replaces the contents of dst by the path p, transformed
// by m and rounded to 26.6 fixed point. Every subpath becomes one contour.
// Drawing commands which follow a ClosePath start a new subpath at the
// start point of the closed one.
func OutlineFromPath(dst *Outline, p path.Path, m matrix.Matrix) {
	dst.Reset()

	var start fixed.Point26_6
	open := false
	for cmd, pts := range p {
		if cmd != path.CmdMoveTo && cmd != path.CmdClose && !open {
			dst.MoveTo(start)
			open = true
		}

		switch cmd {
		case path.CmdMoveTo:
			start = devicePoint(m, pts[0])
			dst.MoveTo(start)
			open = true
		case path.CmdLineTo:
			dst.LineTo(devicePoint(m, pts[0]))
		case path.CmdQuadTo:
			dst.QuadTo(devicePoint(m, pts[0]), devicePoint(m, pts[1]))
		case path.CmdCubeTo:
			dst.CubeTo(devicePoint(m, pts[0]), devicePoint(m, pts[1]), devicePoint(m, pts[2]))
		case path.CmdClose:
			dst.Close()
			open = false
		}
	}
	dst.Close()
}

// devicePoint maps v to device space and rounds it to 26.6.
func devicePoint(m matrix.Matrix, v vec.Vec2) fixed.Point26_6 {
	d := transform(m, v)
	return fixed.Point26_6{X: toFixed(d.X), Y: toFixed(d.Y)}
}

func transform(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

// transformLinear applies only the linear part of m to v.
func transformLinear(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y,
		Y: m[1]*v.X + m[3]*v.Y,
	}
}
