// Package grays implements an anti-aliased scan converter for outlines made
// of straight lines and quadratic and cubic Bézier curves.
//
// Coverage is computed exactly, from the signed area each edge contributes
// to every pixel it crosses, using integer arithmetic on a sub-pixel grid.
// The result is delivered as spans of pixels with equal coverage, either
// to a callback or into a Bitmap. All working memory comes from a cell pool
// of fixed size; outlines which need more memory are rendered in bands.
//
// Raster is the low-level interface, operating on fixed-point outlines.
// Rasterizer fills and strokes [seehuhn.de/go/geom/path.Path] values in the PDF imaging model.
package grays

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/grays/testcases"
)

// RenderExample renders a test case into a grayscale buffer.
// The buffer is pre-initialized with zeros, in row-major order.
// Each byte represents coverage from 0 (transparent) to 255 (opaque).
func RenderExample(tc testcases.TestCase, buf []byte, width, height, stride int) error {
	r := NewRasterizer(rect.Rect{})
	return renderTestCase(r, tc, width, height, func(y int, spans []Span) {
		row := buf[y*stride:]
		for _, s := range spans {
			for x := s.X; x < s.X+s.Len; x++ {
				row[x] = s.Coverage
			}
		}
	})
}

// renderTestCase sets up r for the given test case and renders it.
// All parameters of r are overwritten, so that r can be reused.
func renderTestCase(r *Rasterizer, tc testcases.TestCase, width, height int, emit SpanFunc) error {
	r.Clip = rect.Rect{URx: float64(width), URy: float64(height)}
	r.CTM = matrix.Identity
	if tc.CTM != (matrix.Matrix{}) {
		r.CTM = tc.CTM
	}

	switch op := tc.Op.(type) {
	case testcases.Fill:
		if op.Rule == testcases.EvenOdd {
			return r.FillEvenOdd(tc.Path.Iter(), emit)
		}
		return r.FillNonZero(tc.Path.Iter(), emit)
	case testcases.Stroke:
		r.Width = op.Width
		r.Cap = op.Cap
		r.Join = op.Join
		r.MiterLimit = op.MiterLimit
		r.Dash = op.Dash
		r.DashPhase = op.DashPhase
		return r.Stroke(tc.Path.Iter(), emit)
	}
	return nil
}
