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
	"image"
)

// Errors returned by Render. More detail is added by wrapping, so use
// errors.Is to test for these.
var (
	// ErrInvalidMode is returned when a render mode other than anti-aliased
	// rendering is requested.
	ErrInvalidMode = errors.New("unsupported render mode")

	// ErrInvalidOutline is returned for malformed outlines.
	ErrInvalidOutline = errors.New("invalid outline")

	// ErrInvalidArgument is returned for missing or inconsistent parameters.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrMemoryOverflow is returned when the outline cannot be rendered
	// with the available cell pool, even after splitting the render area
	// into single scanlines.
	ErrMemoryOverflow = errors.New("cell pool too small")
)

// Flag selects render options.
type Flag uint

// Render flags.
const (
	// FlagAA requests anti-aliased rendering. This is the only supported
	// mode and must always be set.
	FlagAA Flag = 1 << iota

	// FlagDirect sends the spans to Params.Spans instead of writing them to
	// Params.Target.
	FlagDirect

	// FlagClip restricts direct rendering to Params.Clip.
	FlagClip
)

// Params describes one render call.
type Params struct {
	// Source is the outline to render.
	Source *Outline

	// Target receives the coverage values, unless FlagDirect is set.
	// The clip area is then the whole bitmap.
	Target *Bitmap

	Flags    Flag
	FillRule FillRule

	// Clip is the device area which is rendered when both FlagDirect and
	// FlagClip are set. Without FlagClip, direct rendering covers the
	// whole signed 16-bit plane.
	Clip image.Rectangle

	// Spans receives the spans when FlagDirect is set.
	Spans SpanFunc

	// SkipSpans is the number of spans to drop at the start of the output.
	// This is used to resume output after a failed attempt.
	SkipSpans int
}

// planeClip is the clip area of direct rendering without FlagClip.
var planeClip = image.Rect(-32768, -32768, 32767, 32767)

// Raster converts outlines into coverage spans. All working memory is
// allocated when the Raster is created: a cell pool of poolSize bytes, and
// room for poolSize/4 row heads of the current band, which take another
// poolSize bytes.
// Outlines which need more cells than the pool provides are rendered in
// horizontal bands.
//
// A Raster is not safe for concurrent use.
type Raster struct {
	poolSize int
	cellBuf  []cell
	rowBuf   []int32

	// bandSize is the initial band height in pixels. It is reduced when
	// bands frequently overflow.
	bandSize int

	rendered int

	w worker
}

// MinPoolSize is the smallest cell pool accepted by NewRaster, in bytes.
const MinPoolSize = 1024

// NewRaster allocates a Raster with a cell pool of the given size in bytes.
func NewRaster(poolSize int) (*Raster, error) {
	r := &Raster{}
	if err := r.Reset(poolSize); err != nil {
		return nil, err
	}
	return r, nil
}

// Reset replaces the cell pool of r by a new pool of the given size, and
// restores the default band size.
func (r *Raster) Reset(poolSize int) error {
	if poolSize < MinPoolSize {
		return fmt.Errorf("%w: pool size %d is smaller than %d bytes",
			ErrInvalidArgument, poolSize, MinPoolSize)
	}
	r.poolSize = poolSize
	r.cellBuf = make([]cell, poolSize/cellSize)
	r.rowBuf = make([]int32, poolSize/rowSize)
	r.bandSize = max(poolSize/cellSize/8, 1)
	return nil
}

// PoolSize returns the size of the cell pool in bytes.
func (r *Raster) PoolSize() int {
	return r.poolSize
}

// BandSize returns the current initial band height.
func (r *Raster) BandSize() int {
	return r.bandSize
}

// RenderedSpans returns the number of spans produced by the last call to
// Render, including spans dropped because of Params.SkipSpans.
func (r *Raster) RenderedSpans() int {
	return r.rendered
}

// Render scan-converts p.Source.
//
// If an error occurs in direct mode, the spans delivered before the error
// are an incomplete rendering of the outline.
func (r *Raster) Render(p *Params) error {
	r.rendered = 0

	if r.poolSize == 0 {
		return fmt.Errorf("%w: no cell pool", ErrInvalidArgument)
	}
	if p == nil {
		return fmt.Errorf("%w: missing parameters", ErrInvalidArgument)
	}

	o := p.Source
	if o == nil {
		return fmt.Errorf("%w: no outline", ErrInvalidArgument)
	}
	if o.IsEmpty() {
		return nil
	}
	if err := o.validate(); err != nil {
		return err
	}

	direct := p.Flags&FlagDirect != 0
	if !direct {
		if err := p.Target.check(); err != nil {
			return err
		}
	} else if p.Spans == nil {
		return fmt.Errorf("%w: direct mode without span function", ErrInvalidArgument)
	}

	if p.Flags&FlagAA == 0 {
		return ErrInvalidMode
	}

	var clip image.Rectangle
	var emit SpanFunc
	switch {
	case !direct:
		clip = image.Rect(0, 0, p.Target.Width, p.Target.Rows)
		emit = p.Target.writeSpans
	case p.Flags&FlagClip != 0:
		clip = p.Clip
		emit = p.Spans
	default:
		clip = planeClip
		emit = p.Spans
	}

	xMin, yMin, xMax, yMax := o.cbox()
	xMin = max(xMin, clip.Min.X)
	yMin = max(yMin, clip.Min.Y)
	xMax = min(xMax, clip.Max.X)
	yMax = min(yMax, clip.Max.Y)
	if xMin >= xMax || yMin >= yMax {
		return nil
	}

	w := &r.w
	w.minEx, w.maxEx = xMin, xMax
	w.minEy, w.maxEy = yMin, yMax
	w.countEx = xMax - xMin
	w.countEy = yMax - yMin
	w.setLevels()

	w.fillRule = p.FillRule
	w.emit = emit
	w.skip = p.SkipSpans
	w.rendered = 0
	w.numSpans = 0

	err := r.convert(o)
	r.rendered = w.rendered
	w.emit = nil
	return err
}
