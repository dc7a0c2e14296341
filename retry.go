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

import "errors"

// DefaultMaxPoolSize is the pool size at which RenderWithRetry gives up,
// when no other limit is given.
const DefaultMaxPoolSize = 1 << 20

// RenderWithRetry renders p like Render does. If the cell pool turns out to
// be too small, the pool size is doubled and the outline is rendered again,
// until the pool would exceed maxPool bytes. Spans which were delivered
// by a failed attempt are not delivered again.
//
// If maxPool is zero, DefaultMaxPoolSize is used. The enlarged pool is kept
// for later calls.
func (r *Raster) RenderWithRetry(p *Params, maxPool int) error {
	if maxPool <= 0 {
		maxPool = DefaultMaxPoolSize
	}
	if p == nil {
		return r.Render(p)
	}

	q := *p
	for {
		err := r.Render(&q)
		if !errors.Is(err, ErrMemoryOverflow) {
			return err
		}
		q.SkipSpans = max(q.SkipSpans, r.rendered)

		newSize := 2 * r.poolSize
		if newSize > maxPool {
			Logger().Warn("cell pool exhausted",
				"poolSize", r.poolSize, "maxPool", maxPool, "spans", q.SkipSpans)
			return err
		}
		Logger().Debug("growing cell pool", "from", r.poolSize, "to", newSize)
		if err := r.Reset(newSize); err != nil {
			return err
		}
	}
}
