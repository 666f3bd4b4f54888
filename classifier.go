// seehuhn.de/go/inpoly - point-in-polygon classification
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

package inpoly

import (
	"fmt"
	"runtime"
	"sync"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Classifier applies one polygon to batches of query points.
// The caller creates one instance per polygon and reuses it for
// multiple batches. A Classifier is safe for concurrent use; it never
// mutates the polygon or any input batch.
type Classifier struct {
	// Border is returned for query points which exactly coincide
	// with a polygon vertex.
	Border byte

	// Workers is the maximum number of goroutines used to classify
	// large batches. Zero means GOMAXPROCS; 1 keeps every batch
	// single-threaded. Small batches are classified serially
	// regardless.
	Workers int

	poly   Polygon
	bounds rect.Rect
}

// New creates a Classifier for the given polygon. The polygon is
// borrowed: it must not be modified while the Classifier is in use.
// The polygon must have at least one vertex.
func New(poly Polygon, border byte) (*Classifier, error) {
	if len(poly) == 0 {
		return nil, fmt.Errorf("inpoly: polygon has no vertices")
	}
	bounds := rect.Rect{
		LLx: poly[0].X, LLy: poly[0].Y,
		URx: poly[0].X, URy: poly[0].Y,
	}
	for _, v := range poly[1:] {
		bounds.LLx = min(bounds.LLx, v.X)
		bounds.LLy = min(bounds.LLy, v.Y)
		bounds.URx = max(bounds.URx, v.X)
		bounds.URy = max(bounds.URy, v.Y)
	}
	return &Classifier{
		Border: border,
		poly:   poly,
		bounds: bounds,
	}, nil
}

// Bounds returns the bounding box of the polygon.
func (c *Classifier) Bounds() rect.Rect {
	return c.bounds
}

// Classify tests a single point, returning Outside, Inside or
// c.Border.
func (c *Classifier) Classify(pt vec.Vec2) byte {
	return c.at(pt.X, pt.Y)
}

// at classifies promoted coordinates. The precomputed bounding box
// rejects far-away points without edge tests: a point strictly
// outside the box cannot coincide with a vertex, and its crossing
// parity is always even.
func (c *Classifier) at(x, y float64) byte {
	if x < c.bounds.LLx || x > c.bounds.URx || y < c.bounds.LLy || y > c.bounds.URy {
		return Outside
	}
	return classify(c.poly, x, y, c.Border)
}

// Batch classifies each point of pts independently, writing one byte
// per point into dst in input order. dst must have the same length
// as pts.
func (c *Classifier) Batch(pts []vec.Vec2, dst []byte) error {
	if len(dst) != len(pts) {
		return fmt.Errorf("inpoly: output length %d does not match %d points", len(dst), len(pts))
	}
	c.run(len(pts), minBatchChunk, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = c.at(pts[i].X, pts[i].Y)
		}
	})
	return nil
}

// Batch32 is Batch for single-precision points. Coordinates are
// promoted to float64; border detection requires exact equality
// after promotion.
func (c *Classifier) Batch32(pts []Point32, dst []byte) error {
	if len(dst) != len(pts) {
		return fmt.Errorf("inpoly: output length %d does not match %d points", len(dst), len(pts))
	}
	c.run(len(pts), minBatchChunk, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = c.at(float64(pts[i].X), float64(pts[i].Y))
		}
	})
	return nil
}

// BatchInt is Batch for integer points.
func (c *Classifier) BatchInt(pts []PointInt, dst []byte) error {
	if len(dst) != len(pts) {
		return fmt.Errorf("inpoly: output length %d does not match %d points", len(dst), len(pts))
	}
	c.run(len(pts), minBatchChunk, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = c.at(float64(pts[i].X), float64(pts[i].Y))
		}
	})
	return nil
}

// run partitions [0, n) into contiguous ranges and invokes chunk once
// per range, possibly from multiple goroutines. Each point's result
// depends only on that point and the read-only polygon, and ranges
// are disjoint, so chunk may write per-index output without
// synchronisation. Work smaller than minChunk stays on the calling
// goroutine.
func (c *Classifier) run(n, minChunk int, chunk func(lo, hi int)) {
	workers := c.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if minChunk > 0 && workers > n/minChunk {
		workers = n / minChunk
	}
	if workers <= 1 {
		chunk(0, n)
		return
	}

	var wg sync.WaitGroup
	for w := range workers {
		lo := w * n / workers
		hi := (w + 1) * n / workers
		wg.Add(1)
		go func() {
			defer wg.Done()
			chunk(lo, hi)
		}()
	}
	wg.Wait()
}

// minBatchChunk is the smallest number of points worth handing to a
// separate goroutine.
const minBatchChunk = 2048
