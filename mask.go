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
	"image"
)

// Mask classifies the centre of every pixel in bounds and writes the
// classification bytes into buf in row-major order. Pixel (x, y) is
// classified at (x+0.5, y+0.5). buf must have length
// bounds.Dx()*bounds.Dy().
//
// This builds pixel selection masks: Outside pixels are 0, Inside
// pixels are 1, and pixels whose centre coincides with a polygon
// vertex carry c.Border.
func (c *Classifier) Mask(bounds image.Rectangle, buf []byte) error {
	w, h := bounds.Dx(), bounds.Dy()
	if len(buf) != w*h {
		return fmt.Errorf("inpoly: mask buffer length %d does not match %dx%d pixels", len(buf), w, h)
	}

	// Parallelise by rows; chunk size scales so that a goroutine
	// handles at least minBatchChunk pixels.
	minRows := 1
	if w > 0 {
		minRows = max(1, minBatchChunk/w)
	}
	c.run(h, minRows, func(lo, hi int) {
		for row := lo; row < hi; row++ {
			y := float64(bounds.Min.Y+row) + 0.5
			out := buf[row*w : (row+1)*w]
			for col := range out {
				out[col] = c.at(float64(bounds.Min.X+col)+0.5, y)
			}
		}
	})
	return nil
}

// NewMask allocates and fills a selection mask for every pixel in
// bounds. See Mask for the pixel classification rule.
func (c *Classifier) NewMask(bounds image.Rectangle) []byte {
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil
	}
	buf := make([]byte, w*h)
	_ = c.Mask(bounds, buf) // buf is correctly sized, so Mask cannot fail
	return buf
}
