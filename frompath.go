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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// FromPath converts a vector path into polygons, one per subpath.
// Bézier curves are flattened into line segments; flatness is the
// flattening tolerance in transformed coordinates and must be
// positive. Every point is mapped through trafo (use matrix.Identity
// for untransformed paths).
//
// Subpaths are treated as closed, whether or not the path closes them
// explicitly: a Polygon always has an implicit closing edge.
// Subpaths consisting of a single point become single-vertex
// polygons.
func FromPath(p *path.Data, trafo matrix.Matrix, flatness float64) []Polygon {
	var polys []Polygon
	var cur Polygon

	flush := func() {
		// Drop an explicit closing vertex; the closing edge is implied.
		if len(cur) > 1 && cur[len(cur)-1] == cur[0] {
			cur = cur[:len(cur)-1]
		}
		if len(cur) > 0 {
			polys = append(polys, cur)
		}
		cur = nil
	}
	add := func(v vec.Vec2) {
		cur = append(cur, apply(trafo, v))
	}

	// Path state
	var current vec.Vec2 // current point (user space)
	var subpath vec.Vec2 // subpath start (user space)

	// seed starts a fresh ring at the current point. This happens
	// after a MoveTo, and also when segments continue after a Close
	// without an intervening MoveTo.
	seed := func() {
		if len(cur) == 0 {
			add(current)
		}
	}

	// Walk the path using direct field access (no iterator allocation)
	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			flush()
			current = p.Coords[coordIdx]
			subpath = current
			coordIdx++
			add(current)

		case path.CmdLineTo:
			seed()
			add(p.Coords[coordIdx])
			current = p.Coords[coordIdx]
			coordIdx++

		case path.CmdQuadTo:
			seed()
			flattenQuadratic(trafo, current, p.Coords[coordIdx], p.Coords[coordIdx+1], flatness, add)
			current = p.Coords[coordIdx+1]
			coordIdx += 2

		case path.CmdCubeTo:
			seed()
			flattenCubic(trafo, current, p.Coords[coordIdx], p.Coords[coordIdx+1], p.Coords[coordIdx+2], flatness, add)
			current = p.Coords[coordIdx+2]
			coordIdx += 3

		case path.CmdClose:
			flush()
			current = subpath
		}
	}
	flush()

	return polys
}

// apply maps v through the affine transformation m.
func apply(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

// applyLinear applies only the 2×2 linear part of m to a vector.
// Used for transform-aware tolerance checking where translation is
// irrelevant.
func applyLinear(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y,
		Y: m[1]*v.X + m[3]*v.Y,
	}
}

// flattenQuadratic flattens a quadratic Bézier and calls emit for each
// segment endpoint. p0 is the start point (current point), p1 is
// control, p2 is endpoint. All points are in user space; the
// tolerance check happens in transformed space.
func flattenQuadratic(m matrix.Matrix, p0, p1, p2 vec.Vec2, flatness float64, emit func(vec.Vec2)) {
	// Compute error vector: e = (P0 - 2*P1 + P2) / 4
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)

	// Compute segment count
	n := 1
	errDev := applyLinear(m, e).Length()
	if errDev > flatness {
		n = int(math.Ceil(math.Sqrt(errDev / flatness)))
	}

	// Evaluate curve at n+1 points and emit segment endpoints
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		// B(t) = (1-t)²P0 + 2(1-t)tP1 + t²P2
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		emit(pt)
	}
}

// flattenCubic flattens a cubic Bézier and calls emit for each segment
// endpoint. p0 is start, p1/p2 are controls, p3 is endpoint. All in
// user space.
func flattenCubic(m matrix.Matrix, p0, p1, p2, p3 vec.Vec2, flatness float64, emit func(vec.Vec2)) {
	// Compute deviation vectors
	d1 := p0.Sub(p1.Mul(2)).Add(p2) // P0 - 2*P1 + P2
	d2 := p1.Sub(p2.Mul(2)).Add(p3) // P1 - 2*P2 + P3

	// Compute segment count using Wang's formula
	mDev := max(applyLinear(m, d1).Length(), applyLinear(m, d2).Length())
	n := 1
	if mDev > 0 {
		// n = ceil(sqrt(3 * mDev / (4 * ε)))
		nFloat := math.Sqrt(3 * mDev / (4 * flatness))
		if nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}

	// Evaluate curve at n+1 points and emit segment endpoints
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		// B(t) = (1-t)³P0 + 3(1-t)²tP1 + 3(1-t)t²P2 + t³P3
		omt := 1 - t
		omt2 := omt * omt
		omt3 := omt2 * omt
		t2 := t * t
		t3 := t2 * t
		pt := p0.Mul(omt3).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t3))
		emit(pt)
	}
}
