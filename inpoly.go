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

// Package inpoly classifies 2D points as inside, outside, or on the
// boundary of a polygon.
//
// Classification uses the even-odd ray-casting rule: a horizontal ray
// is cast rightwards from the query point, and the point is inside if
// the ray crosses an odd number of polygon edges. A query point which
// exactly coincides with a polygon vertex is reported using a
// caller-chosen border value, so that "on the boundary" can be
// distinguished from strict inside/outside.
package inpoly

import "seehuhn.de/go/geom/vec"

// Classification results. A query point coinciding with a polygon
// vertex yields the caller-supplied border value instead.
const (
	Outside byte = 0
	Inside  byte = 1
)

// Polygon is a closed ring of vertices. Edge i connects vertex i to
// vertex (i+1) mod N; the closing edge from the last vertex back to
// the first is implicit and must not be repeated in the slice.
// Polygons may be non-convex and may self-intersect; interior
// membership follows the even-odd rule.
type Polygon []vec.Vec2

// Point32 is a query point with single-precision coordinates.
// Coordinates are promoted to float64 before classification.
type Point32 struct {
	X, Y float32
}

// PointInt is a query point with integer coordinates.
// Coordinates are promoted to float64 before classification.
type PointInt struct {
	X, Y int32
}

// Classify tests pt against the polygon. It returns Outside or
// Inside, or border if pt exactly equals one of the vertices.
// Vertex equality is exact; no tolerance is applied.
//
// The polygon must have at least one vertex.
func Classify(poly Polygon, pt vec.Vec2, border byte) byte {
	return classify(poly, pt.X, pt.Y, border)
}

// classify implements the ray-casting test with a vertex-coincidence
// short-circuit, following Bourke's algorithm with Motrichuk's
// on-vertex handling.
//
// The placement of the comparison operators decides how points lying
// exactly on an edge are classified. The half-open y-range test keeps
// a vertex shared by two adjacent edges from being counted twice.
func classify(poly []vec.Vec2, x, y float64, border byte) byte {
	n := len(poly)
	counter := 0
	p1 := poly[0]
	for i := 1; i <= n; i++ {
		if p1.X == x && p1.Y == y {
			return border
		}
		p2 := poly[i%n]
		if y > min(p1.Y, p2.Y) && y <= max(p1.Y, p2.Y) && x <= max(p1.X, p2.X) {
			// Horizontal edges cannot be crossed by a horizontal ray.
			if p1.Y != p2.Y {
				xInters := (y-p1.Y)*(p2.X-p1.X)/(p2.Y-p1.Y) + p1.X
				if p1.X == p2.X || x <= xInters {
					counter++
				}
			}
		}
		p1 = p2
	}
	if counter%2 == 0 {
		return Outside
	}
	return Inside
}
