/*
Copyright (C) 2026  Carl-Philip Hänsch

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package engine

// Point is one entry of the input set. Rank is the total order the engine
// optimizes for (lower is better); ID is opaque to the engine and only
// ever round-tripped to the caller.
type Point struct {
	ID   int8
	Rank int32
	X    float32
	Y    float32
}

// Rect is an axis-aligned query window, inclusive on all four edges.
// Lx/Hx and Ly/Hy are not required to be ordered; an inverted rectangle
// simply contains no points.
type Rect struct {
	Lx, Ly, Hx, Hy float32
}

// Contains reports whether p lies inside r, edges inclusive.
//
// NaN in either p's coordinates or r's bounds makes every comparison here
// false, so such points are silently excluded rather than mishandled.
func (r Rect) Contains(x, y float32) bool {
	return r.Lx <= x && x <= r.Hx && r.Ly <= y && y <= r.Hy
}

func rankLess(a, b Point) bool { return a.Rank < b.Rank }
