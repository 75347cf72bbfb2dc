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

// linearTier holds the Config.LinearN globally lowest-ranked points, laid
// out as parallel coordinate arrays in ascending rank order for an
// unconditional per-query scan (spec §3 LinearTier, §4.5 Phase A).
//
// Invariant: for every i < j < len(points), points[i].Rank < points[j].Rank,
// and xs[i] == points[i].X, ys[i] == points[i].Y.
type linearTier struct {
	xs, ys []float32
	points []Point
}

const linearLaneWidth = 8

// scan appends, in ascending rank order, every point inside rect, stopping
// as soon as limit matches have been appended. It returns the matches.
func (t *linearTier) scan(rect Rect, limit int) []Point {
	out := make([]Point, 0, limit)
	if limit == 0 || len(t.points) == 0 {
		return out
	}
	n := len(t.xs)
	i := 0
	for ; i+linearLaneWidth <= n; i += linearLaneWidth {
		var mask [linearLaneWidth]bool
		for l := 0; l < linearLaneWidth; l++ {
			x, y := t.xs[i+l], t.ys[i+l]
			mask[l] = rect.Contains(x, y)
		}
		for l := 0; l < linearLaneWidth; l++ {
			if mask[l] {
				out = append(out, t.points[i+l])
				if len(out) == limit {
					return out
				}
			}
		}
	}
	for ; i < n; i++ {
		if rect.Contains(t.xs[i], t.ys[i]) {
			out = append(out, t.points[i])
			if len(out) == limit {
				return out
			}
		}
	}
	return out
}
