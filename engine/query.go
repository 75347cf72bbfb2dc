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

// Search returns up to k points of e inside rect, in ascending rank order.
// It returns fewer than k if rect contains fewer matching points, and
// returns nil without inspecting rect if k <= 0 or e is empty (spec §4.5,
// §7).
//
// Search allocates its own scratch heap per call, so the same *Engine may
// be queried concurrently from multiple goroutines (spec §9 "heap reuse").
func (e *Engine) Search(rect Rect, k int) []Point {
	if k <= 0 || len(e.points) == 0 {
		return nil
	}

	out := make([]Point, 0, k)
	if e.linear != nil {
		out = append(out, e.linear.scan(rect, k)...)
	}
	if len(out) >= k || len(e.levels) == 0 {
		return out
	}
	if rect.Lx != rect.Lx || rect.Ly != rect.Ly || rect.Hx != rect.Hx || rect.Hy != rect.Hy {
		return out // a NaN bound matches no point (see Rect.Contains)
	}

	remaining := k - len(out)
	h := newTopKHeap(remaining)

	var xLow, xHigh, yLow, yHigh int
	for i, lvl := range e.levels {
		if i == 0 {
			xLow = lvl.x.lowerBound(rect.Lx, 0, lvl.x.Len())
			xHigh = lvl.x.upperBound(rect.Hx, xLow, lvl.x.Len())
			yLow = lvl.y.lowerBound(rect.Ly, 0, lvl.y.Len())
			yHigh = lvl.y.upperBound(rect.Hy, yLow, lvl.y.Len())
		} else {
			xLowFrom, xLowTo := e.xLower[i-1].bracket(xLow, lvl.x.Len())
			xLow = lvl.x.lowerBound(rect.Lx, xLowFrom, xLowTo)
			xHighFrom, xHighTo := e.xUpper[i-1].bracket(xHigh, lvl.x.Len())
			xHigh = lvl.x.upperBound(rect.Hx, xHighFrom, xHighTo)

			yLowFrom, yLowTo := e.yLower[i-1].bracket(yLow, lvl.y.Len())
			yLow = lvl.y.lowerBound(rect.Ly, yLowFrom, yLowTo)
			yHighFrom, yHighTo := e.yUpper[i-1].bracket(yHigh, lvl.y.Len())
			yHigh = lvl.y.upperBound(rect.Hy, yHighFrom, yHighTo)
		}

		xSize := xHigh - xLow
		ySize := yHigh - yLow
		if xSize <= 0 || ySize <= 0 {
			continue // bracket is empty at this level; later levels may still hold matches
		}

		// Axis selection: scan whichever 1-D bracket is smaller (spec §4.5.c).
		if xSize < ySize {
			membershipScan(lvl.x.other[xLow:xHigh], lvl.x.origin[xLow:xHigh], rect.Ly, rect.Hy, h.push)
		} else {
			membershipScan(lvl.y.other[yLow:yHigh], lvl.y.origin[yLow:yHigh], rect.Lx, rect.Hx, h.push)
		}

		if h.full() {
			// Buckets are carved in ascending rank order, so no later level can
			// hold a point better than the current worst committed one.
			break
		}
	}

	for _, origin := range h.ascending() {
		out = append(out, e.points[origin])
	}
	return out
}
