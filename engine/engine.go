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

// Package engine implements a static, read-only top-K ranked rectangle
// search engine: a linear tier of the globally best-ranked points plus a
// geometric-sequence mipmap tier of rank-bucketed, dual-axis shards linked
// by fractional-cascading tables.
package engine

import "github.com/google/uuid"

// Engine is a search engine built once over a fixed point set. All of its
// fields are written during New and left unchanged until Close clears them,
// so a built *Engine is safe for concurrent Search calls that do not overlap
// Close (see engine/heap.go).
type Engine struct {
	id     uuid.UUID
	cfg    Config
	points []Point // full set, sorted by ascending rank

	linear *linearTier
	levels []mipmapLevel

	xLower, xUpper []cascadeTable
	yLower, yUpper []cascadeTable
}

// ID identifies this built engine for logging/diagnostics; it has no
// bearing on query results.
func (e *Engine) ID() uuid.UUID { return e.id }

// Len returns the number of points the engine holds: every input point
// except those with a NaN coordinate, which New drops.
func (e *Engine) Len() int { return len(e.points) }

// Close releases engine resources. The engine holds no OS resources (no
// files, no network, per spec §6), so this only exists to give callers
// (notably the C ABI, spec §6) a single well-defined place to drop the
// reference and to pair with onexit-style shutdown hooks (see main.go).
func (e *Engine) Close() {
	e.points = nil
	e.linear = nil
	e.levels = nil
	e.xLower, e.xUpper, e.yLower, e.yUpper = nil, nil, nil, nil
}
