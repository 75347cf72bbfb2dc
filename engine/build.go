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

import (
	"fmt"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/jtolds/gls"
)

// mipmapLevel is one rank bucket of the mipmap tier, stored twice: once
// sorted by x, once sorted by y (spec §3 "Mipmap level").
type mipmapLevel struct {
	x, y *shard
}

// New builds a read-only search engine over points. Construction sorts by
// rank, carves off the linear tier, and partitions the remainder into
// geometrically growing rank buckets, each materialized as an x-sorted and
// a y-sorted shard plus the cascading tables linking adjacent levels.
//
// An empty input produces an engine whose Search always returns zero
// results. An input smaller than cfg.LinearN degrades gracefully: the
// whole set becomes the linear tier and there are zero mipmap levels
// (spec §4.4, §9 Open Question (a)) — this is the documented small-input
// policy the reference implementation left unspecified.
func New(points []Point, cfg Config) *Engine {
	// Engine.ID is assigned once per construction, never on the query hot
	// path, so there is no reason to avoid crypto/rand here the way the
	// teacher's hot-path fast_uuid.go does for per-row IDs.
	e := &Engine{id: uuid.New(), cfg: cfg}
	if len(points) == 0 {
		return e
	}

	sorted := make([]Point, 0, len(points))
	for _, p := range points {
		// A NaN coordinate has no place in a shard's sort order and can never
		// satisfy Rect.Contains, so such points are dropped here.
		if p.X != p.X || p.Y != p.Y {
			continue
		}
		sorted = append(sorted, p)
	}
	if len(sorted) == 0 {
		return e
	}
	// SliceStable keeps tie-break order deterministic given a fixed input
	// order, which is the chosen answer to Open Question (c) (rank
	// uniqueness is assumed, not enforced).
	sort.SliceStable(sorted, func(i, j int) bool { return rankLess(sorted[i], sorted[j]) })
	e.points = sorted

	linearN := cfg.LinearN
	if linearN > len(sorted) {
		linearN = len(sorted)
	}
	e.linear = buildLinearTier(sorted[:linearN])

	rest := sorted[linearN:]
	if len(rest) == 0 {
		return e
	}

	bounds := bucketBounds(len(rest), cfg.BucketBase, cfg.Growth)
	e.levels = make([]mipmapLevel, len(bounds))

	workers := cfg.MaxBuildParallelism
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers < 1 {
		workers = 1
	}
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	wg.Add(len(bounds))
	for li, b := range bounds {
		li, b := li, b
		sem <- struct{}{}
		gls.Go(func() func() {
			return func() {
				defer func() { <-sem; wg.Done() }()
				bucket := rest[b.lo:b.hi]
				e.levels[li] = mipmapLevel{
					x: buildAxisShard(bucket, linearN+b.lo, 'x'),
					y: buildAxisShard(bucket, linearN+b.lo, 'y'),
				}
			}
		}())
	}
	wg.Wait()

	e.xLower = make([]cascadeTable, len(e.levels)-1)
	e.xUpper = make([]cascadeTable, len(e.levels)-1)
	e.yLower = make([]cascadeTable, len(e.levels)-1)
	e.yUpper = make([]cascadeTable, len(e.levels)-1)
	for i := 0; i < len(e.levels)-1; i++ {
		e.xLower[i] = makeLowerCascading(e.levels[i].x, e.levels[i+1].x)
		e.xUpper[i] = makeUpperCascading(e.levels[i].x, e.levels[i+1].x)
		e.yLower[i] = makeLowerCascading(e.levels[i].y, e.levels[i+1].y)
		e.yUpper[i] = makeUpperCascading(e.levels[i].y, e.levels[i+1].y)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "rectrank engine %s: %d points, linear tier %d, %d mipmap levels (", e.id, len(sorted), linearN, len(e.levels))
	for i, lvl := range e.levels {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d", lvl.x.Len())
	}
	b.WriteString(")")
	fmt.Println(b.String())

	return e
}

type bucketBound struct{ lo, hi int }

// bucketBounds splits a remainder of size n into consecutive buckets of
// size base, base*growth, base*growth^2, ..., clamping the last bucket to
// whatever remains (spec §4.4 step 3).
func bucketBounds(n, base, growth int) []bucketBound {
	var bounds []bucketBound
	size := base
	lo := 0
	for lo < n {
		hi := lo + size
		if hi > n {
			hi = n
		}
		bounds = append(bounds, bucketBound{lo, hi})
		lo = hi
		size *= growth
	}
	return bounds
}

func buildLinearTier(points []Point) *linearTier {
	t := &linearTier{
		xs:     make([]float32, len(points)),
		ys:     make([]float32, len(points)),
		points: points,
	}
	for i, p := range points {
		t.xs[i] = p.X
		t.ys[i] = p.Y
	}
	return t
}

// buildAxisShard sorts a copy of bucket by the given axis and records each
// point's origin as its index into the engine's global rank-sorted array
// (globalOffset + its position within bucket before sorting).
func buildAxisShard(bucket []Point, globalOffset int, axis byte) *shard {
	type indexed struct {
		p      Point
		origin int32
	}
	tmp := make([]indexed, len(bucket))
	for i, p := range bucket {
		tmp[i] = indexed{p, int32(globalOffset + i)}
	}
	if axis == 'x' {
		sort.Slice(tmp, func(i, j int) bool { return tmp[i].p.X < tmp[j].p.X })
	} else {
		sort.Slice(tmp, func(i, j int) bool { return tmp[i].p.Y < tmp[j].p.Y })
	}

	s := newShard(len(bucket))
	for _, e := range tmp {
		if axis == 'x' {
			s.key = append(s.key, e.p.X)
			s.other = append(s.other, e.p.Y)
		} else {
			s.key = append(s.key, e.p.Y)
			s.other = append(s.other, e.p.X)
		}
		s.origin = append(s.origin, e.origin)
	}
	return s
}
