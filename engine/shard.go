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

import "sort"

// shard is one rank bucket of the mipmap tier, materialized as three
// parallel slices sorted by key. For an x-shard, key holds x and other
// holds y (and vice versa for a y-shard); origin holds the index into the
// engine's rank-sorted point array.
//
// Invariant: key is nondecreasing, and for every position p,
// (key[p], other[p]) are the two coordinates of points[origin[p]].
type shard struct {
	key    []float32
	other  []float32
	origin []int32
}

func newShard(n int) *shard {
	return &shard{
		key:    make([]float32, 0, n),
		other:  make([]float32, 0, n),
		origin: make([]int32, 0, n),
	}
}

func (s *shard) Len() int { return len(s.key) }

// lowerBound returns the first index in [first,last) with key[i] >= v, or
// last if none does. Mirrors sort.Search's idiom, as used throughout the
// teacher's own index bisection (storage/index.go).
func (s *shard) lowerBound(v float32, first, last int) int {
	return first + sort.Search(last-first, func(i int) bool {
		return s.key[first+i] >= v
	})
}

// upperBound returns the first index in [first,last) with key[i] > v.
func (s *shard) upperBound(v float32, first, last int) int {
	return first + sort.Search(last-first, func(i int) bool {
		return s.key[first+i] > v
	})
}
