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
	"container/heap"
	"sort"
)

// topKHeap keeps the K lowest-ranked point indices seen so far. origin
// indices are assigned in ascending rank order during construction, so
// comparing origins is the same as comparing ranks with no extra lookup.
//
// This is a per-call scratch value (see engine/query.go), not a field on
// *Engine: the reference design owns one heap per engine and therefore
// forbids concurrent queries (spec §9 "heap reuse"); allocating it per
// Search call instead puts it on the query's own stack, so a built *Engine
// is safe for concurrent Search calls.
//
// It adopts the single-pass redesign noted in spec §9 ("sort_heap followed
// by continued pushes"): rather than freezing a prefix after every mipmap
// level and resuming into the remaining suffix, all survivors accumulate in
// one max-heap and are sorted once, at emission time. For realistic K this
// is simpler and not meaningfully slower.
type topKHeap struct {
	data []int32
	k    int
}

func newTopKHeap(k int) *topKHeap {
	return &topKHeap{data: make([]int32, 0, k), k: k}
}

func (h *topKHeap) Len() int            { return len(h.data) }
func (h *topKHeap) Less(i, j int) bool  { return h.data[i] > h.data[j] } // max-heap: worst rank on top
func (h *topKHeap) Swap(i, j int)       { h.data[i], h.data[j] = h.data[j], h.data[i] }
func (h *topKHeap) Push(x interface{})  { h.data = append(h.data, x.(int32)) }
func (h *topKHeap) Pop() interface{} {
	old := h.data
	n := len(old)
	v := old[n-1]
	h.data = old[:n-1]
	return v
}

// full reports whether the heap already holds k committed elements.
func (h *topKHeap) full() bool { return h.k > 0 && len(h.data) == h.k }

// push inserts origin if it beats the current worst committed element, or
// if the heap is not yet full. O(log k).
func (h *topKHeap) push(origin int32) {
	if h.k == 0 {
		return
	}
	if len(h.data) < h.k {
		heap.Push(h, origin)
		return
	}
	if origin < h.data[0] {
		h.data[0] = origin
		heap.Fix(h, 0)
	}
}

// ascending returns the committed origins sorted from lowest to highest
// rank (i.e. ascending origin, since origins are rank-ordered).
func (h *topKHeap) ascending() []int32 {
	out := make([]int32, len(h.data))
	copy(out, h.data)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
