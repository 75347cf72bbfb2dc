//go:build amd64

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

import "golang.org/x/sys/cpu"

const laneWidth = 8

func init() {
	if cpu.X86.HasAVX2 {
		membershipScan = wideMembershipScan
	} else {
		membershipScan = scalarMembershipScan
	}
}

// wideMembershipScan mirrors the source's avx_search_single_bounds: a
// scalar prefix to reach a lane boundary, an unrolled lane-wide
// compare-and-mask body, and a scalar tail. Go gives no portable way to
// emit the AVX compare/mask intrinsics the source uses directly (that
// requires hand-written assembly, which we avoid here — see DESIGN.md);
// this expresses the same shape in pure Go so the compiler's own
// autovectorizer has the best chance of folding the inner loop into wide
// compares, while staying correct regardless of whether it does.
func wideMembershipScan(values []float32, indices []int32, lo, hi float32, push func(int32)) {
	n := len(values)
	i := 0
	// prefix: align to a laneWidth boundary
	for ; i < n && i%laneWidth != 0; i++ {
		if lo <= values[i] && values[i] <= hi {
			push(indices[i])
		}
	}
	// body: unrolled lane-wide block
	last := n - laneWidth + 1
	for ; i < last; i += laneWidth {
		var mask [laneWidth]bool
		for l := 0; l < laneWidth; l++ {
			v := values[i+l]
			mask[l] = lo <= v && v <= hi
		}
		for l := 0; l < laneWidth; l++ {
			if mask[l] {
				push(indices[i+l])
			}
		}
	}
	// tail
	for ; i < n; i++ {
		if lo <= values[i] && values[i] <= hi {
			push(indices[i])
		}
	}
}
