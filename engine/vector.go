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

// membershipScan pushes indices[i] for every i with lo <= values[i] <= hi.
// values and indices have the same length. Implementations must produce
// results identical to the scalar reference below; lane width is an
// implementation detail, never part of the contract (spec §4.6/§9).
//
// Resolved once at package init to the best implementation available on
// this architecture, the way the teacher resolves its JIT code generator
// per-ISA via build-tagged files (scm/jit_amd64.go, scm/jit_arm64.go).
var membershipScan func(values []float32, indices []int32, lo, hi float32, push func(int32))

// scalarMembershipScan is the portable reference implementation and the
// fallback used on any architecture without a faster path.
func scalarMembershipScan(values []float32, indices []int32, lo, hi float32, push func(int32)) {
	for i, v := range values {
		if lo <= v && v <= hi {
			push(indices[i])
		}
	}
}
