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

// Config holds the engine's build-time tuning knobs. There is nothing to
// configure at query time (spec §6: "no environment variables, no files,
// no config") — this is a constructor argument, not ambient global state.
type Config struct {
	// LinearN is the size of the linear tier: the globally lowest-ranked
	// points scanned unconditionally on every query. Reference value 2048.
	// Should be a multiple of the scan's lane width (linearLaneWidth in
	// engine/linear.go) for
	// the scan to stay branch-free; this is not enforced, only documented,
	// since an odd value merely shrinks the last partial block rather than
	// producing wrong results.
	LinearN int

	// BucketBase is the size of mipmap level 0, the first bucket carved
	// from the remainder after the linear tier. Reference value 3050.
	BucketBase int

	// Growth is the geometric growth factor applied to each subsequent
	// bucket's size. Must be > 1 for bucket sizes to grow geometrically.
	// Later levels hold strictly higher rank bands than earlier ones for
	// any growth factor, because buckets are carved in ascending rank
	// order; that is what makes early termination during descent sound.
	// Reference value 3.
	Growth int

	// MaxBuildParallelism caps how many mipmap levels are constructed
	// concurrently. Zero means "use runtime.NumCPU()".
	MaxBuildParallelism int
}

// Default returns the reference configuration from the original
// benchmark (spec §4.4, §9 Open Question (b)).
func Default() Config {
	return Config{
		LinearN:    2048,
		BucketBase: 3050,
		Growth:     3,
	}
}
