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

import "time"

// Timer is a thin collaborator for ad-hoc benchmarking, mirroring the
// reference's rdtsc_timer: construction captures the start, and Elapsed
// reports how much wall-clock time has passed since. It carries no bearing
// on Search's results and is never read on the query hot path.
type Timer struct {
	start time.Time
}

// NewTimer starts a timer.
func NewTimer() Timer { return Timer{start: time.Now()} }

// Elapsed returns the time since the timer was started.
func (t Timer) Elapsed() time.Duration { return time.Since(t.start) }
