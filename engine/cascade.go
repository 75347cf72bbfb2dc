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

// cascadeTable bounds the binary-search slice of a destination shard given
// a lower/upper-bound index already found in the source shard one mipmap
// level below it. It has length len(source)+2: the extra two slots are
// sentinels so that a lookup at table[i+1] never runs off the end.
//
// Invariant (lower-bound tables; upper-bound tables are analogous):
// for any probe value v, with i = source.lowerBound(v, 0, len(source)),
//
//	table[i] <= dest.lowerBound(v, 0, len(dest)) <= table[i+1]
type cascadeTable []int32

// makeLowerCascading builds the table that brackets lowerBound lookups in
// dest given a lowerBound index already known in from. The walk over from
// is monotone: the destination cursor only ever advances, so this runs in
// O(len(from) + len(dest)).
func makeLowerCascading(from, dest *shard) cascadeTable {
	table := make(cascadeTable, 0, from.Len()+2)
	cursor := 0
	table = append(table, 0)
	for i := 0; i < from.Len(); i++ {
		cursor = dest.lowerBound(from.key[i], cursor, dest.Len())
		table = append(table, int32(cursor))
	}
	table = append(table, int32(dest.Len()))
	return table
}

// makeUpperCascading is the upperBound analogue of makeLowerCascading.
func makeUpperCascading(from, dest *shard) cascadeTable {
	table := make(cascadeTable, 0, from.Len()+2)
	cursor := 0
	table = append(table, 0)
	for i := 0; i < from.Len(); i++ {
		cursor = dest.upperBound(from.key[i], cursor, dest.Len())
		table = append(table, int32(cursor))
	}
	table = append(table, int32(dest.Len()))
	return table
}

// bracket returns the [from, to) slice of the next level's shard that a
// lookup for idx (an index already resolved in this level) must search
// within. The "+1" on the upper side is required slack: the true target in
// dest may sit exactly on table[idx+1], so the search window must include
// it as a candidate (spec §9 "cascading table off-by-one"). destLen clamps
// that slack at the shard's actual length, since table[idx+1] can itself
// already equal destLen (the table's sentinel value).
func (t cascadeTable) bracket(idx, destLen int) (from, to int) {
	from = int(t[idx])
	to = int(t[idx+1]) + 1
	if to > destLen {
		to = destLen
	}
	return
}
