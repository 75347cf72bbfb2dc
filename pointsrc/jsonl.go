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
package pointsrc

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/launix-de/rectrank/engine"
)

// jsonPoint mirrors engine.Point's fields under lowercase JSON keys, the
// same field-by-field record shape the C ABI uses (spec.md §6), so a point
// file round-trips through either loader without renaming.
type jsonPoint struct {
	ID   int8    `json:"id"`
	Rank int32   `json:"rank"`
	X    float32 `json:"x"`
	Y    float32 `json:"y"`
}

// LoadJSONL reads one JSON object per line from r, one engine.Point each.
// Named after the teacher's own storage.LoadJSON entry point.
func LoadJSONL(r io.Reader) ([]engine.Point, error) {
	scanner := bufio.NewScanner(r)
	var points []engine.Point
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		var jp jsonPoint
		if err := json.Unmarshal(raw, &jp); err != nil {
			return nil, fmt.Errorf("pointsrc: line %d: %w", line, err)
		}
		points = append(points, engine.Point{ID: jp.ID, Rank: jp.Rank, X: jp.X, Y: jp.Y})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return points, nil
}
