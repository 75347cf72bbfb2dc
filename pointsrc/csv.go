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

// Package pointsrc loads static point sets for the rectrank engine from
// plain-text formats. The reference benchmark generated its point set as a
// binary blob; spec.md is silent on ingestion, so this package supplements
// it with the two formats simplest to hand-author for tests and demos.
package pointsrc

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/launix-de/rectrank/engine"
)

// LoadCSV reads one point per line as "id,rank,x,y" (no header) from r,
// using delimiter to split fields. Blank lines are skipped. Mirrors the
// streaming-scanner shape of the teacher's CSV loader, minus the
// schema/table resolution that has no equivalent here.
func LoadCSV(r io.Reader, delimiter string) ([]engine.Point, error) {
	scanner := bufio.NewScanner(r)
	var points []engine.Point
	line := 0
	for scanner.Scan() {
		line++
		s := scanner.Text()
		if s == "" {
			continue
		}
		fields := strings.Split(s, delimiter)
		if len(fields) != 4 {
			return nil, fmt.Errorf("pointsrc: line %d: want 4 fields (id,rank,x,y), got %d", line, len(fields))
		}
		p, err := parsePointFields(fields)
		if err != nil {
			return nil, fmt.Errorf("pointsrc: line %d: %w", line, err)
		}
		points = append(points, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return points, nil
}

func parsePointFields(fields []string) (engine.Point, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(fields[0]), 10, 8)
	if err != nil {
		return engine.Point{}, fmt.Errorf("id: %w", err)
	}
	rank, err := strconv.ParseInt(strings.TrimSpace(fields[1]), 10, 32)
	if err != nil {
		return engine.Point{}, fmt.Errorf("rank: %w", err)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 32)
	if err != nil {
		return engine.Point{}, fmt.Errorf("x: %w", err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(fields[3]), 32)
	if err != nil {
		return engine.Point{}, fmt.Errorf("y: %w", err)
	}
	return engine.Point{
		ID:   int8(id),
		Rank: int32(rank),
		X:    float32(x),
		Y:    float32(y),
	}, nil
}
