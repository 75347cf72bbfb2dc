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

// Command abi is the thin create/search/destroy C-ABI shim (spec.md §6),
// grounded on the reference dll.h/dll.cpp: a SearchContext* there is an
// opaque pointer; here it is a runtime/cgo.Handle, the standard Go
// mechanism for handing a Go value across a C boundary without letting the
// garbage collector move or collect it underneath the caller. Built with
// `go build -buildmode=c-shared` (or c-archive); cgo export comments are
// only honored in package main.
package main

/*
#include <stdint.h>

typedef struct {
	int8_t  id;
	int32_t rank;
	float   x;
	float   y;
} rectrank_point;

typedef struct {
	float lx;
	float ly;
	float hx;
	float hy;
} rectrank_rect;
*/
import "C"

import (
	"runtime/cgo"
	"unsafe"

	"github.com/launix-de/rectrank/engine"
)

// create builds an engine over the half-open range [pointsBegin, pointsEnd)
// and returns an opaque handle (spec.md §6 "create"). Panics if pointsEnd <
// pointsBegin, mirroring the reference's undefined-behavior-on-misuse
// contract for a thin ABI wrapper.
//
//export create
func create(pointsBegin, pointsEnd *C.rectrank_point) C.uintptr_t {
	diff := int(uintptr(unsafe.Pointer(pointsEnd))) - int(uintptr(unsafe.Pointer(pointsBegin)))
	if diff < 0 {
		panic("abi: points_end precedes points_begin")
	}
	n := diff / int(unsafe.Sizeof(C.rectrank_point{}))
	raw := unsafe.Slice(pointsBegin, n)
	points := make([]engine.Point, n)
	for i, p := range raw {
		points[i] = engine.Point{ID: int8(p.id), Rank: int32(p.rank), X: float32(p.x), Y: float32(p.y)}
	}
	e := engine.New(points, engine.Default())
	return C.uintptr_t(cgo.NewHandle(e))
}

// search runs a query against the engine identified by handle, filling up
// to count entries in outPoints and returning the number written
// (spec.md §6 "search").
//
//export search
func search(handle C.uintptr_t, rect C.rectrank_rect, count C.int32_t, outPoints *C.rectrank_point) C.int32_t {
	e := cgo.Handle(handle).Value().(*engine.Engine)
	r := engine.Rect{Lx: float32(rect.lx), Ly: float32(rect.ly), Hx: float32(rect.hx), Hy: float32(rect.hy)}
	results := e.Search(r, int(count))

	out := unsafe.Slice(outPoints, int(count))
	for i, p := range results {
		out[i] = C.rectrank_point{id: C.int8_t(p.ID), rank: C.int32_t(p.Rank), x: C.float(p.X), y: C.float(p.Y)}
	}
	return C.int32_t(len(results))
}

// destroy releases the engine behind handle (spec.md §6 "destroy").
// Handles are not reusable afterward.
//
//export destroy
func destroy(handle C.uintptr_t) {
	h := cgo.Handle(handle)
	if e, ok := h.Value().(*engine.Engine); ok {
		e.Close()
	}
	h.Delete()
}

func main() {}
