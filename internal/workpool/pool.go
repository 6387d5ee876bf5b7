// Copyright (C) 2020 Markus L. Noga
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package workpool splits row-banded, per-pixel work across a bounded
// number of goroutines. Stage ordering at the orchestrator level stays
// strictly sequential; only the pixel loops inside a single stage are
// allowed to fan out, per the concurrency model.
package workpool

import (
	"sync"

	"github.com/klauspost/cpuid/v2"
)

// MaxWorkers is the default band count for RunRows. Sized off the detected
// logical core count the same way the teacher's stats_amd64.go gates its
// SIMD kernels on cpuid features, rather than a bare runtime.NumCPU() call.
var MaxWorkers = defaultWorkers()

func defaultWorkers() int {
	n := cpuid.CPU.LogicalCores
	if n < 1 {
		n = 1
	}
	return n
}

// RunRows partitions [0,rows) into at most MaxWorkers contiguous bands and
// calls fn(startRow, endRow) for each band concurrently, blocking until all
// bands complete. A single row is always handled by exactly one band.
func RunRows(rows int, fn func(startRow, endRow int)) {
	if rows <= 0 {
		return
	}
	workers := MaxWorkers
	if workers > rows {
		workers = rows
	}
	bandSize := (rows + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < rows; start += bandSize {
		end := start + bandSize
		if end > rows {
			end = rows
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}
