// SPDX-License-Identifier: MIT

// Package workerpool provides a persistent, reusable fork-join pool.
// A Pool spawns its workers once and reuses them across many parallel-for
// calls, so a multiplication pays no goroutine spawn cost per call.
//
// Every ParallelFor* call is synchronous: the caller partitions [0, n) into
// disjoint ranges, hands one task per range to the workers and blocks on a
// join barrier until all of them finish. Tasks that write disjoint memory need
// no further synchronization.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelFor(rows, func(start, end int) {
//	    processRows(start, end)
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// Pool is a persistent worker pool. Workers are spawned by New and live
// until Close.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
	counters   []workerCounter // one per worker, indexed by worker id
}

// workerCounter counts tasks finished by one worker. The pads keep hot
// counters of neighbouring workers on separate cache lines.
type workerCounter struct {
	_    cpu.CacheLinePad
	done atomic.Uint64
	_    cpu.CacheLinePad
}

// workItem is a single task plus the barrier it reports to.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

var (
	defaultOnce sync.Once
	defaultPool *Pool
)

// Default returns the process-wide pool sized to runtime.GOMAXPROCS(0),
// creating it on first use. It is never closed.
func Default() *Pool {
	defaultOnce.Do(func() {
		defaultPool = New(0)
	})

	return defaultPool
}

// New creates a pool with the given number of workers.
// If numWorkers <= 0, GOMAXPROCS is used.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Buffer enough for all workers to have pending work
		workC:    make(chan workItem, numWorkers*2),
		counters: make([]workerCounter, numWorkers),
	}

	for id := range numWorkers {
		go p.worker(id)
	}

	return p
}

// worker is the main loop for each persistent worker goroutine.
func (p *Pool) worker(id int) {
	c := &p.counters[id]
	for item := range p.workC {
		item.fn()
		c.done.Add(1)
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Completed returns a snapshot of tasks finished per worker.
// Work run inline on the caller (single chunk, closed pool) is not counted.
func (p *Pool) Completed() []uint64 {
	out := make([]uint64, len(p.counters))
	for i := range p.counters {
		out[i] = p.counters[i].done.Load()
	}

	return out
}

// Close shuts down the pool after pending work completes.
// Calling Close multiple times is safe. A closed pool runs work inline.
// Close must not race with a ParallelFor* call in flight on the same pool.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelFor calls fn over [0, n) split into at most NumWorkers contiguous
// ranges of size ceil(n/workers) and blocks until all ranges are done.
//
// fn receives (start, end) and must process [start, end).
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	if p.closed.Load() {
		fn(0, n)
		return
	}

	// Never use more workers than items.
	workers := min(p.numWorkers, n)
	if workers == 1 {
		fn(0, n)
		return
	}

	chunkSize := (n + workers - 1) / workers
	// Ceil division can leave trailing workers without work (n=5, w=4 -> 2,2,1).
	chunks := (n + chunkSize - 1) / chunkSize

	var wg sync.WaitGroup
	wg.Add(chunks)
	for i := range chunks {
		start := i * chunkSize
		end := min(start+chunkSize, n)
		p.workC <- workItem{
			fn: func() {
				fn(start, end)
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}

// ParallelForBatched calls fn over [0, n) in batches of batchSize handed out
// through an atomic cursor, so faster workers take more batches. Blocks until
// all batches are done. batchSize <= 0 is treated as 1.
func (p *Pool) ParallelForBatched(n, batchSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if batchSize <= 0 {
		batchSize = 1
	}

	if p.closed.Load() {
		fn(0, n)
		return
	}

	numBatches := (n + batchSize - 1) / batchSize
	workers := min(p.numWorkers, numBatches)
	if workers == 1 {
		fn(0, n)
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.workC <- workItem{
			fn: func() {
				for {
					start := int(next.Add(int64(batchSize))) - batchSize
					if start >= n {
						return
					}
					fn(start, min(start+batchSize, n))
				}
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}
