// Package parallel provides the worker pool used to evaluate independent
// slices of a curve concurrently.
package parallel

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool runs jobs on a fixed set of goroutines.
//
// Each worker owns a queue and steals from the other queues when its own
// is empty, which keeps uneven chunks from idling workers.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int
	queues  []chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool

	// mu is held for reading while Run enqueues and for writing while
	// Close stops the workers, so no job is queued after the workers exit.
	mu sync.RWMutex
}

// NewWorkerPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := max(workers*4, 8)

	p := &WorkerPool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan func(), queueSize)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.loop(i)
	}
	return p
}

func (p *WorkerPool) loop(id int) {
	defer p.wg.Done()

	own := p.queues[id]
	for {
		select {
		case <-p.done:
			p.drain(own)
			return
		case job := <-own:
			job()
			continue
		default:
		}

		if job := p.steal(id); job != nil {
			job()
			continue
		}

		select {
		case <-p.done:
			p.drain(own)
			return
		case job := <-own:
			job()
		}
	}
}

func (p *WorkerPool) drain(queue chan func()) {
	for {
		select {
		case job := <-queue:
			job()
		default:
			return
		}
	}
}

func (p *WorkerPool) steal(id int) func() {
	for i := range p.workers {
		if i == id {
			continue
		}
		select {
		case job := <-p.queues[i]:
			return job
		default:
		}
	}
	return nil
}

// Run distributes jobs round-robin and waits for all of them.
//
// Jobs that have not started when ctx is cancelled are skipped and Run
// returns ctx.Err(). Run on a closed pool executes nothing and returns nil.
func (p *WorkerPool) Run(ctx context.Context, jobs []func()) error {
	if len(jobs) == 0 {
		return nil
	}

	p.mu.RLock()
	if !p.running.Load() {
		p.mu.RUnlock()
		return nil
	}

	var wg sync.WaitGroup
	wg.Add(len(jobs))

	for i, job := range jobs {
		wrapped := func() {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			job()
		}

		select {
		case p.queues[i%p.workers] <- wrapped:
		case <-ctx.Done():
			wg.Done()
		}
	}
	p.mu.RUnlock()

	wg.Wait()
	return ctx.Err()
}

// Close stops accepting work, finishes queued jobs and stops the workers.
// A Run that is still enqueueing finishes doing so first. Close is safe to
// call multiple times.
func (p *WorkerPool) Close() {
	p.mu.Lock()
	if !p.running.CompareAndSwap(true, false) {
		p.mu.Unlock()
		return
	}
	close(p.done)
	p.mu.Unlock()
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning returns true if the pool is still accepting work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
