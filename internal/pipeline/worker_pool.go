package pipeline

import (
	"context"
	"sync"
)

type Result struct {
	Err error
}

type Task func(ctx context.Context) Result

// WorkerPool runs submitted tasks on a fixed number of goroutines. Submit every
// task, then Close, then drain the channel returned by Run.
type WorkerPool struct {
	workers int
	tasks   chan Task
	wg      sync.WaitGroup
}

func NewWorkerPool(workers, buffer int) *WorkerPool {
	if workers <= 0 {
		workers = 1
	}
	if buffer < 0 {
		buffer = 0
	}
	return &WorkerPool{
		workers: workers,
		tasks:   make(chan Task, buffer),
	}
}

func (p *WorkerPool) Submit(t Task) {
	if p == nil || t == nil {
		return
	}
	p.tasks <- t
}

func (p *WorkerPool) Close() {
	if p == nil {
		return
	}
	close(p.tasks)
}

func (p *WorkerPool) Run(ctx context.Context) <-chan Result {
	if p == nil {
		out := make(chan Result)
		close(out)
		return out
	}
	out := make(chan Result, p.workers)

	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go func() {
			defer p.wg.Done()
			for t := range p.tasks {
				if ctx.Err() != nil {
					out <- Result{Err: ctx.Err()}
					continue
				}
				out <- t(ctx)
			}
		}()
	}

	go func() {
		p.wg.Wait()
		close(out)
	}()

	return out
}
