// Package worker provides a small fixed-size worker pool for running
// independent analyses concurrently.
package worker

import "sync"

// Job is a unit of work to be executed by the pool.
type Job interface {
	Execute() Result
}

// Result is the outcome of a job execution.
type Result interface {
	GetError() error
}

// Pool manages a set of workers that execute jobs concurrently. Jobs
// share no mutable state, so no locking happens beyond the channels.
type Pool struct {
	workers   int
	jobQueue  chan Job
	results   chan Result
	wg        sync.WaitGroup
	collected []Result
	done      chan struct{}
}

// NewPool creates a pool with the given number of workers.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, workers*2),
		results:  make(chan Result, workers*2),
		done:     make(chan struct{}),
	}
}

// Start launches the worker goroutines and the result collector.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	// Collect as results arrive so workers never block on a full
	// results channel, however many jobs are submitted.
	go func() {
		for result := range p.results {
			p.collected = append(p.collected, result)
		}
		close(p.done)
	}()
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for job := range p.jobQueue {
		p.results <- job.Execute()
	}
}

// Submit queues a job for execution.
func (p *Pool) Submit(job Job) {
	p.jobQueue <- job
}

// Wait closes the queue, waits for the workers to drain it, and
// returns all results. Result order is completion order, not
// submission order; jobs that need ordering should carry an index.
func (p *Pool) Wait() []Result {
	close(p.jobQueue)
	p.wg.Wait()
	close(p.results)
	<-p.done
	return p.collected
}
