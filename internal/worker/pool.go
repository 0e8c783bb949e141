// Package worker provides a worker pool for replaying independent games in
// parallel. Each game gets its own engine.Game, so workers share no board
// state.
package worker

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/rookworks-go/internal/chess"
	"github.com/lgbarn/rookworks-go/internal/engine"
)

// WorkItem is a parsed game waiting to be processed.
type WorkItem struct {
	Game  *chess.GameData
	Index int // Position in the input, used to restore order
}

// ProcessResult is the outcome of processing one WorkItem.
type ProcessResult struct {
	Game     *chess.GameData
	Index    int
	Replayed *engine.Game // nil when Error is set
	Error    error
}

// ProcessFunc processes a single work item. It must be safe to call from
// several goroutines at once.
type ProcessFunc func(ctx context.Context, item WorkItem) ProcessResult

// Pool runs a ProcessFunc over submitted items on a fixed set of goroutines.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopped     atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool. Values below 1 fall back to 1.
func NewPool(numWorkers, bufferSize int, processFunc ProcessFunc) *Pool {
	return NewPoolWithOptions(processFunc, WithWorkers(numWorkers), WithBufferSize(bufferSize))
}

// NewPoolWithOptions creates a pool using functional options.
// Default: 1 worker, buffer size of 10.
func NewPoolWithOptions(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start launches the workers. Cancelling ctx has the same effect as Stop.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() || ctx.Err() != nil {
			continue // drain without processing
		}
		p.resultChan <- p.processFunc(ctx, item)
	}
}

// Submit queues a work item, blocking while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// TrySubmit queues a work item without blocking. It returns false if the
// buffer is full or the pool is stopped.
func (p *Pool) TrySubmit(item WorkItem) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.workChan <- item:
		return true
	default:
		return false
	}
}

// Stop makes workers skip the items still queued.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close closes the work channel, waits for the workers and then closes the
// result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Run processes games on a new pool and returns the results in input order.
// Items skipped because ctx was cancelled are absent from the result.
func Run(ctx context.Context, games []*chess.GameData, numWorkers int, fn ProcessFunc) []ProcessResult {
	pool := NewPool(numWorkers, numWorkers*2, fn)
	pool.Start(ctx)

	go func() {
		for i, g := range games {
			pool.Submit(WorkItem{Game: g, Index: i})
		}
		pool.Close()
	}()

	results := make([]ProcessResult, 0, len(games))
	for r := range pool.Results() {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	return results
}
