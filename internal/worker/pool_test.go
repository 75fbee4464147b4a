package worker

import (
	"context"
	stderrors "errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lgbarn/chess-puzzle-go/internal/chess"
	"github.com/lgbarn/chess-puzzle-go/internal/engine"
)

// testBoard returns a small board with two kings.
func testBoard() *chess.Board {
	b := chess.NewBoard(4)
	b.Add(chess.NewPiece(chess.King, chess.White, 1, 1))
	b.Add(chess.NewPiece(chess.King, chess.Black, 4, 4))
	return b
}

// noopProcessFunc returns a basic process function that does nothing.
func noopProcessFunc() ProcessFunc {
	return func(_ context.Context, item WorkItem) ProcessResult {
		return ProcessResult{Board: item.Board, Index: item.Index}
	}
}

// countingProcessFunc returns a process function that increments a counter.
func countingProcessFunc(counter *int32) ProcessFunc {
	return func(_ context.Context, item WorkItem) ProcessResult {
		atomic.AddInt32(counter, 1)
		return ProcessResult{Board: item.Board, Index: item.Index, Status: engine.Stalemate}
	}
}

// collectResults drains the result channel and returns the count.
func collectResults(pool *Pool) int {
	count := 0
	for range pool.Results() {
		count++
	}
	return count
}

// TestPoolBasic tests basic worker pool functionality.
func TestPoolBasic(t *testing.T) {
	var processed int32
	pool := NewPool(4, 10, countingProcessFunc(&processed))
	pool.Start(context.Background())

	const numItems = 10
	for i := 0; i < numItems; i++ {
		pool.Submit(WorkItem{Board: testBoard(), Seed: int64(i), Index: i})
	}

	go pool.Close()

	resultCount := collectResults(pool)
	if resultCount != numItems {
		t.Errorf("results = %d; want %d", resultCount, numItems)
	}
	if got := atomic.LoadInt32(&processed); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

// TestPoolSingleWorker tests pool with single worker.
func TestPoolSingleWorker(t *testing.T) {
	pool := NewPool(1, 5, noopProcessFunc())
	pool.Start(context.Background())

	const numItems = 5
	for i := 0; i < numItems; i++ {
		pool.Submit(WorkItem{Board: testBoard(), Index: i})
	}

	go pool.Close()

	if got := collectResults(pool); got != numItems {
		t.Errorf("results = %d; want %d", got, numItems)
	}
}

// TestPoolEarlyStop tests early termination with Stop().
func TestPoolEarlyStop(t *testing.T) {
	var processedCount int32

	slowProcessFunc := func(_ context.Context, item WorkItem) ProcessResult {
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt32(&processedCount, 1)
		return ProcessResult{Board: item.Board, Index: item.Index}
	}

	pool := NewPool(2, 100, slowProcessFunc)
	pool.Start(context.Background())

	const numItems = 50
	for i := 0; i < numItems; i++ {
		pool.Submit(WorkItem{Board: testBoard(), Index: i})
	}

	time.Sleep(30 * time.Millisecond)
	pool.Stop()

	go pool.Close()
	collectResults(pool)

	if processed := atomic.LoadInt32(&processedCount); processed >= numItems {
		t.Logf("early stop may not have prevented all processing: %d processed", processed)
	}
}

// TestPoolCancelledContext tests that items after cancellation report the context error.
func TestPoolCancelledContext(t *testing.T) {
	var processed int32
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pool := NewPool(2, 10, countingProcessFunc(&processed))
	pool.Start(ctx)

	const numItems = 5
	for i := 0; i < numItems; i++ {
		pool.Submit(WorkItem{Board: testBoard(), Index: i})
	}
	go pool.Close()

	cancelled := 0
	for result := range pool.Results() {
		if !stderrors.Is(result.Err, context.Canceled) {
			t.Errorf("result %d error = %v, want context.Canceled", result.Index, result.Err)
		}
		cancelled++
	}

	if got := atomic.LoadInt32(&processed); got != 0 {
		t.Errorf("processed = %d; want 0", got)
	}
	if cancelled == 0 || !pool.IsStopped() {
		t.Errorf("cancelled = %d, stopped = %v; want at least one result and a stopped pool", cancelled, pool.IsStopped())
	}
}

// TestPoolIsStopped tests the IsStopped method.
func TestPoolIsStopped(t *testing.T) {
	pool := NewPool(2, 10, noopProcessFunc())
	pool.Start(context.Background())

	if pool.IsStopped() {
		t.Error("pool should not be stopped initially")
	}

	pool.Stop()

	if !pool.IsStopped() {
		t.Error("pool should be stopped after Stop()")
	}

	pool.Close()
}

// TestPoolTrySubmit tests non-blocking submission.
func TestPoolTrySubmit(t *testing.T) {
	slowProcessFunc := func(_ context.Context, item WorkItem) ProcessResult {
		time.Sleep(100 * time.Millisecond)
		return ProcessResult{Index: item.Index}
	}

	pool := NewPool(1, 2, slowProcessFunc)
	pool.Start(context.Background())

	if !pool.TrySubmit(WorkItem{Board: testBoard(), Index: 0}) {
		t.Error("first TrySubmit should succeed")
	}
	if !pool.TrySubmit(WorkItem{Board: testBoard(), Index: 1}) {
		t.Error("second TrySubmit should succeed")
	}

	// Third might fail if buffer is full (timing-dependent, just verify no panic)
	pool.TrySubmit(WorkItem{Board: testBoard(), Index: 2})

	pool.Stop()
	if pool.TrySubmit(WorkItem{Board: testBoard(), Index: 3}) {
		t.Error("TrySubmit after Stop should return false")
	}

	go pool.Close()
	collectResults(pool)
}

// TestPoolNumWorkers tests NumWorkers method.
func TestPoolNumWorkers(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{"valid workers", 4, 4},
		{"minimum workers", 1, 1},
		{"zero defaults to 1", 0, 1},
		{"negative defaults to 1", -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(tt.input, 10, noopProcessFunc())
			if got := pool.NumWorkers(); got != tt.expected {
				t.Errorf("NumWorkers() = %d; want %d", got, tt.expected)
			}
		})
	}
}

// TestPoolResultOrder tests that all results are received regardless of order.
func TestPoolResultOrder(t *testing.T) {
	variableDelayFunc := func(_ context.Context, item WorkItem) ProcessResult {
		if item.Index%2 == 0 {
			time.Sleep(10 * time.Millisecond)
		}
		return ProcessResult{Board: item.Board, Index: item.Index}
	}

	pool := NewPool(4, 20, variableDelayFunc)
	pool.Start(context.Background())

	const numItems = 10
	for i := 0; i < numItems; i++ {
		pool.Submit(WorkItem{Board: testBoard(), Index: i})
	}

	go pool.Close()

	seen := make(map[int]bool)
	for result := range pool.Results() {
		seen[result.Index] = true
	}

	if len(seen) != numItems {
		t.Errorf("received %d results; want %d", len(seen), numItems)
	}
	for i := 0; i < numItems; i++ {
		if !seen[i] {
			t.Errorf("missing index %d in results", i)
		}
	}
}

// TestPoolNoRace is designed to be run with -race flag.
func TestPoolNoRace(t *testing.T) {
	var counter int32
	pool := NewPool(8, 50, countingProcessFunc(&counter))
	pool.Start(context.Background())

	const numItems = 100
	go func() {
		for i := 0; i < numItems; i++ {
			pool.Submit(WorkItem{Board: testBoard(), Index: i})
		}
		pool.Close()
	}()

	collectResults(pool)

	if got := atomic.LoadInt32(&counter); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

// TestNewPoolWithOptions tests the functional options constructor.
func TestNewPoolWithOptions(t *testing.T) {
	tests := []struct {
		name        string
		opts        []PoolOption
		wantWorkers int
		wantBuffer  int
	}{
		{"defaults", nil, 1, 10},
		{"with workers", []PoolOption{WithWorkers(4)}, 4, 10},
		{"with buffer size", []PoolOption{WithBufferSize(50)}, 1, 50},
		{"with multiple options", []PoolOption{WithWorkers(8), WithBufferSize(100)}, 8, 100},
		{"invalid workers ignored", []PoolOption{WithWorkers(0)}, 1, 10},
		{"invalid buffer size ignored", []PoolOption{WithBufferSize(-5)}, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPoolWithOptions(noopProcessFunc(), tt.opts...)
			if pool.NumWorkers() != tt.wantWorkers {
				t.Errorf("NumWorkers() = %d; want %d", pool.NumWorkers(), tt.wantWorkers)
			}
			if pool.bufferSize != tt.wantBuffer {
				t.Errorf("bufferSize = %d; want %d", pool.bufferSize, tt.wantBuffer)
			}
		})
	}
}
