package renderer

import (
	"context"
	"runtime"
	"sync"
)

// RowTask asks a worker to render one image row
type RowTask struct {
	Row int
}

// RowResult reports a finished row
type RowResult struct {
	Row     int
	Samples int
	Dropped int
}

// WorkerPool renders rows in parallel. Each row writes only its own slice of the
// shared pixel array, so workers never contend.
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	numWorkers  int
	render      func(row int) RowResult
	wg          sync.WaitGroup
}

// NewWorkerPool creates a pool for height rows. numWorkers <= 0 uses one per CPU.
func NewWorkerPool(height, numWorkers int, render func(row int) RowResult) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		taskQueue:   make(chan RowTask, height),
		resultQueue: make(chan RowResult, height),
		numWorkers:  numWorkers,
		render:      render,
	}
}

// Start begins all workers. Workers stop picking up rows once ctx is done.
func (wp *WorkerPool) Start(ctx context.Context) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run(ctx)
	}
}

// Stop closes the task queue and waits for in-flight rows
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask queues a row
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed row result
func (wp *WorkerPool) GetResult() (RowResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

func (wp *WorkerPool) run(ctx context.Context) {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		if ctx.Err() != nil {
			continue // drain without rendering
		}
		wp.resultQueue <- wp.render(task.Row)
	}
}
