package traverse

import (
	"runtime"
	"sync"
)

// WorkerPool runs section traversals on a fixed set of goroutines. Sections
// are independent read-only snapshots, so tasks need no coordination beyond
// completion tracking.
type WorkerPool struct {
	taskQueue chan func()
	wg        sync.WaitGroup
	once      sync.Once
}

// NewWorkerPool creates a pool with the given number of workers. A count of
// zero or less falls back to GOMAXPROCS.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	pool := &WorkerPool{
		taskQueue: make(chan func(), workers*2),
	}
	for i := 0; i < workers; i++ {
		pool.wg.Add(1)
		go pool.worker()
	}
	return pool
}

// worker processes tasks from the queue
func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for task := range wp.taskQueue {
		task()
	}
}

// Submit adds a task to the pool
func (wp *WorkerPool) Submit(task func()) {
	wp.taskQueue <- task
}

// Wait closes the queue and blocks until all submitted tasks complete. The
// pool cannot be reused afterwards.
func (wp *WorkerPool) Wait() {
	wp.once.Do(func() {
		close(wp.taskQueue)
	})
	wp.wg.Wait()
}
