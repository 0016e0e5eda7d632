package renderer

import (
	"runtime"
	"sync"

	"github.com/YassinRamadan1/Software-RayTracer/pkg/core"
)

// RowTask represents one image row for the worker pool
type RowTask struct {
	Row     int
	Sampler core.Sampler // Owned by this task only
}

// RowResult reports a finished row
type RowResult struct {
	Row     int
	Samples int
}

// WorkerPool renders rows in parallel
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker renders the rows it receives into the shared image
type Worker struct {
	ID          int
	raytracer   *Raytracer
	img         Image
	taskQueue   chan RowTask
	resultQueue chan RowResult
}

// NewWorkerPool creates a pool sized for height rows. numWorkers <= 0 uses
// one worker per CPU.
func NewWorkerPool(rt *Raytracer, img Image, height, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan RowTask, height),
		resultQueue: make(chan RowResult, height),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			raytracer:   rt,
			img:         img,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop waits for queued rows to finish and shuts the workers down
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask queues a row
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed row
func (wp *WorkerPool) GetResult() (RowResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		samples := w.raytracer.renderRow(task.Row, w.img, task.Sampler)
		w.resultQueue <- RowResult{Row: task.Row, Samples: samples}
	}
}
