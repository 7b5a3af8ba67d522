package renderer

import (
	"context"
	"runtime"
	"sync"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// ScanlineTask represents one scanline rendering task for the worker pool
type ScanlineTask struct {
	Ctx      context.Context
	Scanline int          // Scanline index counted from the bottom of the image
	Pixels   []PixelStats // Row of the shared pixel stats array to write to
}

// ScanlineResult contains the result from rendering a scanline
type ScanlineResult struct {
	Scanline int
	Samples  int
	Error    error
}

// WorkerPool manages parallel scanline rendering
type WorkerPool struct {
	taskQueue   chan ScanlineTask
	resultQueue chan ScanlineResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual scanline rendering tasks
type Worker struct {
	ID          int
	raytracer   *Raytracer
	taskQueue   chan ScanlineTask
	resultQueue chan ScanlineResult
}

// NewWorkerPool creates a worker pool sized for maxTasks outstanding scanlines
func NewWorkerPool(raytracer *Raytracer, maxTasks, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan ScanlineTask, maxTasks),   // Buffer for every scanline
		resultQueue: make(chan ScanlineResult, maxTasks), // Buffer for every result
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			raytracer:   raytracer,
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

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a scanline task to the worker pool
func (wp *WorkerPool) SubmitTask(task ScanlineTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed scanline result
func (wp *WorkerPool) GetResult() (ScanlineResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		if err := task.Ctx.Err(); err != nil {
			w.resultQueue <- ScanlineResult{Scanline: task.Scanline, Error: err}
			continue
		}

		// Each scanline owns its random stream, so output does not depend on scheduling
		sampler := core.NewSeededSampler(w.raytracer.config.Seed + int64(task.Scanline))
		samples := w.raytracer.RenderScanline(task.Scanline, task.Pixels, sampler)

		w.resultQueue <- ScanlineResult{Scanline: task.Scanline, Samples: samples}
	}
}
