package renderer

import (
	"context"
	"io"
	"runtime"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

func TestWorkerPool_RendersEveryScanline(t *testing.T) {
	s := scene.NewDefaultScene()
	s.ApplySamplingOverrides(core.SamplingConfig{Width: 6, Height: 5, SamplesPerPixel: 2, MaxDepth: 3})
	rt, err := NewRaytracer(s, RenderConfig{NumWorkers: 3, Seed: 7}, NewWriterLogger(io.Discard))
	if err != nil {
		t.Fatalf("NewRaytracer failed: %v", err)
	}

	rows := make([][]PixelStats, 5)
	for y := range rows {
		rows[y] = make([]PixelStats, 6)
	}

	pool := NewWorkerPool(rt, len(rows), 3)
	pool.Start()
	for j := range rows {
		pool.SubmitTask(ScanlineTask{Ctx: context.Background(), Scanline: j, Pixels: rows[j]})
	}

	seen := make(map[int]bool)
	for range rows {
		result, ok := pool.GetResult()
		if !ok {
			t.Fatal("Result queue closed early")
		}
		if result.Error != nil {
			t.Fatalf("Scanline %d failed: %v", result.Scanline, result.Error)
		}
		if result.Samples != 12 {
			t.Errorf("Scanline %d: expected 12 samples, got %d", result.Scanline, result.Samples)
		}
		seen[result.Scanline] = true
	}
	pool.Stop()

	if len(seen) != len(rows) {
		t.Errorf("Expected %d distinct scanlines, got %d", len(rows), len(seen))
	}
	for y, row := range rows {
		for x := range row {
			if row[x].SampleCount != 2 {
				t.Errorf("Pixel (%d, %d): expected 2 samples, got %d", x, y, row[x].SampleCount)
			}
		}
	}
	if _, ok := pool.GetResult(); ok {
		t.Error("Result queue should be closed after Stop")
	}
}

func TestWorkerPool_DefaultWorkerCount(t *testing.T) {
	pool := NewWorkerPool(nil, 1, 0)
	if pool.GetNumWorkers() != runtime.NumCPU() {
		t.Errorf("Expected %d workers, got %d", runtime.NumCPU(), pool.GetNumWorkers())
	}
}
