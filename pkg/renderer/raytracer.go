package renderer

import (
	"context"
	"fmt"
	"image"
	"runtime"
	"time"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/integrator"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

// RenderConfig contains parallelism and seeding settings for a render
type RenderConfig struct {
	NumWorkers int   // Number of parallel workers (0 = use CPU count)
	Seed       int64 // Base seed; scanline j samples from the stream Seed+j
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		NumWorkers: 0,  // Auto-detect CPU count
		Seed:       42, // Deterministic output by default
	}
}

// Raytracer renders a scene with per-pixel multi-sampling
type Raytracer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	config     RenderConfig
	logger     core.Logger
}

// NewRaytracer creates a raytracer for s. The scene must not be modified while rendering.
func NewRaytracer(s *scene.Scene, config RenderConfig, logger core.Logger) (*Raytracer, error) {
	sampling := s.SamplingConfig
	if sampling.Width <= 0 || sampling.Height <= 0 {
		return nil, fmt.Errorf("image size must be positive, got %dx%d", sampling.Width, sampling.Height)
	}
	if sampling.SamplesPerPixel <= 0 {
		return nil, fmt.Errorf("samples per pixel must be positive, got %d", sampling.SamplesPerPixel)
	}
	if sampling.MaxDepth < 0 {
		return nil, fmt.Errorf("max depth must not be negative, got %d", sampling.MaxDepth)
	}
	if config.NumWorkers <= 0 {
		config.NumWorkers = runtime.NumCPU()
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	return &Raytracer{
		scene:      s,
		integrator: integrator.NewPathTracingIntegrator(s.Background),
		config:     config,
		logger:     logger,
	}, nil
}

// RenderPixel returns the averaged linear color of pixel (i, j), where j counts
// scanlines from the bottom of the image.
func (rt *Raytracer) RenderPixel(i, j int, sampler core.Sampler) core.Vec3 {
	var stats PixelStats
	rt.samplePixel(i, j, sampler, &stats)
	return stats.GetColor()
}

// samplePixel traces SamplesPerPixel jittered camera rays through pixel (i, j)
func (rt *Raytracer) samplePixel(i, j int, sampler core.Sampler, stats *PixelStats) {
	sampling := rt.scene.SamplingConfig
	// Pixel centers span [0, 1] exactly; a single column or row maps to 0
	uScale := float64(max(sampling.Width-1, 1))
	vScale := float64(max(sampling.Height-1, 1))

	for s := 0; s < sampling.SamplesPerPixel; s++ {
		u := (float64(i) + sampler.Get1D()) / uScale
		v := (float64(j) + sampler.Get1D()) / vScale

		ray := rt.scene.Camera.GetRay(u, v)
		stats.AddSample(rt.integrator.RayColor(ray, rt.scene.World, sampler, sampling.MaxDepth))
	}
}

// RenderScanline samples every pixel of scanline j into pixels and returns the number of samples taken
func (rt *Raytracer) RenderScanline(j int, pixels []PixelStats, sampler core.Sampler) int {
	for i := range pixels {
		rt.samplePixel(i, j, sampler, &pixels[i])
	}
	return len(pixels) * rt.scene.SamplingConfig.SamplesPerPixel
}

// RenderPass renders the full image using parallel scanline workers.
// Row 0 of the returned image is the top scanline.
func (rt *Raytracer) RenderPass(ctx context.Context) (*image.RGBA, RenderStats, error) {
	startTime := time.Now()
	width, height := rt.scene.SamplingConfig.Width, rt.scene.SamplingConfig.Height

	// Shared pixel statistics in image coordinates; each scanline task owns one row
	pixelStats := make([][]PixelStats, height)
	for y := range pixelStats {
		pixelStats[y] = make([]PixelStats, width)
	}

	workerPool := NewWorkerPool(rt, height, rt.config.NumWorkers)
	workerPool.Start()

	rt.logger.Printf("Rendering %dx%d at %d samples per pixel, depth %d (using %d workers)...\n",
		width, height, rt.scene.SamplingConfig.SamplesPerPixel, rt.scene.SamplingConfig.MaxDepth,
		workerPool.GetNumWorkers())

	for j := height - 1; j >= 0; j-- {
		workerPool.SubmitTask(ScanlineTask{
			Ctx:      ctx,
			Scanline: j,
			Pixels:   pixelStats[height-1-j],
		})
	}

	progressStep := max(height/10, 1)
	totalSamples := 0
	var renderErr error
	for remaining := height - 1; remaining >= 0; remaining-- {
		result, ok := workerPool.GetResult()
		if !ok {
			renderErr = fmt.Errorf("worker pool closed unexpectedly")
			break
		}
		if result.Error != nil {
			if renderErr == nil {
				renderErr = result.Error
			}
			continue
		}
		totalSamples += result.Samples
		if renderErr == nil && remaining%progressStep == 0 {
			rt.logger.Printf("Scanlines remaining: %d\n", remaining)
		}
	}
	workerPool.Stop()

	if renderErr != nil {
		rt.logger.Printf("Render aborted: %v\n", renderErr)
		return nil, RenderStats{}, renderErr
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	varianceSum := 0.0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, vec3ToColor(pixelStats[y][x].GetColor()))
			varianceSum += pixelStats[y][x].Variance()
		}
	}

	stats := RenderStats{
		TotalPixels:      width * height,
		TotalSamples:     totalSamples,
		SamplesPerPixel:  rt.scene.SamplingConfig.SamplesPerPixel,
		MaxDepth:         rt.scene.SamplingConfig.MaxDepth,
		NumWorkers:       workerPool.GetNumWorkers(),
		Duration:         time.Since(startTime),
		AverageLuminance: CalculateAverageLuminance(img),
		AverageVariance:  varianceSum / float64(width*height),
	}
	rt.logger.Printf("Done in %v (%d samples)\n", stats.Duration, stats.TotalSamples)

	return img, stats, nil
}
