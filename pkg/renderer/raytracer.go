package renderer

import (
	"fmt"
	"time"

	"github.com/YassinRamadan1/Software-RayTracer/pkg/core"
	"github.com/YassinRamadan1/Software-RayTracer/pkg/geometry"
	"github.com/YassinRamadan1/Software-RayTracer/pkg/log"
)

var logger = log.New("renderer")

// Config controls how a render is scheduled
type Config struct {
	NumWorkers int   // Parallel workers, 0 for one per CPU
	Seed       int64 // Base seed; row r samples from Seed + r
}

// Raytracer renders a world through a camera into an Image
type Raytracer struct {
	camera *Camera
	world  geometry.Hittable
	config Config
}

// NewRaytracer creates a new raytracer
func NewRaytracer(camera *Camera, world geometry.Hittable, config Config) *Raytracer {
	return &Raytracer{
		camera: camera,
		world:  world,
		config: config,
	}
}

// Camera returns the camera used for rendering
func (rt *Raytracer) Camera() *Camera {
	return rt.camera
}

// Render traces every pixel of the camera image into img. The result only
// depends on the seed, never on the number of workers.
func (rt *Raytracer) Render(img Image) RenderStats {
	width := rt.camera.ImageWidth()
	height := rt.camera.ImageHeight()
	start := time.Now()

	pool := NewWorkerPool(rt, img, height, rt.config.NumWorkers)
	logger.Infof("rendering %dx%d at %d spp with %d workers", width, height,
		rt.camera.Config().SamplesPerPixel, pool.GetNumWorkers())

	pool.Start()
	for j := 0; j < height; j++ {
		pool.SubmitTask(RowTask{
			Row:     j,
			Sampler: core.NewSeededSampler(rt.config.Seed + int64(j)),
		})
	}

	stats := RenderStats{
		Width:           width,
		Height:          height,
		TotalPixels:     width * height,
		SamplesPerPixel: rt.camera.Config().SamplesPerPixel,
		MaxDepth:        rt.camera.Config().MaxDepth,
		Workers:         pool.GetNumWorkers(),
	}

	step := height / 10
	if step < 1 {
		step = 1
	}
	for done := 1; done <= height; done++ {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		stats.TotalSamples += result.Samples
		if done%step == 0 || done == height {
			logger.Infof("rows done: %d/%d (%d%%)", done, height, done*100/height)
		}
	}
	pool.Stop()

	stats.Duration = time.Since(start)
	if bvh, ok := rt.world.(*geometry.BVHNode); ok {
		bvhStats := bvh.Stats()
		stats.BVH = &bvhStats
	}

	logger.Debugf("render finished in %s", stats.Duration)
	return stats
}

// RenderAndSave renders into img and writes it to path
func (rt *Raytracer) RenderAndSave(img Image, path string) (RenderStats, error) {
	stats := rt.Render(img)
	if err := img.Save(path); err != nil {
		return stats, fmt.Errorf("failed to save render: %w", err)
	}
	logger.Infof("image saved to %s", path)
	return stats, nil
}

// renderRow writes row j of the image and returns the number of camera rays traced
func (rt *Raytracer) renderRow(j int, img Image, sampler core.Sampler) int {
	width := rt.camera.ImageWidth()
	for i := 0; i < width; i++ {
		img.SetPixel(i, j, ToRGBA(rt.camera.PixelColor(i, j, rt.world, sampler)))
	}

	samples := rt.camera.Config().SamplesPerPixel
	if samples < 1 {
		samples = 1
	}
	return width * samples
}
