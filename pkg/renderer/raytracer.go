package renderer

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/df07/go-pathtrace-shading/pkg/core"
	"github.com/df07/go-pathtrace-shading/pkg/integrator"
	"github.com/df07/go-pathtrace-shading/pkg/log"
	"github.com/df07/go-pathtrace-shading/pkg/scene"
)

var (
	ErrSceneNotDefined = errors.New("renderer: scene not defined")
	ErrInvalidFrame    = errors.New("renderer: invalid frame")
	ErrInterrupted     = errors.New("renderer: render interrupted")
)

// rowSeedStride spreads row seeds so neighbouring seeds do not share streams
const rowSeedStride = 1_000_003

var logger = log.New("renderer")

// Raytracer renders a scene to an image
type Raytracer struct {
	scene      *scene.Scene
	config     scene.SamplingConfig
	integrator integrator.Integrator
	workers    int
	runID      string
}

// NewRaytracer creates a raytracer using the scene's sampling config
func NewRaytracer(sc *scene.Scene) *Raytracer {
	rt := &Raytracer{scene: sc}
	if sc != nil {
		rt.config = sc.SamplingConfig
	}
	rt.integrator = integrator.NewPathTracer(rt.config)
	return rt
}

// SetSamplingConfig replaces the sampling config
func (rt *Raytracer) SetSamplingConfig(config scene.SamplingConfig) {
	rt.config = config
	rt.integrator = integrator.NewPathTracer(config)
}

// SetWorkers sets the number of worker goroutines; 0 uses one per CPU
func (rt *Raytracer) SetWorkers(n int) {
	rt.workers = n
}

// SetRunID tags log lines with a render identifier
func (rt *Raytracer) SetRunID(id string) {
	rt.runID = id
}

// Render traces every pixel and returns the gamma-corrected image. Rows are rendered in
// parallel; each row draws from its own generator seeded from (Seed, row), so the result
// does not depend on scheduling.
func (rt *Raytracer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	if rt.scene == nil {
		return nil, RenderStats{}, ErrSceneNotDefined
	}
	cfg := rt.config
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.SamplesPerPixel <= 0 || cfg.MaxDepth <= 0 {
		return nil, RenderStats{}, fmt.Errorf("%w: %dx%d at %d spp, depth %d",
			ErrInvalidFrame, cfg.Width, cfg.Height, cfg.SamplesPerPixel, cfg.MaxDepth)
	}

	start := time.Now()
	camera := NewCamera(rt.scene.CameraConfig, float64(cfg.Width)/float64(cfg.Height))
	pixels := make([]PixelStats, cfg.Width*cfg.Height)

	pool := NewWorkerPool(cfg.Height, rt.workers, func(row int) RowResult {
		return rt.renderRow(camera, row, pixels[row*cfg.Width:(row+1)*cfg.Width])
	})
	logger.Infof("[%s] rendering %q (%d primitives) at %dx%d, %d spp, depth %d on %d workers",
		rt.runID, rt.scene.Name, rt.scene.GetPrimitiveCount(), cfg.Width, cfg.Height,
		cfg.SamplesPerPixel, cfg.MaxDepth, pool.GetNumWorkers())

	pool.Start(ctx)
	for row := 0; row < cfg.Height; row++ {
		pool.SubmitTask(RowTask{Row: row})
	}
	pool.Stop()

	stats := RenderStats{
		TotalPixels: cfg.Width * cfg.Height,
		Workers:     pool.GetNumWorkers(),
	}
	rows := 0
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		rows++
		stats.TotalSamples += result.Samples
		stats.DroppedSamples += result.Dropped
	}
	stats.RenderTime = time.Since(start)

	if err := ctx.Err(); err != nil && rows < cfg.Height {
		return nil, stats, fmt.Errorf("%w after %d of %d rows: %v", ErrInterrupted, rows, cfg.Height, err)
	}

	stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	if stats.DroppedSamples > 0 {
		logger.Warningf("[%s] dropped %d non-finite samples", rt.runID, stats.DroppedSamples)
	}
	logger.Infof("[%s] finished in %v (%.1f samples/pixel)", rt.runID, stats.RenderTime, stats.AverageSamples)

	return rt.toImage(pixels), stats, nil
}

// renderRow accumulates SamplesPerPixel paths into each pixel of one row
func (rt *Raytracer) renderRow(camera *Camera, row int, pixels []PixelStats) RowResult {
	cfg := rt.config
	random := rand.New(rand.NewSource(cfg.Seed*rowSeedStride + int64(row)))
	sampler := core.NewRandomSampler(random)

	result := RowResult{Row: row}
	for x := range pixels {
		for s := 0; s < cfg.SamplesPerPixel; s++ {
			jitter := sampler.Get2D()
			u := (float64(x) + jitter.X) / float64(cfg.Width)
			v := 1 - (float64(row)+jitter.Y)/float64(cfg.Height)

			seg := integrator.NewPathSegment(camera.GetRay(u, v, sampler), cfg.MaxDepth, row*cfg.Width+x)
			radiance := rt.integrator.Trace(&seg, rt.scene, sampler)
			if !isFinite(radiance) {
				result.Dropped++
				radiance = core.Vec3{}
			}

			pixels[x].AddSample(radiance)
			result.Samples++
		}
	}

	logger.Debugf("[%s] row %d done", rt.runID, row)
	return result
}

// toImage converts accumulated pixels to gamma-2 corrected 8-bit color
func (rt *Raytracer) toImage(pixels []PixelStats) *image.RGBA {
	width, height := rt.config.Width, rt.config.Height
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, vec3ToColor(pixels[y*width+x].GetColor()))
		}
	}
	return img
}

func vec3ToColor(c core.Vec3) color.RGBA {
	c = c.Clamp(0, 1).GammaCorrect(2.0)
	return color.RGBA{
		R: uint8(255 * c.X),
		G: uint8(255 * c.Y),
		B: uint8(255 * c.Z),
		A: 255,
	}
}

func isFinite(v core.Vec3) bool {
	for _, c := range []float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
