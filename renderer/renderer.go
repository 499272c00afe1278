// Package renderer drives a full-frame render: it owns the pixel buffer,
// fans rows out across the tracer package's CPU worker pool, and encodes
// the result to PNG. It plays the role the teacher's renderer package
// plays for its OpenCL/OpenGL tracers, but against a single in-process CPU
// integrator instead of a pool of GPU devices.
package renderer

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/n-oden/gotracer/camera"
	"github.com/n-oden/gotracer/integrator"
	"github.com/n-oden/gotracer/log"
	"github.com/n-oden/gotracer/scene"
	"github.com/n-oden/gotracer/tracer"
	"github.com/n-oden/gotracer/types"
)

// Renderer renders a single frame of a scene and reports statistics about
// the completed render.
type Renderer interface {
	// Render produces a frame image for sc using the renderer's Options.
	Render(sc *scene.Scene) (*image.RGBA, error)

	// Stats returns the statistics of the last completed render.
	Stats() FrameStats
}

type cpuRenderer struct {
	opts   Options
	logger log.Logger

	stats FrameStats
}

// New returns a CPU renderer configured by opts.
func New(opts Options, logger log.Logger) (Renderer, error) {
	if opts.FrameW == 0 || opts.FrameH == 0 {
		return nil, ErrInvalidFrameSize
	}
	if opts.SamplesPerPixel == 0 {
		return nil, ErrInvalidSampleCount
	}
	if opts.Workers == 0 {
		opts.Workers = uint32(runtime.NumCPU())
	}
	return &cpuRenderer{opts: opts, logger: logger}, nil
}

func (r *cpuRenderer) Render(sc *scene.Scene) (*image.RGBA, error) {
	if sc == nil {
		return nil, ErrSceneNotDefined
	}

	width, height := int(r.opts.FrameW), int(r.opts.FrameH)
	samples := int(r.opts.SamplesPerPixel)
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	cam := camera.New(
		toVec3(r.opts.LookFrom), toVec3(r.opts.LookAt),
		r.opts.VFov, float32(width)/float32(height),
		r.opts.Aperture, r.opts.FocusDist,
	)

	jobs := tracer.SplitRows(height, int(r.opts.Workers))
	rowStats := make([]RowStat, len(jobs))
	var mu sync.Mutex

	frameStart := time.Now()
	tracer.Run(jobs, int(r.opts.Workers), func(job tracer.RowJob) {
		jobStart := time.Now()
		for y := job.Y0; y < job.Y1; y++ {
			// Screen row 0 is the top of the image; the camera's v axis
			// runs bottom-to-top, per spec.md section 4.9's top-down pixel
			// convention.
			v := height - 1 - y

			// Seeding by output row (not by job or worker) makes the frame
			// independent of how many workers render it: a fixed seed
			// reproduces a fixed image regardless of job partitioning.
			rng := rand.New(rand.NewSource(r.opts.Seed + int64(y)))

			for x := 0; x < width; x++ {
				var c types.Vec3
				switch r.opts.Debug {
				case DebugNormals:
					pr := cam.Ray((float32(x)+0.5)/float32(width), (float32(v)+0.5)/float32(height), rng)
					c = integrator.DebugNormals(pr, sc)
				case DebugDepth:
					pr := cam.Ray((float32(x)+0.5)/float32(width), (float32(v)+0.5)/float32(height), rng)
					c = integrator.DebugDepth(pr, sc, 64)
				default:
					c = integrator.Pixel(x, v, width, height, samples, cam, sc, rng)
				}
				rgb := integrator.ToRGB8(c)
				img.SetRGBA(x, y, color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255})
			}
		}

		mu.Lock()
		for i, j := range jobs {
			if j.Y0 == job.Y0 {
				rowStats[i] = RowStat{Y0: job.Y0, Y1: job.Y1, RenderTime: time.Since(jobStart)}
				break
			}
		}
		mu.Unlock()
	})

	r.stats = FrameStats{Rows: rowStats, RenderTime: time.Since(frameStart)}
	r.logger.Noticef("rendered %dx%d frame at %d spp in %s using %d workers",
		width, height, samples, r.stats.RenderTime, r.opts.Workers)

	return img, nil
}

func (r *cpuRenderer) Stats() FrameStats {
	return r.stats
}

// Encode writes img to w as a PNG, the project's sole supported output
// format.
func Encode(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

func toVec3(v [3]float32) types.Vec3 {
	return types.Vec3{v[0], v[1], v[2]}
}
