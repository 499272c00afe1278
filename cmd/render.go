package cmd

import (
	"fmt"
	"os"

	"github.com/n-oden/gotracer/log"
	"github.com/n-oden/gotracer/renderer"
	"github.com/n-oden/gotracer/scene"
	"github.com/urfave/cli"
)

// RenderFrame renders the project's default demo scene to a PNG file
// according to the render command's flags.
func RenderFrame(ctx *cli.Context) error {
	debug, err := parseDebugMode(ctx.String("debug"))
	if err != nil {
		return err
	}

	// A debug visualization run is a tree-inspection tool, not a render to
	// ship: always surface the BVH Debugf traffic for it, regardless of
	// whether the caller also passed -v/-vv.
	setupLogging(ctx, debug != renderer.DebugNone)

	lookFrom, lookAt, defaultVfov, defaultAperture, defaultFocusDist := scene.DefaultCamera()

	opts := renderer.Options{
		FrameW:          uint32(ctx.Int("width")),
		FrameH:          uint32(ctx.Int("height")),
		SamplesPerPixel: uint32(ctx.Int("spp")),
		Workers:         uint32(ctx.Int("workers")),
		Seed:            int64(ctx.Int("seed")),
		LookFrom:        [3]float32(lookFrom),
		LookAt:          [3]float32(lookAt),
		VFov:            firstNonZero(float32(ctx.Float64("fov")), defaultVfov),
		Aperture:        firstNonZero(float32(ctx.Float64("aperture")), defaultAperture),
		FocusDist:       firstNonZero(float32(ctx.Float64("focus-dist")), defaultFocusDist),
		Debug:           debug,
	}

	sc := scene.Default(logger)

	r, err := renderer.New(opts, logger)
	if err != nil {
		return err
	}

	logger.Noticef("rendering %dx%d frame at %d spp", opts.FrameW, opts.FrameH, opts.SamplesPerPixel)
	img, err := r.Render(sc)
	if err != nil {
		return err
	}

	out := ctx.String("out")
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := renderer.Encode(f, img); err != nil {
		return err
	}
	logger.Noticef("wrote frame to %s", out)

	displayFrameStats(r.Stats())

	return nil
}

func parseDebugMode(s string) (renderer.DebugMode, error) {
	switch s {
	case "", "none":
		return renderer.DebugNone, nil
	case "depth":
		return renderer.DebugDepth, nil
	case "normals":
		return renderer.DebugNormals, nil
	default:
		return renderer.DebugNone, fmt.Errorf("unknown debug mode %q (want depth|normals)", s)
	}
}

func firstNonZero(v, fallback float32) float32 {
	if v == 0 {
		return fallback
	}
	return v
}

func displayFrameStats(stats renderer.FrameStats) {
	rows := make([][]string, len(stats.Rows))
	for i, row := range stats.Rows {
		rows[i] = []string{
			fmt.Sprintf("[%d,%d)", row.Y0, row.Y1),
			fmt.Sprintf("%s", row.RenderTime),
		}
	}
	footer := []string{"TOTAL", fmt.Sprintf("%s", stats.RenderTime)}
	log.LogTable(logger, "frame statistics", []string{"Row range", "Render time"}, rows, footer)
}
