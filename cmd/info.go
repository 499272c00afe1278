package cmd

import (
	"fmt"

	"github.com/n-oden/gotracer/log"
	"github.com/n-oden/gotracer/scene"
	"github.com/urfave/cli"
)

// Info builds the default scene's BVH and prints its shape, useful for
// sanity-checking the acceleration structure without rendering a frame.
func Info(ctx *cli.Context) error {
	setupLogging(ctx, false)

	sc := scene.Default(logger)
	stats := sc.Stats(logger)

	rows := [][]string{
		{"Primitives", fmt.Sprintf("%d", stats.TotalItems)},
		{"Nodes", fmt.Sprintf("%d", stats.Nodes)},
		{"Leafs", fmt.Sprintf("%d", stats.Leafs)},
		{"Max depth", fmt.Sprintf("%d", stats.MaxDepth)},
	}
	log.LogTable(logger, "default scene BVH", []string{"Metric", "Value"}, rows, nil)

	return nil
}
