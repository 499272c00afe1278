package main

import (
	"os"

	"github.com/n-oden/gotracer/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "gotracer"
	app.Usage = "render scenes using CPU path tracing"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render the default scene to a PNG file",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 400,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 300,
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: 100,
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "seed",
					Value: 1,
					Usage: "base seed for the per-row random number streams",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: 0,
					Usage: "number of CPU workers to render with (0 = number of CPUs)",
				},
				cli.Float64Flag{
					Name:  "fov",
					Usage: "vertical field of view in degrees (0 = scene default)",
				},
				cli.Float64Flag{
					Name:  "aperture",
					Usage: "camera aperture diameter for depth of field (0 = scene default)",
				},
				cli.Float64Flag{
					Name:  "focus-dist",
					Usage: "camera focus distance (0 = scene default)",
				},
				cli.StringFlag{
					Name:  "debug",
					Usage: "render a BVH visualization instead of the full integrator: depth|normals",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "./images/out.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:   "info",
			Usage:  "print BVH statistics for the default scene",
			Action: cmd.Info,
		},
	}

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}
