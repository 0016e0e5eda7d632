package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/YassinRamadan1/Software-RayTracer/cmd"
)

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "raytracer"
	app.Usage = "render scenes using path tracing"
	app.Version = "0.1.0"
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
			Usage: "render a preset scene to an image",
			Description: `
Build one of the preset scenes, trace it with the CPU path tracer and write the
result to an image file. The output format follows the file extension
(.png, .jpg, .bmp or .tiff).

Settings are read from an optional YAML config file; flags override it.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "config, c",
					Usage: "YAML render configuration",
				},
				cli.StringFlag{
					Name:  "scene, s",
					Value: "cornell-box",
					Usage: "scene preset, see list-scenes",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "render.png",
					Usage: "image filename for the rendered frame",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "image width, 0 keeps the scene default",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel, 0 keeps the scene default",
				},
				cli.IntFlag{
					Name:  "depth",
					Usage: "maximum bounces per path, 0 keeps the scene default",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "render workers, 0 uses one per CPU",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 1,
					Usage: "random seed for sampling and scene generation",
				},
				cli.StringFlag{
					Name:  "earth-texture",
					Usage: "image used by the earth scene",
				},
				cli.StringFlag{
					Name:  "noise",
					Value: "perlin",
					Usage: "marble noise for the noise scenes (perlin or value)",
				},
				cli.StringFlag{
					Name:  "save-config",
					Usage: "write the effective configuration to this file",
				},
			},
			Action: cmd.RenderScene,
		},
		{
			Name:   "list-scenes",
			Usage:  "list available scene presets",
			Action: cmd.ListScenes,
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
