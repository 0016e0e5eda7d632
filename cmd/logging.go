package cmd

import (
	"github.com/urfave/cli"

	"github.com/YassinRamadan1/Software-RayTracer/pkg/log"
)

var logger = log.New("raytracer")

// setupLogging applies the configured level; -v and -vv take precedence.
func setupLogging(ctx *cli.Context, configured string) {
	if level, ok := log.ParseLevel(configured); ok {
		log.SetLevel(level)
	}

	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
