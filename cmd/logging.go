package cmd

import (
	"github.com/n-oden/gotracer/log"
	"github.com/urfave/cli"
)

var logger = log.New("gotracer")

// setupLogging derives the logger's level from the app's global -v/-vv
// flags, then raises it to log.Debug regardless of those flags when
// forceDebug is set. render passes forceDebug for any --debug visualization
// run, since those exist to inspect BVH traversal and should show that
// logging without the caller having to also remember -vv; info always
// passes false.
func setupLogging(ctx *cli.Context, forceDebug bool) {
	level := log.Notice
	switch {
	case ctx.GlobalBool("vv"):
		level = log.Debug
	case ctx.GlobalBool("v"):
		level = log.Info
	}
	if forceDebug {
		level = log.Debug
	}
	log.SetLevel(level)
}
