/*
Command bintree builds persistent binary search trees from integer keys and
prints them, for exploring the behaviour of the bintree package.

	bintree build --keys 5,7,3,4,2,8 --remove 5
	bintree levels --keys 5,7,3,4,2,8
*/
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/carlmjohnson/versioninfo"
	"github.com/fatih/color"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	return newApp(os.Stdout).Run(args)
}

func newApp(w io.Writer) *cli.App {
	app := &cli.App{
		Name:    "bintree",
		Usage:   "build and inspect persistent binary search trees",
		Version: versioninfo.Short(),
		Writer:  w,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "trace",
				Usage:   "trace level: error, info or debug",
				Value:   "error",
				EnvVars: []string{"BINTREE_TRACE"},
			},
			&cli.StringFlag{
				Name:    "color",
				Usage:   "colorize output: auto, always or never",
				Value:   "auto",
				EnvVars: []string{"BINTREE_COLOR"},
			},
		},
		Before: setup,
	}
	app.Commands = []*cli.Command{
		cmdBuild,
		cmdLevels,
	}
	return app
}

func setup(cctx *cli.Context) error {
	level, err := traceLevel(cctx.String("trace"))
	if err != nil {
		return err
	}
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(level)
	switch cctx.String("color") {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	case "auto":
		color.NoColor = !isTerminal(cctx.App.Writer)
	default:
		return fmt.Errorf("unknown color mode %q", cctx.String("color"))
	}
	return nil
}

func traceLevel(s string) (tracing.TraceLevel, error) {
	switch strings.ToLower(s) {
	case "error":
		return tracing.LevelError, nil
	case "info":
		return tracing.LevelInfo, nil
	case "debug":
		return tracing.LevelDebug, nil
	}
	return tracing.LevelError, fmt.Errorf("unknown trace level %q", s)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
