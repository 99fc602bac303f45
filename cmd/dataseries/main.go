package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

const (
	cmdUnion     = "union"
	cmdMerge     = "merge"
	cmdIntersect = "intersect"
	cmdResolve   = "resolve"
	cmdExplain   = "explain"
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "dataseries",
		Usage: "Combine step-function time series read from JSON files",
		Commands: []*cli.Command{
			{
				Name:   cmdUnion,
				Usage:  "Combine two series, reporting the values of both sides at every change",
				Flags:  pairFlags(true),
				Action: run,
			},
			{
				Name:   cmdMerge,
				Usage:  "Remove data points repeating the value already in effect",
				Flags:  inputFlags(),
				Action: run,
			},
			{
				Name:   cmdIntersect,
				Usage:  "Report the positions where both series are in effect",
				Flags:  pairFlags(false),
				Action: run,
			},
			{
				Name:   cmdResolve,
				Usage:  "Combine two replicas of a versioned series, the highest version wins",
				Flags:  pairFlags(true),
				Action: run,
			},
			{
				Name:   cmdExplain,
				Usage:  "Print the steps taken to compute the union of two series",
				Flags:  pairFlags(false),
				Action: run,
			},
		},
	}
}

func main() {
	app := newApp()
	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
