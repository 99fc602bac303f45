package main

import "github.com/urfave/cli/v2"

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "Enable verbose logging",
		},
		&cli.BoolFlag{
			Name:  "strict",
			Usage: "Reject input files whose positions are not strictly increasing instead of sorting them",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file, - for standard output",
		},
	}
}

func inputFlags() []cli.Flag {
	return append(commonFlags(),
		&cli.StringFlag{
			Name:     "input",
			Aliases:  []string{"i"},
			Usage:    "JSON file holding the series",
			Required: true,
		},
	)
}

func pairFlags(merge bool) []cli.Flag {
	flags := append(commonFlags(),
		&cli.StringFlag{
			Name:     "left",
			Aliases:  []string{"l"},
			Usage:    "JSON file holding the left series",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "right",
			Aliases:  []string{"r"},
			Usage:    "JSON file holding the right series",
			Required: true,
		},
	)
	if merge {
		flags = append(flags, &cli.BoolFlag{
			Name:  "merge",
			Usage: "Remove output data points repeating the value already in effect",
		})
	}
	return flags
}
