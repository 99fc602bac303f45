package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/urfave/cli/v2"
)

const stdout = "-"

// Config holds the configuration of a dataseries command. Defaults are read
// from the environment and overridden by command line flags.
type Config struct {
	Verbose bool   `env:"DATASERIES_VERBOSE" envDefault:"false"` // Development logging
	Strict  bool   `env:"DATASERIES_STRICT"  envDefault:"false"` // Reject unordered input
	Merge   bool   `env:"DATASERIES_MERGE"   envDefault:"false"` // Merge the output of union and resolve
	Output  string `env:"DATASERIES_OUTPUT"  envDefault:"-"`     // Output file

	Command string
	Input   string
	Left    string
	Right   string
}

// buildConfig builds the configuration of the command being run by c.
func buildConfig(c *cli.Context) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse environment: %w", err)
	}

	if c.IsSet("verbose") {
		cfg.Verbose = c.Bool("verbose")
	}
	if c.IsSet("strict") {
		cfg.Strict = c.Bool("strict")
	}
	if c.IsSet("merge") {
		cfg.Merge = c.Bool("merge")
	}
	if c.IsSet("output") {
		cfg.Output = c.String("output")
	}

	cfg.Command = c.Command.Name
	cfg.Input = c.String("input")
	cfg.Left = c.String("left")
	cfg.Right = c.String("right")

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (cfg Config) validate() error {
	switch cfg.Command {
	case cmdMerge:
		if cfg.Input == "" {
			return fmt.Errorf("%s: an input file is required", cfg.Command)
		}
	case cmdUnion, cmdIntersect, cmdResolve, cmdExplain:
		if cfg.Left == "" || cfg.Right == "" {
			return fmt.Errorf("%s: left and right input files are required", cfg.Command)
		}
	default:
		return fmt.Errorf("unknown command %q", cfg.Command)
	}
	if cfg.Output == "" {
		return fmt.Errorf("%s: output must be a file name or %s", cfg.Command, stdout)
	}
	return nil
}
