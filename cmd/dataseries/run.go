package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/achille-roussel/dataseries-go"
	"github.com/achille-roussel/dataseries-go/internal/utils"
	"github.com/achille-roussel/dataseries-go/versioned"
)

// sides holds the values of both inputs of a union at one position.
type sides struct {
	Left, Right       string
	HasLeft, HasRight bool
}

func toSides(r dataseries.UnionResult[string, string]) sides {
	var s sides
	s.Left, s.HasLeft = r.Left()
	s.Right, s.HasRight = r.Right()
	return s
}

type unionRecord struct {
	Point int64           `json:"point"`
	Left  json.RawMessage `json:"left,omitempty"`
	Right json.RawMessage `json:"right,omitempty"`
}

type valueRecord struct {
	Point   int64           `json:"point"`
	Version int64           `json:"version,omitempty"`
	Data    json.RawMessage `json:"data"`
}

func run(c *cli.Context) error {
	cfg, err := buildConfig(c)
	if err != nil {
		return fmt.Errorf("failed to build config: %w", err)
	}

	sugar, err := utils.NewSugaredLogger(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer sugar.Desugar().Sync() //nolint:errcheck // best-effort flush; ignore sync errors

	sugar.Debugw("config",
		"command", cfg.Command,
		"input", cfg.Input,
		"left", cfg.Left,
		"right", cfg.Right,
		"output", cfg.Output,
		"strict", cfg.Strict,
		"merge", cfg.Merge,
	)

	w := c.App.Writer
	if cfg.Output != stdout {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	var n int
	switch cfg.Command {
	case cmdMerge:
		n, err = runMerge(cfg, sugar, w)
	case cmdUnion:
		n, err = runUnion(cfg, sugar, w)
	case cmdIntersect:
		n, err = runIntersect(cfg, sugar, w)
	case cmdResolve:
		n, err = runResolve(cfg, sugar, w)
	case cmdExplain:
		n, err = runExplain(cfg, sugar, w)
	}
	if err != nil {
		return err
	}

	sugar.Infow("done", "command", cfg.Command, "points", n)
	return nil
}

// loadPair reads the left and right input files concurrently.
func loadPair(cfg Config) (left, right []record, err error) {
	var g errgroup.Group
	g.Go(func() (err error) {
		left, err = readRecords(cfg.Left)
		return err
	})
	g.Go(func() (err error) {
		right, err = readRecords(cfg.Right)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

func loadValuePair(cfg Config, log *zap.SugaredLogger) (left, right dataseries.Series[int64, string], err error) {
	l, r, err := loadPair(cfg)
	if err != nil {
		return nil, nil, err
	}
	if left, err = buildSeries(cfg.Left, l, cfg.Strict, log, plainValue); err != nil {
		return nil, nil, err
	}
	if right, err = buildSeries(cfg.Right, r, cfg.Strict, log, plainValue); err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

func runMerge(cfg Config, log *zap.SugaredLogger, w io.Writer) (int, error) {
	records, err := readRecords(cfg.Input)
	if err != nil {
		return 0, err
	}
	s, err := buildSeries(cfg.Input, records, cfg.Strict, log, plainValue)
	if err != nil {
		return 0, err
	}

	enc := json.NewEncoder(w)
	n := 0
	for p, v := range dataseries.Merge(s).All() {
		if err := enc.Encode(valueRecord{Point: p, Data: json.RawMessage(v)}); err != nil {
			return n, fmt.Errorf("failed to write output: %w", err)
		}
		n++
	}
	return n, nil
}

func runUnion(cfg Config, log *zap.SugaredLogger, w io.Writer) (int, error) {
	left, right, err := loadValuePair(cfg, log)
	if err != nil {
		return 0, err
	}

	union := dataseries.Union(left, right, toSides)
	if cfg.Merge {
		union = dataseries.Merge(union)
	}

	enc := json.NewEncoder(w)
	n := 0
	for p, s := range union.All() {
		r := unionRecord{Point: p}
		if s.HasLeft {
			r.Left = json.RawMessage(s.Left)
		}
		if s.HasRight {
			r.Right = json.RawMessage(s.Right)
		}
		if err := enc.Encode(r); err != nil {
			return n, fmt.Errorf("failed to write output: %w", err)
		}
		n++
	}
	return n, nil
}

func runIntersect(cfg Config, log *zap.SugaredLogger, w io.Writer) (int, error) {
	left, right, err := loadValuePair(cfg, log)
	if err != nil {
		return 0, err
	}

	enc := json.NewEncoder(w)
	n := 0
	for p, v := range dataseries.Intersect(left, right).All() {
		r := unionRecord{Point: p, Left: json.RawMessage(v.Left), Right: json.RawMessage(v.Right)}
		if err := enc.Encode(r); err != nil {
			return n, fmt.Errorf("failed to write output: %w", err)
		}
		n++
	}
	return n, nil
}

func runResolve(cfg Config, log *zap.SugaredLogger, w io.Writer) (int, error) {
	l, r, err := loadPair(cfg)
	if err != nil {
		return 0, err
	}
	left, err := buildSeries(cfg.Left, l, cfg.Strict, log, versionedValue)
	if err != nil {
		return 0, err
	}
	right, err := buildSeries(cfg.Right, r, cfg.Strict, log, versionedValue)
	if err != nil {
		return 0, err
	}

	resolved := versioned.Resolve(left, right)
	if cfg.Merge {
		resolved = dataseries.Merge(resolved)
	}

	enc := json.NewEncoder(w)
	n := 0
	for p, o := range resolved.All() {
		rec := valueRecord{Point: p, Data: json.RawMessage("null")}
		if v, ok := o.Get(); ok {
			rec.Version, rec.Data = v.Version, json.RawMessage(v.Data)
		}
		if err := enc.Encode(rec); err != nil {
			return n, fmt.Errorf("failed to write output: %w", err)
		}
		n++
	}
	return n, nil
}

func runExplain(cfg Config, log *zap.SugaredLogger, w io.Writer) (int, error) {
	left, right, err := loadValuePair(cfg, log)
	if err != nil {
		return 0, err
	}
	out := dataseries.Explain(left, right)
	if _, err := io.WriteString(w, out); err != nil {
		return 0, fmt.Errorf("failed to write output: %w", err)
	}
	return 0, nil
}
