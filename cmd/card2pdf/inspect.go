package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/log"
	flag "github.com/spf13/pflag"

	card2pdf "github.com/alnah/go-card2pdf"
)

// Chroma settings for inspect --color.
const (
	highlightLexer     = "yaml"
	highlightFormatter = "terminal256"
	highlightStyle     = "monokai"
)

// runInspect executes the inspect command: it plans every card and prints
// the plans as YAML without drawing anything.
func runInspect(ctx context.Context, args []string, env *Environment) error {
	f, positional, err := parseInspectFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	logger := newLogger(env.Stderr, f.common.quiet, f.common.verbose)
	ctx = log.WithContext(ctx, logger)

	j, err := prepare(ctx, f.common, &f.layout, positional)
	if err != nil {
		return err
	}
	defer j.pool.Close()

	results := planBatch(ctx, j.pool, j.entries)
	if err := ctx.Err(); err != nil {
		return err
	}

	var plans []*card2pdf.Plan
	for _, r := range results {
		if r.Err == nil {
			plans = append(plans, r.Plan)
		}
	}
	failed := printPlanResults(results, !j.cfg.Layout.NoSplit, commonFlags{quiet: true}, env)

	if len(plans) > 0 {
		data, err := card2pdf.MarshalSummaries(plans)
		if err != nil {
			return err
		}
		if err := printYAML(env, data, f.color); err != nil {
			return err
		}
	}

	if failed > 0 {
		return skipped(results)
	}
	return nil
}

// printYAML writes YAML to stdout, highlighted when color is set.
func printYAML(env *Environment, data []byte, color bool) error {
	if !color {
		_, err := env.Stdout.Write(data)
		return err
	}
	return quick.Highlight(env.Stdout, string(data), highlightLexer, highlightFormatter, highlightStyle)
}
