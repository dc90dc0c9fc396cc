package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	flag "github.com/spf13/pflag"

	card2pdf "github.com/alnah/go-card2pdf"
	"github.com/alnah/go-card2pdf/internal/config"
	"github.com/alnah/go-card2pdf/internal/fileutil"
	"github.com/alnah/go-card2pdf/internal/hints"
)

// dirPermissions is rwxr-x---: owner full, group read+execute.
const dirPermissions = 0o750

// ErrCardsSkipped means some cards were left out of the output.
var ErrCardsSkipped = errors.New("cards not rendered")

// skippedError reports the cards left out of a run. It matches
// ErrCardsSkipped and every per-card error with errors.Is.
type skippedError struct {
	total int
	errs  []error
}

func (e *skippedError) Error() string {
	return fmt.Sprintf("%d of %d card(s) not rendered", len(e.errs), e.total)
}

func (e *skippedError) Unwrap() []error {
	return append([]error{ErrCardsSkipped}, e.errs...)
}

// planResult holds the outcome of laying out a single card.
type planResult struct {
	Entry    card2pdf.Entry
	Plan     *card2pdf.Plan
	Err      error
	Duration time.Duration
}

// planBatch lays out entries concurrently, one renderer per worker.
// Results keep the order of entries. Malformed entries are not planned.
func planBatch(ctx context.Context, pool *card2pdf.RendererPool, entries []card2pdf.Entry) []planResult {
	if len(entries) == 0 {
		return nil
	}

	concurrency := min(pool.Size(), len(entries))

	results := make([]planResult, len(entries))
	var wg sync.WaitGroup
	jobs := make(chan int, len(entries))

	for range concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()

			r, err := pool.Acquire()
			if err != nil {
				// Another worker may still drain the queue; whatever is
				// left for this one fails with the creation error.
				for idx := range jobs {
					results[idx] = planResult{Entry: entries[idx], Err: err}
				}
				return
			}
			defer pool.Release(r)

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = planResult{Entry: entries[idx], Err: ctx.Err()}
					continue
				}
				results[idx] = planEntry(r, entries[idx])
			}
		}()
	}

	for i := range entries {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// planEntry lays out a single entry and times it.
func planEntry(r *card2pdf.Renderer, e card2pdf.Entry) planResult {
	start := time.Now()
	result := planResult{Entry: e}
	if e.Err != nil {
		result.Err = e.Err
		return result
	}

	result.Plan, result.Err = r.Plan(e.Card)
	result.Duration = time.Since(start)
	return result
}

// runRender executes the render command.
func runRender(ctx context.Context, args []string, env *Environment) error {
	f, positional, err := parseRenderFlags(args, env.Stderr)
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

	doc := card2pdf.NewDocument()
	doc.SetCreationDate(env.Now())
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		if err := doc.Draw(r.Plan); err != nil {
			return err
		}
	}

	failed := printPlanResults(results, !j.cfg.Layout.NoSplit, f.common, env)
	if doc.Pages() == 0 {
		return skipped(results)
	}

	outPath := resolveOutputPath(f.output, j.cfg, j.inputs)
	if err := writeDocument(doc, outPath); err != nil {
		return err
	}
	if !f.common.quiet {
		fmt.Fprintf(env.Stdout, "Created %s (%d page(s))\n", outPath, doc.Pages())
	}
	if !f.common.quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d rendered, %d failed\n", len(results)-failed, failed)
	}

	if failed > 0 {
		return skipped(results)
	}
	return nil
}

// skipped collects the per-card errors of a run.
func skipped(results []planResult) error {
	e := &skippedError{total: len(results)}
	for _, r := range results {
		if r.Err != nil {
			e.errs = append(e.errs, r.Err)
		}
	}
	return e
}

// resolveOutputPath determines the PDF output path.
// An explicit .pdf path wins; a directory receives output.file; a single
// card file without a configured destination gets a PDF next to it.
func resolveOutputPath(output string, cfg *config.Config, inputs []string) string {
	file := cfg.Output.File
	if file == "" {
		file = config.DefaultOutputFile
	}

	switch {
	case strings.EqualFold(filepath.Ext(output), ".pdf"):
		return output
	case output != "":
		return filepath.Join(output, file)
	case cfg.Output.DefaultDir != "":
		return filepath.Join(cfg.Output.DefaultDir, file)
	case len(inputs) == 1:
		in := inputs[0]
		return strings.TrimSuffix(in, filepath.Ext(in)) + ".pdf"
	}
	return file
}

// writeDocument writes the PDF atomically, creating its directory.
func writeDocument(doc *card2pdf.Document, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return withHint(fmt.Errorf("%w: creating output directory: %v", ErrWritePDF, err), hints.ForOutputDirectory())
	}

	err := fileutil.WriteFileAtomic(path, doc.Output)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, card2pdf.ErrPDFGeneration):
		return err
	default:
		return fmt.Errorf("%w: %s: %v", ErrWritePDF, path, err)
	}
}

// printPlanResults reports failed cards on stderr and, in verbose mode,
// the template each card landed on. It returns the number of failures.
func printPlanResults(results []planResult, split bool, common commonFlags, env *Environment) int {
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(env.Stderr, "FAILED %s: %v%s\n", entryLabel(r.Entry), r.Err, cardHint(r.Err, split))
			continue
		}

		if common.verbose && !common.quiet {
			mode := ""
			if r.Plan.Split {
				mode = ", split"
			}
			fmt.Fprintf(env.Stdout, "%s -> %s%s (%v)\n",
				r.Entry.Name(), r.Plan.Template.Name, mode, r.Duration.Round(time.Microsecond))
		}
	}
	return failed
}

// entryLabel names an entry by position, and by title once it is known.
func entryLabel(e card2pdf.Entry) string {
	loc := fmt.Sprintf("%s#%d", e.Source, e.Index)
	if e.Card == nil {
		return loc
	}
	return fmt.Sprintf("%s (%s)", e.Card.Info().Title, loc)
}
