package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"go.uber.org/automaxprocs/maxprocs"

	card2pdf "github.com/alnah/go-card2pdf"
	"github.com/alnah/go-card2pdf/internal/config"
	"github.com/alnah/go-card2pdf/internal/fileutil"
	"github.com/alnah/go-card2pdf/internal/hints"
	"github.com/alnah/go-card2pdf/internal/style"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage     = errors.New("invalid usage")
	ErrNoInput   = errors.New("no input specified")
	ErrReadCards = errors.New("failed to read card file")
	ErrWritePDF  = errors.New("failed to write PDF file")
)

// job is everything a command needs once flags, env and config are merged.
type job struct {
	cfg     *config.Config
	inputs  []string
	entries []card2pdf.Entry
	pool    *card2pdf.RendererPool
}

// prepare loads configuration and cards and starts a renderer pool. The
// caller closes the pool.
func prepare(ctx context.Context, common commonFlags, layout *layoutFlags, args []string) (*job, error) {
	logger := log.FromContext(ctx)

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(logger.Debugf))

	cfg, err := loadConfig(common.config, loadEnvConfig())
	if err != nil {
		return nil, err
	}
	mergeFlags(layout, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	inputs, err := resolveInputs(args, cfg)
	if err != nil {
		return nil, err
	}
	entries, err := loadEntries(ctx, inputs, card2pdf.Kind(cfg.Input.Kind))
	if err != nil {
		return nil, err
	}

	opts, err := rendererOptions(cfg, logger)
	if err != nil {
		return nil, err
	}

	size := card2pdf.ResolvePoolSize(cfg.Layout.Workers)
	logger.Debug("starting renderer pool", "size", size, "cards", len(entries))
	pool := card2pdf.NewRendererPool(size, opts...)

	// The first renderer validates styles, fonts and decor images before
	// any card is planned.
	r, err := pool.Acquire()
	if err != nil {
		pool.Close()
		return nil, withHint(err, setupHint(err, cfg))
	}
	pool.Release(r)

	return &job{cfg: cfg, inputs: inputs, entries: entries, pool: pool}, nil
}

// loadConfig loads the config file named by the flag, or by CARD2PDF_CONFIG,
// then applies the environment on top of it.
func loadConfig(name string, env *envConfig) (*config.Config, error) {
	if name == "" {
		name = env.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			err = fmt.Errorf("loading config: %w", err)
			if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
				err = withHint(err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return nil, err
		}
		cfg = loaded
	}

	applyEnvConfig(env, cfg)
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(f *layoutFlags, cfg *config.Config) {
	if f.kind != "" {
		cfg.Input.Kind = f.kind
	}
	if f.styleSet != "" {
		cfg.Styles.Set = f.styleSet
	}
	if f.assets != "" {
		cfg.Assets.BasePath = f.assets
	}
	if len(f.templates) > 0 {
		cfg.Layout.Templates = f.templates
	}
	if f.noSplit {
		cfg.Layout.NoSplit = true
	}
	if f.workers != 0 {
		cfg.Layout.Workers = f.workers
	}
	if f.borderColor != "" {
		cfg.Card.BorderColor = f.borderColor
	}
	if f.background != "" {
		cfg.Card.Background = f.background
	}
	if f.logo != "" {
		cfg.Card.Logo = f.logo
	}
}

// rendererOptions turns a validated config into renderer options.
func rendererOptions(cfg *config.Config, logger *log.Logger) ([]card2pdf.Option, error) {
	border := card2pdf.DefaultBorderColor
	if cfg.Card.BorderColor != "" {
		c, err := style.ParseColor(cfg.Card.BorderColor)
		if err != nil {
			return nil, fmt.Errorf("%w: card.borderColor: %v", config.ErrInvalidValue, err)
		}
		border = c
	}

	templates := cfg.Layout.Templates
	if len(templates) == 0 {
		templates = card2pdf.TemplateNames()
	}

	return []card2pdf.Option{
		card2pdf.WithStyleSet(cfg.Styles.Set),
		card2pdf.WithAssetPath(cfg.Assets.BasePath),
		card2pdf.WithTemplates(templates...),
		card2pdf.WithSplit(!cfg.Layout.NoSplit),
		card2pdf.WithDecor(card2pdf.Decor{
			BorderColor: border,
			Background:  cfg.Card.Background,
			Logo:        cfg.Card.Logo,
		}),
		card2pdf.WithLogger(logger),
	}, nil
}

// setupHint suggests a fix for an error raised while creating a renderer.
func setupHint(err error, cfg *config.Config) string {
	switch {
	case errors.Is(err, card2pdf.ErrStyleSetNotFound):
		available, _ := card2pdf.StyleSets(cfg.Assets.BasePath)
		return hints.ForStyleSetNotFound(available)
	case errors.Is(err, card2pdf.ErrFontNotFound):
		return hints.ForFontNotFound()
	case errors.Is(err, card2pdf.ErrImageLoad):
		return hints.ForImage()
	}
	return ""
}

// cardHint suggests a fix for an error raised while planning one card.
func cardHint(err error, split bool) string {
	var bde *card2pdf.BlockDataError
	switch {
	case errors.Is(err, card2pdf.ErrTemplateTooSmall):
		return hints.ForTooSmall(split)
	case errors.Is(err, card2pdf.ErrImageLoad):
		return hints.ForImage()
	case errors.As(err, &bde) && bde.Field == "image_path":
		return hints.ForImage()
	}
	return ""
}

// withHint appends a hint to an error message, keeping the error chain.
func withHint(err error, hint string) error {
	if hint == "" {
		return err
	}
	return fmt.Errorf("%w%s", err, hint)
}

// isCardFile reports whether path has a card file extension.
func isCardFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// resolveInputs expands positional arguments into card files. Directories
// are searched recursively. Without arguments, input.defaultDir is used.
func resolveInputs(args []string, cfg *config.Config) ([]string, error) {
	if len(args) == 0 {
		if cfg.Input.DefaultDir == "" {
			return nil, fmt.Errorf("%w: pass a card file or set input.defaultDir", ErrNoInput)
		}
		args = []string{cfg.Input.DefaultDir}
	}

	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadCards, err)
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		found, err := discoverCardFiles(arg)
		if err != nil {
			return nil, err
		}
		if len(found) == 0 {
			return nil, fmt.Errorf("%w: no .yaml card files in %s", ErrNoInput, arg)
		}
		files = append(files, found...)
	}
	return files, nil
}

// discoverCardFiles finds all card files under dir, in lexical order.
func discoverCardFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if !d.IsDir() && isCardFile(path) {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// loadEntries reads every card file. Empty files are skipped with a
// warning; unreadable or malformed files stop the run.
func loadEntries(ctx context.Context, paths []string, kind card2pdf.Kind) ([]card2pdf.Entry, error) {
	logger := log.FromContext(ctx)

	var entries []card2pdf.Entry
	for _, path := range paths {
		loaded, err := card2pdf.LoadCards(path, kind)
		switch {
		case errors.Is(err, card2pdf.ErrEmptyInput):
			logger.Warn("card file has no entries", "file", path)
			continue
		case errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
			return nil, fmt.Errorf("%w: %w", ErrReadCards, err)
		case err != nil:
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		logger.Debug("loaded card file", "file", path, "entries", len(loaded))
		entries = append(entries, loaded...)
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no card entries in %s", ErrNoInput, strings.Join(paths, ", "))
	}
	return entries, nil
}
