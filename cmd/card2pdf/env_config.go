package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-card2pdf/internal/config"
	"github.com/alnah/go-card2pdf/internal/hints"
)

// envPrefix starts every environment variable card2pdf reads.
const envPrefix = "CARD2PDF_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring config files.
type envConfig struct {
	ConfigPath string   // CARD2PDF_CONFIG: config file name or path
	StyleSet   string   // CARD2PDF_STYLE: style set name
	Assets     string   // CARD2PDF_ASSETS: custom assets directory
	InputDir   string   // CARD2PDF_INPUT_DIR: default card directory
	OutputDir  string   // CARD2PDF_OUTPUT_DIR: default output directory
	Templates  []string // CARD2PDF_TEMPLATES: comma-separated escalation order
	Workers    int      // CARD2PDF_WORKERS: parallel layout workers
}

// knownEnvVars lists valid CARD2PDF_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"CARD2PDF_CONFIG":     true,
	"CARD2PDF_STYLE":      true,
	hints.AssetsEnv:       true,
	"CARD2PDF_INPUT_DIR":  true,
	"CARD2PDF_OUTPUT_DIR": true,
	"CARD2PDF_TEMPLATES":  true,
	"CARD2PDF_WORKERS":    true,
	"CARD2PDF_CONTAINER":  true, // doctor: force container detection
}

// loadEnvConfig reads configuration from environment variables.
// Malformed numbers are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("CARD2PDF_CONFIG"),
		StyleSet:   os.Getenv("CARD2PDF_STYLE"),
		Assets:     os.Getenv(hints.AssetsEnv),
		InputDir:   os.Getenv("CARD2PDF_INPUT_DIR"),
		OutputDir:  os.Getenv("CARD2PDF_OUTPUT_DIR"),
	}

	if templates := os.Getenv("CARD2PDF_TEMPLATES"); templates != "" {
		for _, name := range strings.Split(templates, ",") {
			if name = strings.TrimSpace(name); name != "" {
				cfg.Templates = append(cfg.Templates, name)
			}
		}
	}

	if workers := os.Getenv("CARD2PDF_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized CARD2PDF_* variables.
// Helps catch typos like CARD2PDF_ASSET instead of CARD2PDF_ASSETS.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values over the config file.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.StyleSet != "" {
		cfg.Styles.Set = env.StyleSet
	}
	if env.Assets != "" {
		cfg.Assets.BasePath = env.Assets
	}
	if env.InputDir != "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if len(env.Templates) > 0 {
		cfg.Layout.Templates = env.Templates
	}
	if env.Workers > 0 {
		cfg.Layout.Workers = env.Workers
	}
}
