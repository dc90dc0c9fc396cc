package main

// Notes:
// - Tests use t.Setenv() which prevents t.Parallel().
// - applyEnvConfig: env values override the config file; empty values keep it.

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-card2pdf/internal/config"
)

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Environment variable loading
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Setenv("CARD2PDF_CONFIG", "/etc/card2pdf.yaml")
	t.Setenv("CARD2PDF_STYLE", "large-print")
	t.Setenv("CARD2PDF_ASSETS", "/srv/assets")
	t.Setenv("CARD2PDF_INPUT_DIR", "/cards")
	t.Setenv("CARD2PDF_OUTPUT_DIR", "/out")
	t.Setenv("CARD2PDF_TEMPLATES", " large, ,epic ")
	t.Setenv("CARD2PDF_WORKERS", "3")

	got := loadEnvConfig()
	want := &envConfig{
		ConfigPath: "/etc/card2pdf.yaml",
		StyleSet:   "large-print",
		Assets:     "/srv/assets",
		InputDir:   "/cards",
		OutputDir:  "/out",
		Templates:  []string{"large", "epic"},
		Workers:    3,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("loadEnvConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEnvConfig_InvalidWorkers(t *testing.T) {
	for _, value := range []string{"many", "-2", "0"} {
		t.Run(value, func(t *testing.T) {
			t.Setenv("CARD2PDF_WORKERS", value)

			if got := loadEnvConfig().Workers; got != 0 {
				t.Errorf("Workers = %d, want 0 for %q", got, value)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Typo detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Setenv("CARD2PDF_ASSET", "/typo")
	t.Setenv("CARD2PDF_STYLE", "standard")

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf)

	out := buf.String()
	if !strings.Contains(out, "CARD2PDF_ASSET ") {
		t.Errorf("expected warning for CARD2PDF_ASSET, got %q", out)
	}
	if strings.Contains(out, "CARD2PDF_STYLE") {
		t.Errorf("known variable should not warn, got %q", out)
	}
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig - Env over config file
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("env overrides config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Styles.Set = "free"
		applyEnvConfig(&envConfig{
			StyleSet:  "large-print",
			Assets:    "/assets",
			InputDir:  "/in",
			OutputDir: "/out",
			Templates: []string{"epic"},
			Workers:   2,
		}, cfg)

		if cfg.Styles.Set != "large-print" {
			t.Errorf("Styles.Set = %q, want large-print", cfg.Styles.Set)
		}
		if cfg.Assets.BasePath != "/assets" || cfg.Input.DefaultDir != "/in" || cfg.Output.DefaultDir != "/out" {
			t.Errorf("paths not applied: %+v", cfg)
		}
		if diff := cmp.Diff([]string{"epic"}, cfg.Layout.Templates); diff != "" {
			t.Errorf("Templates mismatch (-want +got):\n%s", diff)
		}
		if cfg.Layout.Workers != 2 {
			t.Errorf("Workers = %d, want 2", cfg.Layout.Workers)
		}
	})

	t.Run("empty env keeps config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Styles.Set = "free"
		cfg.Layout.Workers = 4
		applyEnvConfig(&envConfig{}, cfg)

		if cfg.Styles.Set != "free" || cfg.Layout.Workers != 4 {
			t.Errorf("config changed by empty env: %+v", cfg)
		}
	})
}
