package hints

// Notes:
// - ForFontNotFound tests cannot use t.Parallel() because they use t.Setenv().

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestForFontNotFound - Environment-aware suggestions
// ---------------------------------------------------------------------------

func TestForFontNotFound_EnvUnset(t *testing.T) {
	t.Setenv(AssetsEnv, "")

	hint := ForFontNotFound()

	if !strings.HasPrefix(hint, "\n  hint: ") {
		t.Errorf("ForFontNotFound() = %q, want hint prefix", hint)
	}
	if !strings.Contains(hint, AssetsEnv) {
		t.Errorf("ForFontNotFound() = %q, want %s suggestion", hint, AssetsEnv)
	}
	if !strings.Contains(hint, "<assets>/fonts") {
		t.Errorf("ForFontNotFound() = %q, want fonts directory", hint)
	}
}

func TestForFontNotFound_EnvSet(t *testing.T) {
	t.Setenv(AssetsEnv, "/srv/cards")

	hint := ForFontNotFound()

	if strings.Contains(hint, AssetsEnv) {
		t.Errorf("ForFontNotFound() = %q, should not suggest %s when already set", hint, AssetsEnv)
	}
}

// ---------------------------------------------------------------------------
// TestForConfigNotFound - User config suggestion
// ---------------------------------------------------------------------------

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		searched []string
		want     string
		notWant  string
	}{
		{
			name:     "suggests user config",
			searched: []string{"work.yaml", "/home/u/.config/go-card2pdf/work.yaml"},
			want:     "or create /home/u/.config/go-card2pdf/work.yaml",
		},
		{
			name:     "no user path",
			searched: []string{"work.yaml"},
			want:     "--config",
			notWant:  "or create",
		},
		{
			name:     "nil paths",
			searched: nil,
			want:     "--config",
			notWant:  "or create",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForConfigNotFound(tt.searched)
			if !strings.Contains(hint, tt.want) {
				t.Errorf("ForConfigNotFound() = %q, want substring %q", hint, tt.want)
			}
			if tt.notWant != "" && strings.Contains(hint, tt.notWant) {
				t.Errorf("ForConfigNotFound() = %q, unexpected substring %q", hint, tt.notWant)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestForStyleSetNotFound / TestForTooSmall / static hints
// ---------------------------------------------------------------------------

func TestForStyleSetNotFound(t *testing.T) {
	t.Parallel()

	if got := ForStyleSetNotFound(nil); got != "" {
		t.Errorf("ForStyleSetNotFound(nil) = %q, want empty", got)
	}

	got := ForStyleSetNotFound([]string{"free", "standard"})
	if got != "\n  hint: available: free, standard" {
		t.Errorf("ForStyleSetNotFound() = %q", got)
	}
}

func TestForTooSmall(t *testing.T) {
	t.Parallel()

	if got := ForTooSmall(false); !strings.Contains(got, "--no-split") {
		t.Errorf("ForTooSmall(false) = %q, want --no-split suggestion", got)
	}
	if got := ForTooSmall(true); !strings.Contains(got, "--templates") {
		t.Errorf("ForTooSmall(true) = %q, want --templates suggestion", got)
	}
}

func TestStaticHints(t *testing.T) {
	t.Parallel()

	for name, hint := range map[string]string{
		"ForOutputDirectory": ForOutputDirectory(),
		"ForImage":           ForImage(),
	} {
		if !strings.HasPrefix(hint, "\n  hint: ") {
			t.Errorf("%s() = %q, want hint prefix", name, hint)
		}
	}
}

func TestFormatHints(t *testing.T) {
	t.Parallel()

	if got := formatHints(nil); got != "" {
		t.Errorf("formatHints(nil) = %q, want empty", got)
	}
	if got := formatHints([]string{"a", "b"}); got != "\n  hint: a; b" {
		t.Errorf("formatHints() = %q", got)
	}
	if got := format(""); got != "" {
		t.Errorf("format(\"\") = %q, want empty", got)
	}
}
