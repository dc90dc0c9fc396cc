// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"
)

// AssetsEnv names the environment variable that points at a custom assets directory.
const AssetsEnv = "CARD2PDF_ASSETS"

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-card2pdf/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-card2pdf") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleSetNotFound returns hints for style set not found errors.
func ForStyleSetNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForFontNotFound returns hints for missing TrueType font files.
// Suggests the assets directory layout and, when unset, the environment variable.
func ForFontNotFound() string {
	hints := []string{"place the .ttf files under <assets>/fonts"}
	if os.Getenv(AssetsEnv) == "" {
		hints = append(hints, "pass --assets or set "+AssetsEnv)
	}
	hints = append(hints, "or use --style standard (built-in fonts)")
	return formatHints(hints)
}

// ForTooSmall returns hints for cards that fit no template.
func ForTooSmall(splitEnabled bool) string {
	if !splitEnabled {
		return format("remove --no-split to let long text continue on the next frame")
	}
	return format("add a larger template with --templates small,large,epic or shorten the text")
}

// ForImage returns hints for card art that cannot be loaded.
func ForImage() string {
	return format("supported formats: PNG, JPG, GIF; relative paths resolve against the card file")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
