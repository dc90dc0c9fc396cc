package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed styles/*.yaml
var styles embed.FS

// EmbeddedLoader loads assets from embedded filesystem.
// Implements AssetLoader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadStyleSet loads a style set from embedded assets by name.
// The name should not include the .yaml extension.
func (e *EmbeddedLoader) LoadStyleSet(name string) ([]byte, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	content, err := styles.ReadFile("styles/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrStyleSetNotFound, name)
	}

	return content, nil
}

// LoadFont always fails: no font files are embedded.
func (e *EmbeddedLoader) LoadFont(file string) ([]byte, error) {
	if err := ValidateFontFile(file); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("%w: %q (no fonts are built in)", ErrFontNotFound, file)
}

// ListStyleSets returns the names of the built-in style sets.
func (e *EmbeddedLoader) ListStyleSets() ([]string, error) {
	entries, err := fs.ReadDir(styles, "styles")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return yamlNames(entries), nil
}

// yamlNames returns the sorted base names of the .yaml entries.
func yamlNames(entries []fs.DirEntry) []string {
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
