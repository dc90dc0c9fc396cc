// Package config loads the card2pdf configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/alnah/go-card2pdf/internal/fileutil"
	"github.com/alnah/go-card2pdf/internal/style"
	"github.com/alnah/go-card2pdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength     = 4096 // PATH_MAX on Linux
	MaxNameLength     = 64   // style set or template name
	MaxColorLength    = 20   // "#58170d" or a colour name
	MaxWorkers        = 64
	MaxTemplateCount  = 16
	DefaultOutputFile = "cards.pdf"
)

// Card kinds accepted by input.kind.
var validKinds = []string{"monster", "item"}

// Template names accepted by layout.templates.
var validTemplates = []string{"small", "large", "epic"}

// Config holds all configuration for card rendering.
type Config struct {
	Input  InputConfig  `yaml:"input" toml:"input"`
	Output OutputConfig `yaml:"output" toml:"output"`
	Styles StylesConfig `yaml:"styles" toml:"styles"`
	Layout LayoutConfig `yaml:"layout" toml:"layout"`
	Card   CardConfig   `yaml:"card" toml:"card"`
	Assets AssetsConfig `yaml:"assets" toml:"assets"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir" toml:"defaultDir"` // Default input directory (empty = must specify)
	Kind       string `yaml:"kind" toml:"kind"`             // Kind of entries without one: "monster" or "item"
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir" toml:"defaultDir"` // Default output directory (empty = current)
	File       string `yaml:"file" toml:"file"`             // Output file name (default: cards.pdf)
}

// StylesConfig selects the style set.
type StylesConfig struct {
	Set string `yaml:"set" toml:"set"` // Built-in or custom style set name (default: standard)
}

// LayoutConfig tunes template escalation.
type LayoutConfig struct {
	Templates []string `yaml:"templates" toml:"templates"` // Templates to try, smallest first (empty = all)
	NoSplit   bool     `yaml:"noSplit" toml:"noSplit"`     // Never split text across columns
	Workers   int      `yaml:"workers" toml:"workers"`     // Parallel layout workers (0 = auto)
}

// CardConfig defines card furniture.
type CardConfig struct {
	BorderColor string `yaml:"borderColor" toml:"borderColor"` // Hex colour (default: stat block red)
	Background  string `yaml:"background" toml:"background"`   // Parchment image (empty = flat fill)
	Logo        string `yaml:"logo" toml:"logo"`               // Front logo image (empty = none)
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath" toml:"basePath"` // Empty = use embedded assets
}

// Validate checks field lengths and enumerated values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	paths := []struct {
		field, value string
	}{
		{"input.defaultDir", c.Input.DefaultDir},
		{"output.defaultDir", c.Output.DefaultDir},
		{"output.file", c.Output.File},
		{"card.background", c.Card.Background},
		{"card.logo", c.Card.Logo},
		{"assets.basePath", c.Assets.BasePath},
	}
	for _, p := range paths {
		if err := validateFieldLength(p.field, p.value, MaxPathLength); err != nil {
			return err
		}
	}

	if c.Input.Kind != "" && !contains(validKinds, c.Input.Kind) {
		return fmt.Errorf("%w: input.kind %q (must be %s)", ErrInvalidValue, c.Input.Kind, strings.Join(validKinds, " or "))
	}

	if err := validateFieldLength("styles.set", c.Styles.Set, MaxNameLength); err != nil {
		return err
	}

	if len(c.Layout.Templates) > MaxTemplateCount {
		return fmt.Errorf("%w: layout.templates (%d entries, max %d)", ErrFieldTooLong, len(c.Layout.Templates), MaxTemplateCount)
	}
	seen := make(map[string]bool, len(c.Layout.Templates))
	for i, name := range c.Layout.Templates {
		if !contains(validTemplates, name) {
			return fmt.Errorf("%w: layout.templates[%d] %q (must be one of %s)", ErrInvalidValue, i, name, strings.Join(validTemplates, ", "))
		}
		if seen[name] {
			return fmt.Errorf("%w: layout.templates lists %q twice", ErrInvalidValue, name)
		}
		seen[name] = true
	}
	if c.Layout.Workers < 0 || c.Layout.Workers > MaxWorkers {
		return fmt.Errorf("%w: layout.workers must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Layout.Workers)
	}

	if err := validateFieldLength("card.borderColor", c.Card.BorderColor, MaxColorLength); err != nil {
		return err
	}
	if _, err := style.ParseColor(c.Card.BorderColor); err != nil {
		return fmt.Errorf("%w: card.borderColor: %v", ErrInvalidValue, err)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Input:  InputConfig{Kind: "monster"},
		Output: OutputConfig{File: DefaultOutputFile},
		Styles: StylesConfig{Set: "standard"},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Files ending in .toml are decoded as TOML, everything else as YAML.
// Unknown keys are rejected in both formats.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if strings.EqualFold(filepath.Ext(configPath), ".toml") {
		err = decodeTOML(data, &cfg)
	} else {
		err = yamlutil.UnmarshalStrict(data, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults fills the fields a file left empty from DefaultConfig.
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Input.Kind == "" {
		c.Input.Kind = def.Input.Kind
	}
	if c.Output.File == "" {
		c.Output.File = def.Output.File
	}
	if c.Styles.Set == "" {
		c.Styles.Set = def.Styles.Set
	}
}

func decodeTOML(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown field(s): %s", strings.Join(keys, ", "))
	}
	return nil
}

// SearchPaths lists the files resolveConfigPath tries for name, in order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml", ".toml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-card2pdf", name+ext))
		}
	}
	return paths
}

// resolveConfigPath searches for a config file by name: current directory
// first, then ~/.config/go-card2pdf/.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
