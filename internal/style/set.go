package style

import (
	"fmt"
	"sort"

	"github.com/alnah/go-card2pdf/internal/richtext"
	"github.com/alnah/go-card2pdf/internal/yamlutil"
)

// Align is the horizontal alignment of a text style.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// FontFace lists the TTF files of one family. Missing variants fall back to
// Regular.
type FontFace struct {
	Family     string `yaml:"family"`
	Regular    string `yaml:"regular"`
	Bold       string `yaml:"bold"`
	Italic     string `yaml:"italic"`
	BoldItalic string `yaml:"boldItalic"`
}

// file returns the TTF file for a "", "B", "I" or "BI" font style.
func (f FontFace) file(fontStyle string) string {
	var file string
	switch fontStyle {
	case "B":
		file = f.Bold
	case "I":
		file = f.Italic
	case "BI":
		file = f.BoldItalic
	}
	if file == "" {
		return f.Regular
	}
	return file
}

// Spec describes one semantic style. Sizes are in millimetres.
type Spec struct {
	Family      string   `yaml:"family"`
	Emphasis    string   `yaml:"emphasis"` // "", bold, italic, boldItalic
	Size        float64  `yaml:"size"`
	Color       string   `yaml:"color"`
	Leading     *float64 `yaml:"leading"` // extra line spacing; defaults to the set's
	SpaceBefore float64  `yaml:"spaceBefore"`
	Align       Align    `yaml:"align"`
}

// Set is a named collection of fonts and styles.
type Set struct {
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	FontScale   float64         `yaml:"fontScale"`
	Leading     float64         `yaml:"leading"`
	Fonts       []FontFace      `yaml:"fonts"`
	Styles      map[string]Spec `yaml:"styles"`
}

// RequiredStyles are the styles every set must define.
var RequiredStyles = []string{
	"title", "subtitle", "challenge", "heading", "text",
	"modifier", "modifier_title", "action_title", "artist",
}

// ParseSet decodes and validates a style set.
func ParseSet(data []byte) (*Set, error) {
	var s Set
	if err := yamlutil.UnmarshalStrict(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSet, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that the set is complete and consistent.
func (s *Set) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidSet)
	}
	if s.FontScale <= 0 {
		return fmt.Errorf("%w: %s: fontScale must be positive", ErrInvalidSet, s.Name)
	}

	families := make(map[string]bool, len(s.Fonts))
	for _, f := range s.Fonts {
		if f.Family == "" || f.Regular == "" {
			return fmt.Errorf("%w: %s: font needs a family and a regular file", ErrInvalidSet, s.Name)
		}
		families[f.Family] = true
	}

	for _, name := range RequiredStyles {
		if _, ok := s.Styles[name]; !ok {
			return fmt.Errorf("%w: %s: missing style %q", ErrInvalidSet, s.Name, name)
		}
	}

	for _, name := range s.StyleNames() {
		spec := s.Styles[name]
		if spec.Size <= 0 {
			return fmt.Errorf("%w: %s: style %q: size must be positive", ErrInvalidSet, s.Name, name)
		}
		if !families[spec.Family] && !isCoreFamily(spec.Family) {
			return fmt.Errorf("%w: %s: style %q: %q", ErrUnknownFamily, s.Name, name, spec.Family)
		}
		if _, err := parseEmphasis(spec.Emphasis); err != nil {
			return fmt.Errorf("%w: %s: style %q: %v", ErrInvalidSet, s.Name, name, err)
		}
		if _, err := ParseColor(spec.Color); err != nil {
			return fmt.Errorf("%w: %s: style %q: %v", ErrInvalidSet, s.Name, name, err)
		}
		switch spec.Align {
		case "", AlignLeft, AlignCenter, AlignRight:
		default:
			return fmt.Errorf("%w: %s: style %q: unknown align %q", ErrInvalidSet, s.Name, name, spec.Align)
		}
	}
	return nil
}

// StyleNames returns the style names, sorted.
func (s *Set) StyleNames() []string {
	names := make([]string, 0, len(s.Styles))
	for name := range s.Styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func parseEmphasis(s string) (richtext.Emphasis, error) {
	switch s {
	case "", "regular":
		return 0, nil
	case "bold":
		return richtext.Bold, nil
	case "italic":
		return richtext.Italic, nil
	case "boldItalic":
		return richtext.Bold | richtext.Italic, nil
	}
	return 0, fmt.Errorf("unknown emphasis %q", s)
}
