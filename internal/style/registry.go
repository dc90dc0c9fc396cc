package style

import (
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
)

// fontStyles are the fpdf style strings a family is registered under.
var fontStyles = []string{"", "B", "I", "BI"}

// coreFamilies are the fonts every PDF reader provides.
var coreFamilies = map[string]bool{
	"courier": true, "helvetica": true, "arial": true,
	"times": true, "symbol": true, "zapfdingbats": true,
}

func isCoreFamily(family string) bool {
	return coreFamilies[strings.ToLower(family)]
}

// FontSource provides TTF file contents by file name.
type FontSource interface {
	LoadFont(file string) ([]byte, error)
}

type fontVariant struct {
	family    string
	fontStyle string
	data      []byte
}

// Registry holds the styles of one set and measures text with them.
type Registry struct {
	set      *Set
	variants []fontVariant
	utf8     map[string]bool
	surface  *fpdf.Fpdf
	cp1252   func(string) string
	styles   map[string]*Style
}

// NewRegistry loads the fonts of set from src and builds its styles.
// src may be nil when the set only uses core fonts.
func NewRegistry(set *Set, src FontSource) (*Registry, error) {
	if err := set.Validate(); err != nil {
		return nil, err
	}

	surface := fpdf.New("P", "mm", "A4", "")
	r := &Registry{
		set:     set,
		utf8:    make(map[string]bool),
		surface: surface,
		cp1252:  surface.UnicodeTranslatorFromDescriptor(""),
		styles:  make(map[string]*Style, len(set.Styles)),
	}

	for _, face := range set.Fonts {
		if src == nil {
			return nil, fmt.Errorf("%w: %s: no font source", ErrFontLoad, face.Family)
		}
		loaded := make(map[string][]byte)
		for _, fs := range fontStyles {
			file := face.file(fs)
			data, ok := loaded[file]
			if !ok {
				var err error
				if data, err = src.LoadFont(file); err != nil {
					return nil, fmt.Errorf("%w: %s: %v", ErrFontLoad, face.Family, err)
				}
				loaded[file] = data
			}
			r.variants = append(r.variants, fontVariant{family: face.Family, fontStyle: fs, data: data})
			surface.AddUTF8FontFromBytes(face.Family, fs, data)
		}
		r.utf8[strings.ToLower(face.Family)] = true
	}
	if surface.Err() {
		return nil, fmt.Errorf("%w: %v", ErrFontLoad, surface.Error())
	}

	for name, spec := range set.Styles {
		emphasis, _ := parseEmphasis(spec.Emphasis)
		color, _ := ParseColor(spec.Color)
		leading := set.Leading
		if spec.Leading != nil {
			leading = *spec.Leading
		}
		align := spec.Align
		if align == "" {
			align = AlignLeft
		}

		r.styles[name] = &Style{
			reg:         r,
			name:        name,
			family:      spec.Family,
			emphasis:    emphasis,
			size:        spec.Size * set.FontScale,
			leading:     leading,
			spaceBefore: spec.SpaceBefore,
			color:       color,
			align:       align,
		}
	}

	return r, nil
}

// Set returns the style set the registry was built from.
func (r *Registry) Set() *Set { return r.set }

// Style returns the named style.
func (r *Registry) Style(name string) (*Style, error) {
	s, ok := r.styles[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q in set %s", ErrUnknownStyle, name, r.set.Name)
	}
	return s, nil
}

// Install registers the set's TTF fonts on an output document so its styles
// can draw there.
func (r *Registry) Install(pdf *fpdf.Fpdf) error {
	for _, v := range r.variants {
		pdf.AddUTF8FontFromBytes(v.family, v.fontStyle, v.data)
	}
	if pdf.Err() {
		return fmt.Errorf("%w: %v", ErrFontLoad, pdf.Error())
	}
	return nil
}

// encode converts text for the family: core fonts take cp1252, TTF fonts UTF-8.
func (r *Registry) encode(family, text string) string {
	if r.utf8[strings.ToLower(family)] {
		return text
	}
	return r.cp1252(text)
}
