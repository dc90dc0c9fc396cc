package style

import (
	"github.com/go-pdf/fpdf"

	"github.com/alnah/go-card2pdf/internal/layout"
	"github.com/alnah/go-card2pdf/internal/richtext"
)

// ascent is the share of the font size above the baseline.
const ascent = 0.78

// Style is one measured text style. All lengths are in millimetres.
type Style struct {
	reg         *Registry
	name        string
	family      string
	emphasis    richtext.Emphasis
	size        float64
	leading     float64
	spaceBefore float64
	color       layout.RGB
	align       Align
}

var _ layout.TextStyle = (*Style)(nil)

func (s *Style) Name() string         { return s.name }
func (s *Style) FontSize() float64    { return s.size }
func (s *Style) LineHeight() float64  { return s.size + s.leading }
func (s *Style) SpaceBefore() float64 { return s.spaceBefore }
func (s *Style) Color() layout.RGB    { return s.color }
func (s *Style) Align() Align         { return s.align }

// Baseline is the distance from the top of a line to its baseline.
func (s *Style) Baseline() float64 {
	return s.leading/2 + s.size*ascent
}

// FontStyle combines the style's own emphasis with e in fpdf notation.
func (s *Style) FontStyle(e richtext.Emphasis) string {
	return (s.emphasis | e).FontStyle()
}

// Scaled returns a copy of s with the font size multiplied by factor.
func (s *Style) Scaled(factor float64) *Style {
	c := *s
	c.size *= factor
	return &c
}

// Encode converts text to the encoding the style's font expects.
func (s *Style) Encode(text string) string {
	return s.reg.encode(s.family, text)
}

// StringWidth measures text in the style with the extra emphasis e.
func (s *Style) StringWidth(text string, e richtext.Emphasis) float64 {
	pdf := s.reg.surface
	pdf.SetFont(s.family, s.FontStyle(e), 0)
	pdf.SetFontUnitSize(s.size)
	return pdf.GetStringWidth(s.Encode(text))
}

// Wrap breaks tokens into lines no wider than width.
func (s *Style) Wrap(tokens []richtext.Token, width float64) []richtext.Line {
	return richtext.Wrap(tokens, width, s.StringWidth)
}

// Measure returns the height tokens take when wrapped to width, without
// drawing anything.
func (s *Style) Measure(tokens []richtext.Token, width float64) float64 {
	return float64(len(s.Wrap(tokens, width))) * s.LineHeight()
}

// Apply selects the style's font, size and colour on pdf.
func (s *Style) Apply(pdf *fpdf.Fpdf, e richtext.Emphasis) {
	pdf.SetFont(s.family, s.FontStyle(e), 0)
	pdf.SetFontUnitSize(s.size)
	pdf.SetTextColor(int(s.color.R), int(s.color.G), int(s.color.B))
}
