package layout

import (
	"strings"

	"github.com/alnah/go-card2pdf/internal/richtext"
)

// wordStyle wraps one word per line, so a paragraph of n words is n lines tall.
type wordStyle struct {
	lineHeight  float64
	spaceBefore float64
}

func (s wordStyle) Name() string { return "test" }

func (s wordStyle) Wrap(tokens []richtext.Token, width float64) []richtext.Line {
	return richtext.Wrap(tokens, width, func(string, richtext.Emphasis) float64 { return width })
}

func (s wordStyle) LineHeight() float64  { return s.lineHeight }
func (s wordStyle) SpaceBefore() float64 { return s.spaceBefore }

// para returns a paragraph of the given number of lines.
func para(lines int, lineHeight float64) *RichText {
	words := make([]string, lines)
	for i := range words {
		words[i] = "w" + strings.Repeat("x", i%3)
	}
	return NewRichText(richtext.Plain(strings.Join(words, " "), 0), wordStyle{lineHeight: lineHeight})
}

func divider() *Divider {
	return &Divider{Thickness: 0.25, Spacing: 1}
}

func region(height float64) *Region {
	return NewRegion(0, 0, 50, height, Padding{})
}

func regions(n int, height float64) []*Region {
	out := make([]*Region, n)
	for i := range out {
		out[i] = region(height)
	}
	return out
}

// placed returns the blocks committed to r.
func placed(r *Region) []Block {
	var out []Block
	for _, p := range r.Placements() {
		out = append(out, p.Block)
	}
	return out
}
