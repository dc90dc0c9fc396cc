package card2pdf

import (
	"fmt"
	"strings"

	"github.com/alnah/go-card2pdf/internal/layout"
	"github.com/alnah/go-card2pdf/internal/richtext"
	"github.com/alnah/go-card2pdf/internal/style"
)

// Card furniture dimensions in millimetres.
const (
	BaseWidth        = 63.0
	BaseHeight       = 89.0
	StandardBorder   = 2.5 // subtitle band height, column separator width
	TitleBarHeight   = 4.8
	TextMargin       = 2.0
	LogoWidth        = 42.0
	CardCornerRadius = 1.5 // 3 mm corner diameter
	BackCornerRadius = 1.0 // 2 mm corner diameter
	frontInset       = 1.0 // front margins sit 1 mm inside the front border
	regionTopPadding = 1.0
)

// Border holds the widths of the coloured border around one face of a card.
type Border struct {
	Left, Right, Bottom, Top float64
}

// Inset returns b grown by d on every side.
func (b Border) Inset(d float64) Border {
	return Border{Left: b.Left + d, Right: b.Right + d, Bottom: b.Bottom + d, Top: b.Top + d}
}

// Footer positions the challenge and source lines on the card back. X values
// are offsets from the left edge of the back, baselines are distances from
// the bottom edge.
type Footer struct {
	ChallengeX, ChallengeBaseline float64
	SourceX, SourceBaseline       float64
}

// Geometry is the physical layout of a card. A page holds the front on the
// left and the back on the right, so it is 2*Width wide.
type Geometry struct {
	Width, Height float64
	BorderFront   Border
	BorderBack    Border
	Columns       int // 1 or 2 text columns on the back
	Footer        Footer
}

// PageSize is the size of the page holding the card.
func (g Geometry) PageSize() (w, h float64) { return 2 * g.Width, g.Height }

// Capacity is the total height of all regions.
func (g Geometry) Capacity() float64 {
	total := 0.0
	for _, r := range g.Regions() {
		total += r.Remaining()
	}
	return total
}

// Regions returns fresh, empty regions for the card back in page
// coordinates. Single-column cards have one region under the title bar;
// two-column cards add a full-height right column.
func (g Geometry) Regions() []*layout.Region {
	b := g.BorderBack
	pad := layout.Padding{Left: TextMargin, Right: TextMargin, Top: regionTopPadding, Bottom: TextMargin}
	top := b.Top + TitleBarHeight + StandardBorder
	underTitle := g.Height - top - b.Bottom

	if g.Columns < 2 {
		return []*layout.Region{
			layout.NewRegion(g.Width+b.Left, top, BaseWidth-b.Left-b.Right, underTitle, pad),
		}
	}

	colWidth := BaseWidth - b.Left - StandardBorder/2
	return []*layout.Region{
		layout.NewRegion(g.Width+b.Left, top, colWidth, underTitle, pad),
		layout.NewRegion(g.Width+BaseWidth+StandardBorder/2, b.Top, colWidth, g.Height-b.Top-b.Bottom, pad),
	}
}

// BuildContext is what a block builder may use besides the card itself.
type BuildContext struct {
	Styles      *style.Registry
	Parser      *richtext.Parser
	Geometry    Geometry
	BorderColor layout.RGB
}

// BuildFunc turns card data into the block queue for a template. It must not
// run the flow itself.
type BuildFunc func(card Card, ctx BuildContext) ([]layout.Block, error)

// Template pairs a card geometry with a block builder.
type Template struct {
	Name     string
	Geometry Geometry

	// TitleFitChars is the title length that fits the title bar at full
	// size. Longer titles are scaled down. Zero disables scaling.
	TitleFitChars int

	Build BuildFunc
}

var (
	smallGeometry = Geometry{
		Width:       BaseWidth,
		Height:      BaseHeight,
		BorderFront: Border{Left: StandardBorder, Right: StandardBorder, Bottom: 7, Top: 7},
		BorderBack:  Border{Left: StandardBorder, Right: StandardBorder, Bottom: 9.2, Top: 1.7},
		Columns:     1,
		Footer: Footer{
			ChallengeX: StandardBorder, ChallengeBaseline: 5.5,
			SourceX: StandardBorder, SourceBaseline: 3,
		},
	}

	largeGeometry = Geometry{
		Width:       2 * BaseWidth,
		Height:      BaseHeight,
		BorderFront: Border{Left: 3.5, Right: 3.5, Bottom: 7, Top: 7},
		BorderBack:  Border{Left: 4, Right: 4, Bottom: 8.5, Top: 3},
		Columns:     2,
		Footer:      twoColumnFooter(8.5),
	}

	epicGeometry = Geometry{
		Width:       2 * BaseWidth,
		Height:      2 * BaseWidth,
		BorderFront: largeGeometry.BorderFront,
		BorderBack:  largeGeometry.BorderBack,
		Columns:     2,
		Footer:      twoColumnFooter(8.5),
	}
)

// challengeSize is the nominal size of the challenge line, used to centre
// the footer in the bottom border of two-column cards.
const challengeSize = 2.25

func twoColumnFooter(bottom float64) Footer {
	baseline := (bottom - challengeSize) / 2
	return Footer{
		ChallengeX: 3.5, ChallengeBaseline: baseline,
		SourceX: BaseWidth + StandardBorder/2, SourceBaseline: baseline,
	}
}

// Built-in template names, smallest first.
const (
	TemplateSmall = "small"
	TemplateLarge = "large"
	TemplateEpic  = "epic"
)

// DefaultTemplateNames is the escalation order used when none is configured.
var DefaultTemplateNames = []string{TemplateSmall, TemplateLarge, TemplateEpic}

var builtinTemplates = map[string]Template{
	TemplateSmall: {Name: TemplateSmall, Geometry: smallGeometry, TitleFitChars: 22, Build: BuildBlocks},
	TemplateLarge: {Name: TemplateLarge, Geometry: largeGeometry, Build: BuildBlocks},
	TemplateEpic:  {Name: TemplateEpic, Geometry: epicGeometry, Build: BuildBlocks},
}

// TemplateNames returns the names of the built-in templates, smallest first.
func TemplateNames() []string {
	return append([]string(nil), DefaultTemplateNames...)
}

// LookupTemplate returns a built-in template by name.
func LookupTemplate(name string) (Template, error) {
	t, ok := builtinTemplates[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Template{}, fmt.Errorf("%w: %q (available: %s)", ErrUnknownTemplate, name, strings.Join(DefaultTemplateNames, ", "))
	}
	return t, nil
}

// Templates resolves names to templates, keeping their order.
func Templates(names ...string) ([]Template, error) {
	if len(names) == 0 {
		return nil, ErrNoTemplates
	}
	out := make([]Template, 0, len(names))
	for _, name := range names {
		t, err := LookupTemplate(name)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}
