package layout

import (
	"fmt"

	"github.com/alnah/go-card2pdf/internal/richtext"
)

// TextStyle is the measuring side of a text style. The layout engine never
// computes text metrics itself; it only asks the style to wrap tokens.
type TextStyle interface {
	Name() string
	Wrap(tokens []richtext.Token, width float64) []richtext.Line
	LineHeight() float64
	SpaceBefore() float64
}

// Block is one schedulable unit of content. The set of kinds is closed:
// RichText, Table, Divider, Spacer, Image and Group.
type Block interface {
	Accept(v Visitor)
	block()
}

// Visitor dispatches on the concrete kind of a Block.
type Visitor interface {
	VisitRichText(*RichText)
	VisitTable(*Table)
	VisitDivider(*Divider)
	VisitSpacer(*Spacer)
	VisitImage(*Image)
	VisitGroup(*Group)
}

// RGB is an 8-bit colour.
type RGB struct {
	R, G, B uint8
}

// RichText is a run of styled text, wrapped to the width of its region.
type RichText struct {
	Tokens []richtext.Token
	Style  TextStyle

	// continuation marks the remainder of a split; it has no space before.
	continuation bool
}

// NewRichText returns a RichText block in the given style.
func NewRichText(tokens []richtext.Token, style TextStyle) *RichText {
	return &RichText{Tokens: tokens, Style: style}
}

// Continuation reports whether t is the remainder of a split block.
func (t *RichText) Continuation() bool { return t.continuation }

// Lines wraps the text to width.
func (t *RichText) Lines(width float64) []richtext.Line {
	return t.Style.Wrap(t.Tokens, width)
}

func (t *RichText) spaceBefore() float64 {
	if t.continuation {
		return 0
	}
	return t.Style.SpaceBefore()
}

func (t *RichText) textHeight(width float64) float64 {
	return float64(len(t.Lines(width))) * t.Style.LineHeight()
}

// Table is fixed-row tabular content. Each cell is a RichText block.
type Table struct {
	Rows [][]*RichText

	// ColumnWidths are absolute widths. Missing entries share what is left of
	// the available width equally.
	ColumnWidths []float64
	SpaceBefore  float64
}

// Widths resolves the column widths for the available width.
func (t *Table) Widths(available float64) []float64 {
	cols := 0
	for _, row := range t.Rows {
		cols = max(cols, len(row))
	}
	widths := make([]float64, cols)
	used, free := 0.0, 0
	for i := range widths {
		if i < len(t.ColumnWidths) && t.ColumnWidths[i] > 0 {
			widths[i] = t.ColumnWidths[i]
			used += widths[i]
		} else {
			free++
		}
	}
	if free > 0 {
		share := max(0, available-used) / float64(free)
		for i := range widths {
			if widths[i] == 0 {
				widths[i] = share
			}
		}
	}
	return widths
}

// RowHeights returns the height of each row: its tallest cell.
func (t *Table) RowHeights(available float64) []float64 {
	widths := t.Widths(available)
	heights := make([]float64, len(t.Rows))
	for r, row := range t.Rows {
		for c, cell := range row {
			if cell == nil {
				continue
			}
			heights[r] = max(heights[r], cell.textHeight(widths[c]))
		}
	}
	return heights
}

// Divider is a thin horizontal rule. It is never drawn at the top of a
// region and never as the last block of a queue.
type Divider struct {
	Width     float64 // 0 means the available width
	Thickness float64
	Spacing   float64 // vertical space shared above and below the rule
	XOffset   float64
	Color     RGB
}

// Spacer is empty space of a fixed size.
type Spacer struct {
	Width, Height float64
}

// Image is a picture drawn at a fixed size.
type Image struct {
	Path          string
	Width, Height float64
}

// Group is an atomic sequence of blocks, placed whole in a single region.
type Group struct {
	Children []Block
}

// NewGroup groups blocks.
func NewGroup(children ...Block) *Group {
	return &Group{Children: children}
}

func (t *RichText) Accept(v Visitor) { v.VisitRichText(t) }
func (t *Table) Accept(v Visitor)    { v.VisitTable(t) }
func (d *Divider) Accept(v Visitor)  { v.VisitDivider(d) }
func (s *Spacer) Accept(v Visitor)   { v.VisitSpacer(s) }
func (i *Image) Accept(v Visitor)    { v.VisitImage(i) }
func (g *Group) Accept(v Visitor)    { v.VisitGroup(g) }

func (*RichText) block() {}
func (*Table) block()    {}
func (*Divider) block()  {}
func (*Spacer) block()   {}
func (*Image) block()    {}
func (*Group) block()    {}

// Measure returns the footprint of b wrapped to width, space before included.
func Measure(b Block, width float64) float64 {
	m := measurer{width: width}
	b.Accept(&m)
	return m.height
}

type measurer struct {
	width  float64
	height float64
}

func (m *measurer) VisitRichText(t *RichText) {
	m.height = t.spaceBefore() + t.textHeight(m.width)
}

func (m *measurer) VisitTable(t *Table) {
	m.height = t.SpaceBefore
	for _, h := range t.RowHeights(m.width) {
		m.height += h
	}
}

func (m *measurer) VisitDivider(d *Divider) { m.height = d.Thickness + d.Spacing }
func (m *measurer) VisitSpacer(s *Spacer)   { m.height = s.Height }
func (m *measurer) VisitImage(i *Image)     { m.height = i.Height }

func (m *measurer) VisitGroup(g *Group) {
	total := 0.0
	for _, c := range g.Children {
		total += Measure(c, m.width)
	}
	m.height = total
}

// SpaceBefore returns the leading space of b, dropped at the top of a region.
func SpaceBefore(b Block) float64 {
	switch b := b.(type) {
	case *RichText:
		return b.spaceBefore()
	case *Table:
		return b.SpaceBefore
	case *Group:
		if len(b.Children) > 0 {
			return SpaceBefore(b.Children[0])
		}
	}
	return 0
}

// Splittable reports whether b may be divided across regions.
func Splittable(b Block) bool {
	_, ok := b.(*RichText)
	return ok
}

// Describe names a block for diagnostics.
func Describe(b Block) string {
	switch b := b.(type) {
	case nil:
		return "nothing"
	case *RichText:
		text := richtext.String(b.Tokens)
		if r := []rune(text); len(r) > 24 {
			text = string(r[:24]) + "..."
		}
		return fmt.Sprintf("%s text %q", b.Style.Name(), text)
	case *Table:
		return fmt.Sprintf("table (%d rows)", len(b.Rows))
	case *Divider:
		return "divider"
	case *Spacer:
		return "spacer"
	case *Image:
		return fmt.Sprintf("image %q", b.Path)
	case *Group:
		return fmt.Sprintf("group of %d", len(b.Children))
	}
	return fmt.Sprintf("%T", b)
}
