package card2pdf

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/alnah/go-card2pdf/internal/layout"
	"github.com/alnah/go-card2pdf/internal/richtext"
	"github.com/alnah/go-card2pdf/internal/style"
)

// Divider dimensions in millimetres.
const (
	dividerThickness = 0.25
	dividerSpacing   = 1.0
	tableSpaceBefore = 1.0
)

// Section headings of the stat block.
const (
	headingActions   = "ACTIONS"
	headingReactions = "REACTIONS"
	headingLegendary = "LEGENDARY ACTIONS"
)

// blankLines separates description paragraphs.
var blankLines = regexp.MustCompile(`\n[ \t]*\n`)

// BuildBlocks builds the block queue of any card kind.
func BuildBlocks(card Card, ctx BuildContext) ([]layout.Block, error) {
	b, err := newBlockBuilder(card, ctx)
	if err != nil {
		return nil, err
	}
	switch c := card.(type) {
	case *Monster:
		return b.monster(c)
	case *Item:
		return b.item(c)
	}
	return nil, &BlockDataError{Card: card.Info().Title, Field: "kind", Msg: fmt.Sprintf("no builder for %q", card.Kind())}
}

// blockBuilder holds the styles a builder needs and collects blocks.
type blockBuilder struct {
	ctx    BuildContext
	card   string
	blocks []layout.Block

	text, modifier, modifierTitle, actionTitle *style.Style
}

func newBlockBuilder(card Card, ctx BuildContext) (*blockBuilder, error) {
	b := &blockBuilder{ctx: ctx, card: card.Info().Title}
	for name, dst := range map[string]**style.Style{
		"text":           &b.text,
		"modifier":       &b.modifier,
		"modifier_title": &b.modifierTitle,
		"action_title":   &b.actionTitle,
	} {
		s, err := ctx.Styles.Style(name)
		if err != nil {
			return nil, err
		}
		*dst = s
	}
	return b, nil
}

func (b *blockBuilder) add(blocks ...layout.Block) { b.blocks = append(b.blocks, blocks...) }

func (b *blockBuilder) para(markup string, s *style.Style) *layout.RichText {
	return layout.NewRichText(b.ctx.Parser.Parse(markup), s)
}

// rule adds a divider unless the last block already is one.
func (b *blockBuilder) rule() {
	if n := len(b.blocks); n > 0 {
		if _, ok := b.blocks[n-1].(*layout.Divider); ok {
			return
		}
	}
	b.add(&layout.Divider{
		Width:     BaseWidth - b.ctx.Geometry.BorderBack.Left,
		Thickness: dividerThickness,
		Spacing:   dividerSpacing,
		XOffset:   -TextMargin,
		Color:     b.ctx.BorderColor,
	})
}

// entry formats a "heading: body" paragraph. Headings are plain text.
func entry(pre, post, heading, body string) string {
	return pre + html.EscapeString(heading) + ":" + post + " " + body
}

func (b *blockBuilder) monster(m *Monster) ([]layout.Block, error) {
	b.add(&layout.Table{
		Rows: [][]*layout.RichText{{
			b.para(fmt.Sprintf("<b>AC:</b> %s<br/><b>Speed:</b> %s", m.ArmorClass, m.Speed), b.text),
			b.para(fmt.Sprintf("<b>HP:</b> %s", m.HitPoints), b.text),
		}},
		SpaceBefore: tableSpaceBefore,
	})

	titles := make([]*layout.RichText, len(AbilityNames))
	scores := make([]*layout.RichText, len(AbilityNames))
	for i, name := range AbilityNames {
		titles[i] = layout.NewRichText(richtext.Plain(name, 0), b.modifierTitle)
		scores[i] = layout.NewRichText(richtext.Plain(m.AbilityScores()[i], 0), b.modifier)
	}
	colWidth := BaseWidth / float64(len(AbilityNames)+1)
	b.add(&layout.Table{
		Rows:         [][]*layout.RichText{titles, scores},
		ColumnWidths: []float64{colWidth, colWidth, colWidth, colWidth, colWidth},
		SpaceBefore:  tableSpaceBefore,
	})

	b.rule()

	if len(m.Attributes) > 0 {
		var sb strings.Builder
		for _, a := range m.Attributes {
			sb.WriteString(entry("<b>", "</b>", a.Heading, a.Body))
			sb.WriteString("<br/>")
		}
		b.add(b.para(sb.String(), b.text))
	}
	for _, a := range m.Abilities {
		b.add(b.para(entry("<i>", "</i>", a.Heading, a.Body), b.text))
	}

	b.section(headingActions, m.Actions)
	b.section(headingReactions, m.Reactions)

	if len(m.Legendary) > 0 {
		b.rule()
		title := layout.NewRichText(richtext.Plain(headingLegendary, 0), b.actionTitle)
		for i, l := range m.Legendary {
			markup := l.Body
			if l.Heading != "" {
				markup = entry("<i><b>", "</b></i>", l.Heading, l.Body)
			}
			p := b.para(markup, b.text)
			if i == 0 {
				b.add(layout.NewGroup(title, p))
				continue
			}
			b.add(p)
		}
	}

	return b.blocks, nil
}

// section adds a divider and a heading kept together with the first entry
// that follows it. Empty sections add nothing.
func (b *blockBuilder) section(heading string, entries []Section) {
	if len(entries) == 0 {
		return
	}
	b.rule()
	title := layout.NewRichText(richtext.Plain(heading, 0), b.actionTitle)
	for i, s := range entries {
		p := b.para(entry("<i><b>", "</b></i>", s.Heading, s.Body), b.text)
		if i == 0 {
			b.add(layout.NewGroup(title, p))
			continue
		}
		b.add(p)
	}
}

func (b *blockBuilder) item(it *Item) ([]layout.Block, error) {
	if line := it.CategoryLine(); line != "" {
		b.add(layout.NewRichText(richtext.Plain(line, richtext.Italic), b.text))
		b.rule()
	}

	desc := strings.ReplaceAll(it.Description, "\r\n", "\n")
	for _, p := range blankLines.Split(desc, -1) {
		if strings.TrimSpace(p) == "" {
			continue
		}
		b.add(b.para(p, b.text))
	}

	if len(b.blocks) == 0 {
		return nil, &BlockDataError{Card: b.card, Field: "description", Msg: "item has neither category nor description"}
	}
	return b.blocks, nil
}
