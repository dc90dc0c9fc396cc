package richtext

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// inlineTag matches the inline HTML tags the renderer understands.
var inlineTag = regexp.MustCompile(`(?i)<\s*(/?)\s*(b|strong|i|em|br)\s*/?\s*>`)

// Parser converts card markup into tokens.
// A Parser is not safe for concurrent use; give each worker its own.
type Parser struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewParser creates a Parser that accepts Markdown emphasis and the inline
// tags b, strong, i, em and br. Other tags are dropped, keeping their text.
func NewParser() *Parser {
	policy := bluemonday.NewPolicy()
	policy.AllowElements("b", "strong", "i", "em", "br")

	return &Parser{
		md:     goldmark.New(),
		policy: policy,
	}
}

// Parse sanitises markup and returns its tokens.
func (p *Parser) Parse(markup string) []Token {
	markup = strings.TrimSpace(markup)
	if markup == "" {
		return nil
	}

	src := []byte(p.policy.Sanitize(markup))
	doc := p.md.Parser().Parse(text.NewReader(src))

	w := walker{src: src}
	_ = ast.Walk(doc, w.visit)
	return w.b.finish()
}

type walker struct {
	src []byte
	b   builder
}

func (w *walker) visit(n ast.Node, entering bool) (ast.WalkStatus, error) {
	switch node := n.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		_, inItem := n.Parent().(*ast.ListItem)
		if entering && !(inItem && n.PreviousSibling() == nil) {
			w.b.lineBreak()
		}
	case *ast.Heading:
		if entering {
			w.b.lineBreak()
			w.b.bold++
		} else {
			w.b.bold--
		}
	case *ast.ListItem:
		if entering {
			w.b.lineBreak()
			w.b.word("•", w.b.current())
			w.b.space(w.b.current())
		}
	case *ast.HTMLBlock:
		if entering {
			w.b.lineBreak()
			lines := node.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				w.raw(string(seg.Value(w.src)))
			}
			return ast.WalkSkipChildren, nil
		}
	case *ast.CodeBlock, *ast.FencedCodeBlock:
		if entering {
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				w.b.lineBreak()
				seg := lines.At(i)
				w.b.text(strings.TrimRight(string(seg.Value(w.src)), "\n"))
			}
			return ast.WalkSkipChildren, nil
		}
	case *ast.Emphasis:
		delta := 1
		if !entering {
			delta = -1
		}
		if node.Level >= 2 {
			w.b.bold += delta
		} else {
			w.b.italic += delta
		}
	case *ast.Text:
		if entering {
			w.b.text(unescape(node.Segment.Value(w.src)))
			switch {
			case node.HardLineBreak():
				w.b.lineBreak()
			case node.SoftLineBreak():
				w.b.space(w.b.current())
			}
		}
	case *ast.String:
		if entering {
			w.b.text(unescape(node.Value))
		}
	case *ast.RawHTML:
		if entering {
			for i := 0; i < node.Segments.Len(); i++ {
				seg := node.Segments.At(i)
				w.raw(string(seg.Value(w.src)))
			}
		}
	}
	return ast.WalkContinue, nil
}

// raw interprets a fragment of inline HTML: known tags toggle emphasis,
// everything between them is text.
func (w *walker) raw(s string) {
	pos := 0
	for _, m := range inlineTag.FindAllStringSubmatchIndex(s, -1) {
		w.b.text(html.UnescapeString(s[pos:m[0]]))
		pos = m[1]

		closing := m[3] > m[2]
		switch strings.ToLower(s[m[4]:m[5]]) {
		case "b", "strong":
			w.b.bold = adjust(w.b.bold, closing)
		case "i", "em":
			w.b.italic = adjust(w.b.italic, closing)
		case "br":
			w.b.lineBreak()
		}
	}
	w.b.text(html.UnescapeString(s[pos:]))
}

func adjust(depth int, closing bool) int {
	if closing {
		if depth > 0 {
			return depth - 1
		}
		return 0
	}
	return depth + 1
}

func unescape(b []byte) string {
	return html.UnescapeString(string(util.UnescapePunctuations(b)))
}
