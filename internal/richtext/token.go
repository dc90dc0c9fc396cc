// Package richtext turns card markup into styled tokens and wraps them into lines.
//
// Markup is a small inline dialect: Markdown emphasis (*italic*, **bold**)
// and the inline HTML tags <b>, <strong>, <i>, <em> and <br/>. Anything else
// is sanitised away before parsing. The package never measures text itself;
// wrapping takes a WidthFunc supplied by the style layer.
package richtext

import "strings"

// Emphasis is a bit set of inline text styles.
type Emphasis uint8

const (
	Bold Emphasis = 1 << iota
	Italic
)

// FontStyle returns the emphasis in the "", "B", "I", "BI" notation used by PDF font tables.
func (e Emphasis) FontStyle() string {
	switch e {
	case Bold:
		return "B"
	case Italic:
		return "I"
	case Bold | Italic:
		return "BI"
	}
	return ""
}

// Kind identifies what a token represents.
type Kind uint8

const (
	Word Kind = iota
	Space
	Break
)

// Token is one unit of styled text. Line breaks are only allowed at Space
// and Break tokens; adjacent Word tokens with different emphasis stay glued.
type Token struct {
	Kind     Kind
	Text     string
	Emphasis Emphasis
}

// Plain tokenizes text without interpreting any markup.
func Plain(text string, e Emphasis) []Token {
	var b builder
	b.emphasis = e
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			b.lineBreak()
		}
		b.text(line)
	}
	return b.finish()
}

// String returns the plain text carried by tokens, with breaks as newlines.
func String(tokens []Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		switch t.Kind {
		case Word:
			sb.WriteString(t.Text)
		case Space:
			sb.WriteByte(' ')
		case Break:
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// builder accumulates tokens, collapsing whitespace the way a browser would.
type builder struct {
	tokens   []Token
	emphasis Emphasis
	bold     int
	italic   int
}

func (b *builder) current() Emphasis {
	e := b.emphasis
	if b.bold > 0 {
		e |= Bold
	}
	if b.italic > 0 {
		e |= Italic
	}
	return e
}

func (b *builder) last() (Token, bool) {
	if len(b.tokens) == 0 {
		return Token{}, false
	}
	return b.tokens[len(b.tokens)-1], true
}

func (b *builder) text(s string) {
	e := b.current()
	start := -1
	for i, r := range s {
		if isSpace(r) {
			if start >= 0 {
				b.word(s[start:i], e)
				start = -1
			}
			b.space(e)
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		b.word(s[start:], e)
	}
}

func (b *builder) word(s string, e Emphasis) {
	if last, ok := b.last(); ok && last.Kind == Word && last.Emphasis == e {
		b.tokens[len(b.tokens)-1].Text += s
		return
	}
	b.tokens = append(b.tokens, Token{Kind: Word, Text: s, Emphasis: e})
}

func (b *builder) space(e Emphasis) {
	last, ok := b.last()
	if !ok || last.Kind != Word {
		return
	}
	b.tokens = append(b.tokens, Token{Kind: Space, Text: " ", Emphasis: e})
}

func (b *builder) lineBreak() {
	if last, ok := b.last(); ok && last.Kind == Space {
		b.tokens = b.tokens[:len(b.tokens)-1]
	}
	if len(b.tokens) == 0 {
		return
	}
	b.tokens = append(b.tokens, Token{Kind: Break})
}

// finish trims trailing spaces and breaks.
func (b *builder) finish() []Token {
	for len(b.tokens) > 0 {
		k := b.tokens[len(b.tokens)-1].Kind
		if k != Space && k != Break {
			break
		}
		b.tokens = b.tokens[:len(b.tokens)-1]
	}
	return b.tokens
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
