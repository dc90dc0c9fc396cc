package richtext

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
)

// runeWidth measures one unit per rune, bold or not.
func runeWidth(text string, _ Emphasis) float64 {
	return float64(utf8.RuneCountInString(text))
}

func lineTexts(tokens []Token, lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = String(tokens[l.Start:l.End])
	}
	return out
}

// ---------------------------------------------------------------------------
// TestWrap - Greedy line filling
// ---------------------------------------------------------------------------

func TestWrap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		tokens []Token
		width  float64
		want   []string
	}{
		{
			name:   "fits on one line",
			tokens: Plain("aa bb", 0),
			width:  5,
			want:   []string{"aa bb"},
		},
		{
			name:   "greedy fill",
			tokens: Plain("aa bb cc", 0),
			width:  5,
			want:   []string{"aa bb", "cc"},
		},
		{
			name:   "explicit break",
			tokens: Plain("aa\nbb", 0),
			width:  10,
			want:   []string{"aa", "bb"},
		},
		{
			name:   "empty line between breaks",
			tokens: Plain("aa\n\nbb", 0),
			width:  10,
			want:   []string{"aa", "", "bb"},
		},
		{
			name:   "overlong word gets its own line",
			tokens: Plain("abcdefgh xy", 0),
			width:  4,
			want:   []string{"abcdefgh", "xy"},
		},
		{
			name:   "glued words never break",
			tokens: []Token{word("ab", Bold), word("cd", 0), space(0), word("ef", 0)},
			width:  3,
			want:   []string{"abcd", "ef"},
		},
		{
			name:   "no tokens",
			tokens: nil,
			width:  3,
			want:   []string{},
		},
	}

	for _, tt := range tests {
		lines := Wrap(tt.tokens, tt.width, runeWidth)
		got := lineTexts(tt.tokens, lines)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%s: Wrap() mismatch (-want +got):\n%s", tt.name, diff)
		}
	}
}

func TestWrap_LineWidth(t *testing.T) {
	t.Parallel()

	lines := Wrap(Plain("aa bb cc", 0), 5, runeWidth)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0].Width != 5 || lines[1].Width != 2 {
		t.Errorf("widths = %v, %v; want 5, 2", lines[0].Width, lines[1].Width)
	}
}

// ---------------------------------------------------------------------------
// TestWrap_PrefixStable - Splitting at a line boundary keeps both halves intact
// ---------------------------------------------------------------------------

func TestWrap_PrefixStable(t *testing.T) {
	t.Parallel()

	text := strings.Repeat("The goblin hides behind a rock and waits.\n", 3) + "Then it strikes."
	tokens := NewParser().Parse("<b>Ambush:</b> " + strings.ReplaceAll(text, "\n", "<br/>"))

	for _, width := range []float64{8, 13, 21, 40} {
		lines := Wrap(tokens, width, runeWidth)
		all := lineTexts(tokens, lines)

		for k := 1; k < len(lines); k++ {
			head := tokens[:lines[k-1].End]
			tail := tokens[lines[k].Start:]

			gotHead := lineTexts(head, Wrap(head, width, runeWidth))
			if diff := cmp.Diff(all[:k], gotHead); diff != "" {
				t.Errorf("width %v, k=%d: head mismatch (-want +got):\n%s", width, k, diff)
			}

			gotTail := lineTexts(tail, Wrap(tail, width, runeWidth))
			if diff := cmp.Diff(all[k:], gotTail); diff != "" {
				t.Errorf("width %v, k=%d: tail mismatch (-want +got):\n%s", width, k, diff)
			}
		}
	}
}
