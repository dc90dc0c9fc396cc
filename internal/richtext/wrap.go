package richtext

// WidthFunc reports the rendered width of text in the given emphasis.
type WidthFunc func(text string, e Emphasis) float64

// Line is a wrapped line: the half-open token range [Start, End) and its width.
// Spaces inside the range are rendered; spaces at the range edges never occur.
type Line struct {
	Start int
	End   int
	Width float64
}

// Wrap breaks tokens into lines no wider than width using greedy filling.
// A run of glued words wider than width is placed on a line of its own.
// Wrapping is prefix-stable: when line k-1 is not blank, re-wrapping
// tokens[:lines[k-1].End] yields the first k lines, and re-wrapping
// tokens[lines[k].Start:] yields the rest. A blank line (Start == End) comes
// from two consecutive breaks.
func Wrap(tokens []Token, width float64, measure WidthFunc) []Line {
	var lines []Line

	open := false
	cur := Line{}
	spaceWidth := 0.0

	closeLine := func() {
		lines = append(lines, cur)
		open = false
		spaceWidth = 0
	}

	i := 0
	for i < len(tokens) {
		t := tokens[i]
		switch t.Kind {
		case Break:
			if !open {
				cur = Line{Start: i, End: i}
			}
			closeLine()
			cur = Line{Start: i + 1, End: i + 1}
			open = true
			i++
			continue
		case Space:
			if open && cur.End > cur.Start {
				spaceWidth = measure(" ", t.Emphasis)
			}
			i++
			continue
		}

		j, groupWidth := i, 0.0
		for j < len(tokens) && tokens[j].Kind == Word {
			groupWidth += measure(tokens[j].Text, tokens[j].Emphasis)
			j++
		}

		switch {
		case !open || cur.End == cur.Start:
			cur = Line{Start: i, End: j, Width: groupWidth}
			open = true
		case cur.Width+spaceWidth+groupWidth <= width:
			cur.End = j
			cur.Width += spaceWidth + groupWidth
		default:
			closeLine()
			cur = Line{Start: i, End: j, Width: groupWidth}
			open = true
		}
		spaceWidth = 0
		i = j
	}

	if open && cur.End > cur.Start {
		lines = append(lines, cur)
	}
	return lines
}
