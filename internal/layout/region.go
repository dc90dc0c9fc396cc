package layout

// epsilon absorbs floating point noise when comparing heights in millimetres.
const epsilon = 1e-6

// Padding is the interior margin of a region.
type Padding struct {
	Left, Right, Top, Bottom float64
}

// Placement is a block committed to a position: draw Block in the box
// (X, Y, Width, Height). Y is below any space before the block.
type Placement struct {
	Block  Block
	X, Y   float64
	Width  float64
	Height float64
}

// Region is a rectangle that blocks are stacked into from the top down.
type Region struct {
	X, Y          float64
	Width, Height float64
	Padding       Padding

	cursor     float64
	remaining  float64
	atTop      bool
	placements []Placement
}

// NewRegion returns an empty region.
func NewRegion(x, y, width, height float64, padding Padding) *Region {
	return &Region{
		X:         x,
		Y:         y,
		Width:     width,
		Height:    height,
		Padding:   padding,
		cursor:    y + padding.Top,
		remaining: max(0, height-padding.Top-padding.Bottom),
		atTop:     true,
	}
}

// AvailableWidth is the width inside the padding.
func (r *Region) AvailableWidth() float64 {
	return max(0, r.Width-r.Padding.Left-r.Padding.Right)
}

// Remaining is the height still free.
func (r *Region) Remaining() float64 { return r.remaining }

// AtTop reports whether nothing has been placed yet.
func (r *Region) AtTop() bool { return r.atTop }

// Placements returns the committed blocks in placement order.
func (r *Region) Placements() []Placement { return r.placements }

// Footprint is the height b would take if placed now.
func (r *Region) Footprint(b Block) float64 {
	h := Measure(b, r.AvailableWidth())
	if r.atTop {
		h -= SpaceBefore(b)
	}
	return h
}

// TryAdd places b if it fits in the remaining height and reports whether it
// did. Nothing changes when it does not fit. A divider offered at the top of
// the region is accepted without being placed.
func (r *Region) TryAdd(b Block) bool {
	if _, ok := b.(*Divider); ok && r.atTop {
		return true
	}
	if r.Footprint(b) > r.remaining+epsilon {
		return false
	}
	r.place(b)
	return true
}

// TrySplit places the longest prefix of whole lines of b that fits and returns
// it with the rest. The prefix never ends on a blank line. It returns (nil, b)
// when b cannot be split or when not even one non-blank line fits.
func (r *Region) TrySplit(b Block) (placed, remainder Block) {
	t, ok := b.(*RichText)
	if !ok {
		return nil, b
	}

	lineHeight := t.Style.LineHeight()
	if lineHeight <= 0 {
		return nil, b
	}
	before := t.spaceBefore()
	if r.atTop {
		before = 0
	}

	lines := t.Lines(r.AvailableWidth())
	fit := int((r.remaining - before + epsilon) / lineHeight)
	if fit <= 0 {
		return nil, b
	}
	if fit >= len(lines) {
		if r.TryAdd(b) {
			return b, nil
		}
		return nil, b
	}

	// A head ending on a blank line would lose it when re-wrapped; blank
	// lines at the cut go to the tail instead.
	for fit > 0 && lines[fit-1].Start == lines[fit-1].End {
		fit--
	}
	if fit == 0 {
		return nil, b
	}

	head := &RichText{Tokens: t.Tokens[:lines[fit-1].End], Style: t.Style, continuation: t.continuation}
	tail := &RichText{Tokens: t.Tokens[lines[fit].Start:], Style: t.Style, continuation: true}
	if !r.TryAdd(head) {
		return nil, b
	}
	return head, tail
}

func (r *Region) place(b Block) {
	if g, ok := b.(*Group); ok {
		for _, c := range g.Children {
			if _, ok := c.(*Divider); ok && r.atTop {
				continue
			}
			r.place(c)
		}
		return
	}

	before := SpaceBefore(b)
	if r.atTop {
		before = 0
	}
	height := Measure(b, r.AvailableWidth()) - SpaceBefore(b)

	r.placements = append(r.placements, Placement{
		Block:  b,
		X:      r.X + r.Padding.Left,
		Y:      r.cursor + before,
		Width:  r.AvailableWidth(),
		Height: height,
	})
	r.cursor += before + height
	r.remaining = max(0, r.remaining-before-height)
	r.atTop = false
}
