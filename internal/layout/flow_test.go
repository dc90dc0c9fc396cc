package layout

import (
	"errors"
	"testing"
)

// ---------------------------------------------------------------------------
// TestFlow_Scenarios - Reference scenarios for the region-filling algorithm
// ---------------------------------------------------------------------------

func TestFlow_DividerBetweenParagraphs(t *testing.T) {
	t.Parallel()

	p1, d, p2 := para(1, 10), divider(), para(1, 10)
	rs := regions(1, 25)

	if _, err := Flow([]Block{p1, d, p2}, rs, FlowOptions{}); err != nil {
		t.Fatalf("Flow() error = %v", err)
	}
	got := placed(rs[0])
	if len(got) != 3 || got[0] != p1 || got[1] != d || got[2] != p2 {
		t.Errorf("placed %d blocks, want p1, divider, p2", len(got))
	}
}

func TestFlow_TrailingDividerDropped(t *testing.T) {
	t.Parallel()

	p := para(1, 10)
	rs := regions(1, 25)

	if _, err := Flow([]Block{p, divider()}, rs, FlowOptions{}); err != nil {
		t.Fatalf("Flow() error = %v", err)
	}
	got := placed(rs[0])
	if len(got) != 1 || got[0] != p {
		t.Errorf("placed %d blocks, want only the paragraph", len(got))
	}
}

// A 24mm paragraph against a region holding 22mm once padded.
func paddedRegions(n int) []*Region {
	out := make([]*Region, n)
	for i := range out {
		out[i] = NewRegion(0, 0, 50, 25, Padding{Top: 1, Bottom: 2})
	}
	return out
}

func TestFlow_TooSmallWithoutSplit(t *testing.T) {
	t.Parallel()

	_, err := Flow([]Block{para(2, 12)}, paddedRegions(1), FlowOptions{})

	if !errors.Is(err, ErrTemplateTooSmall) {
		t.Fatalf("Flow() error = %v, want ErrTemplateTooSmall", err)
	}
	if !errors.Is(err, ErrUnsplittableOverflow) {
		t.Errorf("Flow() error = %v, want ErrUnsplittableOverflow without split mode", err)
	}
	var overflow *OverflowError
	if !errors.As(err, &overflow) || overflow.Remaining != 1 {
		t.Errorf("OverflowError = %+v, want 1 block remaining", overflow)
	}
}

func TestFlow_SplitAcrossRegions(t *testing.T) {
	t.Parallel()

	t.Run("second region takes the remainder", func(t *testing.T) {
		t.Parallel()

		rs := paddedRegions(2)
		if _, err := Flow([]Block{para(2, 12)}, rs, FlowOptions{Split: true}); err != nil {
			t.Fatalf("Flow() error = %v", err)
		}
		for i, r := range rs {
			ps := r.Placements()
			if len(ps) != 1 || ps[0].Height != 12 {
				t.Errorf("region %d: %d placements, want one 12mm fragment", i, len(ps))
			}
		}
	})

	t.Run("no second region", func(t *testing.T) {
		t.Parallel()

		_, err := Flow([]Block{para(2, 12)}, paddedRegions(1), FlowOptions{Split: true})
		if !errors.Is(err, ErrTemplateTooSmall) {
			t.Fatalf("Flow() error = %v, want ErrTemplateTooSmall", err)
		}
		// Not one line of the remainder fits what is left of the region.
		if !errors.Is(err, ErrUnsplittableOverflow) {
			t.Errorf("Flow() error = %v, want ErrUnsplittableOverflow", err)
		}
	})

	t.Run("line taller than every region", func(t *testing.T) {
		t.Parallel()

		_, err := Flow([]Block{para(3, 30)}, paddedRegions(2), FlowOptions{Split: true})
		var overflow *OverflowError
		if !errors.As(err, &overflow) {
			t.Fatalf("Flow() error = %v, want *OverflowError", err)
		}
		if !overflow.Unsplittable || !errors.Is(err, ErrUnsplittableOverflow) {
			t.Errorf("OverflowError = %+v, want a failed split reported", overflow)
		}
	})
}

func TestFlow_ZeroRegionsSplittableHead(t *testing.T) {
	t.Parallel()

	// Never offered to a region, so nothing says it could not be split.
	_, err := Flow([]Block{para(2, 5)}, nil, FlowOptions{Split: true})
	if !errors.Is(err, ErrTemplateTooSmall) {
		t.Fatalf("Flow() error = %v, want ErrTemplateTooSmall", err)
	}
	if errors.Is(err, ErrUnsplittableOverflow) {
		t.Error("a text block never offered for splitting reported as unsplittable")
	}
}

func TestFlow_GroupDeferredWhole(t *testing.T) {
	t.Parallel()

	heading, body := para(1, 5), para(2, 4)
	rs := regions(2, 20)

	// 10mm left in the first region after the opener.
	blocks := []Block{para(1, 10), NewGroup(heading, body)}
	if _, err := Flow(blocks, rs, FlowOptions{Split: true}); err != nil {
		t.Fatalf("Flow() error = %v", err)
	}

	if got := placed(rs[0]); len(got) != 1 {
		t.Errorf("first region holds %d blocks, want only the opener", len(got))
	}
	got := placed(rs[1])
	if len(got) != 2 || got[0] != heading || got[1] != body {
		t.Errorf("second region holds %d blocks, want heading and body", len(got))
	}
}

// ---------------------------------------------------------------------------
// TestFlow_Dividers - No rule left stranded
// ---------------------------------------------------------------------------

func TestFlow_DividerDiscardedWhenNextDoesNotFit(t *testing.T) {
	t.Parallel()

	rs := regions(2, 20)
	next := para(1, 13)

	// 12mm left: room for the divider, not for the paragraph behind it.
	if _, err := Flow([]Block{para(1, 8), divider(), next}, rs, FlowOptions{}); err != nil {
		t.Fatalf("Flow() error = %v", err)
	}

	for i, r := range rs {
		for _, b := range placed(r) {
			if _, ok := b.(*Divider); ok {
				t.Errorf("region %d: divider placed", i)
			}
		}
	}
	if got := placed(rs[1]); len(got) != 1 || got[0] != next {
		t.Errorf("second region holds %d blocks, want the next paragraph", len(got))
	}
}

func TestFlow_DividerDiscardDoesNotForceRegionBreak(t *testing.T) {
	t.Parallel()

	rs := regions(2, 20)
	next := para(1, 11.5)

	// 12mm left: the divider and next need 12.75, next alone fits.
	if _, err := Flow([]Block{para(1, 8), divider(), next}, rs, FlowOptions{}); err != nil {
		t.Fatalf("Flow() error = %v", err)
	}

	got := placed(rs[0])
	if len(got) != 2 || got[1] != next {
		t.Errorf("first region holds %d blocks, want the opener and next without divider", len(got))
	}
	if n := len(rs[1].Placements()); n != 0 {
		t.Errorf("second region holds %d blocks, want none", n)
	}
}

func TestFlow_NoOrphanDivider(t *testing.T) {
	t.Parallel()

	queues := map[string]func() []Block{
		"mixed": func() []Block {
			return []Block{
				para(2, 4), divider(), para(3, 4), divider(),
				NewGroup(para(1, 4), para(2, 4)), para(1, 4), divider(), para(2, 4), divider(),
			}
		},
		"adjacent dividers": func() []Block {
			return []Block{
				para(2, 4), divider(), divider(), para(3, 4), divider(), divider(), divider(), para(2, 4),
			}
		},
	}

	for name, blocks := range queues {
		for _, height := range []float64{14, 17, 23, 30, 41} {
			rs := regions(6, height)
			if _, err := Flow(blocks(), rs, FlowOptions{Split: true}); err != nil {
				t.Fatalf("%s, height %v: Flow() error = %v", name, height, err)
			}

			for i, r := range rs {
				ps := r.Placements()
				for j, p := range ps {
					if _, ok := p.Block.(*Divider); !ok {
						continue
					}
					if j == 0 {
						t.Errorf("%s, height %v, region %d: divider placed at the top", name, height, i)
					}
					if j == len(ps)-1 {
						t.Errorf("%s, height %v, region %d: divider is the last block", name, height, i)
					}
				}
			}
		}
	}
}

func TestFlow_AdjacentDividersCollapse(t *testing.T) {
	t.Parallel()

	first, last := para(1, 8), para(1, 13)
	rs := regions(2, 20)
	if _, err := Flow([]Block{first, divider(), divider(), last}, rs, FlowOptions{}); err != nil {
		t.Fatalf("Flow() error = %v", err)
	}

	if got := placed(rs[0]); len(got) != 1 || got[0] != first {
		t.Errorf("region 0 = %v, want only the first paragraph", got)
	}
	if got := placed(rs[1]); len(got) != 1 || got[0] != last {
		t.Errorf("region 1 = %v, want only the last paragraph", got)
	}
}

// ---------------------------------------------------------------------------
// TestFlow_Properties - Drain and atomicity
// ---------------------------------------------------------------------------

func TestFlow_Drains(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		blocks  []Block
		regions int
		height  float64
	}{
		{"exact fit", []Block{para(2, 5), para(2, 5)}, 1, 20},
		{"spill into second region", []Block{para(3, 5), para(3, 5)}, 2, 15},
		{"image and spacer", []Block{&Image{Path: "a.png", Height: 10}, &Spacer{Height: 5}, para(1, 5)}, 1, 20},
		{"empty queue", nil, 1, 10},
	}

	for _, tt := range tests {
		res, err := Flow(tt.blocks, regions(tt.regions, tt.height), FlowOptions{})
		if err != nil {
			t.Errorf("%s: Flow() error = %v", tt.name, err)
			continue
		}
		n := 0
		for _, ps := range res.Placements() {
			n += len(ps)
		}
		if n != len(tt.blocks) {
			t.Errorf("%s: placed %d blocks, want %d", tt.name, n, len(tt.blocks))
		}
	}
}

func TestFlow_GroupNeverSplit(t *testing.T) {
	t.Parallel()

	g := NewGroup(para(2, 5), para(2, 5))
	_, err := Flow([]Block{g}, regions(3, 15), FlowOptions{Split: true})

	if !errors.Is(err, ErrUnsplittableOverflow) {
		t.Errorf("Flow() error = %v, want ErrUnsplittableOverflow", err)
	}
}

func TestFlow_ZeroRegions(t *testing.T) {
	t.Parallel()

	_, err := Flow([]Block{para(1, 1)}, nil, FlowOptions{})
	if !errors.Is(err, ErrTemplateTooSmall) {
		t.Errorf("Flow() error = %v, want ErrTemplateTooSmall", err)
	}
}
