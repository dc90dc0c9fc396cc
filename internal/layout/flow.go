package layout

// FlowOptions tunes a Flow run.
type FlowOptions struct {
	// Split allows a RichText block that does not fit to be divided at a
	// line boundary, the rest continuing in the next region.
	Split bool
}

// FlowResult is a drained flow.
type FlowResult struct {
	Regions []*Region
	Split   bool
}

// Placements returns the committed placements of every region, in order.
func (f *FlowResult) Placements() [][]Placement {
	out := make([][]Placement, len(f.Regions))
	for i, r := range f.Regions {
		out[i] = r.Placements()
	}
	return out
}

// Flow places blocks into regions, top to bottom, one region after another.
// It returns a *OverflowError when the regions run out first.
//
// A divider is dropped when it would end the queue or when another divider
// follows it, and discarded when the current region cannot hold it together
// with the block that follows it.
// A Group is placed whole or moved whole to the next region.
func Flow(blocks []Block, regions []*Region, opts FlowOptions) (*FlowResult, error) {
	q := NewQueue(blocks)
	current := 0
	splitFailed := false // the head could not be split in the region it left

	for q.Len() > 0 {
		if current >= len(regions) {
			head, _ := q.Peek()
			return nil, &OverflowError{
				Remaining:    q.Len(),
				Head:         head,
				Unsplittable: !opts.Split || splitFailed || !Splittable(head),
			}
		}
		r := regions[current]
		b, _ := q.Pop()

		if d, ok := b.(*Divider); ok {
			next, ok := q.Peek()
			if !ok {
				break
			}
			if _, ok := next.(*Divider); ok {
				continue
			}
			width := r.AvailableWidth()
			if r.Remaining() < Measure(d, width)+Measure(next, width) {
				continue
			}
		}

		if r.TryAdd(b) {
			continue
		}

		if opts.Split {
			if placed, rest := r.TrySplit(b); placed != nil {
				if rest != nil {
					q.PushFront(rest)
				}
				continue
			}
		}

		splitFailed = opts.Split
		q.PushFront(b)
		current++
	}

	return &FlowResult{Regions: regions, Split: opts.Split}, nil
}
