package card2pdf

import (
	"math"

	"github.com/alnah/go-card2pdf/internal/layout"
	"github.com/alnah/go-card2pdf/internal/yamlutil"
)

// PlanSummary describes a plan for people: the accepted template and what
// went into each region.
type PlanSummary struct {
	Card     string          `yaml:"card"`
	Kind     Kind            `yaml:"kind"`
	Template string          `yaml:"template"`
	Split    bool            `yaml:"split"`
	Tried    []string        `yaml:"tried"`
	Front    FrontSummary    `yaml:"front"`
	Regions  []RegionSummary `yaml:"regions"`
}

// FrontSummary describes the card front.
type FrontSummary struct {
	Rotated     bool      `yaml:"rotated"`
	TitleHeight float64   `yaml:"titleHeight"`
	Image       []float64 `yaml:"image,flow,omitempty"` // x, y, width, height
}

// RegionSummary describes one region and its placements.
type RegionSummary struct {
	Box       []float64      `yaml:"box,flow"` // x, y, width, height
	Remaining float64        `yaml:"remaining"`
	Blocks    []BlockSummary `yaml:"blocks"`
}

// BlockSummary describes one placement.
type BlockSummary struct {
	Block  string  `yaml:"block"`
	Y      float64 `yaml:"y"`
	Height float64 `yaml:"height"`
}

// Summary describes the plan. Lengths are rounded to 0.01 mm.
func (p *Plan) Summary() PlanSummary {
	s := PlanSummary{
		Card:     p.Card.Info().Title,
		Kind:     p.Card.Kind(),
		Template: p.Template.Name,
		Split:    p.Split,
		Tried:    p.Tried,
		Front: FrontSummary{
			Rotated:     p.Front.Rotate,
			TitleHeight: round(p.Front.TitleBox.H),
		},
	}
	if p.Front.ImagePath != "" {
		b := p.Front.ImageBox
		s.Front.Image = []float64{round(b.X), round(b.Y), round(b.W), round(b.H)}
	}

	for _, r := range p.Back.Regions {
		rs := RegionSummary{
			Box:       []float64{round(r.X), round(r.Y), round(r.Width), round(r.Height)},
			Remaining: round(r.Remaining()),
		}
		for _, pl := range r.Placements() {
			rs.Blocks = append(rs.Blocks, BlockSummary{
				Block:  layout.Describe(pl.Block),
				Y:      round(pl.Y),
				Height: round(pl.Height),
			})
		}
		s.Regions = append(s.Regions, rs)
	}
	return s
}

// MarshalSummaries renders plan summaries as a YAML list.
func MarshalSummaries(plans []*Plan) ([]byte, error) {
	out := make([]PlanSummary, 0, len(plans))
	for _, p := range plans {
		out = append(out, p.Summary())
	}
	return yamlutil.Marshal(out)
}

func round(v float64) float64 {
	return math.Round(v*100) / 100
}
