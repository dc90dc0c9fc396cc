package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMeasure(t *testing.T) {
	t.Parallel()

	spaced := &RichText{Tokens: para(2, 3).Tokens, Style: wordStyle{lineHeight: 3, spaceBefore: 1}}

	tests := []struct {
		name  string
		block Block
		want  float64
	}{
		{"paragraph", para(3, 4), 12},
		{"space before counts", spaced, 7},
		{"divider", divider(), 1.25},
		{"spacer", &Spacer{Width: 3, Height: 2}, 2},
		{"image", &Image{Path: "x.png", Width: 10, Height: 8}, 8},
		{"group sums children", NewGroup(para(1, 4), spaced), 11},
		{"table takes tallest cell per row", &Table{
			Rows:        [][]*RichText{{para(1, 4), para(2, 4)}, {para(1, 4)}},
			SpaceBefore: 1,
		}, 13},
	}

	for _, tt := range tests {
		if got := Measure(tt.block, 40); got != tt.want {
			t.Errorf("%s: Measure() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSpaceBefore(t *testing.T) {
	t.Parallel()

	spaced := &RichText{Tokens: para(1, 3).Tokens, Style: wordStyle{lineHeight: 3, spaceBefore: 1.5}}
	cont := &RichText{Tokens: spaced.Tokens, Style: spaced.Style, continuation: true}

	tests := []struct {
		name  string
		block Block
		want  float64
	}{
		{"text", spaced, 1.5},
		{"continuation", cont, 0},
		{"group uses first child", NewGroup(spaced, para(1, 1)), 1.5},
		{"empty group", NewGroup(), 0},
		{"divider", divider(), 0},
	}

	for _, tt := range tests {
		if got := SpaceBefore(tt.block); got != tt.want {
			t.Errorf("%s: SpaceBefore() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestTable_Widths(t *testing.T) {
	t.Parallel()

	row := []*RichText{para(1, 1), para(1, 1), para(1, 1), para(1, 1)}

	tests := []struct {
		name   string
		widths []float64
		want   []float64
	}{
		{"equal shares", nil, []float64{10, 10, 10, 10}},
		{"fixed and shared", []float64{16, 0}, []float64{16, 8, 8, 8}},
		{"all fixed", []float64{1, 2, 3, 4}, []float64{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		tbl := &Table{Rows: [][]*RichText{row}, ColumnWidths: tt.widths}
		if diff := cmp.Diff(tt.want, tbl.Widths(40)); diff != "" {
			t.Errorf("%s: Widths() mismatch (-want +got):\n%s", tt.name, diff)
		}
	}
}

// blockCounter checks that every kind reaches its visitor method.
type blockCounter struct{ seen []string }

func (c *blockCounter) VisitRichText(*RichText) { c.seen = append(c.seen, "text") }
func (c *blockCounter) VisitTable(*Table)       { c.seen = append(c.seen, "table") }
func (c *blockCounter) VisitDivider(*Divider)   { c.seen = append(c.seen, "divider") }
func (c *blockCounter) VisitSpacer(*Spacer)     { c.seen = append(c.seen, "spacer") }
func (c *blockCounter) VisitImage(*Image)       { c.seen = append(c.seen, "image") }
func (c *blockCounter) VisitGroup(*Group)       { c.seen = append(c.seen, "group") }

func TestAccept(t *testing.T) {
	t.Parallel()

	var c blockCounter
	for _, b := range []Block{para(1, 1), &Table{}, divider(), &Spacer{}, &Image{}, NewGroup()} {
		b.Accept(&c)
	}

	want := []string{"text", "table", "divider", "spacer", "image", "group"}
	if diff := cmp.Diff(want, c.seen); diff != "" {
		t.Errorf("visited kinds mismatch (-want +got):\n%s", diff)
	}
}
