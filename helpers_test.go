package card2pdf

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// newTestRenderer returns a renderer on the built-in standard style set.
func newTestRenderer(t *testing.T, opts ...Option) *Renderer {
	t.Helper()

	r, err := NewRenderer(opts...)
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	return r
}

// writePNG writes a w x h PNG into dir and returns its path.
func writePNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := range w {
		for y := range h {
			img.Set(x, y, color.RGBA{R: 120, G: 80, B: 40, A: 255})
		}
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating %s: %v", name, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encoding %s: %v", name, err)
	}
	return path
}

// goblin is a monster that fits a small card.
func goblin() *Monster {
	return &Monster{
		Header:          Header{Title: "Goblin", Subtitle: "Small humanoid, neutral evil"},
		ArmorClass:      "15 (leather armor, shield)",
		HitPoints:       "7 (2d6)",
		Speed:           "30 ft.",
		Strength:        "8 (-1)",
		Dexterity:       "14 (+2)",
		Constitution:    "10 (+0)",
		Intelligence:    "10 (+0)",
		Wisdom:          "8 (-1)",
		Charisma:        "8 (-1)",
		ChallengeRating: "1/4",
		Source:          "Basic Rules",
		Attributes:      []Section{{"Skills", "Stealth +6"}, {"Senses", "darkvision 60 ft."}},
		Abilities:       []Section{{"Nimble Escape", "The goblin can take the Disengage or Hide action as a bonus action."}},
		Actions:         []Section{{"Scimitar", "+4 to hit, 5 ft., 5 (1d6 + 2) slashing damage."}},
	}
}

// wordy returns a monster whose actions need more room than count suggests.
func wordy(count int) *Monster {
	m := goblin()
	m.Title = "Ancient Verbose Dragon"
	body := strings.Repeat("The dragon exhales a long and winding sentence of fire. ", 6)
	m.Actions = nil
	for i := range count {
		m.Actions = append(m.Actions, Section{Heading: "Breath " + string(rune('A'+i%26)), Body: body})
	}
	return m
}

// longParagraph returns a monster with one action far longer than any
// single region.
func longParagraph() *Monster {
	m := goblin()
	m.Actions = []Section{{Heading: "Monologue", Body: strings.Repeat("word ", 1200)}}
	return m
}
