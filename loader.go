package card2pdf

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-card2pdf/internal/fileutil"
	"github.com/alnah/go-card2pdf/internal/yamlutil"
)

// Entry is one card of a card file. Err is set, and Card is nil, when the
// entry is malformed; the other entries of the file are still usable.
type Entry struct {
	Source string // card file the entry came from
	Index  int    // position in the file, starting at 1
	Card   Card
	Err    error
}

// Name identifies the entry in messages: its title or its position.
func (e Entry) Name() string {
	if e.Card != nil && e.Card.Info().Title != "" {
		return e.Card.Info().Title
	}
	return fmt.Sprintf("%s#%d", filepath.Base(e.Source), e.Index)
}

// LoadCards reads a card file: a YAML list of entries. Entries without a
// kind field are of kind def. Relative image paths resolve against the
// file's directory.
func LoadCards(path string, def Kind) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading card file: %w", err)
	}
	entries, err := ParseCards(data, filepath.Dir(path), def)
	for i := range entries {
		entries[i].Source = path
	}
	return entries, err
}

// ParseCards decodes card entries. Only a document that is not a YAML list
// fails as a whole; malformed entries are reported in their Entry.
func ParseCards(data []byte, baseDir string, def Kind) ([]Entry, error) {
	if err := validateKind(def); err != nil {
		return nil, err
	}

	var raw []any
	if err := yamlutil.UnmarshalOrdered(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: parsing card file: %v", ErrInvalidBlockData, err)
	}
	if len(raw) == 0 {
		return nil, ErrEmptyInput
	}

	entries := make([]Entry, 0, len(raw))
	for i, item := range raw {
		e := Entry{Index: i + 1}
		fields, ok := item.(yamlutil.MapSlice)
		if !ok {
			e.Err = &BlockDataError{Card: fmt.Sprintf("entry %d", i+1), Msg: "entry must be a mapping"}
			entries = append(entries, e)
			continue
		}
		e.Card, e.Err = decodeCard(fields, baseDir, def, i+1)
		if e.Err != nil {
			e.Card = nil
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func validateKind(k Kind) error {
	for _, known := range Kinds {
		if k == known {
			return nil
		}
	}
	return &BlockDataError{Card: "-", Field: "kind", Msg: fmt.Sprintf("unknown kind %q", k)}
}

// fieldDecoder copies the fields of one entry into a card, collecting the
// first error.
type fieldDecoder struct {
	card string
	err  error
}

func (d *fieldDecoder) fail(field, format string, args ...any) {
	if d.err == nil {
		d.err = &BlockDataError{Card: d.card, Field: field, Msg: fmt.Sprintf(format, args...)}
	}
}

func decodeCard(fields yamlutil.MapSlice, baseDir string, def Kind, index int) (Card, error) {
	d := &fieldDecoder{card: fmt.Sprintf("entry %d", index)}

	kind := def
	values := make(map[string]any, len(fields))
	for _, item := range fields {
		key := fmt.Sprint(item.Key)
		if _, dup := values[key]; dup {
			d.fail(key, "duplicate field")
		}
		values[key] = item.Value
	}
	if v, ok := values["kind"]; ok {
		kind = Kind(d.scalar("kind", v))
		delete(values, "kind")
	}
	if title := d.scalar("title", values["title"]); title != "" {
		d.card = title
	}
	if err := validateKind(kind); err != nil {
		d.fail("kind", "unknown kind %q", kind)
		return nil, d.err
	}

	header := Header{
		Title:     d.scalar("title", values["title"]),
		Subtitle:  d.scalar("subtitle", values["subtitle"]),
		Artist:    d.scalar("artist", values["artist"]),
		ImagePath: fileutil.ResolvePath(baseDir, d.scalar("image_path", values["image_path"])),
	}
	if header.Title == "" {
		d.fail("title", "required")
	}

	var card Card
	var known map[string]bool
	switch kind {
	case KindMonster:
		card, known = d.monster(header, values), monsterFields
	case KindItem:
		card, known = d.item(header, values), itemFields
	}

	for _, item := range fields {
		key := fmt.Sprint(item.Key)
		if !known[key] && !headerFields[key] && key != "kind" {
			d.fail(key, "unknown field")
		}
	}
	if d.err != nil {
		return nil, d.err
	}
	return card, nil
}

var headerFields = map[string]bool{"title": true, "subtitle": true, "artist": true, "image_path": true}

var monsterFields = map[string]bool{
	"armor_class": true, "max_hit_points": true, "speed": true,
	"strength": true, "dexterity": true, "constitution": true,
	"intelligence": true, "wisdom": true, "charisma": true,
	"challenge_rating": true, "experience_points": true, "source": true,
	"attributes": true, "abilities": true, "actions": true, "reactions": true,
	"legendary": true,
}

var itemFields = map[string]bool{"category": true, "subcategory": true, "description": true}

func (d *fieldDecoder) monster(h Header, v map[string]any) *Monster {
	m := &Monster{
		Header:           h,
		ArmorClass:       d.scalar("armor_class", v["armor_class"]),
		HitPoints:        d.scalar("max_hit_points", v["max_hit_points"]),
		Speed:            d.scalar("speed", v["speed"]),
		ChallengeRating:  d.scalar("challenge_rating", v["challenge_rating"]),
		ExperiencePoints: d.scalar("experience_points", v["experience_points"]),
		Source:           d.scalar("source", v["source"]),
		Attributes:       d.sections("attributes", v["attributes"]),
		Abilities:        d.sections("abilities", v["abilities"]),
		Actions:          d.sections("actions", v["actions"]),
		Reactions:        d.sections("reactions", v["reactions"]),
		Legendary:        d.legendary("legendary", v["legendary"]),
	}

	scores := []*string{&m.Strength, &m.Dexterity, &m.Constitution, &m.Intelligence, &m.Wisdom, &m.Charisma}
	for i, key := range []string{"strength", "dexterity", "constitution", "intelligence", "wisdom", "charisma"} {
		formatted, err := FormatAbility(d.scalar(key, v[key]))
		if err != nil {
			d.fail(key, "%v", err)
		}
		*scores[i] = formatted
	}
	return m
}

func (d *fieldDecoder) item(h Header, v map[string]any) *Item {
	return &Item{
		Header:      h,
		Category:    d.scalar("category", v["category"]),
		Subcategory: d.scalar("subcategory", v["subcategory"]),
		Description: d.scalar("description", v["description"]),
	}
}

// scalar converts a YAML scalar to text. Mappings and lists are rejected.
func (d *fieldDecoder) scalar(field string, v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case yamlutil.MapSlice, map[string]any, []any:
		d.fail(field, "expected text, got %s", typeName(v))
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// sections decodes an ordered "heading: body" mapping.
func (d *fieldDecoder) sections(field string, v any) []Section {
	if v == nil {
		return nil
	}
	m, ok := v.(yamlutil.MapSlice)
	if !ok {
		d.fail(field, "expected a mapping of heading to text, got %s", typeName(v))
		return nil
	}
	out := make([]Section, 0, len(m))
	for _, item := range m {
		heading := fmt.Sprint(item.Key)
		out = append(out, Section{Heading: heading, Body: d.scalar(field+"."+heading, item.Value)})
	}
	return out
}

// legendary decodes a list whose entries are paragraphs or single
// "heading: body" mappings.
func (d *fieldDecoder) legendary(field string, v any) []Legendary {
	if v == nil {
		return nil
	}
	list, ok := v.([]any)
	if !ok {
		d.fail(field, "expected a list, got %s", typeName(v))
		return nil
	}
	out := make([]Legendary, 0, len(list))
	for i, entry := range list {
		if m, ok := entry.(yamlutil.MapSlice); ok {
			if len(m) != 1 {
				d.fail(fmt.Sprintf("%s[%d]", field, i), "expected a single heading, got %d", len(m))
				continue
			}
			heading := fmt.Sprint(m[0].Key)
			out = append(out, Legendary{Heading: heading, Body: d.scalar(field+"."+heading, m[0].Value)})
			continue
		}
		out = append(out, Legendary{Body: d.scalar(fmt.Sprintf("%s[%d]", field, i), entry)})
	}
	return out
}

func typeName(v any) string {
	switch v.(type) {
	case yamlutil.MapSlice, map[string]any:
		return "a mapping"
	case []any:
		return "a list"
	}
	return fmt.Sprintf("%T", v)
}

// IsDataError reports whether err is a card data error.
func IsDataError(err error) bool {
	return errors.Is(err, ErrInvalidBlockData)
}
