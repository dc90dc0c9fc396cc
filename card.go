package card2pdf

// Kind names a card type.
type Kind string

const (
	KindMonster Kind = "monster"
	KindItem    Kind = "item"
)

// Kinds lists the supported card kinds.
var Kinds = []Kind{KindMonster, KindItem}

// Card is one card entry. The set of kinds is closed: *Monster and *Item.
type Card interface {
	Kind() Kind
	Info() *Header
}

// Header holds the fields every card has.
type Header struct {
	Title     string
	Subtitle  string
	Artist    string
	ImagePath string // resolved against the card file's directory
}

// Section is one "heading: body" entry of a free-text section. Body is card
// markup.
type Section struct {
	Heading string
	Body    string
}

// Legendary is one legendary action. Entries without a heading are
// introductory paragraphs.
type Legendary struct {
	Heading string
	Body    string
}

// Monster is a creature stat block.
type Monster struct {
	Header

	ArmorClass   string
	HitPoints    string
	Speed        string
	Strength     string
	Dexterity    string
	Constitution string
	Intelligence string
	Wisdom       string
	Charisma     string

	ChallengeRating  string
	ExperiencePoints string
	Source           string

	Attributes []Section
	Abilities  []Section
	Actions    []Section
	Reactions  []Section
	Legendary  []Legendary
}

func (m *Monster) Kind() Kind    { return KindMonster }
func (m *Monster) Info() *Header { return &m.Header }

// AbilityScores returns the six scores in STR, DEX, CON, INT, WIS, CHA order.
func (m *Monster) AbilityScores() []string {
	return []string{m.Strength, m.Dexterity, m.Constitution, m.Intelligence, m.Wisdom, m.Charisma}
}

// Challenge returns the challenge line, e.g. "Challenge 1/4 (50 XP)".
func (m *Monster) Challenge() string {
	if m.ChallengeRating == "" {
		return ""
	}
	xp := m.ExperiencePoints
	if xp == "" {
		xp, _ = ExperienceFor(m.ChallengeRating)
	}
	if xp == "" {
		return "Challenge " + m.ChallengeRating
	}
	return "Challenge " + m.ChallengeRating + " (" + xp + " XP)"
}

// Item is a piece of equipment or treasure.
type Item struct {
	Header

	Category    string
	Subcategory string
	Description string
}

func (i *Item) Kind() Kind    { return KindItem }
func (i *Item) Info() *Header { return &i.Header }

// CategoryLine returns "Category (subcategory)", or what of it is set.
func (i *Item) CategoryLine() string {
	switch {
	case i.Category == "":
		return i.Subcategory
	case i.Subcategory == "":
		return i.Category
	}
	return i.Category + " (" + i.Subcategory + ")"
}
