package card2pdf

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Ability score bounds.
const (
	MinAbilityScore = 1
	MaxAbilityScore = 30
)

// AbilityNames are the column headings of the modifier table.
var AbilityNames = []string{"STR", "DEX", "CON", "INT", "WIS", "CHA"}

// crToXP maps a challenge rating to its experience points.
var crToXP = map[string]string{
	"0":   "0 or 10",
	"1/8": "25",
	"1/4": "50",
	"1/2": "100",
	"1":   "200",
	"2":   "450",
	"3":   "700",
	"4":   "1,100",
	"5":   "1,800",
	"6":   "2,300",
	"7":   "2,900",
	"8":   "3,900",
	"9":   "5,000",
	"10":  "5,900",
	"11":  "7,200",
	"12":  "8,400",
	"13":  "10,000",
	"14":  "11,500",
	"15":  "13,000",
	"16":  "15,000",
	"17":  "18,000",
	"18":  "20,000",
	"19":  "22,000",
	"20":  "25,000",
	"21":  "33,000",
	"22":  "41,000",
	"23":  "50,000",
	"24":  "62,000",
	"25":  "75,000",
	"26":  "90,000",
	"27":  "105,000",
	"28":  "120,000",
	"29":  "135,000",
	"30":  "155,000",
}

// ExperienceFor returns the experience points of a challenge rating.
func ExperienceFor(cr string) (string, bool) {
	xp, ok := crToXP[strings.TrimSpace(cr)]
	return xp, ok
}

// Modifier returns the ability modifier of a score: floor((score-10)/2).
func Modifier(score int) int {
	return int(math.Floor(float64(score-10) / 2))
}

// FormatAbility renders an ability score for the modifier table. A bare
// number gains its modifier ("15" becomes "15 (+2)"); anything else is kept
// as written.
func FormatAbility(value string) (string, error) {
	value = strings.TrimSpace(value)
	score, err := strconv.Atoi(value)
	if err != nil {
		return value, nil
	}
	if score < MinAbilityScore || score > MaxAbilityScore {
		return "", fmt.Errorf("ability score %d out of range %d-%d", score, MinAbilityScore, MaxAbilityScore)
	}
	return fmt.Sprintf("%d (%+d)", score, Modifier(score)), nil
}
