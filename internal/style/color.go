package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alnah/go-card2pdf/internal/layout"
)

var namedColors = map[string]layout.RGB{
	"black": {R: 0, G: 0, B: 0},
	"white": {R: 255, G: 255, B: 255},
	"red":   {R: 88, G: 23, B: 13},
}

// ParseColor parses "#rrggbb", "#rgb" or one of black, white and red
// (the stat block red). An empty string is black.
func ParseColor(s string) (layout.RGB, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return layout.RGB{}, nil
	}
	if c, ok := namedColors[s]; ok {
		return c, nil
	}

	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return layout.RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return layout.RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return layout.RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return layout.RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}
