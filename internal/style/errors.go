package style

import "errors"

// Sentinel errors for style operations.
var (
	ErrInvalidSet    = errors.New("invalid style set")
	ErrUnknownStyle  = errors.New("unknown style")
	ErrUnknownFamily = errors.New("unknown font family")
	ErrFontLoad      = errors.New("failed to load font")
	ErrInvalidColor  = errors.New("invalid color")
)
