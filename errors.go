package card2pdf

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alnah/go-card2pdf/internal/layout"
)

// Sentinel errors for library operations.
var (
	// Layout capacity errors. Escalation recovers from them until every
	// template has been tried.
	ErrTemplateTooSmall     = layout.ErrTemplateTooSmall
	ErrUnsplittableOverflow = layout.ErrUnsplittableOverflow

	// ErrInvalidBlockData means a card entry is malformed. It is never retried.
	ErrInvalidBlockData = errors.New("invalid card data")

	ErrNoTemplates     = errors.New("no templates configured")
	ErrUnknownTemplate = errors.New("unknown template")
	ErrImageLoad       = errors.New("failed to load image")
	ErrPDFGeneration   = errors.New("PDF generation failed")
	ErrEmptyInput      = errors.New("card file contains no entries")
	ErrPoolClosed      = errors.New("renderer pool is closed")

	// Asset loading errors.
	ErrStyleSetNotFound = errors.New("style set not found")
	ErrFontNotFound     = errors.New("font not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)

// BlockDataError reports a malformed card entry.
type BlockDataError struct {
	Card  string // title, or the entry position when the title is missing
	Field string
	Msg   string
}

func (e *BlockDataError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s: %s", ErrInvalidBlockData, e.Card, e.Msg)
	}
	return fmt.Sprintf("%s: %s: %s: %s", ErrInvalidBlockData, e.Card, e.Field, e.Msg)
}

func (e *BlockDataError) Is(target error) bool { return target == ErrInvalidBlockData }

// TooSmallError reports a card that fits none of the templates.
type TooSmallError struct {
	Title string
	Tried []string // attempts in order, e.g. "small", "small+split"
	Err   error
}

func (e *TooSmallError) Error() string {
	return fmt.Sprintf("card %q does not fit any template (tried %s)", e.Title, strings.Join(e.Tried, ", "))
}

func (e *TooSmallError) Unwrap() error { return e.Err }

func (e *TooSmallError) Is(target error) bool { return target == ErrTemplateTooSmall }
