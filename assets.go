package card2pdf

import (
	"errors"
	"fmt"

	"github.com/alnah/go-card2pdf/internal/assets"
	"github.com/alnah/go-card2pdf/internal/style"
)

// DefaultStyleSet is the style set used when none is configured. It needs
// no font files.
const DefaultStyleSet = assets.DefaultStyleSetName

// StyleSets lists the style sets available from assetPath (custom sets
// first-class, built-ins as fallback). An empty path lists the built-ins.
func StyleSets(assetPath string) ([]string, error) {
	resolver, err := assets.NewAssetResolver(assetPath)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return resolver.ListStyleSets()
}

// LoadStyles loads a style set and its fonts into a new registry.
func LoadStyles(name, assetPath string) (*style.Registry, error) {
	resolver, err := assets.NewAssetResolver(assetPath)
	if err != nil {
		return nil, convertAssetError(err)
	}

	data, err := resolver.LoadStyleSet(name)
	if err != nil {
		return nil, convertAssetError(err)
	}
	set, err := style.ParseSet(data)
	if err != nil {
		return nil, fmt.Errorf("style set %s: %w", name, err)
	}

	reg, err := style.NewRegistry(set, resolver)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return reg, nil
}

// convertAssetError maps internal asset errors to public errors.
func convertAssetError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, assets.ErrStyleSetNotFound), errors.Is(err, assets.ErrInvalidAssetName):
		return wrapError(ErrStyleSetNotFound, err)
	case errors.Is(err, assets.ErrFontNotFound), errors.Is(err, style.ErrFontLoad):
		return wrapError(ErrFontNotFound, err)
	case errors.Is(err, assets.ErrInvalidBasePath), errors.Is(err, assets.ErrPathTraversal):
		return wrapError(ErrInvalidAssetPath, err)
	default:
		return err
	}
}

// wrapError creates an error that keeps the original message and matches
// the public sentinel with errors.Is.
func wrapError(sentinel, original error) error {
	return &wrappedAssetError{sentinel: sentinel, original: original}
}

type wrappedAssetError struct {
	sentinel error
	original error
}

func (e *wrappedAssetError) Error() string { return e.original.Error() }

// Unwrap returns the public sentinel; internal errors stay hidden.
func (e *wrappedAssetError) Unwrap() error { return e.sentinel }
