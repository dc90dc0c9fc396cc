package assets

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValidateAssetName checks that an asset name is safe for use as a filename.
// Returns ErrInvalidAssetName if the name is empty or contains path separators,
// dots (which could allow extension manipulation), or traversal characters.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}

// ValidateFontFile checks that a font file name is a bare .ttf file name.
// Spaces are allowed ("Universal Serif.ttf"); separators and traversal are not.
func ValidateFontFile(file string) error {
	if file == "" {
		return fmt.Errorf("%w: empty font file", ErrInvalidAssetName)
	}
	if strings.ContainsAny(file, "/\\\x00") || strings.Contains(file, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, file)
	}
	if !strings.EqualFold(filepath.Ext(file), ".ttf") {
		return fmt.Errorf("%w: %q is not a .ttf file", ErrInvalidAssetName, file)
	}
	return nil
}
