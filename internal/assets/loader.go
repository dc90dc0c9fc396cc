package assets

// DefaultStyleSetName is the name of the built-in style set used when none is configured.
const DefaultStyleSetName = "standard"

// AssetLoader defines the contract for loading style sets and fonts.
type AssetLoader interface {
	// LoadStyleSet loads a style set by name (without .yaml extension).
	// Returns ErrStyleSetNotFound if the style set doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadStyleSet(name string) ([]byte, error)

	// LoadFont loads a font file by file name (with extension).
	// Returns ErrFontNotFound if the font doesn't exist.
	LoadFont(file string) ([]byte, error)

	// ListStyleSets returns the names of the available style sets, sorted.
	ListStyleSets() ([]string, error)
}
