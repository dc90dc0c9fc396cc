package assets

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadStyleSet loads a built-in style set by name.
// Returns ErrStyleSetNotFound if the style set does not exist.
// Returns ErrInvalidAssetName if the name contains path separators or traversal.
func LoadStyleSet(name string) ([]byte, error) {
	return defaultLoader.LoadStyleSet(name)
}

// StyleSetNames returns the names of the built-in style sets.
func StyleSetNames() []string {
	names, _ := defaultLoader.ListStyleSets()
	return names
}
