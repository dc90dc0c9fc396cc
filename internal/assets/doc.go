// Package assets provides style sets and font files for card rendering.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in style sets)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// EmbeddedLoader provides the built-in style sets (standard, free,
// large-print). It carries no font files: the built-in sets either use the
// core PDF fonts or expect their TTF files in a custom directory.
//
// FilesystemLoader reads a custom directory, with path traversal protection
// and symlink resolution.
//
// AssetResolver tries the custom FilesystemLoader first and falls back to
// EmbeddedLoader when a style set is not found there. This allows overriding
// a built-in set while keeping the others.
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.yaml          # style set (e.g., standard.yaml)
//	└── fonts/
//	    └── {file}.ttf           # font files referenced by style sets
//
// # Security
//
// Style set names and font file names are validated to prevent path traversal.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
