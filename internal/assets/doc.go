// Package assets provides the stylesheets injected into converted documents.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in styles)
//	    ├── FilesystemLoader  - loads from a custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// Built-in styles are "emoji" (sizing for inline emoji spans and images,
// always injected unless styling is disabled), "default" and "minimal"
// (document styles).
//
// A custom base path overrides any of them by name:
//
//	{basePath}/
//	└── styles/
//	    └── {name}.css
//
// # Security
//
// Style names are validated to prevent path traversal. FilesystemLoader
// resolves symlinks and verifies paths stay within the base path.
package assets
