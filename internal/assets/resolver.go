package assets

import (
	"errors"
	"strings"
)

// AssetResolver tries a custom directory first and falls back to the
// embedded styles when the custom directory does not have the name.
type AssetResolver struct {
	custom   AssetLoader // nil without a custom path
	embedded AssetLoader
}

// NewAssetResolver creates an AssetResolver. An empty customBasePath uses
// embedded styles only; an invalid one is an error.
func NewAssetResolver(customBasePath string) (*AssetResolver, error) {
	r := &AssetResolver{embedded: NewEmbeddedLoader()}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		r.custom = fsLoader
	}

	return r, nil
}

// LoadStyle loads a style, preferring the custom directory.
// Only ErrStyleNotFound falls through; validation and I/O errors do not.
func (r *AssetResolver) LoadStyle(name string) (string, error) {
	if r.custom == nil {
		return r.embedded.LoadStyle(name)
	}

	content, err := r.custom.LoadStyle(name)
	if err == nil {
		return content, nil
	}
	if !errors.Is(err, ErrStyleNotFound) {
		return "", err
	}
	return r.embedded.LoadStyle(name)
}

// LoadStyles loads each name in order and joins the results with a blank
// line. Empty names are skipped.
func (r *AssetResolver) LoadStyles(names ...string) (string, error) {
	parts := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		css, err := r.LoadStyle(name)
		if err != nil {
			return "", err
		}
		parts = append(parts, strings.TrimSpace(css))
	}
	return strings.Join(parts, "\n\n"), nil
}

// Compile-time interface check.
var _ AssetLoader = (*AssetResolver)(nil)
