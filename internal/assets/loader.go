package assets

import (
	"fmt"
	"strings"
)

// Built-in style names.
const (
	EmojiStyleName   = "emoji"
	DefaultStyleName = "default"
)

// AssetLoader loads CSS styles by name (without the .css extension).
// Implementations return ErrStyleNotFound for unknown names and
// ErrInvalidAssetName for names with path components.
type AssetLoader interface {
	LoadStyle(name string) (string, error)
}

// ValidateAssetName rejects empty names and names carrying path separators,
// dots or NUL bytes, so a style name can never leave the styles directory.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
