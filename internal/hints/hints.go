// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound suggests --config or creating a config under
// ~/.config/go-mdemoji/ when one of the searched paths points there.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepathSlash(p), ".config/go-mdemoji") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForEmojiDir explains where emoji images are looked up.
func ForEmojiDir(dir string) string {
	return format("create " + dir + " or point --emoji-dir at your images")
}

// ForUnicodeSet lists the accepted unicode set names.
func ForUnicodeSet() string {
	return format("valid sets: full, light, none")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound lists the styles that do exist.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// filepathSlash normalizes Windows separators for substring checks.
func filepathSlash(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
