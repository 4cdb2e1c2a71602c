// Package config loads mdemoji YAML configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	mdemoji "github.com/alnah/go-mdemoji"
	"github.com/alnah/go-mdemoji/internal/fileutil"
	"github.com/alnah/go-mdemoji/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidField    = errors.New("invalid field value")
)

// Field length limits.
const (
	MaxPathLength      = 4096 // PATH_MAX on Linux
	MaxURLLength       = 2048 // Browser limit
	MaxClassLength     = 200  // Space-separated CSS class list
	MaxAttrNameLength  = 100  // HTML attribute name
	MaxEmojiNameLength = 100  // Shortcode name
	MaxShortcutLength  = 16   // ">:-(" and friends
	MaxStyleNameLength = 64
)

// Config holds all configuration for mdemoji convert and scan.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Style  StyleConfig  `yaml:"style"`
	Emoji  EmojiConfig  `yaml:"emoji"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
	Sanitize   bool   `yaml:"sanitize"`   // Run converted HTML through the sanitizer policy
}

// StyleConfig selects the stylesheets injected into converted documents.
type StyleConfig struct {
	Name     string `yaml:"name"`     // Document style (empty = "default")
	BasePath string `yaml:"basePath"` // Directory with styles/{name}.css overrides
	Disabled bool   `yaml:"disabled"` // No <style> block at all
}

// EmojiConfig mirrors mdemoji.Options. Pointer fields distinguish "unset"
// from an explicit false.
type EmojiConfig struct {
	Dir              string          `yaml:"emojiDir"`
	BaseURL          string          `yaml:"baseUrl"`
	MergeDefs        *bool           `yaml:"mergeDefs"`
	UnicodeSet       string          `yaml:"unicodeSet"`
	Shortcuts        ShortcutsConfig `yaml:"shortcuts"`
	MergeShortcuts   *bool           `yaml:"mergeShortcuts"`
	AllowList        []string        `yaml:"allowList"`
	ImgAttributes    any             `yaml:"imgAttributes"` // checked at render time
	CustomSpanClass  string          `yaml:"customSpanClass"`
	UnicodeSpanClass string          `yaml:"unicodeSpanClass"`
	IgnoreAttr       string          `yaml:"ignoreAttr"`
}

// ShortcutsConfig accepts either a boolean or a mapping of emoji name to
// shortcut text (a string or a list of strings):
//
//	shortcuts: true
//	shortcuts:
//	  blobcat: "=^.^="
//	  smiley: [":)", ":]"]
type ShortcutsConfig struct {
	Enabled bool
	Table   mdemoji.Shortcuts
}

// UnmarshalYAML implements yaml.InterfaceUnmarshaler.
func (s *ShortcutsConfig) UnmarshalYAML(unmarshal func(any) error) error {
	var enabled bool
	if err := unmarshal(&enabled); err == nil {
		*s = ShortcutsConfig{Enabled: enabled}
		return nil
	}

	var raw map[string]any
	if err := unmarshal(&raw); err != nil {
		return fmt.Errorf("%w: shortcuts must be a boolean or a mapping", ErrInvalidField)
	}

	table := make(mdemoji.Shortcuts, len(raw))
	for name, v := range raw {
		switch val := v.(type) {
		case string:
			table[name] = []string{val}
		case []any:
			list := make([]string, 0, len(val))
			for _, item := range val {
				str, ok := item.(string)
				if !ok {
					return fmt.Errorf("%w: shortcuts.%s: entries must be strings", ErrInvalidField, name)
				}
				list = append(list, str)
			}
			table[name] = list
		default:
			return fmt.Errorf("%w: shortcuts.%s: must be a string or a list", ErrInvalidField, name)
		}
	}
	*s = ShortcutsConfig{Table: table}
	return nil
}

// Source converts the setting to an mdemoji.ShortcutSource.
func (s ShortcutsConfig) Source() mdemoji.ShortcutSource {
	if s.Table != nil {
		return mdemoji.ShortcutsCustom(s.Table)
	}
	return mdemoji.ShortcutsFromBool(s.Enabled)
}

// Options converts the emoji section to mdemoji.Options. Empty fields keep
// the library defaults.
func (e EmojiConfig) Options() mdemoji.Options {
	opts := mdemoji.Options{
		EmojiDir:         e.Dir,
		URLPrefix:        e.BaseURL,
		MergeDefs:        e.MergeDefs,
		UnicodeSet:       mdemoji.UnicodeSet(e.UnicodeSet),
		Shortcuts:        e.Shortcuts.Source(),
		MergeShortcuts:   e.MergeShortcuts,
		AllowList:        e.AllowList,
		CustomSpanClass:  e.CustomSpanClass,
		UnicodeSpanClass: e.UnicodeSpanClass,
		IgnoreAttr:       e.IgnoreAttr,
	}
	if e.ImgAttributes != nil {
		opts.ImgAttributes = mdemoji.StaticAttrs{Value: e.ImgAttributes}
	}
	return opts
}

// Validate checks field lengths and enumerations.
// Called automatically by LoadConfig, but available for callers that build a
// Config by hand.
func (c *Config) Validate() error {
	checks := []struct {
		field string
		value string
		max   int
	}{
		{"input.defaultDir", c.Input.DefaultDir, MaxPathLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"style.name", c.Style.Name, MaxStyleNameLength},
		{"style.basePath", c.Style.BasePath, MaxPathLength},
		{"emoji.emojiDir", c.Emoji.Dir, MaxPathLength},
		{"emoji.baseUrl", c.Emoji.BaseURL, MaxURLLength},
		{"emoji.customSpanClass", c.Emoji.CustomSpanClass, MaxClassLength},
		{"emoji.unicodeSpanClass", c.Emoji.UnicodeSpanClass, MaxClassLength},
		{"emoji.ignoreAttr", c.Emoji.IgnoreAttr, MaxAttrNameLength},
	}
	for _, chk := range checks {
		if err := validateFieldLength(chk.field, chk.value, chk.max); err != nil {
			return err
		}
	}

	if err := mdemoji.ValidateUnicodeSet(c.Emoji.UnicodeSet); err != nil {
		return fmt.Errorf("emoji.unicodeSet: %w", err)
	}

	if strings.ContainsAny(c.Emoji.IgnoreAttr, " \t\n\"'=<>/") {
		return fmt.Errorf("%w: emoji.ignoreAttr %q is not an attribute name", ErrInvalidField, c.Emoji.IgnoreAttr)
	}
	for _, field := range []struct{ name, value string }{
		{"emoji.customSpanClass", c.Emoji.CustomSpanClass},
		{"emoji.unicodeSpanClass", c.Emoji.UnicodeSpanClass},
	} {
		if strings.ContainsAny(field.value, "\"<>") {
			return fmt.Errorf("%w: %s %q contains quote or angle bracket", ErrInvalidField, field.name, field.value)
		}
	}

	for i, name := range c.Emoji.AllowList {
		if err := validateFieldLength(fmt.Sprintf("emoji.allowList[%d]", i), name, MaxEmojiNameLength); err != nil {
			return err
		}
	}
	for name, list := range c.Emoji.Shortcuts.Table {
		if err := validateFieldLength("emoji.shortcuts", name, MaxEmojiNameLength); err != nil {
			return err
		}
		for i, sc := range list {
			if err := validateFieldLength(fmt.Sprintf("emoji.shortcuts.%s[%d]", name, i), sc, MaxShortcutLength); err != nil {
				return err
			}
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a configuration that leaves every emoji option at
// its library default.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths lists where resolveConfigPath looks for name, in order:
// current directory, then the user config directory, .yaml before .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-mdemoji", name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing path from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
