package mdemoji

import (
	"os"

	"github.com/rs/zerolog"
)

// DefaultEmojiDir is the directory scanned when Options.EmojiDir is empty.
const DefaultEmojiDir = "./public/img/emoji/"

// Options configures Setup and Compose. The zero value is usable: every
// empty field takes the default listed next to it.
type Options struct {
	EmojiDir       string         // default DefaultEmojiDir
	URLPrefix      string         // default DefaultURLPrefix
	MergeDefs      *bool          // default true
	UnicodeSet     UnicodeSet     // default UnicodeFull; unknown values mean full
	Shortcuts      ShortcutSource // default ShortcutsOff
	MergeShortcuts *bool          // default true
	AllowList      []string       // empty keeps every definition

	ImgAttributes    AttrSource // default empty StaticAttrs
	CustomSpanClass  string     // default DefaultCustomSpanClass
	UnicodeSpanClass string     // default DefaultUnicodeSpanClass
	IgnoreAttr       string     // default none

	// Logger receives diagnostics. Nil means a console logger on stderr.
	Logger *zerolog.Logger
}

// Bool returns a pointer to b, for the *bool fields of Options.
func Bool(b bool) *bool { return &b }

// withDefaults returns a copy of o with empty fields resolved.
func (o Options) withDefaults() Options {
	if o.EmojiDir == "" {
		o.EmojiDir = DefaultEmojiDir
	}
	if o.URLPrefix == "" {
		o.URLPrefix = DefaultURLPrefix
	}
	if o.MergeDefs == nil {
		o.MergeDefs = Bool(true)
	}
	o.UnicodeSet = ParseUnicodeSet(string(o.UnicodeSet))
	if o.Shortcuts == nil {
		o.Shortcuts = ShortcutsOff
	}
	if o.MergeShortcuts == nil {
		o.MergeShortcuts = Bool(true)
	}
	if o.Logger == nil {
		l := defaultLogger()
		o.Logger = &l
	}
	return o
}

// rendererConfig extracts the renderer settings.
func (o Options) rendererConfig() RendererConfig {
	return RendererConfig{
		URLPrefix:        o.URLPrefix,
		ImgAttributes:    o.ImgAttributes,
		CustomSpanClass:  o.CustomSpanClass,
		UnicodeSpanClass: o.UnicodeSpanClass,
		IgnoreAttr:       o.IgnoreAttr,
		Logger:           o.Logger,
	}
}

// defaultLogger writes human-readable warnings to stderr.
func defaultLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().
		Timestamp().
		Str("component", "mdemoji").
		Logger().
		Level(zerolog.WarnLevel)
}
