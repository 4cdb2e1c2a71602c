package mdemoji

import (
	"context"
	"slices"
)

// Composition is the emoji configuration handed to the tokenizer: final
// definitions, shortcuts and the optional allow-list. It is immutable;
// accessors return copies.
type Composition struct {
	defs      Definitions
	shortcuts Shortcuts
	enabled   []string
}

// Compose scans opts.EmojiDir and combines the result with the selected
// unicode set and shortcuts.
//
// With MergeDefs the scanned definitions are laid over the unicode set, so a
// custom image wins over a unicode emoji of the same name; without it only
// the scanned definitions are used. With MergeShortcuts the resolved shortcut
// source is laid over the built-in table; without it the source stands alone.
// A non-empty AllowList restricts both tables to the listed names.
func Compose(ctx context.Context, opts Options) (*Composition, error) {
	opts = opts.withDefaults()

	custom, err := Scan(ctx, opts.EmojiDir, opts.URLPrefix, WithScanLogger(*opts.Logger))
	if err != nil {
		return nil, err
	}

	return ComposeDefinitions(custom, opts), nil
}

// ComposeDefinitions is Compose without the directory scan, for callers that
// already hold the custom definitions.
func ComposeDefinitions(custom Definitions, opts Options) *Composition {
	opts = opts.withDefaults()

	var defs Definitions
	if *opts.MergeDefs {
		defs = Merge(UnicodeDefinitions(opts.UnicodeSet), custom)
	} else {
		defs = custom.Clone()
	}

	source := opts.Shortcuts.shortcuts()
	var shortcuts Shortcuts
	if *opts.MergeShortcuts {
		shortcuts = DefaultShortcuts().Merge(source)
	} else {
		shortcuts = source
	}

	var enabled []string
	if len(opts.AllowList) > 0 {
		enabled = slices.Clone(opts.AllowList)
		defs = defs.Restrict(enabled)
	}

	return &Composition{
		defs:      defs,
		shortcuts: shortcuts.Restrict(defs),
		enabled:   enabled,
	}
}

// Definitions returns a copy of the final definitions.
func (c *Composition) Definitions() Definitions { return c.defs.Clone() }

// Shortcuts returns a copy of the final shortcuts.
func (c *Composition) Shortcuts() Shortcuts { return c.shortcuts.Clone() }

// Enabled returns the allow-list, or nil when every definition is active.
func (c *Composition) Enabled() []string { return slices.Clone(c.enabled) }

// Lookup returns the content for a shortcode name.
func (c *Composition) Lookup(name string) (string, bool) {
	v, ok := c.defs[name]
	return v, ok
}

// Len returns the number of active definitions.
func (c *Composition) Len() int { return len(c.defs) }
