package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// emojiFlags mirror the emoji section of the config file.
type emojiFlags struct {
	dir              string
	baseURL          string
	unicodeSet       string
	noMergeDefs      bool
	shortcuts        bool
	noMergeShortcuts bool
	allow            []string
	customClass      string
	unicodeClass     string
	ignoreAttr       string
}

// styleFlags select the injected stylesheets.
type styleFlags struct {
	name      string
	assetPath string
	disabled  bool
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common  commonFlags
	output   string
	workers  int
	sanitize bool
	emoji    emojiFlags
	style    styleFlags
}

// scanFlags holds flags for the scan command.
type scanFlags struct {
	common  commonFlags
	baseURL string
	format  string
}

func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show timing and debug logs")
}

func addEmojiFlags(fs *flag.FlagSet, f *emojiFlags) {
	fs.StringVar(&f.dir, "emoji-dir", "", "directory of emoji images (default ./public/img/emoji/)")
	fs.StringVar(&f.baseURL, "base-url", "", "URL prefix for emoji images (default /img/emoji/)")
	fs.StringVar(&f.unicodeSet, "unicode-set", "", "unicode emoji set: full, light, none")
	fs.BoolVar(&f.noMergeDefs, "no-merge-defs", false, "use only scanned emoji, no unicode set")
	fs.BoolVar(&f.shortcuts, "shortcuts", false, "enable the built-in text shortcuts")
	fs.BoolVar(&f.noMergeShortcuts, "no-merge-shortcuts", false, "do not lay shortcuts over the built-in table")
	fs.StringSliceVar(&f.allow, "allow", nil, "only enable these emoji names (repeatable, comma-separated)")
	fs.StringVar(&f.customClass, "custom-class", "", "span class for custom emoji")
	fs.StringVar(&f.unicodeClass, "unicode-class", "", "span class for unicode emoji")
	fs.StringVar(&f.ignoreAttr, "ignore-attr", "", "bare attribute added to every emoji <img>")
}

func addStyleFlags(fs *flag.FlagSet, f *styleFlags) {
	fs.StringVar(&f.name, "style", "", "document style: default, minimal, or a custom name")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory with styles/{name}.css overrides")
	fs.BoolVar(&f.disabled, "no-style", false, "do not inject any stylesheet")
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, w io.Writer) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(w)
	f := &convertFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.sanitize, "sanitize", false, "sanitize converted HTML")
	addCommonFlags(fs, &f.common)
	addEmojiFlags(fs, &f.emoji)
	addStyleFlags(fs, &f.style)

	fs.Usage = func() { printConvertUsage(w) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseScanFlags parses scan command flags and returns positional args.
func parseScanFlags(args []string, w io.Writer) (*scanFlags, []string, error) {
	fs := flag.NewFlagSet("scan", flag.ContinueOnError)
	fs.SetOutput(w)
	f := &scanFlags{}

	fs.StringVar(&f.baseURL, "base-url", "", "URL prefix for emoji images (default ./)")
	fs.StringVarP(&f.format, "format", "f", formatYAML, "output format: yaml, json")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printScanUsage(w) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
