package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdemoji <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert markdown files to HTML with custom emoji")
	fmt.Fprintln(w, "  scan       List the emoji found in an image directory")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mdemoji help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdemoji convert <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert markdown files to standalone HTML pages. :name: shortcodes")
	fmt.Fprintln(w, "become <img> tags for images under --emoji-dir, or unicode glyphs.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file or directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>          Output .html file or directory")
	fmt.Fprintln(w, "  -c, --config <name>          Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>            Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --sanitize               Sanitize converted HTML")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Emoji:")
	fmt.Fprintln(w, "      --emoji-dir <path>       Image directory (default ./public/img/emoji/)")
	fmt.Fprintln(w, "      --base-url <url>         URL prefix for images (default /img/emoji/)")
	fmt.Fprintln(w, "      --unicode-set <s>        Unicode set: full, light, none")
	fmt.Fprintln(w, "      --no-merge-defs          Only scanned images, no unicode emoji")
	fmt.Fprintln(w, "      --shortcuts              Enable text shortcuts such as :)")
	fmt.Fprintln(w, "      --no-merge-shortcuts     Do not add the built-in shortcut table")
	fmt.Fprintln(w, "      --allow <names>          Only enable these emoji (repeatable)")
	fmt.Fprintln(w, "      --custom-class <s>       Span class for custom emoji")
	fmt.Fprintln(w, "      --unicode-class <s>      Span class for unicode emoji")
	fmt.Fprintln(w, "      --ignore-attr <name>     Bare attribute added to every <img>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --style <name>           Document style: default, minimal")
	fmt.Fprintln(w, "      --asset-path <dir>       Directory with styles/{name}.css overrides")
	fmt.Fprintln(w, "      --no-style               Disable CSS injection")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                  Only show errors")
	fmt.Fprintln(w, "  -v, --verbose                Show timing and debug logs")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MDEMOJI_CONFIG, MDEMOJI_EMOJI_DIR, MDEMOJI_BASE_URL, MDEMOJI_UNICODE_SET,")
	fmt.Fprintln(w, "  MDEMOJI_STYLE, MDEMOJI_INPUT_DIR, MDEMOJI_OUTPUT_DIR, MDEMOJI_WORKERS")
}

// printScanUsage prints usage for the scan command.
func printScanUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdemoji scan [dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the name to URL table built from an emoji image directory.")
	fmt.Fprintln(w, "dir defaults to emoji.emojiDir from the config, then ./public/img/emoji/.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --base-url <url>         URL prefix (default ./)")
	fmt.Fprintln(w, "  -f, --format <s>             Output format: yaml, json")
	fmt.Fprintln(w, "  -c, --config <name>          Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet                  Only show errors")
	fmt.Fprintln(w, "  -v, --verbose                Show debug logs")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "scan":
		printScanUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: mdemoji version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: mdemoji help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	return nil
}
