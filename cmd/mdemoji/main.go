package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-mdemoji/internal/fileutil"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Sentinel errors for command dispatch.
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("invalid usage")
)

func main() {
	env := DefaultEnv()
	undo := setMaxProcs(maxprocsLogf(os.Args, env.Stderr))
	code := runMain(os.Args, env)
	undo()
	os.Exit(code)
}

// runMain runs the CLI and maps the outcome to an exit code.
func runMain(args []string, env *Environment) int {
	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := run(ctx, args[1:], env); err != nil {
		fmt.Fprintln(env.Stderr, "error:", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// run dispatches to a command. A first argument that names a markdown file
// is shorthand for "convert".
func run(ctx context.Context, args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ErrUsage
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "convert":
		return ignoreHelp(runConvert(ctx, rest, env))
	case "scan":
		return ignoreHelp(runScan(ctx, rest, env))
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "mdemoji %s\n", Version)
		return nil
	case "help", "-h", "--help":
		return runHelp(rest, env)
	}

	if looksLikeMarkdown(cmd) {
		return ignoreHelp(runConvert(ctx, args, env))
	}

	printUsage(env.Stderr)
	return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
}

// ignoreHelp turns the -h/--help parse result into success; the FlagSet has
// already printed the usage text.
func ignoreHelp(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	return err
}

// looksLikeMarkdown reports whether arg is a markdown path rather than a command.
func looksLikeMarkdown(arg string) bool {
	return !strings.HasPrefix(arg, "-") && fileutil.IsMarkdown(arg)
}

// setMaxProcs aligns GOMAXPROCS with the container CPU quota, which sets the
// default worker count, and returns the undo function.
func setMaxProcs(logf func(format string, args ...any)) func() {
	undo, err := maxprocs.Set(maxprocs.Logger(logf))
	if err != nil {
		// Only fails on a malformed GOMAXPROCS; the runtime default stays.
		logf("maxprocs: %v", err)
	}
	return undo
}

// maxprocsLogf prints maxprocs messages when -v or --verbose is among args.
// It runs before flag parsing, so it only looks for the literal flags.
func maxprocsLogf(args []string, w io.Writer) func(string, ...any) {
	for _, a := range args[1:] {
		if a == "-v" || a == "--verbose" {
			return func(format string, v ...any) { fmt.Fprintf(w, format+"\n", v...) }
		}
	}
	return func(string, ...any) {}
}
