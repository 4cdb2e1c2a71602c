package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"

	mdemoji "github.com/alnah/go-mdemoji"
	"github.com/alnah/go-mdemoji/internal/hints"
	"github.com/alnah/go-mdemoji/internal/yamlutil"
)

// Output formats for the scan command.
const (
	formatYAML = "yaml"
	formatJSON = "json"
)

// ErrInvalidFormat indicates an unknown --format value.
var ErrInvalidFormat = errors.New("invalid output format")

// runScan prints the definitions found under an emoji directory.
func runScan(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseScanFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	format := strings.ToLower(flags.format)
	if format != formatYAML && format != formatJSON {
		return fmt.Errorf("%w: %q (use yaml or json)", ErrInvalidFormat, flags.format)
	}

	logger := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)
	envCfg := loadEnvConfig(env.Getenv)
	warnUnknownEnvVars(env.Environ(), logger)

	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)

	dir := cfg.Emoji.Dir
	if len(positional) > 0 {
		dir = positional[0]
	}
	if dir == "" {
		dir = mdemoji.DefaultEmojiDir
	}
	baseURL := cfg.Emoji.BaseURL
	if flags.baseURL != "" {
		baseURL = flags.baseURL
	}

	defs, err := mdemoji.Scan(ctx, dir, baseURL, mdemoji.WithScanLogger(logger))
	if err != nil {
		return fmt.Errorf("%w%s", err, hints.ForEmojiDir(dir))
	}
	logger.Debug().Int("emoji", len(defs)).Str("dir", dir).Msg("scan complete")

	var out []byte
	if format == formatJSON {
		out, err = yamlutil.MarshalJSON(defs)
	} else {
		out, err = yamlutil.Marshal(defs)
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", format, err)
	}

	if _, err := env.Stdout.Write(out); err != nil {
		return err
	}
	if len(out) > 0 && out[len(out)-1] != '\n' {
		fmt.Fprintln(env.Stdout)
	}
	return nil
}
