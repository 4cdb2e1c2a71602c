package main

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"

	mdemoji "github.com/alnah/go-mdemoji"
	"github.com/alnah/go-mdemoji/internal/assets"
	"github.com/alnah/go-mdemoji/internal/config"
	"github.com/alnah/go-mdemoji/internal/hints"
	"github.com/alnah/go-mdemoji/internal/pipeline"
)

// Sentinel errors for the convert command.
var (
	ErrNoInput      = errors.New("no input specified")
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrWriteHTML    = errors.New("failed to write HTML file")
)

// conversionParams groups what every file of a batch shares.
type conversionParams struct {
	converter pipeline.HTMLConverter
	injector  pipeline.CSSInjector
	css       string
	workers   int
	now       func() time.Time
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	logger := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)

	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	envCfg := loadEnvConfig(env.Getenv)
	warnUnknownEnvVars(env.Environ(), logger)

	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeConvertFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return withHint(err)
	}

	inputPath, err := resolveInputPath(positional, cfg)
	if err != nil {
		return err
	}
	outputDir := resolveOutputDir(flags.output, cfg)

	files, err := discoverFiles(inputPath, outputDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no markdown files found in %s", ErrNoInput, inputPath)
	}

	css, err := resolveCSS(cfg.Style)
	if err != nil {
		return withHint(err)
	}

	converter, err := newEmojiConverter(ctx, cfg.Emoji, cfg.Output.Sanitize, logger)
	if err != nil {
		return withHint(err)
	}

	workers := flags.workers
	if workers == 0 {
		workers = envCfg.Workers
	}

	params := &conversionParams{
		converter: converter,
		injector:  &pipeline.CSSInjection{},
		css:       css,
		workers:   resolveWorkers(workers, len(files)),
		now:       env.Now,
	}
	logger.Debug().Int("files", len(files)).Int("workers", params.workers).Msg("starting conversion")

	results := convertBatch(ctx, files, params)

	failed := printResults(results, flags.common.quiet, flags.common.verbose, env)
	if failed > 0 {
		return fmt.Errorf("%d conversion(s) failed", failed)
	}
	return nil
}

// newEmojiConverter builds the goldmark converter once for the whole batch:
// the emoji directory is scanned a single time and the resulting read-only
// composition is shared by every worker.
func newEmojiConverter(ctx context.Context, ec config.EmojiConfig, sanitize bool, logger zerolog.Logger) (*pipeline.GoldmarkConverter, error) {
	opts := ec.Options()
	opts.Logger = &logger

	conv := pipeline.NewGoldmarkConverter()
	if sanitize {
		conv.SetSanitizer(pipeline.NewSanitizerPolicy(sanitizerImgAttrs(opts)...))
	}
	if err := mdemoji.Setup(ctx, conv.Markdown(), opts); err != nil {
		if errors.Is(err, mdemoji.ErrScanDir) {
			dir := opts.EmojiDir
			if dir == "" {
				dir = mdemoji.DefaultEmojiDir
			}
			return nil, fmt.Errorf("%w%s", err, hints.ForEmojiDir(dir))
		}
		return nil, err
	}
	return conv, nil
}

// sanitizerImgAttrs lists the <img> attributes the emoji renderer may add
// beyond the defaults, so the sanitizer keeps them. Computed attributes are
// unknown until render time and are not listed.
func sanitizerImgAttrs(opts mdemoji.Options) []string {
	var names []string
	if opts.IgnoreAttr != "" {
		names = append(names, opts.IgnoreAttr)
	}
	static, ok := opts.ImgAttributes.(mdemoji.StaticAttrs)
	if !ok {
		return names
	}
	switch m := static.Value.(type) {
	case mdemoji.Attrs:
		for k := range m {
			names = append(names, k)
		}
	case map[string]any:
		for k := range m {
			names = append(names, k)
		}
	}
	sort.Strings(names)
	return names
}

// loadConfig loads the config named by --config, then MDEMOJI_CONFIG.
// With neither, every option keeps its default.
func loadConfig(flagConfig string, env *envConfig) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = env.ConfigPath
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeConvertFlags merges CLI flags into config. CLI values override config values.
func mergeConvertFlags(flags *convertFlags, cfg *config.Config) {
	e := flags.emoji
	if e.dir != "" {
		cfg.Emoji.Dir = e.dir
	}
	if e.baseURL != "" {
		cfg.Emoji.BaseURL = e.baseURL
	}
	if e.unicodeSet != "" {
		cfg.Emoji.UnicodeSet = e.unicodeSet
	}
	if e.noMergeDefs {
		cfg.Emoji.MergeDefs = mdemoji.Bool(false)
	}
	if e.shortcuts && cfg.Emoji.Shortcuts.Table == nil {
		cfg.Emoji.Shortcuts.Enabled = true
	}
	if e.noMergeShortcuts {
		cfg.Emoji.MergeShortcuts = mdemoji.Bool(false)
	}
	if len(e.allow) > 0 {
		cfg.Emoji.AllowList = e.allow
	}
	if e.customClass != "" {
		cfg.Emoji.CustomSpanClass = e.customClass
	}
	if e.unicodeClass != "" {
		cfg.Emoji.UnicodeSpanClass = e.unicodeClass
	}
	if e.ignoreAttr != "" {
		cfg.Emoji.IgnoreAttr = e.ignoreAttr
	}

	if flags.sanitize {
		cfg.Output.Sanitize = true
	}

	s := flags.style
	if s.name != "" {
		cfg.Style.Name = s.name
	}
	if s.assetPath != "" {
		cfg.Style.BasePath = s.assetPath
	}
	if s.disabled {
		cfg.Style.Disabled = true
	}
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveOutputDir determines the output directory from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// resolveCSS loads the emoji stylesheet followed by the document style.
// A custom base path overrides either by name.
func resolveCSS(sc config.StyleConfig) (string, error) {
	if sc.Disabled {
		return "", nil
	}

	resolver, err := assets.NewAssetResolver(sc.BasePath)
	if err != nil {
		return "", err
	}

	name := sc.Name
	if name == "" {
		name = assets.DefaultStyleName
	}
	return resolver.LoadStyles(assets.EmojiStyleName, name)
}

// withHint appends an actionable hint for errors users can fix themselves.
func withHint(err error) error {
	switch {
	case errors.Is(err, mdemoji.ErrInvalidUnicodeSet):
		return fmt.Errorf("%w%s", err, hints.ForUnicodeSet())
	case errors.Is(err, assets.ErrStyleNotFound):
		return fmt.Errorf("%w%s", err, hints.ForStyleNotFound(assets.NewEmbeddedLoader().StyleNames()))
	default:
		return err
	}
}
