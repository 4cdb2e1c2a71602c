package main

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/alnah/go-mdemoji/internal/config"
)

const envPrefix = "MDEMOJI_"

// envConfig holds overrides read from MDEMOJI_* variables.
type envConfig struct {
	ConfigPath string // MDEMOJI_CONFIG
	EmojiDir   string // MDEMOJI_EMOJI_DIR
	BaseURL    string // MDEMOJI_BASE_URL
	UnicodeSet string // MDEMOJI_UNICODE_SET
	Style      string // MDEMOJI_STYLE
	InputDir   string // MDEMOJI_INPUT_DIR
	OutputDir  string // MDEMOJI_OUTPUT_DIR
	Workers    int    // MDEMOJI_WORKERS
}

var knownEnvVars = map[string]bool{
	"MDEMOJI_CONFIG":      true,
	"MDEMOJI_EMOJI_DIR":   true,
	"MDEMOJI_BASE_URL":    true,
	"MDEMOJI_UNICODE_SET": true,
	"MDEMOJI_STYLE":       true,
	"MDEMOJI_INPUT_DIR":   true,
	"MDEMOJI_OUTPUT_DIR":  true,
	"MDEMOJI_WORKERS":     true,
}

// loadEnvConfig reads MDEMOJI_* variables through getenv. A malformed or
// non-positive MDEMOJI_WORKERS is ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("MDEMOJI_CONFIG"),
		EmojiDir:   getenv("MDEMOJI_EMOJI_DIR"),
		BaseURL:    getenv("MDEMOJI_BASE_URL"),
		UnicodeSet: getenv("MDEMOJI_UNICODE_SET"),
		Style:      getenv("MDEMOJI_STYLE"),
		InputDir:   getenv("MDEMOJI_INPUT_DIR"),
		OutputDir:  getenv("MDEMOJI_OUTPUT_DIR"),
	}

	if workers := getenv("MDEMOJI_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs MDEMOJI_* names that nothing reads, to catch typos.
func warnUnknownEnvVars(environ []string, logger zerolog.Logger) {
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			logger.Warn().Str("var", name).Msg("unknown environment variable (typo?)")
		}
	}
}

// applyEnvConfig fills config fields that the file left empty.
// Precedence is flags > environment > config file > defaults; flags are
// merged afterwards by mergeConvertFlags.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.EmojiDir != "" && cfg.Emoji.Dir == "" {
		cfg.Emoji.Dir = env.EmojiDir
	}
	if env.BaseURL != "" && cfg.Emoji.BaseURL == "" {
		cfg.Emoji.BaseURL = env.BaseURL
	}
	if env.UnicodeSet != "" && cfg.Emoji.UnicodeSet == "" {
		cfg.Emoji.UnicodeSet = env.UnicodeSet
	}
	if env.Style != "" && cfg.Style.Name == "" {
		cfg.Style.Name = env.Style
	}
	if env.InputDir != "" && cfg.Input.DefaultDir == "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
}
