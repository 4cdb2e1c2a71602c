package config

import (
	"github.com/rs/zerolog"

	mdemoji "github.com/alnah/go-mdemoji"
)

func withNopLogger(opts mdemoji.Options) mdemoji.Options {
	l := zerolog.Nop()
	opts.Logger = &l
	return opts
}
