package main

import (
	"errors"
	"os"

	mdemoji "github.com/alnah/go-mdemoji"
	"github.com/alnah/go-mdemoji/internal/assets"
	"github.com/alnah/go-mdemoji/internal/config"
)

// Exit codes for the mdemoji CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // All files converted
	ExitGeneral = 1 // Conversion failures and unexpected errors
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // Missing input, unreadable emoji directory, write failures
)

// exitCodeFor returns the exit code for err. It relies on errors.Is, so
// callers must wrap with fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Checked before I/O: some usage errors also wrap a filesystem error.
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidFormat) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidField) ||
		errors.Is(err, mdemoji.ErrInvalidUnicodeSet) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, assets.ErrPathTraversal) {
		return ExitUsage
	}

	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, mdemoji.ErrScanDir) ||
		errors.Is(err, assets.ErrAssetRead) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWriteHTML) {
		return ExitIO
	}

	return ExitGeneral
}
