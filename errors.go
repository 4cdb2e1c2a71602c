package mdemoji

import "errors"

// Sentinel errors for library operations.
var (
	// ErrNilMarkdown is returned by Setup when no goldmark instance is given.
	ErrNilMarkdown = errors.New("goldmark instance must be provided")

	// ErrScanDir wraps filesystem failures while scanning the emoji directory.
	ErrScanDir = errors.New("failed to scan emoji directory")

	// ErrInvalidAttributes describes an attribute override that is not a
	// mapping of scalar values. Renderers log it and fall back to defaults;
	// it is never returned from Render.
	ErrInvalidAttributes = errors.New("image attributes are not a mapping")

	// ErrInvalidUnicodeSet is returned by ValidateUnicodeSet for names other
	// than full, light and none.
	ErrInvalidUnicodeSet = errors.New("invalid unicode emoji set")
)
