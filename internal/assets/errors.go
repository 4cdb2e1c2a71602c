package assets

import "errors"

// Sentinel errors for stylesheet lookup.
var (
	// ErrStyleNotFound indicates neither the base path nor the embedded set
	// has a stylesheet with the requested name.
	ErrStyleNotFound = errors.New("style not found")

	// ErrInvalidAssetName indicates a style name with path separators,
	// traversal sequences or an extension.
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrInvalidBasePath indicates --asset-path is not a readable directory.
	ErrInvalidBasePath = errors.New("invalid base path")

	// ErrAssetRead indicates a stylesheet exists but could not be read.
	ErrAssetRead = errors.New("failed to read asset")

	// ErrPathTraversal indicates a resolved stylesheet path escaped the base path.
	ErrPathTraversal = errors.New("path traversal detected")
)
