package mdemoji

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/rs/zerolog"
)

// ImageExtensions lists the file extensions picked up by Scan.
// Matching is case-sensitive.
var ImageExtensions = []string{"png", "jpg", "jpeg", "gif", "svg"}

// defaultURLPrefix is used by Scan when the caller passes an empty prefix.
const defaultURLPrefix = "./"

// ScanOption configures Scan.
type ScanOption func(*scanConfig)

type scanConfig struct {
	logger zerolog.Logger
}

// WithScanLogger sets the logger that receives key collision warnings.
func WithScanLogger(l zerolog.Logger) ScanOption {
	return func(c *scanConfig) { c.logger = l }
}

// Scan walks root recursively and maps every image file to a site URL.
//
// The key is the file's base name without extension. Files inside a
// subdirectory get the name of their immediate parent (the "collection")
// prepended with an underscore:
//
//	root/blobcat.png          -> "blobcat"       = urlPrefix + "blobcat.png"
//	root/neocat/neocat_3c.png -> "neocat_neocat_3c" = urlPrefix + "neocat/neocat_3c.png"
//	root/a/b/cat.gif          -> "b_cat"         = urlPrefix + "a/b/cat.gif"
//
// Hidden files and directories are skipped. Entries are visited in lexical
// order; when two files derive the same key the later one wins and a warning
// is logged. Any filesystem error aborts the scan with ErrScanDir and no
// partial result.
func Scan(ctx context.Context, root, urlPrefix string, opts ...ScanOption) (Definitions, error) {
	cfg := scanConfig{logger: defaultLogger()}
	for _, opt := range opts {
		opt(&cfg)
	}

	if urlPrefix == "" {
		urlPrefix = defaultURLPrefix
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrScanDir, root)
	}

	defs := make(Definitions)
	sources := make(map[string]string)

	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("%w: %w", ErrScanDir, walkErr)
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if p != root && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !isImageFile(d.Name()) {
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrScanDir, err)
		}
		rel = filepath.ToSlash(rel)
		key := scanKey(rel)

		if prev, dup := sources[key]; dup {
			cfg.logger.Warn().
				Str("key", key).
				Str("kept", rel).
				Str("dropped", prev).
				Msg("duplicate emoji name, last file wins")
		}
		sources[key] = rel
		defs[key] = urlPrefix + rel
		return nil
	})
	if err != nil {
		return nil, err
	}

	return defs, nil
}

// scanKey derives the shortcode name from a slash-separated relative path.
func scanKey(rel string) string {
	base := path.Base(rel)
	name := strings.TrimSuffix(base, path.Ext(base))

	dir := path.Dir(rel)
	if dir == "." || dir == "/" {
		return name
	}
	return path.Base(dir) + "_" + name
}

// isImageFile reports whether name ends in one of ImageExtensions.
func isImageFile(name string) bool {
	ext := path.Ext(name)
	if ext == "" || ext == name {
		return false
	}
	return slices.Contains(ImageExtensions, ext[1:])
}
