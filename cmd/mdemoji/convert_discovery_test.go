package main

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ---------------------------------------------------------------------------
// TestDiscoverFiles - Input walking
// ---------------------------------------------------------------------------

func TestDiscoverFiles(t *testing.T) {
	t.Parallel()

	t.Run("directory keeps layout", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFile(t, root, "a.md", "")
		writeFile(t, root, "sub/b.markdown", "")
		writeFile(t, root, "sub/c.txt", "")
		writeFile(t, root, ".git/d.md", "")

		files, err := discoverFiles(root, "out")
		if err != nil {
			t.Fatalf("discoverFiles() error: %v", err)
		}
		sort.Slice(files, func(i, j int) bool { return files[i].InputPath < files[j].InputPath })

		want := []FileToConvert{
			{InputPath: filepath.Join(root, "a.md"), OutputPath: filepath.Join("out", "a.html")},
			{InputPath: filepath.Join(root, "sub", "b.markdown"), OutputPath: filepath.Join("out", "sub", "b.html")},
		}
		if diff := cmp.Diff(want, files); diff != "" {
			t.Errorf("files mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("single file", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		src := writeFile(t, root, "post.md", "")
		files, err := discoverFiles(src, "")
		if err != nil {
			t.Fatalf("discoverFiles() error: %v", err)
		}
		if len(files) != 1 || files[0].OutputPath != filepath.Join(root, "post.html") {
			t.Errorf("files = %+v", files)
		}
	})

	t.Run("wrong extension", func(t *testing.T) {
		t.Parallel()

		src := writeFile(t, t.TempDir(), "post.txt", "")
		if _, err := discoverFiles(src, ""); !errors.Is(err, ErrInvalidExtension) {
			t.Errorf("error = %v, want ErrInvalidExtension", err)
		}
	})

	t.Run("missing input", func(t *testing.T) {
		t.Parallel()

		_, err := discoverFiles(filepath.Join(t.TempDir(), "nope.md"), "")
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("error = %v, want os.ErrNotExist", err)
		}
	})
}

func TestResolveOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                      string
		input, outputDir, baseDir string
		want                      string
	}{
		{"next to source", filepath.Join("docs", "a.md"), "", "", filepath.Join("docs", "a.html")},
		{"explicit html file", filepath.Join("docs", "a.md"), "page.html", "", "page.html"},
		{"into directory", filepath.Join("docs", "a.markdown"), "site", "", filepath.Join("site", "a.html")},
		{"mirror subdirectory", filepath.Join("docs", "x", "a.md"), "site", "docs", filepath.Join("site", "x", "a.html")},
		{"dotted name", filepath.Join("docs", "v1.2.md"), "", "", filepath.Join("docs", "v1.2.html")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := resolveOutputPath(tt.input, tt.outputDir, tt.baseDir); got != tt.want {
				t.Errorf("resolveOutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWorkers - Validation and resolution
// ---------------------------------------------------------------------------

func TestValidateWorkers(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, MaxWorkers} {
		if err := validateWorkers(n); err != nil {
			t.Errorf("validateWorkers(%d) = %v", n, err)
		}
	}
	for _, n := range []int{-1, MaxWorkers + 1} {
		if err := validateWorkers(n); !errors.Is(err, ErrInvalidWorkerCount) {
			t.Errorf("validateWorkers(%d) = %v, want ErrInvalidWorkerCount", n, err)
		}
	}
}

func TestResolveWorkers(t *testing.T) {
	t.Parallel()

	auto := min(runtime.GOMAXPROCS(0), MaxWorkers)
	tests := []struct {
		name             string
		requested, files int
		want             int
	}{
		{"explicit", 3, 10, 3},
		{"capped by files", 8, 2, 2},
		{"auto", 0, 1000, auto},
		{"auto with one file", 0, 1, 1},
		{"no files still one", 4, 0, 1},
	}

	for _, tt := range tests {
		if got := resolveWorkers(tt.requested, tt.files); got != tt.want {
			t.Errorf("%s: resolveWorkers(%d, %d) = %d, want %d", tt.name, tt.requested, tt.files, got, tt.want)
		}
	}
}
