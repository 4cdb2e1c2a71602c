package fileutil_test

// Notes:
// - WriteFileAtomic's write, close and chmod error branches are not tested:
//   triggering them needs a failing disk.

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/alnah/go-mdemoji/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestFileExists
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "post.md")
	if err := os.WriteFile(file, []byte("# hi"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	tests := []struct {
		name     string
		path     string
		wantFile bool
	}{
		{name: "regular file", path: file, wantFile: true},
		{name: "directory", path: dir},
		{name: "missing", path: filepath.Join(dir, "missing")},
		{name: "empty", path: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := fileutil.FileExists(tt.path); got != tt.wantFile {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.wantFile)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsFilePath / TestIsMarkdown
// ---------------------------------------------------------------------------

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"blog":                   false,
		"my-site":                false,
		"./mdemoji.yaml":         true,
		"../shared/mdemoji.yaml": true,
		"/etc/mdemoji.yaml":      true,
		`C:\site\mdemoji.yaml`:   true,
		"":                       false,
	}
	for in, want := range tests {
		if got := fileutil.IsFilePath(in); got != want {
			t.Errorf("IsFilePath(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestIsMarkdown(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"post.md":         true,
		"notes.markdown":  true,
		"dir/post.md":     true,
		"README.MD":       false,
		"post.md.bak":     false,
		"image.png":       false,
		"md":              false,
		"archive/.md.txt": false,
	}
	for in, want := range tests {
		if got := fileutil.IsMarkdown(in); got != want {
			t.Errorf("IsMarkdown(%q) = %v, want %v", in, got, want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestWriteFileAtomic
// ---------------------------------------------------------------------------

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	t.Run("creates and replaces", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "out.html")

		for _, content := range []string{"<p>one</p>", "<p>two</p>"} {
			if err := fileutil.WriteFileAtomic(path, []byte(content), 0o644); err != nil {
				t.Fatalf("WriteFileAtomic() error: %v", err)
			}
			got, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read: %v", err)
			}
			if string(got) != content {
				t.Errorf("content = %q, want %q", got, content)
			}
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("readdir: %v", err)
		}
		if len(entries) != 1 {
			t.Errorf("temp files left behind: %v", entries)
		}
	})

	t.Run("sets permissions", func(t *testing.T) {
		t.Parallel()

		if runtime.GOOS == "windows" {
			t.Skip("unix permissions")
		}
		path := filepath.Join(t.TempDir(), "out.html")
		if err := fileutil.WriteFileAtomic(path, []byte("x"), 0o640); err != nil {
			t.Fatalf("WriteFileAtomic() error: %v", err)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if info.Mode().Perm() != 0o640 {
			t.Errorf("mode = %v, want 0640", info.Mode().Perm())
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing", "out.html")
		if err := fileutil.WriteFileAtomic(path, []byte("x"), 0o644); err == nil {
			t.Error("expected error for missing parent directory")
		}
	})
}
