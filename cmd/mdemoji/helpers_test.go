package main

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

// lockedBuffer is a bytes.Buffer safe for the concurrent writes of a batch.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// testEnv returns an Environment reading vars instead of the process
// environment, with captured output.
func testEnv(vars map[string]string) (*Environment, *lockedBuffer, *lockedBuffer) {
	stdout, stderr := &lockedBuffer{}, &lockedBuffer{}
	environ := make([]string, 0, len(vars))
	for k, v := range vars {
		environ = append(environ, k+"="+v)
	}
	env := &Environment{
		Now:     func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) },
		Stdout:  stdout,
		Stderr:  stderr,
		Getenv:  func(k string) string { return vars[k] },
		Environ: func() []string { return environ },
	}
	return env, stdout, stderr
}

// writeFile creates path under root with content, making parent directories.
func writeFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(full, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	return full
}

// readFile returns the content of path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path) // #nosec G304 -- test path
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

// emojiProject lays out a site with two collections and a root image, and
// returns its root and emoji directory.
func emojiProject(t *testing.T) (root, emojiDir string) {
	t.Helper()
	root = t.TempDir()
	emojiDir = filepath.Join(root, "img", "emoji")
	writeFile(t, emojiDir, "blobcat.svg", "<svg/>")
	writeFile(t, emojiDir, "pack1/blank.png", "x")
	writeFile(t, emojiDir, "pack2/blank.png", "x")
	return root, emojiDir
}
