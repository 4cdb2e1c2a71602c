package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	mdemoji "github.com/alnah/go-mdemoji"
	"github.com/alnah/go-mdemoji/internal/yamlutil"
)

// ---------------------------------------------------------------------------
// TestScan - Definitions printed as YAML or JSON
// ---------------------------------------------------------------------------

func TestScan(t *testing.T) {
	t.Parallel()

	want := mdemoji.Definitions{
		"blobcat":     "/img/emoji/blobcat.svg",
		"pack1_blank": "/img/emoji/pack1/blank.png",
		"pack2_blank": "/img/emoji/pack2/blank.png",
	}

	for _, format := range []string{"yaml", "json", "JSON"} {
		t.Run(format, func(t *testing.T) {
			t.Parallel()

			_, emojiDir := emojiProject(t)
			env, stdout, stderr := testEnv(nil)
			code := runMain([]string{"mdemoji", "scan", emojiDir, "--base-url", "/img/emoji/", "--format", format}, env)
			if code != ExitSuccess {
				t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
			}

			out := stdout.String()
			if strings.EqualFold(format, "json") && !strings.HasPrefix(strings.TrimSpace(out), "{") {
				t.Errorf("not JSON: %s", out)
			}

			// JSON is a YAML subset, so one decoder reads both.
			var got mdemoji.Definitions
			if err := yamlutil.Unmarshal([]byte(out), &got); err != nil {
				t.Fatalf("decode output: %v\n%s", err, out)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("scan output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestScan_Defaults(t *testing.T) {
	t.Parallel()

	t.Run("empty base url uses dot slash", func(t *testing.T) {
		t.Parallel()

		_, emojiDir := emojiProject(t)
		env, stdout, _ := testEnv(nil)
		if code := runMain([]string{"mdemoji", "scan", emojiDir}, env); code != ExitSuccess {
			t.Fatalf("exit code = %d", code)
		}
		if !strings.Contains(stdout.String(), "./pack1/blank.png") {
			t.Errorf("stdout = %s", stdout.String())
		}
	})

	t.Run("directory from environment", func(t *testing.T) {
		t.Parallel()

		_, emojiDir := emojiProject(t)
		env, stdout, _ := testEnv(map[string]string{"MDEMOJI_EMOJI_DIR": emojiDir, "MDEMOJI_BASE_URL": "/e/"})
		if code := runMain([]string{"mdemoji", "scan"}, env); code != ExitSuccess {
			t.Fatalf("exit code = %d", code)
		}
		if !strings.Contains(stdout.String(), "/e/blobcat.svg") {
			t.Errorf("stdout = %s", stdout.String())
		}
	})
}

func TestScan_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStderr string
	}{
		{
			name:       "invalid format",
			args:       []string{"--format", "toml"},
			wantCode:   ExitUsage,
			wantStderr: "invalid output format",
		},
		{
			name:       "missing directory",
			args:       []string{filepath.Join("does", "not", "exist")},
			wantCode:   ExitIO,
			wantStderr: "failed to scan emoji directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, _, stderr := testEnv(nil)
			code := runMain(append([]string{"mdemoji", "scan"}, tt.args...), env)
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
			if !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr missing %q, got %s", tt.wantStderr, stderr.String())
			}
		})
	}
}
