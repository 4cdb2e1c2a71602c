package pipeline

// Notes:
// - The emoji extension is exercised end to end with the fixture collection
//   from the root package's testdata directory.

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	mdemoji "github.com/alnah/go-mdemoji"
)

func emojiConverter(t *testing.T) *GoldmarkConverter {
	t.Helper()

	logger := zerolog.Nop()
	comp, err := mdemoji.Compose(context.Background(), mdemoji.Options{
		EmojiDir: filepath.Join("..", "..", "testdata", "emoji"),
		Logger:   &logger,
	})
	if err != nil {
		t.Fatalf("Compose() error: %v", err)
	}
	r := mdemoji.NewRenderer(mdemoji.RendererConfig{Logger: &logger})
	return NewGoldmarkConverter(mdemoji.New(comp, r))
}

// ---------------------------------------------------------------------------
// TestGoldmarkConverter_ToHTML - Page assembly
// ---------------------------------------------------------------------------

func TestGoldmarkConverter_ToHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		doc          Document
		wantContains []string
	}{
		{
			name:         "title from front matter",
			doc:          Document{Title: "Notes & more", Body: "# Heading"},
			wantContains: []string{"<title>Notes &amp; more</title>", `<html lang="en">`},
		},
		{
			name:         "title from first heading",
			doc:          Document{Body: "intro\n\n# First\n\n# Second"},
			wantContains: []string{"<title>First</title>"},
		},
		{
			name:         "default title",
			doc:          Document{Body: "just text"},
			wantContains: []string{"<title>" + DefaultTitle + "</title>"},
		},
		{
			name:         "lang from front matter",
			doc:          Document{Lang: "fr", Body: "bonjour"},
			wantContains: []string{`<html lang="fr">`},
		},
		{
			name: "gfm table and heading ids",
			doc:  Document{Body: "## Sub Title\n\n| a | b |\n|---|---|\n| 1 | 2 |"},
			wantContains: []string{
				`<h2 id="sub-title">`,
				"<table>",
			},
		},
		{
			name:         "code highlighted with classes",
			doc:          Document{Body: "```go\nfunc main() {}\n```"},
			wantContains: []string{`class="chroma"`},
		},
		{
			name:         "raw html is not passed through",
			doc:          Document{Body: "<script>alert(1)</script>"},
			wantContains: []string{"<!-- raw HTML omitted -->"},
		},
	}

	conv := NewGoldmarkConverter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := conv.ToHTML(context.Background(), tt.doc)
			if err != nil {
				t.Fatalf("ToHTML() error: %v", err)
			}
			if !strings.HasPrefix(got, "<!DOCTYPE html>") {
				t.Errorf("missing doctype: %.40s", got)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q\ngot: %s", want, got)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestGoldmarkConverter_Emoji - Extender passed through
// ---------------------------------------------------------------------------

func TestGoldmarkConverter_Emoji(t *testing.T) {
	t.Parallel()

	conv := emojiConverter(t)
	got, err := conv.ToHTML(context.Background(), Document{Body: "# Party :deep_party:\n\nmeow :blobcat: :smile:"})
	if err != nil {
		t.Fatalf("ToHTML() error: %v", err)
	}

	for _, want := range []string{
		`<span class="custom-emoji--span"><img src="/img/emoji/blobcat.svg" alt="emoji: blobcat" class="custom-emoji--img" /></span>`,
		`<span class="unicode-emoji--span">`,
		"<title>Party emoji: party</title>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q\ngot: %s", want, got)
		}
	}
}

func TestGoldmarkConverter_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGoldmarkConverter().ToHTML(ctx, Document{Body: "x"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}
