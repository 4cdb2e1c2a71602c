package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ---------------------------------------------------------------------------
// TestPreprocess - Front matter and whitespace
// ---------------------------------------------------------------------------

func TestPreprocess(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  Document
	}{
		{
			name:  "no front matter",
			input: "# Hi :smile:\n",
			want:  Document{Body: "# Hi :smile:\n"},
		},
		{
			name:  "title and lang",
			input: "---\ntitle: Release notes\nlang: fr\n---\n# Body\n",
			want:  Document{Title: "Release notes", Lang: "fr", Body: "# Body\n"},
		},
		{
			name:  "unknown keys ignored",
			input: "---\nlayout: post.njk\ntags: [a, b]\n---\ntext",
			want:  Document{Body: "text"},
		},
		{
			name:  "empty block",
			input: "---\n---\ntext",
			want:  Document{Body: "text"},
		},
		{
			name:  "block closed at end of file",
			input: "---\ntitle: Only meta\n---",
			want:  Document{Title: "Only meta"},
		},
		{
			name:  "unclosed block is body",
			input: "---\ntitle: x\n\ntext",
			want:  Document{Body: "---\ntitle: x\n\ntext"},
		},
		{
			name:  "thematic break later in file is not front matter",
			input: "intro\n---\nmore",
			want:  Document{Body: "intro\n---\nmore"},
		},
		{
			name:  "CRLF normalized before splitting",
			input: "---\r\ntitle: Win\r\n---\r\nline1\r\nline2\r",
			want:  Document{Title: "Win", Body: "line1\nline2\n"},
		},
		{
			name:  "byte order mark stripped",
			input: "\uFEFF---\ntitle: BOM\n---\nx",
			want:  Document{Title: "BOM", Body: "x"},
		},
		{
			name:  "blank line runs compressed",
			input: "a\n\n\n\n\nb",
			want:  Document{Body: "a\n\nb"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Preprocess(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("Preprocess() error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Preprocess() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPreprocess_Errors(t *testing.T) {
	t.Parallel()

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()

		_, err := Preprocess(context.Background(), "---\ntitle: [unclosed\n---\nbody")
		if !errors.Is(err, ErrFrontMatter) {
			t.Fatalf("error = %v, want ErrFrontMatter", err)
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := Preprocess(ctx, "x"); !errors.Is(err, context.Canceled) {
			t.Fatalf("error = %v, want context.Canceled", err)
		}
	})
}
