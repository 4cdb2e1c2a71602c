package pipeline

import (
	"context"
	"strings"
	"testing"
)

func TestSanitizeCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{".custom-emoji--img { height: 1em; }", ".custom-emoji--img { height: 1em; }"},
		{"</style>", `<\/style>`},
		{"</STYLE></script>", `<\/STYLE><\/script>`},
		{"</</style>", `<\/<\/style>`},
	}

	for _, tt := range tests {
		if got := sanitizeCSS(tt.input); got != tt.want {
			t.Errorf("sanitizeCSS(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestInjectCSS - Placement of the style block
// ---------------------------------------------------------------------------

func TestInjectCSS(t *testing.T) {
	t.Parallel()

	const css = "img { height: 1em; }"
	const block = "<style>\n" + css + "\n</style>\n"

	tests := []struct {
		name string
		html string
		css  string
		want string
	}{
		{
			name: "empty CSS leaves HTML unchanged",
			html: "<html><head></head><body>x</body></html>",
			css:  "",
			want: "<html><head></head><body>x</body></html>",
		},
		{
			name: "before closing head",
			html: "<html><HEAD></HEAD><body>x</body></html>",
			css:  css,
			want: "<html><HEAD>" + block + "</HEAD><body>x</body></html>",
		},
		{
			name: "after body with attributes",
			html: `<html><body class="page">x</body></html>`,
			css:  css,
			want: `<html><body class="page">` + block + "x</body></html>",
		},
		{
			name: "prepended to fragment",
			html: "<p>x</p>",
			css:  css,
			want: block + "<p>x</p>",
		},
		{
			name: "closing tags in CSS are escaped",
			html: "<head></head>",
			css:  "</style><script>",
			want: "<head><style>\n<\\/style><script>\n</style>\n</head>",
		},
	}

	inj := &CSSInjection{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := inj.InjectCSS(context.Background(), tt.html, tt.css); got != tt.want {
				t.Errorf("InjectCSS() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if got := inj.InjectCSS(ctx, "<head></head>", css); strings.Contains(got, "<style>") {
			t.Errorf("CSS injected after cancel: %s", got)
		}
	})
}

// ---------------------------------------------------------------------------
// TestExtractTitle - First h1 text
// ---------------------------------------------------------------------------

func TestExtractTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fragment string
		want     string
	}{
		{"no heading", "<p>text</p>", ""},
		{"plain", `<h1 id="x">Hello</h1>`, "Hello"},
		{"first wins", "<h1>One</h1><h1>Two</h1>", "One"},
		{"h2 ignored", "<h2>Sub</h2><h1>Main</h1>", "Main"},
		{"nested inline", "<h1>Big <em>deal</em></h1>", "Big deal"},
		{"entities decoded", "<h1>A &amp; B</h1>", "A & B"},
		{"whitespace collapsed", "<h1>\n  a \n b </h1>", "a b"},
		{
			name:     "emoji image alt",
			fragment: `<h1>Ship <span class="custom-emoji--span"><img src="/e/ship.png" alt="emoji: ship" /></span></h1>`,
			want:     "Ship emoji: ship",
		},
		{"unclosed", "<h1>dangling", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ExtractTitle(tt.fragment); got != tt.want {
				t.Errorf("ExtractTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}
