package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// DefaultTitle is used when neither front matter nor a heading names the page.
const DefaultTitle = "Document"

// pageTemplate wraps goldmark's fragment output in a complete HTML5 document.
// Arguments: lang, escaped title, body.
const pageTemplate = `<!DOCTYPE html>
<html lang="%s">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
</head>
<body>
%s
</body>
</html>
`

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, doc Document) (string, error)
}

// GoldmarkConverter converts Markdown to HTML using goldmark.
// It is safe for concurrent use once built.
type GoldmarkConverter struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy // nil = no sanitizing
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM, footnotes and
// class-based syntax highlighting, plus any extra extenders (the emoji
// extension in practice).
func NewGoldmarkConverter(extenders ...goldmark.Extender) *GoldmarkConverter {
	exts := []goldmark.Extender{
		extension.GFM,
		extension.Footnote,
		highlighting.NewHighlighting(
			highlighting.WithFormatOptions(
				chromahtml.WithClasses(true),
			),
		),
	}
	exts = append(exts, extenders...)

	md := goldmark.New(
		goldmark.WithExtensions(exts...),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithXHTML(),
			// WithUnsafe is left off: raw HTML in sources is not trusted.
		),
	)
	return &GoldmarkConverter{md: md}
}

// Markdown exposes the underlying goldmark instance, for callers that need
// to extend it after construction.
func (c *GoldmarkConverter) Markdown() goldmark.Markdown {
	return c.md
}

// ToHTML converts doc.Body to a standalone HTML5 document.
// goldmark has no context support, so conversion runs in a goroutine and
// ToHTML returns early when ctx is done.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, doc Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(doc.Body), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		body := buf.String()
		if c.policy != nil {
			body = sanitizeFragment(c.policy, body)
		}

		title := doc.Title
		if title == "" {
			title = ExtractTitle(body)
		}
		if title == "" {
			title = DefaultTitle
		}
		lang := doc.Lang
		if lang == "" {
			lang = "en"
		}

		done <- result{html: fmt.Sprintf(pageTemplate, html.EscapeString(lang), html.EscapeString(title), body)}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
