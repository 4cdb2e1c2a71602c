package pipeline

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/alnah/go-mdemoji/internal/yamlutil"
)

// ErrFrontMatter indicates the YAML block at the top of a file could not be parsed.
var ErrFrontMatter = errors.New("invalid front matter")

var (
	crlfOrCR           = regexp.MustCompile(`\r\n?`)
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
)

const frontMatterDelim = "---"

// Document is a Markdown source split into metadata and body.
type Document struct {
	Title string `yaml:"title"`
	Lang  string `yaml:"lang"`
	Body  string `yaml:"-"`
}

// Preprocess normalizes line endings, compresses runs of blank lines and
// splits off a leading "---" delimited YAML block. Unknown front matter keys
// are ignored; static site generators put all sorts of things there.
func Preprocess(ctx context.Context, content string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}

	content = crlfOrCR.ReplaceAllString(content, "\n")
	content = strings.TrimPrefix(content, "\uFEFF")

	var doc Document
	meta, body, ok := splitFrontMatter(content)
	if ok && strings.TrimSpace(meta) != "" {
		if err := yamlutil.Unmarshal([]byte(meta), &doc); err != nil {
			return Document{}, fmt.Errorf("%w: %v", ErrFrontMatter, err)
		}
	}

	doc.Body = multipleBlankLines.ReplaceAllString(body, "\n\n")
	return doc, nil
}

// splitFrontMatter returns the YAML between the opening and closing
// delimiters and the remaining body. ok is false when content does not start
// with a delimiter line or the block is never closed.
func splitFrontMatter(content string) (meta, body string, ok bool) {
	if !strings.HasPrefix(content, frontMatterDelim+"\n") {
		return "", content, false
	}
	rest := content[len(frontMatterDelim)+1:]

	if strings.HasPrefix(rest, frontMatterDelim+"\n") || rest == frontMatterDelim {
		return "", strings.TrimPrefix(rest[len(frontMatterDelim):], "\n"), true
	}

	idx := strings.Index(rest, "\n"+frontMatterDelim+"\n")
	if idx == -1 {
		if strings.HasSuffix(rest, "\n"+frontMatterDelim) {
			return rest[:len(rest)-len(frontMatterDelim)-1], "", true
		}
		return "", content, false
	}
	return rest[:idx], rest[idx+len(frontMatterDelim)+2:], true
}
