package pipeline

import (
	"context"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// CSSInjector defines the contract for CSS injection into HTML.
type CSSInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
}

// CSSInjection injects CSS as a <style> block into HTML content.
type CSSInjection struct{}

// InjectCSS inserts a <style> block before </head>, after <body> when there
// is no head, or in front of the content as a last resort.
func (s *CSSInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" || ctx.Err() != nil {
		return htmlContent
	}

	styleBlock := "<style>\n" + sanitizeCSS(cssContent) + "\n</style>\n"
	lower := strings.ToLower(htmlContent)

	if idx := strings.Index(lower, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}

	if idx := strings.Index(lower, "<body"); idx != -1 {
		if end := strings.Index(htmlContent[idx:], ">"); end != -1 {
			pos := idx + end + 1
			return htmlContent[:pos] + styleBlock + htmlContent[pos:]
		}
	}

	return styleBlock + htmlContent
}

// sanitizeCSS escapes "</" so stylesheet content cannot close the <style> element.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// ExtractTitle returns the text of the first <h1> in fragment, with emoji
// images replaced by their alt text. It returns "" when there is no h1.
func ExtractTitle(fragment string) string {
	z := html.NewTokenizer(strings.NewReader(fragment))

	var (
		b     strings.Builder
		depth int
	)
	for {
		switch z.Next() {
		case html.ErrorToken:
			return ""
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			switch {
			case tok.DataAtom == atom.H1:
				depth++
			case depth > 0 && tok.DataAtom == atom.Img:
				for _, a := range tok.Attr {
					if a.Key == "alt" {
						b.WriteString(a.Val)
					}
				}
			}
		case html.EndTagToken:
			if depth > 0 && z.Token().DataAtom == atom.H1 {
				return strings.Join(strings.Fields(b.String()), " ")
			}
		case html.TextToken:
			if depth > 0 {
				b.Write(z.Text())
			}
		}
	}
}
