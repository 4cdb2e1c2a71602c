package mdemoji

import (
	"context"

	"github.com/yuin/goldmark"
	emoji "github.com/yuin/goldmark-emoji"
	east "github.com/yuin/goldmark-emoji/ast"
	"github.com/yuin/goldmark-emoji/definition"
	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// Priorities relative to goldmark-emoji, which registers its parser at 999
// and its renderer at 200. Lower values run first; for renderers the lowest
// value owns the node kind.
const (
	shortcutParserPriority = 1000
	emojiRendererPriority  = 100
)

// Setup scans opts.EmojiDir, composes the definitions and installs them on md:
// it registers goldmark-emoji with the composed definitions (plus the
// shortcut parser) and replaces the emoji renderer with one built from opts.
//
// A nil md returns ErrNilMarkdown. Scan failures are returned as is and leave
// md untouched.
func Setup(ctx context.Context, md goldmark.Markdown, opts Options) error {
	if md == nil {
		return ErrNilMarkdown
	}

	opts = opts.withDefaults()
	comp, err := Compose(ctx, opts)
	if err != nil {
		return err
	}

	New(comp, NewRenderer(opts.rendererConfig())).Extend(md)
	return nil
}

// extender installs a Composition and Renderer on a goldmark instance.
type extender struct {
	comp *Composition
	r    *Renderer
}

// New returns a goldmark.Extender for use with goldmark.WithExtensions.
func New(comp *Composition, r *Renderer) goldmark.Extender {
	return &extender{comp: comp, r: r}
}

// Extend implements goldmark.Extender.
func (e *extender) Extend(m goldmark.Markdown) {
	emojis := e.comp.emojis()
	emoji.New(emoji.WithEmojis(emojis)).Extend(m)

	if sp := newShortcutParser(e.comp.shortcuts, emojis); sp != nil {
		m.Parser().AddOptions(
			parser.WithInlineParsers(util.Prioritized(sp, shortcutParserPriority)),
		)
	}

	CustomizeRenderer(m, e.r)
}

// CustomizeRenderer replaces the HTML rendering of goldmark-emoji nodes on md
// with r. It does not register the emoji parser itself.
func CustomizeRenderer(md goldmark.Markdown, r *Renderer) {
	md.Renderer().AddOptions(
		renderer.WithNodeRenderers(util.Prioritized(&nodeRenderer{r: r}, emojiRendererPriority)),
	)
}

// emojis converts the definitions to goldmark-emoji's table. The content is
// stored as the emoji's "unicode" value, so custom entries carry their URL.
func (c *Composition) emojis() definition.Emojis {
	list := make([]definition.Emoji, 0, len(c.defs))
	for _, name := range c.defs.Names() {
		list = append(list, definition.NewEmoji(name, []rune(c.defs[name]), name))
	}
	return definition.NewEmojis(list...)
}

// nodeRenderer renders east.Emoji nodes through a Renderer.
type nodeRenderer struct {
	r *Renderer
}

// RegisterFuncs implements renderer.NodeRenderer.
func (n *nodeRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(east.KindEmoji, n.renderEmoji)
}

func (n *nodeRenderer) renderEmoji(w util.BufWriter, _ []byte, node gast.Node, entering bool) (gast.WalkStatus, error) {
	if !entering {
		return gast.WalkContinue, nil
	}
	e, ok := node.(*east.Emoji)
	if !ok {
		return gast.WalkContinue, nil
	}
	if _, err := w.WriteString(n.r.Render(tokenFromNode(e))); err != nil {
		return gast.WalkStop, err
	}
	return gast.WalkContinue, nil
}

// tokenFromNode reads the token fields from a parsed emoji node.
func tokenFromNode(e *east.Emoji) Token {
	tok := Token{Markup: ":" + string(e.ShortName) + ":"}
	if e.Value != nil {
		tok.Content = string(e.Value.Unicode)
	}
	if raw, ok := e.AttributeString(shortcutAttr); ok {
		if b, ok := raw.([]byte); ok {
			tok.Markup = string(b)
		}
	}
	return tok
}
