package mdemoji

import (
	"path"
	"strings"

	"github.com/rs/zerolog"
)

// Default renderer settings.
const (
	DefaultURLPrefix        = "/img/emoji/"
	DefaultCustomSpanClass  = "custom-emoji--span"
	DefaultUnicodeSpanClass = "unicode-emoji--span"
	DefaultImgClass         = "custom-emoji--img"
)

// Token is the part of an emoji token the renderer reads.
type Token struct {
	// Content is the resolved definition: a URL for custom emoji,
	// the glyph for unicode emoji.
	Content string
	// Markup is the shortcode as written, e.g. ":cat:".
	Markup string
}

// RendererConfig holds the settings captured by a Renderer.
// Zero-valued strings take the package defaults.
type RendererConfig struct {
	URLPrefix        string
	ImgAttributes    AttrSource
	CustomSpanClass  string
	UnicodeSpanClass string
	// IgnoreAttr, when set, is added as a bare boolean attribute to custom
	// emoji images so a host site generator leaves them alone
	// (for example "eleventy:ignore").
	IgnoreAttr string
	Logger     *zerolog.Logger
}

// Renderer turns emoji tokens into HTML. It is read-only after creation and
// safe for concurrent use.
type Renderer struct {
	prefix       string
	attrs        AttrSource
	customClass  string
	unicodeClass string
	ignoreAttr   string
	logger       zerolog.Logger
}

// NewRenderer creates a Renderer, filling unset fields with defaults.
func NewRenderer(cfg RendererConfig) *Renderer {
	r := &Renderer{
		prefix:       cfg.URLPrefix,
		attrs:        cfg.ImgAttributes,
		customClass:  cfg.CustomSpanClass,
		unicodeClass: cfg.UnicodeSpanClass,
		ignoreAttr:   cfg.IgnoreAttr,
	}
	if r.prefix == "" {
		r.prefix = DefaultURLPrefix
	}
	if r.attrs == nil {
		r.attrs = StaticAttrs{Value: Attrs{}}
	}
	if r.customClass == "" {
		r.customClass = DefaultCustomSpanClass
	}
	if r.unicodeClass == "" {
		r.unicodeClass = DefaultUnicodeSpanClass
	}
	if cfg.Logger != nil {
		r.logger = *cfg.Logger
	} else {
		r.logger = defaultLogger()
	}
	return r
}

// IsCustom reports whether content points at an image under the URL prefix.
func (r *Renderer) IsCustom(content string) bool {
	return strings.HasPrefix(content, r.prefix)
}

// Render returns the HTML for one emoji token.
//
// Unicode emoji become <span class="unicode-emoji--span">GLYPH</span>.
// Custom emoji become a span wrapping an <img> whose attributes are the
// defaults overlaid by the configured AttrSource. An override that is not a
// mapping is logged and ignored, and non-scalar entries of a mapping are
// logged and dropped; Render never fails.
func (r *Renderer) Render(tok Token) string {
	if !r.IsCustom(tok.Content) {
		return `<span class="` + r.unicodeClass + `">` + tok.Content + `</span>`
	}

	meta := r.Meta(tok)
	defaults, order := r.defaultAttrs(meta)

	overrides, err := normalizeAttrs(r.attrs.resolve(meta, defaults))
	switch {
	case err != nil && overrides == nil:
		r.logger.Warn().
			Err(err).
			Str("emoji", meta.Name).
			Msg("image attributes are not a mapping, falling back to default attributes")
		overrides = Attrs{}
	case err != nil:
		r.logger.Warn().
			Err(err).
			Str("emoji", meta.Name).
			Msg("dropping non-scalar image attributes")
	}

	merged, order := mergeAttrs(defaults, order, overrides)
	return `<span class="` + r.customClass + `"><img src="` + tok.Content + `" ` +
		serializeAttrs(merged, order) + ` /></span>`
}

// Meta derives the metadata handed to ComputedAttrs.
func (r *Renderer) Meta(tok Token) EmojiMeta {
	base := path.Base(tok.Content)
	meta := EmojiMeta{
		Name:         strings.TrimSuffix(base, path.Ext(base)),
		Filename:     tok.Content,
		Subdir:       path.Base(path.Dir(tok.Content)),
		RawShortcode: tok.Markup,
		Type:         EmojiUnicode,
	}
	if r.IsCustom(tok.Content) {
		meta.Type = EmojiCustom
	}
	return meta
}

func (r *Renderer) defaultAttrs(meta EmojiMeta) (Attrs, []string) {
	attrs := Attrs{
		"alt":   "emoji: " + meta.Name,
		"class": DefaultImgClass,
	}
	order := []string{"alt", "class"}
	if r.ignoreAttr != "" {
		attrs[r.ignoreAttr] = true
		order = append(order, r.ignoreAttr)
	}
	return attrs, order
}
