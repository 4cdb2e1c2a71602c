package pipeline

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

var (
	// classNames matches a space-separated list of CSS class names.
	classNames = regexp.MustCompile(`^[A-Za-z0-9_\- ]+$`)

	// selfClosing matches a void element closed with "/>", with or without
	// the space goldmark's XHTML output puts before it.
	selfClosing = regexp.MustCompile(`(<(?:img|br|hr|input)\b[^>]*?)\s*/>`)
)

// NewSanitizerPolicy returns a policy for converted fragments: bluemonday's
// user-generated-content rules, extended with the markup goldmark emits for
// highlighted code, footnotes, task lists and emoji.
//
// imgAttrs names extra <img> attributes to keep, such as the ignore marker
// or attributes added through emoji image overrides.
func NewSanitizerPolicy(imgAttrs ...string) *bluemonday.Policy {
	p := bluemonday.UGCPolicy()

	p.AllowAttrs("class").Matching(classNames).Globally()
	// UGCPolicy limits alt to plain prose, which rejects the "emoji: name" default.
	p.AllowAttrs("alt").OnElements("img")
	p.AllowAttrs("loading", "decoding").OnElements("img")
	if len(imgAttrs) > 0 {
		p.AllowAttrs(imgAttrs...).OnElements("img")
	}
	p.AllowAttrs("type", "checked", "disabled").OnElements("input")
	p.AllowAttrs("role").OnElements("a", "hr", "div")

	return p
}

// sanitizeFragment runs fragment through p and restores the " />" ending of
// void elements that bluemonday writes as "/>".
func sanitizeFragment(p *bluemonday.Policy, fragment string) string {
	return selfClosing.ReplaceAllString(p.Sanitize(fragment), "$1 />")
}

// SetSanitizer makes ToHTML pass the converted body through p before the
// page is assembled. It must be called before the converter is shared.
func (c *GoldmarkConverter) SetSanitizer(p *bluemonday.Policy) {
	c.policy = p
}
