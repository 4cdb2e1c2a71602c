package mdemoji

import (
	"slices"
	"unicode"
	"unicode/utf8"

	east "github.com/yuin/goldmark-emoji/ast"
	"github.com/yuin/goldmark-emoji/definition"
	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// shortcutAttr carries the shortcut text on the emoji node so the renderer
// can report it as the raw shortcode.
const shortcutAttr = "mdemoji-shortcut"

// shortcutParser turns text shortcuts such as ":)" into emoji nodes.
// A shortcut only matches between separators: start or end of line,
// whitespace, punctuation or control characters.
type shortcutParser struct {
	table    map[string]string // shortcut text -> emoji name
	emojis   definition.Emojis
	triggers []byte
	maxLen   int
}

// newShortcutParser returns nil when there is nothing to match.
func newShortcutParser(s Shortcuts, emojis definition.Emojis) *shortcutParser {
	table := s.lookup()
	if len(table) == 0 {
		return nil
	}

	p := &shortcutParser{table: table, emojis: emojis}
	for sc := range table {
		if !slices.Contains(p.triggers, sc[0]) {
			p.triggers = append(p.triggers, sc[0])
		}
		p.maxLen = max(p.maxLen, len(sc))
	}
	slices.Sort(p.triggers)
	return p
}

// Trigger implements parser.InlineParser.
func (p *shortcutParser) Trigger() []byte {
	return p.triggers
}

// Parse implements parser.InlineParser. The longest shortcut wins.
func (p *shortcutParser) Parse(_ gast.Node, block text.Reader, _ parser.Context) gast.Node {
	if !isSeparator(block.PrecendingCharacter()) {
		return nil
	}

	line, _ := block.PeekLine()
	for n := min(p.maxLen, len(line)); n > 0; n-- {
		name, ok := p.table[string(line[:n])]
		if !ok {
			continue
		}
		if n < len(line) {
			next, _ := utf8.DecodeRune(line[n:])
			if !isSeparator(next) {
				continue
			}
		}
		value, ok := p.emojis.Get(name)
		if !ok {
			continue
		}

		raw := make([]byte, n)
		copy(raw, line[:n])
		block.Advance(n)

		node := east.NewEmoji([]byte(name), value)
		node.SetAttributeString(shortcutAttr, raw)
		return node
	}
	return nil
}

func isSeparator(r rune) bool {
	return unicode.In(r, unicode.Z, unicode.P, unicode.Cc) || unicode.IsSpace(r)
}
