package mdemoji

import (
	"maps"
	"slices"
)

// Shortcuts maps an emoji name to the plain-text shortcuts that render it,
// e.g. "smiley" -> [":)", ":-)"].
type Shortcuts map[string][]string

// DefaultShortcuts returns the built-in shortcut table.
func DefaultShortcuts() Shortcuts {
	return Shortcuts{
		"angry":            {">:(", ">:-("},
		"blush":            {`:")`, `:-")`},
		"broken_heart":     {"</3", `<\3`},
		"confused":         {":/", ":-/"},
		"cry":              {":'(", ":'-(", ":,(", ":,-("},
		"frowning":         {":(", ":-("},
		"heart":            {"<3"},
		"imp":              {"]:(", "]:-("},
		"innocent":         {"o:)", "O:)", "o:-)", "O:-)", "0:)", "0:-)"},
		"joy":              {":')", ":'-)", ":,)", ":,-)", ":'D", ":'-D", ":,D", ":,-D"},
		"kissing":          {":*", ":-*"},
		"laughing":         {"x-)", "X-)"},
		"neutral_face":     {":|", ":-|"},
		"open_mouth":       {":o", ":-o", ":O", ":-O"},
		"rage":             {":@", ":-@"},
		"smile":            {":D", ":-D"},
		"smiley":           {":)", ":-)"},
		"smiling_imp":      {"]:)", "]:-)"},
		"sob":              {":,'(", ":,'-(", ";(", ";-("},
		"stuck_out_tongue": {":P", ":-P"},
		"sunglasses":       {"8-)", "B-)"},
		"sweat":            {",:(", ",:-("},
		"sweat_smile":      {",:)", ",:-)"},
		"unamused":         {":s", ":-S", ":z", ":-Z", ":$", ":-$"},
		"wink":             {";)", ";-)"},
	}
}

// Merge returns s overlaid by other; entries in other replace whole lists.
func (s Shortcuts) Merge(other Shortcuts) Shortcuts {
	out := s.Clone()
	for name, list := range other {
		out[name] = slices.Clone(list)
	}
	return out
}

// Clone returns a deep copy. A nil receiver yields an empty map.
func (s Shortcuts) Clone() Shortcuts {
	out := make(Shortcuts, len(s))
	for name, list := range s {
		out[name] = slices.Clone(list)
	}
	return out
}

// Restrict drops shortcuts whose target name is not defined in defs, along
// with empty shortcut strings.
func (s Shortcuts) Restrict(defs Definitions) Shortcuts {
	out := make(Shortcuts, len(s))
	for name, list := range s {
		if _, ok := defs[name]; !ok {
			continue
		}
		kept := slices.DeleteFunc(slices.Clone(list), func(sc string) bool { return sc == "" })
		if len(kept) > 0 {
			out[name] = kept
		}
	}
	return out
}

// lookup inverts the table into shortcut text -> emoji name.
// When two names claim the same text, the lexically first name wins.
func (s Shortcuts) lookup() map[string]string {
	out := make(map[string]string)
	for _, name := range slices.Sorted(maps.Keys(s)) {
		for _, sc := range s[name] {
			if _, taken := out[sc]; !taken {
				out[sc] = name
			}
		}
	}
	return out
}

// ShortcutSource selects which shortcuts Compose starts from.
// Use ShortcutsOff, ShortcutsDefault or ShortcutsCustom.
type ShortcutSource interface {
	shortcuts() Shortcuts
}

type shortcutsOff struct{}

func (shortcutsOff) shortcuts() Shortcuts { return Shortcuts{} }

type shortcutsDefault struct{}

func (shortcutsDefault) shortcuts() Shortcuts { return DefaultShortcuts() }

type shortcutsCustom Shortcuts

func (c shortcutsCustom) shortcuts() Shortcuts { return Shortcuts(c).Clone() }

// Shortcut sources.
var (
	// ShortcutsOff contributes no shortcuts of its own.
	ShortcutsOff ShortcutSource = shortcutsOff{}
	// ShortcutsDefault contributes the built-in table.
	ShortcutsDefault ShortcutSource = shortcutsDefault{}
)

// ShortcutsCustom contributes an explicit table.
func ShortcutsCustom(s Shortcuts) ShortcutSource {
	return shortcutsCustom(s.Clone())
}

// ShortcutsFromBool maps true to ShortcutsDefault and false to ShortcutsOff.
func ShortcutsFromBool(enabled bool) ShortcutSource {
	if enabled {
		return ShortcutsDefault
	}
	return ShortcutsOff
}
