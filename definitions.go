package mdemoji

import (
	"maps"
	"slices"
)

// Definitions maps an emoji shortcode name (without colons) to its content:
// a site URL for image-backed emoji, or the literal glyph for unicode emoji.
type Definitions map[string]string

// Merge returns a new Definitions holding every layer in order.
// Later layers win on key collision. Nil layers are skipped.
func Merge(layers ...Definitions) Definitions {
	size := 0
	for _, l := range layers {
		size += len(l)
	}
	out := make(Definitions, size)
	for _, l := range layers {
		maps.Copy(out, l)
	}
	return out
}

// Clone returns a shallow copy. A nil receiver yields an empty map.
func (d Definitions) Clone() Definitions {
	out := make(Definitions, len(d))
	maps.Copy(out, d)
	return out
}

// Restrict returns the subset of d whose names appear in allow.
// Unknown names in allow are ignored.
func (d Definitions) Restrict(allow []string) Definitions {
	out := make(Definitions, len(allow))
	for _, name := range allow {
		if v, ok := d[name]; ok {
			out[name] = v
		}
	}
	return out
}

// Names returns the definition names in sorted order.
func (d Definitions) Names() []string {
	return slices.Sorted(maps.Keys(d))
}
