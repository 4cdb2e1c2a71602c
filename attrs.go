package mdemoji

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"
)

// Attrs maps an HTML attribute name to its value.
//
// Values are string, bool or nil. A false or nil value omits the attribute,
// true renders the bare name, and numbers are formatted with fmt.
type Attrs map[string]any

// EmojiType tells image-backed emoji from unicode ones.
type EmojiType string

// Emoji types.
const (
	EmojiCustom  EmojiType = "custom"
	EmojiUnicode EmojiType = "unicode"
)

// EmojiMeta describes the emoji being rendered. It is handed to
// ComputedAttrs along with the default attributes.
type EmojiMeta struct {
	Name         string    // file name without extension or directories, e.g. "neocat"
	Filename     string    // token content, e.g. "/img/emoji/neocat/neocat.png"
	Subdir       string    // parent directory of the content, e.g. "neocat"
	RawShortcode string    // shortcode as written, e.g. ":neocat_neocat:"
	Type         EmojiType // custom or unicode
}

// AttrSource supplies caller overrides for the custom emoji <img> attributes.
// Use StaticAttrs or ComputedAttrs.
type AttrSource interface {
	resolve(meta EmojiMeta, defaults Attrs) any
}

// StaticAttrs is a fixed override. Value is usually an Attrs, but may hold any
// decoded value (for instance straight from a YAML config); anything that is
// not a mapping of scalars is rejected at render time.
type StaticAttrs struct {
	Value any
}

func (s StaticAttrs) resolve(EmojiMeta, Attrs) any { return s.Value }

// ComputedAttrs derives overrides per emoji. It receives a copy of the
// defaults; the result is validated like StaticAttrs.
type ComputedAttrs func(meta EmojiMeta, defaults Attrs) any

func (f ComputedAttrs) resolve(meta EmojiMeta, defaults Attrs) any {
	if f == nil {
		return nil
	}
	return f(meta, maps.Clone(defaults))
}

// normalizeAttrs validates a resolved override.
// Empty values (nil, false, "", 0) yield empty overrides without complaint.
// A mapping with some non-scalar values returns its scalar entries and an
// error; anything else that is not a mapping returns nil and an error.
func normalizeAttrs(v any) (Attrs, error) {
	if isZeroValue(v) {
		return Attrs{}, nil
	}

	switch m := v.(type) {
	case Attrs:
		return checkScalars(m)
	case map[string]any:
		return checkScalars(Attrs(m))
	case map[string]string:
		out := make(Attrs, len(m))
		for k, s := range m {
			out[k] = s
		}
		return out, nil
	case map[string]bool:
		out := make(Attrs, len(m))
		for k, b := range m {
			out[k] = b
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: got %T", ErrInvalidAttributes, v)
	}
}

// checkScalars keeps the scalar entries of m. Non-scalar entries are dropped
// and reported in the error, which is returned alongside the kept entries.
func checkScalars(m Attrs) (Attrs, error) {
	out := make(Attrs, len(m))
	var dropped []string
	for k, v := range m {
		if !isScalar(v) {
			dropped = append(dropped, fmt.Sprintf("%q (%T)", k, v))
			continue
		}
		out[k] = v
	}
	if len(dropped) > 0 {
		slices.Sort(dropped)
		return out, fmt.Errorf("%w: non-scalar values for %s", ErrInvalidAttributes, strings.Join(dropped, ", "))
	}
	return out, nil
}

func isScalar(v any) bool {
	if v == nil {
		return true
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func isZeroValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Func, reflect.Pointer, reflect.Interface:
		// Typed nil maps count as absent; empty slices do not.
		return rv.IsNil()
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return rv.IsZero()
	default:
		return false
	}
}

// mergeAttrs overlays overrides on defaults and returns the merged set along
// with the key order for serialization: default keys first, in order, then
// new override keys sorted.
func mergeAttrs(defaults Attrs, defaultOrder []string, overrides Attrs) (Attrs, []string) {
	merged := maps.Clone(defaults)
	if merged == nil {
		merged = Attrs{}
	}
	maps.Copy(merged, overrides)

	order := slices.Clone(defaultOrder)
	var extra []string
	for k := range overrides {
		if _, ok := defaults[k]; !ok {
			extra = append(extra, k)
		}
	}
	slices.Sort(extra)
	return merged, append(order, extra...)
}

// serializeAttrs renders attributes in the given key order.
// Values are interpolated as-is; callers supply safe values.
func serializeAttrs(attrs Attrs, order []string) string {
	parts := make([]string, 0, len(order))
	for _, k := range order {
		v, ok := attrs[k]
		if !ok || v == nil {
			continue
		}
		switch val := v.(type) {
		case bool:
			if val {
				parts = append(parts, k)
			}
		case string:
			parts = append(parts, k+`="`+val+`"`)
		default:
			parts = append(parts, fmt.Sprintf(`%s="%v"`, k, val))
		}
	}
	return strings.Join(parts, " ")
}
