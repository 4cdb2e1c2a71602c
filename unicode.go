package mdemoji

import (
	"fmt"
	"strings"
	"sync"

	"github.com/kyokomi/emoji/v2"
)

// UnicodeSet selects the built-in unicode emoji definitions used as a base.
type UnicodeSet string

// Supported unicode sets.
const (
	UnicodeFull  UnicodeSet = "full"
	UnicodeLight UnicodeSet = "light"
	UnicodeNone  UnicodeSet = "none"
)

// ParseUnicodeSet maps a set name to a UnicodeSet.
// Unrecognized names fall back to UnicodeFull.
func ParseUnicodeSet(s string) UnicodeSet {
	switch UnicodeSet(strings.ToLower(strings.TrimSpace(s))) {
	case UnicodeLight:
		return UnicodeLight
	case UnicodeNone:
		return UnicodeNone
	default:
		return UnicodeFull
	}
}

// ValidateUnicodeSet rejects names ParseUnicodeSet would silently replace.
// An empty name is valid and means the default.
func ValidateUnicodeSet(s string) error {
	switch UnicodeSet(strings.ToLower(strings.TrimSpace(s))) {
	case "", UnicodeFull, UnicodeLight, UnicodeNone:
		return nil
	default:
		return fmt.Errorf("%w: %q (must be full, light, or none)", ErrInvalidUnicodeSet, s)
	}
}

// lightNames are the common emoji kept by UnicodeLight.
var lightNames = []string{
	"grinning", "smiley", "smile", "grin", "laughing", "sweat_smile", "joy",
	"blush", "innocent", "wink", "relieved", "heart_eyes", "kissing_heart",
	"kissing", "yum", "stuck_out_tongue_winking_eye", "stuck_out_tongue",
	"sunglasses", "smirk", "neutral_face", "expressionless", "unamused",
	"sweat", "pensive", "confused", "confounded", "disappointed", "worried",
	"angry", "rage", "cry", "persevere", "triumph", "frowning", "anguished",
	"fearful", "weary", "sleepy", "tired_face", "grimacing", "sob",
	"open_mouth", "hushed", "cold_sweat", "scream", "astonished", "flushed",
	"sleeping", "dizzy_face", "mask", "smiling_imp", "imp", "thinking",
	"heart", "broken_heart", "star", "sparkles", "zap", "fire", "boom",
	"+1", "-1", "ok_hand", "wave", "clap", "pray", "muscle", "raised_hands",
	"eyes", "tada", "rocket", "warning", "x", "white_check_mark",
	"heavy_check_mark", "question", "exclamation", "100", "coffee", "bug",
}

var (
	fullOnce sync.Once
	fullDefs Definitions
)

// fullDefinitions builds the name to glyph table from kyokomi/emoji once.
func fullDefinitions() Definitions {
	fullOnce.Do(func() {
		codes := emoji.CodeMap()
		fullDefs = make(Definitions, len(codes))
		for code, glyph := range codes {
			name := strings.TrimSuffix(strings.TrimPrefix(code, ":"), ":")
			if name == "" {
				continue
			}
			fullDefs[name] = strings.TrimSpace(glyph)
		}
	})
	return fullDefs
}

// UnicodeDefinitions returns a fresh copy of the definitions for set.
func UnicodeDefinitions(set UnicodeSet) Definitions {
	switch set {
	case UnicodeNone:
		return Definitions{}
	case UnicodeLight:
		return fullDefinitions().Restrict(lightNames)
	default:
		return fullDefinitions().Clone()
	}
}
