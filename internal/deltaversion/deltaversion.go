// Package deltaversion orders the logical version markers carried on
// appointment deltas. Two encodings exist in the wild: a fixed-width
// zero-left-padded decimal timestamp string, and a chronological instant.
// A record stream uses one encoding consistently; a single comparison never
// mixes encodings.
package deltaversion

import (
	"fmt"
	"strings"
	"time"
)

type Encoding int

const (
	// EncodingString compares the wire form lexicographically. Shorter
	// strings sort as less; callers relying on this must keep the wire form
	// fixed-width. Numeric comparison is deliberately not re-derived here.
	EncodingString Encoding = iota
	// EncodingInstant compares by wall-clock ordering.
	EncodingInstant
)

// timestampLayout is the wire form of instant-encoded deltas:
// yyyyMMddHHmmssSSSSSS in UTC.
const timestampLayout = "20060102150405.000000"

// Version is a tagged delta version. The zero Version means "no version
// observed" and is never stale against anything.
type Version struct {
	encoding Encoding
	raw      string
	at       time.Time
	present  bool
}

func FromString(raw string) Version {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Version{}
	}
	return Version{encoding: EncodingString, raw: raw, present: true}
}

func FromInstant(at time.Time) Version {
	if at.IsZero() {
		return Version{}
	}
	return Version{encoding: EncodingInstant, at: at, present: true}
}

// ParseTimestamp converts the yyyyMMddHHmmssSSSSSS wire form into an
// instant-encoded version.
func ParseTimestamp(raw string) (Version, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Version{}, fmt.Errorf("empty delta timestamp")
	}
	if len(raw) != 20 {
		return Version{}, fmt.Errorf("malformed delta timestamp %q", raw)
	}
	// time's fractional-second layout needs a separator the wire form omits.
	at, err := time.ParseInLocation(timestampLayout, raw[:14]+"."+raw[14:], time.UTC)
	if err != nil {
		return Version{}, fmt.Errorf("malformed delta timestamp %q: %w", raw, err)
	}
	return FromInstant(at), nil
}

func (v Version) IsZero() bool { return !v.present }

func (v Version) Encoding() Encoding { return v.encoding }

// String renders the wire form.
func (v Version) String() string {
	if !v.present {
		return ""
	}
	if v.encoding == EncodingInstant {
		return strings.Replace(v.at.UTC().Format(timestampLayout), ".", "", 1)
	}
	return v.raw
}

// Instant returns the chronological value for instant-encoded versions.
func (v Version) Instant() time.Time { return v.at }

// IsStale reports whether incoming must be rejected against existing:
// incoming <= existing under the encoding-appropriate ordering. Equal
// versions are always stale, so exact-duplicate redelivery is dropped on
// the write path. When no existing version has been observed nothing is
// stale.
func IsStale(existing, incoming Version) bool {
	if !existing.present {
		return false
	}
	if !incoming.present {
		return true
	}
	if existing.encoding == EncodingInstant {
		return !incoming.at.After(existing.at)
	}
	return strings.Compare(incoming.raw, existing.raw) <= 0
}
