package pointer

import (
	"net/url"
	"strings"
)

// AppendMarker is the literal segment requesting array growth: used as the
// final segment of a Set pointer it appends a new element, and as an
// intermediate segment it appends a freshly created container.
const AppendMarker = "[]"

var (
	escaper   = strings.NewReplacer("~", "~0", "/", "~1")
	unescaper = strings.NewReplacer("~1", "/", "~0", "~")
)

// Escape encodes a raw segment per RFC 6901: "~" becomes "~0" and "/"
// becomes "~1". Any string is valid input.
func Escape(segment string) string {
	if !strings.ContainsAny(segment, "~/") {
		return segment
	}
	return escaper.Replace(segment)
}

// Unescape decodes an escaped segment: "~1" becomes "/" and "~0" becomes
// "~". Sequences that match neither pattern pass through unchanged.
func Unescape(segment string) string {
	if !strings.Contains(segment, "~") {
		return segment
	}
	return unescaper.Replace(segment)
}

// uriEncode percent-encodes an already pointer-escaped segment for the URI
// fragment form.
func uriEncode(segment string) string {
	return url.PathEscape(segment)
}

// uriDecode reverses uriEncode. Malformed percent sequences pass through
// undecoded rather than failing.
func uriDecode(segment string) string {
	if !strings.Contains(segment, "%") {
		return segment
	}
	decoded, err := url.PathUnescape(segment)
	if err != nil {
		return segment
	}
	return decoded
}

// parseIndex parses a segment as a non-negative base-10 array index.
// Anything other than a run of ASCII digits is rejected.
func parseIndex(segment string) (int, bool) {
	if segment == "" {
		return 0, false
	}
	n := 0
	for i := 0; i < len(segment); i++ {
		c := segment[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
		if n < 0 { // overflow
			return 0, false
		}
	}
	return n, true
}

// arraySegment reports whether a segment addresses an array: the append
// marker or an all-digit index.
func arraySegment(segment string) bool {
	if segment == AppendMarker {
		return true
	}
	_, ok := parseIndex(segment)
	return ok
}

// newContainer returns the container the given segment addresses into:
// a slice when the segment looks like an array position, otherwise a map.
// This is the single decision point for container creation during Set.
func newContainer(segment string) any {
	if arraySegment(segment) {
		return []any{}
	}
	return map[string]any{}
}
