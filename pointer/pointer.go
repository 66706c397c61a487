package pointer

import "strings"

// Pointer is a parsed JSON Pointer: an ordered list of decoded segments
// plus a flag recording whether the pointer used the URI fragment form.
// The zero value is the root pointer.
//
// Pointers are immutable values; the traversal and formatting methods
// never modify them.
type Pointer struct {
	segments []string
	fragment bool
}

// Parse splits a pointer string into a Pointer.
//
// A leading "#" marks fragment form: it is stripped and each segment is
// percent-decoded before unescaping. A single leading "/" is stripped, the
// remainder splits on "/", and each piece is unescaped. "" and "#" parse
// to the root pointer. Parsing never fails; unrecognized escape sequences
// pass through untouched.
func Parse(s string) Pointer {
	var p Pointer
	if strings.HasPrefix(s, "#") {
		p.fragment = true
		s = s[1:]
	}
	if s == "" {
		return p
	}
	s = strings.TrimPrefix(s, "/")
	parts := strings.Split(s, "/")
	p.segments = make([]string, len(parts))
	for i, part := range parts {
		if p.fragment {
			part = uriDecode(part)
		}
		p.segments[i] = Unescape(part)
	}
	return p
}

// FromSegments builds a Pointer from already-decoded segments. The slice
// is copied; entries are taken verbatim and never re-split or unescaped.
func FromSegments(segments []string) Pointer {
	if len(segments) == 0 {
		return Pointer{}
	}
	copied := make([]string, len(segments))
	copy(copied, segments)
	return Pointer{segments: copied}
}

// Split returns the decoded segments of a pointer string. The root
// pointer ("" or "#") yields an empty slice; "/" yields the single empty
// segment addressing the "" key.
func Split(s string) []string {
	return Parse(s).Segments()
}

// Segments returns a copy of the decoded segments.
func (p Pointer) Segments() []string {
	if len(p.segments) == 0 {
		return nil
	}
	copied := make([]string, len(p.segments))
	copy(copied, p.segments)
	return copied
}

// Len returns the number of segments.
func (p Pointer) Len() int {
	return len(p.segments)
}

// IsRoot reports whether the pointer addresses the document root.
func (p Pointer) IsRoot() bool {
	return len(p.segments) == 0
}

// IsFragment reports whether the pointer was given in URI fragment form.
func (p Pointer) IsFragment() bool {
	return p.fragment
}

// String renders the pointer back to its canonical string form, escaping
// each segment and re-applying fragment encoding when the pointer came
// from fragment form. The root pointer renders as "" ("#" in fragment
// form) so that Parse(p.String()) round-trips to the same logical path.
func (p Pointer) String() string {
	return format(p.segments, p.fragment)
}

// format renders decoded segments as a pointer string.
func format(segments []string, fragment bool) string {
	if len(segments) == 0 {
		if fragment {
			return "#"
		}
		return ""
	}
	var b strings.Builder
	if fragment {
		b.WriteByte('#')
	}
	for _, segment := range segments {
		b.WriteByte('/')
		encoded := Escape(segment)
		if fragment {
			encoded = uriEncode(encoded)
		}
		b.WriteString(encoded)
	}
	return b.String()
}
