package pointer

import "strings"

// Join combines pointer strings and bare property keys into one
// normalized pointer string.
//
// Each argument is resolved on its own: a leading "#" switches the whole
// result to fragment form and is stripped; an argument that began with
// "#" or "/" or that contains a "/" is treated as a pointer and split
// into decoded segments; anything else is one bare, already-decoded
// segment. Empty arguments are skipped.
//
// The resolved segments are then accumulated in order with relative
// navigation applied: ".." pops the previously accumulated segment (a
// no-op when the accumulator is already empty), "." is skipped, and every
// other segment is pushed:
//
//	Join("root", "my key", "/to/target") // "/root/my key/to/target"
//	Join("#/my value", "../to~1child")   // "#/to~1child"
//
// The result re-escapes every segment and applies percent-encoding when
// fragment form was detected on any argument.
func Join(args ...string) string {
	var segments []string
	fragment := false
	for _, arg := range args {
		if arg == "" {
			continue
		}
		isFragment := false
		if strings.HasPrefix(arg, "#") {
			fragment = true
			isFragment = true
			arg = arg[1:]
			if arg == "" {
				continue
			}
		}
		if isFragment || strings.Contains(arg, "/") {
			arg = strings.TrimPrefix(arg, "/")
			for _, part := range strings.Split(arg, "/") {
				if isFragment {
					part = uriDecode(part)
				}
				segments = applyRelative(segments, Unescape(part))
			}
			continue
		}
		segments = applyRelative(segments, arg)
	}
	return format(segments, fragment)
}

// JoinSegments renders a list of already-decoded segments as a pointer
// string. Each entry is escaped individually and never re-split, so a
// segment containing "/" stays one segment. When uri is true the result
// uses fragment form: prefixed "#" with each segment percent-encoded.
//
// An empty list renders as "" ("#" when uri), the root pointer.
func JoinSegments(segments []string, uri bool) string {
	return format(segments, uri)
}

// applyRelative pushes one decoded segment onto the accumulator, honoring
// the relative segments ".." (pop) and "." (skip). Popping an empty
// accumulator is a no-op: a pointer can never escape above its root.
func applyRelative(segments []string, segment string) []string {
	switch segment {
	case "..":
		if len(segments) > 0 {
			segments = segments[:len(segments)-1]
		}
		return segments
	case ".":
		return segments
	default:
		return append(segments, segment)
	}
}
