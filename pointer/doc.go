// Package pointer implements JSON Pointers (RFC 6901) over live nested data.
//
// A pointer addresses a location inside a tree of map[string]any and []any
// containers, the shapes produced by unmarshaling JSON or YAML into any.
// The package covers three concerns: splitting pointer strings into decoded
// segments, joining segments or partial pointers (including relative ".."
// navigation) back into pointer strings, and traversing data to get, set,
// or delete the addressed value.
//
// # Resolving values
//
// Traversal never returns an error: a path that does not resolve yields
// (nil, false) from [Get] and leaves the data untouched in [Delete]:
//
//	v, ok := pointer.Get(data, "/users/0/name")
//	data = pointer.Delete(data, "/users/0")
//
// [Set] creates intermediate containers on demand. Whether a created
// container is an array or a map is decided by the following segment: the
// append marker "[]" and all-digit segments create arrays, anything else
// creates maps:
//
//	data = pointer.Set(nil, "/list/[]/value", 42) // map[list:[map[value:42]]]
//
// Set and Delete mutate the supplied containers in place where possible,
// but the returned root is authoritative: it differs from the input when
// the root was absent or when a root array had to grow or shrink.
//
// # Pointer strings and fragments
//
// Pointers may use the URI fragment form of RFC 6901 section 6, marked by
// a leading "#". Fragment pointers percent-encode each segment on top of
// the ~0/~1 escaping; [Parse] and [Join] detect the marker and decode
// accordingly:
//
//	pointer.Join("#/my value", "/to~1child") // "#/my%20value/to~1child"
//
// # Relative navigation
//
// [Join] understands ".." (pop the previously accumulated segment) and "."
// (no-op) when combining pointers. Popping past the root is a no-op rather
// than an error.
package pointer
