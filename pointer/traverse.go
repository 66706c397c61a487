package pointer

// Get resolves a pointer string against data and returns the addressed
// value. The boolean reports whether the path resolved: absent keys,
// out-of-range or non-numeric array indices, and traversal into scalars
// all yield (nil, false) without panicking. The root pointer returns
// (data, true) for any data.
func Get(data any, ptr string) (any, bool) {
	return Parse(ptr).Get(data)
}

// Set writes value at the location a pointer string addresses, creating
// intermediate containers as needed, and returns the resulting root.
// Callers must use the returned root: it differs from the input when the
// root was absent, when a root array grew, or when the pointer is the
// root pointer (which replaces the root with value).
func Set(data any, ptr string, value any) any {
	return Parse(ptr).Set(data, value)
}

// Delete removes the value a pointer string addresses and returns the
// resulting root. Paths that do not resolve are a silent no-op, as is the
// root pointer. Array elements are spliced out: the array shrinks by one
// with no hole left behind.
func Delete(data any, ptr string) any {
	return Parse(ptr).Delete(data)
}

// Get resolves the pointer against data. See the package-level [Get].
func (p Pointer) Get(data any) (any, bool) {
	current := data
	for _, segment := range p.segments {
		switch c := current.(type) {
		case map[string]any:
			v, ok := c[segment]
			if !ok {
				return nil, false
			}
			current = v
		case []any:
			idx, ok := parseIndex(segment)
			if !ok || idx >= len(c) {
				return nil, false
			}
			current = c[idx]
		default:
			return nil, false
		}
	}
	return current, true
}

// Has reports whether the pointer resolves against data.
func (p Pointer) Has(data any) bool {
	_, ok := p.Get(data)
	return ok
}

// Set writes value at the pointer's location. See the package-level [Set].
func (p Pointer) Set(data any, value any) any {
	return setSegments(data, p.segments, value)
}

// setSegments writes value at segs below node and returns the container
// that now holds it, so each caller can store the possibly-new reference
// back into its parent (slice headers change when arrays grow).
func setSegments(node any, segs []string, value any) any {
	if len(segs) == 0 {
		return value
	}
	head, rest := segs[0], segs[1:]
	switch c := node.(type) {
	case map[string]any:
		if len(rest) == 0 {
			c[head] = value
		} else {
			c[head] = setSegments(c[head], rest, value)
		}
		return c
	case []any:
		if head == AppendMarker {
			if len(rest) == 0 {
				return append(c, value)
			}
			return append(c, setSegments(nil, rest, value))
		}
		idx, ok := parseIndex(head)
		if !ok {
			// non-numeric segment against an array: nothing to address
			return c
		}
		for idx >= len(c) {
			c = append(c, nil)
		}
		if len(rest) == 0 {
			c[idx] = value
		} else {
			c[idx] = setSegments(c[idx], rest, value)
		}
		return c
	default:
		// absent or scalar node: replace it with the container the
		// current segment addresses into, then descend again
		return setSegments(newContainer(head), segs, value)
	}
}

// Delete removes the pointer's location from data. See the package-level
// [Delete].
func (p Pointer) Delete(data any) any {
	if len(p.segments) == 0 {
		return data
	}
	return deleteSegments(data, p.segments)
}

// deleteSegments removes segs below node and returns the container, so
// each caller can store back a spliced slice's new header.
func deleteSegments(node any, segs []string) any {
	head, rest := segs[0], segs[1:]
	switch c := node.(type) {
	case map[string]any:
		if len(rest) == 0 {
			delete(c, head)
			return c
		}
		if child, ok := c[head]; ok {
			c[head] = deleteSegments(child, rest)
		}
		return c
	case []any:
		idx, ok := parseIndex(head)
		if !ok || idx >= len(c) {
			return c
		}
		if len(rest) == 0 {
			return append(c[:idx], c[idx+1:]...)
		}
		c[idx] = deleteSegments(c[idx], rest)
		return c
	default:
		return node
	}
}
