package walker

import (
	"strconv"
	"strings"

	"github.com/418sec/gson-pointer/pointer"
)

// Builder provides efficient incremental pointer construction.
// Uses push/pop semantics to avoid allocations during traversal.
// The full string is only materialized when String() is called.
type Builder struct {
	segments []string
	length   int // Pre-calculated length for String() allocation
}

// Push adds a key segment to the pointer, escaping it as needed.
func (b *Builder) Push(segment string) {
	segment = pointer.Escape(segment)
	b.segments = append(b.segments, segment)
	b.length += len(segment) + 1 // leading separator
}

// PushIndex adds an array index segment.
func (b *Builder) PushIndex(i int) {
	segment := strconv.Itoa(i)
	b.segments = append(b.segments, segment)
	b.length += len(segment) + 1
}

// Pop removes the last segment.
func (b *Builder) Pop() {
	if len(b.segments) == 0 {
		return
	}
	last := b.segments[len(b.segments)-1]
	b.segments = b.segments[:len(b.segments)-1]
	b.length -= len(last) + 1
}

// Reset clears the builder for reuse.
func (b *Builder) Reset() {
	b.segments = b.segments[:0]
	b.length = 0
}

// Len returns the number of segments.
func (b *Builder) Len() int {
	return len(b.segments)
}

// String materializes the full pointer. The empty builder renders as "",
// the root pointer.
func (b *Builder) String() string {
	if len(b.segments) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(b.length)
	for _, segment := range b.segments {
		sb.WriteByte('/')
		sb.WriteString(segment)
	}
	return sb.String()
}
