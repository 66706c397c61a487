package walker

import "sort"

// Action controls traversal flow from a visitor.
type Action int

const (
	// Continue traversing children and siblings normally.
	Continue Action = iota
	// SkipChildren skips the current node's children, continuing with siblings.
	SkipChildren
	// Stop ends the entire walk immediately.
	Stop
)

// Visitor receives each visited location: its pointer in canonical string
// form and its value. The returned Action controls the walk.
type Visitor func(ptr string, value any) Action

// Walk traverses data depth-first, calling visit for every location
// including the root (visited with the empty pointer). Map keys are
// visited in sorted order; array elements in index order.
func Walk(data any, visit Visitor) {
	var b Builder
	walk(data, &b, visit)
}

// walk returns false when the visitor requested Stop.
func walk(node any, b *Builder, visit Visitor) bool {
	switch visit(b.String(), node) {
	case Stop:
		return false
	case SkipChildren:
		return true
	}

	switch c := node.(type) {
	case map[string]any:
		keys := make([]string, 0, len(c))
		for k := range c {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			b.Push(k)
			ok := walk(c[k], b, visit)
			b.Pop()
			if !ok {
				return false
			}
		}
	case []any:
		for i, elem := range c {
			b.PushIndex(i)
			ok := walk(elem, b, visit)
			b.Pop()
			if !ok {
				return false
			}
		}
	}
	return true
}
