package walker

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Pointers returns the pointer of every location in data in walk order,
// root included.
func Pointers(data any) []string {
	var ptrs []string
	Walk(data, func(ptr string, _ any) Action {
		ptrs = append(ptrs, ptr)
		return Continue
	})
	return ptrs
}

// Leaves returns the pointer of every non-container location in data in
// walk order. A scalar root yields the root pointer.
func Leaves(data any) []string {
	var ptrs []string
	Walk(data, func(ptr string, value any) Action {
		switch value.(type) {
		case map[string]any, []any:
		default:
			ptrs = append(ptrs, ptr)
		}
		return Continue
	})
	return ptrs
}

// SortPointers sorts a pointer listing in place using numeric-aware
// collation, so "/items/2" orders before "/items/10".
func SortPointers(ptrs []string) {
	collate.New(language.Und, collate.Numeric).SortStrings(ptrs)
}
