// Package walker provides single-pass traversal of nested data, visiting
// every location together with its JSON Pointer.
//
// # Quick Start
//
// Collect the pointer of every string value:
//
//	var found []string
//	walker.Walk(data, func(ptr string, value any) walker.Action {
//		if _, ok := value.(string); ok {
//			found = append(found, ptr)
//		}
//		return walker.Continue
//	})
//
// # Flow Control
//
// Visitors return an [Action] to control traversal:
//
//   - [Continue]: continue traversing children and siblings normally
//   - [SkipChildren]: skip all children of the current node, continue with siblings
//   - [Stop]: stop the entire walk immediately
//
// The walk is depth-first. Map keys are visited in sorted order so walks
// are deterministic; array elements are visited in index order. The root
// is visited first with the empty pointer.
//
// [Pointers] and [Leaves] are ready-made collectors, and [SortPointers]
// orders pointer listings with numeric-aware collation so "/items/2"
// sorts before "/items/10".
package walker
