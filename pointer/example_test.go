package pointer_test

import (
	"fmt"

	"github.com/418sec/gson-pointer/pointer"
)

func ExampleGet() {
	data := map[string]any{
		"users": []any{
			map[string]any{"name": "ada"},
		},
	}

	name, ok := pointer.Get(data, "/users/0/name")
	fmt.Println(name, ok)

	_, ok = pointer.Get(data, "/users/7/name")
	fmt.Println(ok)
	// Output:
	// ada true
	// false
}

func ExampleSet() {
	data := pointer.Set(nil, "/list/[]/value", 42)
	fmt.Println(data)
	// Output:
	// map[list:[map[value:42]]]
}

func ExampleDelete() {
	data := map[string]any{"a": []any{"x", "y"}}
	data = pointer.Delete(data, "/a/0").(map[string]any)
	fmt.Println(data)
	// Output:
	// map[a:[y]]
}

func ExampleJoin() {
	fmt.Println(pointer.Join("root", "my key", "/to/target"))
	fmt.Println(pointer.Join("#/my value", "../to~1child"))
	// Output:
	// /root/my key/to/target
	// #/to~1child
}

func ExampleSplit() {
	fmt.Printf("%q\n", pointer.Split("/paths/~1users/get"))
	// Output:
	// ["paths" "/users" "get"]
}

func ExampleJoinSegments() {
	fmt.Println(pointer.JoinSegments([]string{"paths", "/users", "get"}, false))
	// Output:
	// /paths/~1users/get
}
