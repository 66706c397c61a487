// Package gsonpointer provides tools for resolving, mutating, and building
// JSON Pointer (RFC 6901) paths against arbitrary nested data.
//
// The library consists of three primary packages:
//
//   - pointer: parse, split, join, and apply JSON Pointers (get/set/delete)
//   - document: load and save JSON or YAML documents and address them with pointers
//   - walker: traverse nested data, visiting every location with its pointer
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/418sec/gson-pointer
//
// # Quick Start
//
// Read a deeply nested value without manual nil-checking:
//
//	import "github.com/418sec/gson-pointer/pointer"
//
//	v, ok := pointer.Get(data, "/users/0/name")
//	if !ok {
//		// path does not resolve; no panic, no error
//	}
//
// Write a value, creating intermediate containers on demand:
//
//	data = pointer.Set(data, "/users/[]/name", "ada")
//
// Build pointers from parts, including relative navigation:
//
//	ptr := pointer.Join("#/users/0", "../1", "name") // "#/users/1/name"
//
// Load a document from disk and address it:
//
//	import "github.com/418sec/gson-pointer/document"
//
//	doc, err := document.Load("config.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	title, _ := doc.Get("/metadata/title")
//
// A command line tool is available under cmd/gsonptr, exposing get, set,
// delete, and list commands over JSON and YAML files, plus an MCP server
// mode for editor integrations.
package gsonpointer
