// Command gsonptr resolves, mutates, and lists JSON Pointer locations in
// JSON and YAML files.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	gsonpointer "github.com/418sec/gson-pointer"
	"github.com/418sec/gson-pointer/document"
	"github.com/418sec/gson-pointer/internal/mcpserver"
)

var commands = []string{"get", "set", "delete", "list", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("gsonptr v%s\n", gsonpointer.Version())
	case "help", "-h", "--help":
		printUsage()
	case "get":
		if err := handleGet(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "set":
		if err := handleSet(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "delete":
		if err := handleDelete(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "list":
		if err := handleList(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := mcpserver.Run(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean %q?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`gsonptr - JSON Pointer operations on JSON and YAML files

Usage:
  gsonptr <command> [flags] [arguments]

Commands:
  get      Resolve a pointer and print the addressed value
  set      Write a value at a pointer location
  delete   Remove the value at a pointer location
  list     List every pointer in a document
  mcp      Run as an MCP server over stdio
  version  Print version information
  help     Show this help

Examples:
  gsonptr get config.yaml /metadata/title
  gsonptr set -o out.yaml config.yaml /spec/replicas 5
  gsonptr set config.json /users/[]/name ada
  gsonptr delete config.json /users/0
  gsonptr list -leaves config.yaml

Run 'gsonptr <command> -h' for command-specific flags.`)
}

func handleGet(args []string) error {
	fs := flag.NewFlagSet("get", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: gsonptr get <file> <pointer>\n\n")
		fmt.Fprintf(fs.Output(), "Resolve a JSON Pointer and print the addressed value as JSON.\n")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("expected <file> and <pointer> arguments")
	}

	doc, err := document.Load(fs.Arg(0))
	if err != nil {
		return err
	}

	value, ok := doc.Get(fs.Arg(1))
	if !ok {
		return fmt.Errorf("pointer %q does not resolve", fs.Arg(1))
	}

	encoded, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode value: %w", err)
	}
	fmt.Println(string(encoded))
	return nil
}

func handleSet(args []string) error {
	fs := flag.NewFlagSet("set", flag.ContinueOnError)
	output := fs.String("o", "", "write the updated document to this file instead of stdout")
	write := fs.Bool("w", false, "write the updated document back to the input file")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: gsonptr set [flags] <file> <pointer> <value>\n\n")
		fmt.Fprintf(fs.Output(), "Write a value at a pointer location, creating intermediate containers.\n")
		fmt.Fprintf(fs.Output(), "The value is parsed as JSON; unparsable input is treated as a string.\n")
		fmt.Fprintf(fs.Output(), "Use [] as the final pointer segment to append to an array.\n\n")
		fmt.Fprintf(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if fs.NArg() != 3 {
		fs.Usage()
		return fmt.Errorf("expected <file>, <pointer>, and <value> arguments")
	}

	doc, err := document.Load(fs.Arg(0))
	if err != nil {
		return err
	}

	doc.Set(fs.Arg(1), parseValue(fs.Arg(2)))

	return emit(doc, *output, *write)
}

func handleDelete(args []string) error {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	output := fs.String("o", "", "write the updated document to this file instead of stdout")
	write := fs.Bool("w", false, "write the updated document back to the input file")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: gsonptr delete [flags] <file> <pointer>\n\n")
		fmt.Fprintf(fs.Output(), "Remove the value at a pointer location. Array elements are spliced\n")
		fmt.Fprintf(fs.Output(), "out; paths that do not resolve are a no-op.\n\n")
		fmt.Fprintf(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("expected <file> and <pointer> arguments")
	}

	doc, err := document.Load(fs.Arg(0))
	if err != nil {
		return err
	}

	doc.Delete(fs.Arg(1))

	return emit(doc, *output, *write)
}

func handleList(args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	leaves := fs.Bool("leaves", false, "list only scalar locations")
	prefix := fs.String("prefix", "", "only list pointers at or below this pointer")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: gsonptr list [flags] <file>\n\n")
		fmt.Fprintf(fs.Output(), "List every JSON Pointer in a document, one per line, in sorted order.\n\n")
		fmt.Fprintf(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("expected a <file> argument")
	}

	doc, err := document.Load(fs.Arg(0))
	if err != nil {
		return err
	}

	var ptrs []string
	if *leaves {
		ptrs = doc.Leaves()
	} else {
		ptrs = doc.Pointers()
	}
	for _, ptr := range filterPrefix(ptrs, *prefix) {
		fmt.Println(ptr)
	}
	return nil
}

// parseValue parses a CLI value argument as JSON, falling back to the raw
// string so bare words don't require shell-quoted JSON quotes.
func parseValue(raw string) any {
	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return raw
	}
	return value
}

// filterPrefix keeps pointers at or below the given pointer. An empty
// prefix keeps everything.
func filterPrefix(ptrs []string, prefix string) []string {
	if prefix == "" {
		return ptrs
	}
	filtered := make([]string, 0, len(ptrs))
	for _, ptr := range ptrs {
		if ptr == prefix || len(ptr) > len(prefix) && ptr[:len(prefix)+1] == prefix+"/" {
			filtered = append(filtered, ptr)
		}
	}
	return filtered
}

// emit writes the document to the requested destination: -o path, back to
// the input file with -w, or stdout by default.
func emit(doc *document.Document, output string, write bool) error {
	switch {
	case output != "":
		return doc.Save(output)
	case write:
		return doc.Save("")
	default:
		data, err := doc.Marshal()
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	}
}

// suggestCommand returns the closest known command within edit distance 2,
// or "" when nothing is close enough.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3
	for _, cmd := range commands {
		if d := editDistance(input, cmd); d < bestDist {
			best = cmd
			bestDist = d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between two strings.
func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
