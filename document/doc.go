// Package document loads, addresses, and saves JSON and YAML documents.
//
// A Document wraps the generic map[string]any / []any tree produced by
// unmarshaling, remembers which format it came from, and exposes the
// pointer operations directly:
//
//	doc, err := document.Load("config.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	title, ok := doc.Get("/metadata/title")
//	doc.Set("/metadata/updated", true)
//	doc.Delete("/metadata/draft")
//	err = doc.Save("config.yaml")
//
// The YAML parser handles both YAML and JSON input, so Load and Parse
// accept either; the detected (or configured) format drives Marshal and
// Save output.
//
// Loading enforces a file size ceiling to prevent resource exhaustion;
// see [MaxFileSize] and [ResourceLimitError].
package document
