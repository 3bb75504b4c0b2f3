// Command jsvalidate is ambient CLI tooling around the core streaming
// validator (SPEC_FULL.md §5): it is not part of the validator's contract,
// only a convenience wrapper that loads a schema and a document from disk
// and reports whether the document conforms.
package main

import (
	"flag"
	"fmt"
	"os"

	jv "github.com/reoring/jsvalidate"
	"github.com/reoring/jsvalidate/schemaload"
	"github.com/reoring/jsvalidate/source"
)

func main() {
	fs := flag.NewFlagSet("jsvalidate", flag.ExitOnError)
	schemaPath := fs.String("schema", "", "path to a JSON or YAML schema document")
	docPath := fs.String("doc", "", "path to the JSON document to validate")
	verbose := fs.Bool("v", false, "print collected issues on failure")
	_ = fs.Parse(os.Args[1:])

	if *schemaPath == "" || *docPath == "" {
		fmt.Fprintln(os.Stderr, "usage: jsvalidate -schema schema.json -doc doc.json [-v]")
		os.Exit(2)
	}

	valid, issues, err := run(*schemaPath, *docPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "jsvalidate: %v\n", err)
		os.Exit(2)
	}
	if valid {
		fmt.Println("valid")
		return
	}
	fmt.Println("invalid")
	if *verbose {
		for _, iss := range issues {
			fmt.Printf("  %s: %s\n", iss.Path, iss.Message)
		}
	}
	os.Exit(1)
}

func run(schemaPath, docPath string) (bool, jv.Issues, error) {
	schemaBytes, err := os.ReadFile(schemaPath)
	if err != nil {
		return false, nil, err
	}
	docBytes, err := os.ReadFile(docPath)
	if err != nil {
		return false, nil, err
	}

	schemaVal, err := schemaload.Load(schemaBytes)
	if err != nil {
		return false, nil, fmt.Errorf("loading schema: %w", err)
	}
	root := jv.Compile(schemaVal)

	validator := jv.NewValidator(root, nil)
	rec := jv.NewRecorder(validator)

	ts := source.NewBytes(docBytes)
	if _, err := jv.Drive(ts, rec); err != nil {
		return false, nil, fmt.Errorf("reading document: %w", err)
	}
	return rec.IsValid(), rec.Issues(), nil
}
