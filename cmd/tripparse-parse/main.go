// Command tripparse-parse parses a travel query from the command line and
// prints the result as JSON. No network, no store, just the rule engine
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"tripparse/internal/core/parser"
	"tripparse/internal/core/rulepack"
)

func main() {
	var (
		query    string
		langOnly bool
	)
	flag.StringVar(&query, "q", "", "travel query text (required)")
	flag.BoolVar(&langOnly, "lang", false, "print only the language detection result")
	flag.Parse()

	if query == "" {
		fmt.Fprintln(os.Stderr, "usage: tripparse-parse -q \"from NYC to GRU nov 15\" [-lang]")
		os.Exit(2)
	}

	pack, err := rulepack.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "rulepack:", err)
		os.Exit(1)
	}
	p := parser.New(pack)

	var out any
	if langOnly {
		out = p.Languages().Detect(query)
	} else {
		out = p.Parse(query)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintln(os.Stderr, "encode:", err)
		os.Exit(1)
	}
}
