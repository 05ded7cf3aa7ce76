// Copyright 2025 The originmeta authors
// SPDX-License-Identifier: MIT

// Command originmeta prints the astronomical metadata embedded in a
// Celestron Origin stacked TIFF.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/jrrk2/originmeta"
)

func main() {
	var (
		asJSON  = flag.Bool("json", false, "print the raw metadata document as JSON")
		verbose = flag.Bool("v", false, "print diagnostics about why a file yields no metadata")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: originmeta [flags] <file.tiff>\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	filename := flag.Arg(0)

	f, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "originmeta: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	opts := originmeta.Options{R: f}
	if *verbose {
		opts.Warnf = func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}
	}

	doc, err := originmeta.Decode(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "originmeta: %v\n", err)
		os.Exit(1)
	}
	if doc == nil {
		fmt.Printf("No Origin astronomical metadata found in %s\n", filename)
		return
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			fmt.Fprintf(os.Stderr, "originmeta: %v\n", err)
			os.Exit(1)
		}
		return
	}

	originmeta.WriteReport(os.Stdout, filename, doc)
}
