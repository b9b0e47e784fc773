// Copyright (C) 2024 The flexjson Authors. All Rights Reserved.

// Command flexjson reads a JSON (or near-JSON) document, recovers from
// whatever is wrong with it, and writes it back out in one of a few
// shapes. It is a thin CLI wrapper over the flexjson and tree packages.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/flexjson/flexjson"
	"github.com/flexjson/flexjson/tree"
)

func main() {
	var (
		pretty     = flag.Bool("pretty", false, "pretty-print the result")
		minify     = flag.Bool("minify", false, "minify the result")
		sortKeys   = flag.Bool("sort", false, "sort object keys recursively")
		stripNulls = flag.Bool("strip-nulls", false, "drop object members whose value is null")
		stats      = flag.Bool("stats", false, "print value/type statistics instead of the document")
		query      = flag.String("query", "", "print the value at this dot/bracket path")
		format     = flag.String("format", "json", "output format: json or toml")
		strict     = flag.Bool("strict", false, "fail on the first malformed byte instead of recovering")
		maxDepth   = flag.Int("max-depth", 0, "maximum container nesting depth (0 selects the default)")
	)
	flag.Parse()

	if err := run(*pretty, *minify, *sortKeys, *stripNulls, *stats, *query, *format, *strict, *maxDepth); err != nil {
		fmt.Fprintln(os.Stderr, "flexjson:", err)
		os.Exit(1)
	}
}

func run(pretty, minify, sortKeys, stripNulls, stats bool, query, format string, strict bool, maxDepth int) error {
	input, err := readInput(flag.Arg(0))
	if err != nil {
		return err
	}

	opts := flexjson.DefaultOptions()
	opts.Strict = strict
	if maxDepth > 0 {
		opts.MaxDepth = maxDepth
	}

	out := flexjson.ParseSmart(string(input), &opts)
	if !out.OK && strict {
		return fmt.Errorf("%s", out.Errors[0])
	}

	var v flexjson.Value
	if len(out.Results) > 0 {
		v = out.Results[0]
	} else {
		v = flexjson.Null()
	}

	if sortKeys {
		v = tree.SortKeys(v)
	}
	if stripNulls {
		v = tree.StripNulls(v)
	}
	if query != "" {
		v, err = tree.Query(v, query)
		if err != nil {
			return err
		}
	}

	if stats {
		return writeStats(os.Stdout, tree.Stats(v), format)
	}
	return writeValue(os.Stdout, v, pretty, minify, format, out.Errors)
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeValue(w io.Writer, v flexjson.Value, pretty, minify bool, format string, diagnostics []string) error {
	switch format {
	case "toml":
		enc := toml.NewEncoder(w)
		return enc.Encode(rawJSONForTOML(v))
	case "json", "":
		indent := "  "
		if minify {
			indent = ""
		}
		if !pretty && !minify {
			indent = "  "
		}
		if _, err := w.Write(tree.Pretty(v, indent)); err != nil {
			return err
		}
		fmt.Fprintln(w)
		for _, d := range diagnostics {
			fmt.Fprintln(os.Stderr, d)
		}
		return nil
	default:
		return fmt.Errorf("unknown -format %q", format)
	}
}

// rawJSONForTOML converts v to a plain Go value (map[string]any,
// []any, and scalars) via encoding/json, since toml.Encoder does not
// know how to walk a flexjson.Value directly.
func rawJSONForTOML(v flexjson.Value) any {
	var out any
	// tree.Minify renders v as standard JSON text, so decoding that
	// with encoding/json is a correct and simple way to erase it to `any`.
	b := tree.Minify(v)
	if err := json.Unmarshal(b, &out); err != nil {
		return nil
	}
	return out
}

func writeStats(w io.Writer, s tree.Statistics, format string) error {
	switch format {
	case "toml":
		return toml.NewEncoder(w).Encode(s)
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}
}
