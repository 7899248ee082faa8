// Command fibtables generates the per-width Fibonacci tables used by the codec.
//
// Usage:
//
//	fibtables -output tables_gen.go
//
// Or via go:generate from internal/table:
//
//	//go:generate go run ../cmd/fibtables -output tables_gen.go
//
// Each table starts at F(2)=1, F(3)=2 and ends at the largest Fibonacci number
// that does not exceed the maximum value of the width.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"math"
	"math/bits"
	"os"
)

var (
	outputFile  = flag.String("output", "tables_gen.go", "Output Go source file")
	packageName = flag.String("pkg", "table", "Package name of the generated file")
)

type width struct {
	name string
	bits int
	max  uint64
}

var widths = []width{
	{name: "Uint8", bits: 8, max: math.MaxUint8},
	{name: "Uint16", bits: 16, max: math.MaxUint16},
	{name: "Uint32", bits: 32, max: math.MaxUint32},
	{name: "Uint64", bits: 64, max: math.MaxUint64},
}

func main() {
	flag.Parse()

	src, err := generate(*packageName, widths)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*outputFile, src, 0o644); err != nil { //nolint:gosec
		fmt.Fprintf(os.Stderr, "Error: writing %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
}

// sequence returns F(2), F(3), ... up to and including the largest value <= maxVal.
func sequence(maxVal uint64) []uint64 {
	seq := []uint64{1, 2}
	for {
		prev, cur := seq[len(seq)-2], seq[len(seq)-1]
		next, carry := bits.Add64(prev, cur, 0)
		if carry != 0 || next > maxVal {
			return seq
		}
		seq = append(seq, next)
	}
}

func generate(pkg string, ws []width) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("// Code generated by fibtables; DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n", pkg)

	for _, w := range ws {
		seq := sequence(w.max)
		fmt.Fprintf(&buf, "\n// %s holds the %d Fibonacci numbers F(2)..F(%d) representable as uint%d.\n",
			w.name, len(seq), len(seq)+1, w.bits)
		fmt.Fprintf(&buf, "var %s = [...]uint%d{\n", w.name, w.bits)
		for _, v := range seq {
			fmt.Fprintf(&buf, "\t%d,\n", v)
		}
		buf.WriteString("}\n")
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}

	return src, nil
}
