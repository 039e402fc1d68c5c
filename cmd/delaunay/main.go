// SPDX-License-Identifier: MIT
// Command delaunay reads a .node file and writes the .ele file of its
// Delaunay triangulation, or triangulates a generated point set.
//
// Usage:
//
//	delaunay -i FILE [-o FILE] [-V] [-T]
//	delaunay -gen KIND:PARAMS [-o FILE] [-V] [-T]
//
// Flags:
//
//	-i FILE    input .node file (required unless -gen is given)
//	-gen SPEC  generate a point set instead of reading -i; SPEC is
//	           KIND:PARAMS where KIND is one of:
//	             regular:N      regular N-gon centered at the origin
//	             grid:RxC       R-by-C grid of unit spacing
//	             collinear:N    N points on a line
//	             uniform:N      N uniform-random points in [0,1000)
//	-o FILE    output .ele file (default: input path with its extension
//	           replaced by .ele, or stdout when -gen is used without -o)
//	-V         presort and split vertically (default: alternating cuts)
//	-T         report wall-clock triangulation time on stderr
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/qedelaunay/delaunay"
	"github.com/katalvlaran/qedelaunay/nodefile"
	"github.com/katalvlaran/qedelaunay/pointset"
	"github.com/katalvlaran/qedelaunay/predicates"
)

func main() {
	var (
		inPath  string
		outPath string
		genSpec string
		vertCut bool
		timing  bool
	)

	flag.StringVar(&inPath, "i", "", "input .node file (required unless -gen is given)")
	flag.StringVar(&outPath, "o", "", "output .ele file (default: input path with .ele extension, or stdout for -gen)")
	flag.StringVar(&genSpec, "gen", "", "generate a point set instead of reading -i (KIND:PARAMS, e.g. uniform:50)")
	flag.BoolVar(&vertCut, "V", false, "presort and split vertically (default: alternating cuts)")
	flag.BoolVar(&timing, "T", false, "report triangulation time on stderr")
	flag.Usage = usage
	flag.Parse()

	if inPath == "" && genSpec == "" {
		usage()
		os.Exit(2)
	}
	if outPath == "" && inPath != "" {
		outPath = defaultOutputPath(inPath)
	}

	if err := run(inPath, outPath, genSpec, vertCut, timing); err != nil {
		log.Fatalf("delaunay: %v", err)
	}
}

func run(inPath, outPath, genSpec string, vertCut, timing bool) error {
	var (
		points  []predicates.Point
		indices []int
	)

	if genSpec != "" {
		var err error
		points, err = generate(genSpec)
		if err != nil {
			return fmt.Errorf("gen %s: %w", genSpec, err)
		}
	} else {
		in, err := os.Open(inPath)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer in.Close()

		points, indices, err = nodefile.ReadNode(in)
		if err != nil {
			return fmt.Errorf("read %s: %w", inPath, err)
		}
	}

	mode := delaunay.ModeAlternating
	if vertCut {
		mode = delaunay.ModeVertical
	}

	start := time.Now()
	result, err := delaunay.Build(points, indices, mode)
	elapsed := time.Since(start)
	if err != nil {
		return fmt.Errorf("triangulate: %w", err)
	}
	if timing {
		fmt.Fprintf(os.Stderr, "triangulated %d points into %d triangles in %s\n",
			len(points), len(result.Triangles), elapsed)
	}

	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := nodefile.WriteEle(out, result.Triangles); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}

	return nil
}

// generate dispatches a -gen KIND:PARAMS spec to the matching pointset
// generator. It exists as a smoke-test helper: an easy way to exercise
// the builder on a known-shape point set without hand-writing a .node
// file first.
func generate(spec string) ([]predicates.Point, error) {
	kind, param, ok := strings.Cut(spec, ":")
	if !ok {
		return nil, fmt.Errorf("malformed -gen spec %q, want KIND:PARAMS", spec)
	}

	switch kind {
	case "regular":
		n, err := strconv.Atoi(param)
		if err != nil {
			return nil, fmt.Errorf("regular: %w", err)
		}
		return pointset.Regular(n, 1)
	case "grid":
		rows, cols, ok := strings.Cut(param, "x")
		if !ok {
			return nil, fmt.Errorf("grid: malformed RxC %q", param)
		}
		r, err := strconv.Atoi(rows)
		if err != nil {
			return nil, fmt.Errorf("grid: %w", err)
		}
		c, err := strconv.Atoi(cols)
		if err != nil {
			return nil, fmt.Errorf("grid: %w", err)
		}
		return pointset.Grid(r, c)
	case "collinear":
		n, err := strconv.Atoi(param)
		if err != nil {
			return nil, fmt.Errorf("collinear: %w", err)
		}
		return pointset.Collinear(n)
	case "uniform":
		n, err := strconv.Atoi(param)
		if err != nil {
			return nil, fmt.Errorf("uniform: %w", err)
		}
		return pointset.Uniform(n, 1000)
	default:
		return nil, fmt.Errorf("unknown -gen kind %q", kind)
	}
}

func defaultOutputPath(inPath string) string {
	ext := filepath.Ext(inPath)
	return strings.TrimSuffix(inPath, ext) + ".ele"
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: delaunay -i FILE [-o FILE] [-V] [-T]")
	fmt.Fprintln(os.Stderr, "       delaunay -gen KIND:PARAMS [-o FILE] [-V] [-T]")
	flag.PrintDefaults()
}
