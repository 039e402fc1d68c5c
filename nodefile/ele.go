// SPDX-License-Identifier: MIT
package nodefile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/qedelaunay/subdivision"
)

// WriteEle writes tris as a .ele file with zero per-triangle
// attributes, triangle numbers 1-based and sequential in tris' order.
func WriteEle(w io.Writer, tris []subdivision.Triangle) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d\t3\t0\n", len(tris)); err != nil {
		return err
	}
	for i, tri := range tris {
		if _, err := fmt.Fprintf(bw, "%d\t%d\t%d\t%d\n", i+1, tri[0], tri[1], tri[2]); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// ReadEle parses a .ele file from r, returning triangles in file
// order. Triangle numbers in the file are ignored beyond validating
// the row count against the header.
func ReadEle(r io.Reader) ([]subdivision.Triangle, error) {
	scanner := bufio.NewScanner(r)

	var n int
	haveHeader := false
	var tris []subdivision.Triangle

	for scanner.Scan() {
		f := fields(scanner.Text())
		if len(f) == 0 {
			continue
		}

		if !haveHeader {
			if len(f) < 2 {
				return nil, ErrBadHeader
			}
			var err error
			n, err = strconv.Atoi(f[0])
			if err != nil {
				return nil, fmt.Errorf("nodefile: ele header triangle count: %w", err)
			}
			tris = make([]subdivision.Triangle, 0, n)
			haveHeader = true
			continue
		}

		if len(tris) >= n {
			break
		}
		if len(f) < 4 {
			return nil, ErrMalformedRow
		}

		var tri subdivision.Triangle
		for i := 0; i < 3; i++ {
			v, err := strconv.Atoi(f[i+1])
			if err != nil {
				return nil, fmt.Errorf("nodefile: triangle vertex index: %w", err)
			}
			tri[i] = v
		}
		tris = append(tris, tri)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !haveHeader {
		return nil, ErrBadHeader
	}
	if len(tris) < n {
		return nil, ErrTruncated
	}

	return tris, nil
}
