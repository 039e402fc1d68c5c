// SPDX-License-Identifier: MIT
package nodefile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/qedelaunay/predicates"
)

// ReadNode parses a .node file from r. It returns the points in file
// order, paired with their declared point indices (not necessarily
// 1-based or contiguous) — the same indices the delaunay builder will
// later emit in its reported triangles, provided points is passed
// through unchanged.
func ReadNode(r io.Reader) (points []predicates.Point, indices []int, err error) {
	scanner := bufio.NewScanner(r)

	var n, dim int
	haveHeader := false
	for scanner.Scan() {
		fields := fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		if !haveHeader {
			if len(fields) < 2 {
				return nil, nil, ErrBadHeader
			}
			n, err = strconv.Atoi(fields[0])
			if err != nil {
				return nil, nil, fmt.Errorf("nodefile: header point count: %w", err)
			}
			dim, err = strconv.Atoi(fields[1])
			if err != nil {
				return nil, nil, fmt.Errorf("nodefile: header dimension: %w", err)
			}
			if dim != 2 {
				return nil, nil, ErrUnsupportedDimension
			}

			points = make([]predicates.Point, 0, n)
			indices = make([]int, 0, n)
			haveHeader = true
			continue
		}

		if len(points) >= n {
			break
		}
		if len(fields) < 3 {
			return nil, nil, ErrMalformedRow
		}

		idx, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, nil, fmt.Errorf("nodefile: point index: %w", err)
		}
		x, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("nodefile: x coordinate: %w", err)
		}
		y, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("nodefile: y coordinate: %w", err)
		}

		points = append(points, predicates.Point{X: x, Y: y})
		indices = append(indices, idx)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	if !haveHeader {
		return nil, nil, ErrBadHeader
	}
	if len(points) < n {
		return nil, nil, ErrTruncated
	}

	return points, indices, nil
}

// WriteNode writes points (paired with indices, or 1-based positional
// indices if indices is nil) as a .node file with zero attributes and
// zero boundary markers.
func WriteNode(w io.Writer, points []predicates.Point, indices []int) error {
	if indices == nil {
		indices = make([]int, len(points))
		for i := range indices {
			indices[i] = i + 1
		}
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d\t2\t0\t0\n", len(points)); err != nil {
		return err
	}
	for i, p := range points {
		if _, err := fmt.Fprintf(bw, "%d\t%g\t%g\n", indices[i], p.X, p.Y); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func fields(line string) []string {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	return strings.Fields(line)
}
