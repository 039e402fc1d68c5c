// SPDX-License-Identifier: MIT
package nodefile_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/qedelaunay/nodefile"
	"github.com/katalvlaran/qedelaunay/predicates"
	"github.com/katalvlaran/qedelaunay/subdivision"
	"github.com/stretchr/testify/require"
)

func TestReadNode_BasicFile(t *testing.T) {
	data := strings.Join([]string{
		"# a comment line",
		"4 2 0 0",
		"1 0.0 0.0",
		"2 1.0 0.0",
		"3 1.0 1.0",
		"4 0.0 1.0",
		"",
	}, "\n")

	pts, idx, err := nodefile.ReadNode(strings.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, []predicates.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}, pts)
	require.Equal(t, []int{1, 2, 3, 4}, idx)
}

func TestReadNode_WrongDimension(t *testing.T) {
	_, _, err := nodefile.ReadNode(strings.NewReader("1 3 0 0\n1 0 0 0\n"))
	require.ErrorIs(t, err, nodefile.ErrUnsupportedDimension)
}

func TestReadNode_Truncated(t *testing.T) {
	_, _, err := nodefile.ReadNode(strings.NewReader("3 2 0 0\n1 0 0\n2 1 0\n"))
	require.ErrorIs(t, err, nodefile.ErrTruncated)
}

func TestWriteNode_RoundTrip(t *testing.T) {
	pts := []predicates.Point{{X: 0, Y: 0}, {X: 2.5, Y: -1.25}}
	var buf bytes.Buffer
	require.NoError(t, nodefile.WriteNode(&buf, pts, nil))

	gotPts, gotIdx, err := nodefile.ReadNode(&buf)
	require.NoError(t, err)
	require.Equal(t, pts, gotPts)
	require.Equal(t, []int{1, 2}, gotIdx)
}

func TestWriteEle_And_ReadEle_RoundTrip(t *testing.T) {
	tris := []subdivision.Triangle{{1, 2, 3}, {1, 3, 4}}

	var buf bytes.Buffer
	require.NoError(t, nodefile.WriteEle(&buf, tris))

	got, err := nodefile.ReadEle(&buf)
	require.NoError(t, err)
	require.Equal(t, tris, got)
}
