// SPDX-License-Identifier: MIT
package nodefile

import "errors"

// ErrBadHeader indicates a .node or .ele file's first data line did
// not have the expected field count.
var ErrBadHeader = errors.New("nodefile: malformed header line")

// ErrUnsupportedDimension indicates a .node header requested a point
// dimension other than 2; this module only triangulates the plane.
var ErrUnsupportedDimension = errors.New("nodefile: only 2-dimensional points are supported")

// ErrTruncated indicates a file's header promised more data rows than
// the file actually contains.
var ErrTruncated = errors.New("nodefile: fewer data rows than the header promised")

// ErrMalformedRow indicates a data row could not be parsed into the
// expected fields.
var ErrMalformedRow = errors.New("nodefile: malformed data row")
