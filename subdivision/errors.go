// SPDX-License-Identifier: MIT
package subdivision

import "errors"

// ErrTooFewPoints is returned by New when fewer than two points are
// supplied; a subdivision needs at least one edge to exist.
var ErrTooFewPoints = errors.New("subdivision: fewer than 2 points")

// ErrIndexMismatch is returned by New when a caller-supplied input-index
// slice does not have exactly one entry per point.
var ErrIndexMismatch = errors.New("subdivision: indices length does not match points length")
