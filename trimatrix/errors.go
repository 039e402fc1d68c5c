// SPDX-License-Identifier: MIT
package trimatrix

import "errors"

// ErrUnknownVertex is returned when a queried vertex index was never
// seen in any reported triangle.
var ErrUnknownVertex = errors.New("trimatrix: unknown vertex index")
