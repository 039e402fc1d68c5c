// SPDX-License-Identifier: MIT
package predicates

// Point is a 2-D vector of double-precision reals. Points are supplied
// once by the caller and are immutable thereafter; this package never
// mutates one.
type Point struct {
	X, Y float64
}

// Equal reports exact (bit-for-bit via ==) coordinate equality.
func (a Point) Equal(b Point) bool {
	return a.X == b.X && a.Y == b.Y
}
