// SPDX-License-Identifier: MIT
// Package subdivision is the container layer of the quad-edge
// substrate: it owns the point array, the input-index mapping, and
// the live-set of quad-edge groups, and composes package quadedge's
// primitives into the subdivision-level operators Connect, DeleteEdge
// and Swap.
//
// Subdivision is not safe for concurrent use — see package quadedge's
// doc comment for why no lock is taken: the structure is only ever
// well-formed between calls, so a mutex would protect nothing a single
// caller and a single goroutine don't already guarantee.
package subdivision
