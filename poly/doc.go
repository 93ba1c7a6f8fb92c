/*
Package poly provides the canonical, immutable polynomial representation
produced by draining an arithmetic buffer, plus the hash function shared
between polynomials and buffers.

A canonical polynomial is an ordered sequence of monomials (variable index,
exact rational coefficient), sorted by ascending variable index, with no zero
coefficients. A constant monomial uses ConstIdx and, when present, comes
first. Hash-consing layers above this package rely on Hash being equal for
mathematically equal polynomials, whether the hash is computed from a
Polynomial or directly from a buffer traversal via Hasher.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package poly

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
