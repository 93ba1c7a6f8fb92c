/*
Package pprod implements interned power products, the keys of polynomial
monomials.

A power product is a product of variables, each raised to a positive integer
exponent, stored as a sparse exponent vector sorted by variable index. Products
are interned by a Table so that structurally equal products share one pointer;
equality of interned products is pointer equality.

Products are totally ordered by Compare: graded lexicographic, i.e. by total
degree first, then among equal-degree products lexicographically from the
highest variable index downward. The empty product (degree 0) is the minimum
of the order.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package pprod
