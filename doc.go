/*
Package arithbuf implements mutable buffers for exact polynomial arithmetic.

A Buffer holds one multivariate polynomial in normalized sum-of-monomials
form: each monomial is an exact rational coefficient (math/big.Rat) attached
to an interned power product (package pprod). Monomials live in a growable
node arena and are organized as a red-black tree ordered by the graded
lexicographic order over power products, so that the incremental updates
performed during polynomial construction cost O(log n) per term instead of
the O(n) of a flat monomial list.

Buffers are built for repeated in-place mutation: constants, power products,
monomials, whole buffers and externally supplied monomial arrays can be added,
subtracted and multiplied in, and the result can be drained into the canonical
immutable representation of package poly for hash-consing.

A buffer is not safe for concurrent use; callers serialize access, typically
by confining a buffer to one computation goroutine.

Operation preconditions (dividing by zero, aliasing a destination buffer with
an operand under traversal, mixing power-product tables) are programming
errors and fail an internal assertion; they are not reported as error values.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package arithbuf

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
