package poly

import (
	"encoding/binary"
	"hash"
	"hash/fnv"
	"math/big"
)

// Hasher accumulates a hash over an ordered sequence of monomials.
//
// Writing the same (coefficient, index) sequence always yields the same sum,
// so a buffer traversal can hash itself without first materializing a
// Polynomial. Rationals are hashed through their normalized numerator and
// denominator, which big.Rat guarantees to be in lowest terms with a positive
// denominator.
type Hasher struct {
	h hash.Hash32
}

// NewHasher creates a hasher for one monomial sequence.
func NewHasher() *Hasher {
	return &Hasher{h: fnv.New32a()}
}

// WriteMono mixes one monomial into the hash.
func (hs *Hasher) WriteMono(coeff *big.Rat, idx int32) {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(idx))
	hs.h.Write(buf[:])
	num := coeff.Num()
	if num.Sign() < 0 {
		hs.h.Write([]byte{1})
	} else {
		hs.h.Write([]byte{0})
	}
	nb := num.Bytes()
	binary.BigEndian.PutUint32(buf[:], uint32(len(nb)))
	hs.h.Write(buf[:])
	hs.h.Write(nb)
	db := coeff.Denom().Bytes()
	binary.BigEndian.PutUint32(buf[:], uint32(len(db)))
	hs.h.Write(buf[:])
	hs.h.Write(db)
}

// Sum32 returns the accumulated hash.
func (hs *Hasher) Sum32() uint32 {
	return hs.h.Sum32()
}
