// Package hash computes stable 64-bit fingerprints for canonical term encodings.
package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Term is one (exponent, coefficient) pair of a canonical term sequence.
type Term struct {
	Exponent    int
	Coefficient float64
}

// Sum64 computes the xxHash64 of the given terms.
//
// Terms must already be in canonical order; the hash is over the exact byte
// encoding of each (exponent, coefficient) pair, so two sequences hash equal
// iff they are identical.
func Sum64(terms []Term) uint64 {
	d := xxhash.New()
	var buf [16]byte
	for _, t := range terms {
		binary.LittleEndian.PutUint64(buf[0:8], uint64(int64(t.Exponent)))
		binary.LittleEndian.PutUint64(buf[8:16], math.Float64bits(t.Coefficient))
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}
