// Package namehash computes the 32-bit identity hashes used for section and
// key lookup.
//
// Three algorithms are available. Legacy reproduces the squaring hash used by
// existing deployments bit for bit; FNV1a and XXH are well distributed
// replacements for stores with no compatibility constraint. Every algorithm
// maps the empty name to Seed.
package namehash

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Seed is the starting state of every algorithm and the hash of "".
// It is the 32-bit FNV offset basis.
const Seed uint32 = 0x811C9DC5

// fnvPrime is the 32-bit FNV multiplier.
const fnvPrime uint32 = 0x01000193

// Algorithm selects a hash function.
type Algorithm int

const (
	// FNV1a is the 32-bit FNV-1a hash.
	FNV1a Algorithm = iota
	// Legacy is hash = hash*hash ^ byte, starting from Seed.
	Legacy
	// XXH folds the 64-bit xxHash of the name into 32 bits.
	XXH
)

// String returns the algorithm name.
func (a Algorithm) String() string {
	switch a {
	case FNV1a:
		return "fnv1a"
	case Legacy:
		return "legacy"
	case XXH:
		return "xxh"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a name returned by String back to its Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	for a := FNV1a; a <= XXH; a++ {
		if a.String() == name {
			return a, nil
		}
	}
	return FNV1a, fmt.Errorf("namehash: unknown algorithm %q", name)
}

// Valid reports whether a names a known algorithm.
func (a Algorithm) Valid() bool {
	return a >= FNV1a && a <= XXH
}

// Sum hashes name with the selected algorithm. Unknown algorithms fall back
// to FNV1a.
func (a Algorithm) Sum(name string) uint32 {
	switch a {
	case Legacy:
		return LegacySum(name)
	case XXH:
		return XXHSum(name)
	default:
		return FNV1aSum(name)
	}
}

// Func returns Sum bound to a.
func (a Algorithm) Func() func(string) uint32 {
	switch a {
	case Legacy:
		return LegacySum
	case XXH:
		return XXHSum
	default:
		return FNV1aSum
	}
}

// LegacySum computes the squaring hash.
//
// Algorithm: hash = Seed; for each byte: hash = hash*hash; hash ^= byte
//
// Bytes are sign extended before the xor, as on platforms where
// char is signed. The squaring step loses entropy quickly, so names that
// differ only in early bytes often collide.
func LegacySum(name string) uint32 {
	hash := Seed
	for i := 0; i < len(name); i++ {
		hash *= hash
		hash ^= uint32(int32(int8(name[i])))
	}
	return hash
}

// FNV1aSum computes the 32-bit FNV-1a hash of name.
func FNV1aSum(name string) uint32 {
	hash := Seed
	for i := 0; i < len(name); i++ {
		hash ^= uint32(name[i])
		hash *= fnvPrime
	}
	return hash
}

// XXHSum folds xxhash64(name) into 32 bits. The empty name hashes to Seed.
func XXHSum(name string) uint32 {
	if name == "" {
		return Seed
	}
	h := xxhash.Sum64String(name)
	return uint32(h) ^ uint32(h>>32)
}
