package service

import (
	"crypto/sha256"
	"encoding/binary"
)

// Fingerprint maps an arbitrary string to a reproducible integer in
// [0, modulo]. It hashes the UTF-8 bytes of input with SHA-256, takes the
// first 32 bits of the digest and reduces them modulo (modulo+1).
//
// Identical input always yields the identical value; near-duplicate inputs do
// not cluster because of the avalanche property of the digest. This is the
// base pseudo-randomness source for all evaluators and is deliberately not a
// random number generator: reproducibility is the central contract of the
// engine.
func Fingerprint(input string, modulo int) int {
	sum := sha256.Sum256([]byte(input))
	v := binary.BigEndian.Uint32(sum[:4])
	return int(v % uint32(modulo+1))
}

// addClamped adds boost to score and clamps the result to 100. Every additive
// rule in the evaluators goes through this so no intermediate score exceeds
// the documented interval, regardless of rule evaluation order.
func addClamped(score, boost int) int {
	score += boost
	if score > 100 {
		return 100
	}
	return score
}
