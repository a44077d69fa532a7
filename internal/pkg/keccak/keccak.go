// Package keccak provides the Ethereum-flavoured Keccak-256 helpers used for
// identity keys, transaction references and demo account addresses.
package keccak

import (
	"encoding/binary"
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// Sum256 hashes the parts with a length prefix per part, so ("ab","c") and
// ("a","bc") never collide.
func Sum256(parts ...string) []byte {
	h := sha3.NewLegacyKeccak256()
	var lenBuf [8]byte
	for _, p := range parts {
		binary.BigEndian.PutUint64(lenBuf[:], uint64(len(p)))
		_, _ = h.Write(lenBuf[:])
		_, _ = h.Write([]byte(p))
	}
	return h.Sum(nil)
}

// Hex returns the 0x-prefixed hex digest of the parts.
func Hex(parts ...string) string {
	return "0x" + hex.EncodeToString(Sum256(parts...))
}

// Address derives a 20-byte address-like identifier from a seed, the way an
// account address is the tail of a public key hash.
func Address(seed string) string {
	sum := Sum256(seed)
	return "0x" + hex.EncodeToString(sum[len(sum)-20:])
}
