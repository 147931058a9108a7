// Package digest computes the content hashes mirrored onto the ledger.
//
// Words are hashed with keccak256 over their upper-case UTF-8 bytes and
// melodies with sha256 over the pitch labels joined by "-". Both are
// rendered as 0x-prefixed lower-case hex so they can be compared as strings.
package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/sha3"
)

// WordHash returns the keccak256 hash of the upper-cased word.
func WordHash(word string) string {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(strings.ToUpper(word)))
	return encode(h.Sum(nil))
}

// MelodyHash returns the sha256 hash of the pitch labels joined by "-".
// Order matters: the same labels in a different order hash differently.
func MelodyHash(pitches []string) string {
	sum := sha256.Sum256([]byte(strings.Join(pitches, "-")))
	return encode(sum[:])
}

// Address derives a 20-byte account address from public key bytes,
// the last 20 bytes of keccak256(key).
func Address(publicKey []byte) string {
	h := sha3.NewLegacyKeccak256()
	h.Write(publicKey)
	sum := h.Sum(nil)
	return encode(sum[12:])
}

func encode(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}
