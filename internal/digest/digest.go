// Package digest computes and verifies one-way SHA-256 digests of text.
// It is stateless and independent of the ingestion path.
package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HexLength is the length of a SHA-256 digest rendered as hex.
const HexLength = 64

// Sum returns the lowercase hex SHA-256 digest of text. Deterministic: the
// same input always yields the same 64-character output.
func Sum(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// Verify reports whether text hashes to expected. The comparison is
// case-insensitive over the hex form; anything that is not 64 characters
// cannot be a SHA-256 digest and fails immediately.
func Verify(text, expected string) bool {
	if len(expected) != HexLength {
		return false
	}
	return strings.EqualFold(Sum(text), expected)
}
