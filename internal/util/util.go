package util

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
	"time"
)

// SHA256Hex returns the lower-case hex SHA-256 digest of s.
func SHA256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))

	return hex.EncodeToString(sum[:])
}

// IsSHA256Hex reports whether s looks like a hex-encoded SHA-256 digest.
func IsSHA256Hex(s string) bool {
	if len(s) != sha256.Size*2 {
		return false
	}
	_, err := hex.DecodeString(s)

	return err == nil
}

// EqualConstantTime compares two strings without leaking timing on content.
func EqualConstantTime(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// FormatTimestamp renders t as RFC 3339 in UTC. The zero time renders as "".
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.UTC().Format(time.RFC3339)
}

// TrimmedEmpty reports whether s is empty once surrounding whitespace is removed.
func TrimmedEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}
