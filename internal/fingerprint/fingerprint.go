// Package fingerprint provides the opaque content-comparison primitive used
// by resources that declare exact file contents.
package fingerprint

import (
	"crypto/sha1"
	"encoding/hex"
	"io"
)

// SHA1 returns the hex SHA-1 digest of everything read from r.
func SHA1(r io.Reader) (string, error) {
	h := sha1.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// SHA1Bytes returns the hex SHA-1 digest of b.
func SHA1Bytes(b []byte) string {
	sum := sha1.Sum(b)
	return hex.EncodeToString(sum[:])
}

// Short truncates a digest to the first 8 hex characters for display.
func Short(digest string) string {
	if len(digest) > 8 {
		return digest[:8]
	}
	return digest
}
