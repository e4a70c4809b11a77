// Package credentials derives and verifies password digests.
//
// Digests are scrypt-derived and stored next to the random salt used to
// produce them, so verification is reproducible without ever keeping the
// plaintext. Both values are hex-encoded for storage.
package credentials

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/scrypt"
)

// scrypt cost parameters. N is the CPU/memory cost; changing any of
// these invalidates every stored digest, so they are fixed.
const (
	scryptN = 32768
	scryptR = 8
	scryptP = 1

	saltSize   = 16 // bytes
	digestSize = 32 // bytes
)

// ErrCorruptCredential marks a stored digest or salt that cannot be
// decoded. It is distinct from a verification failure so callers can
// tell data corruption from a wrong password.
var ErrCorruptCredential = errors.New("credentials: corrupt stored credential")

// Hash derives a digest from a plaintext password using a fresh random
// salt. Calling it twice with the same password yields different
// digests because the salts differ.
func Hash(password string) (digest string, salt string, err error) {
	rawSalt := make([]byte, saltSize)
	if _, err := rand.Read(rawSalt); err != nil {
		return "", "", fmt.Errorf("credentials: failed to generate salt: %w", err)
	}

	rawDigest, err := scrypt.Key([]byte(password), rawSalt, scryptN, scryptR, scryptP, digestSize)
	if err != nil {
		return "", "", fmt.Errorf("credentials: failed to derive digest: %w", err)
	}

	return hex.EncodeToString(rawDigest), hex.EncodeToString(rawSalt), nil
}

// Verify recomputes the digest for password with the stored salt and
// compares it to the stored digest in constant time. A mismatch returns
// (false, nil); only an undecodable stored record is an error.
func Verify(password string, digest string, salt string) (bool, error) {
	rawDigest, err := hex.DecodeString(digest)
	if err != nil || len(rawDigest) != digestSize {
		return false, ErrCorruptCredential
	}

	rawSalt, err := hex.DecodeString(salt)
	if err != nil || len(rawSalt) != saltSize {
		return false, ErrCorruptCredential
	}

	computed, err := scrypt.Key([]byte(password), rawSalt, scryptN, scryptR, scryptP, digestSize)
	if err != nil {
		return false, fmt.Errorf("credentials: failed to derive digest: %w", err)
	}

	return subtle.ConstantTimeCompare(computed, rawDigest) == 1, nil
}
