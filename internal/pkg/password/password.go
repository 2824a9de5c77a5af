// Package password hashes and verifies credentials with scrypt.
//
// Work factors are fixed: N=16384, r=8, p=1, 64-byte derived key. Salts are
// 16 random bytes; salt and digest are stored base64-encoded.
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/scrypt"

	"github.com/collectif-avenir/campaign-api/internal/core/domain"
)

const (
	scryptN = 16384
	scryptR = 8
	scryptP = 1
	keyLen  = 64
	saltLen = 16

	minLength = 8
)

// Hash derives a fresh salted digest for password. Returns
// domain.ErrWeakPassword when the password is shorter than 8 bytes.
func Hash(password string) (domain.PasswordRecord, error) {
	if len(password) < minLength {
		return domain.PasswordRecord{}, domain.ErrWeakPassword
	}

	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return domain.PasswordRecord{}, fmt.Errorf("generate salt: %w", err)
	}

	derived, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, keyLen)
	if err != nil {
		return domain.PasswordRecord{}, fmt.Errorf("derive key: %w", err)
	}

	return domain.PasswordRecord{
		Salt: base64.StdEncoding.EncodeToString(salt),
		Hash: base64.StdEncoding.EncodeToString(derived),
	}, nil
}

// Verify recomputes the derivation with the stored salt and compares it to
// the stored digest in constant time. A malformed or empty record verifies
// false; Verify never returns an error to the caller.
func Verify(password string, stored domain.PasswordRecord) bool {
	if stored.Salt == "" || stored.Hash == "" {
		return false
	}
	salt, err := base64.StdEncoding.DecodeString(stored.Salt)
	if err != nil {
		return false
	}
	expected, err := base64.StdEncoding.DecodeString(stored.Hash)
	if err != nil || len(expected) == 0 {
		return false
	}

	derived, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, len(expected))
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare(derived, expected) == 1
}
