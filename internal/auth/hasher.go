package auth

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// Hasher turns a password into a one-way digest and verifies a
// password against a stored digest.
type Hasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
}

// NewHasher returns the hasher for the given algorithm name. Unknown
// names fall back to SHA-256, which matches the stored user data.
func NewHasher(algorithm string) Hasher {
	if algorithm == "bcrypt" {
		return &BcryptHasher{}
	}
	return &SHA256Hasher{}
}

// SHA256Hasher produces an unsalted hex-encoded SHA-256 digest. This
// mirrors the digests already present in persisted user lists; it is
// not a hardened credential scheme and is not meant to be one here,
// since the data never crosses a trust boundary.
type SHA256Hasher struct{}

func (h *SHA256Hasher) Hash(password string) (string, error) {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:]), nil
}

func (h *SHA256Hasher) Verify(password, digest string) bool {
	computed, _ := h.Hash(password)
	return computed == digest
}

// BcryptHasher is the salted alternative, selectable via configuration.
// Digests it produces are not interchangeable with SHA-256 ones.
type BcryptHasher struct{}

func (h *BcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func (h *BcryptHasher) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
