// Package redact turns sensitive candidate fields into salted one-way digests
// before anything touches disk.
package redact

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// DefaultSalt is the development fallback. Production deployments must
// override it via HASH_SALT.
const DefaultSalt = "dev-salt"

type Redactor struct {
	salt string
}

func NewRedactor(salt string) *Redactor {
	if salt == "" {
		salt = DefaultSalt
	}
	return &Redactor{salt: salt}
}

// Hash returns the lowercase hex sha256 digest of salt+value. Same value and
// salt always produce the same digest, so downstream de-duplication works
// without ever storing the raw value.
func (r *Redactor) Hash(value string) string {
	sum := sha256.Sum256([]byte(r.salt + value))
	return hex.EncodeToString(sum[:])
}

// HashEmail lowercases the address first so case variants of one mailbox
// collapse to a single digest. Phone numbers go through Hash unchanged.
func (r *Redactor) HashEmail(value string) string {
	return r.Hash(strings.ToLower(value))
}
