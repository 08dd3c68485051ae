// Package cryptox implements the credential hashing used by the local
// credential record: argon2id over a random per-user salt.
package cryptox

import (
	"crypto/subtle"

	"github.com/dmitrijs2005/droplogistics/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	SaltSize = 16
	KeySize  = 32

	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
)

// PasswordHash is the persisted form of a password.
type PasswordHash struct {
	Salt []byte `json:"salt"`
	Hash []byte `json:"hash"`
}

// DeriveKey stretches password with salt using argon2id.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, KeySize)
}

// HashPassword derives a hash for password under a fresh random salt.
func HashPassword(password []byte) PasswordHash {
	salt := common.GenerateRandByteArray(SaltSize)
	return PasswordHash{Salt: salt, Hash: DeriveKey(password, salt)}
}

// VerifyPassword reports whether password matches h. The comparison is
// constant-time; an empty hash never matches.
func VerifyPassword(password []byte, h PasswordHash) bool {
	if len(h.Hash) == 0 || len(h.Salt) == 0 {
		return false
	}
	candidate := DeriveKey(password, h.Salt)
	defer common.WipeByteArray(candidate)
	return subtle.ConstantTimeCompare(candidate, h.Hash) == 1
}
