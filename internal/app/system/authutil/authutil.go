// Package authutil wraps credential hashing. The rest of the app only ever
// sees opaque hash strings; plaintext passwords exist for the duration of one
// request.
package authutil

import (
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is enforced at registration and password change.
const MinPasswordLength = 8

// HashPassword bcrypt-hashes a plaintext password at the default cost.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword reports whether plain matches the stored bcrypt hash.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
