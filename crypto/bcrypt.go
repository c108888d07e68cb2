// Package crypto provides the production hashing and token-signing
// adapters behind the usecase capability interfaces.
package crypto

import "golang.org/x/crypto/bcrypt"

// BcryptAdapter hashes and verifies credentials with bcrypt at a fixed cost.
type BcryptAdapter struct {
	cost int
}

func NewBcryptAdapter(cost int) *BcryptAdapter {
	return &BcryptAdapter{cost: cost}
}

func (a *BcryptAdapter) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), a.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Compare reports whether plaintext matches hash. A mismatch is a false
// result, not an error; anything else bcrypt reports is surfaced as an error.
func (a *BcryptAdapter) Compare(plaintext, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if err == bcrypt.ErrMismatchedHashAndPassword {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
