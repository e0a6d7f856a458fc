package utils

import "golang.org/x/crypto/bcrypt"

// BcryptHasher hashes passwords with bcrypt. The produced hash embeds its own
// salt and cost factor, so verification needs nothing beyond the hash itself.
type BcryptHasher struct {
	Cost int
}

func NewBcryptHasher() *BcryptHasher { return &BcryptHasher{Cost: bcrypt.DefaultCost} }

func (h *BcryptHasher) Hash(pw string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(pw), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify fails closed: a malformed hash yields false, never a panic or error.
func (h *BcryptHasher) Verify(pw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) == nil
}
