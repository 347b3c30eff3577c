package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the bcrypt work factor used for all stored hashes.
const BcryptCost = 12

// HashPassword hashes a plaintext password with bcrypt. The salt is
// generated per call, so two hashes of the same password differ.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword verifies a plaintext password against a stored hash.
// A malformed hash yields false, never an error: the caller must not be
// able to tell a corrupt hash apart from a wrong password.
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
