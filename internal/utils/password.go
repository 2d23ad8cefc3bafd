package utils

import "golang.org/x/crypto/bcrypt"

// DefaultPasswordCost is the bcrypt cost the application uses for stored passwords.
const DefaultPasswordCost = 14

// HashPassword hashes a given password using bcrypt at DefaultPasswordCost.
func HashPassword(password string) (string, error) {
	return HashPasswordWithCost(password, DefaultPasswordCost)
}

// HashPasswordWithCost hashes a password at the given bcrypt cost.
// Costs outside bcrypt's range fall back to bcrypt.DefaultCost.
func HashPasswordWithCost(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(bytes), err
}

// CheckPasswordHash compares a plain password with its hashed version.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
