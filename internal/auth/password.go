package auth

import "golang.org/x/crypto/bcrypt"

const minPasswordLength = 8

// HashPassword hashes a plaintext password with bcrypt at the given cost.
// Cost outside bcrypt's valid range falls back to the library default.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func IsPasswordStrongEnough(password string) bool {
	return len(password) >= minPasswordLength
}
