package utils

import (
	"unicode"

	"golang.org/x/crypto/bcrypt"

	appErrors "logitrack/pkg/errors"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}

// ValidatePassword enforces the minimum strength required for new
// accounts: 8+ characters with at least one upper, one lower and one
// digit.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return appErrors.ErrWeakPassword
	}

	var hasUpper, hasLower, hasNumber bool
	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		}
	}

	if !hasUpper || !hasLower || !hasNumber {
		return appErrors.ErrWeakPassword
	}

	return nil
}
