package util

import (
	"github.com/badoux/checkmail"
)

func ValidateEmail(email string) bool {
	return checkmail.ValidateFormat(email) == nil
}

func ValidatePassword(password string) bool {
	return len(password) >= 8
}
