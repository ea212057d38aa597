package customer

import (
	"regexp"
	"strings"
	"unicode"
)

// Field rules for registration. The interactive layer re-prompts on a false
// result; these functions only decide accept/reject.

var (
	nameRE     = regexp.MustCompile(`^[A-Za-z\s]{2,52}$`)
	emailRE    = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)
	phoneRE    = regexp.MustCompile(`^\+?\d{1,3}?[-.\s]?(\(?\d{3}\)?[-.\s]?)?\d{3}[-.\s]?\d{4}$`)
	nonDigitRE = regexp.MustCompile(`\D`)
)

// ValidName accepts 2-52 characters of alphabets and spaces.
func ValidName(name string) bool {
	return nameRE.MatchString(name)
}

func ValidEmail(email string) bool {
	return emailRE.MatchString(email)
}

// ValidPassword requires at least 8 characters with one uppercase letter, one
// lowercase letter, one digit, one special character and no spaces.
func ValidPassword(password string) bool {
	if len(password) < 8 || strings.ContainsAny(password, " \t") {
		return false
	}

	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune("@#$%^&+=", r):
			special = true
		}
	}

	return upper && lower && digit && special
}

// ValidPhone accepts numbers with exactly 10 significant digits, allowing
// spaces, dashes, parentheses and a country code.
func ValidPhone(phone string) bool {
	if !phoneRE.MatchString(phone) {
		return false
	}
	return len(nonDigitRE.ReplaceAllString(phone, "")) == 10
}
