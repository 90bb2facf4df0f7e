package validator

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

var (
	dniRe   = regexp.MustCompile(`^[0-9]{8}$`)
	emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// IsValidDNI reports whether v is exactly eight decimal digits.
func IsValidDNI(v string) bool {
	return dniRe.MatchString(v)
}

// IsValidEmail checks the local@domain.tld shape with a 2+ letter TLD.
func IsValidEmail(v string) bool {
	return emailRe.MatchString(v)
}

// ValidatePassword checks the minimum password policy: at least six
// characters, at least one digit. The reason is informational, for display.
func ValidatePassword(v string) (bool, string) {
	if utf8.RuneCountInString(v) < 6 {
		return false, "La contrasena debe tener al menos 6 caracteres"
	}
	for _, r := range v {
		if unicode.IsDigit(r) {
			return true, "OK"
		}
	}
	return false, "La contrasena debe contener al menos un numero"
}
