package catalog

import (
	"errors"
	"net/mail"
	"strings"
)

const SignupThanks = "Thanks! We'll be in touch soon."

var (
	ErrEmailEmpty   = errors.New("Please enter your email.")
	ErrEmailInvalid = errors.New("Please enter a valid email address.")
)

// ValidateEmail trims s and accepts a bare address with a dotted domain.
// Display-name forms such as "Ann <ann@example.com>" are rejected.
func ValidateEmail(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmailEmpty
	}
	a, err := mail.ParseAddress(s)
	if err != nil || a.Address != s {
		return "", ErrEmailInvalid
	}
	domain := s[strings.LastIndex(s, "@")+1:]
	if !strings.Contains(domain, ".") || strings.HasSuffix(domain, ".") {
		return "", ErrEmailInvalid
	}
	return s, nil
}
