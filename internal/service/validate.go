package service

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/pkordes/planner/internal/domain"
)

// validateMinLength trims s and checks it has at least minLen characters.
func validateMinLength(field, s string, minLen int) (string, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) < minLen {
		return "", domain.Invalid(fmt.Sprintf("%s must be at least %d characters", field, minLen))
	}
	return s, nil
}

// validateEmail accepts a bare address ("ana@example.com"), not a display-name form.
func validateEmail(field, s string) (string, error) {
	s = strings.TrimSpace(s)
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return "", domain.Invalid(fmt.Sprintf("%s must be a valid email address", field))
	}
	return s, nil
}

// validateURL accepts absolute http and https URLs.
func validateURL(field, s string) (string, error) {
	s = strings.TrimSpace(s)
	u, err := url.ParseRequestURI(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", domain.Invalid(fmt.Sprintf("%s must be an absolute http(s) URL", field))
	}
	return s, nil
}
