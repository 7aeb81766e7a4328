package service

import (
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/net/idna"
)

var (
	emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-']+@[a-z0-9.-]+\.[a-z]{2,}$`)
	idnaProfile  = idna.Lookup
)

const defaultPhoneRegion = "US"

// ValidationError marks malformed or missing input, rejected at the
// boundary before any store access.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func invalidInput(msg string) error { return &ValidationError{msg: msg} }

// ValidateEmail checks address syntax. Matching is case-insensitive; the
// address itself is stored exactly as supplied.
func ValidateEmail(raw string) error {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" || !emailPattern.MatchString(email) {
		return invalidInput("invalid email address")
	}

	parts := strings.SplitN(email, "@", 2)
	domain := parts[1]
	if !isDomainValid(domain) {
		return invalidInput("invalid email address")
	}
	if ascii, err := idnaProfile.ToASCII(domain); err != nil || ascii == "" {
		return invalidInput("invalid email address")
	}
	return nil
}

func isDomainValid(domain string) bool {
	if strings.Count(domain, ".") == 0 {
		return false
	}
	parts := strings.Split(domain, ".")
	for _, part := range parts {
		if part == "" || strings.HasPrefix(part, "-") || strings.HasSuffix(part, "-") {
			return false
		}
	}
	return true
}

// phonePlausible reports whether the value parses as a valid phone number
// in the default region. Used for warn-only logging; implausible numbers
// are still stored verbatim.
func phonePlausible(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	number, err := phonenumbers.Parse(raw, defaultPhoneRegion)
	if err != nil {
		return false
	}
	return phonenumbers.IsPossibleNumber(number) && phonenumbers.IsValidNumber(number)
}
