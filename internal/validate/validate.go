package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reEmail    = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	rePhone    = regexp.MustCompile(`^\+?[0-9][0-9 ()-]{5,19}$`)
	reUsername = regexp.MustCompile(`^[a-z0-9._-]{3,30}$`)
	rePostal   = regexp.MustCompile(`^[0-9]{4,10}$`)
)

// ID parses a path id. Only positive integers are valid.
func ID(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 60 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

func Phone(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && rePhone.MatchString(s)
}

func Username(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	return s, reUsername.MatchString(s)
}

func PostalCode(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, rePostal.MatchString(s)
}

// Name validates a displayable name with a reasonable max length.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 40 {
		return "", false
	}
	return s, true
}

// Password enforces the minimum policy for stored credentials.
func Password(s string) bool {
	return len(s) >= 8 && len(s) <= 72
}

// Qty clamps an ordered quantity into a sane window.
func Qty(n int) int {
	if n < 1 {
		return 1
	}
	if n > 999 {
		return 999
	}
	return n
}
