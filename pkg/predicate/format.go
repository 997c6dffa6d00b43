package predicate

import (
	"net/mail"
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	alphaRegex        = regexp.MustCompile(`^[a-zA-Z]+$`)
	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	numericRegex      = regexp.MustCompile(`^[0-9]+$`)
)

// Matches reports whether v is a string matched by re. A nil re never matches.
func Matches(v any, re *regexp.Regexp) bool {
	s, ok := asString(v)
	return ok && re != nil && re.MatchString(s)
}

// Email validates an address with the RFC 5322 parser and then applies the
// stricter shape expected from web forms: a bare address whose domain has at
// least one dot and no empty labels.
func Email(v any) bool {
	s, ok := asString(v)
	if !ok || strings.TrimSpace(s) == "" {
		return false
	}

	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}

	local, domain, found := strings.Cut(addr.Address, "@")
	if !found || local == "" || strings.Contains(domain, "@") {
		return false
	}
	if !strings.Contains(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

// URL accepts absolute http and https URLs with a host.
func URL(v any) bool {
	s, ok := asString(v)
	if !ok || strings.TrimSpace(s) == "" {
		return false
	}
	u, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}

// UUID accepts the canonical 36 character hyphenated form.
func UUID(v any) bool {
	s, ok := asString(v)
	if !ok || len(s) != 36 {
		return false
	}
	// Cheap structural rejection before parsing.
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// Alpha accepts non-empty strings made of ASCII letters only.
func Alpha(v any) bool {
	return Matches(v, alphaRegex)
}

// Alphanumeric accepts non-empty strings made of ASCII letters and digits.
func Alphanumeric(v any) bool {
	return Matches(v, alphanumericRegex)
}

// Numeric accepts non-empty strings made of ASCII digits only.
func Numeric(v any) bool {
	return Matches(v, numericRegex)
}
