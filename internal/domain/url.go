package domain

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// ErrInvalidURL is returned when user input cannot be turned into an
// absolute URL, even after prepending a default scheme. It is the only
// error in the system that is surfaced to the user.
var ErrInvalidURL = errors.New("invalid url")

var schemePattern = regexp.MustCompile(`(?i)^https?://`)

// Normalize validates and canonicalizes a raw user-entered string into
// an absolute URL. Input without an http/https scheme gets "https://"
// prepended before parsing. Normalize is idempotent: feeding its output
// back in returns the same string.
func Normalize(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty input", ErrInvalidURL)
	}

	if !schemePattern.MatchString(raw) {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	// url.Parse is lenient; a result without a host is not a usable
	// absolute URL.
	if u.Hostname() == "" {
		return "", fmt.Errorf("%w: missing host in %q", ErrInvalidURL, raw)
	}

	return u.String(), nil
}

// FaviconURL guesses the conventional favicon location for a URL,
// {scheme}://{host}/favicon.ico. It fails soft: any parse error yields
// an empty string. The result is a guess, not a verified resource.
func FaviconURL(raw string) string {
	normalized, err := Normalize(raw)
	if err != nil {
		return ""
	}
	u, err := url.Parse(normalized)
	if err != nil {
		return ""
	}
	return u.Scheme + "://" + u.Host + "/favicon.ico"
}
