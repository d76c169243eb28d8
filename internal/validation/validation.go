package validation

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

// MaxInputLength is the longest accepted user input, in runes.
const MaxInputLength = 1000

// NormalizeInput trims surrounding whitespace from user input.
func NormalizeInput(input string) string {
	return strings.TrimSpace(input)
}

// ValidateInput checks that normalized input is non-empty, valid UTF-8 and
// within MaxInputLength.
func ValidateInput(input string) (bool, string) {
	if input == "" {
		return false, "Please type a question"
	}
	if !utf8.ValidString(input) {
		return false, "Input must be valid UTF-8 text"
	}
	if utf8.RuneCountInString(input) > MaxInputLength {
		return false, "Input is too long"
	}
	return true, ""
}

// ValidatePrefix checks an autocomplete prefix. Unlike input, a prefix may be
// empty.
func ValidatePrefix(prefix string) (bool, string) {
	if prefix == "" {
		return true, ""
	}
	return ValidateInput(prefix)
}

// ValidateURL checks if a URL is valid and uses an allowed scheme (http/https only).
func ValidateURL(urlStr string) (bool, string) {
	if urlStr == "" {
		return false, "URL is required"
	}

	// Parse the URL
	u, err := url.Parse(urlStr)
	if err != nil {
		return false, "Invalid URL format"
	}

	// Check scheme - only allow http and https
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false, "URL must use http:// or https:// scheme"
	}

	// Ensure host is present
	if u.Host == "" {
		return false, "URL must have a valid host"
	}

	return true, ""
}
