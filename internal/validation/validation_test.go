package validation

import (
	"strings"
	"testing"
)

func TestNormalizeInput(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"  hi there  ", "hi there"},
		{"\tfever\n", "fever"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := NormalizeInput(tt.input); got != tt.want {
			t.Errorf("NormalizeInput(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestValidateInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		valid   bool
		wantMsg string
	}{
		{"plain text", "I have a headache", true, ""},
		{"unicode", "j'ai de la fièvre", true, ""},
		{"max length", strings.Repeat("a", MaxInputLength), true, ""},
		{"max length in runes", strings.Repeat("é", MaxInputLength), true, ""},
		{"empty", "", false, "Please type a question"},
		{"invalid utf8", "fever\xff", false, "Input must be valid UTF-8 text"},
		{"too long", strings.Repeat("a", MaxInputLength+1), false, "Input is too long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, msg := ValidateInput(tt.input)
			if valid != tt.valid {
				t.Errorf("ValidateInput() valid = %v, want %v", valid, tt.valid)
			}
			if !valid && msg != tt.wantMsg {
				t.Errorf("ValidateInput() msg = %q, want %q", msg, tt.wantMsg)
			}
		})
	}
}

func TestValidatePrefix(t *testing.T) {
	if valid, _ := ValidatePrefix(""); !valid {
		t.Error("empty prefix should be valid")
	}
	if valid, _ := ValidatePrefix("sym"); !valid {
		t.Error("short prefix should be valid")
	}
	if valid, _ := ValidatePrefix(strings.Repeat("a", MaxInputLength+1)); valid {
		t.Error("overlong prefix should be invalid")
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		valid   bool
		wantMsg string
	}{
		{"valid https", "https://api-inference.huggingface.co", true, ""},
		{"valid http with port", "http://localhost:8080", true, ""},
		{"uppercase scheme", "HTTPS://example.com", true, ""},
		{"empty string", "", false, "URL is required"},
		{"javascript scheme", "javascript:alert(1)", false, "URL must use http:// or https:// scheme"},
		{"ftp scheme", "ftp://example.com", false, "URL must use http:// or https:// scheme"},
		{"no scheme", "example.com", false, "URL must use http:// or https:// scheme"},
		{"scheme only", "https://", false, "URL must have a valid host"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, msg := ValidateURL(tt.url)
			if valid != tt.valid {
				t.Errorf("ValidateURL(%q) valid = %v, want %v", tt.url, valid, tt.valid)
			}
			if !valid && msg != tt.wantMsg {
				t.Errorf("ValidateURL(%q) msg = %q, want %q", tt.url, msg, tt.wantMsg)
			}
		})
	}
}
