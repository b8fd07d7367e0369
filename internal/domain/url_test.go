package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "bare host gets https scheme",
			input: "example.com",
			want:  "https://example.com",
		},
		{
			name:  "existing https scheme kept",
			input: "https://example.com/path",
			want:  "https://example.com/path",
		},
		{
			name:  "existing http scheme kept",
			input: "http://example.com",
			want:  "http://example.com",
		},
		{
			name:  "scheme check is case-insensitive",
			input: "HTTPS://Example.com",
			want:  "https://Example.com",
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  example.com  ",
			want:  "https://example.com",
		},
		{
			name:  "path and query preserved",
			input: "example.com/a/b?q=1",
			want:  "https://example.com/a/b?q=1",
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
		{
			name:    "garbage input",
			input:   "not a url###",
			wantErr: true,
		},
		{
			name:    "scheme only",
			input:   "https://",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Normalize(%q) = %q, want error", tt.input, got)
				}
				if !errors.Is(err, ErrInvalidURL) {
					t.Errorf("Normalize(%q) error = %v, want ErrInvalidURL", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Normalize(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"example.com",
		"https://example.com",
		"http://example.com/path?q=1",
		"sub.domain.example.com/deep/path",
	}

	for _, input := range inputs {
		once, err := Normalize(input)
		if err != nil {
			t.Fatalf("Normalize(%q) error = %v", input, err)
		}
		twice, err := Normalize(once)
		if err != nil {
			t.Fatalf("Normalize(Normalize(%q)) error = %v", input, err)
		}
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestNormalizeProducesAbsoluteURL(t *testing.T) {
	got, err := Normalize("example.com")
	if err != nil {
		t.Fatalf("Normalize error = %v", err)
	}
	if !strings.HasPrefix(got, "https://") {
		t.Errorf("Normalize(\"example.com\") = %q, want https:// prefix", got)
	}
}

func TestFaviconURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "bare host",
			input: "example.com",
			want:  "https://example.com/favicon.ico",
		},
		{
			name:  "path is dropped",
			input: "https://example.com/some/page",
			want:  "https://example.com/favicon.ico",
		},
		{
			name:  "http scheme kept",
			input: "http://example.com",
			want:  "http://example.com/favicon.ico",
		},
		{
			name:  "invalid input fails soft",
			input: "not a url###",
			want:  "",
		},
		{
			name:  "empty input fails soft",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FaviconURL(tt.input); got != tt.want {
				t.Errorf("FaviconURL(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
