package util

import (
	"testing"
	"time"
)

func TestSHA256Hex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty string", input: "", expected: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{name: "password", input: "password", expected: "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := SHA256Hex(tt.input); got != tt.expected {
				t.Fatalf("SHA256Hex(%q) = %s, want %s", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsSHA256Hex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "valid digest", input: SHA256Hex("abc"), expected: true},
		{name: "too short", input: "abc123", expected: false},
		{name: "non hex characters", input: "zz" + SHA256Hex("abc")[2:], expected: false},
		{name: "bcrypt digest", input: "$2a$10$abcdefghijklmnopqrstuuAbCdEfGhIjKlMnOpQrStUvWxYz01234", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := IsSHA256Hex(tt.input); got != tt.expected {
				t.Fatalf("IsSHA256Hex(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	t.Parallel()

	taipei := time.FixedZone("UTC+8", 8*60*60)

	tests := []struct {
		name     string
		input    time.Time
		expected string
	}{
		{name: "zero time", input: time.Time{}, expected: ""},
		{name: "utc time", input: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), expected: "2024-01-02T03:04:05Z"},
		{name: "offset normalized to utc", input: time.Date(2024, 1, 2, 11, 4, 5, 999, taipei), expected: "2024-01-02T03:04:05Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatTimestamp(tt.input); got != tt.expected {
				t.Fatalf("FormatTimestamp(%v) = %s, want %s", tt.input, got, tt.expected)
			}
		})
	}
}

func TestEqualConstantTime(t *testing.T) {
	t.Parallel()

	if !EqualConstantTime("abc", "abc") {
		t.Fatal("expected equal strings to compare equal")
	}
	if EqualConstantTime("abc", "abd") {
		t.Fatal("expected different strings to compare unequal")
	}
	if EqualConstantTime("abc", "abcd") {
		t.Fatal("expected different lengths to compare unequal")
	}
}

func TestTrimmedEmpty(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", " ", "\t\n "} {
		if !TrimmedEmpty(s) {
			t.Fatalf("TrimmedEmpty(%q) = false, want true", s)
		}
	}
	if TrimmedEmpty(" a ") {
		t.Fatal(`TrimmedEmpty(" a ") = true, want false`)
	}
}
