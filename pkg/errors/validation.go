package errors

import (
	"math"
	"strings"
	"unicode"
)

// MaxInputBytes bounds the size of a pasted color list accepted by the
// server and the CLI.
const MaxInputBytes = 1 << 20

// ValidateGroupCount checks that n lies in [min, max].
func ValidateGroupCount(n, min, max int) error {
	if n < min || n > max {
		return New(ErrCodeInvalidGroupCount, "group count must be between %d and %d, got %d", min, max, n)
	}
	return nil
}

// ValidateDimension checks that a render dimension (width, stripe height) is
// a finite positive number.
func ValidateDimension(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return New(ErrCodeInvalidInput, "%s must be a positive number, got %v", name, v)
	}
	return nil
}

// ValidateInput rejects color lists that are too large or contain NUL bytes.
// Malformed lines are not an error here; the parser skips them.
func ValidateInput(text string) error {
	if len(text) > MaxInputBytes {
		return New(ErrCodeInvalidInput, "input too large (max %d bytes)", MaxInputBytes)
	}
	if strings.ContainsRune(text, '\x00') {
		return New(ErrCodeInvalidInput, "input contains NUL bytes")
	}
	return nil
}

// ValidateListenAddr performs a light sanity check on a host:port address.
func ValidateListenAddr(addr string) error {
	if addr == "" {
		return New(ErrCodeInvalidConfig, "listen address cannot be empty")
	}
	for _, r := range addr {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return New(ErrCodeInvalidConfig, "listen address contains invalid characters: %q", addr)
		}
	}
	if !strings.Contains(addr, ":") {
		return New(ErrCodeInvalidConfig, "listen address must be host:port, got %q", addr)
	}
	return nil
}
