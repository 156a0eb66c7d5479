package errors

import (
	"strconv"
	"strings"
	"unicode"
)

// ValidatePath validates a file path given on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateWidth parses the optional width argument.
// The width must be a non-negative integer.
func ValidateWidth(s string) (int, error) {
	w, err := strconv.Atoi(s)
	if err != nil {
		return 0, Wrap(ErrCodeInvalidInput, err, "width must be an integer: %q", s)
	}
	if w < 0 {
		return 0, New(ErrCodeInvalidInput, "width must not be negative: %d", w)
	}
	return w, nil
}
