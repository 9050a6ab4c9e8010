package errors

import (
	"strings"
	"unicode"
)

// ValidateWarehouseID validates a warehouse identifier for safety.
// Warehouse ids end up in store keys and file paths, so the rules are
// intentionally conservative:
//   - No empty ids
//   - No control characters or null bytes
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
func ValidateWarehouseID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "warehouse id cannot be empty")
	}

	if len(id) > 128 {
		return New(ErrCodeInvalidInput, "warehouse id too long (max 128 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "warehouse id contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"/",    // Path separator
		"\\",   // Backslash (Windows path)
		"\x00", // Null byte
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(id, pattern) {
			return New(ErrCodeInvalidInput, "warehouse id contains invalid characters: %q", pattern)
		}
	}

	return nil
}
