package errors

import (
	"strings"
	"unicode"
)

// ValidateArtifactID validates an artifact identifier for safety and
// correctness. Scene files come from arbitrary tooling, so IDs that could
// smuggle control characters or path fragments into cache keys and DOT
// output are rejected up front.
//
// The validation rules are intentionally conservative:
//   - No empty IDs
//   - No control characters or null bytes
//   - Maximum length of 256 characters
func ValidateArtifactID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidScene, "artifact ID cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidScene, "artifact ID too long (max 256 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidScene, "artifact ID contains invalid control characters")
		}
	}

	if strings.Contains(id, "\x00") {
		return New(ErrCodeInvalidScene, "artifact ID contains null byte")
	}

	return nil
}

// ValidateScenePath validates a scene or layout file path.
// It rejects empty paths and path traversal sequences; everything else is
// left to the OS to reject on open.
func ValidateScenePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	if strings.Contains(path, "\x00") {
		return New(ErrCodeInvalidPath, "path contains null byte")
	}

	return nil
}
