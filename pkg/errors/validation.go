package errors

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	maxKeyLength  = 64
	maxNameLength = 256
)

// keyRegex matches plan-file task keys: a letter or digit followed by
// letters, digits, '.', '_' or '-'.
var keyRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidateKey validates a task key used to reference tasks inside a plan file.
func ValidateKey(key string) error {
	if key == "" {
		return New(ErrCodeInvalidPlan, "task key cannot be empty")
	}
	if len(key) > maxKeyLength {
		return New(ErrCodeInvalidPlan, "task key too long (max %d characters)", maxKeyLength)
	}
	if !keyRegex.MatchString(key) {
		return New(ErrCodeInvalidPlan, "invalid task key: %q", key)
	}
	return nil
}

// ValidateTaskName validates a task display name.
//
// Names are free text, but must not be blank, must fit on one line and must
// not exceed 256 characters.
func ValidateTaskName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidInput, "task name cannot be blank")
	}
	if len(name) > maxNameLength {
		return New(ErrCodeInvalidInput, "task name too long (max %d characters)", maxNameLength)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "task name contains invalid control characters")
		}
	}
	return nil
}

// ValidatePath validates a plan file path given on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
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
