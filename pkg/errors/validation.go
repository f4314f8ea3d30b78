package errors

import (
	"math"
	"strings"
	"unicode"
)

// ValidateSpeed rejects wind speeds that cannot be decomposed: negative
// values, NaN and infinities. Zero is valid and renders as calm.
func ValidateSpeed(speed float64) error {
	if math.IsNaN(speed) || math.IsInf(speed, 0) {
		return New(ErrCodeInvalidSpeed, "speed must be finite, got %v", speed)
	}
	if speed < 0 {
		return New(ErrCodeInvalidSpeed, "speed must be non-negative, got %v", speed)
	}
	return nil
}

// ValidateAngle rejects non-finite directions. Any finite angle is accepted;
// values outside [0, 360) simply wrap.
//
// A bad angle is neither a bad speed nor bad configuration, so it is
// reported as ErrCodeInvalidInput, the code for malformed call arguments.
func ValidateAngle(angle float64) error {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return New(ErrCodeInvalidInput, "angle must be finite, got %v", angle)
	}
	return nil
}

// ValidatePositive checks that a configuration dimension is a finite number
// strictly greater than zero.
func ValidatePositive(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return New(ErrCodeInvalidConfiguration, "%s must be positive, got %v", field, v)
	}
	return nil
}

// ValidateNonNegative checks that a configuration value is finite and >= 0.
func ValidateNonNegative(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return New(ErrCodeInvalidConfiguration, "%s must be non-negative, got %v", field, v)
	}
	return nil
}

// ValidateAttr checks a value that will be emitted verbatim inside a markup
// attribute (colors, class names, element ids). Empty values are allowed.
func ValidateAttr(field, v string) error {
	if len(v) > 256 {
		return New(ErrCodeInvalidConfiguration, "%s too long (max 256 characters)", field)
	}
	for _, r := range v {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidConfiguration, "%s contains invalid control characters", field)
		}
	}
	if strings.ContainsAny(v, `"'<>&`) {
		return New(ErrCodeInvalidConfiguration, "%s contains markup characters: %q", field, v)
	}
	return nil
}

// ValidateID validates a container or element identifier. Identifiers must be
// non-empty and may not contain whitespace or markup characters.
func ValidateID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "id cannot be empty")
	}
	for _, r := range id {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "id contains whitespace or control characters: %q", id)
		}
	}
	if strings.ContainsAny(id, `"'<>&#`) {
		return New(ErrCodeInvalidInput, "id contains invalid characters: %q", id)
	}
	return nil
}

// ValidatePath validates an output file path for safety.
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
