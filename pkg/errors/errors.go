package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents different types of errors in the system
type ErrorType string

const (
	// ErrorTypeUnknownParadigm indicates a paradigm key absent from the registry
	ErrorTypeUnknownParadigm ErrorType = "UNKNOWN_PARADIGM"

	// ErrorTypeUnknownStudyType indicates a study-type key absent from the weight tables
	ErrorTypeUnknownStudyType ErrorType = "UNKNOWN_STUDY_TYPE"

	// ErrorTypeInvalidEvidence indicates evidence with out-of-range numeric fields
	ErrorTypeInvalidEvidence ErrorType = "INVALID_EVIDENCE"

	// ErrorTypeInsufficientEvidence indicates a synthesis attempted with no findings
	ErrorTypeInsufficientEvidence ErrorType = "INSUFFICIENT_EVIDENCE"

	// ErrorTypeNotFound indicates a resource was not found
	ErrorTypeNotFound ErrorType = "NOT_FOUND"

	// ErrorTypeValidation indicates a validation error
	ErrorTypeValidation ErrorType = "VALIDATION"

	// ErrorTypeInternal indicates an internal error
	ErrorTypeInternal ErrorType = "INTERNAL"
)

// AppError represents an application error
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap implements the unwrap interface
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewUnknownParadigmError creates an error for a paradigm key missing from the registry
func NewUnknownParadigmError(paradigm string) *AppError {
	return &AppError{
		Type:    ErrorTypeUnknownParadigm,
		Message: fmt.Sprintf("paradigm %q is not registered", paradigm),
	}
}

// NewUnknownStudyTypeError creates an error for a study-type key missing from the weight tables
func NewUnknownStudyTypeError(studyType string) *AppError {
	return &AppError{
		Type:    ErrorTypeUnknownStudyType,
		Message: fmt.Sprintf("study type %q has no weight entry", studyType),
	}
}

// NewInvalidEvidenceError creates an error for evidence that fails field validation
func NewInvalidEvidenceError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidEvidence,
		Message: message,
	}
}

// NewInsufficientEvidenceError creates an error for a synthesis with no usable findings
func NewInsufficientEvidenceError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeInsufficientEvidence,
		Message: message,
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: message,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
	}
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInternal,
		Message: message,
		Err:     err,
	}
}

// IsType reports whether err is an AppError of the given type
func IsType(err error, t ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == t
	}
	return false
}

// IsUnknownParadigm reports whether err is an unknown-paradigm error
func IsUnknownParadigm(err error) bool { return IsType(err, ErrorTypeUnknownParadigm) }

// IsUnknownStudyType reports whether err is an unknown-study-type error
func IsUnknownStudyType(err error) bool { return IsType(err, ErrorTypeUnknownStudyType) }

// IsInvalidEvidence reports whether err is an invalid-evidence error
func IsInvalidEvidence(err error) bool { return IsType(err, ErrorTypeInvalidEvidence) }

// IsInsufficientEvidence reports whether err is an insufficient-evidence error
func IsInsufficientEvidence(err error) bool { return IsType(err, ErrorTypeInsufficientEvidence) }
