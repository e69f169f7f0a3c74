package errors

import (
	"errors"
	"fmt"
)

// ErrorClass represents the classification of errors for handling purposes
type ErrorClass int

const (
	// ErrorMalformed represents structural failures: the input could not be
	// parsed into the expected shape
	ErrorMalformed ErrorClass = iota
	// ErrorSemantic represents referential or uniqueness violations in a
	// document that parsed successfully
	ErrorSemantic
	// ErrorInternal represents everything else (I/O failures, bugs)
	ErrorInternal
)

// String returns the string representation of ErrorClass
func (ec ErrorClass) String() string {
	switch ec {
	case ErrorMalformed:
		return "malformed"
	case ErrorSemantic:
		return "semantic"
	case ErrorInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Standard error variables for common conditions
var (
	// Document structure errors
	ErrMalformedDocument = errors.New("malformed document")
	ErrMissingSection    = errors.New("missing required section")
	ErrEmptyData         = errors.New("empty data")

	// Semantic validation errors
	ErrUnresolvedReference = errors.New("unresolved concept reference")
	ErrDuplicateVariable   = errors.New("duplicate variable")
	ErrDuplicateConcept    = errors.New("duplicate concept")

	// Code list errors
	ErrUnknownCode        = errors.New("unknown code")
	ErrHierarchyViolation = errors.New("code outside its hierarchy")

	// Data file errors
	ErrMissingColumn = errors.New("missing required column")
	ErrInvalidValue  = errors.New("invalid observation value")

	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrMissingConfig = errors.New("missing required configuration")
)

// ClassifiedError wraps an error with its classification
type ClassifiedError struct {
	Class     ErrorClass
	Err       error
	Message   string
	Component string
	Operation string
}

// Error implements the error interface
func (ce *ClassifiedError) Error() string {
	if ce.Message != "" {
		return ce.Message
	}
	return ce.Err.Error()
}

// Unwrap returns the underlying error
func (ce *ClassifiedError) Unwrap() error {
	return ce.Err
}

// IsMalformed checks if an error is a structural parse failure
func IsMalformed(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorMalformed
	}

	return errors.Is(err, ErrMalformedDocument) ||
		errors.Is(err, ErrMissingSection) ||
		errors.Is(err, ErrEmptyData)
}

// IsSemantic checks if an error is a referential or uniqueness violation
func IsSemantic(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorSemantic
	}

	return errors.Is(err, ErrUnresolvedReference) ||
		errors.Is(err, ErrDuplicateVariable) ||
		errors.Is(err, ErrDuplicateConcept) ||
		errors.Is(err, ErrUnknownCode) ||
		errors.Is(err, ErrHierarchyViolation)
}

// Classify returns the error class for an error
func Classify(err error) ErrorClass {
	if err == nil {
		return ErrorInternal
	}

	if IsMalformed(err) {
		return ErrorMalformed
	}
	if IsSemantic(err) {
		return ErrorSemantic
	}

	return ErrorInternal
}

// newClassified creates a new classified error.
// This is an internal helper - use WrapMalformed(), WrapSemantic(), or
// WrapInternal() instead.
func newClassified(class ErrorClass, err error, component, operation, message string) *ClassifiedError {
	return &ClassifiedError{
		Class:     class,
		Err:       err,
		Message:   message,
		Component: component,
		Operation: operation,
	}
}

// Wrap creates a standardized error with context following the pattern:
// "component.method: action failed: %w"
func Wrap(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s.%s: %s failed: %w", component, method, action, err)
}

// WrapMalformed wraps an error as a structural parse failure with context
func WrapMalformed(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorMalformed, wrappedErr, component, method, wrappedErr.Error())
}

// WrapSemantic wraps an error as a semantic validation failure with context
func WrapSemantic(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorSemantic, wrappedErr, component, method, wrappedErr.Error())
}

// WrapInternal wraps an error as internal with context
func WrapInternal(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorInternal, wrappedErr, component, method, wrappedErr.Error())
}
