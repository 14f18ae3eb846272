package generator

import (
	"errors"
	"fmt"
)

// GeneratorErrorType categorizes generator errors.
type GeneratorErrorType int

const (
	// AlreadyExists indicates the target file is already present.
	AlreadyExists GeneratorErrorType = iota
	// TemplateMissing indicates no template is registered for the extension.
	TemplateMissing
	// TemplateMalformed indicates the registered template is not a string.
	TemplateMalformed
	// IOFailure indicates a filesystem operation failed.
	IOFailure
)

// String returns the error type name.
func (t GeneratorErrorType) String() string {
	switch t {
	case AlreadyExists:
		return "AlreadyExists"
	case TemplateMissing:
		return "TemplateMissing"
	case TemplateMalformed:
		return "TemplateMalformed"
	case IOFailure:
		return "IOFailure"
	default:
		return "Unknown"
	}
}

// GeneratorError represents generator-specific errors.
type GeneratorError struct {
	// Type categorizes the error.
	Type GeneratorErrorType
	// Message is the error message.
	Message string
	// File is the file name related to the error (if applicable).
	File string
	// Extension is the template extension related to the error (if applicable).
	Extension string
	// Cause is the underlying error (if any).
	Cause error
}

// Error implements the error interface.
func (e *GeneratorError) Error() string {
	// AlreadyExists messages already name the file.
	if e.File != "" && e.Type != AlreadyExists {
		if e.Cause != nil {
			return fmt.Sprintf("%s (file: %s): %v", e.Message, e.File, e.Cause)
		}
		return fmt.Sprintf("%s (file: %s)", e.Message, e.File)
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}

	return e.Message
}

// Unwrap returns the underlying cause error for error unwrapping.
func (e *GeneratorError) Unwrap() error {
	return e.Cause
}

// newGeneratorError creates a new GeneratorError.
func newGeneratorError(typ GeneratorErrorType, message, file string, cause error) *GeneratorError {
	return &GeneratorError{
		Type:    typ,
		Message: message,
		File:    file,
		Cause:   cause,
	}
}

func newAlreadyExistsError(file string) *GeneratorError {
	return newGeneratorError(AlreadyExists, fmt.Sprintf("the file `%s` already exists", file), file, nil)
}

func newTemplateMissingError(ext string) *GeneratorError {
	e := newGeneratorError(TemplateMissing, fmt.Sprintf("no template for file extension `%s`", ext), "", nil)
	e.Extension = ext
	return e
}

func newTemplateMalformedError(ext string, value any) *GeneratorError {
	e := newGeneratorError(TemplateMalformed,
		fmt.Sprintf("template for file extension `%s` has type %T, should be a string", ext, value), "", nil)
	e.Extension = ext
	return e
}

// IsType reports whether err is a GeneratorError of the given type.
func IsType(err error, typ GeneratorErrorType) bool {
	var genErr *GeneratorError
	return errors.As(err, &genErr) && genErr.Type == typ
}
