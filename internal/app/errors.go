package app

import "fmt"

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// ParseFailed indicates the command line could not be parsed.
	ParseFailed AppErrorType = iota
	// ConfigLoadFailed indicates the template configuration could not be loaded.
	ConfigLoadFailed
	// MaterializeFailed indicates a file could not be created.
	MaterializeFailed
	// RepoInitFailed indicates repository initialization failed.
	RepoInitFailed
	// EditorFailed indicates the editor could not be launched.
	EditorFailed
)

// AppError represents an application-layer error.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewParseError creates a parse error.
func NewParseError(cause error) *AppError {
	return NewAppError(ParseFailed, "invalid arguments", cause)
}

// NewConfigLoadError creates a config load error.
func NewConfigLoadError(cause error) *AppError {
	return NewAppError(ConfigLoadFailed, "failed to load templates", cause)
}

// NewMaterializeError creates a materialize error for the named file.
func NewMaterializeError(file string, cause error) *AppError {
	return NewAppError(MaterializeFailed, fmt.Sprintf("cannot create %s", file), cause)
}

// NewRepoInitError creates a repo init error.
func NewRepoInitError(dir string, cause error) *AppError {
	return NewAppError(RepoInitFailed, fmt.Sprintf("failed to initialize git repository in %s", dir), cause)
}

// NewEditorError creates an editor launch error.
func NewEditorError(cause error) *AppError {
	return NewAppError(EditorFailed, "failed to launch editor", cause)
}
