package args

import "fmt"

// ArgumentError reports a command-line token that cannot be used.
type ArgumentError struct {
	// Token is the offending command-line token.
	Token string
	// Message describes the problem.
	Message string
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Token, e.Message)
}

func newArgumentError(token, message string) *ArgumentError {
	return &ArgumentError{Token: token, Message: message}
}
