package service

import "fmt"

// AuthError standardizes login endpoint failures with their HTTP status.
type AuthError struct {
	Status      int
	Message     string
	LockedUntil int64
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func newAuthError(status int, message string) *AuthError {
	return &AuthError{Status: status, Message: message}
}
