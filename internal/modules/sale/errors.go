package sale

import "fmt"

// ValidationError rejects a malformed sale request before any allocation or
// persistence takes place.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid sale request: " + e.Reason
}

func validationf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// PersistenceError wraps a storage failure during the sale transaction. The
// transaction it came from has been rolled back in full.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return "sale could not be persisted: " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error { return e.Err }
