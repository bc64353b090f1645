package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Code is the machine-friendly identifier of an error kind.
type Code string

const (
	CodeStore             Code = "STORE_ERROR"
	CodeDecode            Code = "DECODE_ERROR"
	CodeNotFound          Code = "NOT_FOUND"
	CodeIncompleteBuilder Code = "INCOMPLETE_BUILDER"
)

// Sentinels for errors.Is. Each Is method matches on type only, so any
// *StoreError matches ErrStore regardless of its fields.
var (
	ErrStore             = &StoreError{}
	ErrDecode            = &DecodeError{}
	ErrNotFound          = &NotFoundError{}
	ErrIncompleteBuilder = &IncompleteBuilderError{}

	// ErrBuilderConsumed is returned by Build on a builder that already
	// produced an entity and has not been Reset.
	ErrBuilderConsumed = errors.New("builder already consumed, call Reset before reuse")
)

// StoreError reports a failure talking to PostgreSQL or Redis.
//
// Fields:
//   - Op: the repository operation, e.g. "users.insert".
//   - Code: CodeStore, or a finer code such as USER_ALREADY_EXISTS when the
//     driver error could be classified.
//   - Message: human-friendly description.
//   - Cause: the underlying driver error.
type StoreError struct {
	Op      string
	Code    Code
	Message string
	Cause   error
}

func (e *StoreError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "store operation failed"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Op, msg)
}

func (e *StoreError) Unwrap() error { return e.Cause }

func (e *StoreError) Is(target error) bool {
	_, ok := target.(*StoreError)
	return ok
}

// WithMessage returns a copy of this StoreError with Message replaced.
func (e *StoreError) WithMessage(message string) *StoreError {
	return &StoreError{
		Op:      e.Op,
		Code:    e.Code,
		Message: message,
		Cause:   e.Cause,
	}
}

// DecodeError reports a stored payload that does not match the entity shape.
type DecodeError struct {
	Entity  string
	Payload string
	Cause   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s payload: %v", e.Entity, e.Cause)
}

func (e *DecodeError) Unwrap() error { return e.Cause }

func (e *DecodeError) Is(target error) bool {
	_, ok := target.(*DecodeError)
	return ok
}

// NotFoundError reports a lookup miss.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	_, ok := target.(*NotFoundError)
	return ok
}

// IncompleteBuilderError reports a Build call with fields that were neither
// set nor defaulted.
type IncompleteBuilderError struct {
	Entity  string
	Missing []string
}

func (e *IncompleteBuilderError) Error() string {
	return fmt.Sprintf("incomplete %s builder: missing %s", e.Entity, strings.Join(e.Missing, ", "))
}

func (e *IncompleteBuilderError) Is(target error) bool {
	_, ok := target.(*IncompleteBuilderError)
	return ok
}

// CodeOf returns the Code carried by err, or "" for foreign errors.
func CodeOf(err error) Code {
	var storeErr *StoreError
	switch {
	case errors.As(err, &storeErr):
		if storeErr.Code != "" {
			return storeErr.Code
		}
		return CodeStore
	case errors.Is(err, ErrDecode):
		return CodeDecode
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrIncompleteBuilder):
		return CodeIncompleteBuilder
	}
	return ""
}

// MakeUpperCaseWithUnderscores converts "already exists" into "ALREADY_EXISTS".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
