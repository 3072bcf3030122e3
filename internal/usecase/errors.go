package usecase

import (
	"errors"
	"strings"
)

// ErrorKind is the closed set of failure categories a repository or handler
// can produce. The HTTP translator switches on it exhaustively.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindConflict
	KindUnauthorized
	KindForbidden
	KindNotFound
)

type Error struct {
	Kind     ErrorKind
	Messages []string
	cause    error
}

func (e *Error) Error() string {
	if len(e.Messages) > 0 {
		return strings.Join(e.Messages, "; ")
	}
	if e.cause != nil {
		return e.cause.Error()
	}
	return "internal error"
}

func (e *Error) Unwrap() error { return e.cause }

func Validation(messages ...string) *Error {
	return &Error{Kind: KindValidation, Messages: messages}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Messages: []string{message}}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Messages: []string{message}}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Messages: []string{message}}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Messages: []string{message}}
}

func Internal(cause error) *Error {
	return &Error{Kind: KindInternal, cause: cause}
}

// KindOf classifies any error; non-tagged errors count as internal.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}
