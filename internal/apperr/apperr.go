// Package apperr defines the error taxonomy shared by the croplog core.
// Every error that crosses a component boundary carries a Kind so that the
// presentation layer can pick a translated message without string matching.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies an error independently of its message.
type Kind string

const (
	KindStorage       Kind = "STORAGE"
	KindNotFound      Kind = "NOT_FOUND"
	KindDuplicate     Kind = "DUPLICATE"
	KindValidation    Kind = "VALIDATION"
	KindInvalidFormat Kind = "INVALID_FORMAT"
)

// Error is a classified error with an optional cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Message
	if msg == "" {
		msg = strings.ToLower(strings.ReplaceAll(string(e.Kind), "_", " "))
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports a match against the bare sentinels below, so that
// errors.Is(err, apperr.ErrNotFound) holds for any NOT_FOUND error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil {
		return false
	}
	return t.Kind == e.Kind && t.Message == "" && t.Err == nil
}

// Sentinels for errors.Is.
var (
	ErrStorage       = &Error{Kind: KindStorage}
	ErrNotFound      = &Error{Kind: KindNotFound}
	ErrDuplicate     = &Error{Kind: KindDuplicate}
	ErrValidation    = &Error{Kind: KindValidation}
	ErrInvalidFormat = &Error{Kind: KindInvalidFormat}
)

// Storage wraps a persistence or serialization failure.
func Storage(message string, err error) *Error {
	return &Error{Kind: KindStorage, Message: message, Err: err}
}

// NotFound reports a missing record.
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Duplicate reports a uniqueness violation.
func Duplicate(format string, args ...any) *Error {
	return &Error{Kind: KindDuplicate, Message: fmt.Sprintf(format, args...)}
}

// Validation reports input that is well-formed but unacceptable.
func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// InvalidFormat reports input that cannot be decoded into the expected shape.
func InvalidFormat(message string, err error) *Error {
	return &Error{Kind: KindInvalidFormat, Message: message, Err: err}
}

// KindOf returns the Kind of the first classified error in err's chain,
// or the empty Kind when there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
