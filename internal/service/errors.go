package service

import "fmt"

// Kind classifies an operation failure so the transport layer can pick a
// status code without parsing messages.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindConflict
	KindNotFound
	KindUnauthorized
	KindForbidden
	KindStore
)

// Error is a failed operation outcome. Message is user-facing and, together
// with the success flag, forms the response contract of every endpoint.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func validationErr(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func conflictErr(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func notFoundErr(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func unauthorizedErr(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func forbiddenErr(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func storeErr(message string) *Error {
	return &Error{Kind: KindStore, Message: message}
}
