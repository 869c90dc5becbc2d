package service

import "errors"

// Kind classifies a service failure so the HTTP layer can pick a status
// code without string-matching messages.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindAlreadyExists
	KindConflict
	KindInvalidInput
)

// Error is a service failure with a user-facing message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NotFound(msg string) error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func AlreadyExists(msg string) error {
	return &Error{Kind: KindAlreadyExists, Message: msg}
}

func Conflict(msg string) error {
	return &Error{Kind: KindConflict, Message: msg}
}

func InvalidInput(msg string) error {
	return &Error{Kind: KindInvalidInput, Message: msg}
}

// KindOf returns the error's Kind, or KindUnknown for errors that did not
// originate in this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
