package engine

import (
	"errors"

	"github.com/tartampluch/go-contacts/internal/config"
)

// ErrorKind classifies every failure the assistant can report to the user.
// The console maps each kind to a fixed, localized message.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindInvalidName
	KindInvalidPhone
	KindInvalidBirthday
	KindNotFound
	KindNoPhone
	KindInvalidArguments
	KindUnknownCommand
)

var kindNames = map[ErrorKind]string{
	KindInternal:         "internal",
	KindInvalidName:      "invalid_name",
	KindInvalidPhone:     "invalid_phone",
	KindInvalidBirthday:  "invalid_birthday",
	KindNotFound:         "not_found",
	KindNoPhone:          "no_phone",
	KindInvalidArguments: "invalid_arguments",
	KindUnknownCommand:   "unknown_command",
}

// String returns a stable identifier, used as a log value.
func (k ErrorKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return kindNames[KindInternal]
}

var kindMessages = map[ErrorKind]string{
	KindInternal:         config.ErrInternal,
	KindInvalidName:      config.ErrNameEmpty,
	KindInvalidPhone:     config.ErrPhoneDigits,
	KindInvalidBirthday:  config.ErrBirthdayFormat,
	KindNotFound:         config.ErrContactNotFound,
	KindNoPhone:          config.ErrNoPhone,
	KindInvalidArguments: config.ErrArguments,
	KindUnknownCommand:   config.ErrUnknownCommand,
}

// Error is the typed failure returned by field constructors and lookups.
type Error struct {
	Kind  ErrorKind
	Value string // Offending input (name, phone text, date text, command)
	Err   error  // Underlying cause, if any
}

// NewError builds an *Error of the given kind.
func NewError(kind ErrorKind, value string, cause error) *Error {
	return &Error{Kind: kind, Value: value, Err: cause}
}

func (e *Error) Error() string {
	return kindMessages[e.Kind]
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind, so that
// errors.Is(err, &Error{Kind: KindNotFound}) works without comparing values.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf extracts the ErrorKind carried by err, or KindInternal.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
