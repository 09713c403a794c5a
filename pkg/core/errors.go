package core

import (
	"errors"
	"fmt"
)

// Kind classifies the failures a Store can report.
type Kind int

const (
	// KindIO is a file I/O failure other than file-not-found.
	KindIO Kind = iota
	// KindUnknownID means the requested id is not in the current sequence.
	KindUnknownID
	// KindEmptyStore means a mutation was requested against an empty sequence.
	KindEmptyStore
	// KindBadArgument means an argument could not be parsed or validated.
	KindBadArgument
	// KindMalformed means a backing file line could not be parsed.
	// It is absorbed by the store and never returned to callers.
	KindMalformed
	// KindNotFound means a read-only lookup found nothing.
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io error"
	case KindUnknownID:
		return "unknown id"
	case KindEmptyStore:
		return "empty store"
	case KindBadArgument:
		return "bad argument"
	case KindMalformed:
		return "malformed line"
	case KindNotFound:
		return "not found"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Sentinels for errors.Is matching against a Kind.
var (
	ErrIO          = &Error{Kind: KindIO}
	ErrUnknownID   = &Error{Kind: KindUnknownID}
	ErrEmptyStore  = &Error{Kind: KindEmptyStore}
	ErrBadArgument = &Error{Kind: KindBadArgument}
	ErrMalformed   = &Error{Kind: KindMalformed}
	ErrNotFound    = &Error{Kind: KindNotFound}
)

// Error is the single error type returned by the notes packages.
type Error struct {
	Kind Kind
	Op   string
	Msg  string
	Err  error
}

func newError(kind Kind, op string, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Msg: fmt.Sprintf(format, args...), Err: err}
}

// Errorf builds an Error of the given kind.
func Errorf(kind Kind, op string, format string, args ...any) error {
	return newError(kind, op, nil, format, args...)
}

// WrapIO annotates an I/O failure with the operation that caused it.
func WrapIO(op string, err error) error {
	if err == nil {
		return nil
	}
	return newError(KindIO, op, err, "%v", err)
}

// UnknownID reports that id is not part of the store.
func UnknownID(op string, id int) error {
	return newError(KindUnknownID, op, nil, "invalid id `%d`: not found in datastore", id)
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Op == "" {
		return msg
	}
	return e.Op + ": " + msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same Kind, so the sentinels above work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf extracts the Kind of err. Errors that did not originate in this
// package are reported as KindIO.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindIO
}
