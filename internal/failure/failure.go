// Package failure defines the typed errors reported by the calculator core.
//
// Every failure carries a short title and a human-readable message so callers
// can show it as a notice without inspecting the kind.
package failure

import (
	"errors"
	"fmt"
)

// Kind classifies a failure
type Kind int

const (
	KindInvalidArgument Kind = iota + 1
	KindParse
	KindUnsupportedConversion
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid argument"
	case KindParse:
		return "parse error"
	case KindUnsupportedConversion:
		return "unsupported conversion"
	default:
		return "unknown"
	}
}

// Error is a validation failure raised by the core
type Error struct {
	Kind    Kind
	Title   string
	Message string
	Err     error // optional cause
}

// Sentinels for errors.Is matching on Kind
var (
	ErrInvalidArgument       = &Error{Kind: KindInvalidArgument}
	ErrParse                 = &Error{Kind: KindParse}
	ErrUnsupportedConversion = &Error{Kind: KindUnsupportedConversion}
)

func (e *Error) Error() string {
	if e.Title == "" {
		return e.Kind.String() + ": " + e.Message
	}
	return e.Title + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is a failure of the same kind
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// InvalidArgument returns a KindInvalidArgument failure
func InvalidArgument(title, format string, args ...any) *Error {
	return &Error{Kind: KindInvalidArgument, Title: title, Message: fmt.Sprintf(format, args...)}
}

// Parse returns a KindParse failure wrapping cause (which may be nil)
func Parse(title string, cause error, format string, args ...any) *Error {
	return &Error{Kind: KindParse, Title: title, Message: fmt.Sprintf(format, args...), Err: cause}
}

// UnsupportedConversion returns a KindUnsupportedConversion failure
func UnsupportedConversion(title, format string, args ...any) *Error {
	return &Error{Kind: KindUnsupportedConversion, Title: title, Message: fmt.Sprintf(format, args...)}
}

// As extracts a *Error from err's chain
func As(err error) (*Error, bool) {
	var f *Error
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

// Describe returns the title and message to display for err. Errors that are
// not failures get a generic title.
func Describe(err error) (title, message string) {
	if f, ok := As(err); ok {
		title = f.Title
		if title == "" {
			title = f.Kind.String()
		}
		return title, f.Message
	}
	return "Error", err.Error()
}
