package estimator

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies why a submission attempt failed.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindHTTP
	KindMissingData
	KindTransport
)

var (
	ErrValidation  = errors.New("incomplete form")
	ErrHTTPStatus  = errors.New("unexpected http status")
	ErrMissingData = errors.New("salary missing from response")
	ErrTransport   = errors.New("estimation service unreachable")
	ErrUnknown     = errors.New("estimation failed")
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindHTTP:
		return "http"
	case KindMissingData:
		return "missing_data"
	case KindTransport:
		return "transport"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindValidation:
		return ErrValidation
	case KindHTTP:
		return ErrHTTPStatus
	case KindMissingData:
		return ErrMissingData
	case KindTransport:
		return ErrTransport
	default:
		return ErrUnknown
	}
}

// Error is the failure of one submission attempt.
type Error struct {
	Kind Kind
	// Status is set for KindHTTP.
	Status int
	// Fields lists the unset or unparseable inputs for KindValidation.
	Fields []string
	// Detail carries the service's own error text when it sent one.
	Detail string
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindValidation:
		if len(e.Fields) > 0 {
			return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(e.Fields, ", "))
		}
		return ErrValidation.Error()
	case KindHTTP:
		msg := fmt.Sprintf("http %d", e.Status)
		if e.Detail != "" {
			msg += ": " + e.Detail
		}
		return msg
	case KindMissingData:
		return ErrMissingData.Error()
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind.sentinel(), e.Err)
	}
	return e.Kind.sentinel().Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets callers match on the kind sentinels, e.g. errors.Is(err, ErrTransport).
func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// Message renders the text shown to the user in lang.
func (e *Error) Message(lang Language) string {
	c := catalogFor(lang)
	switch e.Kind {
	case KindValidation:
		return c.validation
	case KindHTTP:
		msg := fmt.Sprintf(c.httpStatus, e.Status)
		if e.Detail != "" {
			msg += " (" + e.Detail + ")"
		}
		return msg
	case KindMissingData:
		return c.missingData
	case KindTransport:
		return c.transport
	default:
		cause := ErrUnknown.Error()
		if e.Err != nil {
			cause = e.Err.Error()
		}
		return fmt.Sprintf(c.unknown, cause)
	}
}

// AsError converts any failure into an *Error, treating foreign errors as
// KindUnknown.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	var estErr *Error
	if errors.As(err, &estErr) {
		return estErr
	}
	return &Error{Kind: KindUnknown, Err: err}
}
