package mealie

import (
	"errors"
	"strings"
)

// Kind classifies a client failure into the closed set of failure classes
// the Mealie API can produce.
type Kind int

const (
	// KindGeneric covers any failure not captured by a more specific kind:
	// unexpected content types, unhandled status codes, decode problems.
	KindGeneric Kind = iota
	// KindConnection marks transport failures and deadline expiry.
	KindConnection
	// KindAuthentication marks a 401 response.
	KindAuthentication
	// KindValidation marks a 422 response or a payload that failed to decode.
	KindValidation
	// KindNotFound marks a 404 response.
	KindNotFound
	// KindBadRequest marks a 400 response.
	KindBadRequest
)

// String returns a short label for the kind.
func (k Kind) String() string {
	switch k {
	case KindConnection:
		return "connection"
	case KindAuthentication:
		return "authentication"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not found"
	case KindBadRequest:
		return "bad request"
	default:
		return "generic"
	}
}

// Error is the single error type surfaced by the client. Callers match the
// whole taxonomy with errors.As and narrow on Kind, or use the Is* helpers.
// None of the kinds are retried internally; every Error is terminal for the
// call that produced it.
type Error struct {
	Kind    Kind
	Message string

	// ContentType and Body carry diagnostic context for generic failures
	// (e.g. an HTML error page served with a 200 status). Body is also set
	// for 400/404/422 responses when the server included one.
	ContentType string
	Body        string

	// Err is the underlying cause, when there is one (transport error,
	// decode error).
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.ContentType != "" {
		b.WriteString(" (content-type ")
		b.WriteString(e.ContentType)
		b.WriteString(")")
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap exposes the underlying cause to errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

func isKind(err error, kind Kind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}

// IsConnection reports whether err is a transport or deadline failure.
func IsConnection(err error) bool { return isKind(err, KindConnection) }

// IsAuthentication reports whether err is a 401 failure.
func IsAuthentication(err error) bool { return isKind(err, KindAuthentication) }

// IsValidation reports whether err is a 422 or decode failure.
func IsValidation(err error) bool { return isKind(err, KindValidation) }

// IsNotFound reports whether err is a 404 failure.
func IsNotFound(err error) bool { return isKind(err, KindNotFound) }

// IsBadRequest reports whether err is a 400 failure.
func IsBadRequest(err error) bool { return isKind(err, KindBadRequest) }
