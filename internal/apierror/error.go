// Package apierror defines the failure kinds shared by the upstream API clients.
package apierror

import (
	"errors"
	"fmt"
)

// Kind classifies an upstream failure.
type Kind int

const (
	KindUnspecified Kind = iota
	// KindNetwork covers transport failures and non-success statuses.
	KindNetwork
	// KindDecoding means the response body did not have the expected shape.
	KindDecoding
	// KindURL means the request URL could not be built.
	KindURL
	// KindRateLimit means the upstream answered 429 Too Many Requests.
	KindRateLimit
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindDecoding:
		return "decoding"
	case KindURL:
		return "url"
	case KindRateLimit:
		return "rate limit"
	default:
		return "unspecified"
	}
}

// Error is the only error type returned by the upstream clients.
type Error struct {
	Kind Kind
	// StatusCode is the upstream HTTP status, or 0 when no response was received.
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	msg := e.Kind.String() + " error"
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Err == nil {
		if e.Kind == KindUnspecified {
			return "unspecified API error"
		}
		return msg
	}
	return msg + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Network(statusCode int, err error) *Error {
	return &Error{Kind: KindNetwork, StatusCode: statusCode, Err: err}
}

func Decoding(err error) *Error {
	return &Error{Kind: KindDecoding, Err: err}
}

func URL(err error) *Error {
	return &Error{Kind: KindURL, Err: err}
}

func RateLimit(statusCode int, err error) *Error {
	return &Error{Kind: KindRateLimit, StatusCode: statusCode, Err: err}
}

func Unspecified(err error) *Error {
	return &Error{Kind: KindUnspecified, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain.
// Errors that are not an *Error report KindUnspecified.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindUnspecified
}

// IsRateLimited reports whether err was caused by upstream rate limiting.
func IsRateLimited(err error) bool {
	return err != nil && KindOf(err) == KindRateLimit
}
