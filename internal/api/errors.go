package api

import "errors"

// DefaultFailureMessage is used when the server reports failure without a message
const DefaultFailureMessage = "Unexpected things happened"

// ServerError is a failure reported by the server itself: the request made it
// to the API but the response envelope carried success=false.
type ServerError struct {
	Message string
}

// Error returns the server-supplied message, or a default when absent
func (e *ServerError) Error() string {
	if e.Message == "" {
		return DefaultFailureMessage
	}
	return e.Message
}

// IsServerError reports whether err is a server-reported failure as opposed to
// a transport or decoding problem.
func IsServerError(err error) bool {
	var se *ServerError
	return errors.As(err, &se)
}
