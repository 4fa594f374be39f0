package resp

import (
	"errors"
	"fmt"
)

// --------------------------------------------------------------------------
// Error Kinds
// --------------------------------------------------------------------------

// ErrorKind classifies codec failures.
type ErrorKind uint8

const (
	// KindConnClosed marks a read that hit end of stream before the first
	// byte of a frame. The peer hung up cleanly; there is nothing to answer.
	KindConnClosed ErrorKind = iota
	// KindInvalidInput marks a malformed frame: truncated line, bad CRLF
	// or an unknown type tag.
	KindInvalidInput
	// KindInvalidData marks a well-framed element with a bad payload:
	// out-of-range declared size, unparsable integer or invalid UTF-8.
	KindInvalidData
)

// String returns the string representation of an ErrorKind.
func (k ErrorKind) String() string {
	switch k {
	case KindConnClosed:
		return "ConnClosed"
	case KindInvalidInput:
		return "InvalidInput"
	case KindInvalidData:
		return "InvalidData"
	default:
		return "Unknown"
	}
}

// --------------------------------------------------------------------------
// Custom Error Type
// --------------------------------------------------------------------------

// Error is the codec error type. It wraps an ErrorKind and a human-readable
// message; the message is what a connection handler sends back to the peer.
type Error struct {
	Kind ErrorKind
	Msg  string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Msg
}

// newError creates a codec error with the given kind and formatted message.
func newError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{
		Kind: kind,
		Msg:  fmt.Sprintf(format, args...),
	}
}

// IsConnectionClosed reports whether err marks a peer that closed the
// connection before sending a frame.
func IsConnectionClosed(err error) bool {
	var respErr *Error
	return errors.As(err, &respErr) && respErr.Kind == KindConnClosed
}
