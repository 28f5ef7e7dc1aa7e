package watson

import "errors"

var (
	// ErrMalformedTimestamp is returned when a status line matches the
	// expected shape but its start timestamp cannot be parsed.
	ErrMalformedTimestamp = errors.New("malformed watson timestamp")

	// ErrCommandFailed is returned when a start or stop command produced
	// output without any recognised acknowledgement.
	ErrCommandFailed = errors.New("watson command not acknowledged")

	// ErrUnavailable is returned when the watson binary cannot be launched.
	ErrUnavailable = errors.New("watson unavailable")
)
