package client

import "errors"

// ErrUnavailable reports that the server could not be reached in time.
var ErrUnavailable = errors.New("server unavailable")
