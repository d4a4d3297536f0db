package listener

import "errors"

// ErrAlreadyStarted is returned by Run when the listener has run before.
var ErrAlreadyStarted = errors.New("listener already started")
