package model

import "errors"

// Error kinds. Every fallible step wraps its cause together with one of
// these so callers can classify failures with errors.Is.
var (
	ErrConfig    = errors.New("config error")
	ErrAuth      = errors.New("auth error")
	ErrTransport = errors.New("transport error")
	ErrParse     = errors.New("parse error")
	ErrWrite     = errors.New("write error")
)
