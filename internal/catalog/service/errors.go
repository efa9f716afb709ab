package service

import "errors"

// ErrInvalidInput marks match input the caller should have rejected: blank or
// too short to mean anything. Translate to 400 at the HTTP boundary.
var ErrInvalidInput = errors.New("invalid input")
