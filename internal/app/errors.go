package app

import "errors"

// Sentinel errors for command line usage
var (
	ErrNotInitialized  = errors.New("application not initialized")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidKey      = errors.New("invalid configuration key")
)
