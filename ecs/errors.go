package ecs

import "github.com/rotisserie/eris"

var (
	// ErrInvariantViolation means a resource expected exactly once was found zero or many times.
	ErrInvariantViolation = eris.New("singleton invariant violated")
	ErrAlreadyStarted     = eris.New("world startup already ran")
	ErrNotStarted         = eris.New("world startup has not run")
)
