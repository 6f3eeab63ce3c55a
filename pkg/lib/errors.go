package lib

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument marks malformed requests. Returned before any
	// side effect takes place.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNoActiveSession is returned by mutating operations on keys with
	// no tracked session.
	ErrNoActiveSession = errors.New("no active session")

	// ErrAlreadyReleased is returned when releasing a key that is not held
	// by the caller's ticket. Non-fatal; logged, never surfaced to callers.
	ErrAlreadyReleased = errors.New("session already released")
)

// ResourceInUseError is returned when a Start hits a key that already has a
// live session. State tells the caller whether a retry may succeed soon.
type ResourceInUseError struct {
	Key   ResourceKey
	State SessionState
}

func (e *ResourceInUseError) Error() string {
	return fmt.Sprintf("resource %q in use (state %s)", string(e.Key), e.State)
}

// SpawnError wraps an OS-level failure to start a control process. The
// registry acquisition is rolled back before it is returned.
type SpawnError struct {
	Key ResourceKey
	Err error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("spawn control process for %q: %v", string(e.Key), e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }
