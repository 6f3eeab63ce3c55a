package lib

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// ResourceKey names one controllable hardware unit, e.g. a single hand.
// It is the exclusivity domain: at most one control process per key.
type ResourceKey string

const maxResourceKeyLen = 128

// ValidateResourceKey rejects keys that are empty, too long, or contain
// whitespace/control characters.
func ValidateResourceKey(key ResourceKey) error {
	if key == "" {
		return fmt.Errorf("%w: resource key is required", ErrInvalidArgument)
	}
	if len(key) > maxResourceKeyLen {
		return fmt.Errorf("%w: resource key exceeds %d bytes", ErrInvalidArgument, maxResourceKeyLen)
	}
	for _, r := range string(key) {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return fmt.Errorf("%w: resource key contains whitespace or control characters", ErrInvalidArgument)
		}
	}
	return nil
}

// SessionState is the lifecycle state of a control session.
type SessionState int

const (
	StateUnspecified SessionState = iota
	// StateIdle is reported for keys with no tracked session. Handles never
	// hold this state themselves.
	StateIdle
	StateStarting
	StateRunning
	StateStopping
	StateStopped
	StateFailed
)

func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateStarting:
		return "Starting"
	case StateRunning:
		return "Running"
	case StateStopping:
		return "Stopping"
	case StateStopped:
		return "Stopped"
	case StateFailed:
		return "Failed"
	default:
		return "Unspecified"
	}
}

// Terminal reports whether no further transitions are possible.
func (s SessionState) Terminal() bool {
	return s == StateStopped || s == StateFailed
}

// Live reports whether the state counts against the per-key exclusivity
// invariant.
func (s SessionState) Live() bool {
	return s == StateStarting || s == StateRunning || s == StateStopping
}

// rank orders states along Starting -> Running -> Stopping -> terminal.
// Stopped and Failed share a rank; exactly one of them is ever reached.
func (s SessionState) rank() int {
	switch s {
	case StateStarting:
		return 1
	case StateRunning:
		return 2
	case StateStopping:
		return 3
	case StateStopped, StateFailed:
		return 4
	default:
		return 0
	}
}

// CanTransition reports whether from -> to is a legal forward transition.
// Skipping forward is allowed (a process may die while still Starting);
// moving backward or out of a terminal state is not.
func CanTransition(from, to SessionState) bool {
	if from.Terminal() {
		return false
	}
	return to.rank() > from.rank()
}

// Command is the executable and arguments used to start a control process.
type Command struct {
	Command string
	Args    []string
}

func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Command
	}
	return c.Command + " " + strings.Join(c.Args, " ")
}

// Transition is one recorded state change. Histories are append-only.
type Transition struct {
	From SessionState
	To   SessionState
	At   time.Time
}

// ExitInfo describes how a control process terminated.
type ExitInfo struct {
	// Code is the process exit code, or -1 when the process was signaled
	// or could not be waited on.
	Code     int
	Signal   string
	ExitedAt time.Time
}

// SessionStatus is a point-in-time snapshot of one session, live or
// historical.
type SessionStatus struct {
	Key       ResourceKey
	HandleID  string
	State     SessionState
	Command   Command
	StartedAt time.Time
	Exit      *ExitInfo
}
