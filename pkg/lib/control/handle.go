// Package control owns the lifecycle of a single OS-level control process:
// spawning it, tracking its state machine, signaling it, and recording how
// it exited. State transitions are monotonic along
// Starting -> Running -> Stopping -> {Stopped, Failed} and every transition
// is appended to a timestamped history that is never rewritten.
package control

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync"
	"syscall"
	"time"

	"golang.org/x/sys/unix"

	"github.com/haoyan-ts/dexhand-manager/pkg/lib"
	"github.com/haoyan-ts/dexhand-manager/pkg/lib/outbuf"
)

// Handle wraps one control process. It is created by a Spawner, owned by
// the session registry entry for its key while live, and becomes a
// read-only historical record once the supervisor concludes it.
type Handle struct {
	id      string
	key     lib.ResourceKey
	command lib.Command
	cmd     *exec.Cmd
	workDir string

	stdout *outbuf.Buffer
	stderr *outbuf.Buffer

	mu        sync.RWMutex
	state     lib.SessionState
	history   []lib.Transition
	startedAt time.Time
	pid       int
	readyBy   time.Time // Starting -> Running promotion deadline
	stopBy    time.Time // kill escalation deadline, armed by SignalStop
	killed    bool
	raw       *rawExit
	exit      *lib.ExitInfo
}

// rawExit is what the waiter goroutine observed from Wait. The supervisor
// turns it into a terminal state via Conclude.
type rawExit struct {
	code     int
	sig      syscall.Signal
	signaled bool
	err      error
	at       time.Time
}

func (h *Handle) ID() string           { return h.id }
func (h *Handle) Key() lib.ResourceKey { return h.key }
func (h *Handle) Command() lib.Command { return h.command }

func (h *Handle) PID() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.pid
}

func (h *Handle) State() lib.SessionState {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.state
}

// Exited reports whether the waiter has observed process termination. The
// handle may still be in a non-terminal state until the supervisor reaps it.
func (h *Handle) Exited() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.raw != nil
}

// Snapshot returns a copy of the current status.
func (h *Handle) Snapshot() lib.SessionStatus {
	h.mu.RLock()
	defer h.mu.RUnlock()

	st := lib.SessionStatus{
		Key:       h.key,
		HandleID:  h.id,
		State:     h.state,
		Command:   h.command,
		StartedAt: h.startedAt,
	}
	if h.exit != nil {
		e := *h.exit
		st.Exit = &e
	}
	return st
}

// History returns a copy of the transition history in order of occurrence.
func (h *Handle) History() []lib.Transition {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]lib.Transition(nil), h.history...)
}

// Output returns replay-then-follow channels for stdout and stderr.
// Closing done detaches both followers; their channels are then closed
// without being fully drained.
func (h *Handle) Output(done <-chan struct{}, capacity int) (stdout, stderr <-chan []byte) {
	return h.stdout.Follow(done, capacity), h.stderr.Follow(done, capacity)
}

// Discard releases a handle whose process never started: the capture
// buffers are closed and the scratch working directory removed.
func (h *Handle) Discard() {
	h.stdout.Close()
	h.stderr.Close()
	_ = os.RemoveAll(h.workDir)
}

// transitionLocked moves the state machine forward. Callers hold h.mu.
func (h *Handle) transitionLocked(to lib.SessionState) error {
	if !lib.CanTransition(h.state, to) {
		return fmt.Errorf("illegal transition %s -> %s for handle %s", h.state, to, h.id)
	}
	h.history = append(h.history, lib.Transition{From: h.state, To: to, At: time.Now()})
	h.state = to
	return nil
}

// SignalStop requests graceful termination: SIGTERM to the process group,
// state Stopping, escalation deadline armed. Calling it on a handle that is
// already Stopping or terminal is a no-op.
func (h *Handle) SignalStop(grace time.Duration) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.state == lib.StateStopping || h.state.Terminal() {
		return nil
	}
	if err := h.transitionLocked(lib.StateStopping); err != nil {
		return err
	}
	h.stopBy = time.Now().Add(grace)

	if err := signalGroup(h.pid, unix.SIGTERM); err != nil && !errors.Is(err, unix.ESRCH) {
		return fmt.Errorf("signal control process %s: %w", h.id, err)
	}
	return nil
}

// Kill forcefully terminates the process group. Used by the supervisor
// after the stop grace period expires, and it marks the handle so that the
// eventual exit is classified as Failed.
func (h *Handle) Kill() error {
	h.mu.Lock()
	h.killed = true
	pid := h.pid
	h.mu.Unlock()

	if ok, _ := killCgroup(h.id); ok {
		return nil
	}
	if err := signalGroup(pid, unix.SIGKILL); err != nil && !errors.Is(err, unix.ESRCH) {
		return fmt.Errorf("kill control process %s: %w", h.id, err)
	}
	return nil
}

// PromoteReady applies the readiness policy: a process still alive once the
// readiness grace interval has elapsed is considered Running. Returns true
// when the promotion happened. A handle whose process has not launched yet
// has no readiness deadline and is never promoted.
func (h *Handle) PromoteReady(now time.Time) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.state != lib.StateStarting || h.raw != nil || h.readyBy.IsZero() || now.Before(h.readyBy) {
		return false
	}
	return h.transitionLocked(lib.StateRunning) == nil
}

// NeedsEscalation reports whether the stop grace period expired without the
// process exiting.
func (h *Handle) NeedsEscalation(now time.Time) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.state == lib.StateStopping && !h.killed && h.raw == nil && now.After(h.stopBy)
}

func (h *Handle) recordExit(raw *rawExit) {
	h.mu.Lock()
	h.raw = raw
	h.mu.Unlock()
}

// Conclude classifies the recorded exit and moves the handle to its
// terminal state. Convention, applied uniformly: exit code 0 is Stopped;
// an exit caused by our own SIGTERM while Stopping is Stopped; a kill
// escalation or any other abnormal exit is Failed.
func (h *Handle) Conclude() (lib.SessionState, lib.ExitInfo) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.state.Terminal() {
		return h.state, *h.exit
	}

	raw := h.raw
	info := lib.ExitInfo{Code: raw.code, ExitedAt: raw.at}
	if raw.signaled {
		info.Signal = raw.sig.String()
	}

	final := lib.StateFailed
	switch {
	case h.killed:
		final = lib.StateFailed
	case raw.err == nil && raw.code == 0:
		final = lib.StateStopped
	case h.state == lib.StateStopping && raw.signaled && raw.sig == unix.SIGTERM:
		final = lib.StateStopped
	}

	_ = h.transitionLocked(final)
	h.exit = &info
	return final, info
}

// signalGroup delivers sig to the whole process group (negative pid).
func signalGroup(pid int, sig unix.Signal) error {
	if pid <= 0 {
		return unix.ESRCH
	}
	return unix.Kill(-pid, sig)
}
