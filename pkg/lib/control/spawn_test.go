package control

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/haoyan-ts/dexhand-manager/pkg/lib"
)

func newTestSpawner(t *testing.T) (*Spawner, chan *Handle) {
	t.Helper()
	exited := make(chan *Handle, 8)
	sp, err := NewSpawner(50*time.Millisecond, exited, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewSpawner failed: %v", err)
	}
	return sp, exited
}

func launch(t *testing.T, sp *Spawner, key lib.ResourceKey, command string, args ...string) *Handle {
	t.Helper()
	h, err := sp.Spawn(key, lib.Command{Command: command, Args: args})
	if err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}
	if err := sp.Launch(h); err != nil {
		t.Fatalf("Launch failed: %v", err)
	}
	return h
}

func waitExit(t *testing.T, exited chan *Handle, want *Handle) {
	t.Helper()
	select {
	case h := <-exited:
		if h != want {
			t.Fatalf("unexpected handle on exit channel: %s", h.ID())
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("no exit notification in time")
	}
}

func TestLaunchCleanExit(t *testing.T) {
	sp, exited := newTestSpawner(t)

	h := launch(t, sp, "hand-1", "sh", "-c", "echo out; echo err 1>&2; exit 0")
	if h.State() != lib.StateStarting {
		t.Fatalf("initial state = %s, want Starting", h.State())
	}
	if h.PID() <= 0 {
		t.Fatalf("pid not recorded")
	}

	waitExit(t, exited, h)
	st, info := h.Conclude()
	if st != lib.StateStopped {
		t.Fatalf("state = %s, want Stopped", st)
	}
	if info.Code != 0 {
		t.Fatalf("exit code = %d, want 0", info.Code)
	}

	stdout, stderr := h.Output(nil, 4)
	var out, errOut []byte
	for p := range stdout {
		out = append(out, p...)
	}
	for p := range stderr {
		errOut = append(errOut, p...)
	}
	if string(out) != "out\n" {
		t.Fatalf("stdout = %q", out)
	}
	if string(errOut) != "err\n" {
		t.Fatalf("stderr = %q", errOut)
	}
}

func TestLaunchAbnormalExit(t *testing.T) {
	sp, exited := newTestSpawner(t)

	h := launch(t, sp, "hand-1", "sh", "-c", "exit 3")
	waitExit(t, exited, h)

	st, info := h.Conclude()
	if st != lib.StateFailed {
		t.Fatalf("state = %s, want Failed", st)
	}
	if info.Code != 3 {
		t.Fatalf("exit code = %d, want 3", info.Code)
	}
}

func TestSignalStopTerminates(t *testing.T) {
	sp, exited := newTestSpawner(t)

	h := launch(t, sp, "hand-1", "sleep", "30")
	if err := h.SignalStop(5 * time.Second); err != nil {
		t.Fatalf("SignalStop failed: %v", err)
	}
	if h.State() != lib.StateStopping {
		t.Fatalf("state = %s, want Stopping", h.State())
	}
	// Idempotent while already Stopping.
	if err := h.SignalStop(5 * time.Second); err != nil {
		t.Fatalf("second SignalStop failed: %v", err)
	}

	waitExit(t, exited, h)
	st, info := h.Conclude()
	if st != lib.StateStopped {
		t.Fatalf("state = %s, want Stopped (cooperative stop)", st)
	}
	if info.Signal == "" {
		t.Fatalf("expected signal recorded in exit info")
	}
}

func TestKillEscalation(t *testing.T) {
	sp, exited := newTestSpawner(t)

	// The process ignores SIGTERM, forcing the escalation path.
	h := launch(t, sp, "hand-1", "sh", "-c", `trap "" TERM; sleep 30`)

	// Give the shell a moment to install the trap.
	time.Sleep(200 * time.Millisecond)

	if err := h.SignalStop(50 * time.Millisecond); err != nil {
		t.Fatalf("SignalStop failed: %v", err)
	}

	deadline := time.Now().Add(3 * time.Second)
	for !h.NeedsEscalation(time.Now()) {
		if time.Now().After(deadline) {
			t.Fatalf("escalation never became due")
		}
		time.Sleep(10 * time.Millisecond)
	}
	if err := h.Kill(); err != nil {
		t.Fatalf("Kill failed: %v", err)
	}

	waitExit(t, exited, h)
	st, _ := h.Conclude()
	if st != lib.StateFailed {
		t.Fatalf("state = %s, want Failed after kill escalation", st)
	}
}

func TestSpawnPreparesHandleInStarting(t *testing.T) {
	sp, _ := newTestSpawner(t)

	// Before Launch the handle must already report Starting, so a concurrent
	// observer between bind and launch never sees an unspecified state.
	h, err := sp.Spawn("hand-1", lib.Command{Command: "true"})
	if err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}
	if h.State() != lib.StateStarting {
		t.Fatalf("state after Spawn = %s, want Starting", h.State())
	}
	hist := h.History()
	if len(hist) != 1 || hist[0].To != lib.StateStarting {
		t.Fatalf("unexpected history after Spawn: %+v", hist)
	}
	h.Discard()
}

func TestDiscardReleasesPreparedHandle(t *testing.T) {
	sp, _ := newTestSpawner(t)

	h, err := sp.Spawn("hand-1", lib.Command{Command: "true"})
	if err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}
	h.Discard()

	if _, err := os.Stat(h.workDir); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("work dir still present after Discard: %v", err)
	}

	// Buffers are closed, so followers terminate immediately.
	stdout, stderr := h.Output(nil, 1)
	for _, ch := range []<-chan []byte{stdout, stderr} {
		select {
		case _, ok := <-ch:
			if ok {
				t.Fatalf("unexpected data from discarded handle")
			}
		case <-time.After(time.Second):
			t.Fatalf("follower not closed after Discard")
		}
	}
}

func TestSpawnValidatesCommand(t *testing.T) {
	sp, _ := newTestSpawner(t)
	if _, err := sp.Spawn("hand-1", lib.Command{}); err == nil {
		t.Fatalf("expected error for empty command")
	}
}

func TestLaunchFailureClosesBuffers(t *testing.T) {
	sp, _ := newTestSpawner(t)

	h, err := sp.Spawn("hand-1", lib.Command{Command: "/nonexistent/control-binary"})
	if err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}
	if err := sp.Launch(h); err == nil {
		t.Fatalf("expected Launch to fail for missing binary")
	}

	// Buffers must be closed so followers terminate.
	stdout, _ := h.Output(nil, 1)
	select {
	case _, ok := <-stdout:
		if ok {
			t.Fatalf("unexpected stdout data")
		}
	case <-time.After(time.Second):
		t.Fatalf("stdout follower not closed after launch failure")
	}
}
