package control

import (
	"testing"
	"time"

	"github.com/haoyan-ts/dexhand-manager/pkg/lib"
)

func TestTransitionMonotonic(t *testing.T) {
	h := &Handle{id: "t", state: lib.StateStarting}

	if err := h.transitionLocked(lib.StateRunning); err != nil {
		t.Fatalf("Starting -> Running: %v", err)
	}
	if err := h.transitionLocked(lib.StateStarting); err == nil {
		t.Fatalf("expected error on backward transition Running -> Starting")
	}
	if err := h.transitionLocked(lib.StateStopping); err != nil {
		t.Fatalf("Running -> Stopping: %v", err)
	}
	if err := h.transitionLocked(lib.StateStopped); err != nil {
		t.Fatalf("Stopping -> Stopped: %v", err)
	}
	if err := h.transitionLocked(lib.StateFailed); err == nil {
		t.Fatalf("expected error on transition out of terminal state")
	}
}

func TestHistoryAppendOnly(t *testing.T) {
	h := &Handle{id: "t", state: lib.StateStarting}
	_ = h.transitionLocked(lib.StateRunning)
	_ = h.transitionLocked(lib.StateStopping)

	hist := h.History()
	if len(hist) != 2 {
		t.Fatalf("history length = %d, want 2", len(hist))
	}
	if hist[0].From != lib.StateStarting || hist[0].To != lib.StateRunning {
		t.Fatalf("unexpected first transition: %+v", hist[0])
	}
	if hist[1].From != lib.StateRunning || hist[1].To != lib.StateStopping {
		t.Fatalf("unexpected second transition: %+v", hist[1])
	}
	if hist[0].At.After(hist[1].At) {
		t.Fatalf("history out of order")
	}

	// Mutating the returned slice must not touch the handle's record.
	hist[0].To = lib.StateFailed
	if h.History()[0].To != lib.StateRunning {
		t.Fatalf("History returned an aliased slice")
	}
}

func TestPromoteReady(t *testing.T) {
	now := time.Now()
	h := &Handle{id: "t", state: lib.StateStarting, readyBy: now.Add(100 * time.Millisecond)}

	if h.PromoteReady(now) {
		t.Fatalf("promoted before readiness grace elapsed")
	}
	if !h.PromoteReady(now.Add(200 * time.Millisecond)) {
		t.Fatalf("not promoted after readiness grace")
	}
	if h.State() != lib.StateRunning {
		t.Fatalf("state = %s, want Running", h.State())
	}

	// A handle whose process already exited must not be promoted.
	h2 := &Handle{id: "t2", state: lib.StateStarting, readyBy: now, raw: &rawExit{code: 1, at: now}}
	if h2.PromoteReady(now.Add(time.Second)) {
		t.Fatalf("promoted a handle with a recorded exit")
	}

	// A prepared handle whose process never launched has no readiness
	// deadline and must never be promoted.
	h3 := &Handle{id: "t3", state: lib.StateStarting}
	if h3.PromoteReady(now.Add(time.Hour)) {
		t.Fatalf("promoted a handle that was never launched")
	}
}

func TestNeedsEscalation(t *testing.T) {
	now := time.Now()
	h := &Handle{id: "t", state: lib.StateStopping, stopBy: now.Add(50 * time.Millisecond)}

	if h.NeedsEscalation(now) {
		t.Fatalf("escalation requested before grace period expired")
	}
	late := now.Add(time.Second)
	if !h.NeedsEscalation(late) {
		t.Fatalf("no escalation after grace period expired")
	}

	h.killed = true
	if h.NeedsEscalation(late) {
		t.Fatalf("escalation requested twice")
	}
}

func TestConcludeClassification(t *testing.T) {
	now := time.Now()

	clean := &Handle{id: "a", state: lib.StateRunning, raw: &rawExit{code: 0, at: now}}
	if st, info := clean.Conclude(); st != lib.StateStopped || info.Code != 0 {
		t.Fatalf("clean exit: got %s code %d", st, info.Code)
	}

	crashed := &Handle{id: "b", state: lib.StateRunning, raw: &rawExit{code: 3, at: now}}
	if st, _ := crashed.Conclude(); st != lib.StateFailed {
		t.Fatalf("non-zero exit: got %s, want Failed", st)
	}

	killed := &Handle{id: "c", state: lib.StateStopping, killed: true, raw: &rawExit{code: -1, signaled: true, sig: 9, at: now}}
	if st, _ := killed.Conclude(); st != lib.StateFailed {
		t.Fatalf("kill escalation: got %s, want Failed", st)
	}

	// Conclude is idempotent once terminal.
	if st, _ := crashed.Conclude(); st != lib.StateFailed {
		t.Fatalf("second Conclude changed state to %s", st)
	}
}
