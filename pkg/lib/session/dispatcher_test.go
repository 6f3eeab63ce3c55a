package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/haoyan-ts/dexhand-manager/pkg/lib"
	"github.com/haoyan-ts/dexhand-manager/pkg/lib/control"
	"github.com/haoyan-ts/dexhand-manager/pkg/lib/store"
)

// newTestCore wires a full orchestration core with fast timing and a
// running supervisor.
func newTestCore(t *testing.T, hands *store.Store) *Dispatcher {
	t.Helper()

	exits := make(chan *control.Handle, 32)
	reg := NewRegistry(zerolog.Nop())
	sp, err := control.NewSpawner(50*time.Millisecond, exits, zerolog.Nop())
	require.NoError(t, err)

	d := NewDispatcher(DispatcherConfig{
		Registry:  reg,
		Spawner:   sp,
		Hands:     hands,
		StopGrace: 200 * time.Millisecond,
		Log:       zerolog.Nop(),
	})

	sup := NewSupervisor(reg, exits, 10*time.Millisecond, nil, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		sup.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	return d
}

func waitForState(t *testing.T, d *Dispatcher, key lib.ResourceKey, want lib.SessionState) lib.SessionStatus {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		st, err := d.Query(key)
		require.NoError(t, err)
		if st.State == want {
			return st
		}
		time.Sleep(10 * time.Millisecond)
	}
	st, _ := d.Query(key)
	t.Fatalf("key %q never reached %s, stuck at %s", key, want, st.State)
	return lib.SessionStatus{}
}

func TestStartStopQueryLifecycle(t *testing.T) {
	d := newTestCore(t, nil)
	ctx := context.Background()

	res, err := d.Start(ctx, "hand-1", lib.Command{Command: "sleep", Args: []string{"30"}}, "")
	require.NoError(t, err)
	require.Equal(t, lib.StateStarting, res.State)
	require.NotEmpty(t, res.HandleID)

	// Readiness is inferred: still alive after the grace interval.
	waitForState(t, d, "hand-1", lib.StateRunning)

	// A second Start while the session is live is refused with the
	// current state attached.
	_, err = d.Start(ctx, "hand-1", lib.Command{Command: "sleep", Args: []string{"30"}}, "")
	var inUse *lib.ResourceInUseError
	require.ErrorAs(t, err, &inUse)
	require.True(t, inUse.State.Live(), "busy state %s should be live", inUse.State)

	state, err := d.Stop(ctx, "hand-1")
	require.NoError(t, err)
	require.Equal(t, lib.StateStopping, state)

	// Cooperative stop of a well-behaved process ends in Stopped.
	st := waitForState(t, d, "hand-1", lib.StateStopped)
	require.NotNil(t, st.Exit)

	// The key is free for a fresh session.
	res, err = d.Start(ctx, "hand-1", lib.Command{Command: "sleep", Args: []string{"30"}}, "")
	require.NoError(t, err)
	require.Equal(t, lib.StateStarting, res.State)
	_, err = d.Stop(ctx, "hand-1")
	require.NoError(t, err)
}

func TestConcurrentStartsExactlyOneWins(t *testing.T) {
	d := newTestCore(t, nil)

	const callers = 12
	var wg sync.WaitGroup
	var mu sync.Mutex
	var wins, busies int

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := d.Start(context.Background(), "hand-1", lib.Command{Command: "sleep", Args: []string{"30"}}, "")
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				wins++
			default:
				var inUse *lib.ResourceInUseError
				if errors.As(err, &inUse) {
					busies++
				}
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1, wins)
	require.Equal(t, callers-1, busies)

	_, err := d.Stop(context.Background(), "hand-1")
	require.NoError(t, err)
}

func TestDistinctKeysDoNotContend(t *testing.T) {
	d := newTestCore(t, nil)
	ctx := context.Background()

	_, err := d.Start(ctx, "hand-left", lib.Command{Command: "sleep", Args: []string{"30"}}, "")
	require.NoError(t, err)
	_, err = d.Start(ctx, "hand-right", lib.Command{Command: "sleep", Args: []string{"30"}}, "")
	require.NoError(t, err)

	require.Len(t, d.Sessions(), 2)

	_, err = d.Stop(ctx, "hand-left")
	require.NoError(t, err)
	_, err = d.Stop(ctx, "hand-right")
	require.NoError(t, err)
}

func TestStopIsIdempotent(t *testing.T) {
	d := newTestCore(t, nil)
	ctx := context.Background()

	_, err := d.Start(ctx, "hand-1", lib.Command{Command: "sleep", Args: []string{"30"}}, "")
	require.NoError(t, err)

	first, err := d.Stop(ctx, "hand-1")
	require.NoError(t, err)
	require.Equal(t, lib.StateStopping, first)

	// Immediately again, and once more after it terminated.
	second, err := d.Stop(ctx, "hand-1")
	require.NoError(t, err)
	require.True(t, second == lib.StateStopping || second.Terminal())

	waitForState(t, d, "hand-1", lib.StateStopped)
}

func TestStopWithoutSession(t *testing.T) {
	d := newTestCore(t, nil)
	_, err := d.Stop(context.Background(), "hand-1")
	require.ErrorIs(t, err, lib.ErrNoActiveSession)
}

func TestQueryIdleForUnknownKey(t *testing.T) {
	d := newTestCore(t, nil)
	st, err := d.Query("never-started")
	require.NoError(t, err)
	require.Equal(t, lib.StateIdle, st.State)
}

func TestStartValidation(t *testing.T) {
	d := newTestCore(t, nil)
	ctx := context.Background()

	_, err := d.Start(ctx, "", lib.Command{Command: "sleep"}, "")
	require.ErrorIs(t, err, lib.ErrInvalidArgument)

	_, err = d.Start(ctx, "bad key", lib.Command{Command: "sleep"}, "")
	require.ErrorIs(t, err, lib.ErrInvalidArgument)

	_, err = d.Start(ctx, "hand-1", lib.Command{}, "")
	require.ErrorIs(t, err, lib.ErrInvalidArgument)

	// Validation failures leave no reservation behind.
	_, err = d.Start(ctx, "hand-1", lib.Command{Command: "sleep", Args: []string{"30"}}, "")
	require.NoError(t, err)
	_, err = d.Stop(ctx, "hand-1")
	require.NoError(t, err)
}

func TestSpawnFailureRollsBack(t *testing.T) {
	d := newTestCore(t, nil)
	ctx := context.Background()

	_, err := d.Start(ctx, "hand-1", lib.Command{Command: "/nonexistent/control-binary"}, "")
	var spawnErr *lib.SpawnError
	require.ErrorAs(t, err, &spawnErr)

	// No residual Busy state, no bogus history.
	st, err := d.Query("hand-1")
	require.NoError(t, err)
	require.Equal(t, lib.StateIdle, st.State)

	_, err = d.Start(ctx, "hand-1", lib.Command{Command: "sleep", Args: []string{"30"}}, "")
	require.NoError(t, err)
	_, err = d.Stop(ctx, "hand-1")
	require.NoError(t, err)
}

func TestCancelledStartRollsBack(t *testing.T) {
	d := newTestCore(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := d.Start(ctx, "hand-1", lib.Command{Command: "sleep", Args: []string{"30"}}, "")
	require.ErrorIs(t, err, context.Canceled)

	st, err := d.Query("hand-1")
	require.NoError(t, err)
	require.Equal(t, lib.StateIdle, st.State)
}

func TestAbnormalExitReportedAsFailed(t *testing.T) {
	d := newTestCore(t, nil)
	ctx := context.Background()

	_, err := d.Start(ctx, "hand-1", lib.Command{Command: "sh", Args: []string{"-c", "exit 5"}}, "")
	require.NoError(t, err)

	st := waitForState(t, d, "hand-1", lib.StateFailed)
	require.NotNil(t, st.Exit)
	require.Equal(t, 5, st.Exit.Code)

	// Failure is held as the last-known state but does not block reuse.
	_, err = d.Start(ctx, "hand-1", lib.Command{Command: "sleep", Args: []string{"30"}}, "")
	require.NoError(t, err)
	_, err = d.Stop(ctx, "hand-1")
	require.NoError(t, err)
}

func TestHungProcessEscalatedToKill(t *testing.T) {
	d := newTestCore(t, nil)
	ctx := context.Background()

	_, err := d.Start(ctx, "hand-1", lib.Command{Command: "sh", Args: []string{"-c", `trap "" TERM; sleep 30`}}, "")
	require.NoError(t, err)
	waitForState(t, d, "hand-1", lib.StateRunning)

	_, err = d.Stop(ctx, "hand-1")
	require.NoError(t, err)

	// The stop grace expires, the supervisor kills the group, and the
	// outcome is Failed.
	st := waitForState(t, d, "hand-1", lib.StateFailed)
	require.NotNil(t, st.Exit)
}

func TestStartResolvesCommandFromInventory(t *testing.T) {
	hands := store.New()
	_, err := hands.Register(store.Config{
		Side: store.SideLeft, Arm: store.ArmPiper, Hand: store.HandInspire,
		Command: lib.Command{Command: "sleep", Args: []string{"30"}},
	})
	require.NoError(t, err)

	d := newTestCore(t, hands)
	ctx := context.Background()

	res, err := d.Start(ctx, "LEFT_PIPER_INSPIRE", lib.Command{}, "")
	require.NoError(t, err)
	require.Equal(t, lib.StateStarting, res.State)

	_, err = d.Stop(ctx, "LEFT_PIPER_INSPIRE")
	require.NoError(t, err)

	// Keys without a registered hand still require an explicit command.
	_, err = d.Start(ctx, "RIGHT_PIPER_INSPIRE", lib.Command{}, "")
	require.ErrorIs(t, err, lib.ErrInvalidArgument)
}

func TestAttachStreamsOutput(t *testing.T) {
	d := newTestCore(t, nil)
	ctx := context.Background()

	_, err := d.Start(ctx, "hand-1", lib.Command{Command: "sh", Args: []string{"-c", "echo hello; echo oops 1>&2"}}, "")
	require.NoError(t, err)

	waitForState(t, d, "hand-1", lib.StateStopped)

	// Attaching to the historical record replays everything.
	stdout, stderr, err := d.Attach(ctx, "hand-1", 4)
	require.NoError(t, err)

	var out, errOut []byte
	for p := range stdout {
		out = append(out, p...)
	}
	for p := range stderr {
		errOut = append(errOut, p...)
	}
	require.Equal(t, "hello\n", string(out))
	require.Equal(t, "oops\n", string(errOut))

	_, _, err = d.Attach(ctx, "never-started", 4)
	require.ErrorIs(t, err, lib.ErrNoActiveSession)
}

func TestAttachDetachesWhenCallerLeaves(t *testing.T) {
	d := newTestCore(t, nil)
	ctx := context.Background()

	// A chatty long-lived process, so the capture keeps growing while the
	// attached caller has stopped draining.
	_, err := d.Start(ctx, "hand-1", lib.Command{Command: "sh", Args: []string{"-c", "while true; do echo tick; done"}}, "")
	require.NoError(t, err)

	attachCtx, cancel := context.WithCancel(context.Background())
	stdout, stderr, err := d.Attach(attachCtx, "hand-1", 1)
	require.NoError(t, err)
	cancel()

	// Both followers must wind down and close their channels even though
	// undelivered output remains.
	for _, ch := range []<-chan []byte{stdout, stderr} {
		timeout := time.After(5 * time.Second)
	drained:
		for {
			select {
			case _, ok := <-ch:
				if !ok {
					break drained
				}
			case <-timeout:
				t.Fatal("attach channel stayed open after caller cancellation")
			}
		}
	}

	_, err = d.Stop(ctx, "hand-1")
	require.NoError(t, err)
	waitForState(t, d, "hand-1", lib.StateStopped)
}
