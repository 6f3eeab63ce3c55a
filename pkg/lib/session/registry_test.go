package session

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/haoyan-ts/dexhand-manager/pkg/lib"
	"github.com/haoyan-ts/dexhand-manager/pkg/lib/control"
)

// testHandle returns an unlaunched handle bound to key, good enough for
// registry bookkeeping tests.
func testHandle(t *testing.T, key lib.ResourceKey) *control.Handle {
	t.Helper()
	sp, err := control.NewSpawner(time.Second, make(chan *control.Handle, 1), zerolog.Nop())
	require.NoError(t, err)
	h, err := sp.Spawn(key, lib.Command{Command: "true"})
	require.NoError(t, err)
	return h
}

func TestAcquireIsExclusive(t *testing.T) {
	r := NewRegistry(zerolog.Nop())

	const callers = 16
	var wg sync.WaitGroup
	var mu sync.Mutex
	var wins, busies int

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.Acquire("hand-1")
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				wins++
				return
			}
			var inUse *lib.ResourceInUseError
			if errors.As(err, &inUse) {
				busies++
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1, wins)
	require.Equal(t, callers-1, busies)
	require.Equal(t, 1, r.LiveCount())
}

func TestAcquireDistinctKeys(t *testing.T) {
	r := NewRegistry(zerolog.Nop())

	_, err := r.Acquire("hand-left")
	require.NoError(t, err)
	_, err = r.Acquire("hand-right")
	require.NoError(t, err)
	require.Equal(t, 2, r.LiveCount())
}

func TestBusyReportsState(t *testing.T) {
	r := NewRegistry(zerolog.Nop())

	tk, err := r.Acquire("hand-1")
	require.NoError(t, err)

	// Before the handle is bound, the reservation reads as Starting.
	_, err = r.Acquire("hand-1")
	var inUse *lib.ResourceInUseError
	require.ErrorAs(t, err, &inUse)
	require.Equal(t, lib.StateStarting, inUse.State)

	require.NoError(t, r.Bind("hand-1", tk, testHandle(t, "hand-1"), ""))

	// A bound handle whose process has not launched yet reads as Starting
	// as well; no caller ever observes an unspecified state.
	_, err = r.Acquire("hand-1")
	require.ErrorAs(t, err, &inUse)
	require.Equal(t, lib.StateStarting, inUse.State)
}

func TestRollbackLeavesNoRecord(t *testing.T) {
	r := NewRegistry(zerolog.Nop())

	tk, err := r.Acquire("hand-1")
	require.NoError(t, err)
	require.NoError(t, r.Rollback("hand-1", tk))

	// Key immediately acquirable again, no historical record.
	_, err = r.Acquire("hand-1")
	require.NoError(t, err)
	_, ok := r.LastKnown("hand-1")
	require.False(t, ok)
}

func TestRollbackWrongTicket(t *testing.T) {
	r := NewRegistry(zerolog.Nop())

	tk, err := r.Acquire("hand-1")
	require.NoError(t, err)

	require.ErrorIs(t, r.Rollback("hand-1", tk+1), lib.ErrAlreadyReleased)
	require.ErrorIs(t, r.Rollback("hand-2", tk), lib.ErrAlreadyReleased)
	// The real ticket still works.
	require.NoError(t, r.Rollback("hand-1", tk))
	require.ErrorIs(t, r.Rollback("hand-1", tk), lib.ErrAlreadyReleased)
}

func TestReleaseHandleKeepsRecord(t *testing.T) {
	r := NewRegistry(zerolog.Nop())

	h := testHandle(t, "hand-1")
	tk, err := r.Acquire("hand-1")
	require.NoError(t, err)
	require.NoError(t, r.Bind("hand-1", tk, h, "client1"))

	owner, ok := r.Owner("hand-1")
	require.True(t, ok)
	require.Equal(t, "client1", owner)

	require.NoError(t, r.ReleaseHandle(h))
	require.Equal(t, 0, r.LiveCount())

	rec, ok := r.LastKnown("hand-1")
	require.True(t, ok)
	require.Same(t, h, rec)

	// Releasing again is the non-fatal AlreadyReleased case.
	require.ErrorIs(t, r.ReleaseHandle(h), lib.ErrAlreadyReleased)
}

func TestBindSupersedesRecord(t *testing.T) {
	r := NewRegistry(zerolog.Nop())

	old := testHandle(t, "hand-1")
	tk, err := r.Acquire("hand-1")
	require.NoError(t, err)
	require.NoError(t, r.Bind("hand-1", tk, old, ""))
	require.NoError(t, r.ReleaseHandle(old))

	// A new session replaces the historical record.
	fresh := testHandle(t, "hand-1")
	tk, err = r.Acquire("hand-1")
	require.NoError(t, err)
	require.NoError(t, r.Bind("hand-1", tk, fresh, ""))

	_, ok := r.LastKnown("hand-1")
	require.False(t, ok)
}

func TestMutateNoSession(t *testing.T) {
	r := NewRegistry(zerolog.Nop())
	err := r.Mutate("hand-1", func(h *control.Handle) error { return nil })
	require.ErrorIs(t, err, lib.ErrNoActiveSession)
}
