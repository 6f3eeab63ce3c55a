package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/haoyan-ts/dexhand-manager/pkg/lib"
	"github.com/haoyan-ts/dexhand-manager/pkg/lib/control"
	"github.com/haoyan-ts/dexhand-manager/pkg/lib/store"
)

// Dispatcher validates decoded requests and turns them into registry and
// handle lifecycle actions. It is safe for concurrent use.
type Dispatcher struct {
	reg       *Registry
	spawner   *control.Spawner
	hands     *store.Store // optional; resolves default commands
	stopGrace time.Duration
	metrics   *Metrics
	log       zerolog.Logger
}

// DispatcherConfig carries the dispatcher's collaborators. Hands and
// Metrics may be nil.
type DispatcherConfig struct {
	Registry  *Registry
	Spawner   *control.Spawner
	Hands     *store.Store
	StopGrace time.Duration
	Metrics   *Metrics
	Log       zerolog.Logger
}

func NewDispatcher(cfg DispatcherConfig) *Dispatcher {
	return &Dispatcher{
		reg:       cfg.Registry,
		spawner:   cfg.Spawner,
		hands:     cfg.Hands,
		stopGrace: cfg.StopGrace,
		metrics:   cfg.Metrics,
		log:       cfg.Log,
	}
}

// StartResult is returned from a successful Start.
type StartResult struct {
	HandleID string
	State    lib.SessionState
}

// Start validates the request, reserves the key, spawns the control process
// and binds it. Any failure after the reservation rolls the acquisition
// back, so the key is immediately retryable.
func (d *Dispatcher) Start(ctx context.Context, key lib.ResourceKey, command lib.Command, owner string) (*StartResult, error) {
	if err := lib.ValidateResourceKey(key); err != nil {
		return nil, err
	}
	if command.Command == "" && d.hands != nil {
		if resolved, ok := d.hands.CommandFor(key); ok {
			command = resolved
		}
	}
	if command.Command == "" {
		return nil, fmt.Errorf("%w: command is required and no hand is registered for %q", lib.ErrInvalidArgument, string(key))
	}

	ticket, err := d.reg.Acquire(key)
	if err != nil {
		return nil, err
	}

	// The caller may have gone away while we contended for the key.
	if err := ctx.Err(); err != nil {
		d.rollback(key, ticket)
		return nil, err
	}

	h, err := d.spawner.Spawn(key, command)
	if err == nil {
		// Bind before launch: once the process runs, its exit notification
		// must find a bound entry to release.
		if err := d.reg.Bind(key, ticket, h, owner); err != nil {
			h.Discard()
			d.log.Error().Err(err).Str("key", string(key)).Msg("bind after acquire failed")
			return nil, err
		}
		err = d.spawner.Launch(h)
		if err != nil {
			h.Discard()
			d.rollback(key, ticket)
		}
	} else {
		d.rollback(key, ticket)
	}
	if err != nil {
		d.metrics.spawnFailed()
		return nil, &lib.SpawnError{Key: key, Err: err}
	}

	d.metrics.spawned()
	d.log.Info().Str("key", string(key)).Str("handle", h.ID()).
		Str("owner", owner).Msg("control session started")
	return &StartResult{HandleID: h.ID(), State: lib.StateStarting}, nil
}

func (d *Dispatcher) rollback(key lib.ResourceKey, t Ticket) {
	if err := d.reg.Rollback(key, t); err != nil {
		// AlreadyReleased here means the supervisor got there first.
		d.log.Debug().Err(err).Str("key", string(key)).Msg("rollback")
	}
}

// Stop requests graceful termination of the key's session. Stopping an
// already-Stopping or terminal session is a no-op success, so retries are
// harmless. Completion is observed asynchronously by the supervisor.
func (d *Dispatcher) Stop(ctx context.Context, key lib.ResourceKey) (lib.SessionState, error) {
	if err := lib.ValidateResourceKey(key); err != nil {
		return lib.StateUnspecified, err
	}
	if err := ctx.Err(); err != nil {
		return lib.StateUnspecified, err
	}

	var state lib.SessionState
	err := d.reg.Mutate(key, func(h *control.Handle) error {
		if s := h.State(); s == lib.StateStopping || s.Terminal() {
			state = s
			return nil
		}
		if err := h.SignalStop(d.stopGrace); err != nil {
			return err
		}
		state = lib.StateStopping
		return nil
	})
	if errors.Is(err, lib.ErrNoActiveSession) {
		// A retried Stop may arrive after the supervisor already reaped
		// and released the session; that is still a no-op success.
		if h, ok := d.reg.LastKnown(key); ok {
			return h.State(), nil
		}
		return lib.StateUnspecified, err
	}
	if err != nil {
		return lib.StateUnspecified, err
	}

	d.log.Info().Str("key", string(key)).Str("state", state.String()).Msg("stop requested")
	return state, nil
}

// Query reports the current state of the key: the live session if one
// exists, else the last-known terminal record, else Idle. It never fails
// with NoActiveSession.
func (d *Dispatcher) Query(key lib.ResourceKey) (lib.SessionStatus, error) {
	if err := lib.ValidateResourceKey(key); err != nil {
		return lib.SessionStatus{}, err
	}

	if h, ok := d.reg.Lookup(key); ok {
		if h == nil {
			// Reserved, spawn still in flight.
			return lib.SessionStatus{Key: key, State: lib.StateStarting}, nil
		}
		return h.Snapshot(), nil
	}
	if h, ok := d.reg.LastKnown(key); ok {
		return h.Snapshot(), nil
	}
	return lib.SessionStatus{Key: key, State: lib.StateIdle}, nil
}

// Sessions lists every live session followed by the retained historical
// records.
func (d *Dispatcher) Sessions() []lib.SessionStatus {
	var out []lib.SessionStatus
	for _, h := range d.reg.Live() {
		out = append(out, h.Snapshot())
	}
	for _, h := range d.reg.Records() {
		out = append(out, h.Snapshot())
	}
	return out
}

// Attach subscribes to the stdout/stderr capture of the key's session,
// live or historical. The followers detach when ctx is canceled, so an
// abandoned caller does not pin them forever.
func (d *Dispatcher) Attach(ctx context.Context, key lib.ResourceKey, capacity int) (stdout, stderr <-chan []byte, err error) {
	if err := lib.ValidateResourceKey(key); err != nil {
		return nil, nil, err
	}

	h, ok := d.reg.Lookup(key)
	if !ok || h == nil {
		h, ok = d.reg.LastKnown(key)
	}
	if !ok || h == nil {
		return nil, nil, lib.ErrNoActiveSession
	}
	stdout, stderr = h.Output(ctx.Done(), capacity)
	return stdout, stderr, nil
}

// Owner reports which identity started the live session for the key.
func (d *Dispatcher) Owner(key lib.ResourceKey) (string, bool) {
	return d.reg.Owner(key)
}
