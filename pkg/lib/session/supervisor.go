package session

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/haoyan-ts/dexhand-manager/pkg/lib"
	"github.com/haoyan-ts/dexhand-manager/pkg/lib/control"
)

// Supervisor is the background monitor. It reaps exited control processes
// as soon as their waiter reports them, promotes Starting handles to
// Running once the readiness grace has elapsed, and escalates Stopping
// handles to a forced kill when the stop grace expires. It never fails the
// server: everything it observes is recorded and logged.
type Supervisor struct {
	reg      *Registry
	exits    <-chan *control.Handle
	interval time.Duration
	metrics  *Metrics
	log      zerolog.Logger
}

func NewSupervisor(reg *Registry, exits <-chan *control.Handle, interval time.Duration, metrics *Metrics, log zerolog.Logger) *Supervisor {
	return &Supervisor{
		reg:      reg,
		exits:    exits,
		interval: interval,
		metrics:  metrics,
		log:      log,
	}
}

// Run blocks until ctx is cancelled. Start it in its own goroutine.
func (s *Supervisor) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.Info().Dur("interval", s.interval).Msg("supervisor running")
	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("supervisor stopped")
			return
		case h := <-s.exits:
			s.reap(h)
		case <-ticker.C:
			s.sweep(time.Now())
		}
	}
}

// reap turns a recorded exit into a terminal state and releases the key.
func (s *Supervisor) reap(h *control.Handle) {
	state, info := h.Conclude()
	s.metrics.reaped(state.String())

	evt := s.log.Info().
		Str("key", string(h.Key())).
		Str("handle", h.ID()).
		Str("state", state.String()).
		Int("exit_code", info.Code)
	if info.Signal != "" {
		evt = evt.Str("signal", info.Signal)
	}
	evt.Msg("control process reaped")

	if err := s.reg.ReleaseHandle(h); err != nil {
		if errors.Is(err, lib.ErrAlreadyReleased) {
			s.log.Debug().Str("handle", h.ID()).Msg("release skipped: already released")
		} else {
			s.log.Warn().Err(err).Str("handle", h.ID()).Msg("release failed")
		}
	}
}

// sweep applies the time-based policies to every live handle.
func (s *Supervisor) sweep(now time.Time) {
	for _, h := range s.reg.Live() {
		if h.PromoteReady(now) {
			s.log.Info().Str("key", string(h.Key())).Str("handle", h.ID()).Msg("control process ready")
			continue
		}
		if h.NeedsEscalation(now) {
			s.metrics.escalated()
			s.log.Warn().Str("key", string(h.Key())).Str("handle", h.ID()).
				Msg("stop grace expired, killing control process")
			if err := h.Kill(); err != nil {
				s.log.Error().Err(err).Str("handle", h.ID()).Msg("kill failed")
			}
		}
	}
}
