package control

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/haoyan-ts/dexhand-manager/pkg/lib"
	"github.com/haoyan-ts/dexhand-manager/pkg/lib/outbuf"
)

// Spawner launches control processes. Every launched handle reports its
// exit on the exited channel, which the supervisor owns.
type Spawner struct {
	baseDir        string
	readinessGrace time.Duration
	exited         chan<- *Handle
	log            zerolog.Logger
}

// NewSpawner creates a Spawner with a fresh scratch directory for per-process
// working directories.
func NewSpawner(readinessGrace time.Duration, exited chan<- *Handle, log zerolog.Logger) (*Spawner, error) {
	baseDir, err := os.MkdirTemp("", "dhm-*")
	if err != nil {
		return nil, fmt.Errorf("create spawner base dir: %w", err)
	}
	return &Spawner{
		baseDir:        baseDir,
		readinessGrace: readinessGrace,
		exited:         exited,
		log:            log,
	}, nil
}

// Spawn prepares a handle for the given key and command without starting
// the OS process. The handle is already in Starting so that a concurrent
// Query or Acquire observes a well-defined state. The caller binds the
// handle into the registry and then calls Launch, so an exit notification
// can never arrive for an unbound handle.
func (sp *Spawner) Spawn(key lib.ResourceKey, command lib.Command) (*Handle, error) {
	if command.Command == "" {
		return nil, fmt.Errorf("%w: command is required", lib.ErrInvalidArgument)
	}

	id := lib.NewID()
	workDir := filepath.Join(sp.baseDir, id)
	if err := os.MkdirAll(workDir, 0o700); err != nil {
		return nil, fmt.Errorf("create work dir for %s: %w", id, err)
	}

	cmd := exec.Command(command.Command, command.Args...)
	cmd.Dir = workDir

	stdout := outbuf.New()
	stderr := outbuf.New()
	// Stdin stays nil so the process reads from /dev/null.
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	return &Handle{
		id:      id,
		key:     key,
		command: lib.Command{Command: command.Command, Args: append([]string(nil), command.Args...)},
		cmd:     cmd,
		workDir: workDir,
		stdout:  stdout,
		stderr:  stderr,
		state:   lib.StateStarting,
		history: []lib.Transition{{From: lib.StateUnspecified, To: lib.StateStarting, At: time.Now()}},
	}, nil
}

// Launch starts the OS process for a prepared handle and installs the
// waiter goroutine. On failure the handle is unusable and the caller must
// roll back its registry reservation.
func (sp *Spawner) Launch(h *Handle) error {
	attr, err := getSysProcAttr(h.id)
	if err != nil {
		return err
	}
	h.cmd.SysProcAttr = attr.Raw

	sp.log.Debug().Str("handle", h.id).Str("key", string(h.key)).
		Str("command", h.command.String()).Msg("starting control process")

	if err := h.cmd.Start(); err != nil {
		h.stdout.Close()
		h.stderr.Close()
		return err
	}
	if attr.File != nil {
		_ = attr.File.Close()
	}

	now := time.Now()
	h.mu.Lock()
	h.pid = h.cmd.Process.Pid
	h.startedAt = now
	h.readyBy = now.Add(sp.readinessGrace)
	h.mu.Unlock()

	go sp.wait(h)
	return nil
}

// wait blocks on process exit, records what happened and notifies the
// supervisor. This is the only writer of h.raw.
func (sp *Spawner) wait(h *Handle) {
	err := h.cmd.Wait()

	raw := &rawExit{at: time.Now()}
	if err == nil {
		raw.code = 0
	} else {
		raw.code = -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			raw.code = exitErr.ExitCode()
			if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
				raw.signaled = true
				raw.sig = ws.Signal()
			}
		} else {
			raw.err = err
		}
	}

	h.stdout.Close()
	h.stderr.Close()
	h.recordExit(raw)

	if err := cleanupCgroup(h.id); err != nil && !errors.Is(err, os.ErrNotExist) {
		sp.log.Debug().Err(err).Str("handle", h.id).Msg("cgroup cleanup")
	}

	sp.log.Debug().Str("handle", h.id).Int("code", raw.code).Msg("control process exited")
	sp.exited <- h
}
