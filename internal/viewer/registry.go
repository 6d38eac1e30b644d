package viewer

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

// ErrViewerNotFound reports a missing viewer executable, as opposed to a
// viewer that exists but fails to start.
var ErrViewerNotFound = errors.New("viewer executable not found")

type process struct {
	cmd  *exec.Cmd
	done chan struct{}
}

func (p *process) exited() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

// Registry owns the external viewer processes started by the browser.
// Launches are fire-and-forget; the registry only tracks liveness so the
// UI can show a count and kill everything on shutdown.
type Registry struct {
	mu    sync.Mutex
	procs []*process
	log   zerolog.Logger
}

func NewRegistry(log zerolog.Logger) *Registry {
	return &Registry{log: log}
}

// Launch starts a new viewer instance on the given mesh. The working
// directory is set to the viewer's own directory: the viewer loads
// fonts and default textures relative to its executable, so launching
// from anywhere else produces a blank window.
func (r *Registry) Launch(viewerPath, meshPath string) error {
	info, err := os.Stat(viewerPath)
	if err != nil || info.IsDir() {
		return fmt.Errorf("%w: %s", ErrViewerNotFound, viewerPath)
	}

	cmd := exec.Command(viewerPath, meshPath)
	cmd.Dir = filepath.Dir(viewerPath)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to launch viewer: %w", err)
	}

	p := &process{cmd: cmd, done: make(chan struct{})}
	go func() {
		// Reap the child so Prune sees the exit without blocking.
		_ = cmd.Wait()
		close(p.done)
	}()

	r.mu.Lock()
	r.procs = append(r.procs, p)
	r.mu.Unlock()

	r.log.Info().
		Int("pid", cmd.Process.Pid).
		Str("mesh", meshPath).
		Msg("viewer launched")
	return nil
}

// Prune drops processes that have exited and returns how many are still
// running. It never blocks waiting for a child.
func (r *Registry) Prune() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	alive := r.procs[:0]
	for _, p := range r.procs {
		if !p.exited() {
			alive = append(alive, p)
		}
	}
	r.procs = alive
	return len(r.procs)
}

// Alive returns the current count of running viewers.
func (r *Registry) Alive() int {
	return r.Prune()
}

// KillAll force-kills every tracked viewer. Kill errors (typically a
// process that already exited) are swallowed.
func (r *Registry) KillAll() {
	r.mu.Lock()
	procs := r.procs
	r.procs = nil
	r.mu.Unlock()

	for _, p := range procs {
		if p.exited() {
			continue
		}
		if err := p.cmd.Process.Kill(); err != nil {
			r.log.Debug().Err(err).Int("pid", p.cmd.Process.Pid).Msg("kill failed")
		}
	}
	if len(procs) > 0 {
		r.log.Info().Int("count", len(procs)).Msg("closed all viewers")
	}
}
