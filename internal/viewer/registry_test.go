package viewer

import (
	"errors"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// sleepPath locates a short-lived stand-in for the model viewer.
func sleepPath(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("test viewer stand-in requires sleep(1)")
	}
	path, err := exec.LookPath("sleep")
	if err != nil {
		t.Skip("sleep not available")
	}
	return path
}

func TestLaunchMissingExecutable(t *testing.T) {
	reg := NewRegistry(zerolog.Nop())

	err := reg.Launch(filepath.Join(t.TempDir(), "viewer.exe"), "UNIT007.cmo")
	if !errors.Is(err, ErrViewerNotFound) {
		t.Fatalf("err = %v, want ErrViewerNotFound", err)
	}
	// A failed launch must not leave anything tracked.
	if got := reg.Alive(); got != 0 {
		t.Errorf("alive = %d, want 0", got)
	}
}

func TestLaunchTracksProcess(t *testing.T) {
	reg := NewRegistry(zerolog.Nop())

	// The argument takes the mesh path slot; sleep doesn't care.
	if err := reg.Launch(sleepPath(t), "30"); err != nil {
		t.Fatalf("Launch: %v", err)
	}
	if got := reg.Alive(); got != 1 {
		t.Errorf("alive = %d, want 1", got)
	}

	reg.KillAll()
	if got := reg.Alive(); got != 0 {
		t.Errorf("alive after KillAll = %d, want 0", got)
	}
}

func TestPruneDropsExited(t *testing.T) {
	reg := NewRegistry(zerolog.Nop())

	if err := reg.Launch(sleepPath(t), "0"); err != nil {
		t.Fatalf("Launch: %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for reg.Prune() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("exited process was never pruned")
		}
		time.Sleep(50 * time.Millisecond)
	}
}

func TestKillAllOnEmptyRegistry(t *testing.T) {
	reg := NewRegistry(zerolog.Nop())
	reg.KillAll() // must not panic
	if got := reg.Alive(); got != 0 {
		t.Errorf("alive = %d, want 0", got)
	}
}

func TestMultipleLaunches(t *testing.T) {
	reg := NewRegistry(zerolog.Nop())
	path := sleepPath(t)

	for i := 0; i < 3; i++ {
		if err := reg.Launch(path, "30"); err != nil {
			t.Fatalf("Launch %d: %v", i, err)
		}
	}
	if got := reg.Alive(); got != 3 {
		t.Errorf("alive = %d, want 3", got)
	}
	reg.KillAll()
	if got := reg.Alive(); got != 0 {
		t.Errorf("alive after KillAll = %d, want 0", got)
	}
}
