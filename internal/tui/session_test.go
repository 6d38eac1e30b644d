package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"srbrowser/internal/config"
	"srbrowser/internal/viewer"
)

func testSession(t *testing.T) *Session {
	t.Helper()
	dir := t.TempDir()

	unitFile := filepath.Join(dir, "default.unit")
	data := "&&UNITS,,,\n1,T-72,1,100,,,,,,,,,R\n2,F-16,9,200,,,,,,,,,U\n"
	if err := os.WriteFile(unitFile, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.SetProfile(config.ModeSR2030, config.Profile{
		UnitFile:   unitFile,
		MeshesPath: dir,
		ViewerPath: "viewer.exe",
	})

	cfgPath := filepath.Join(dir, "srbrowser.json")
	return NewSession(cfg, cfgPath, viewer.NewRegistry(zerolog.Nop()), zerolog.Nop())
}

func TestSessionReload(t *testing.T) {
	s := testSession(t)

	if err := s.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if len(s.Units) != 2 {
		t.Errorf("loaded %d units, want 2", len(s.Units))
	}
}

func TestSessionReloadBadPathClearsUnits(t *testing.T) {
	s := testSession(t)
	if err := s.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	profile := s.Config.Active()
	profile.UnitFile = filepath.Join(t.TempDir(), "missing.unit")
	s.Config.SetProfile(s.Config.Mode, profile)

	if err := s.Reload(); err == nil {
		t.Error("expected an error for a missing unit file")
	}
	if len(s.Units) != 0 {
		t.Errorf("stale units survived a failed reload: %d", len(s.Units))
	}
}

func TestSessionSwitchMode(t *testing.T) {
	s := testSession(t)

	// SRU's unit file doesn't exist in the sandbox, so the switch reports
	// an error, but the mode change itself must stick and be persisted.
	_ = s.SwitchMode(config.ModeSRU)

	if s.Config.Mode != config.ModeSRU {
		t.Errorf("mode = %q, want SRU", s.Config.Mode)
	}
	if s.Game.PrimaryExt != ".x" {
		t.Errorf("game primary ext = %q, want .x", s.Game.PrimaryExt)
	}
	if _, err := os.Stat(s.ConfigPath); err != nil {
		t.Errorf("mode switch was not persisted: %v", err)
	}
}

func TestSessionNextMode(t *testing.T) {
	s := testSession(t)

	if got := s.NextMode(); got != config.ModeSRU {
		t.Errorf("NextMode from SR2030 = %q, want SRU", got)
	}
	_ = s.SwitchMode(config.ModeSRU)
	if got := s.NextMode(); got != config.ModeSR2030 {
		t.Errorf("NextMode from SRU = %q, want SR2030", got)
	}
}
