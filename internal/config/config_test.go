package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "srbrowser.json")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Mode != ModeSR2030 {
		t.Errorf("default mode = %q, want %q", cfg.Mode, ModeSR2030)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("defaults were not written out: %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "srbrowser.json")

	cfg := Default()
	cfg.Mode = ModeSRU
	cfg.SetProfile(ModeSRU, Profile{
		UnitFile:   "/games/sru/default.unit",
		MeshesPath: "/games/sru/meshes",
		ViewerPath: "/tools/mview.exe",
	})
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Mode != ModeSRU {
		t.Errorf("mode = %q, want %q", loaded.Mode, ModeSRU)
	}
	if loaded.Active().UnitFile != "/games/sru/default.unit" {
		t.Errorf("active unit file = %q", loaded.Active().UnitFile)
	}
	// The untouched profile keeps its defaults.
	if loaded.SR2030 != Default().SR2030 {
		t.Errorf("SR2030 profile changed: %+v", loaded.SR2030)
	}
}

func TestLoadCorruptKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "srbrowser.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err == nil {
		t.Error("expected an error for corrupt config")
	}
	if cfg.Mode != ModeSR2030 {
		t.Errorf("corrupt config should fall back to defaults, mode = %q", cfg.Mode)
	}
}

func TestLoadUnknownModeFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "srbrowser.json")
	if err := os.WriteFile(path, []byte(`{"mode":"SR1936"}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Mode != ModeSR2030 {
		t.Errorf("mode = %q, want fallback %q", cfg.Mode, ModeSR2030)
	}
}

func TestProfileLookup(t *testing.T) {
	cfg := Default()
	if cfg.Profile(ModeSRU).ViewerPath != "mview.exe" {
		t.Errorf("SRU viewer = %q", cfg.Profile(ModeSRU).ViewerPath)
	}
	// Unknown modes resolve to SR2030.
	if cfg.Profile("bogus") != cfg.SR2030 {
		t.Error("unknown mode did not fall back to SR2030")
	}
}

func TestGameFor(t *testing.T) {
	g, ok := GameFor(ModeSRU)
	if !ok || g.PrimaryExt != ".x" || g.SecondaryExt != ".cmo" {
		t.Errorf("SRU game = %+v, ok=%v", g, ok)
	}

	g, ok = GameFor(ModeSR2030)
	if !ok || g.PrimaryExt != ".cmo" || g.SecondaryExt != ".x" {
		t.Errorf("SR2030 game = %+v, ok=%v", g, ok)
	}

	if _, ok := GameFor("SR1936"); ok {
		t.Error("unknown mode should not resolve")
	}
}

func TestRegionTables(t *testing.T) {
	sr2030, _ := GameFor(ModeSR2030)
	sru, _ := GameFor(ModeSRU)

	// SR2030 adds lowercase codes on top of the classic uppercase set.
	if len(sr2030.Regions) <= len(sru.Regions) {
		t.Errorf("SR2030 table (%d) should be larger than SRU (%d)",
			len(sr2030.Regions), len(sru.Regions))
	}

	for _, g := range []Game{sr2030, sru} {
		if g.Regions[0].Code != "*" {
			t.Errorf("%s: first region entry should be the global wildcard, got %q", g.Mode, g.Regions[0].Code)
		}
		seen := make(map[string]bool)
		for _, r := range g.Regions {
			if seen[r.Code] {
				t.Errorf("%s: duplicate region code %q", g.Mode, r.Code)
			}
			seen[r.Code] = true
		}
	}
}
