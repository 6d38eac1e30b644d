package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultFilename is looked up in the working directory when no explicit
// config path is given.
const DefaultFilename = "srbrowser.json"

// Profile bundles the paths the browser needs for one game installation.
type Profile struct {
	UnitFile   string `json:"unit_file"`
	MeshesPath string `json:"meshes_path"`
	ViewerPath string `json:"viewer_path"`
}

// Config is the persisted application state. The JSON layout keeps one
// top-level object per game mode plus the active mode, so hand-editing
// the file stays easy.
type Config struct {
	Mode   string  `json:"mode"`
	SR2030 Profile `json:"SR2030"`
	SRU    Profile `json:"SRU"`
}

// Default returns the stock Steam install paths for both games.
func Default() Config {
	return Config{
		Mode: ModeSR2030,
		SR2030: Profile{
			UnitFile:   `C:\Program Files (x86)\Steam\steamapps\common\Supreme Ruler 2030\Maps\DATA\default.unit`,
			MeshesPath: `C:\Program Files (x86)\Steam\steamapps\common\Supreme Ruler 2030\Graphics\Meshes`,
			ViewerPath: "DirectXTKModelViewer.exe",
		},
		SRU: Profile{
			UnitFile:   `C:\Program Files (x86)\Steam\steamapps\common\Supreme Ruler Ultimate\Maps\DATA\default.unit`,
			MeshesPath: `C:\Program Files (x86)\Steam\steamapps\common\Supreme Ruler Ultimate\Graphics\Meshes`,
			ViewerPath: "mview.exe",
		},
	}
}

// Load reads the config file, falling back to defaults. A missing file is
// normal on first run and gets the defaults written out; a corrupt file
// keeps the defaults and reports the problem without aborting.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// First run: persist the defaults so the user has a file to edit.
			return cfg, cfg.Save(path)
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if _, ok := GameFor(cfg.Mode); !ok {
		cfg.Mode = ModeSR2030
	}
	return cfg, nil
}

// Save writes the config as indented JSON.
func (c Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Profile returns the profile for a mode, defaulting to SR2030 for
// unknown modes.
func (c Config) Profile(mode string) Profile {
	if mode == ModeSRU {
		return c.SRU
	}
	return c.SR2030
}

// Active returns the profile for the currently selected mode.
func (c Config) Active() Profile {
	return c.Profile(c.Mode)
}

// SetProfile stores updated paths for a mode.
func (c *Config) SetProfile(mode string, p Profile) {
	if mode == ModeSRU {
		c.SRU = p
	} else {
		c.SR2030 = p
	}
}
