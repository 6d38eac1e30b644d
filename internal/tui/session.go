package tui

import (
	"github.com/rs/zerolog"

	"srbrowser/internal/config"
	"srbrowser/internal/models"
	"srbrowser/internal/units"
	"srbrowser/internal/viewer"
)

// Session is the mutable state shared by the TUI screens: active config,
// the loaded unit set and the viewer registry. Only the top-level update
// loop mutates it, and Close tears down any viewers still running.
type Session struct {
	Config     config.Config
	ConfigPath string
	Game       config.Game
	Units      []models.Unit
	Viewers    *viewer.Registry
	Log        zerolog.Logger
}

func NewSession(cfg config.Config, cfgPath string, reg *viewer.Registry, log zerolog.Logger) *Session {
	game, _ := config.GameFor(cfg.Mode)
	return &Session{
		Config:     cfg,
		ConfigPath: cfgPath,
		Game:       game,
		Viewers:    reg,
		Log:        log,
	}
}

// Reload replaces the unit set wholesale from the active profile's unit
// file. The previous set is discarded even when the reload fails, so a
// stale list never masks a bad path.
func (s *Session) Reload() error {
	list, err := units.ParseFile(s.Config.Active().UnitFile)
	s.Units = list
	if err != nil {
		s.Log.Warn().Err(err).Str("mode", s.Config.Mode).Msg("unit reload failed")
		return err
	}
	s.Log.Info().Int("units", len(list)).Str("mode", s.Config.Mode).Msg("units loaded")
	return nil
}

// SwitchMode activates another game profile, persists the choice and
// reloads the unit set.
func (s *Session) SwitchMode(mode string) error {
	game, ok := config.GameFor(mode)
	if !ok {
		return nil
	}
	s.Config.Mode = mode
	s.Game = game
	if err := s.Config.Save(s.ConfigPath); err != nil {
		s.Log.Warn().Err(err).Msg("config save failed")
	}
	return s.Reload()
}

// NextMode returns the mode after the active one in quick-switch order.
func (s *Session) NextMode() string {
	for i, g := range config.Games {
		if g.Mode == s.Config.Mode {
			return config.Games[(i+1)%len(config.Games)].Mode
		}
	}
	return config.Games[0].Mode
}

// Close kills every tracked viewer process.
func (s *Session) Close() {
	s.Viewers.KillAll()
}
