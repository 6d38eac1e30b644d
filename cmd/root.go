package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"srbrowser/internal/config"
)

var (
	cfgPath     string
	profileMode string
	verbose     bool

	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "srbrowser",
	Short: "Browse Supreme Ruler unit definitions and preview their 3D models",
	Long: `srbrowser parses a Supreme Ruler default.unit file, lets you filter and
sort the unit list, locates each unit's mesh and texture files in the
Graphics/Meshes folder and launches an external model viewer per unit.

Running without a subcommand opens the interactive browser.`,
	RunE: runBrowse,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default srbrowser.json in the working directory)")
	rootCmd.PersistentFlags().StringVarP(&profileMode, "profile", "P", "", "game profile to use (SR2030 or SRU)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "enable debug logging")
}

func initConfig() {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		logger.Debug().Err(err).Msg("no .env file loaded")
	}

	if cfgPath == "" {
		cfgPath = os.Getenv("SRB_CONFIG")
	}
	if profileMode == "" {
		profileMode = os.Getenv("SRB_MODE")
	}
}

// loadConfig reads the config file and applies the CLI/env overrides.
// Config problems are reported but never fatal: the browser can always
// start on defaults and send the user to the settings screen.
func loadConfig() (config.Config, string) {
	path := cfgPath
	if path == "" {
		path = config.DefaultFilename
	}

	cfg, err := config.Load(path)
	if err != nil {
		logger.Warn().Err(err).Msg("using default config")
	}

	if profileMode != "" {
		if _, ok := config.GameFor(profileMode); ok {
			cfg.Mode = profileMode
		} else {
			logger.Warn().Str("profile", profileMode).Msg("unknown profile, keeping configured mode")
		}
	}

	applyEnvOverrides(&cfg)
	return cfg, path
}

// applyEnvOverrides lets .env / environment variables override the
// active profile's paths without touching the config file.
func applyEnvOverrides(cfg *config.Config) {
	profile := cfg.Active()
	if v := os.Getenv("SRB_UNIT_FILE"); v != "" {
		profile.UnitFile = v
	}
	if v := os.Getenv("SRB_MESHES_PATH"); v != "" {
		profile.MeshesPath = v
	}
	if v := os.Getenv("SRB_VIEWER_PATH"); v != "" {
		profile.ViewerPath = v
	}
	cfg.SetProfile(cfg.Mode, profile)
}
