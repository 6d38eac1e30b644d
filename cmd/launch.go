package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"srbrowser/internal/assets"
	"srbrowser/internal/config"
	"srbrowser/internal/units"
	"srbrowser/internal/viewer"
)

var launchCmd = &cobra.Command{
	Use:   "launch <unit-id>",
	Short: "Launch the 3D viewer on a unit's mesh",
	Long: `Resolve the mesh file for a unit and start the configured external
viewer on it. The viewer runs independently; srbrowser exits once it
has started.`,
	Args: cobra.ExactArgs(1),
	RunE: runLaunch,
}

func init() {
	rootCmd.AddCommand(launchCmd)
}

func runLaunch(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid unit id %q", args[0])
	}

	cfg, _ := loadConfig()
	game, _ := config.GameFor(cfg.Mode)
	profile := cfg.Active()

	all, err := units.ParseFile(profile.UnitFile)
	if err != nil {
		return err
	}

	u, ok := findUnit(all, id)
	if !ok {
		return fmt.Errorf("no unit with id %d in %s", id, profile.UnitFile)
	}

	mesh := assets.ResolveMesh(profile.MeshesPath, u.Picnum, game.PrimaryExt, game.SecondaryExt)
	if mesh.Status == assets.MeshMissing {
		return fmt.Errorf("mesh %s not found in %s", mesh.Filename, profile.MeshesPath)
	}
	if mesh.Status == assets.MeshAlternate {
		logger.Warn().Str("file", mesh.Filename).Msg("using alternate mesh format")
	}

	reg := viewer.NewRegistry(logger)
	if err := reg.Launch(profile.ViewerPath, mesh.Path); err != nil {
		return fmt.Errorf("viewer launch failed: %w", err)
	}

	fmt.Printf("Launched viewer on %s ([%d] %s)\n", mesh.Filename, u.ID, u.Name)
	return nil
}
