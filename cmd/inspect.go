package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"srbrowser/internal/assets"
	"srbrowser/internal/config"
	"srbrowser/internal/models"
	"srbrowser/internal/units"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <unit-id>",
	Short: "Show one unit's metadata and resolved mesh/texture files",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

// findUnit returns the first unit with the given id. Duplicate ids are
// legal in unit files; the first definition wins here, matching the
// order the game reads them in.
func findUnit(all []models.Unit, id int) (models.Unit, bool) {
	for _, u := range all {
		if u.ID == id {
			return u, true
		}
	}
	return models.Unit{}, false
}

func runInspect(cmd *cobra.Command, args []string) error {
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

	fmt.Printf("Name:     %s\n", u.Name)
	fmt.Printf("ID:       %d\n", u.ID)
	fmt.Printf("Class:    %d (%s)\n", u.Class, u.Category)
	fmt.Printf("Picnum:   %d\n", u.Picnum)
	fmt.Printf("Regions:  %s\n", u.Regions)

	mesh := assets.ResolveMesh(profile.MeshesPath, u.Picnum, game.PrimaryExt, game.SecondaryExt)
	fmt.Printf("Mesh:     %s [%s]\n", mesh.Filename, mesh.Status)

	textures, err := assets.FindTextures(profile.MeshesPath, u.Picnum)
	switch {
	case err != nil:
		fmt.Printf("Textures: %v\n", err)
	case len(textures) == 0:
		fmt.Printf("Textures: none found for %s.*\n", assets.MeshStem(u.Picnum))
	default:
		fmt.Println("Textures:")
		for _, tex := range textures {
			fmt.Printf("  %s\n", tex)
		}
	}

	if shared := assets.SharedBy(all, u.Picnum, u.ID); len(shared) > 0 {
		fmt.Printf("Shared mesh (%d other units):\n", len(shared))
		for _, s := range shared {
			fmt.Printf("  [%d] %s\n", s.ID, s.Name)
		}
	}

	return nil
}
