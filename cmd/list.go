package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"srbrowser/internal/models"
	"srbrowser/internal/units"
)

var (
	filterCategory string
	filterRegion   string
	filterSearch   string
	filterPicnum   int
	sortOrder      string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the filtered unit list",
	Long: `Parse the active profile's unit file and print the units that pass the
given filters, in the requested order.`,
	RunE: runList,
}

func init() {
	addFilterFlags(listCmd)
	rootCmd.AddCommand(listCmd)
}

// addFilterFlags registers the shared filter/sort flags on a command.
// list and export accept exactly the same selection surface.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&filterCategory, "category", "c", "all", "category filter: all, land, air or naval")
	cmd.Flags().StringVarP(&filterRegion, "region", "r", "", "region code filter (* for global/export units)")
	cmd.Flags().StringVarP(&filterSearch, "search", "s", "", "substring of unit name or ID")
	cmd.Flags().IntVarP(&filterPicnum, "picnum", "n", -1, "only units using this picnum")
	cmd.Flags().StringVar(&sortOrder, "sort", "id", "sort order: id, -id, name, -name, class or picnum")
}

// buildFilter turns the flag values into a units.Filter.
func buildFilter() (units.Filter, error) {
	f := units.Filter{
		Query:  filterSearch,
		Region: filterRegion,
	}

	switch strings.ToLower(filterCategory) {
	case "", "all":
	case "land":
		f.Category = models.CategoryLand
	case "air":
		f.Category = models.CategoryAir
	case "naval":
		f.Category = models.CategoryNaval
	default:
		return f, fmt.Errorf("unknown category %q (want land, air or naval)", filterCategory)
	}

	if filterPicnum >= 0 {
		picnum := filterPicnum
		f.Picnum = &picnum
	}
	return f, nil
}

// selectUnits parses the active unit file and applies filter and sort.
func selectUnits() ([]models.Unit, error) {
	cfg, _ := loadConfig()

	all, err := units.ParseFile(cfg.Active().UnitFile)
	if err != nil {
		return nil, err
	}
	logger.Debug().Int("units", len(all)).Str("file", cfg.Active().UnitFile).Msg("parsed unit file")

	filter, err := buildFilter()
	if err != nil {
		return nil, err
	}

	mode, ok := units.SortModeFromName(sortOrder)
	if !ok {
		return nil, fmt.Errorf("unknown sort order %q", sortOrder)
	}

	list := filter.Apply(all)
	units.Sort(list, mode)
	return list, nil
}

func runList(cmd *cobra.Command, args []string) error {
	list, err := selectUnits()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCLASS\tCATEGORY\tPICNUM\tREGIONS")
	for _, u := range list {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%d\t%s\n", u.ID, u.Name, u.Class, u.Category, u.Picnum, u.Regions)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d units\n", len(list))
	return nil
}
