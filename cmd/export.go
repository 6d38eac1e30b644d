package cmd

import (
	"fmt"
	"os"

	"github.com/jszwec/csvutil"
	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the filtered unit list as clean CSV",
	Long: `Write the units that pass the given filters to a well-formed CSV file
with a header row, for spreadsheets or further tooling. The raw game
columns that srbrowser does not understand are not carried over.`,
	RunE: runExport,
}

func init() {
	addFilterFlags(exportCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	list, err := selectUnits()
	if err != nil {
		return err
	}

	data, err := csvutil.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to encode CSV: %w", err)
	}

	if exportOut == "" {
		_, err := os.Stdout.Write(data)
		return err
	}

	if err := os.WriteFile(exportOut, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", exportOut, err)
	}
	logger.Info().Int("units", len(list)).Str("file", exportOut).Msg("exported")
	return nil
}
