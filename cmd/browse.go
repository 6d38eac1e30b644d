package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"srbrowser/internal/tui"
	"srbrowser/internal/viewer"
)

// logFilename receives zerolog output while the TUI owns the terminal.
const logFilename = "srbrowser.log"

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive unit browser (same as running without a command)",
	RunE:  runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, path := loadConfig()

	// stderr belongs to the TUI from here on; log to a file instead.
	log := logger
	if f, err := os.OpenFile(logFilename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
		defer f.Close()
		log = zerolog.New(f).Level(logger.GetLevel()).With().Timestamp().Logger()
	}

	session := tui.NewSession(cfg, path, viewer.NewRegistry(log), log)
	if err := session.Reload(); err != nil {
		// Missing unit file on startup is fine: the user lands in the
		// browser with an empty list and fixes the path in settings.
		log.Warn().Err(err).Msg("initial load failed")
	}
	defer session.Close()

	p := tea.NewProgram(
		tui.NewModel(session),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run browser: %w", err)
	}
	return nil
}
