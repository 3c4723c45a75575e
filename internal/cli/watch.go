package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/existflow/shootcal/internal/logger"
	"github.com/existflow/shootcal/internal/tui"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Open the interactive month view",
	Long: `Open the month view. It shows blocked days in their project colors,
pending payments, and asks at the daily check time whether canceled
shoots happened anyway.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	return withSession(func(s *session) error {
		m, err := tui.NewModel(s.mgr, s.cfg.ReminderSchedule)
		if err != nil {
			return err
		}
		defer m.Close()

		logger.Info("Launching TUI")
		p := tea.NewProgram(m, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			logger.Error("TUI error", logger.F("error", err))
			return fmt.Errorf("failed to run TUI: %w", err)
		}

		logger.Info("TUI exited normally")
		return nil
	})
}
