package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/existflow/shootcal/internal/ics"
	"github.com/existflow/shootcal/internal/logger"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the calendar as iCalendar",
	Long: `Export blocked days as all-day events and pending payments as to-dos
in iCalendar (.ics) format. Writes to stdout when no file is given.

Examples:
  shootcal export shoots.ics
  shootcal export --canceled > all.ics`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

var (
	exportCanceled bool
	exportName     string
)

func init() {
	exportCmd.Flags().BoolVar(&exportCanceled, "canceled", false, "Include canceled days as CANCELLED events")
	exportCmd.Flags().StringVar(&exportName, "name", "Shoots", "Calendar name")
}

func runExport(cmd *cobra.Command, args []string) error {
	return withSession(func(s *session) error {
		var w io.Writer = cmd.OutOrStdout()
		if len(args) == 1 {
			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", args[0], err)
			}
			defer f.Close()
			w = f
		}

		projects := s.mgr.Projects()
		payments := s.mgr.Payments()
		err := ics.Export(w, projects, payments, ics.Options{
			Name:            exportName,
			IncludeCanceled: exportCanceled,
			Location:        s.mgr.Location(),
		})
		if err != nil {
			return fmt.Errorf("failed to export calendar: %w", err)
		}

		logger.Info("Calendar exported", logger.F("days", len(projects)), logger.F("payments", len(payments)))
		if len(args) == 1 {
			fmt.Fprintf(cmd.ErrOrStderr(), "✓ Exported %d day(s) and %d payment(s) to %s\n", len(projects), len(payments), args[0])
		}
		return nil
	})
}
