package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/existflow/shootcal/internal/calendar"
)

var editCmd = &cobra.Command{
	Use:   "edit [date]",
	Short: "Edit the project on one day",
	Long: `Edit the name, notes or color of the project on a single day. Other
days of the same project keep their details; pending payments for the
project pick up the new name.

Examples:
  shootcal edit 2024-06-10 --name "Mehta wedding (day 1)"
  shootcal edit tomorrow --notes "Bring the 85mm" --color "#FFB347"`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

var cancelCmd = &cobra.Command{
	Use:   "cancel [date]",
	Short: "Cancel the project on one day",
	Long: `Mark the project on a day as canceled. The day stays occupied and a
shoot-status reminder asks later whether the shoot happened anyway.`,
	Args: cobra.ExactArgs(1),
	RunE: runCancel,
}

var reblockCmd = &cobra.Command{
	Use:   "reblock [date]",
	Short: "Block a canceled day again",
	Args:  cobra.ExactArgs(1),
	RunE:  runReblock,
}

var (
	editName  string
	editNotes string
	editColor string
)

func init() {
	editCmd.Flags().StringVar(&editName, "name", "", "New project name")
	editCmd.Flags().StringVarP(&editNotes, "notes", "n", "", "New notes")
	editCmd.Flags().StringVarP(&editColor, "color", "c", "", "New color (#RRGGBB)")
}

func runEdit(cmd *cobra.Command, args []string) error {
	if !cmd.Flags().Changed("name") && !cmd.Flags().Changed("notes") && !cmd.Flags().Changed("color") {
		return fmt.Errorf("nothing to change: pass --name, --notes or --color")
	}

	date, err := parseDate(args[0], time.Now(), currentConfig().Location())
	if err != nil {
		return err
	}

	return withSession(func(s *session) error {
		current, ok := s.mgr.ProjectOn(date)
		if !ok {
			fmt.Printf("No project on %s\n", date.Format("Jan 2, 2006"))
			return nil
		}

		edit := calendar.ProjectEdit{Name: current.Name, Notes: current.Notes}
		if cmd.Flags().Changed("name") {
			edit.Name = editName
		}
		if cmd.Flags().Changed("notes") {
			edit.Notes = editNotes
		}
		if cmd.Flags().Changed("color") {
			edit.Color = editColor
		}
		s.mgr.EditProject(date, current.ID, edit)

		updated, _ := s.mgr.ProjectOn(date)
		fmt.Printf("✎ Updated %s: %s\n", date.Format("Jan 2"), describeProject(updated))
		return nil
	})
}

func runCancel(cmd *cobra.Command, args []string) error {
	return changeStatus(args[0], func(s *session, date time.Time) {
		s.mgr.CancelProject(date)
	}, "✗ Canceled")
}

func runReblock(cmd *cobra.Command, args []string) error {
	return changeStatus(args[0], func(s *session, date time.Time) {
		s.mgr.ReblockProject(date)
	}, "✓ Re-blocked")
}

func changeStatus(arg string, apply func(*session, time.Time), verb string) error {
	date, err := parseDate(arg, time.Now(), currentConfig().Location())
	if err != nil {
		return err
	}

	return withSession(func(s *session) error {
		if _, ok := s.mgr.ProjectOn(date); !ok {
			fmt.Printf("No project on %s\n", date.Format("Jan 2, 2006"))
			return nil
		}
		apply(s, date)

		p, _ := s.mgr.ProjectOn(date)
		fmt.Printf("%s %s: %s\n", verb, date.Format("Jan 2"), describeProject(p))
		return nil
	})
}
