package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/existflow/shootcal/internal/model"
	"github.com/existflow/shootcal/internal/reminder"
)

var remindersCmd = &cobra.Command{
	Use:   "reminders",
	Short: "List open shoot-status reminders",
	Long: `List canceled days still waiting for an answer to "did the shoot
happen?". The watch view asks at the daily check time; answer here with
the confirm subcommand.

Examples:
  shootcal reminders
  shootcal reminders confirm 9b1c yes`,
	Args: cobra.NoArgs,
	RunE: runReminders,
}

var confirmCmd = &cobra.Command{
	Use:   "confirm [reminder-id] [yes|no]",
	Short: "Answer a shoot-status reminder",
	Long: `Answer whether a canceled shoot happened. "yes" blocks the day again;
either answer closes the reminder.`,
	Args: cobra.ExactArgs(2),
	RunE: runConfirm,
}

func init() {
	remindersCmd.AddCommand(confirmCmd)
}

func runReminders(cmd *cobra.Command, args []string) error {
	sched, err := reminder.New(currentConfig().ReminderSchedule, nil)
	if err != nil {
		return err
	}

	return withSession(func(s *session) error {
		reminders := s.mgr.ShootStatusReminders()
		now := time.Now().In(s.mgr.Location())

		if len(reminders) == 0 {
			fmt.Println("No open shoot-status reminders.")
			return nil
		}

		fmt.Printf("\n🔔 Shoot-status reminders (%d)\n", len(reminders))
		fmt.Println(strings.Repeat("─", 60))
		for _, r := range reminders {
			name := "(day freed)"
			if p, ok := s.mgr.ProjectOn(r.Date); ok {
				name = p.Name
			}
			fmt.Printf("  %-8s  %s  %s\n", shortID(r.ID), r.Date.Format("Mon Jan 02"), name)
		}

		if due, ok := reminder.Due(now, reminders); ok {
			fmt.Printf("\nDue now: %s. Answer with: shootcal reminders confirm %s yes|no\n",
				due.Date.Format("Jan 2"), shortID(due.ID))
		} else {
			fmt.Printf("\nNext check: %s\n", sched.NextCheck(now).Format("Mon Jan 2 15:04"))
		}
		return nil
	})
}

func runConfirm(cmd *cobra.Command, args []string) error {
	isShoot, err := parseAnswer(args[1])
	if err != nil {
		return err
	}

	return withSession(func(s *session) error {
		reminders := s.mgr.ShootStatusReminders()
		ids := make([]string, len(reminders))
		for i, r := range reminders {
			ids[i] = r.ID
		}

		id, err := matchID(args[0], ids)
		if err != nil {
			return fmt.Errorf("reminder not found: %w", err)
		}

		var answered model.ShootStatusReminder
		for _, r := range reminders {
			if r.ID == id {
				answered = r
			}
		}

		s.mgr.ConfirmShootStatus(answered, isShoot)
		if isShoot {
			fmt.Printf("✓ Shoot on %s confirmed, day blocked again\n", answered.Date.Format("Jan 2"))
		} else {
			fmt.Printf("○ No shoot on %s\n", answered.Date.Format("Jan 2"))
		}
		return nil
	})
}
