package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/existflow/shootcal/internal/model"
)

var paymentsCmd = &cobra.Command{
	Use:     "payments",
	Aliases: []string{"pay"},
	Short:   "List pending payments",
	Long: `List pending payment reminders, earliest due first.

Examples:
  shootcal payments
  shootcal payments paid 3f2a9c`,
	Args: cobra.NoArgs,
	RunE: runPayments,
}

var paidCmd = &cobra.Command{
	Use:   "paid [payment-id]",
	Short: "Mark a payment as received",
	Long: `Mark a payment as received. The reminder is removed; there is no
history of received payments.`,
	Args: cobra.ExactArgs(1),
	RunE: runPaid,
}

func init() {
	paymentsCmd.AddCommand(paidCmd)
}

func runPayments(cmd *cobra.Command, args []string) error {
	return withSession(func(s *session) error {
		payments := s.mgr.Payments()
		if len(payments) == 0 {
			fmt.Println("No pending payments.")
			return nil
		}

		now := time.Now()
		fmt.Printf("\n💰 Pending payments (%d)\n", len(payments))
		fmt.Println(strings.Repeat("─", 72))
		for _, p := range payments {
			printPayment(p, now)
		}
		fmt.Println()
		return nil
	})
}

func printPayment(p model.PaymentReminder, now time.Time) {
	icon := "  "
	switch p.Urgency(now) {
	case model.UrgencyOverdue:
		icon = "⚠️ "
	case model.UrgencyDueSoon:
		icon = "⏰"
	}

	name := truncate(p.ProjectName, 28)
	fmt.Printf("  %s %-8s  %-28s  %-20s  %10s  %s\n",
		icon, shortID(p.ID), name, p.DueDate.Format("Jan 2, 2006 3:04 PM"), formatAmount(p.Amount), p.Urgency(now))
	if p.Notes != "" {
		fmt.Printf("     %s\n", p.Notes)
	}
}

func runPaid(cmd *cobra.Command, args []string) error {
	return withSession(func(s *session) error {
		payments := s.mgr.Payments()
		ids := make([]string, len(payments))
		for i, p := range payments {
			ids[i] = p.ID
		}

		id, err := matchID(args[0], ids)
		if err != nil {
			return fmt.Errorf("payment not found: %w", err)
		}

		var paid model.PaymentReminder
		for _, p := range payments {
			if p.ID == id {
				paid = p
			}
		}

		s.mgr.MarkPaymentReceived(id)
		fmt.Printf("✓ Received: \"%s\" (%s)\n", paid.ProjectName, formatAmount(paid.Amount))
		return nil
	})
}
