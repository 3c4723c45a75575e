package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/existflow/shootcal/internal/calendar"
	"github.com/existflow/shootcal/internal/model"
)

var blockCmd = &cobra.Command{
	Use:   "block [name] [date...]",
	Short: "Block one or more days for a project",
	Long: `Block days for a new project. Every listed date gets the same project;
any project already on those days is replaced.

A payment reminder can be attached either as an offset from the first
date (--pay-in/--pay-unit) or as an absolute due date (--pay-date and
optionally --pay-time).

Examples:
  shootcal block "Mehta wedding" 2024-06-10 2024-06-11 --color "#FF6B6B"
  shootcal block "Brand shoot" tomorrow --pay-in 2 --pay-unit weeks --amount 450
  shootcal block "Studio day" 2024-06-03 --repeat "FREQ=WEEKLY;COUNT=4"
  shootcal block "Portraits" "Jun 20" --pay-date 2024-06-30 --pay-time "2:30 PM"`,
	Args: cobra.MinimumNArgs(2),
	RunE: runBlock,
}

var (
	blockNotes    string
	blockColor    string
	blockRepeat   string
	blockPayDate  string
	blockPayTime  string
	blockPayIn    int
	blockPayUnit  string
	blockAmount   string
	blockPayNotes string
)

func init() {
	blockCmd.Flags().StringVarP(&blockNotes, "notes", "n", "", "Project notes")
	blockCmd.Flags().StringVarP(&blockColor, "color", "c", "", "Project color (#RRGGBB)")
	blockCmd.Flags().StringVarP(&blockRepeat, "repeat", "r", "", "Recurrence rule applied from the date (RRULE syntax)")
	blockCmd.Flags().StringVar(&blockPayDate, "pay-date", "", "Payment due date")
	blockCmd.Flags().StringVar(&blockPayTime, "pay-time", "", "Payment due time (e.g. '2:30 PM'), default noon")
	blockCmd.Flags().IntVar(&blockPayIn, "pay-in", 0, "Payment due this many units after the first date")
	blockCmd.Flags().StringVar(&blockPayUnit, "pay-unit", "days", "Unit for --pay-in (days, weeks, months)")
	blockCmd.Flags().StringVar(&blockAmount, "amount", "", "Payment amount")
	blockCmd.Flags().StringVar(&blockPayNotes, "pay-notes", "", "Payment notes")
}

func runBlock(cmd *cobra.Command, args []string) error {
	name := strings.TrimSpace(args[0])
	if name == "" {
		return fmt.Errorf("project name is required")
	}

	cfg := currentConfig()
	loc := cfg.Location()
	dates, err := parseDates(args[1:], time.Now(), loc)
	if err != nil {
		return err
	}

	if blockRepeat != "" {
		if len(dates) != 1 {
			return fmt.Errorf("--repeat takes exactly one start date")
		}
		dates, err = calendar.ExpandRule(dates[0], blockRepeat)
		if err != nil {
			return err
		}
		if len(dates) == 0 {
			return fmt.Errorf("recurrence rule %q produced no dates", blockRepeat)
		}
	}

	payment, err := paymentFromFlags(cmd, loc)
	if err != nil {
		return err
	}

	color := blockColor
	if color == "" {
		color = cfg.DefaultColor
	}

	return withSession(func(s *session) error {
		id := s.mgr.AddProjectToDates(dates, calendar.ProjectInput{
			Name:    name,
			Notes:   blockNotes,
			Color:   color,
			Payment: payment,
		})

		fmt.Printf("✓ Blocked %d day(s) for \"%s\" [%s]\n", len(dates), name, shortID(id))
		for _, d := range dates {
			fmt.Printf("  %s\n", d.Format("Mon Jan 2, 2006"))
		}
		if payment != nil {
			for _, p := range s.mgr.Payments() {
				if p.ProjectID == id {
					fmt.Printf("💰 Payment due %s (%s)\n", p.DueDate.Format("Jan 2, 2006 3:04 PM"), formatAmount(p.Amount))
				}
			}
		}
		return nil
	})
}

// paymentFromFlags builds the requested payment reminder, or nil when no
// payment flag was given.
func paymentFromFlags(cmd *cobra.Command, loc *time.Location) (*calendar.PaymentRequest, error) {
	absolute := cmd.Flags().Changed("pay-date")
	relative := cmd.Flags().Changed("pay-in")
	if absolute && relative {
		return nil, fmt.Errorf("use either --pay-date or --pay-in, not both")
	}
	if !absolute && !relative {
		if cmd.Flags().Changed("amount") || cmd.Flags().Changed("pay-time") {
			return nil, fmt.Errorf("--amount and --pay-time need --pay-date or --pay-in")
		}
		return nil, nil
	}

	req := &calendar.PaymentRequest{Notes: blockPayNotes}
	if cmd.Flags().Changed("amount") {
		amount, err := parseAmount(blockAmount)
		if err != nil {
			return nil, err
		}
		req.Amount = &amount
	}

	if absolute {
		date, err := parseDate(blockPayDate, time.Now(), loc)
		if err != nil {
			return nil, err
		}
		req.Schedule = calendar.AbsoluteDueDateTime{Date: date, Time: blockPayTime}
		return req, nil
	}

	if blockPayIn < 0 {
		return nil, fmt.Errorf("--pay-in must not be negative")
	}
	unit, err := parseOffsetUnit(blockPayUnit)
	if err != nil {
		return nil, err
	}
	req.Schedule = calendar.RelativeOffset{Value: blockPayIn, Unit: unit}
	return req, nil
}

func describeProject(p model.Project) string {
	status := "blocked"
	if !p.IsBlocked() {
		status = string(p.Status)
	}
	return fmt.Sprintf("\"%s\" [%s] %s", p.Name, shortID(p.ID), status)
}
