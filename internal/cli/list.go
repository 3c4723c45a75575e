package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/existflow/shootcal/internal/model"
)

var monthCmd = &cobra.Command{
	Use:     "month [YYYY-MM]",
	Aliases: []string{"ls"},
	Short:   "Show every day of a month",
	Long: `Show each day of a month and the project occupying it.

Examples:
  shootcal month
  shootcal month next
  shootcal month 2024-06 --busy`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMonth,
}

var blockedCmd = &cobra.Command{
	Use:   "blocked",
	Short: "List blocked projects with their dates",
	Long: `List blocked days grouped by project. Canceled days are left out.

Examples:
  shootcal blocked
  shootcal blocked --month 2024-06`,
	Args: cobra.NoArgs,
	RunE: runBlocked,
}

var searchCmd = &cobra.Command{
	Use:   "search [term]",
	Short: "Find days by project name or notes",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

var (
	monthBusy    bool
	blockedMonth string
)

func init() {
	monthCmd.Flags().BoolVarP(&monthBusy, "busy", "b", false, "Only show occupied days")
	blockedCmd.Flags().StringVarP(&blockedMonth, "month", "m", "", "Limit to one month (YYYY-MM, next, prev)")
}

func runMonth(cmd *cobra.Command, args []string) error {
	arg := ""
	if len(args) == 1 {
		arg = args[0]
	}
	month, err := parseMonth(arg, time.Now(), currentConfig().Location())
	if err != nil {
		return err
	}

	return withSession(func(s *session) error {
		s.mgr.SetMonth(month)
		days := s.mgr.CalendarDays()

		fmt.Printf("\n📅 %s\n", month.Format("January 2006"))
		fmt.Println(strings.Repeat("─", 60))
		for _, d := range days {
			if monthBusy && d.Project == nil {
				continue
			}
			printDay(d)
		}
		fmt.Println()
		return nil
	})
}

func printDay(d model.CalendarDay) {
	date := d.Date.Format("Mon Jan 02")
	if d.Project == nil {
		fmt.Printf("  %s  %s\n", date, lipgloss.NewStyle().Faint(true).Render("free"))
		return
	}

	p := d.Project
	swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(p.DisplayColor())).Render("●")
	icon := "[■]"
	if !p.IsBlocked() {
		icon = "[✗]"
	}

	name := truncate(p.Name, 36)
	fmt.Printf("  %s  %s %s %-36s  %s\n", date, icon, swatch, name, shortID(p.ID))
}

func runBlocked(cmd *cobra.Command, args []string) error {
	var month *time.Time
	if blockedMonth != "" {
		m, err := parseMonth(blockedMonth, time.Now(), currentConfig().Location())
		if err != nil {
			return err
		}
		month = &m
	}

	return withSession(func(s *session) error {
		var groups []model.ProjectGroup
		if month != nil {
			groups = s.mgr.GroupedProjectsInMonth(*month)
		} else {
			groups = s.mgr.GroupedProjects()
		}

		if len(groups) == 0 {
			fmt.Println("No blocked days. Block one with: shootcal block \"Project\" YYYY-MM-DD")
			return nil
		}

		fmt.Println()
		for _, g := range groups {
			swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(g.Project.DisplayColor())).Render("●")
			fmt.Printf("%s %s [%s] (%d day(s))\n", swatch, g.Project.Name, shortID(g.Project.ID), len(g.Dates))
			if g.Project.Notes != "" {
				fmt.Printf("   %s\n", g.Project.Notes)
			}
			dates := make([]string, 0, len(g.Dates))
			for _, d := range g.Dates {
				dates = append(dates, d.Format("Jan 2"))
			}
			fmt.Printf("   %s\n", strings.Join(dates, ", "))
		}
		fmt.Println()
		return nil
	})
}

func runSearch(cmd *cobra.Command, args []string) error {
	term := strings.Join(args, " ")

	return withSession(func(s *session) error {
		results := s.mgr.Search(term)
		if len(results) == 0 {
			fmt.Printf("No days match \"%s\"\n", term)
			return nil
		}

		fmt.Printf("\n🔍 %d day(s) match \"%s\"\n", len(results), term)
		fmt.Println(strings.Repeat("─", 60))
		for _, d := range results {
			printDay(d)
		}
		fmt.Println()
		return nil
	})
}
