package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/existflow/shootcal/internal/model"
)

var weekdays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	grid := m.renderMonth()
	panel := m.renderPanel()
	mainContent := lipgloss.JoinHorizontal(lipgloss.Top, grid, panel)

	switch m.mode {
	case ModePrompt:
		mainContent = m.place(m.renderPrompt())
	case ModeSearch:
		mainContent = m.place(m.renderSearch())
	case ModeHelp:
		mainContent = m.renderHelp()
	}

	return lipgloss.JoinVertical(lipgloss.Left, mainContent, m.renderStatusBar())
}

func (m Model) place(modal string) string {
	return lipgloss.Place(
		m.width, m.height-2,
		lipgloss.Center, lipgloss.Center,
		modal,
		lipgloss.WithWhitespaceChars(" "),
	)
}

func (m Model) renderMonth() string {
	month := m.mgr.Month()
	today := model.DayKey(m.now().In(m.mgr.Location()))
	selected := model.DayKey(m.selected)

	var b strings.Builder
	title := month.Format("January 2006")
	if name := m.mgr.UserProfile().Name; name != "" {
		title += "  ·  " + name
	}
	b.WriteString(HeaderStyle.Render(title) + "\n\n")

	headers := make([]string, len(weekdays))
	for i, d := range weekdays {
		headers[i] = WeekdayStyle.Render(d)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, headers...) + "\n")

	days := m.mgr.CalendarDays()
	row := make([]string, 0, 7)
	for i := 0; i < int(month.Weekday()); i++ {
		row = append(row, CellStyle.Render(""))
	}
	for _, d := range days {
		row = append(row, renderCell(d, model.DayKey(d.Date) == today, model.DayKey(d.Date) == selected))
		if len(row) == 7 {
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, row...) + "\n")
			row = row[:0]
		}
	}
	if len(row) > 0 {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, row...) + "\n")
	}

	b.WriteString("\n" + m.renderSelected())
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

// renderCell draws one day. Blocked days take the project color with
// contrasting text; canceled days are greyed out.
func renderCell(d model.CalendarDay, isToday, isSelected bool) string {
	label := fmt.Sprintf("%d", d.Date.Day())
	if isSelected {
		label = "[" + label + "]"
	}

	style := CellStyle
	switch {
	case d.Project != nil && d.Project.IsBlocked():
		color := d.Project.DisplayColor()
		style = style.Background(lipgloss.Color(color)).Foreground(ContrastText(color)).Bold(true)
	case d.Project != nil:
		style = CanceledCellStyle
	case isToday:
		style = style.Foreground(TodayRing).Bold(true)
	}
	if isToday {
		style = style.Underline(true)
	}
	return style.Render(label)
}

func (m Model) renderSelected() string {
	date := m.selected.Format("Mon Jan 2")
	p, ok := m.selectedProject()
	if !ok {
		return HelpStyle.Render(date + "  free")
	}

	swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(p.DisplayColor())).Render("●")
	line := fmt.Sprintf("%s  %s %s", date, swatch, p.Name)
	if !p.IsBlocked() {
		line += HelpStyle.Render("  (canceled)")
	}
	if p.Notes != "" {
		line += "\n" + HelpStyle.Render(truncate(p.Notes, 50))
	}
	return line
}

func (m Model) renderPanel() string {
	now := m.now()
	var b strings.Builder

	payments := m.mgr.Payments()
	b.WriteString(PanelTitleStyle.Render(fmt.Sprintf("Payments (%d)", len(payments))) + "\n")
	if len(payments) == 0 {
		b.WriteString(HelpStyle.Render("Nothing pending") + "\n")
	}
	for _, p := range payments {
		style := urgencyStyle(p.Urgency(now))
		amount := ""
		if p.Amount != nil {
			amount = fmt.Sprintf(" %.2f", *p.Amount)
		}
		b.WriteString(style.Render(fmt.Sprintf("%-6s %s", p.DueDate.Format("Jan 2"), truncate(p.ProjectName, 20))))
		b.WriteString(HelpStyle.Render(amount) + "\n")
	}

	b.WriteString("\n" + PanelTitleStyle.Render("This month") + "\n")
	groups := m.mgr.GroupedProjectsInMonth(m.mgr.Month())
	if len(groups) == 0 {
		b.WriteString(HelpStyle.Render("No blocked days") + "\n")
	}
	for _, g := range groups {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(g.Project.DisplayColor())).Render("●")
		b.WriteString(fmt.Sprintf("%s %s %s\n", swatch, truncate(g.Project.Name, 24), HelpStyle.Render(fmt.Sprintf("%dd", len(g.Dates)))))
	}

	if reminders := m.mgr.ShootStatusReminders(); len(reminders) > 0 {
		b.WriteString("\n" + PanelTitleStyle.Render(fmt.Sprintf("Awaiting answer (%d)", len(reminders))) + "\n")
		b.WriteString(HelpStyle.Render("Next check "+m.sched.NextCheck(now).Format("Mon 15:04")) + "\n")
	}

	return PanelStyle.Height(max(m.height-4, 0)).Render(b.String())
}

func (m Model) renderPrompt() string {
	r := m.prompt
	name := "this project"
	if p, ok := m.mgr.ProjectOn(r.Date); ok {
		name = p.Name
	}

	var b strings.Builder
	b.WriteString(PanelTitleStyle.Render("Shoot status") + "\n\n")
	b.WriteString(fmt.Sprintf("%s was canceled for %s.\n", name, r.Date.Format("Mon Jan 2")))
	b.WriteString("Did the shoot happen anyway?\n\n")
	b.WriteString(HelpStyle.Render("y yes, block the day  •  n no shoot"))
	return ModalStyle.Render(b.String())
}

func (m Model) renderSearch() string {
	var b strings.Builder
	b.WriteString(PanelTitleStyle.Render("Search") + "\n\n")
	b.WriteString(m.input.View() + "\n\n")

	shown := m.results
	if len(shown) > 8 {
		shown = shown[:8]
	}
	for _, d := range shown {
		b.WriteString(fmt.Sprintf("%s  %s\n", d.Date.Format("Jan 02 2006"), truncate(d.Project.Name, 28)))
	}
	if extra := len(m.results) - len(shown); extra > 0 {
		b.WriteString(HelpStyle.Render(fmt.Sprintf("… %d more", extra)) + "\n")
	}
	b.WriteString("\n" + HelpStyle.Render("enter jump  •  esc close"))
	return ModalStyle.Width(50).Render(b.String())
}

func (m Model) renderStatusBar() string {
	help := "←/→ month • ↑/↓ day • c cancel • b re-block • / search • ? help • q quit"
	if m.message != "" {
		help = m.message + "  │  " + help
	}
	return StatusBarStyle.Width(m.width).Render(help)
}

func (m Model) renderHelp() string {
	bindings := []struct{ k, desc string }{
		{keys.PrevMonth.Help().Key, keys.PrevMonth.Help().Desc},
		{keys.NextMonth.Help().Key, keys.NextMonth.Help().Desc},
		{keys.Up.Help().Key, keys.Up.Help().Desc},
		{keys.Down.Help().Key, keys.Down.Help().Desc},
		{keys.Today.Help().Key, keys.Today.Help().Desc},
		{keys.Cancel.Help().Key, keys.Cancel.Help().Desc},
		{keys.Reblock.Help().Key, keys.Reblock.Help().Desc},
		{keys.Search.Help().Key, keys.Search.Help().Desc},
		{keys.Yes.Help().Key, keys.Yes.Help().Desc},
		{keys.No.Help().Key, keys.No.Help().Desc},
		{keys.Quit.Help().Key, keys.Quit.Help().Desc},
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("Keys") + "\n\n")
	for _, kb := range bindings {
		b.WriteString(fmt.Sprintf("  %-8s %s\n", kb.k, kb.desc))
	}
	b.WriteString("\n" + HelpStyle.Render("Press any key to close"))
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
