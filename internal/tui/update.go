package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/existflow/shootcal/internal/logger"
	"github.com/existflow/shootcal/internal/model"
)

// tickMsg is sent every minute so "today" and payment urgency stay current
type tickMsg time.Time

// reminderDueMsg carries a reminder surfaced by the daily check
type reminderDueMsg struct {
	reminder model.ShootStatusReminder
}

// Init arms the daily check and starts listening for it
func (m Model) Init() tea.Cmd {
	m.rearm()
	return tea.Batch(tickCmd(), m.waitForReminder())
}

func tickCmd() tea.Cmd {
	return tea.Every(time.Minute, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// waitForReminder listens for reminders surfaced by the scheduler
func (m Model) waitForReminder() tea.Cmd {
	if m.dueCh == nil {
		return nil
	}
	ch := m.dueCh
	return func() tea.Msg {
		return reminderDueMsg{reminder: <-ch}
	}
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m, tickCmd()

	case reminderDueMsg:
		if m.prompt == nil && m.stillOpen(msg.reminder) {
			r := msg.reminder
			m.prompt = &r
			m.mode = ModePrompt
			m.rearm()
			logger.Info("Shoot status prompt opened", logger.F("reminder_id", r.ID))
		}
		return m, m.waitForReminder()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case ModePrompt:
			return m.updatePrompt(msg)
		case ModeSearch:
			return m.updateSearch(msg)
		case ModeHelp:
			m.mode = ModeNormal
			return m, nil
		}
		return m.handleNormalKeys(msg)
	}

	return m, nil
}

// stillOpen reports whether r has not been answered since it was surfaced
func (m Model) stillOpen(r model.ShootStatusReminder) bool {
	for _, open := range m.mgr.ShootStatusReminders() {
		if open.ID == r.ID {
			return true
		}
	}
	return false
}

func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.message = ""

	switch {
	case key.Matches(msg, keys.Quit):
		m.Close()
		return m, tea.Quit

	case key.Matches(msg, keys.PrevMonth):
		m.shiftMonth(-1)

	case key.Matches(msg, keys.NextMonth):
		m.shiftMonth(1)

	case key.Matches(msg, keys.Up):
		m.moveSelection(-1)

	case key.Matches(msg, keys.Down):
		m.moveSelection(1)

	case key.Matches(msg, keys.Today):
		m.selected = model.StartOfDay(m.now().In(m.mgr.Location()))
		m.mgr.SetMonth(m.selected)

	case key.Matches(msg, keys.Cancel):
		p, ok := m.selectedProject()
		if !ok {
			m.message = "Nothing to cancel"
			return m, nil
		}
		if !p.IsBlocked() {
			m.message = "Already canceled"
			return m, nil
		}
		m.mgr.CancelProject(m.selected)
		m.rearm()
		m.message = fmt.Sprintf("Canceled %s on %s", p.Name, m.selected.Format("Jan 2"))

	case key.Matches(msg, keys.Reblock):
		p, ok := m.selectedProject()
		if !ok || p.IsBlocked() {
			m.message = "Nothing to re-block"
			return m, nil
		}
		m.mgr.ReblockProject(m.selected)
		m.rearm()
		m.message = fmt.Sprintf("Re-blocked %s on %s", p.Name, m.selected.Format("Jan 2"))

	case key.Matches(msg, keys.Search):
		m.mode = ModeSearch
		m.results = nil
		m.input.SetValue("")
		m.input.Focus()

	case key.Matches(msg, keys.Help):
		m.mode = ModeHelp
	}

	if err := m.mgr.Err(); err != nil {
		m.message = "Save failed: " + err.Error()
	}
	return m, nil
}

// updatePrompt answers the shoot-status question. Only y and n close it.
func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.prompt == nil {
		m.mode = ModeNormal
		return m, nil
	}

	var isShoot bool
	switch {
	case key.Matches(msg, keys.Yes):
		isShoot = true
	case key.Matches(msg, keys.No):
		isShoot = false
	case key.Matches(msg, keys.Quit) && msg.String() == "ctrl+c":
		m.Close()
		return m, tea.Quit
	default:
		return m, nil
	}

	r := *m.prompt
	m.mgr.ConfirmShootStatus(r, isShoot)
	m.prompt = nil
	m.mode = ModeNormal
	if isShoot {
		m.message = fmt.Sprintf("Shoot on %s confirmed", r.Date.Format("Jan 2"))
	} else {
		m.message = fmt.Sprintf("No shoot on %s", r.Date.Format("Jan 2"))
	}
	m.rearm()
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Escape):
		m.mode = ModeNormal
		m.input.Blur()
		m.results = nil
		return m, nil

	case key.Matches(msg, keys.Enter):
		term := strings.TrimSpace(m.input.Value())
		m.mode = ModeNormal
		m.input.Blur()
		m.results = nil
		if term == "" {
			return m, nil
		}
		results := m.mgr.Search(term)
		if len(results) == 0 {
			m.message = fmt.Sprintf("No days match %q", term)
			return m, nil
		}
		m.selected = results[0].Date
		m.mgr.SetMonth(m.selected)
		m.message = fmt.Sprintf("%d day(s) match %q", len(results), term)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.results = m.mgr.Search(m.input.Value())
	return m, cmd
}
