// Package tui is the interactive month view. It renders the calendar,
// lists pending payments and asks the daily "did the shoot happen?"
// question when the reminder scheduler surfaces a canceled day.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/existflow/shootcal/internal/calendar"
	"github.com/existflow/shootcal/internal/logger"
	"github.com/existflow/shootcal/internal/model"
	"github.com/existflow/shootcal/internal/reminder"
)

// Mode represents the current UI mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModePrompt
	ModeHelp
)

// Model is the main TUI model
type Model struct {
	mgr   *calendar.Manager
	sched *reminder.Scheduler
	now   func() time.Time

	// dueCh carries reminders surfaced by the scheduler's timer goroutine
	dueCh chan model.ShootStatusReminder

	// UI state
	width    int
	height   int
	mode     Mode
	selected time.Time

	// Shoot-status prompt, nil when closed
	prompt *model.ShootStatusReminder

	// Search
	input   textinput.Model
	results []model.CalendarDay

	message string
}

// Option configures a Model
type Option func(*Model)

// WithClock sets the time source for the view and the scheduler
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// NewModel creates the month view over mgr. schedule is the cron spec of
// the daily shoot-status check.
func NewModel(mgr *calendar.Manager, schedule string, opts ...Option) (Model, error) {
	logger.Info("Initializing TUI model")

	ti := textinput.New()
	ti.Placeholder = "Search projects..."
	ti.CharLimit = 128
	ti.Width = 40

	m := Model{
		mgr:   mgr,
		now:   time.Now,
		dueCh: make(chan model.ShootStatusReminder, 1),
		mode:  ModeNormal,
		input: ti,
	}
	for _, opt := range opts {
		opt(&m)
	}

	// The check runs on the calendar's zone, not the machine's
	clock := m.now
	loc := mgr.Location()
	m.now = func() time.Time { return clock().In(loc) }

	ch := m.dueCh
	sched, err := reminder.New(schedule, func(r model.ShootStatusReminder) {
		// Non-blocking: a reminder already queued will be shown first
		select {
		case ch <- r:
		default:
		}
	}, reminder.WithClock(m.now))
	if err != nil {
		return Model{}, err
	}
	m.sched = sched

	today := model.StartOfDay(m.now().In(mgr.Location()))
	mgr.SetMonth(today)
	m.selected = today

	logger.Debug("TUI model initialized",
		logger.F("month", mgr.Month().Format("2006-01")),
		logger.F("next_check", sched.NextCheck(m.now())),
	)
	return m, nil
}

// rearm re-arms the daily check against the current reminders and prompt
// state. It runs after every change to either.
func (m *Model) rearm() {
	m.sched.Rearm(m.mgr.ShootStatusReminders(), m.prompt != nil)
}

// Close stops the pending daily check
func (m Model) Close() {
	m.sched.Stop()
}

// selectedProject returns the project on the selected day, if any
func (m Model) selectedProject() (model.Project, bool) {
	return m.mgr.ProjectOn(m.selected)
}

// moveSelection moves the selected day and follows it across months
func (m *Model) moveSelection(days int) {
	m.selected = m.selected.AddDate(0, 0, days)
	if !model.SameMonth(m.selected, m.mgr.Month()) {
		m.mgr.SetMonth(m.selected)
	}
}

// shiftMonth changes the visible month and keeps the selection inside it
func (m *Model) shiftMonth(months int) {
	month := m.mgr.Month().AddDate(0, months, 0)
	m.mgr.SetMonth(month)

	day := m.selected.Day()
	if last := calendar.DaysInMonth(month); day > last {
		day = last
	}
	m.selected = time.Date(month.Year(), month.Month(), day, 0, 0, 0, 0, month.Location())
}
