// Package calendar owns the in-memory calendar state: the date-to-project
// map, payment reminders, shoot-status reminders and the user profile.
// Every mutation updates memory and writes the affected records through
// to the store before returning.
package calendar

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/existflow/shootcal/internal/logger"
	"github.com/existflow/shootcal/internal/model"
	"github.com/existflow/shootcal/internal/store"
)

// ProjectInput describes a project being blocked
type ProjectInput struct {
	Name    string
	Notes   string
	Color   string
	Payment *PaymentRequest
}

// ProjectEdit replaces a project's details on one day. An empty Color
// keeps the current color.
type ProjectEdit struct {
	Name  string
	Notes string
	Color string
}

// Manager is the single owner of the calendar records
type Manager struct {
	mu    sync.Mutex
	store *store.Store
	loc   *time.Location
	now   func() time.Time
	newID func() string
	month time.Time

	projects  map[string]model.Project
	payments  []model.PaymentReminder
	reminders []model.ShootStatusReminder
	profile   model.UserProfile

	err error
}

// Option configures a Manager
type Option func(*Manager)

// WithClock sets the time source
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithIDGenerator sets the id source for new records
func WithIDGenerator(newID func() string) Option {
	return func(m *Manager) { m.newID = newID }
}

// WithMonth sets the initially visible month
func WithMonth(month time.Time) Option {
	return func(m *Manager) { m.month = month }
}

// WithLocation sets the zone day keys are computed in. It defaults to the
// store's location.
func WithLocation(loc *time.Location) Option {
	return func(m *Manager) {
		if loc != nil {
			m.loc = loc
		}
	}
}

// New loads the four records from st once and returns a Manager over them
func New(st *store.Store, opts ...Option) *Manager {
	m := &Manager{
		store: st,
		loc:   st.Location(),
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.month.IsZero() {
		m.month = m.now()
	}
	m.month = model.StartOfMonth(m.month.In(m.loc))

	m.projects = st.LoadProjects()
	m.payments = st.LoadPayments()
	m.reminders = st.LoadShootStatusReminders()
	m.profile = st.LoadUserProfile()

	logger.Info("Calendar loaded",
		logger.F("days", len(m.projects)),
		logger.F("payments", len(m.payments)),
		logger.F("reminders", len(m.reminders)),
	)
	return m
}

// Err returns the first storage write error seen, if any. Mutations keep
// their in-memory effect even when the write fails.
func (m *Manager) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

// Location returns the zone day keys are computed in
func (m *Manager) Location() *time.Location {
	return m.loc
}

func (m *Manager) dayKey(t time.Time) string {
	return model.DayKey(t.In(m.loc))
}

func (m *Manager) record(key string, err error) {
	if err == nil {
		return
	}
	logger.Error("Write-through failed", logger.F("key", key), logger.F("error", err))
	if m.err == nil {
		m.err = err
	}
}

func (m *Manager) saveProjects() {
	m.record(store.KeyProjects, m.store.SaveProjects(m.projects))
}

func (m *Manager) savePayments() {
	m.record(store.KeyPayments, m.store.SavePayments(m.payments))
}

func (m *Manager) saveReminders() {
	m.record(store.KeyShootStatusReminders, m.store.SaveShootStatusReminders(m.reminders))
}

// AddProject blocks date for a new project, replacing any project already
// there, and returns the new project id.
func (m *Manager) AddProject(date time.Time, in ProjectInput) string {
	return m.AddProjectToDates([]time.Time{date}, in)
}

// AddProjectToDates blocks every date for one new project. A requested
// payment reminder is created once, anchored on the first date.
func (m *Manager) AddProjectToDates(dates []time.Time, in ProjectInput) string {
	if len(dates) == 0 {
		return ""
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.newID()
	project := model.Project{
		ID:     id,
		Name:   in.Name,
		Notes:  in.Notes,
		Color:  in.Color,
		Status: model.StatusBlocked,
	}
	for _, date := range dates {
		m.projects[m.dayKey(date)] = project
	}
	m.saveProjects()

	logger.Info("Project blocked",
		logger.F("project_id", id),
		logger.F("name", in.Name),
		logger.F("days", len(dates)),
	)

	if in.Payment != nil && in.Payment.Schedule != nil {
		anchor := model.StartOfDay(dates[0].In(m.loc))
		if due, ok := in.Payment.Schedule.dueDate(anchor); ok {
			m.payments = append(m.payments, model.PaymentReminder{
				ID:          m.newID(),
				ProjectID:   id,
				ProjectName: in.Name,
				DueDate:     due,
				Amount:      in.Payment.Amount,
				Notes:       in.Payment.Notes,
				Status:      model.PaymentPending,
			})
			m.savePayments()
			logger.Info("Payment reminder added", logger.F("project_id", id), logger.F("due", due))
		}
	}

	return id
}

// EditProject replaces the project's details on date only. Sibling days
// sharing the project id are left alone; payment reminders for projectID
// pick up the new name.
func (m *Manager) EditProject(date time.Time, projectID string, in ProjectEdit) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := m.dayKey(date)
	current, ok := m.projects[key]
	if !ok {
		return
	}

	current.Name = in.Name
	current.Notes = in.Notes
	if in.Color != "" {
		current.Color = in.Color
	}
	m.projects[key] = current
	m.saveProjects()

	renamed := false
	for i := range m.payments {
		if m.payments[i].ProjectID == projectID {
			m.payments[i].ProjectName = in.Name
			renamed = true
		}
	}
	if renamed {
		m.savePayments()
	}

	logger.Info("Project edited", logger.F("project_id", projectID), logger.F("day", key))
}

// CancelProject marks the project on date canceled and opens a
// shoot-status reminder for it.
func (m *Manager) CancelProject(date time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := m.dayKey(date)
	current, ok := m.projects[key]
	if !ok {
		return
	}

	current.Status = model.StatusCanceled
	m.projects[key] = current
	m.saveProjects()

	m.reminders = append(m.reminders, model.ShootStatusReminder{
		ID:        m.newID(),
		ProjectID: current.ID,
		Date:      model.StartOfDay(date.In(m.loc)),
		Responded: false,
	})
	m.saveReminders()

	logger.Info("Project canceled", logger.F("project_id", current.ID), logger.F("day", key))
}

// ReblockProject marks the project on date blocked again and drops the
// shoot-status reminders raised for that day.
func (m *Manager) ReblockProject(date time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := m.dayKey(date)
	current, ok := m.projects[key]
	if !ok {
		return
	}

	current.Status = model.StatusBlocked
	m.projects[key] = current
	m.saveProjects()

	kept := m.reminders[:0]
	for _, r := range m.reminders {
		if m.dayKey(r.Date) == key && r.ProjectID == current.ID {
			continue
		}
		kept = append(kept, r)
	}
	m.reminders = kept
	m.saveReminders()

	logger.Info("Project re-blocked", logger.F("project_id", current.ID), logger.F("day", key))
}

// MarkPaymentReceived deletes the payment reminder. Unknown ids are ignored.
func (m *Manager) MarkPaymentReceived(paymentID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, p := range m.payments {
		if p.ID == paymentID {
			m.payments = append(m.payments[:i], m.payments[i+1:]...)
			m.savePayments()
			logger.Info("Payment received", logger.F("payment_id", paymentID))
			return
		}
	}
}

// ConfirmShootStatus answers a shoot-status reminder. A shoot re-blocks
// the day if a project still occupies it; either way the reminder is deleted.
func (m *Manager) ConfirmShootStatus(reminder model.ShootStatusReminder, isShoot bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if isShoot {
		key := m.dayKey(reminder.Date)
		if current, ok := m.projects[key]; ok {
			current.Status = model.StatusBlocked
			m.projects[key] = current
			m.saveProjects()
		}
	}

	kept := m.reminders[:0]
	for _, r := range m.reminders {
		if r.ID != reminder.ID {
			kept = append(kept, r)
		}
	}
	m.reminders = kept
	m.saveReminders()

	logger.Info("Shoot status confirmed",
		logger.F("reminder_id", reminder.ID),
		logger.F("shoot", isShoot),
	)
}

// SetUserProfile replaces the profile
func (m *Manager) SetUserProfile(profile model.UserProfile) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.profile = profile
	m.record(store.KeyUserProfile, m.store.SaveUserProfile(profile))
}

// UserProfile returns the profile
func (m *Manager) UserProfile() model.UserProfile {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.profile
}

// Reset empties all four records
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.projects = map[string]model.Project{}
	m.payments = []model.PaymentReminder{}
	m.reminders = []model.ShootStatusReminder{}
	m.profile = model.UserProfile{}
	m.saveProjects()
	m.savePayments()
	m.saveReminders()
	m.record(store.KeyUserProfile, m.store.SaveUserProfile(m.profile))

	logger.Warn("Calendar cleared")
}

// SetMonth changes the visible month
func (m *Manager) SetMonth(month time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.month = model.StartOfMonth(month.In(m.loc))
}

// Month returns the first day of the visible month
func (m *Manager) Month() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.month
}

// CalendarDays projects the visible month
func (m *Manager) CalendarDays() []model.CalendarDay {
	m.mu.Lock()
	defer m.mu.Unlock()
	return ProjectMonth(m.month, m.projects)
}

// ProjectOn returns the project occupying date, if any
func (m *Manager) ProjectOn(date time.Time) (model.Project, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.projects[m.dayKey(date)]
	return p, ok
}

// Projects returns a copy of the date-to-project map
func (m *Manager) Projects() map[string]model.Project {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[string]model.Project, len(m.projects))
	for k, v := range m.projects {
		out[k] = v
	}
	return out
}

// Payments returns the pending payment reminders, earliest due first
func (m *Manager) Payments() []model.PaymentReminder {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]model.PaymentReminder, len(m.payments))
	copy(out, m.payments)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate.Before(out[j].DueDate)
	})
	return out
}

// ShootStatusReminders returns the open shoot-status reminders
func (m *Manager) ShootStatusReminders() []model.ShootStatusReminder {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]model.ShootStatusReminder, len(m.reminders))
	copy(out, m.reminders)
	return out
}

// GroupedProjects groups every blocked day by project
func (m *Manager) GroupedProjects() []model.ProjectGroup {
	m.mu.Lock()
	defer m.mu.Unlock()
	return GroupBlocked(m.projects, m.loc, nil)
}

// GroupedProjectsInMonth groups the blocked days of one month by project
func (m *Manager) GroupedProjectsInMonth(month time.Time) []model.ProjectGroup {
	m.mu.Lock()
	defer m.mu.Unlock()
	month = month.In(m.loc)
	return GroupBlocked(m.projects, m.loc, &month)
}

// Search finds occupied days whose project name or notes contain term,
// ignoring case. Results are ascending by date.
func (m *Manager) Search(term string) []model.CalendarDay {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	keys := make([]string, 0)
	for key, p := range m.projects {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Notes), term) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	results := make([]model.CalendarDay, 0, len(keys))
	for _, key := range keys {
		date, err := model.ParseDayKey(key, m.loc)
		if err != nil {
			continue
		}
		p := m.projects[key]
		results = append(results, model.CalendarDay{Date: date, Project: &p})
	}
	return results
}
