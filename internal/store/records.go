package store

import (
	"github.com/existflow/shootcal/internal/model"
)

// paymentRecord is the stored form of a PaymentReminder
type paymentRecord struct {
	ID          string              `json:"id"`
	ProjectID   string              `json:"projectId"`
	ProjectName string              `json:"projectName"`
	DueDate     string              `json:"dueDate"`
	Amount      *float64            `json:"amount,omitempty"`
	Notes       string              `json:"notes,omitempty"`
	Status      model.PaymentStatus `json:"status"`
}

// shootReminderRecord is the stored form of a ShootStatusReminder
type shootReminderRecord struct {
	ID        string `json:"id"`
	ProjectID string `json:"projectId"`
	Date      string `json:"date"`
	Responded bool   `json:"responded"`
}

// LoadProjects returns the date-to-project map, empty when absent
func (s *Store) LoadProjects() map[string]model.Project {
	projects, ok := Load[map[string]model.Project](s, KeyProjects)
	if !ok || projects == nil {
		return map[string]model.Project{}
	}
	return projects
}

// SaveProjects writes the whole date-to-project map
func (s *Store) SaveProjects(projects map[string]model.Project) error {
	return Save(s, KeyProjects, projects)
}

// LoadPayments returns the payment reminders with due dates re-hydrated
func (s *Store) LoadPayments() []model.PaymentReminder {
	records, ok := Load[[]paymentRecord](s, KeyPayments)
	if !ok {
		return []model.PaymentReminder{}
	}

	payments := make([]model.PaymentReminder, 0, len(records))
	for _, r := range records {
		payments = append(payments, model.PaymentReminder{
			ID:          r.ID,
			ProjectID:   r.ProjectID,
			ProjectName: r.ProjectName,
			DueDate:     s.decodeTime(KeyPayments, r.ID, r.DueDate),
			Amount:      r.Amount,
			Notes:       r.Notes,
			Status:      r.Status,
		})
	}
	return payments
}

// SavePayments writes every payment reminder
func (s *Store) SavePayments(payments []model.PaymentReminder) error {
	records := make([]paymentRecord, 0, len(payments))
	for _, p := range payments {
		records = append(records, paymentRecord{
			ID:          p.ID,
			ProjectID:   p.ProjectID,
			ProjectName: p.ProjectName,
			DueDate:     EncodeTime(p.DueDate),
			Amount:      p.Amount,
			Notes:       p.Notes,
			Status:      p.Status,
		})
	}
	return Save(s, KeyPayments, records)
}

// LoadShootStatusReminders returns the open reminders with dates re-hydrated
func (s *Store) LoadShootStatusReminders() []model.ShootStatusReminder {
	records, ok := Load[[]shootReminderRecord](s, KeyShootStatusReminders)
	if !ok {
		return []model.ShootStatusReminder{}
	}

	reminders := make([]model.ShootStatusReminder, 0, len(records))
	for _, r := range records {
		reminders = append(reminders, model.ShootStatusReminder{
			ID:        r.ID,
			ProjectID: r.ProjectID,
			Date:      s.decodeTime(KeyShootStatusReminders, r.ID, r.Date),
			Responded: r.Responded,
		})
	}
	return reminders
}

// SaveShootStatusReminders writes every open reminder
func (s *Store) SaveShootStatusReminders(reminders []model.ShootStatusReminder) error {
	records := make([]shootReminderRecord, 0, len(reminders))
	for _, r := range reminders {
		records = append(records, shootReminderRecord{
			ID:        r.ID,
			ProjectID: r.ProjectID,
			Date:      EncodeTime(r.Date),
			Responded: r.Responded,
		})
	}
	return Save(s, KeyShootStatusReminders, records)
}

// LoadUserProfile returns the profile, or one with an empty name when absent
func (s *Store) LoadUserProfile() model.UserProfile {
	profile, ok := Load[model.UserProfile](s, KeyUserProfile)
	if !ok {
		return model.UserProfile{Name: ""}
	}
	return profile
}

// SaveUserProfile replaces the stored profile
func (s *Store) SaveUserProfile(profile model.UserProfile) error {
	return Save(s, KeyUserProfile, profile)
}
