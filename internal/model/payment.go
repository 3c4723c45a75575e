package model

import "time"

// PaymentStatus of a payment reminder. Received reminders are deleted,
// so only pending ones are ever stored.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentReceived PaymentStatus = "received"
)

// Urgency classifies a pending payment relative to now
type Urgency int

const (
	UrgencyUpcoming Urgency = iota
	UrgencyDueSoon
	UrgencyOverdue
)

// String returns the display label for the urgency
func (u Urgency) String() string {
	switch u {
	case UrgencyOverdue:
		return "overdue"
	case UrgencyDueSoon:
		return "due-soon"
	default:
		return "upcoming"
	}
}

// dueSoonWindow is how far ahead a payment counts as due soon.
const dueSoonWindow = 7 * 24 * time.Hour

// PaymentReminder is a pending payment tied to a project
type PaymentReminder struct {
	ID          string        `json:"id"`
	ProjectID   string        `json:"projectId"`
	ProjectName string        `json:"projectName"`
	DueDate     time.Time     `json:"dueDate"`
	Amount      *float64      `json:"amount,omitempty"`
	Notes       string        `json:"notes,omitempty"`
	Status      PaymentStatus `json:"status"`
}

// IsOverdue returns true if now is past the due time
func (p *PaymentReminder) IsOverdue(now time.Time) bool {
	return now.After(p.DueDate)
}

// Urgency classifies the payment against now
func (p *PaymentReminder) Urgency(now time.Time) Urgency {
	if p.IsOverdue(now) {
		return UrgencyOverdue
	}
	if p.DueDate.Before(now.Add(dueSoonWindow)) {
		return UrgencyDueSoon
	}
	return UrgencyUpcoming
}
