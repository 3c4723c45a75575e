package model

import "time"

// ShootStatusReminder is the open question raised by canceling a blocked
// day: is the shoot going ahead after all? Answering deletes it.
type ShootStatusReminder struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"projectId"`
	Date      time.Time `json:"date"`
	Responded bool      `json:"responded"`
}

// DayKey returns the calendar day the reminder is about
func (r *ShootStatusReminder) DayKey() string {
	return DayKey(r.Date)
}
