package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentUrgency(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		due  time.Time
		want Urgency
	}{
		{"past", now.Add(-time.Minute), UrgencyOverdue},
		{"tomorrow", now.AddDate(0, 0, 1), UrgencyDueSoon},
		{"six days", now.AddDate(0, 0, 6), UrgencyDueSoon},
		{"two weeks", now.AddDate(0, 0, 14), UrgencyUpcoming},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PaymentReminder{DueDate: tt.due, Status: PaymentPending}
			assert.Equal(t, tt.want, p.Urgency(now))
		})
	}

	p := PaymentReminder{DueDate: now}
	assert.False(t, p.IsOverdue(now), "due exactly now is not overdue yet")
	assert.Equal(t, "due-soon", UrgencyDueSoon.String())
}

func TestProjectDisplay(t *testing.T) {
	p := Project{ID: "p1", Name: "Wedding", Status: StatusBlocked}
	assert.True(t, p.IsBlocked())
	assert.Equal(t, DefaultColor, p.DisplayColor())

	p.Color = "#FF6B6B"
	p.Status = StatusCanceled
	assert.False(t, p.IsBlocked())
	assert.Equal(t, "#FF6B6B", p.DisplayColor())
}

func TestDayKeys(t *testing.T) {
	la, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)

	instant := time.Date(2024, 3, 10, 3, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-10", DayKey(instant))
	assert.Equal(t, "2024-03-09", DayKey(instant.In(la)))

	d, err := ParseDayKey("2024-03-10", la)
	require.NoError(t, err)
	assert.Equal(t, la, d.Location())
	assert.Equal(t, d, StartOfDay(d.Add(15*time.Hour)))
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, la), StartOfMonth(d))
	assert.True(t, SameMonth(d, StartOfMonth(d)))
	assert.False(t, SameMonth(d, d.AddDate(1, 0, 0)))

	_, err = ParseDayKey("10/03/2024", la)
	assert.Error(t, err)
}

func TestShootReminderDayKey(t *testing.T) {
	r := ShootStatusReminder{ID: "r1", Date: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, "2024-06-10", r.DayKey())
}
