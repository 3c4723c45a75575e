package calendar

import (
	"time"

	"github.com/existflow/shootcal/internal/model"
)

// DaysInMonth returns the number of days in month's calendar month
func DaysInMonth(month time.Time) int {
	return time.Date(month.Year(), month.Month()+1, 0, 0, 0, 0, 0, month.Location()).Day()
}

// ProjectMonth lays out one cell per day of month, ascending, attaching the
// project occupying each day. It has no side effects.
func ProjectMonth(month time.Time, projects map[string]model.Project) []model.CalendarDay {
	first := model.StartOfMonth(month)
	n := DaysInMonth(first)

	days := make([]model.CalendarDay, 0, n)
	for i := 0; i < n; i++ {
		date := first.AddDate(0, 0, i)
		day := model.CalendarDay{Date: date}
		if p, ok := projects[model.DayKey(date)]; ok {
			p := p
			day.Project = &p
		}
		days = append(days, day)
	}
	return days
}
