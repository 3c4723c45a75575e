package calendar

import (
	"strings"
	"time"
)

// OffsetUnit is the unit of a relative payment offset
type OffsetUnit string

const (
	Days   OffsetUnit = "days"
	Weeks  OffsetUnit = "weeks"
	Months OffsetUnit = "months"
)

// PaymentSchedule says when a payment falls due. It is either a
// RelativeOffset or an AbsoluteDueDateTime, resolved once at block time.
type PaymentSchedule interface {
	// dueDate resolves the schedule against the first blocked day.
	// ok is false when the schedule names no due date.
	dueDate(anchor time.Time) (due time.Time, ok bool)
}

// RelativeOffset places the due date Value units after the first blocked day
type RelativeOffset struct {
	Value int
	Unit  OffsetUnit
}

func (r RelativeOffset) dueDate(anchor time.Time) (time.Time, bool) {
	switch r.Unit {
	case Weeks:
		return anchor.AddDate(0, 0, 7*r.Value), true
	case Months:
		return anchor.AddDate(0, r.Value, 0), true
	case Days:
		return anchor.AddDate(0, 0, r.Value), true
	default:
		return anchor, true
	}
}

// AbsoluteDueDateTime is a calendar day plus a time of day such as "2:30 PM"
type AbsoluteDueDateTime struct {
	Date time.Time
	Time string
}

func (a AbsoluteDueDateTime) dueDate(time.Time) (time.Time, bool) {
	if a.Date.IsZero() {
		return time.Time{}, false
	}
	return CombineDateAndTime(a.Date, a.Time), true
}

// PaymentRequest asks for a payment reminder when blocking a project
type PaymentRequest struct {
	Schedule PaymentSchedule
	Amount   *float64
	Notes    string
}

var timeOfDayLayouts = []string{"3:04 PM", "3:04PM", "15:04"}

// ParseTimeOfDay parses "h:mm AM/PM" (or "HH:mm") into hour and minute
func ParseTimeOfDay(s string) (hour, minute int, ok bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, layout := range timeOfDayLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Hour(), t.Minute(), true
		}
	}
	return 0, 0, false
}

// CombineDateAndTime returns date's calendar day at the parsed time of
// day, defaulting to noon when the time cannot be parsed.
func CombineDateAndTime(date time.Time, timeOfDay string) time.Time {
	hour, minute, ok := ParseTimeOfDay(timeOfDay)
	if !ok {
		hour, minute = 12, 0
	}
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())
}
