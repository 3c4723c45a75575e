package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/existflow/shootcal/internal/model"
)

// maxRecurringDays bounds how many days one recurrence rule may block.
const maxRecurringDays = 366

// ExpandRule expands an RRULE (e.g. "FREQ=WEEKLY;COUNT=4") starting on
// start's day into calendar days. Rules without COUNT or UNTIL stop after
// one year.
func ExpandRule(start time.Time, rule string) ([]time.Time, error) {
	rule = strings.TrimPrefix(strings.TrimSpace(rule), "RRULE:")
	if rule == "" {
		return nil, errors.New("empty recurrence rule")
	}

	r, err := rrule.StrToRRule(rule)
	if err != nil {
		return nil, fmt.Errorf("invalid recurrence rule %q: %w", rule, err)
	}
	first := model.StartOfDay(start)
	r.DTStart(first)

	upper := r.GetUntil()
	if upper.IsZero() || upper.After(first.AddDate(1, 0, 0)) {
		upper = first.AddDate(1, 0, 0)
	}

	occurrences := r.Between(first, upper, true)
	if len(occurrences) > maxRecurringDays {
		occurrences = occurrences[:maxRecurringDays]
	}

	seen := make(map[string]bool, len(occurrences))
	dates := make([]time.Time, 0, len(occurrences))
	for _, o := range occurrences {
		d := model.StartOfDay(o.In(start.Location()))
		key := model.DayKey(d)
		if seen[key] {
			continue
		}
		seen[key] = true
		dates = append(dates, d)
	}
	return dates, nil
}
