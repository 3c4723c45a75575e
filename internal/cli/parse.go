package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/existflow/shootcal/internal/calendar"
	"github.com/existflow/shootcal/internal/model"
)

// parseDate accepts a day key, "Jan 2" (current year), or one of
// today, tomorrow and yesterday.
func parseDate(s string, now time.Time, loc *time.Location) (time.Time, error) {
	now = now.In(loc)
	today := model.StartOfDay(now)

	switch strings.ToLower(strings.TrimSpace(s)) {
	case "today":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	}

	s = strings.TrimSpace(s)
	if t, err := model.ParseDayKey(s, loc); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("Jan 2", s, loc); err == nil {
		return time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD, 'Jan 2', today or tomorrow)", s)
}

// parseDates parses every argument as a date
func parseDates(args []string, now time.Time, loc *time.Location) ([]time.Time, error) {
	dates := make([]time.Time, 0, len(args))
	for _, arg := range args {
		d, err := parseDate(arg, now, loc)
		if err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, nil
}

// parseMonth accepts YYYY-MM, next, prev or an empty string for this month
func parseMonth(s string, now time.Time, loc *time.Location) (time.Time, error) {
	current := model.StartOfMonth(now.In(loc))
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "this":
		return current, nil
	case "next":
		return current.AddDate(0, 1, 0), nil
	case "prev", "last":
		return current.AddDate(0, -1, 0), nil
	}

	t, err := time.ParseInLocation("2006-01", strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q (use YYYY-MM, next or prev)", s)
	}
	return t, nil
}

// parseOffsetUnit maps a unit flag to an offset unit
func parseOffsetUnit(s string) (calendar.OffsetUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "d", "day", "days":
		return calendar.Days, nil
	case "w", "week", "weeks":
		return calendar.Weeks, nil
	case "m", "month", "months":
		return calendar.Months, nil
	}
	return "", fmt.Errorf("invalid unit %q (use days, weeks or months)", s)
}

// parseAnswer reads a yes/no answer
func parseAnswer(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "shoot", "true":
		return true, nil
	case "n", "no", "none", "false":
		return false, nil
	}
	return false, fmt.Errorf("invalid answer %q (use yes or no)", s)
}

// parseAmount parses a payment amount, allowing a leading currency sign
func parseAmount(s string) (float64, error) {
	s = strings.TrimLeft(strings.TrimSpace(s), "$€£₹")
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	return v, nil
}

// matchID resolves a full id or a unique prefix of one
func matchID(prefix string, ids []string) (string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return "", fmt.Errorf("empty id")
	}

	var found []string
	for _, id := range ids {
		if id == prefix {
			return id, nil
		}
		if strings.HasPrefix(id, prefix) {
			found = append(found, id)
		}
	}
	switch len(found) {
	case 0:
		return "", fmt.Errorf("no match for id %q", prefix)
	case 1:
		return found[0], nil
	default:
		return "", fmt.Errorf("id %q is ambiguous (%d matches)", prefix, len(found))
	}
}

// truncate shortens s to max runes with an ellipsis
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func formatAmount(amount *float64) string {
	if amount == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *amount)
}
