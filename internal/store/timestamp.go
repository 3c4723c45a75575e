package store

import (
	"time"

	"github.com/existflow/shootcal/internal/logger"
	"github.com/existflow/shootcal/internal/model"
)

// isoLayout matches the ISO-8601 form with millisecond precision.
const isoLayout = "2006-01-02T15:04:05.000Z07:00"

// EncodeTime renders t as an ISO-8601 UTC string
func EncodeTime(t time.Time) string {
	return t.UTC().Format(isoLayout)
}

// DecodeTime parses an ISO-8601 string and converts it into loc. A bare
// day key is read as midnight in loc so it keeps its calendar day.
func DecodeTime(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		day, dayErr := model.ParseDayKey(s, loc)
		if dayErr != nil {
			return time.Time{}, err
		}
		return day, nil
	}
	return t.In(loc), nil
}

// decodeTime re-hydrates a stored timestamp, substituting the current
// time when the value cannot be parsed.
func (s *Store) decodeTime(key, id, raw string) time.Time {
	t, err := DecodeTime(raw, s.loc)
	if err != nil {
		logger.Warn("Unreadable timestamp, using current time",
			logger.F("key", key),
			logger.F("id", id),
			logger.F("value", raw),
		)
		return s.now().In(s.loc)
	}
	return t
}
