package cli

import (
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/existflow/shootcal/internal/calendar"
)

var now = time.Date(2024, 6, 10, 21, 30, 0, 0, time.UTC)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"today", "2024-06-10"},
		{"Tomorrow", "2024-06-11"},
		{"yesterday", "2024-06-09"},
		{"2024-12-25", "2024-12-25"},
		{" 2025-01-02 ", "2025-01-02"},
		{"Jul 4", "2024-07-04"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseDate(tt.in, now, time.UTC)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Format("2006-01-02"))
			assert.Zero(t, got.Hour())
		})
	}

	_, err := parseDate("someday", now, time.UTC)
	assert.Error(t, err)
}

func TestParseDateUsesLocation(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	// 21:30 UTC is already the next morning in Tokyo
	got, err := parseDate("today", now, tokyo)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-11", got.Format("2006-01-02"))
	assert.Equal(t, tokyo, got.Location())
}

func TestParseMonth(t *testing.T) {
	got, err := parseMonth("", now, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), got)

	got, err = parseMonth("next", now, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.July, got.Month())

	got, err = parseMonth("prev", now, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.May, got.Month())

	got, err = parseMonth("2023-02", now, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC), got)

	_, err = parseMonth("February", now, time.UTC)
	assert.Error(t, err)
}

func TestParseOffsetUnit(t *testing.T) {
	for in, want := range map[string]calendar.OffsetUnit{
		"days": calendar.Days, "d": calendar.Days,
		"Weeks": calendar.Weeks, "w": calendar.Weeks,
		"month": calendar.Months, "m": calendar.Months,
	} {
		got, err := parseOffsetUnit(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := parseOffsetUnit("years")
	assert.Error(t, err)
}

func TestParseAnswer(t *testing.T) {
	for _, in := range []string{"y", "YES", "shoot"} {
		got, err := parseAnswer(in)
		require.NoError(t, err)
		assert.True(t, got, in)
	}
	for _, in := range []string{"n", "No", "none"} {
		got, err := parseAnswer(in)
		require.NoError(t, err)
		assert.False(t, got, in)
	}
	_, err := parseAnswer("maybe")
	assert.Error(t, err)
}

func TestParseAmount(t *testing.T) {
	got, err := parseAmount("$1,250.50")
	require.NoError(t, err)
	assert.Equal(t, 1250.5, got)

	got, err = parseAmount("₹300")
	require.NoError(t, err)
	assert.Equal(t, 300.0, got)

	_, err = parseAmount("-5")
	assert.Error(t, err)
	_, err = parseAmount("lots")
	assert.Error(t, err)
}

func TestMatchID(t *testing.T) {
	ids := []string{"3f2a9c10-aaaa", "3f2b0000-bbbb", "9b1c0000-cccc"}

	got, err := matchID("9b", ids)
	require.NoError(t, err)
	assert.Equal(t, "9b1c0000-cccc", got)

	got, err = matchID("3f2b0000-bbbb", ids)
	require.NoError(t, err)
	assert.Equal(t, "3f2b0000-bbbb", got)

	_, err = matchID("3f2", ids)
	assert.ErrorContains(t, err, "ambiguous")

	_, err = matchID("zz", ids)
	assert.ErrorContains(t, err, "no match")

	_, err = matchID(" ", ids)
	assert.Error(t, err)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Wedding", truncate("Wedding", 28))
	assert.Equal(t, "Mehta w...", truncate("Mehta wedding day", 10))

	got := truncate("शादी की शूटिंग मुंबई", 8)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, 8, utf8.RuneCountInString(got))
}

func TestShortIDAndAmount(t *testing.T) {
	assert.Equal(t, "3f2a9c10", shortID("3f2a9c10-aaaa"))
	assert.Equal(t, "abc", shortID("abc"))

	amount := 12.5
	assert.Equal(t, "12.50", formatAmount(&amount))
	assert.Equal(t, "-", formatAmount(nil))
}
