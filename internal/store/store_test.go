package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/existflow/shootcal/internal/db"
	"github.com/existflow/shootcal/internal/model"
)

var fixedNow = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) (*Store, *MemoryBackend) {
	t.Helper()
	backend := NewMemoryBackend()
	return New(backend, WithLocation(time.UTC), WithClock(func() time.Time { return fixedNow })), backend
}

func TestPaymentRoundTrip(t *testing.T) {
	s, backend := newTestStore(t)
	amount := 450.0
	due := time.Date(2024, 6, 24, 14, 30, 15, 987654321, time.UTC)

	require.NoError(t, s.SavePayments([]model.PaymentReminder{{
		ID:          "pay-1",
		ProjectID:   "p1",
		ProjectName: "Wedding",
		DueDate:     due,
		Amount:      &amount,
		Notes:       "invoice #12",
		Status:      model.PaymentPending,
	}}))

	assert.Contains(t, backend.Raw(KeyPayments), `"dueDate":"2024-06-24T14:30:15.987Z"`)

	loaded := s.LoadPayments()
	require.Len(t, loaded, 1)
	got := loaded[0]
	assert.Equal(t, "pay-1", got.ID)
	assert.Equal(t, "Wedding", got.ProjectName)
	assert.Equal(t, model.PaymentPending, got.Status)
	assert.Equal(t, "invoice #12", got.Notes)
	require.NotNil(t, got.Amount)
	assert.Equal(t, amount, *got.Amount)
	assert.True(t, due.Truncate(time.Second).Equal(got.DueDate.Truncate(time.Second)))
}

func TestShootReminderRoundTrip(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	s := New(NewMemoryBackend(), WithLocation(berlin))
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, berlin)

	require.NoError(t, s.SaveShootStatusReminders([]model.ShootStatusReminder{
		{ID: "r1", ProjectID: "p1", Date: day},
	}))

	loaded := s.LoadShootStatusReminders()
	require.Len(t, loaded, 1)
	assert.Equal(t, "2024-06-10", loaded[0].DayKey())
	assert.False(t, loaded[0].Responded)
}

func TestUnreadableTimestampFallsBackToNow(t *testing.T) {
	s, backend := newTestStore(t)
	require.NoError(t, backend.Set(KeyPayments,
		`[{"id":"a","projectId":"p","projectName":"A","dueDate":"not a date","status":"pending"},`+
			`{"id":"b","projectId":"p","projectName":"B","dueDate":"2024-07-01T12:00:00.000Z","status":"pending"}]`))

	loaded := s.LoadPayments()
	require.Len(t, loaded, 2)
	assert.True(t, loaded[0].DueDate.Equal(fixedNow))
	assert.True(t, loaded[1].DueDate.Equal(time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)))
}

func TestBareDayKeyTimestamp(t *testing.T) {
	for _, zone := range []string{"UTC", "America/Los_Angeles", "Asia/Tokyo"} {
		t.Run(zone, func(t *testing.T) {
			loc, err := time.LoadLocation(zone)
			require.NoError(t, err)

			backend := NewMemoryBackend()
			s := New(backend, WithLocation(loc))
			require.NoError(t, backend.Set(KeyShootStatusReminders,
				`[{"id":"r","projectId":"p","date":"2024-06-10","responded":false}]`))

			loaded := s.LoadShootStatusReminders()
			require.Len(t, loaded, 1)
			assert.Equal(t, "2024-06-10", loaded[0].DayKey())
			assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, loc), loaded[0].Date)
		})
	}
}

func TestMalformedRecordsLoadEmpty(t *testing.T) {
	s, backend := newTestStore(t)
	for _, key := range Keys {
		require.NoError(t, backend.Set(key, `{broken`))
	}

	assert.Empty(t, s.LoadProjects())
	assert.Empty(t, s.LoadPayments())
	assert.Empty(t, s.LoadShootStatusReminders())
	assert.Equal(t, model.UserProfile{}, s.LoadUserProfile())
}

func TestAbsentRecords(t *testing.T) {
	s, _ := newTestStore(t)

	projects := s.LoadProjects()
	assert.NotNil(t, projects)
	assert.Empty(t, projects)
	assert.Empty(t, s.LoadPayments())
	assert.Empty(t, s.LoadShootStatusReminders())
	assert.Equal(t, "", s.LoadUserProfile().Name)
}

func TestProjectsAndProfile(t *testing.T) {
	s, _ := newTestStore(t)

	projects := map[string]model.Project{
		"2024-06-10": {ID: "p1", Name: "Shoot A", Color: "#ff0000", Status: model.StatusBlocked},
		"2024-06-11": {ID: "p1", Name: "Shoot A", Color: "#ff0000", Status: model.StatusCanceled},
	}
	require.NoError(t, s.SaveProjects(projects))
	assert.Equal(t, projects, s.LoadProjects())

	profile := model.UserProfile{Name: "Haanvika", Email: "h@example.com"}
	require.NoError(t, s.SaveUserProfile(profile))
	assert.Equal(t, profile, s.LoadUserProfile())
}

func TestSQLiteBackend(t *testing.T) {
	conn, err := db.Open(filepath.Join(t.TempDir(), "calendar.db"))
	require.NoError(t, err)
	defer conn.Close()

	s := New(conn, WithLocation(time.UTC))
	require.NoError(t, s.SaveUserProfile(model.UserProfile{Name: "Haan"}))
	assert.Equal(t, "Haan", s.LoadUserProfile().Name)
}

func TestDecodeTime(t *testing.T) {
	got, err := DecodeTime("2024-06-10T14:30:00.000Z", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 10, 14, 30, 0, 0, time.UTC), got)

	_, err = DecodeTime("June 10", time.UTC)
	assert.Error(t, err)
}
