package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/existflow/shootcal/internal/calendar"
	"github.com/existflow/shootcal/internal/model"
	"github.com/existflow/shootcal/internal/store"
)

var shootDay = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T, now time.Time) (Model, *calendar.Manager) {
	t.Helper()
	clock := func() time.Time { return now }
	st := store.New(store.NewMemoryBackend(), store.WithLocation(time.UTC), store.WithClock(clock))
	mgr := calendar.New(st, calendar.WithClock(clock), calendar.WithLocation(time.UTC))

	m, err := NewModel(mgr, "", WithClock(clock))
	require.NoError(t, err)
	t.Cleanup(m.Close)
	return m, mgr
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestContrastText(t *testing.T) {
	assert.Equal(t, Black, ContrastText("#FFFFFF"))
	assert.Equal(t, Black, ContrastText("#4ECDC4"))
	assert.Equal(t, Black, ContrastText("#FFE66D"))
	assert.Equal(t, Text, ContrastText("#000000"))
	assert.Equal(t, Text, ContrastText("#1a1a2e"))
	assert.Equal(t, lipgloss.Color("#FFFFFF"), ContrastText("#0000FF"))

	for _, bad := range []string{"", "red", "#FFF", "#GGGGGG", "4ECDC4ff"} {
		assert.Equal(t, Black, ContrastText(bad), bad)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "Mehta w...", truncate("Mehta wedding day", 10))
	assert.Equal(t, "Ré", truncate("Réunion", 2))
}

func TestPromptSurfacesAtCheckTime(t *testing.T) {
	m, mgr := newTestModel(t, shootDay.Add(17*time.Hour+5*time.Minute))
	id := mgr.AddProject(shootDay, calendar.ProjectInput{Name: "Portraits"})
	mgr.CancelProject(shootDay)

	m.Init()

	var due model.ShootStatusReminder
	select {
	case due = <-m.dueCh:
	case <-time.After(time.Second):
		t.Fatal("reminder was not surfaced")
	}

	updated, _ := m.Update(reminderDueMsg{reminder: due})
	m = updated.(Model)
	require.Equal(t, ModePrompt, m.mode)
	require.NotNil(t, m.prompt)
	assert.Contains(t, m.renderPrompt(), "Portraits")

	updated, _ = m.Update(runes("q"))
	m = updated.(Model)
	assert.Equal(t, ModePrompt, m.mode, "only y or n close the prompt")

	updated, _ = m.Update(runes("y"))
	m = updated.(Model)
	assert.Equal(t, ModeNormal, m.mode)
	assert.Nil(t, m.prompt)
	assert.Empty(t, mgr.ShootStatusReminders())

	p, ok := mgr.ProjectOn(shootDay)
	require.True(t, ok)
	assert.Equal(t, id, p.ID)
	assert.True(t, p.IsBlocked())
}

func TestPromptUsesCalendarZone(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	// 17:05 in Tokyo, reported in UTC the way the host clock would
	now := time.Date(2024, 6, 10, 17, 5, 0, 0, tokyo).UTC()
	clock := func() time.Time { return now }
	st := store.New(store.NewMemoryBackend(), store.WithLocation(tokyo), store.WithClock(clock))
	mgr := calendar.New(st, calendar.WithClock(clock), calendar.WithLocation(tokyo))

	m, err := NewModel(mgr, "", WithClock(clock))
	require.NoError(t, err)
	t.Cleanup(m.Close)

	day := time.Date(2024, 6, 10, 0, 0, 0, 0, tokyo)
	mgr.AddProject(day, calendar.ProjectInput{Name: "Tokyo shoot"})
	mgr.CancelProject(day)

	m.Init()

	select {
	case r := <-m.dueCh:
		assert.Equal(t, "2024-06-10", r.DayKey())
	case <-time.After(time.Second):
		t.Fatal("reminder for the calendar's today was not surfaced")
	}

	assert.Equal(t, time.Date(2024, 6, 11, 17, 0, 0, 0, tokyo), m.sched.Next().In(tokyo))
	assert.Equal(t, "2024-06-10", model.DayKey(m.selected))
}

func TestPromptIgnoresAnsweredReminder(t *testing.T) {
	m, mgr := newTestModel(t, shootDay.Add(9*time.Hour))
	mgr.AddProject(shootDay, calendar.ProjectInput{Name: "Portraits"})
	mgr.CancelProject(shootDay)
	r := mgr.ShootStatusReminders()[0]
	mgr.ConfirmShootStatus(r, false)

	updated, _ := m.Update(reminderDueMsg{reminder: r})
	m = updated.(Model)
	assert.Equal(t, ModeNormal, m.mode)
	assert.Nil(t, m.prompt)
}

func TestCancelAndReblockKeys(t *testing.T) {
	m, mgr := newTestModel(t, shootDay.Add(9*time.Hour))
	mgr.AddProject(shootDay, calendar.ProjectInput{Name: "Brand shoot", Color: "#FF6B6B"})

	updated, _ := m.Update(runes("c"))
	m = updated.(Model)
	p, _ := mgr.ProjectOn(shootDay)
	assert.Equal(t, model.StatusCanceled, p.Status)
	assert.Len(t, mgr.ShootStatusReminders(), 1)
	assert.Contains(t, m.message, "Canceled Brand shoot")

	updated, _ = m.Update(runes("b"))
	m = updated.(Model)
	p, _ = mgr.ProjectOn(shootDay)
	assert.Equal(t, model.StatusBlocked, p.Status)
	assert.Empty(t, mgr.ShootStatusReminders())
}

func TestMonthNavigation(t *testing.T) {
	m, mgr := newTestModel(t, time.Date(2024, 1, 31, 9, 0, 0, 0, time.UTC))

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = updated.(Model)
	assert.Equal(t, time.February, mgr.Month().Month())
	assert.Equal(t, "2024-02-29", model.DayKey(m.selected), "selection clamps to the month's last day")

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = updated.(Model)
	assert.Equal(t, time.January, mgr.Month().Month())

	assert.Equal(t, "2024-01-29", model.DayKey(m.selected))

	for i := 0; i < 3; i++ {
		updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = updated.(Model)
	}
	assert.Equal(t, "2024-02-01", model.DayKey(m.selected))
	assert.Equal(t, time.February, mgr.Month().Month(), "selection crosses into the next month")
}

func TestSearchJumpsToFirstMatch(t *testing.T) {
	m, mgr := newTestModel(t, shootDay.Add(9*time.Hour))
	mgr.AddProject(time.Date(2024, 8, 3, 0, 0, 0, 0, time.UTC), calendar.ProjectInput{Name: "Kapoor engagement"})

	updated, _ := m.Update(runes("/"))
	m = updated.(Model)
	require.Equal(t, ModeSearch, m.mode)

	for _, r := range "kapoor" {
		updated, _ = m.Update(runes(string(r)))
		m = updated.(Model)
	}
	assert.Len(t, m.results, 1)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	assert.Equal(t, ModeNormal, m.mode)
	assert.Equal(t, "2024-08-03", model.DayKey(m.selected))
	assert.Equal(t, time.August, mgr.Month().Month())
}

func TestViewRendersGridAndPayments(t *testing.T) {
	m, mgr := newTestModel(t, shootDay.Add(9*time.Hour))
	amount := 300.0
	mgr.AddProject(shootDay, calendar.ProjectInput{
		Name: "Wedding",
		Payment: &calendar.PaymentRequest{
			Schedule: calendar.RelativeOffset{Value: 3, Unit: calendar.Days},
			Amount:   &amount,
		},
	})

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	out := m.View()
	assert.Contains(t, out, "June 2024")
	assert.Contains(t, out, "Payments (1)")
	assert.Contains(t, out, "300.00")
	assert.True(t, strings.Contains(out, "Wedding"))
}
