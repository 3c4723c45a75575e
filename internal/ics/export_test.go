package ics

import (
	"bytes"
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/existflow/shootcal/internal/model"
)

func TestExport(t *testing.T) {
	amount := 1200.0
	projects := map[string]model.Project{
		"2024-06-10": {ID: "p1", Name: "Wedding", Notes: "Lakeside", Status: model.StatusBlocked},
		"2024-06-11": {ID: "p1", Name: "Wedding", Color: "#FF1010", Status: model.StatusBlocked},
		"2024-06-15": {ID: "p2", Name: "Fashion", Status: model.StatusCanceled},
	}
	payments := []model.PaymentReminder{{
		ID:          "pay1",
		ProjectID:   "p1",
		ProjectName: "Wedding",
		DueDate:     time.Date(2024, 6, 30, 14, 30, 0, 0, time.UTC),
		Amount:      &amount,
		Status:      model.PaymentPending,
	}}
	stamp := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	t.Run("BlockedOnly", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Export(&buf, projects, payments, Options{Name: "Shoots", Stamp: stamp, Location: time.UTC}))

		parsed, err := ical.ParseCalendar(strings.NewReader(buf.String()))
		require.NoError(t, err)

		events := parsed.Events()
		require.Len(t, events, 2)
		assert.Equal(t, "p1-2024-06-10@shootcal", events[0].Id())
		assert.Equal(t, "Wedding", events[0].GetProperty(ical.ComponentPropertySummary).Value)
		assert.Equal(t, "20240610", events[0].GetProperty(ical.ComponentPropertyDtStart).Value)
		assert.Equal(t, "20240611", events[0].GetProperty(ical.ComponentPropertyDtEnd).Value)
		assert.Equal(t, "mediumturquoise", events[0].GetProperty(ical.ComponentPropertyColor).Value)
		assert.Equal(t, "red", events[1].GetProperty(ical.ComponentPropertyColor).Value)
		assert.NotContains(t, buf.String(), "COLOR:#")

		todos := parsed.Todos()
		require.Len(t, todos, 1)
		assert.Equal(t, "20240630T143000Z", todos[0].GetProperty(ical.ComponentPropertyDue).Value)
		assert.Contains(t, buf.String(), "Amount: 1200.00")
		assert.Contains(t, buf.String(), "X-WR-CALNAME:Shoots")
	})

	t.Run("IncludeCanceled", func(t *testing.T) {
		cal := Build(projects, nil, Options{IncludeCanceled: true, Stamp: stamp, Location: time.UTC})

		events := cal.Events()
		require.Len(t, events, 3)
		assert.Equal(t, string(ical.ObjectStatusCancelled), events[2].GetProperty(ical.ComponentPropertyStatus).Value)
	})
}

func TestColorName(t *testing.T) {
	tests := []struct {
		hex  string
		want string
	}{
		{"#000000", "black"},
		{"#FFFFFF", "white"},
		{"#ff0000", "red"},
		{"#4ECDC4", "mediumturquoise"},
		{"#1E90FE", "dodgerblue"},
		{"#FFD701", "gold"},
	}
	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			got, ok := colorName(tt.hex)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := colorName("not a color")
	assert.False(t, ok)
}
