// Package ics renders the calendar as an iCalendar feed: one all-day event
// per occupied day and one to-do per pending payment.
package ics

import (
	"fmt"
	"io"
	"sort"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/existflow/shootcal/internal/logger"
	"github.com/existflow/shootcal/internal/model"
)

// Options controls what is exported
type Options struct {
	// Name is the calendar display name (X-WR-CALNAME).
	Name string
	// IncludeCanceled adds canceled days as CANCELLED events.
	IncludeCanceled bool
	// Stamp is written as DTSTAMP on every component.
	Stamp time.Time
	// Location interprets day keys. Defaults to time.Local.
	Location *time.Location
}

// Build assembles the iCalendar document
func Build(projects map[string]model.Project, payments []model.PaymentReminder, opts Options) *ical.Calendar {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Stamp.IsZero() {
		opts.Stamp = time.Now()
	}

	cal := ical.NewCalendarFor("shootcal")
	cal.SetMethod(ical.MethodPublish)
	if opts.Name != "" {
		cal.SetName(opts.Name)
	}

	keys := make([]string, 0, len(projects))
	for key := range projects {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		p := projects[key]
		if !p.IsBlocked() && !(opts.IncludeCanceled && p.Status == model.StatusCanceled) {
			continue
		}
		date, err := model.ParseDayKey(key, opts.Location)
		if err != nil {
			logger.Warn("Skipping unreadable day key", logger.F("key", key))
			continue
		}

		event := cal.AddEvent(fmt.Sprintf("%s-%s@shootcal", p.ID, key))
		event.SetDtStampTime(opts.Stamp)
		event.SetAllDayStartAt(date)
		event.SetAllDayEndAt(date.AddDate(0, 0, 1))
		event.SetSummary(p.Name)
		if p.Notes != "" {
			event.SetDescription(p.Notes)
		}
		if name, ok := colorName(p.DisplayColor()); ok {
			event.SetColor(name)
		}
		if p.IsBlocked() {
			event.SetStatus(ical.ObjectStatusConfirmed)
		} else {
			event.SetStatus(ical.ObjectStatusCancelled)
		}
	}

	for _, pay := range payments {
		todo := cal.AddTodo(pay.ID + "@shootcal")
		todo.SetDtStampTime(opts.Stamp)
		todo.SetDueAt(pay.DueDate)
		todo.SetSummary("Payment: " + pay.ProjectName)
		description := pay.Notes
		if pay.Amount != nil {
			if description != "" {
				description += "\n"
			}
			description += fmt.Sprintf("Amount: %.2f", *pay.Amount)
		}
		if description != "" {
			todo.SetDescription(description)
		}
		todo.SetStatus(ical.ObjectStatusNeedsAction)
	}

	return cal
}

// Export writes the iCalendar document to w
func Export(w io.Writer, projects map[string]model.Project, payments []model.PaymentReminder, opts Options) error {
	cal := Build(projects, payments, opts)
	if err := cal.SerializeTo(w); err != nil {
		return fmt.Errorf("failed to write calendar: %w", err)
	}
	logger.Info("Calendar exported", logger.F("components", len(cal.Components)))
	return nil
}
