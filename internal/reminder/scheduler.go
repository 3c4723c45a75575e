// Package reminder decides when an open shoot-status question is put to
// the user: immediately if one is due today, and again at the daily check
// time (17:00 by default).
package reminder

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/existflow/shootcal/internal/logger"
	"github.com/existflow/shootcal/internal/model"
)

// DefaultSchedule is the daily check time as a cron spec.
const DefaultSchedule = "0 17 * * *"

// Due returns the first unresolved reminder about today's calendar day
func Due(now time.Time, reminders []model.ShootStatusReminder) (model.ShootStatusReminder, bool) {
	today := model.DayKey(now)
	for _, r := range reminders {
		if !r.Responded && model.DayKey(r.Date.In(now.Location())) == today {
			return r, true
		}
	}
	return model.ShootStatusReminder{}, false
}

// Timer is a pending one-shot callback
type Timer interface {
	Stop() bool
}

// AfterFunc arms a one-shot timer
type AfterFunc func(d time.Duration, f func()) Timer

func stdAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Scheduler keeps at most one pending check timer. Every Rearm cancels the
// pending timer before arming a new one.
type Scheduler struct {
	mu        sync.Mutex
	schedule  cron.Schedule
	now       func() time.Time
	afterFunc AfterFunc
	onDue     func(model.ShootStatusReminder)
	timer     Timer
	next      time.Time
}

// Option configures a Scheduler
type Option func(*Scheduler)

// WithClock sets the time source
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) { s.now = now }
}

// WithAfterFunc replaces time.AfterFunc
func WithAfterFunc(fn AfterFunc) Option {
	return func(s *Scheduler) { s.afterFunc = fn }
}

// New creates a Scheduler that calls onDue when a reminder should be
// surfaced. spec is a standard five-field cron expression; empty means
// DefaultSchedule.
func New(spec string, onDue func(model.ShootStatusReminder), opts ...Option) (*Scheduler, error) {
	if spec == "" {
		spec = DefaultSchedule
	}
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid reminder schedule %q: %w", spec, err)
	}

	s := &Scheduler{
		schedule:  schedule,
		now:       time.Now,
		afterFunc: stdAfterFunc,
		onDue:     onDue,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// NextCheck returns the next check time strictly after now
func (s *Scheduler) NextCheck(now time.Time) time.Time {
	return s.schedule.Next(now)
}

// Next returns when the pending timer fires, or the zero time if none
func (s *Scheduler) Next() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next
}

// Rearm replaces the pending timer. It checks reminders right away, then
// arms one timer for the next check time that repeats the same check.
// Nothing is surfaced while promptOpen is true.
func (s *Scheduler) Rearm(reminders []model.ShootStatusReminder, promptOpen bool) {
	snapshot := make([]model.ShootStatusReminder, len(reminders))
	copy(snapshot, reminders)

	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	now := s.now()
	next := s.NextCheck(now)
	s.next = next
	s.timer = s.afterFunc(next.Sub(now), func() {
		s.check(snapshot, promptOpen)
	})
	s.mu.Unlock()

	logger.Debug("Reminder check armed", logger.F("next", next), logger.F("open", len(snapshot)))
	s.check(snapshot, promptOpen)
}

// Stop cancels the pending timer
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.next = time.Time{}
}

func (s *Scheduler) check(reminders []model.ShootStatusReminder, promptOpen bool) {
	if promptOpen {
		return
	}
	if r, ok := Due(s.now(), reminders); ok {
		logger.Info("Shoot status reminder due", logger.F("reminder_id", r.ID), logger.F("project_id", r.ProjectID))
		if s.onDue != nil {
			s.onDue(r)
		}
	}
}
