package cli

import (
	"fmt"

	"github.com/existflow/shootcal/internal/calendar"
	"github.com/existflow/shootcal/internal/config"
	"github.com/existflow/shootcal/internal/db"
	"github.com/existflow/shootcal/internal/logger"
	"github.com/existflow/shootcal/internal/store"
)

// session bundles the open database and the calendar loaded from it
type session struct {
	cfg *config.Config
	db  *db.DB
	mgr *calendar.Manager
}

func currentConfig() *config.Config {
	if appConfig == nil {
		return config.DefaultConfig()
	}
	return appConfig
}

// openSession opens the configured database and loads the calendar
func openSession() (*session, error) {
	cfg := currentConfig()

	var dbConn *db.DB
	var err error
	if cfg.DBPath == "" {
		dbConn, err = db.OpenDefault()
	} else {
		dbConn, err = db.Open(cfg.DBPath)
	}
	if err != nil {
		logger.Error("Failed to open database", logger.F("path", cfg.DBPath), logger.F("error", err))
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	loc := cfg.Location()
	st := store.New(dbConn, store.WithLocation(loc))
	return &session{
		cfg: cfg,
		db:  dbConn,
		mgr: calendar.New(st, calendar.WithLocation(loc)),
	}, nil
}

// close reports a failed write-through, then closes the database
func (s *session) close() error {
	writeErr := s.mgr.Err()
	if err := s.db.Close(); err != nil {
		logger.Warn("Failed to close database", logger.F("error", err))
	}
	if writeErr != nil {
		return fmt.Errorf("failed to save calendar: %w", writeErr)
	}
	return nil
}

// withSession runs fn against an open session and surfaces write errors
func withSession(fn func(s *session) error) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	runErr := fn(s)
	closeErr := s.close()
	if runErr != nil {
		return runErr
	}
	return closeErr
}
