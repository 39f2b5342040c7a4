package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pong/internal/config"
	"github.com/vovakirdan/pong/internal/match"
	"github.com/vovakirdan/pong/internal/storage"
)

// newLogger creates the process logger. Logs go to --log-file when set,
// otherwise to fallback.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pong",
		Level:           level,
	})
	return logger, closeFn, nil
}

// session holds what every game frontend needs.
type session struct {
	cfg      config.PongConfig
	logger   *log.Logger
	tracker  *match.Tracker
	store    *storage.Store
	closeLog func()
}

// openSession loads the config, sets up logging and opens match history.
// A history database that cannot be opened is a warning: the game runs
// without recording matches.
func openSession(logFallback io.Writer) (*session, error) {
	logger, closeLog, err := newLogger(logFallback)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		closeLog()
		return nil, err
	}
	logger.Debug("config loaded", "screen", fmt.Sprintf("%gx%g", cfg.Screen.Width, cfg.Screen.Height), "tick_rate", cfg.Gameplay.TickRate)

	s := &session{cfg: cfg, logger: logger, closeLog: closeLog}

	if !flagNoHistory {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("match history disabled", "err", err)
			fmt.Fprintf(os.Stderr, "Warning: could not open match history: %v\n", err)
		} else {
			s.store = store
		}
	}

	if s.store != nil {
		s.tracker = match.NewTracker(s.store, logger)
	} else {
		s.tracker = match.NewTracker(nil, logger)
	}
	return s, nil
}

// Close releases the history database and the log file.
func (s *session) Close() {
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Warn("cannot close match history", "err", err)
		}
	}
	s.closeLog()
}
