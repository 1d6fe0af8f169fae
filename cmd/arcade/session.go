package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/feel-arcade/internal/config"
	"github.com/vovakirdan/feel-arcade/internal/core"
	"github.com/vovakirdan/feel-arcade/internal/registry"
	"github.com/vovakirdan/feel-arcade/internal/sim"
)

// session holds what every command resolves from flags before it runs:
// the logger, the configuration and the runtime settings.
type session struct {
	cfg     config.Config
	cfgPath string // empty when running on the embedded default
	runtime core.RuntimeConfig
	log     *log.Logger
	watcher *config.Watcher
	logFile *os.File
}

// openSession resolves flags into a session. fileLogs sends logs to a file
// by default; the terminal front end needs that to keep the alt screen clean.
func openSession(fileLogs bool) (*session, error) {
	s := &session{}
	logger, err := s.newLogger(fileLogs)
	if err != nil {
		return nil, err
	}
	s.log = logger.With("run", uuid.NewString())

	cfg, path, err := config.Load(flagConfig)
	if err != nil {
		s.Close()
		return nil, err
	}
	if flagFeel != "" {
		cfg.Feel = flagFeel
	}
	if flagBoundary != "" {
		cfg.Boundary = flagBoundary
	}
	if flagControl != "" {
		cfg.Control = flagControl
	}
	if err := cfg.Validate(); err != nil {
		s.Close()
		return nil, err
	}
	s.cfg, s.cfgPath = cfg, path

	s.runtime = cfg.RuntimeFor(core.DefaultConfig())
	if flagFPS > 0 {
		s.runtime.TickRate = flagFPS
	}
	if flagSeed != 0 {
		s.runtime.Seed = flagSeed
	}
	if s.runtime.Seed == 0 {
		s.runtime.Seed = time.Now().UnixNano()
	}

	source := path
	if source == "" {
		source = "embedded"
	}
	s.log.Debug("config loaded", "source", source, "seed", s.runtime.Seed, "fps", s.runtime.TickRate)

	if flagWatch {
		if path == "" {
			s.log.Warn("--watch ignored: no config file on disk")
		} else {
			w, err := config.Watch(path)
			if err != nil {
				s.Close()
				return nil, err
			}
			s.watcher = w
			s.log.Info("watching config", "path", w.Path())
		}
	}
	return s, nil
}

func (s *session) newLogger(fileLogs bool) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}

	var w io.Writer = os.Stderr
	path := flagLogFile
	if path == "" && fileLogs {
		path = defaultLogPath()
		if path == "" {
			w = io.Discard
		}
	}
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("log file: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("log file: %w", err)
		}
		s.logFile = f
		w = f
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
		Level:           level,
	}), nil
}

// defaultLogPath returns ~/.arcade/arcade.log, or empty if home is unavailable.
func defaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "arcade.log")
}

// newSimulation creates scenario id under the session's configuration. The
// resolved seed wins over the one in the config file.
func (s *session) newSimulation(id string) (*sim.Simulation, registry.Scenario, error) {
	return registry.NewSimulation(id, s.runtime.Seed, func(opts *sim.Options) error {
		if err := s.cfg.ApplyOptions(opts); err != nil {
			return err
		}
		opts.Seed = s.runtime.Seed
		return nil
	})
}

// Close stops the watcher and closes the log file.
func (s *session) Close() {
	if s.watcher != nil {
		if err := s.watcher.Close(); err != nil && s.log != nil {
			s.log.Warn("closing watcher", "err", err)
		}
	}
	if s.logFile != nil {
		_ = s.logFile.Close()
	}
}
