package generate

import (
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/robbyt/go-loglater"
)

// Run records a single pipeline invocation and keeps every progress log it emitted so that a
// silenced run can replay them after a failure.
type Run struct {
	// ID is the unique identifier for this run
	ID uuid.UUID

	// ConfigPath is the absolute path of the config module
	ConfigPath string
	StartedAt  time.Time

	logger       *slog.Logger
	logCollector *loglater.LogCollector
}

func newRun(configPath string, handler slog.Handler) *Run {
	id := uuid.Must(uuid.NewV6())
	logCollector := loglater.NewLogCollector(handler)
	logger := slog.New(logCollector).With("run", id, "config", configPath)

	return &Run{
		ID:           id,
		ConfigPath:   configPath,
		StartedAt:    time.Now(),
		logger:       logger,
		logCollector: logCollector,
	}
}

// Logger returns the run-scoped logger.
func (r *Run) Logger() *slog.Logger {
	return r.logger
}

// LogCount returns the number of records collected so far.
func (r *Run) LogCount() int {
	return len(r.logCollector.GetLogs())
}

// PlaybackLogs replays the collected records to handler.
func (r *Run) PlaybackLogs(handler slog.Handler) error {
	return r.logCollector.PlayLogs(handler)
}

// Duration returns the time elapsed since the run started.
func (r *Run) Duration() time.Duration {
	return time.Since(r.StartedAt)
}
