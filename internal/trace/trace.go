// Package trace provides run-scoped structured logging for the CLI.
// Every run gets a short unique ID stamped on each entry, so output
// from watch-mode re-runs can be told apart.
package trace

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Run is a logging scope for one invocation (or one watch-mode
// re-run).
type Run struct {
	ID  string
	Log *zap.SugaredLogger

	base *zap.Logger
}

// New builds a run with a fresh ID. With verbose set, debug entries
// are emitted and output is development-formatted.
func New(verbose bool) (*Run, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.DisableStacktrace = true

	base, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return newRun(base), nil
}

// Next returns a run sharing the underlying logger but with a fresh
// ID, for watch-mode re-runs.
func (r *Run) Next() *Run {
	return newRun(r.base)
}

func newRun(base *zap.Logger) *Run {
	id := uuid.NewString()[:8]
	return &Run{
		ID:   id,
		Log:  base.Sugar().With("run", id),
		base: base,
	}
}

// Sync flushes buffered log entries.
func (r *Run) Sync() {
	_ = r.Log.Sync()
}
