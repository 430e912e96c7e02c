// Package cli implements the lvmorph command-line interface.
//
// # Commands
//
//   - iso, subiso, mono: enumerate isomorphisms, induced subgraph
//     isomorphisms or monomorphisms from graph "domain" into "codomain".
//   - common: enumerate common subgraphs of graphs "left" and "right".
//   - gen: print a generated graph (or an isomorphic pair) as TOML.
//
// Graph files are TOML documents read by internal/graphfile; "-" reads
// standard input, so gen output can be piped straight into a search.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// switches on the engine's per-search summaries. Loggers are passed through
// context.Context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing to w at the given level, with
// "HH:MM:SS.ms" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs completion of an operation with its elapsed time.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time, e.g. "found 6 mappings (3ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached to ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
