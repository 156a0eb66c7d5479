// Package observability provides hooks for timing and logging a conversion.
//
// A conversion has two stages, parse and emit. The converter reports the
// start and completion of each stage to a [ConvertHooks] value supplied by
// the caller, so instrumentation never needs process-wide state.
//
// # Usage
//
//	hooks := observability.LogHooks{Logger: logger}
//	err := convert.Run(ctx, convert.Options{Hooks: hooks, ...})
//
// [NoopHooks] is used when no hooks are supplied.
package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// =============================================================================
// Conversion Hooks
// =============================================================================

// ConvertHooks receives events from a conversion run.
type ConvertHooks interface {
	// Parse events
	OnParseStart(ctx context.Context, input string)
	OnParseComplete(ctx context.Context, input string, nodes, edges int, duration time.Duration, err error)

	// Emit events
	OnEmitStart(ctx context.Context, output string, nodes, edges int)
	OnEmitComplete(ctx context.Context, output string, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementation
// =============================================================================

// NoopHooks is a no-op implementation of ConvertHooks.
type NoopHooks struct{}

func (NoopHooks) OnParseStart(context.Context, string)                                    {}
func (NoopHooks) OnParseComplete(context.Context, string, int, int, time.Duration, error) {}
func (NoopHooks) OnEmitStart(context.Context, string, int, int)                           {}
func (NoopHooks) OnEmitComplete(context.Context, string, time.Duration, error)            {}

// =============================================================================
// Logging Implementation
// =============================================================================

// LogHooks reports stage completion through a logger. Successful stages are
// logged at info level with their duration. Failures are logged at debug
// level only, since the caller reports the returned error itself.
type LogHooks struct {
	Logger *log.Logger
}

func (h LogHooks) OnParseStart(_ context.Context, input string) {
	h.Logger.Debug("parsing", "input", input)
}

func (h LogHooks) OnParseComplete(_ context.Context, input string, nodes, edges int, d time.Duration, err error) {
	if err != nil {
		h.Logger.Debug("parse failed", "input", input, "err", err)
		return
	}
	h.Logger.Infof("Parsed %d nodes, %d edges (%s)", nodes, edges, d.Round(time.Millisecond))
}

func (h LogHooks) OnEmitStart(_ context.Context, output string, nodes, edges int) {
	h.Logger.Debug("emitting", "output", output, "nodes", nodes, "edges", edges)
}

func (h LogHooks) OnEmitComplete(_ context.Context, output string, d time.Duration, err error) {
	if err != nil {
		h.Logger.Debug("emit failed", "output", output, "err", err)
		return
	}
	h.Logger.Infof("Wrote %s (%s)", output, d.Round(time.Millisecond))
}

// OrNoop returns h, or NoopHooks when h is nil.
func OrNoop(h ConvertHooks) ConvertHooks {
	if h == nil {
		return NoopHooks{}
	}
	return h
}
