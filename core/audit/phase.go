// Copyright 2025, the i18nkit contributors
// SPDX-License-Identifier: AGPL-3.0-only

package audit

import (
	"context"
	"runtime/trace"
	"time"

	"github.com/rs/zerolog/log"
)

// Phase represents one step of a run (load, extract, render, write...).
type Phase struct {
	// only these fields are set automatically
	task     *trace.Task
	start    time.Time
	duration time.Duration

	Name  string
	Items int // number of records, keys or files handled
	Error error
}

// Begin starts timing the phase.
func (p *Phase) Begin(ctx context.Context) context.Context {
	p.start = time.Now()
	ctx, p.task = trace.NewTask(ctx, "i18nkit."+p.Name)

	return ctx
}

// End stops timing the phase. Calling End more than once is a no-op.
func (p *Phase) End() {
	if p.task != nil {
		p.duration = time.Since(p.start)
		p.task.End()

		p.task = nil
	}
}

// Duration returns the measured duration; zero until End is called.
func (p *Phase) Duration() time.Duration {
	return p.duration
}

// Log ends the phase if needed and logs it at debug level,
// or at error level when the phase failed.
func (p *Phase) Log() {
	p.End()

	event := log.Debug()
	if p.Error != nil {
		event = log.Error().Err(p.Error)
	}

	event.
		Str("sys", "run").
		Str("phase", p.Name).
		Int("items", p.Items).
		Dur("dur", p.duration).
		Msg("Phase finished")
}

// Track runs fn as a named phase and logs it.
// fn returns the item count for the log line.
func Track(ctx context.Context, name string, fn func(ctx context.Context) (int, error)) error {
	p := &Phase{Name: name}
	ctx = p.Begin(ctx)

	p.Items, p.Error = fn(ctx)
	p.Log()

	return p.Error
}
