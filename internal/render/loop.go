// Package render drives the animation: it periodically turns the
// registry's beacon snapshot into a frame and hands it to a sink.
package render

import (
	"context"
	"fmt"
	"time"

	"ble-trails.klederson.com/internal/beacon"
	"ble-trails.klederson.com/internal/strip"
)

// Loop composites beacon trails onto the strip at a fixed interval. It
// owns the position runner; the registry is the only state shared with
// the ingest side.
type Loop struct {
	registry    *beacon.Registry
	runner      *strip.Runner
	sink        strip.Sink
	ledCount    int
	interval    time.Duration
	trailLength int
	fadeFactor  float64
}

// New creates a render loop. ledCount must be >= 1 and interval
// positive; both are also guarded by config validation, this keeps
// library callers honest.
func New(registry *beacon.Registry, sink strip.Sink, ledCount int, interval time.Duration, trailLength int, fadeFactor float64) (*Loop, error) {
	if ledCount < 1 {
		return nil, fmt.Errorf("led count must be >= 1, got %d", ledCount)
	}
	if interval <= 0 {
		return nil, fmt.Errorf("render interval must be positive, got %s", interval)
	}

	return &Loop{
		registry:    registry,
		runner:      strip.NewRunner(ledCount),
		sink:        sink,
		ledCount:    ledCount,
		interval:    interval,
		trailLength: trailLength,
		fadeFactor:  fadeFactor,
	}, nil
}

// Run renders frames until ctx is cancelled, then returns ctx.Err().
// Cancellation is checked at the top of every tick, so no partial frame
// survives a stop. A slow sink delays the next tick but each tick
// renders into a fresh buffer.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		l.renderFrame()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (l *Loop) renderFrame() {
	frame := strip.NewFrame(l.ledCount)

	for id, b := range l.registry.Snapshot() {
		pos := l.runner.Next(id)
		color := beacon.ColorFor(id, b.RSSI, b.Life)
		strip.AddTrail(frame, pos, color, l.trailLength, l.fadeFactor)
	}

	l.sink.Update(frame)
}
