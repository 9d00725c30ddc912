package camera

import (
	"fmt"
	"strings"

	"github.com/camtune/camtune/internal/core/config"
	"github.com/camtune/camtune/internal/core/memview"
	"github.com/camtune/camtune/internal/core/observability/log"
)

// ConfigSource yields the settings in effect for the current invocation.
// The config provider satisfies it; tests use fixed stubs.
type ConfigSource interface {
	Current() config.UserConfig
}

// Adjustment is one applied rewrite, published to diagnostics sinks.
type Adjustment struct {
	Context  string `json:"context"`
	CameraID uint32 `json:"camera_id"`
	Before   Params `json:"before"`
	After    Params `json:"after"`
}

// Engine is the single entry point the hook layer calls. It owns no memory:
// every invocation reads the camera object fresh, adjusts, and writes back.
type Engine struct {
	tracker *Tracker
	config  ConfigSource
	log     log.Log
	sink    func(Adjustment)
}

type Option func(*Engine)

// WithSink registers a callback invoked after every applied adjustment.
func WithSink(sink func(Adjustment)) Option {
	return func(e *Engine) { e.sink = sink }
}

func NewEngine(tracker *Tracker, cfg ConfigSource, logger log.Log, opts ...Option) *Engine {
	e := &Engine{
		tracker: tracker,
		config:  cfg,
		log:     logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Update runs one adjustment pass over a live camera object. Called once
// after each of the two hooked camera functions has run its original logic,
// always from the host's camera thread.
func (e *Engine) Update(v memview.View) {
	current := readParams(v)
	id := CameraID(v.Uint32(offCameraID))
	ctx := e.tracker.Update(id)
	adjusted := current.Adjust(e.tracker, e.config.Current())
	e.log.Debug(formatAdjustment(ctx, id, current, adjusted))
	adjusted.write(v)
	if e.sink != nil {
		e.sink(Adjustment{
			Context:  ctx.String(),
			CameraID: uint32(id),
			Before:   current,
			After:    adjusted,
		})
	}
}

// UpdateAddress adapts Update for the hook layer, which only has the raw
// base address of the camera object.
func (e *Engine) UpdateAddress(base uintptr) {
	e.Update(memview.Raw(base))
}

// formatAdjustment renders the per-invocation diff line. A field shows its
// new value only when it changed.
func formatAdjustment(ctx Context, id CameraID, before, after Params) string {
	var b strings.Builder
	field := func(name string, oldValue, newValue float32) {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s %.0f", name, oldValue)
		if oldValue != newValue {
			fmt.Fprintf(&b, " > %.0f", newValue)
		}
	}
	field("fov", before.FOV, after.FOV)
	field("distance", before.Distance, after.Distance)
	field("height", before.Height, after.Height)
	field("shift", before.Shift, after.Shift)
	return fmt.Sprintf("%s %3d %s", ctx, uint32(id), b.String())
}
