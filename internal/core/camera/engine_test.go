package camera

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/camtune/camtune/internal/core/config"
	"github.com/camtune/camtune/internal/core/memview"
	"github.com/camtune/camtune/internal/core/observability/log"
)

type staticConfig struct{ cfg config.UserConfig }

func (s staticConfig) Current() config.UserConfig { return s.cfg }

type debugRecorder struct {
	log.Log
	lines []string
}

func newDebugRecorder() *debugRecorder { return &debugRecorder{Log: log.Nop()} }

func (r *debugRecorder) Debug(msg string, _ ...log.Field) {
	r.lines = append(r.lines, msg)
}

func TestEngineUpdateWritesAdjustedParams(t *testing.T) {
	obj := make(memview.Buffer, ObjectSize)
	Seed(obj, IDNormal)

	cfg := config.Default()
	cfg.Quest = config.Settings{FOV: 70, Distance: 1.2, Height: 1.0}

	rec := newDebugRecorder()
	var published []Adjustment
	engine := NewEngine(NewTracker(), staticConfig{cfg}, rec,
		WithSink(func(a Adjustment) { published = append(published, a) }))

	engine.Update(obj)

	require.Equal(t, float32(70), obj.Float32(paramBlockOffset+offFOV))
	// Distance is stored sign-inverted.
	require.Equal(t, float32(-456), obj.Float32(paramBlockOffset+offDistance))
	require.Equal(t, float32(180), obj.Float32(paramBlockOffset+offHeight))
	require.Equal(t, float32(0), obj.Float32(paramBlockOffset+offShift))

	require.Equal(t,
		[]string{"quest   0 fov 53 > 70, distance 380 > 456, height 180, shift 0"},
		rec.lines)

	require.Len(t, published, 1)
	require.Equal(t, Adjustment{
		Context:  "quest",
		CameraID: 0,
		Before:   Params{FOV: 53, Distance: 380, Height: 180, Shift: 0},
		After:    Params{FOV: 70, Distance: 456, Height: 180, Shift: 0},
	}, published[0])
}

func TestEngineUpdateSurveyorLeavesMemoryIntact(t *testing.T) {
	obj := make(memview.Buffer, ObjectSize)
	Seed(obj, IDSurveyorSet)
	obj.PutFloat32(paramBlockOffset+offFOV, 47.5)
	obj.PutFloat32(paramBlockOffset+offDistance, -123.25)
	obj.PutFloat32(paramBlockOffset+offHeight, 99.875)
	obj.PutFloat32(paramBlockOffset+offShift, -3.5)

	cfg := config.Default()
	cfg.Quest = config.Settings{FOV: 120, Distance: 9, Height: 9}

	before := append(memview.Buffer(nil), obj...)
	engine := NewEngine(NewTracker(), staticConfig{cfg}, log.Nop())
	engine.Update(obj)

	require.Equal(t, before, obj)
}

func TestEngineUpdateZeroesRoomShift(t *testing.T) {
	obj := make(memview.Buffer, ObjectSize)
	Seed(obj, IDPrivateSuite)

	cfg := config.Default()
	cfg.DisableRoomShift = true

	rec := newDebugRecorder()
	engine := NewEngine(NewTracker(), staticConfig{cfg}, rec)
	engine.Update(obj)

	require.Equal(t, float32(0), obj.Float32(paramBlockOffset+offShift))
	require.Len(t, rec.lines, 1)
	require.Contains(t, rec.lines[0], "shift -50 > 0")
	require.Contains(t, rec.lines[0], "room")
}

func TestEngineUpdateAdvancesTracker(t *testing.T) {
	obj := make(memview.Buffer, ObjectSize)
	Seed(obj, IDBaseHub)

	tracker := NewTracker()
	engine := NewEngine(tracker, staticConfig{config.Default()}, log.Nop())
	engine.Update(obj)

	require.Equal(t, ContextHub, tracker.Context())
	require.Equal(t, IDBaseHub, tracker.LastID())
}
