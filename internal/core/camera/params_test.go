package camera

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/camtune/camtune/internal/core/config"
)

func questConfig(s config.Settings) config.UserConfig {
	cfg := config.Default()
	cfg.Quest = s
	return cfg
}

func trackerAt(id CameraID) *Tracker {
	tr := NewTracker()
	tr.Update(id)
	return tr
}

func TestProjScaleRoundTrip(t *testing.T) {
	for fov := float32(30); fov <= 120; fov++ {
		got := fovFromProjScale(projScaleFromFOV(fov))
		require.InDelta(t, fov, got, 1e-3)
	}
}

func TestAdjustBaselineFOVHitsTarget(t *testing.T) {
	// Current fov equals the quest baseline, so the deviation ratio is 1
	// and the user's target comes out exactly.
	raw := questBaseline
	cfg := questConfig(config.Settings{FOV: 70, Distance: 1.2, Height: 1.0})

	got := raw.Adjust(trackerAt(IDNormal), cfg)
	require.Equal(t, Params{FOV: 70, Distance: 456, Height: 180, Shift: 0}, got)
}

func TestAdjustPreservesLiveZoom(t *testing.T) {
	// The game has already zoomed in relative to the baseline; the adjusted
	// fov must keep that deviation on top of the target.
	raw := Params{FOV: 40, Distance: 380, Height: 180, Shift: 0}
	cfg := questConfig(config.Settings{FOV: 70, Distance: 1.0, Height: 1.0})

	got := raw.Adjust(trackerAt(IDNormal), cfg)

	wantProj := projScaleFromFOV(70) * projScaleFromFOV(40) / projScaleFromFOV(53)
	want := roundf(fovFromProjScale(wantProj))
	require.Equal(t, want, got.FOV)
	require.Less(t, got.FOV, float32(70))
}

func TestAdjustScalesDistanceAndHeightLinearly(t *testing.T) {
	raw := Params{FOV: 53, Distance: 200, Height: 90, Shift: 0}
	cfg := questConfig(config.Settings{FOV: 53, Distance: 1.5, Height: 2.0})

	got := raw.Adjust(trackerAt(IDNormal), cfg)
	require.Equal(t, float32(300), got.Distance)
	require.Equal(t, float32(180), got.Height)
}

func TestAdjustSurveyorIsUntouched(t *testing.T) {
	raw := Params{FOV: 47.5, Distance: 123.25, Height: 99.9, Shift: -3.5}
	cfg := config.Default()
	cfg.Quest = config.Settings{FOV: 120, Distance: 9, Height: 9}
	cfg.DisableRoomShift = true

	got := raw.Adjust(trackerAt(IDSurveyorSet), cfg)
	require.Equal(t, raw, got)
}

func TestAdjustRoomShift(t *testing.T) {
	raw := Params{FOV: 51, Distance: 260, Height: 160, Shift: -50}

	cfg := config.Default()
	cfg.DisableRoomShift = true
	got := raw.Adjust(trackerAt(IDPrivateSuite), cfg)
	require.Equal(t, float32(0), got.Shift)

	cfg.DisableRoomShift = false
	got = raw.Adjust(trackerAt(IDPrivateSuite), cfg)
	require.Equal(t, float32(-50), got.Shift)
}

func TestAdjustShiftPassesThroughOutsideRoom(t *testing.T) {
	raw := Params{FOV: 53, Distance: 380, Height: 180, Shift: -12}
	cfg := config.Default()
	cfg.DisableRoomShift = true

	for _, id := range []CameraID{IDNormal, IDBaseHub} {
		got := raw.Adjust(trackerAt(id), cfg)
		require.Equal(t, float32(-12), got.Shift, "id %d", id)
	}
}

func TestBaselines(t *testing.T) {
	require.Equal(t, Params{FOV: 53, Distance: 350, Height: 170, Shift: 0}, BaselineFor(ContextHub))
	require.Equal(t, Params{FOV: 51, Distance: 260, Height: 160, Shift: -50}, BaselineFor(ContextRoom))
	require.Equal(t, Params{FOV: 53, Distance: 380, Height: 180, Shift: 0}, BaselineFor(ContextQuest))
}
