package camera

import (
	"math"

	"github.com/camtune/camtune/internal/core/config"
	"github.com/camtune/camtune/internal/core/memview"
)

// Memory layout of the host camera object for the targeted game build.
// The view-parameter block sits at a fixed offset from the object base;
// each field is a 32-bit float at a fixed offset within the block.
const (
	paramBlockOffset uintptr = 0x5d0

	offShift    uintptr = 0x10
	offHeight   uintptr = 0x14
	offDistance uintptr = 0x18 // stored with inverted sign
	offFOV      uintptr = 0x20

	offCameraID uintptr = 0x13b8
)

// ObjectSize is the number of bytes of the host camera object the core
// touches, camera ID included.
const ObjectSize = offCameraID + 4

// Params holds the logical view parameters. Distance is the positive
// magnitude; the sign inversion of the host's storage is confined to the
// memory read/write below.
type Params struct {
	FOV      float32 `json:"fov"`
	Distance float32 `json:"distance"`
	Height   float32 `json:"height"`
	Shift    float32 `json:"shift"`
}

// Vanilla framing per context, as shipped by the game.
var (
	hubBaseline   = Params{FOV: 53, Distance: 350, Height: 170, Shift: 0}
	roomBaseline  = Params{FOV: 51, Distance: 260, Height: 160, Shift: -50}
	questBaseline = Params{FOV: 53, Distance: 380, Height: 180, Shift: 0}
)

// BaselineFor returns the vanilla parameters for a context.
func BaselineFor(ctx Context) Params {
	switch ctx {
	case ContextHub:
		return hubBaseline
	case ContextRoom:
		return roomBaseline
	case ContextQuest:
		return questBaseline
	}
	return Params{}
}

func readParams(v memview.View) Params {
	return Params{
		FOV:      v.Float32(paramBlockOffset + offFOV),
		Distance: -v.Float32(paramBlockOffset + offDistance),
		Height:   v.Float32(paramBlockOffset + offHeight),
		Shift:    v.Float32(paramBlockOffset + offShift),
	}
}

func (p Params) write(v memview.View) {
	v.PutFloat32(paramBlockOffset+offFOV, p.FOV)
	v.PutFloat32(paramBlockOffset+offDistance, -p.Distance)
	v.PutFloat32(paramBlockOffset+offHeight, p.Height)
	v.PutFloat32(paramBlockOffset+offShift, p.Shift)
}

// projScaleFromFOV maps a fov in degrees to its half-angle tangent, the
// quantity that is linear in on-screen zoom. All fov arithmetic happens in
// this space; degrees are non-linear and would skew the ratio.
func projScaleFromFOV(fov float32) float32 {
	return float32(math.Tan(math.Pi / 360 * float64(fov)))
}

func fovFromProjScale(proj float32) float32 {
	return float32(360 / math.Pi * math.Atan(float64(proj)))
}

func roundf(v float32) float32 {
	return float32(math.Round(float64(v)))
}

func settingsFor(cfg config.UserConfig, ctx Context) config.Settings {
	switch ctx {
	case ContextHub:
		return cfg.Hub
	case ContextRoom:
		return cfg.Room
	}
	return cfg.Quest
}

// Adjust computes the parameters to write back for the tracked state. The
// surveyor camera passes through untouched. The fov ratio against the
// context baseline keeps whatever zoom the game has already applied (aim
// modes, cutscene pull-ins) on top of the user's target fov.
func (p Params) Adjust(t *Tracker, cfg config.UserConfig) Params {
	if t.LastID() == IDSurveyorSet {
		return p
	}
	settings := settingsFor(cfg, t.Context())
	base := BaselineFor(t.Context())

	currentProj := projScaleFromFOV(p.FOV)
	baseProj := projScaleFromFOV(base.FOV)
	targetProj := projScaleFromFOV(settings.FOV)
	adjustedFOV := fovFromProjScale(targetProj * currentProj / baseProj)

	out := Params{
		FOV:      roundf(adjustedFOV),
		Distance: roundf(p.Distance * settings.Distance),
		Height:   roundf(p.Height * settings.Height),
		Shift:    p.Shift,
	}
	if cfg.DisableRoomShift && t.Context() == ContextRoom {
		out.Shift = 0
	}
	return out
}

// Seed writes the vanilla parameter block and camera ID for id into b, the
// way the game's own update would have left them. The simulator and tests
// use it to stand up a synthetic camera object.
func Seed(b memview.Buffer, id CameraID) {
	ctx := ContextQuest
	if c, ok := contextByID[id]; ok {
		ctx = c
	}
	BaselineFor(ctx).write(b)
	b.PutUint32(offCameraID, uint32(id))
}
