// Package config resolves user camera settings from a YAML file and keeps
// the last good result available to the adjustment core. Every anomaly
// falls back to defaults with a warning; loading never takes the camera
// down.
package config

// DefaultFOV matches the game's quest-camera fov in degrees.
const DefaultFOV float32 = 53

// The host renders garbage outside this range, so user fov is clamped to it.
const (
	fovMin float32 = 30
	fovMax float32 = 120
)

// Settings is the per-context user record. FOV is an absolute target in
// degrees; Distance and Height are multiplicative scale factors applied to
// whatever the game computed.
type Settings struct {
	FOV      float32
	Distance float32
	Height   float32
}

func DefaultSettings() Settings {
	return Settings{
		FOV:      DefaultFOV,
		Distance: 1.0,
		Height:   1.0,
	}
}

// UserConfig is the fully resolved configuration handed to the core.
type UserConfig struct {
	Hub   Settings
	Room  Settings
	Quest Settings

	// DisableRoomShift zeroes the sideways framing offset the game applies
	// in player rooms.
	DisableRoomShift bool
}

func Default() UserConfig {
	return UserConfig{
		Hub:   DefaultSettings(),
		Room:  DefaultSettings(),
		Quest: DefaultSettings(),
	}
}
