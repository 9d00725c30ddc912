// Package camera is the adjustment core. It classifies the camera variant
// the game is currently driving, tracks the resulting context across
// invocations, and rewrites the in-memory view parameters after each hooked
// camera update, preserving the zoom the game itself has already applied.
package camera

// Context is the semantic camera mode derived from the raw camera ID. It
// selects which user settings and vanilla baselines apply.
type Context uint8

const (
	ContextHub Context = iota
	ContextRoom
	ContextQuest
)

func (c Context) String() string {
	switch c {
	case ContextHub:
		return "hub"
	case ContextRoom:
		return "room"
	case ContextQuest:
		return "quest"
	}
	return "undefined"
}
