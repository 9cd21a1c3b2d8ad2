// Package game provides the main game loop and state management.
package game

// State represents the current input mode.
type State int

const (
	// StateExplore is the default mode where the arrow keys move the player.
	StateExplore State = iota
	// StateLook moves a cursor over the map and describes what is under it.
	StateLook
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateLook:
		return "look"
	default:
		return "unknown"
	}
}
