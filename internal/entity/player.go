// Package entity provides the things that move around the map.
package entity

// PlayerSymbol is the player's display glyph.
const PlayerSymbol = '@'

// Player is the explorer controlled from the keyboard.
type Player struct {
	X, Y   int  // Current position on the map
	Depth  int  // Dungeon level, starting at 1
	Symbol rune // Display symbol
}

// NewPlayer creates a player on the first level at the given position.
func NewPlayer(x, y int) *Player {
	return &Player{
		X:      x,
		Y:      y,
		Depth:  1,
		Symbol: PlayerSymbol,
	}
}

// Move updates the player position by the given delta.
func (p *Player) Move(dx, dy int) {
	p.X += dx
	p.Y += dy
}

// PlaceAt puts the player at an absolute position, e.g. on arrival at a new level.
func (p *Player) PlaceAt(x, y int) {
	p.X = x
	p.Y = y
}

// Target returns the position one step away in the given direction.
func (p *Player) Target(dx, dy int) (int, int) {
	return p.X + dx, p.Y + dy
}

// Position returns the current x, y coordinates.
func (p *Player) Position() (int, int) {
	return p.X, p.Y
}
