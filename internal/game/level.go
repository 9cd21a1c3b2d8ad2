package game

import (
	"context"
	"math/rand"

	"github.com/google/uuid"

	"github.com/samdwyer/dungeonmap/internal/world"
)

// Level is one generated dungeon floor.
type Level struct {
	ID    uuid.UUID
	Depth int
	Map   *world.Map
}

// NewLevel generates a fresh map for the given depth.
func NewLevel(ctx context.Context, depth, width, height int, rng *rand.Rand, logger world.Logger) *Level {
	m := &world.Map{Logger: logger}
	m.Generate(ctx, width, height, rng)
	return &Level{
		ID:    uuid.New(),
		Depth: depth,
		Map:   m,
	}
}

// Stairs returns the position of the upstairs or downstairs.
// ok is false if the level has none.
func (l *Level) Stairs(up bool) (x, y int, ok bool) {
	for _, t := range l.Map.Transports {
		if t.IsUp == up {
			return t.X, t.Y, true
		}
	}
	return 0, 0, false
}
