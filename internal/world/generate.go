package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/dungeonmap/internal/telemetry"
)

const (
	columnCount         = 10
	horizontalWallCount = 5
	verticalWallCount   = 5

	// Rerolls allowed when a door lands on a cell that already holds one
	doorPlacementAttempts = 100

	downstairsName = "a downstairs"
	upstairsName   = "an upstairs"
)

// terrain holds the ids registered by Generate.
type terrain struct {
	floor      CellTypeID
	wall       CellTypeID
	brickWall  CellTypeID
	woodenWall CellTypeID
	doorway    CellTypeID
	glass      CellTypeID
}

// Generate resets the map and builds a new level of the given size: a floor
// scattered with columns, crossed by brick and wooden partition walls with
// one door each, and one pair of stairs.
//
// rng drives every random choice; nil means a time-seeded source. Negative
// dimensions are treated as zero, and a map with no cells gets no features.
func (m *Map) Generate(ctx context.Context, width, height int, rng *rand.Rand) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "map.generate")
	defer span.End()

	startTime := time.Now()

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	width, height = max(width, 0), max(height, 0)

	m.Width = width
	m.Height = height
	m.cells = make([]Cell, width*height)
	m.Doors = nil
	m.CellTypes = nil
	m.logf("Cells created: %d.", len(m.cells))
	span.AddEvent("cells.created")

	t := m.registerTerrain()
	m.logf("Cell types registered: %d.", len(m.CellTypes))

	m.Fill(Cell{Type: t.floor})
	m.logf("Map filled with floor.")

	if len(m.cells) > 0 {
		m.placeColumns(rng, t)
		span.AddEvent("columns.placed")

		m.placeHorizontalWalls(rng, t)
		m.logf("Horizontal walls placed.")
		span.AddEvent("walls.horizontal.placed")

		m.placeVerticalWalls(rng, t)
		m.logf("Vertical walls placed.")
		span.AddEvent("walls.vertical.placed")
	}

	m.placeTransports(rng)
	span.AddEvent("transports.placed")

	m.logf("Map is successfully generated.")
	recordGeneration(span, m, startTime)
}

func recordGeneration(span trace.Span, m *Map, startTime time.Time) {
	span.SetAttributes(
		attribute.Int("map.width", m.Width),
		attribute.Int("map.height", m.Height),
		attribute.Int("map.cell_types", len(m.CellTypes)),
		attribute.Int("map.doors", len(m.Doors)),
		attribute.Int("map.transports", len(m.Transports)),
		attribute.Int64("map.generation_ms", time.Since(startTime).Milliseconds()),
	)
}

// registerTerrain registers the six terrain kinds in their fixed order.
func (m *Map) registerTerrain() terrain {
	return terrain{
		floor:      m.RegisterType(CellType{Sprite: '.', Passable: true, Transparent: true, Name: "a floor"}),
		wall:       m.RegisterType(CellType{Sprite: '#', Passable: false, Transparent: false, Name: "a wall"}),
		brickWall:  m.RegisterType(CellType{Sprite: '#', Passable: false, Transparent: false, Name: "a brick wall"}),
		woodenWall: m.RegisterType(CellType{Sprite: '#', Passable: false, Transparent: false, Name: "a wooden wall"}),
		doorway:    m.RegisterType(CellType{Sprite: '.', Passable: true, Transparent: true, Name: "a doorway"}),
		glass:      m.RegisterType(CellType{Sprite: '=', Passable: false, Transparent: true, Name: "a glass wall"}),
	}
}

// set changes the terrain of a position known to be valid.
func (m *Map) set(x, y int, id CellTypeID) {
	m.cells[x+y*m.Width].Type = id
}

// placeColumns scatters single wall cells. Columns may land on each other.
func (m *Map) placeColumns(rng *rand.Rand, t terrain) {
	for i := 0; i < columnCount; i++ {
		m.set(rng.Intn(m.Width), rng.Intn(m.Height), t.wall)
	}
	m.logf("Random columns placed.")
}

// placeHorizontalWalls draws brick walls from the left half of a row into
// the right half, each with an optional glass window and one door.
func (m *Map) placeHorizontalWalls(rng *rand.Rand, t terrain) {
	half := m.Width / 2
	for i := 0; i < horizontalWallCount; i++ {
		y := rng.Intn(m.Height)
		x1 := rng.Intn(max(half, 1))
		x2 := half + rng.Intn(m.Width-half)

		for x := x1; x <= x2; x++ {
			m.set(x, y, t.brickWall)
		}
		m.logf("\tWall created %d..%d at y=%d.", x1, x2, y)

		if start, end, ok := glassWindow(rng, x1, x2); ok {
			for x := start; x <= end; x++ {
				m.set(x, y, t.glass)
			}
			m.logf("\tGlass settled: %d..%d.", start, end)
		}

		doorX, doorY := m.doorSpot(rng, x1, x2, func(v int) (int, int) { return v, y })
		m.placeDoor(doorX, doorY, t)
	}
}

// placeVerticalWalls draws wooden walls from the top half of a column into
// the bottom half, each with one door.
func (m *Map) placeVerticalWalls(rng *rand.Rand, t terrain) {
	half := m.Height / 2
	for i := 0; i < verticalWallCount; i++ {
		x := rng.Intn(m.Width)
		y1 := rng.Intn(max(half, 1))
		y2 := half + rng.Intn(m.Height-half)

		for y := y1; y <= y2; y++ {
			m.set(x, y, t.woodenWall)
		}
		m.logf("\tWall created %d..%d at x=%d.", y1, y2, x)

		doorX, doorY := m.doorSpot(rng, y1, y2, func(v int) (int, int) { return x, v })
		m.placeDoor(doorX, doorY, t)
	}
}

// glassWindow picks the inclusive window [start, end] for a wall spanning
// [x1, x2]. The window keeps at least one brick at each end, so walls with
// x2-x1 <= 2 get none.
func glassWindow(rng *rand.Rand, x1, x2 int) (start, end int, ok bool) {
	if x2-x1 <= 2 {
		return 0, 0, false
	}
	start = x1 + 1 + rng.Intn(x2-x1-2)
	end = start + rng.Intn(x2-1-start)
	return start, end, true
}

// doorSpot picks a position along a wall span [lo, hi), rerolling while the
// pick already holds a door. When every roll collides it takes the first
// door-free cell of [lo, hi], wall end included. Only when the whole wall
// already carries doors, as on a 1x1 map, does the door share a cell.
func (m *Map) doorSpot(rng *rand.Rand, lo, hi int, at func(int) (int, int)) (int, int) {
	n := max(hi-lo, 1)
	pick := lo + rng.Intn(n)
	for attempt := 1; n > 1 && attempt < doorPlacementAttempts && m.DoorAt(at(pick)) != nil; attempt++ {
		pick = lo + rng.Intn(n)
	}
	if m.DoorAt(at(pick)) == nil {
		return at(pick)
	}

	for v := lo; v <= hi; v++ {
		if m.DoorAt(at(v)) == nil {
			return at(v)
		}
	}
	return at(pick)
}

func (m *Map) placeDoor(x, y int, t terrain) {
	m.set(x, y, t.doorway)
	m.Doors = append(m.Doors, NewDoor(x, y))
	m.logf("\tDoor placed at %d, %d.", x, y)
}

// placeTransports replaces the stairs with one downstairs and one upstairs.
func (m *Map) placeTransports(rng *rand.Rand) {
	m.Transports = nil
	if len(m.cells) == 0 {
		return
	}
	m.Transports = append(m.Transports,
		NewTransport(rng.Intn(m.Width), rng.Intn(m.Height), false, downstairsName),
		NewTransport(rng.Intn(m.Width), rng.Intn(m.Height), true, upstairsName),
	)
}
