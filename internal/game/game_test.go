package game

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/samdwyer/dungeonmap/internal/entity"
	"github.com/samdwyer/dungeonmap/internal/world"
)

// hallway builds a game on a 6x3 floor with a wall at (1,0), a closed door
// at (3,1), an upstairs at (0,1) and a downstairs at (5,1). The player
// stands at (2,1).
func hallway(t *testing.T) *Game {
	t.Helper()
	m := world.NewMap(6, 3)
	floor := m.RegisterType(world.CellType{Sprite: '.', Passable: true, Transparent: true, Name: "a floor"})
	wall := m.RegisterType(world.CellType{Sprite: '#', Passable: false, Transparent: false, Name: "a wall"})
	m.Fill(world.Cell{Type: floor})
	c, _ := m.Cell(1, 0)
	c.Type = wall
	m.Doors = append(m.Doors, world.NewDoor(3, 1))
	m.Transports = append(m.Transports,
		world.NewTransport(5, 1, false, "a downstairs"),
		world.NewTransport(0, 1, true, "an upstairs"),
	)

	cfg := DefaultConfig()
	cfg.Seed = 42
	cfg.Width, cfg.Height = 20, 10
	cfg.SightRadius = 1

	g := newGame(cfg, nil)
	g.level = &Level{ID: uuid.New(), Depth: 1, Map: m}
	g.visited.Put(g.level.ID)
	g.player = entity.NewPlayer(2, 1)
	g.updateVisibility()
	return g
}

func TestStartPlacesPlayerOnUpstairs(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 7
	g := newGame(cfg, nil)
	g.start(context.Background())

	x, y, ok := g.level.Stairs(true)
	if !ok {
		t.Fatal("generated level should have an upstairs")
	}
	if g.player.X != x || g.player.Y != y {
		t.Errorf("player at (%d,%d), want upstairs (%d,%d)", g.player.X, g.player.Y, x, y)
	}
	if g.player.Depth != 1 || g.level.Depth != 1 {
		t.Errorf("expected depth 1, got player %d level %d", g.player.Depth, g.level.Depth)
	}
	c, _ := g.level.Map.Cell(x, y)
	if !c.Visible || !c.Seen {
		t.Error("player's own cell should be visible")
	}
	if g.visited.Size() != 1 {
		t.Errorf("expected 1 visited level, got %d", g.visited.Size())
	}
}

func TestVisibilityIsSquareAroundPlayer(t *testing.T) {
	g := hallway(t)
	m := g.level.Map

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			c, _ := m.Cell(x, y)
			want := x >= 1 && x <= 3
			if c.Visible != want {
				t.Errorf("cell (%d,%d) visible=%v, want %v", x, y, c.Visible, want)
			}
		}
	}

	// Stepping away keeps the old cells remembered
	g.tryMove(-1, 0)
	c, _ := m.Cell(3, 1)
	if c.Visible || !c.Seen {
		t.Errorf("cell left behind should be seen but not visible, got %+v", *c)
	}
}

func TestBumpOpensDoor(t *testing.T) {
	g := hallway(t)

	g.tryMove(1, 0)
	if g.player.X != 2 {
		t.Fatal("player should not walk through a closed door")
	}
	if !g.level.Map.DoorAt(3, 1).Opened {
		t.Fatal("bumping should open the door")
	}
	if g.messages.Last() != "You open the door." {
		t.Errorf("unexpected message %q", g.messages.Last())
	}

	g.tryMove(1, 0)
	if g.player.X != 3 {
		t.Error("player should walk through the opened door")
	}
}

func TestBumpIntoWall(t *testing.T) {
	g := hallway(t)
	g.player.PlaceAt(1, 1)

	g.tryMove(0, -1)
	if g.player.Y != 1 {
		t.Error("player should not walk into a wall")
	}
	if g.messages.Last() != "You bump into a wall." {
		t.Errorf("unexpected message %q", g.messages.Last())
	}

	// Off the map is silently ignored
	before := len(g.messages.Lines())
	g.player.PlaceAt(0, 0)
	g.tryMove(-1, 0)
	if g.player.X != 0 || len(g.messages.Lines()) != before {
		t.Error("moving off the map should do nothing")
	}
}

func TestCloseAdjacentDoors(t *testing.T) {
	g := hallway(t)

	g.closeAdjacentDoors()
	if g.messages.Last() != "There is no open door nearby." {
		t.Errorf("unexpected message %q", g.messages.Last())
	}

	g.level.Map.OpenAt(3, 1)
	g.closeAdjacentDoors()
	if g.level.Map.DoorAt(3, 1).Opened {
		t.Error("adjacent door should be closed")
	}
	if g.messages.Last() != "You close the door." {
		t.Errorf("unexpected message %q", g.messages.Last())
	}
}

func TestDescendAndAscend(t *testing.T) {
	g := hallway(t)
	ctx := context.Background()
	first := g.level.ID

	// Not on stairs
	g.apply(ctx, command{kind: cmdDescend})
	if g.level.ID != first {
		t.Fatal("descending away from stairs should not change level")
	}

	g.player.PlaceAt(5, 1)
	g.apply(ctx, command{kind: cmdDescend})
	if g.level.ID == first || g.level.Depth != 2 || g.player.Depth != 2 {
		t.Fatalf("expected a new level at depth 2, got depth %d", g.level.Depth)
	}
	if x, y, _ := g.level.Stairs(true); g.player.X != x || g.player.Y != y {
		t.Error("descending should arrive on the upstairs")
	}
	if g.level.Map.Width != 20 || g.level.Map.Height != 10 {
		t.Errorf("new level should use configured size, got %dx%d", g.level.Map.Width, g.level.Map.Height)
	}
	if g.visited.Size() != 2 || !g.visited.Has(first) {
		t.Error("both levels should be recorded as visited")
	}

	g.apply(ctx, command{kind: cmdAscend})
	if g.level.Depth != 1 {
		t.Fatalf("expected depth 1 after ascending, got %d", g.level.Depth)
	}
	if x, y, _ := g.level.Stairs(false); g.player.X != x || g.player.Y != y {
		t.Error("ascending should arrive on the downstairs")
	}
}

func TestAscendFromFirstLevelIsSealed(t *testing.T) {
	g := hallway(t)
	g.player.PlaceAt(0, 1)
	first := g.level.ID

	g.apply(context.Background(), command{kind: cmdAscend})
	if g.level.ID != first {
		t.Error("should not leave the first level upwards")
	}
	if g.messages.Last() != "The way up is sealed." {
		t.Errorf("unexpected message %q", g.messages.Last())
	}
}

func TestLookMode(t *testing.T) {
	g := hallway(t)
	ctx := context.Background()

	g.apply(ctx, command{kind: cmdLook})
	if g.state != StateLook {
		t.Fatalf("expected look state, got %s", g.state)
	}
	if got := g.describeCursor(); got != "That is you." {
		t.Errorf("cursor on player: %q", got)
	}

	g.apply(ctx, move(1, 0))
	if g.player.X != 2 {
		t.Error("moving in look mode should move the cursor, not the player")
	}
	if got := g.describeCursor(); got != "You see a door." {
		t.Errorf("cursor on door: %q", got)
	}

	// Unseen cells are not described
	g.cursorX, g.cursorY = 5, 1
	if got := g.describeCursor(); !strings.Contains(got, "don't know") {
		t.Errorf("cursor on unseen cell: %q", got)
	}
	if v := g.view(); !v.Look || v.Status != g.describeCursor() {
		t.Errorf("view should show the look description, got %+v", v)
	}

	// Cursor stays on the map
	g.apply(ctx, move(1, 0))
	if g.cursorX != 5 {
		t.Errorf("cursor left the map: x=%d", g.cursorX)
	}

	g.apply(ctx, command{kind: cmdCancel})
	if g.state != StateExplore {
		t.Errorf("expected explore state, got %s", g.state)
	}
}

func TestQuit(t *testing.T) {
	g := hallway(t)
	g.apply(context.Background(), command{kind: cmdQuit})
	if g.running {
		t.Error("quit should stop the game loop")
	}
}
