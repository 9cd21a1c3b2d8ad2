package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonmap/internal/entity"
	"github.com/samdwyer/dungeonmap/internal/gamedata"
	"github.com/samdwyer/dungeonmap/internal/world"
)

func newSimulation(t *testing.T, width, height int) (*Renderer, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := Wrap(sim)
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}
	t.Cleanup(screen.Close)
	sim.SetSize(width, height)
	return NewRenderer(screen, gamedata.MustLoadPalette()), sim
}

// corridor is a 5x1 floor with a door at x=2 and downstairs at x=4.
func corridor() *world.Map {
	m := world.NewMap(5, 1)
	floor := m.RegisterType(world.CellType{Sprite: '.', Passable: true, Transparent: true, Name: "a floor"})
	m.Fill(world.Cell{Type: floor})
	m.Doors = append(m.Doors, world.NewDoor(2, 0))
	m.Transports = append(m.Transports, world.NewTransport(4, 0, false, "a downstairs"))
	return m
}

func runeAt(sim tcell.SimulationScreen, x, y int) rune {
	r, _, _, _ := sim.GetContent(x, y)
	return r
}

func TestRenderFog(t *testing.T) {
	r, sim := newSimulation(t, 20, 3)
	m := corridor()

	// Only the first three cells have been perceived
	for x := 0; x < 3; x++ {
		c, _ := m.Cell(x, 0)
		c.Reveal()
	}

	r.Render(View{Map: m, Player: entity.NewPlayer(0, 0), Depth: 1, Status: "hello"})

	want := []rune{'@', '.', '+', ' ', ' '}
	for x, w := range want {
		if got := runeAt(sim, x, 0); got != w {
			t.Errorf("cell %d: got %q, want %q", x, got, w)
		}
	}

	status := ""
	for x := 0; x < 8; x++ {
		status += string(runeAt(sim, x, 1))
	}
	if status != "L1 hello" {
		t.Errorf("status line %q, want %q", status, "L1 hello")
	}
}

func TestRenderRememberedCells(t *testing.T) {
	r, sim := newSimulation(t, 20, 3)
	m := corridor()
	c, _ := m.Cell(4, 0)
	c.Seen = true

	r.Render(View{Map: m, Player: entity.NewPlayer(0, 0), Depth: 1})

	_, _, style, _ := sim.GetContent(4, 0)
	if runeAt(sim, 4, 0) != '>' {
		t.Errorf("remembered stairs should still be drawn, got %q", runeAt(sim, 4, 0))
	}
	if style != r.palette.Remembered() {
		t.Error("remembered cells should use the remembered style")
	}
}

func TestRenderMessageTruncates(t *testing.T) {
	r, sim := newSimulation(t, 6, 2)

	r.RenderMessage("a very long message", 0)

	if got := runeAt(sim, 5, 0); got != '…' {
		t.Errorf("expected ellipsis at the last column, got %q", got)
	}
	if got := runeAt(sim, 0, 0); got != 'a' {
		t.Errorf("expected message start, got %q", got)
	}
}

func TestRenderLookCursor(t *testing.T) {
	r, sim := newSimulation(t, 20, 3)
	m := corridor()
	c, _ := m.Cell(2, 0)
	c.Reveal()

	r.Render(View{Map: m, Player: entity.NewPlayer(0, 0), Look: true, CursorX: 2, CursorY: 0})

	_, _, style, _ := sim.GetContent(2, 0)
	if runeAt(sim, 2, 0) != '+' {
		t.Errorf("cursor should keep the glyph under it, got %q", runeAt(sim, 2, 0))
	}
	if style != r.palette.Cursor() {
		t.Error("cursor cell should use the cursor style")
	}
}
