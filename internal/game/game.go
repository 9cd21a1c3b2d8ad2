package game

import (
	"context"
	"math/rand"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonmap/internal/entity"
	"github.com/samdwyer/dungeonmap/internal/gamedata"
	"github.com/samdwyer/dungeonmap/internal/telemetry"
	"github.com/samdwyer/dungeonmap/internal/ui"
	"github.com/samdwyer/dungeonmap/internal/world"
)

// Game holds the entire game state.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	cfg      Config
	rng      *rand.Rand
	logger   world.Logger

	level    *Level
	player   *entity.Player
	messages *MessageLog
	visited  mapset.Set[uuid.UUID]

	state            State
	cursorX, cursorY int
	running          bool
}

// New creates a new game instance drawing to the terminal.
// logger receives map generation narration and may be nil.
func New(cfg Config, logger world.Logger) (*Game, error) {
	palette, err := gamedata.LoadPalette()
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	g := newGame(cfg, logger)
	g.screen = screen
	g.renderer = ui.NewRenderer(screen, palette)
	return g, nil
}

// newGame creates the game state without a terminal.
func newGame(cfg Config, logger world.Logger) *Game {
	return &Game{
		cfg:      cfg,
		rng:      cfg.NewRand(),
		logger:   logger,
		messages: &MessageLog{},
		visited:  mapset.New[uuid.UUID](),
		state:    StateExplore,
		running:  true,
	}
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	g.start(ctx)

	for g.running {
		g.renderer.Render(g.view())

		// Handle input (blocking)
		g.handleInput(ctx)
	}

	g.screen.Close()
	return nil
}

// start generates the first level and puts the player on its upstairs.
func (g *Game) start(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	g.player = entity.NewPlayer(0, 0)
	g.enterLevel(ctx, 1, true)
	g.messages.Add("You enter the dungeon.")

	span.SetAttributes(
		attribute.String("level.id", g.level.ID.String()),
		attribute.Int("player.start_x", g.player.X),
		attribute.Int("player.start_y", g.player.Y),
	)
}

// enterLevel generates a level at depth and places the player on the stairs
// they arrived by: the upstairs when going down, the downstairs when going up.
func (g *Game) enterLevel(ctx context.Context, depth int, descending bool) {
	g.level = NewLevel(ctx, depth, g.cfg.Width, g.cfg.Height, g.rng, g.logger)
	g.visited.Put(g.level.ID)
	g.player.Depth = depth

	if x, y, ok := g.level.Stairs(descending); ok {
		g.player.PlaceAt(x, y)
	} else {
		g.player.PlaceAt(g.level.Map.Width/2, g.level.Map.Height/2)
	}
	g.state = StateExplore
	g.updateVisibility()
}

// updateVisibility shows the square around the player. Everything else stays
// remembered but not visible.
func (g *Game) updateVisibility() {
	m := g.level.Map
	m.ClearVisible()

	r := g.cfg.SightRadius
	for y := g.player.Y - r; y <= g.player.Y+r; y++ {
		for x := g.player.X - r; x <= g.player.X+r; x++ {
			if cell, err := m.Cell(x, y); err == nil {
				cell.Reveal()
			}
		}
	}
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.apply(ctx, commandFor(ev, g.state))
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// apply carries out one command in the current state.
func (g *Game) apply(ctx context.Context, cmd command) {
	switch cmd.kind {
	case cmdQuit:
		g.running = false
	case cmdMove:
		if g.state == StateLook {
			g.moveCursor(cmd.dx, cmd.dy)
		} else {
			g.tryMove(cmd.dx, cmd.dy)
		}
	case cmdCloseDoors:
		g.closeAdjacentDoors()
	case cmdDescend:
		g.useStairs(ctx, false)
	case cmdAscend:
		g.useStairs(ctx, true)
	case cmdLook:
		g.toggleLook()
	case cmdCancel:
		g.state = StateExplore
	}
}

// tryMove attempts to move the player by the given delta. Walking into a
// closed door opens it instead.
func (g *Game) tryMove(dx, dy int) {
	m := g.level.Map
	x, y := g.player.Target(dx, dy)
	if !m.Valid(x, y) {
		return
	}

	passable, err := m.Passable(x, y)
	if err != nil {
		return
	}
	if passable {
		g.player.Move(dx, dy)
		g.updateVisibility()
		if t := m.TransportAt(x, y); t != nil {
			g.messages.Add("You see %s here.", t.Name)
		}
		return
	}

	if m.OpenAt(x, y) {
		g.messages.Add("You open the door.")
		g.updateVisibility()
		return
	}

	name, _ := m.Name(x, y)
	g.messages.Add("You bump into %s.", name)
}

// closeAdjacentDoors closes every open door next to the player.
func (g *Game) closeAdjacentDoors() {
	m := g.level.Map
	closed := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			x, y := g.player.Target(dx, dy)
			if m.CloseAt(x, y) {
				closed++
			}
		}
	}

	switch closed {
	case 0:
		g.messages.Add("There is no open door nearby.")
	case 1:
		g.messages.Add("You close the door.")
	default:
		g.messages.Add("You close %d doors.", closed)
	}
}

// useStairs takes the stairs under the player to a freshly generated level.
func (g *Game) useStairs(ctx context.Context, up bool) {
	if !g.onStairs(up) {
		if up {
			g.messages.Add("There are no stairs leading up here.")
		} else {
			g.messages.Add("There are no stairs leading down here.")
		}
		return
	}

	depth := g.level.Depth + 1
	if up {
		depth = g.level.Depth - 1
	}
	if depth < 1 {
		g.messages.Add("The way up is sealed.")
		return
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.change_level")
	defer span.End()

	from := g.level.ID
	g.enterLevel(ctx, depth, !up)

	span.SetAttributes(
		attribute.String("level.from", from.String()),
		attribute.String("level.id", g.level.ID.String()),
		attribute.Int("level.depth", depth),
		attribute.Int("levels.visited", g.visited.Size()),
	)

	if up {
		g.messages.Add("You climb up to level %d.", depth)
	} else {
		g.messages.Add("You descend to level %d.", depth)
	}
}

// onStairs reports whether the player stands on stairs leading the given way.
// Both stairs may share a cell.
func (g *Game) onStairs(up bool) bool {
	for _, t := range g.level.Map.Transports {
		if t.X == g.player.X && t.Y == g.player.Y && t.IsUp == up {
			return true
		}
	}
	return false
}

// toggleLook enters look mode with the cursor on the player, or leaves it.
func (g *Game) toggleLook() {
	if g.state == StateLook {
		g.state = StateExplore
		return
	}
	g.state = StateLook
	g.cursorX, g.cursorY = g.player.Position()
}

// moveCursor moves the look cursor, keeping it on the map.
func (g *Game) moveCursor(dx, dy int) {
	x, y := g.cursorX+dx, g.cursorY+dy
	if g.level.Map.Valid(x, y) {
		g.cursorX, g.cursorY = x, y
	}
}

// describeCursor names what is under the look cursor, if it has been seen.
func (g *Game) describeCursor() string {
	m := g.level.Map
	cell, err := m.Cell(g.cursorX, g.cursorY)
	if err != nil || (!cell.Visible && !cell.Seen) {
		return "You don't know what is there."
	}
	if g.cursorX == g.player.X && g.cursorY == g.player.Y {
		return "That is you."
	}
	name, err := m.Name(g.cursorX, g.cursorY)
	if err != nil {
		return "You don't know what is there."
	}
	return "You see " + name + "."
}

// view collects what the renderer needs for one frame.
func (g *Game) view() ui.View {
	status := g.messages.Last()
	if g.state == StateLook {
		status = g.describeCursor()
	}
	return ui.View{
		Map:     g.level.Map,
		Player:  g.player,
		Depth:   g.level.Depth,
		Status:  status,
		Look:    g.state == StateLook,
		CursorX: g.cursorX,
		CursorY: g.cursorY,
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
