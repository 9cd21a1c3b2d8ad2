package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/samdwyer/dungeonmap/internal/entity"
	"github.com/samdwyer/dungeonmap/internal/gamedata"
	"github.com/samdwyer/dungeonmap/internal/world"
)

// View is everything drawn in one frame.
type View struct {
	Map    *world.Map
	Player *entity.Player
	Depth  int
	Status string // Shown on the line below the map

	Look             bool // Draw the look cursor
	CursorX, CursorY int
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen  *Screen
	palette *gamedata.Palette
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, palette *gamedata.Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// Render draws the map, the player and the status line.
func (r *Renderer) Render(v View) {
	r.screen.Clear()

	m := v.Map
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			sprite, style, ok := r.cellGlyph(m, x, y)
			if ok {
				r.screen.SetContent(x, y, rune(sprite), style)
			}
		}
	}

	r.screen.SetContent(v.Player.X, v.Player.Y, v.Player.Symbol, r.palette.Player())

	if v.Look {
		r.drawCursor(m, v)
	}

	r.RenderMessage(statusLine(v), m.Height)
	r.screen.Show()
}

// cellGlyph resolves what to draw for a map position. ok is false for
// cells hidden by fog.
func (r *Renderer) cellGlyph(m *world.Map, x, y int) (world.Sprite, tcell.Style, bool) {
	sprite, err := m.Sprite(x, y)
	if err != nil || sprite == world.Blank {
		return world.Blank, tcell.StyleDefault, false
	}

	cell, _ := m.Cell(x, y)
	if !cell.Visible {
		return sprite, r.palette.Remembered(), true
	}

	name, _ := m.Name(x, y)
	return sprite, r.palette.Style(name), true
}

// drawCursor highlights the look cursor, keeping whatever glyph is under it.
func (r *Renderer) drawCursor(m *world.Map, v View) {
	ch := ' '
	if v.CursorX == v.Player.X && v.CursorY == v.Player.Y {
		ch = v.Player.Symbol
	} else if sprite, _, ok := r.cellGlyph(m, v.CursorX, v.CursorY); ok {
		ch = rune(sprite)
	}
	r.screen.SetContent(v.CursorX, v.CursorY, ch, r.palette.Cursor())
}

func statusLine(v View) string {
	return fmt.Sprintf("L%d %s", v.Depth, v.Status)
}

// RenderMessage displays a message on row y, truncated to the screen width.
func (r *Renderer) RenderMessage(msg string, y int) {
	width, _ := r.screen.Size()
	msg = runewidth.Truncate(msg, width, "…")
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	r.screen.DrawText(0, y, msg, style)
}
