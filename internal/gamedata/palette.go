package gamedata

import "github.com/gdamore/tcell/v2"

// ColorDef assigns a colour to everything displayed under a name.
type ColorDef struct {
	Name  string `json:"name"`  // Display name from the map (e.g., "a brick wall")
	Color string `json:"color"` // Hex color code (e.g., "#B5523B")
	Bold  bool   `json:"bold"`
}

// PaletteFile represents the structure of palette.json.
type PaletteFile struct {
	Entries    []ColorDef `json:"entries"`
	Fallback   string     `json:"fallback"`   // Names without an entry
	Remembered string     `json:"remembered"` // Seen but not currently visible cells
	Player     string     `json:"player"`
	Cursor     string     `json:"cursor"` // Look mode cursor
}

// Palette maps display names to terminal styles.
type Palette struct {
	entries    map[string]ColorDef
	styles     map[string]tcell.Style
	fallback   tcell.Style
	remembered tcell.Style
	player     tcell.Style
	cursor     tcell.Style
}

// NewPalette builds a palette from loaded colour definitions.
// Unparseable colours fall back to white.
func NewPalette(file PaletteFile) *Palette {
	p := &Palette{
		entries:    make(map[string]ColorDef, len(file.Entries)),
		styles:     make(map[string]tcell.Style, len(file.Entries)),
		fallback:   foreground(file.Fallback, false),
		remembered: foreground(file.Remembered, false),
		player:     foreground(file.Player, true),
		cursor:     tcell.StyleDefault.Reverse(true).Foreground(colorOrWhite(file.Cursor)),
	}
	for _, def := range file.Entries {
		p.entries[def.Name] = def
		p.styles[def.Name] = foreground(def.Color, def.Bold)
	}
	return p
}

// LoadPalette loads the palette from the embedded palette.json.
func LoadPalette() (*Palette, error) {
	file, err := Load[PaletteFile]("palette.json")
	if err != nil {
		return nil, err
	}
	return NewPalette(file), nil
}

// MustLoadPalette loads the palette, panicking on error.
func MustLoadPalette() *Palette {
	palette, err := LoadPalette()
	if err != nil {
		panic(err)
	}
	return palette
}

// Style returns the style for a display name.
func (p *Palette) Style(name string) tcell.Style {
	if style, ok := p.styles[name]; ok {
		return style
	}
	return p.fallback
}

// Hex returns the hex colour for a display name, or "" if it has no entry.
func (p *Palette) Hex(name string) string {
	return p.entries[name].Color
}

// Bold reports whether a display name is drawn bold.
func (p *Palette) Bold(name string) bool {
	return p.entries[name].Bold
}

// Remembered returns the style for cells that are seen but not visible.
func (p *Palette) Remembered() tcell.Style {
	return p.remembered
}

// Player returns the style for the player glyph.
func (p *Palette) Player() tcell.Style {
	return p.player
}

// Cursor returns the style for the look mode cursor.
func (p *Palette) Cursor() tcell.Style {
	return p.cursor
}

func foreground(hex string, bold bool) tcell.Style {
	return tcell.StyleDefault.Foreground(colorOrWhite(hex)).Bold(bold)
}

func colorOrWhite(hex string) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}
