package world

const (
	// Default map dimensions
	DefaultWidth  = 80
	DefaultHeight = 23
)

// Logger receives human-readable narration while a map is generated.
// *log.Logger satisfies it.
type Logger interface {
	Printf(format string, v ...any)
}

// Map owns the terrain grid, the cell type registry and the doors and stairs
// placed on top of it. A Map is owned by a single goroutine.
type Map struct {
	Width  int
	Height int

	CellTypes  []CellType
	Doors      []Door
	Transports []Transport

	// Logger is optional; nil discards generation narration.
	Logger Logger

	cells []Cell // Row-major, indexed x + y*Width
}

// NewMap creates a map of default cells. Negative dimensions are treated as zero.
func NewMap(width, height int) *Map {
	width, height = max(width, 0), max(height, 0)
	return &Map{
		Width:  width,
		Height: height,
		cells:  make([]Cell, width*height),
	}
}

// RegisterType appends a cell type to the registry and returns its id.
// Identical types are not deduplicated.
func (m *Map) RegisterType(cellType CellType) CellTypeID {
	m.CellTypes = append(m.CellTypes, cellType)
	return CellTypeID(len(m.CellTypes) - 1)
}

// CellType returns the registered type with the given id, or the void type
// if the id is unknown.
func (m *Map) CellType(id CellTypeID) CellType {
	if id < 0 || int(id) >= len(m.CellTypes) {
		return voidCellType
	}
	return m.CellTypes[id]
}

// CellTypeOf resolves the terrain of a cell.
func (m *Map) CellTypeOf(cell Cell) CellType {
	return m.CellType(cell.Type)
}

// Valid reports whether the position lies on the map.
func (m *Map) Valid(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// Len returns the number of cells in the grid.
func (m *Map) Len() int {
	return len(m.cells)
}

// Cell returns the cell at the given position for reading or updating its
// visibility flags.
func (m *Map) Cell(x, y int) (*Cell, error) {
	if !m.Valid(x, y) {
		return nil, &OutOfBoundsError{X: x, Y: y}
	}
	return &m.cells[x+y*m.Width], nil
}

// Fill overwrites every cell with filler.
func (m *Map) Fill(filler Cell) {
	for i := range m.cells {
		m.cells[i] = filler
	}
}

// ClearVisible hides every cell, keeping what has been seen.
func (m *Map) ClearVisible() {
	for i := range m.cells {
		m.cells[i].Hide()
	}
}

// DoorAt returns the first door at the position, or nil.
func (m *Map) DoorAt(x, y int) *Door {
	for i := range m.Doors {
		if m.Doors[i].X == x && m.Doors[i].Y == y {
			return &m.Doors[i]
		}
	}
	return nil
}

// TransportAt returns the first transport at the position, or nil.
func (m *Map) TransportAt(x, y int) *Transport {
	for i := range m.Transports {
		if m.Transports[i].X == x && m.Transports[i].Y == y {
			return &m.Transports[i]
		}
	}
	return nil
}

// FeatureAt resolves the overlay at a position. Transports take priority
// over doors.
func (m *Map) FeatureAt(x, y int) Feature {
	if t := m.TransportAt(x, y); t != nil {
		return Feature{Kind: FeatureTransport, Transport: t}
	}
	if d := m.DoorAt(x, y); d != nil {
		return Feature{Kind: FeatureDoor, Door: d}
	}
	return Feature{Kind: FeatureNone}
}

// Sprite returns what should be drawn at the position. Cells that are
// neither visible nor seen are drawn as Blank.
func (m *Map) Sprite(x, y int) (Sprite, error) {
	cell, err := m.Cell(x, y)
	if err != nil {
		return Blank, err
	}
	if !cell.Visible && !cell.Seen {
		return Blank, nil
	}

	f := m.FeatureAt(x, y)
	switch f.Kind {
	case FeatureTransport:
		return f.Transport.Sprite, nil
	case FeatureDoor:
		return f.Door.Sprite, nil
	default:
		return m.CellTypeOf(*cell).Sprite, nil
	}
}

// Name returns the display name of whatever occupies the position.
// Unlike Sprite it ignores visibility.
func (m *Map) Name(x, y int) (string, error) {
	cell, err := m.Cell(x, y)
	if err != nil {
		return "", err
	}

	f := m.FeatureAt(x, y)
	switch f.Kind {
	case FeatureTransport:
		return f.Transport.Name, nil
	case FeatureDoor:
		return f.Door.Name, nil
	default:
		return m.CellTypeOf(*cell).Name, nil
	}
}

// Transparent reports whether the position can be seen through.
// Doors are transparent only while open.
func (m *Map) Transparent(x, y int) (bool, error) {
	cell, err := m.Cell(x, y)
	if err != nil {
		return false, err
	}

	f := m.FeatureAt(x, y)
	switch f.Kind {
	case FeatureTransport:
		return true, nil
	case FeatureDoor:
		return f.Door.Opened, nil
	default:
		return m.CellTypeOf(*cell).Transparent, nil
	}
}

// Passable reports whether the position can be walked on.
// Doors are passable only while open.
func (m *Map) Passable(x, y int) (bool, error) {
	cell, err := m.Cell(x, y)
	if err != nil {
		return false, err
	}

	f := m.FeatureAt(x, y)
	switch f.Kind {
	case FeatureTransport:
		return true, nil
	case FeatureDoor:
		return f.Door.Opened, nil
	default:
		return m.CellTypeOf(*cell).Passable, nil
	}
}

// OpenAt opens any closed door at the position. It reports whether a door
// changed state.
func (m *Map) OpenAt(x, y int) bool {
	changed := false
	for i := range m.Doors {
		d := &m.Doors[i]
		if d.X == x && d.Y == y && !d.Opened {
			d.Open()
			changed = true
		}
	}
	return changed
}

// CloseAt closes any open door at the position. It reports whether a door
// changed state.
func (m *Map) CloseAt(x, y int) bool {
	changed := false
	for i := range m.Doors {
		d := &m.Doors[i]
		if d.X == x && d.Y == y && d.Opened {
			d.Close()
			changed = true
		}
	}
	return changed
}

func (m *Map) logf(format string, v ...any) {
	if m.Logger != nil {
		m.Logger.Printf(format, v...)
	}
}
