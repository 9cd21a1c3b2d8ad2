// Package world provides the dungeon map: terrain, doors, stairs, level
// generation and the spatial queries the rest of the game asks every turn.
package world

// Sprite is the single display character of a cell or feature.
type Sprite rune

// Blank is drawn for cells that are neither visible nor remembered.
const Blank Sprite = ' '

// CellTypeID indexes a Map's cell type registry.
type CellTypeID int

// CellType describes one kind of terrain.
type CellType struct {
	Sprite      Sprite // Display character
	Passable    bool   // Can be walked on
	Transparent bool   // Can be seen through
	Name        string // Display name (e.g., "a floor")
}

// voidCellType stands in for ids that were never registered.
var voidCellType = CellType{
	Sprite:      ' ',
	Passable:    false,
	Transparent: true,
	Name:        "void",
}

// VoidCellType returns the terrain reported for unknown cell type ids.
func VoidCellType() CellType {
	return voidCellType
}

// Cell is a single grid slot.
type Cell struct {
	Type    CellTypeID
	Visible bool // Perceived this turn
	Seen    bool // Perceived at least once; never reset by the map
}

// Reveal marks the cell visible and remembered.
func (c *Cell) Reveal() {
	c.Visible = true
	c.Seen = true
}

// Hide clears the visible flag. The cell stays remembered.
func (c *Cell) Hide() {
	c.Visible = false
}
