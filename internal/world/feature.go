package world

const (
	// DoorClosedSprite is drawn for a closed door.
	DoorClosedSprite Sprite = '+'
	// DoorOpenedSprite is drawn for an opened door.
	DoorOpenedSprite Sprite = '-'
	// UpstairsSprite is drawn for a transport leading up.
	UpstairsSprite Sprite = '<'
	// DownstairsSprite is drawn for a transport leading down.
	DownstairsSprite Sprite = '>'

	doorName = "a door"
)

// Door is a stateful point feature. Only its open state changes after creation.
type Door struct {
	X, Y   int
	Opened bool
	Sprite Sprite
	Name   string
}

// NewDoor creates a closed door at the given position.
func NewDoor(x, y int) Door {
	return Door{
		X:      x,
		Y:      y,
		Sprite: DoorClosedSprite,
		Name:   doorName,
	}
}

// Open opens the door.
func (d *Door) Open() {
	d.Opened = true
	d.Sprite = DoorOpenedSprite
}

// Close closes the door.
func (d *Door) Close() {
	d.Opened = false
	d.Sprite = DoorClosedSprite
}

// Transport is a level transition point. It is always passable and transparent.
type Transport struct {
	X, Y   int
	IsUp   bool
	Sprite Sprite
	Name   string
}

// NewTransport creates stairs at the given position.
func NewTransport(x, y int, isUp bool, name string) Transport {
	sprite := DownstairsSprite
	if isUp {
		sprite = UpstairsSprite
	}
	return Transport{
		X:      x,
		Y:      y,
		IsUp:   isUp,
		Sprite: sprite,
		Name:   name,
	}
}

// FeatureKind tags what, if anything, overlays the terrain of a cell.
type FeatureKind int

const (
	FeatureNone FeatureKind = iota
	FeatureDoor
	FeatureTransport
)

// Feature is the overlay resolved for one cell. Exactly one of Door and
// Transport is set when Kind is not FeatureNone.
type Feature struct {
	Kind      FeatureKind
	Door      *Door
	Transport *Transport
}
