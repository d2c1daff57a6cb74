package dungeon

import "github.com/dshills/dungo/pkg/grid"

// Cell is one output grid cell (spec §3, §6.2): a full fill when Segments
// is nil, a partial fill via the named wedges otherwise. Opacity is
// omitted from JSON when it is zero (the wire format's `opacity?` field);
// HasOpacity is not serialized and does not affect that choice.
type Cell struct {
	X          int          `json:"x" yaml:"x"`
	Y          int          `json:"y" yaml:"y"`
	Color      string       `json:"color" yaml:"color"`
	Opacity    float64      `json:"opacity,omitempty" yaml:"opacity,omitempty"`
	HasOpacity bool         `json:"-" yaml:"-"`
	Segments   []grid.Wedge `json:"segments,omitempty" yaml:"segments,omitempty"`
}

// Alignment positions an object sprite within its cell or on a wall edge
// (spec §3's Object.alignment vocabulary).
type Alignment string

// Object is one placed object (spec §3, §6.2): doors, stairs, and every
// thematic type from §6.3, unified into a single wire shape.
type Object struct {
	ID            int       `json:"id" yaml:"id"`
	Type          string    `json:"type" yaml:"type"`
	Position      grid.Point `json:"position" yaml:"position"`
	Alignment     Alignment `json:"alignment" yaml:"alignment"`
	Scale         float64   `json:"scale" yaml:"scale"`
	Rotation      float64   `json:"rotation" yaml:"rotation"`
	Label         string    `json:"label,omitempty" yaml:"label,omitempty"`
	CustomTooltip string    `json:"customTooltip,omitempty" yaml:"customTooltip,omitempty"`
}

// RoomMeta is the metadata record retained for one room: enough geometry
// to reconstruct a grid.Room for Restock, plus the category ObjectPlacer
// rolled for it (a supplemented feature, spec SPEC_FULL "Room archetyping
// for stocking context", so a re-roll can keep a consistent room
// description across reroll calls even when the category itself changes).
type RoomMeta struct {
	ID            int        `json:"id" yaml:"id"`
	X             int        `json:"x" yaml:"x"`
	Y             int        `json:"y" yaml:"y"`
	Width         int        `json:"width" yaml:"width"`
	Height        int        `json:"height" yaml:"height"`
	Shape         string     `json:"shape" yaml:"shape"`
	CompositeKind string     `json:"compositeKind,omitempty" yaml:"compositeKind,omitempty"`
	Parts         []grid.Rect `json:"parts,omitempty" yaml:"parts,omitempty"`
	Isolated      bool       `json:"isolated,omitempty" yaml:"isolated,omitempty"`
	Category      string     `json:"category,omitempty" yaml:"category,omitempty"`
}

// CorridorMeta is the metadata record retained for one corridor (spec
// §6.2's corridorResult).
type CorridorMeta struct {
	A            int  `json:"a" yaml:"a"`
	B            int  `json:"b" yaml:"b"`
	Width        int  `json:"width" yaml:"width"`
	HasDiagonals bool `json:"hasDiagonals" yaml:"hasDiagonals"`
	Dirty        bool `json:"dirty,omitempty" yaml:"dirty,omitempty"`
}

// DoorMeta is the metadata record retained for one door position (spec
// §6.2's doorPositions).
type DoorMeta struct {
	RoomID int        `json:"roomId" yaml:"roomId"`
	Position grid.Point `json:"position" yaml:"position"`
	Type   string     `json:"type" yaml:"type"`
}

// Metadata is the record retained with the artifact for re-stocking (spec
// §3 "Metadata", §6.2).
type Metadata struct {
	Rooms       []RoomMeta     `json:"rooms" yaml:"rooms"`
	Connections []ConnMeta     `json:"connections" yaml:"connections"`

	GridWidth  int `json:"gridWidth" yaml:"gridWidth"`
	GridHeight int `json:"gridHeight" yaml:"gridHeight"`

	RequestedRoomCount int `json:"requestedRoomCount" yaml:"requestedRoomCount"`
	RoomCount          int `json:"roomCount" yaml:"roomCount"`
	DoorCount          int `json:"doorCount" yaml:"doorCount"`
	SecretDoorCount    int `json:"secretDoorCount" yaml:"secretDoorCount"`

	HasWideCorridors     bool `json:"hasWideCorridors" yaml:"hasWideCorridors"`
	HasDiagonalCorridors bool `json:"hasDiagonalCorridors" yaml:"hasDiagonalCorridors"`

	EntryRoomID  int   `json:"entryRoomId" yaml:"entryRoomId"`
	ExitRoomID   int   `json:"exitRoomId" yaml:"exitRoomId"`
	WaterRoomIDs []int `json:"waterRoomIds" yaml:"waterRoomIds"`

	CorridorResult []CorridorMeta `json:"corridorResult" yaml:"corridorResult"`
	DoorPositions  []DoorMeta     `json:"doorPositions" yaml:"doorPositions"`

	Style string `json:"style" yaml:"style"`

	// RoomTargetUnderfilled and IsolatedRoomIDs carry the non-fatal error
	// kinds of spec §7 that don't have a more natural home above; a dirty
	// corridor is flagged per corridor by CorridorMeta.Dirty.
	RoomTargetUnderfilled bool  `json:"roomTargetUnderfilled,omitempty" yaml:"roomTargetUnderfilled,omitempty"`
	IsolatedRoomIDs       []int `json:"isolatedRoomIds,omitempty" yaml:"isolatedRoomIds,omitempty"`
}

// ConnMeta is the metadata record for one connection-graph edge.
type ConnMeta struct {
	A int `json:"a" yaml:"a"`
	B int `json:"b" yaml:"b"`
}

// Artifact is the complete output of a Generate call (spec §6.2): the
// merged cell map, the placed objects, and the re-stock metadata.
type Artifact struct {
	Cells    []Cell   `json:"cells" yaml:"cells"`
	Objects  []Object `json:"objects" yaml:"objects"`
	Metadata Metadata `json:"metadata" yaml:"metadata"`
}
