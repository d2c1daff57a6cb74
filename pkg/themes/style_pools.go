package themes

// WeightedEntry represents an entry with a selection weight, the unit every
// style pool and template is built from.
type WeightedEntry struct {
	Type   string
	Weight int
}

// StylePool is one of the four size-preset-independent style vocabularies:
// classic, cavern, fortress, crypt (spec §6.1, §6.3). Each pool supplies
// the weighted object types ObjectPlacer draws from for a given category,
// plus the shore-object pool used by water rooms.
type StylePool struct {
	Monsters  []WeightedEntry
	Features  []WeightedEntry
	Traps     []WeightedEntry
	Treasure  []WeightedEntry
	Shore     []WeightedEntry
	AquaticOK bool // whether this style rolls an aquatic monster in water rooms
}

// Styles is the fixed vocabulary of style names this module supports.
var Styles = map[string]StylePool{
	"classic": {
		Monsters: []WeightedEntry{
			{Type: "monster", Weight: 5}, {Type: "guard", Weight: 2}, {Type: "boss", Weight: 1},
		},
		Features: []WeightedEntry{
			{Type: "table", Weight: 3}, {Type: "chair", Weight: 3}, {Type: "bed", Weight: 2},
			{Type: "statue", Weight: 2}, {Type: "book", Weight: 1},
		},
		Traps: []WeightedEntry{
			{Type: "trap", Weight: 3}, {Type: "pit", Weight: 1},
		},
		Treasure: []WeightedEntry{
			{Type: "chest", Weight: 4}, {Type: "sack", Weight: 2}, {Type: "crate", Weight: 1},
		},
		Shore: []WeightedEntry{
			{Type: "chest", Weight: 2}, {Type: "monster", Weight: 2}, {Type: "sack", Weight: 1},
		},
		AquaticOK: false,
	},
	"cavern": {
		Monsters: []WeightedEntry{
			{Type: "monster", Weight: 6}, {Type: "boss-alt", Weight: 1},
		},
		Features: []WeightedEntry{
			{Type: "plant", Weight: 4}, {Type: "flower", Weight: 2}, {Type: "cage", Weight: 1},
		},
		Traps: []WeightedEntry{
			{Type: "pit", Weight: 3}, {Type: "hazard", Weight: 2}, {Type: "poison", Weight: 1},
		},
		Treasure: []WeightedEntry{
			{Type: "sack", Weight: 3}, {Type: "crate", Weight: 1},
		},
		Shore: []WeightedEntry{
			{Type: "monster", Weight: 3}, {Type: "sack", Weight: 2}, {Type: "chest", Weight: 1},
		},
		AquaticOK: true,
	},
	"fortress": {
		Monsters: []WeightedEntry{
			{Type: "guard", Weight: 6}, {Type: "monster", Weight: 2}, {Type: "boss", Weight: 1},
		},
		Features: []WeightedEntry{
			{Type: "anvil", Weight: 3}, {Type: "table", Weight: 2}, {Type: "chair", Weight: 2},
			{Type: "statue", Weight: 1},
		},
		Traps: []WeightedEntry{
			{Type: "trap", Weight: 4}, {Type: "hazard", Weight: 1},
		},
		Treasure: []WeightedEntry{
			{Type: "chest", Weight: 5}, {Type: "crate", Weight: 2},
		},
		Shore: []WeightedEntry{
			{Type: "chest", Weight: 2}, {Type: "monster", Weight: 1},
		},
		AquaticOK: false,
	},
	"crypt": {
		Monsters: []WeightedEntry{
			{Type: "monster", Weight: 4}, {Type: "boss", Weight: 1}, {Type: "boss-alt", Weight: 1},
		},
		Features: []WeightedEntry{
			{Type: "coffin", Weight: 4}, {Type: "altar", Weight: 2}, {Type: "cauldron", Weight: 1},
			{Type: "cage", Weight: 1},
		},
		Traps: []WeightedEntry{
			{Type: "trap", Weight: 2}, {Type: "poison", Weight: 2}, {Type: "pit", Weight: 1},
		},
		Treasure: []WeightedEntry{
			{Type: "chest", Weight: 3}, {Type: "sack", Weight: 1},
		},
		Shore: []WeightedEntry{
			{Type: "monster", Weight: 2}, {Type: "chest", Weight: 1},
		},
		AquaticOK: false,
	},
}

// IslandFeatures is the pool a water room's center island draws from
// (spec §4.9 "water rooms"): fountain or statue.
var IslandFeatures = []WeightedEntry{
	{Type: "fountain", Weight: 1}, {Type: "statue", Weight: 1},
}

// Template is a named object-placement recipe (spec §4.9 "Templates"):
// Library, Storage, Shrine, Barracks, Treasury, Guard Room.
type Template struct {
	Name        string
	MinRoomSize int
	Entries     []TemplateEntry
}

// TemplateEntry is one (type, count range, zone) triple within a Template.
type TemplateEntry struct {
	Type     string
	MinCount int
	MaxCount int
	Zone     string // preferred zone; falls back to "scattered"
}

// Templates is the fixed set of feature-category room templates.
var Templates = []Template{
	{
		Name: "Library", MinRoomSize: 9,
		Entries: []TemplateEntry{
			{Type: "book", MinCount: 2, MaxCount: 5, Zone: "wall"},
			{Type: "table", MinCount: 1, MaxCount: 2, Zone: "center"},
			{Type: "chair", MinCount: 1, MaxCount: 3, Zone: "center"},
		},
	},
	{
		Name: "Storage", MinRoomSize: 9,
		Entries: []TemplateEntry{
			{Type: "crate", MinCount: 3, MaxCount: 6, Zone: "wall"},
			{Type: "sack", MinCount: 1, MaxCount: 3, Zone: "corner"},
		},
	},
	{
		Name: "Shrine", MinRoomSize: 9,
		Entries: []TemplateEntry{
			{Type: "altar", MinCount: 1, MaxCount: 1, Zone: "center"},
			{Type: "statue", MinCount: 1, MaxCount: 2, Zone: "corner"},
			{Type: "flower", MinCount: 0, MaxCount: 2, Zone: "wall"},
		},
	},
	{
		Name: "Barracks", MinRoomSize: 9,
		Entries: []TemplateEntry{
			{Type: "bed", MinCount: 2, MaxCount: 4, Zone: "wall"},
			{Type: "guard", MinCount: 1, MaxCount: 2, Zone: "scattered"},
			{Type: "table", MinCount: 0, MaxCount: 1, Zone: "center"},
		},
	},
	{
		Name: "Treasury", MinRoomSize: 9,
		Entries: []TemplateEntry{
			{Type: "chest", MinCount: 2, MaxCount: 4, Zone: "corner"},
			{Type: "guard", MinCount: 1, MaxCount: 2, Zone: "scattered"},
		},
	},
	{
		Name: "Guard Room", MinRoomSize: 9,
		Entries: []TemplateEntry{
			{Type: "guard", MinCount: 2, MaxCount: 3, Zone: "scattered"},
			{Type: "table", MinCount: 1, MaxCount: 1, Zone: "center"},
			{Type: "chair", MinCount: 2, MaxCount: 2, Zone: "center"},
		},
	},
}
