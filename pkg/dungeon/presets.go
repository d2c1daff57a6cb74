package dungeon

import "fmt"

// sizePresets is the base configuration for each named size (spec §6.1's
// size preset vocabulary: small, medium, large). Style and user overrides
// are layered on top, right-most wins (spec §4.10).
var sizePresets = map[string]Config{
	"small": {
		GridWidth: 40, GridHeight: 40,
		RoomCount: RoomCountCfg{Min: 3, Max: 5},
		RoomSize:  RoomSizeCfg{MinWidth: 4, MaxWidth: 8, MinHeight: 4, MaxHeight: 8},
		Padding:   1,

		CorridorWidth: 1, CorridorStyle: "straight",
		WideCorridorChance: 0.0, DiagonalCorridorChance: 0.0,

		CircleChance: 0.10, ComplexRoomChance: 0.10, LoopChance: 0.15,

		DoorChance: 0.80, SecretDoorChance: 0.05,

		WaterChance: 0.10, WaterColor: "#3a6ea5", WaterOpacity: 0.6,
		FloorColor: "#cbb994",

		Stocking: StockingCfg{
			ObjectDensity: 1.0, MonsterWeight: 3, EmptyWeight: 2, FeatureWeight: 2, TrapWeight: 1,
			UseTemplates: true, CorridorTrapChance: 0.1,
		},
	},
	"medium": {
		GridWidth: 70, GridHeight: 70,
		RoomCount: RoomCountCfg{Min: 8, Max: 14},
		RoomSize:  RoomSizeCfg{MinWidth: 5, MaxWidth: 10, MinHeight: 5, MaxHeight: 10},
		Padding:   1,

		CorridorWidth: 1, CorridorStyle: "straight",
		WideCorridorChance: 0.15, DiagonalCorridorChance: 0.0,

		CircleChance: 0.15, ComplexRoomChance: 0.15, LoopChance: 0.20,

		DoorChance: 0.80, SecretDoorChance: 0.05,

		WaterChance: 0.12, WaterColor: "#3a6ea5", WaterOpacity: 0.6,
		FloorColor: "#cbb994",

		Stocking: StockingCfg{
			ObjectDensity: 1.0, MonsterWeight: 3, EmptyWeight: 2, FeatureWeight: 2, TrapWeight: 1,
			UseTemplates: true, CorridorTrapChance: 0.1,
		},
	},
	"large": {
		GridWidth: 100, GridHeight: 100,
		RoomCount: RoomCountCfg{Min: 18, Max: 28},
		RoomSize:  RoomSizeCfg{MinWidth: 6, MaxWidth: 14, MinHeight: 6, MaxHeight: 14},
		Padding:   2,

		CorridorWidth: 1, CorridorStyle: "straight",
		WideCorridorChance: 0.20, DiagonalCorridorChance: 0.10,

		CircleChance: 0.15, ComplexRoomChance: 0.20, LoopChance: 0.25,

		DoorChance: 0.80, SecretDoorChance: 0.05,

		WaterChance: 0.12, WaterColor: "#3a6ea5", WaterOpacity: 0.6,
		FloorColor: "#cbb994",

		Stocking: StockingCfg{
			ObjectDensity: 1.0, MonsterWeight: 3, EmptyWeight: 2, FeatureWeight: 2, TrapWeight: 1,
			UseTemplates: true, CorridorTrapChance: 0.1,
		},
	},
}

// Overrides layers optional field changes onto a resolved Config. A nil
// field means "inherit from the base"; this lets a zero value (e.g.
// doorChance: 0 for cavern) be expressed unambiguously, which a
// plain-struct merge could not distinguish from "unset".
type Overrides struct {
	Seed *uint64

	GridWidth, GridHeight *int

	RoomCountMin, RoomCountMax                             *int
	RoomSizeMinWidth, RoomSizeMaxWidth                      *int
	RoomSizeMinHeight, RoomSizeMaxHeight                    *int
	RoomSizeBias                                            *float64
	Padding                                                 *int

	CorridorWidth          *int
	CorridorStyle          *string
	WideCorridorChance     *float64
	DiagonalCorridorChance *float64

	CircleChance      *float64
	ComplexRoomChance *float64
	LoopChance        *float64

	DoorChance       *float64
	SecretDoorChance *float64

	WaterChance  *float64
	WaterColor   *string
	WaterOpacity *float64
	FloorColor   *string

	Stocking *StockingOverrides
}

// StockingOverrides is the Overrides counterpart for StockingCfg.
type StockingOverrides struct {
	ObjectDensity      *float64
	MonsterWeight      *float64
	EmptyWeight        *float64
	FeatureWeight      *float64
	TrapWeight         *float64
	UseTemplates       *bool
	CorridorTrapChance *float64
}

// styleOverrides gives each named style its tuning deltas over the size
// preset (spec §6.1: "styles... supply an overrides map affecting the
// shape mix, corridor style, door rates, water rate, and room-size bias").
// The exact numeric values are an implementation choice per spec §6.1's
// "form part of the interface contract only insofar as callers select a
// style by name" — classic is the baseline (no overrides), the other three
// each push the shape/corridor/door mix in the style's thematic direction.
var styleOverrides = map[string]Overrides{
	"classic": {},
	"cavern": {
		CircleChance:      f64p(0.60),
		ComplexRoomChance: f64p(0.05),
		RoomSizeBias:      f64p(0.3),
		CorridorStyle:     strp("organic"),
		DoorChance:        f64p(0.0),
		SecretDoorChance:  f64p(0.0),
		WaterChance:       f64p(0.35),
	},
	"fortress": {
		CircleChance:       f64p(0.0),
		ComplexRoomChance:  f64p(0.25),
		RoomSizeBias:       f64p(-0.1),
		CorridorStyle:      strp("straight"),
		WideCorridorChance: f64p(0.65),
		DoorChance:         f64p(0.95),
		SecretDoorChance:   f64p(0.10),
		WaterChance:        f64p(0.02),
	},
	"crypt": {
		CircleChance:      f64p(0.05),
		ComplexRoomChance: f64p(0.30),
		RoomSizeBias:      f64p(-0.05),
		CorridorStyle:     strp("straight"),
		DoorChance:        f64p(0.70),
		SecretDoorChance:  f64p(0.15),
		WaterChance:       f64p(0.05),
	},
}

func f64p(v float64) *float64 { return &v }
func strp(v string) *string   { return &v }

// Resolve merges base_preset ∪ style_overrides ∪ user_overrides (spec
// §4.10), right-most wins, and validates the result.
func Resolve(presetName, styleName string, userOverrides *Overrides) (Config, error) {
	base, ok := sizePresets[presetName]
	if !ok {
		return Config{}, fmt.Errorf("%w: unknown size preset %q", ErrConfigInvalid, presetName)
	}
	so, ok := styleOverrides[styleName]
	if !ok {
		return Config{}, fmt.Errorf("%w: unknown style %q", ErrConfigInvalid, styleName)
	}

	cfg := applyOverrides(base, so)
	cfg.Style = styleName
	if userOverrides != nil {
		cfg = applyOverrides(cfg, *userOverrides)
	}
	if cfg.Seed == 0 {
		cfg.Seed = generateSeed()
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrConfigInvalid, err)
	}
	return cfg, nil
}

// applyOverrides layers o onto base, field by field.
func applyOverrides(base Config, o Overrides) Config {
	c := base
	if o.Seed != nil {
		c.Seed = *o.Seed
	}
	if o.GridWidth != nil {
		c.GridWidth = *o.GridWidth
	}
	if o.GridHeight != nil {
		c.GridHeight = *o.GridHeight
	}
	if o.RoomCountMin != nil {
		c.RoomCount.Min = *o.RoomCountMin
	}
	if o.RoomCountMax != nil {
		c.RoomCount.Max = *o.RoomCountMax
	}
	if o.RoomSizeMinWidth != nil {
		c.RoomSize.MinWidth = *o.RoomSizeMinWidth
	}
	if o.RoomSizeMaxWidth != nil {
		c.RoomSize.MaxWidth = *o.RoomSizeMaxWidth
	}
	if o.RoomSizeMinHeight != nil {
		c.RoomSize.MinHeight = *o.RoomSizeMinHeight
	}
	if o.RoomSizeMaxHeight != nil {
		c.RoomSize.MaxHeight = *o.RoomSizeMaxHeight
	}
	if o.RoomSizeBias != nil {
		c.RoomSize.SizeBias = *o.RoomSizeBias
	}
	if o.Padding != nil {
		c.Padding = *o.Padding
	}
	if o.CorridorWidth != nil {
		c.CorridorWidth = *o.CorridorWidth
	}
	if o.CorridorStyle != nil {
		c.CorridorStyle = *o.CorridorStyle
	}
	if o.WideCorridorChance != nil {
		c.WideCorridorChance = *o.WideCorridorChance
	}
	if o.DiagonalCorridorChance != nil {
		c.DiagonalCorridorChance = *o.DiagonalCorridorChance
	}
	if o.CircleChance != nil {
		c.CircleChance = *o.CircleChance
	}
	if o.ComplexRoomChance != nil {
		c.ComplexRoomChance = *o.ComplexRoomChance
	}
	if o.LoopChance != nil {
		c.LoopChance = *o.LoopChance
	}
	if o.DoorChance != nil {
		c.DoorChance = *o.DoorChance
	}
	if o.SecretDoorChance != nil {
		c.SecretDoorChance = *o.SecretDoorChance
	}
	if o.WaterChance != nil {
		c.WaterChance = *o.WaterChance
	}
	if o.WaterColor != nil {
		c.WaterColor = *o.WaterColor
	}
	if o.WaterOpacity != nil {
		c.WaterOpacity = *o.WaterOpacity
	}
	if o.FloorColor != nil {
		c.FloorColor = *o.FloorColor
	}
	if o.Stocking != nil {
		s := o.Stocking
		if s.ObjectDensity != nil {
			c.Stocking.ObjectDensity = *s.ObjectDensity
		}
		if s.MonsterWeight != nil {
			c.Stocking.MonsterWeight = *s.MonsterWeight
		}
		if s.EmptyWeight != nil {
			c.Stocking.EmptyWeight = *s.EmptyWeight
		}
		if s.FeatureWeight != nil {
			c.Stocking.FeatureWeight = *s.FeatureWeight
		}
		if s.TrapWeight != nil {
			c.Stocking.TrapWeight = *s.TrapWeight
		}
		if s.UseTemplates != nil {
			c.Stocking.UseTemplates = *s.UseTemplates
		}
		if s.CorridorTrapChance != nil {
			c.Stocking.CorridorTrapChance = *s.CorridorTrapChance
		}
	}
	return c
}
