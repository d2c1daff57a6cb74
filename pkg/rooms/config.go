package rooms

import "fmt"

// Config parameterizes Monte Carlo room placement (spec §4.3).
type Config struct {
	GridWidth  int
	GridHeight int

	// CountMin/CountMax bound the uniform draw for how many rooms to
	// attempt to place.
	CountMin int
	CountMax int

	// Padding is the minimum empty-cell gap required between any two
	// rooms' bounding boxes, and (padding+1) is the minimum gap required
	// between a room's bounding box and the grid edge.
	Padding int

	// SizeMin/SizeMax bound a room's width and height (sampled
	// independently per axis for rectangles; halved for circle radius).
	SizeMin int
	SizeMax int

	// SizeBias skews the size draw per pkg/rng's BiasedInt, in [-1, 1].
	SizeBias float64

	// CircleChance and ComplexRoomChance are cumulative thresholds against
	// a single uniform draw: circle first, then composite, else rectangle.
	CircleChance      float64
	ComplexRoomChance float64
}

// Validate checks the config has values a generator can act on.
func (c *Config) Validate() error {
	if c.GridWidth <= 0 || c.GridHeight <= 0 {
		return fmt.Errorf("rooms: grid dimensions must be positive, got %dx%d", c.GridWidth, c.GridHeight)
	}
	if c.CountMin <= 0 || c.CountMax < c.CountMin {
		return fmt.Errorf("rooms: invalid room count range [%d, %d]", c.CountMin, c.CountMax)
	}
	if c.Padding < 0 {
		return fmt.Errorf("rooms: padding must be >= 0, got %d", c.Padding)
	}
	if c.SizeMin <= 0 || c.SizeMax < c.SizeMin {
		return fmt.Errorf("rooms: invalid room size range [%d, %d]", c.SizeMin, c.SizeMax)
	}
	if c.CircleChance < 0 || c.ComplexRoomChance < 0 || c.CircleChance+c.ComplexRoomChance > 1 {
		return fmt.Errorf("rooms: circleChance+complexRoomChance must be in [0,1], got %f+%f",
			c.CircleChance, c.ComplexRoomChance)
	}
	minInterior := 2 * (c.Padding + 1)
	if c.GridWidth <= minInterior+c.SizeMin || c.GridHeight <= minInterior+c.SizeMin {
		return fmt.Errorf("rooms: grid too small for padding %d and min size %d", c.Padding, c.SizeMin)
	}
	return nil
}
