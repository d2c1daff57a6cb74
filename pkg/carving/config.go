package carving

// Config controls corridor routing for a single generation run (spec
// §6.1's corridorWidth, corridorStyle, wideCorridorChance,
// diagonalCorridorChance fields).
type Config struct {
	// Width is the base corridor width in cells, 1 or 2.
	Width int
	// WideChance is the probability a width-1 corridor is widened to 2.
	WideChance float64
	// Style selects the centerline treatment: "straight", "organic", or
	// "diagonal".
	Style string
	// DiagonalChance is the probability an eligible connection is routed
	// diagonally instead of as an L/Z path. Always attempted when Style is
	// "diagonal".
	DiagonalChance float64
}

const (
	StyleStraight = "straight"
	StyleOrganic  = "organic"
	StyleDiagonal = "diagonal"
)
