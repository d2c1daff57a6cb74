package dungeon

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrConfigInvalid is the only error kind that fails a Generate call (spec
// §7). Every other error kind the spec defines is non-fatal and carried as
// a field on the returned Metadata instead.
var ErrConfigInvalid = errors.New("dungeon: invalid config")

// RoomCountCfg bounds how many rooms RoomGenerator attempts to place
// (spec §6.1's roomCount).
type RoomCountCfg struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

// Validate checks RoomCountCfg is a usable range.
func (c *RoomCountCfg) Validate() error {
	if c.Min <= 0 {
		return fmt.Errorf("min must be > 0, got %d", c.Min)
	}
	if c.Max < c.Min {
		return fmt.Errorf("max (%d) must be >= min (%d)", c.Max, c.Min)
	}
	return nil
}

// RoomSizeCfg bounds a room's width and height and its size-bias skew
// (spec §6.1's roomSize).
type RoomSizeCfg struct {
	MinWidth  int     `yaml:"minWidth" json:"minWidth"`
	MaxWidth  int     `yaml:"maxWidth" json:"maxWidth"`
	MinHeight int     `yaml:"minHeight" json:"minHeight"`
	MaxHeight int     `yaml:"maxHeight" json:"maxHeight"`
	SizeBias  float64 `yaml:"sizeBias" json:"sizeBias"`
}

// Validate checks RoomSizeCfg is a usable range.
func (c *RoomSizeCfg) Validate() error {
	if c.MinWidth <= 0 || c.MaxWidth < c.MinWidth {
		return fmt.Errorf("invalid width range [%d, %d]", c.MinWidth, c.MaxWidth)
	}
	if c.MinHeight <= 0 || c.MaxHeight < c.MinHeight {
		return fmt.Errorf("invalid height range [%d, %d]", c.MinHeight, c.MaxHeight)
	}
	if c.SizeBias < -1.0 || c.SizeBias > 1.0 {
		return fmt.Errorf("sizeBias must be in [-1, 1], got %f", c.SizeBias)
	}
	return nil
}

// StockingCfg controls ObjectPlacer (spec §6.1's stocking config).
type StockingCfg struct {
	ObjectDensity      float64 `yaml:"objectDensity" json:"objectDensity"`
	MonsterWeight      float64 `yaml:"monsterWeight" json:"monsterWeight"`
	EmptyWeight        float64 `yaml:"emptyWeight" json:"emptyWeight"`
	FeatureWeight      float64 `yaml:"featureWeight" json:"featureWeight"`
	TrapWeight         float64 `yaml:"trapWeight" json:"trapWeight"`
	UseTemplates       bool    `yaml:"useTemplates" json:"useTemplates"`
	CorridorTrapChance float64 `yaml:"corridorTrapChance" json:"corridorTrapChance"`
}

// Validate checks StockingCfg's weights and chances are usable.
func (c *StockingCfg) Validate() error {
	if c.ObjectDensity < 0 {
		return fmt.Errorf("objectDensity must be >= 0, got %f", c.ObjectDensity)
	}
	if c.MonsterWeight < 0 || c.EmptyWeight < 0 || c.FeatureWeight < 0 || c.TrapWeight < 0 {
		return errors.New("stocking weights must be >= 0")
	}
	if c.MonsterWeight+c.EmptyWeight+c.FeatureWeight+c.TrapWeight <= 0 {
		return errors.New("at least one stocking weight must be positive")
	}
	if c.CorridorTrapChance < 0 || c.CorridorTrapChance > 1 {
		return fmt.Errorf("corridorTrapChance must be in [0, 1], got %f", c.CorridorTrapChance)
	}
	return nil
}

// Config specifies all dungeon generation parameters: the resolved
// size-preset/style/user-override merge (spec §4.10), supporting YAML
// parsing and per-section validation the same way the teacher's Config did.
type Config struct {
	// Seed is the master seed for deterministic generation. Use 0 to
	// auto-generate from current time.
	Seed uint64 `yaml:"seed" json:"seed"`

	GridWidth  int `yaml:"gridWidth" json:"gridWidth"`
	GridHeight int `yaml:"gridHeight" json:"gridHeight"`

	RoomCount RoomCountCfg `yaml:"roomCount" json:"roomCount"`
	RoomSize  RoomSizeCfg  `yaml:"roomSize" json:"roomSize"`
	Padding   int          `yaml:"padding" json:"padding"`

	CorridorWidth          int     `yaml:"corridorWidth" json:"corridorWidth"`
	CorridorStyle          string  `yaml:"corridorStyle" json:"corridorStyle"`
	WideCorridorChance     float64 `yaml:"wideCorridorChance" json:"wideCorridorChance"`
	DiagonalCorridorChance float64 `yaml:"diagonalCorridorChance" json:"diagonalCorridorChance"`

	CircleChance      float64 `yaml:"circleChance" json:"circleChance"`
	ComplexRoomChance float64 `yaml:"complexRoomChance" json:"complexRoomChance"`
	LoopChance        float64 `yaml:"loopChance" json:"loopChance"`

	DoorChance       float64 `yaml:"doorChance" json:"doorChance"`
	SecretDoorChance float64 `yaml:"secretDoorChance" json:"secretDoorChance"`

	WaterChance  float64 `yaml:"waterChance" json:"waterChance"`
	WaterColor   string  `yaml:"waterColor" json:"waterColor"`
	WaterOpacity float64 `yaml:"waterOpacity" json:"waterOpacity"`
	FloorColor   string  `yaml:"floorColor" json:"floorColor"`

	Style    string      `yaml:"style" json:"style"`
	Stocking StockingCfg `yaml:"stocking" json:"stocking"`
}

// Validate checks every configuration constraint, cascading into each
// section's own Validate, the same delegation pattern the teacher used.
func (c *Config) Validate() error {
	if c.GridWidth <= 0 || c.GridHeight <= 0 {
		return fmt.Errorf("gridWidth/gridHeight must be positive, got %dx%d", c.GridWidth, c.GridHeight)
	}
	if err := c.RoomCount.Validate(); err != nil {
		return fmt.Errorf("roomCount: %w", err)
	}
	if err := c.RoomSize.Validate(); err != nil {
		return fmt.Errorf("roomSize: %w", err)
	}
	if c.Padding < 0 {
		return fmt.Errorf("padding must be >= 0, got %d", c.Padding)
	}
	minInterior := 2*(c.Padding+1) + c.RoomSize.MinWidth
	if c.GridWidth <= minInterior || c.GridHeight <= minInterior {
		return fmt.Errorf("grid too small for padding %d and min room size %d", c.Padding, c.RoomSize.MinWidth)
	}
	if c.CorridorWidth != 1 && c.CorridorWidth != 2 {
		return fmt.Errorf("corridorWidth must be 1 or 2, got %d", c.CorridorWidth)
	}
	switch c.CorridorStyle {
	case "straight", "organic", "diagonal":
	default:
		return fmt.Errorf("corridorStyle must be one of straight, organic, diagonal, got %q", c.CorridorStyle)
	}
	if c.CircleChance < 0 || c.ComplexRoomChance < 0 || c.CircleChance+c.ComplexRoomChance > 1 {
		return fmt.Errorf("circleChance+complexRoomChance must be in [0,1], got %f+%f", c.CircleChance, c.ComplexRoomChance)
	}
	for name, p := range map[string]float64{
		"loopChance": c.LoopChance, "doorChance": c.DoorChance, "secretDoorChance": c.SecretDoorChance,
		"wideCorridorChance": c.WideCorridorChance, "diagonalCorridorChance": c.DiagonalCorridorChance,
		"waterChance": c.WaterChance, "waterOpacity": c.WaterOpacity,
	} {
		if p < 0 || p > 1 {
			return fmt.Errorf("%s must be in [0, 1], got %f", name, p)
		}
	}
	if c.WaterColor == "" || c.FloorColor == "" {
		return errors.New("waterColor and floorColor must not be empty")
	}
	if c.Style == "" {
		return errors.New("style must not be empty")
	}
	if err := c.Stocking.Validate(); err != nil {
		return fmt.Errorf("stocking: %w", err)
	}
	return nil
}

// LoadConfig reads and validates a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadConfigFromBytes(data)
}

// LoadConfigFromBytes parses YAML configuration from a byte slice.
func LoadConfigFromBytes(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = generateSeed()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigInvalid, err)
	}
	return &cfg, nil
}

// ToYAML serializes the config to YAML bytes.
func (c *Config) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// Hash computes a deterministic hash of the configuration, used to derive
// per-phase RNG seeds (pkg/rng.New's H(masterSeed, phaseName, configHash)).
func (c *Config) Hash() []byte {
	data, err := c.ToYAML()
	if err != nil {
		h := sha256.New()
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], c.Seed)
		h.Write(buf[:])
		return h.Sum(nil)
	}
	h := sha256.New()
	h.Write(data)
	return h.Sum(nil)
}

// generateSeed creates a seed from the current time for unseeded configs.
func generateSeed() uint64 {
	now := time.Now().UnixNano()
	if now < 0 {
		now = -now
	}
	seed := uint64(now)
	if seed == 0 {
		seed = 1
	}
	return seed
}
