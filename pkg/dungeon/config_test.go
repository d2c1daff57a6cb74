package dungeon

import (
	"strings"
	"testing"
)

func validConfig() Config {
	return Config{
		Seed: 1, GridWidth: 40, GridHeight: 40,
		RoomCount: RoomCountCfg{Min: 3, Max: 5},
		RoomSize:  RoomSizeCfg{MinWidth: 4, MaxWidth: 8, MinHeight: 4, MaxHeight: 8},
		Padding:   1,

		CorridorWidth: 1, CorridorStyle: "straight",
		CircleChance: 0.1, ComplexRoomChance: 0.1, LoopChance: 0.15,
		DoorChance: 0.8, SecretDoorChance: 0.05,
		WaterChance: 0.1, WaterColor: "#3a6ea5", WaterOpacity: 0.6, FloorColor: "#cbb994",
		Style: "classic",
		Stocking: StockingCfg{
			ObjectDensity: 1.0, MonsterWeight: 3, EmptyWeight: 2, FeatureWeight: 2, TrapWeight: 1,
			CorridorTrapChance: 0.1,
		},
	}
}

func TestConfig_ValidateAcceptsWellFormedConfig(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config to pass, got %v", err)
	}
}

func TestConfig_ValidateRejectsBadRoomCount(t *testing.T) {
	cfg := validConfig()
	cfg.RoomCount = RoomCountCfg{Min: 5, Max: 3}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for roomCount.min > roomCount.max")
	}
}

func TestConfig_ValidateRejectsGridTooSmall(t *testing.T) {
	cfg := validConfig()
	cfg.GridWidth = 4
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for grid too small to hold padding+min room size")
	}
}

func TestConfig_ValidateRejectsUnknownCorridorStyle(t *testing.T) {
	cfg := validConfig()
	cfg.CorridorStyle = "zigzag"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown corridorStyle")
	}
}

func TestConfig_ValidateRejectsOutOfRangeChance(t *testing.T) {
	cfg := validConfig()
	cfg.DoorChance = 1.5
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for doorChance > 1")
	}
}

func TestConfig_ValidateRejectsZeroStockingWeights(t *testing.T) {
	cfg := validConfig()
	cfg.Stocking = StockingCfg{CorridorTrapChance: 0.1}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for all-zero stocking weights")
	}
}

func TestConfig_HashIsDeterministicAndSeedSensitive(t *testing.T) {
	a := validConfig()
	b := validConfig()
	if string(a.Hash()) != string(b.Hash()) {
		t.Error("expected identical configs to hash identically")
	}
	b.Seed = 2
	if string(a.Hash()) == string(b.Hash()) {
		t.Error("expected different seeds to hash differently")
	}
}

func TestConfig_ToYAMLRoundTrips(t *testing.T) {
	cfg := validConfig()
	data, err := cfg.ToYAML()
	if err != nil {
		t.Fatalf("ToYAML failed: %v", err)
	}
	loaded, err := LoadConfigFromBytes(data)
	if err != nil {
		t.Fatalf("LoadConfigFromBytes failed: %v", err)
	}
	if loaded.GridWidth != cfg.GridWidth || loaded.Style != cfg.Style {
		t.Errorf("round-tripped config does not match original: %+v vs %+v", loaded, cfg)
	}
}

func TestLoadConfigFromBytes_RejectsInvalidConfig(t *testing.T) {
	_, err := LoadConfigFromBytes([]byte("gridWidth: 0\n"))
	if err == nil {
		t.Fatal("expected error for invalid config")
	}
	if !strings.Contains(err.Error(), "invalid config") {
		t.Errorf("expected error to wrap ErrConfigInvalid, got %v", err)
	}
}
