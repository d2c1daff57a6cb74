package dungeon

import (
	"context"
	"fmt"
	"sort"

	"github.com/dshills/dungo/pkg/carving"
	"github.com/dshills/dungo/pkg/doors"
	"github.com/dshills/dungo/pkg/graph"
	"github.com/dshills/dungo/pkg/grid"
	"github.com/dshills/dungo/pkg/materializer"
	"github.com/dshills/dungo/pkg/rng"
	"github.com/dshills/dungo/pkg/rooms"
	"github.com/dshills/dungo/pkg/stairs"
	"github.com/dshills/dungo/pkg/stocking"
)

// Generate runs DungeonAssembly (spec §4.10): it resolves nothing itself
// (callers resolve via Resolve first, or hand-build a Config), runs every
// phase of §2's pipeline in order, and returns the wire-format Artifact.
// Phase boundaries check ctx.Done(), matching spec §5's "cancellation...
// not supported in-band" at anything finer than a phase.
func Generate(ctx context.Context, cfg Config) (*Artifact, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigInvalid, err)
	}

	configHash := cfg.Hash()
	roomsRNG := rng.New(cfg.Seed, "rooms", configHash)
	graphRNG := rng.New(cfg.Seed, "graph", configHash)
	carvingRNG := rng.New(cfg.Seed, "carving", configHash)
	doorsRNG := rng.New(cfg.Seed, "doors", configHash)
	stairsRNG := rng.New(cfg.Seed, "stairs", configHash)
	stockingRNG := rng.New(cfg.Seed, "stocking", configHash)

	if err := checkDone(ctx); err != nil {
		return nil, err
	}

	roomGen := rooms.New(rooms.Config{
		GridWidth: cfg.GridWidth, GridHeight: cfg.GridHeight,
		CountMin: cfg.RoomCount.Min, CountMax: cfg.RoomCount.Max,
		Padding:           cfg.Padding,
		SizeMin:           cfg.RoomSize.MinWidth,
		SizeMax:           cfg.RoomSize.MaxWidth,
		SizeBias:          cfg.RoomSize.SizeBias,
		CircleChance:      cfg.CircleChance,
		ComplexRoomChance: cfg.ComplexRoomChance,
	})
	roomResult := roomGen.Generate(roomsRNG)

	if err := checkDone(ctx); err != nil {
		return nil, err
	}

	conns := graph.Build(roomResult.Rooms, cfg.LoopChance, graphRNG)
	g, err := graph.NewGraph(roomIDs(roomResult.Rooms), conns)
	if err != nil {
		return nil, fmt.Errorf("connection graph: %w", err)
	}

	if err := checkDone(ctx); err != nil {
		return nil, err
	}

	corridors := carving.Carve(roomResult.Rooms, conns, carving.Config{
		Width: cfg.CorridorWidth, WideChance: cfg.WideCorridorChance,
		Style: cfg.CorridorStyle, DiagonalChance: cfg.DiagonalCorridorChance,
	}, carvingRNG)

	if err := checkDone(ctx); err != nil {
		return nil, err
	}

	doorList := doors.Infer(roomResult.Rooms, corridors, doors.Config{
		DoorChance: cfg.DoorChance, SecretDoorChance: cfg.SecretDoorChance,
	}, doorsRNG)

	if err := checkDone(ctx); err != nil {
		return nil, err
	}

	stairResult := stairs.Run(roomResult.Rooms, stairs.Config{
		WaterChance: cfg.WaterChance, WaterColor: cfg.WaterColor, WaterOpacity: cfg.WaterOpacity,
	}, stairsRNG)

	if err := checkDone(ctx); err != nil {
		return nil, err
	}

	cells := materializeCells(roomResult.Rooms, corridors, stairResult, cfg.FloorColor)

	if err := checkDone(ctx); err != nil {
		return nil, err
	}

	stockCfg := stocking.Config{
		ObjectDensity: cfg.Stocking.ObjectDensity,
		MonsterWeight: cfg.Stocking.MonsterWeight, EmptyWeight: cfg.Stocking.EmptyWeight,
		FeatureWeight: cfg.Stocking.FeatureWeight, TrapWeight: cfg.Stocking.TrapWeight,
		UseTemplates: cfg.Stocking.UseTemplates, CorridorTrapChance: cfg.Stocking.CorridorTrapChance,
	}
	stockObjs, categories := stocking.Stock(roomResult.Rooms, corridors, doorList, stairResult, stockCfg, cfg.Style, stockingRNG)

	return assemble(cfg, roomResult, conns, g, corridors, doorList, stairResult, cells, stockObjs, categories), nil
}

func checkDone(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

func roomIDs(rs []grid.Room) []int {
	ids := make([]int, len(rs))
	for i, r := range rs {
		ids[i] = r.ID
	}
	return ids
}

// materializeCells runs CellMaterializer (spec §4.8) and converts the
// result to the wire Cell type.
func materializeCells(roomList []grid.Room, corridors []carving.Corridor, st stairs.Result, floorColor string) []Cell {
	raw := materializer.Materialize(roomList, corridors, st.WaterCells, floorColor)
	out := make([]Cell, len(raw))
	for i, c := range raw {
		out[i] = Cell{X: c.X, Y: c.Y, Color: c.Color, Opacity: c.Opacity, HasOpacity: c.HasOpacity, Segments: c.Segments}
	}
	return out
}

// assemble builds the wire Artifact from every phase's internal result,
// assigning object IDs and populating the re-stock Metadata (spec §3
// "Metadata", §6.2).
func assemble(cfg Config, roomResult rooms.Result, conns []graph.Connection, g *graph.Graph,
	corridors []carving.Corridor, doorList []doors.Door, st stairs.Result, cells []Cell, stockObjs []stocking.Object,
	categoryByRoom map[int]string) *Artifact {

	isolated := map[int]bool{}
	if g != nil {
		reachable := g.GetReachable(firstRoomID(roomResult.Rooms))
		for _, room := range roomResult.Rooms {
			if !reachable[room.ID] {
				isolated[room.ID] = true
			}
		}
	}

	roomMetas := make([]RoomMeta, len(roomResult.Rooms))
	for i, room := range roomResult.Rooms {
		roomMetas[i] = RoomMeta{
			ID: room.ID, X: room.Bounds.X, Y: room.Bounds.Y,
			Width: room.Bounds.Width, Height: room.Bounds.Height,
			Shape: room.Shape.String(), Isolated: isolated[room.ID],
			Category: categoryByRoom[room.ID],
		}
		if room.Shape == grid.ShapeComposite {
			roomMetas[i].CompositeKind = room.CompositeKind.String()
			roomMetas[i].Parts = room.Parts
		}
	}

	connMetas := make([]ConnMeta, len(conns))
	for i, c := range conns {
		connMetas[i] = ConnMeta{A: c.A, B: c.B}
	}

	corridorMetas := make([]CorridorMeta, len(corridors))
	hasWide, hasDiagonal := false, false
	for i, c := range corridors {
		corridorMetas[i] = CorridorMeta{A: c.A, B: c.B, Width: c.Width, HasDiagonals: c.HasDiagonals, Dirty: c.Dirty}
		if c.Width > 1 {
			hasWide = true
		}
		if c.HasDiagonals {
			hasDiagonal = true
		}
	}

	nextID := 0
	var objects []Object
	doorMetas := make([]DoorMeta, 0, len(doorList))
	secretCount := 0
	for _, d := range doorList {
		objects = append(objects, Object{
			ID: nextID, Type: d.Type, Position: d.Position,
			Alignment: Alignment(d.Alignment), Scale: d.Scale, Rotation: d.Rotation,
		})
		nextID++
		doorMetas = append(doorMetas, DoorMeta{RoomID: d.RoomID, Position: d.Position, Type: d.Type})
		if d.Type == "secret-door" {
			secretCount++
		}
	}

	if st.StairsDown != nil {
		objects = append(objects, Object{ID: nextID, Type: st.StairsDown.Type, Position: st.StairsDown.Position, Alignment: "center", Scale: 1})
		nextID++
	}
	if st.StairsUp != nil {
		objects = append(objects, Object{ID: nextID, Type: st.StairsUp.Type, Position: st.StairsUp.Position, Alignment: "center", Scale: 1})
		nextID++
	}

	for _, o := range stockObjs {
		objects = append(objects, Object{
			ID: nextID, Type: o.Type, Position: o.Position, Alignment: "center", Scale: 1,
			CustomTooltip: o.Tooltip,
		})
		nextID++
	}

	sort.Slice(roomMetas, func(i, j int) bool { return roomMetas[i].ID < roomMetas[j].ID })

	meta := Metadata{
		Rooms: roomMetas, Connections: connMetas,
		GridWidth: cfg.GridWidth, GridHeight: cfg.GridHeight,
		RequestedRoomCount: roomResult.RequestedCount, RoomCount: roomResult.PlacedCount,
		DoorCount: len(doorList), SecretDoorCount: secretCount,
		HasWideCorridors: hasWide, HasDiagonalCorridors: hasDiagonal,
		EntryRoomID: st.EntryRoomID, ExitRoomID: st.ExitRoomID, WaterRoomIDs: st.WaterRoomIDs,
		CorridorResult: corridorMetas, DoorPositions: doorMetas,
		Style: cfg.Style,
		RoomTargetUnderfilled: roomResult.Underfilled(),
	}
	for id := range isolated {
		meta.IsolatedRoomIDs = append(meta.IsolatedRoomIDs, id)
	}
	sort.Ints(meta.IsolatedRoomIDs)

	return &Artifact{Cells: cells, Objects: objects, Metadata: meta}
}

func firstRoomID(rs []grid.Room) int {
	if len(rs) == 0 {
		return 0
	}
	return rs[0].ID
}
