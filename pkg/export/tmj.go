package export

import (
	"bytes"
	"compress/gzip"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dshills/dungo/pkg/dungeon"
)

// TMJ Format Types
// Based on Tiled Map Editor JSON specification (TMJ 1.10)
// Reference: https://doc.mapeditor.org/en/stable/reference/json-map-format/

// TMJMap represents the root TMJ map structure.
type TMJMap struct {
	Type             string        `json:"type"`
	Version          string        `json:"version"`
	TiledVersion     string        `json:"tiledversion"`
	Width            int           `json:"width"`
	Height           int           `json:"height"`
	TileWidth        int           `json:"tilewidth"`
	TileHeight       int           `json:"tileheight"`
	Orientation      string        `json:"orientation"`
	RenderOrder      string        `json:"renderorder"`
	Infinite         bool          `json:"infinite"`
	NextLayerID      int           `json:"nextlayerid"`
	NextObjectID     int           `json:"nextobjectid"`
	BackgroundColor  *string       `json:"backgroundcolor,omitempty"`
	Class            string        `json:"class,omitempty"`
	CompressionLevel int           `json:"compressionlevel"`
	Layers           []TMJLayer    `json:"layers"`
	Tilesets         []TMJTileset  `json:"tilesets"`
	Properties       []TMJProperty `json:"properties,omitempty"`
}

// TMJLayer represents any layer type (tile, object, image, group).
type TMJLayer struct {
	ID         int           `json:"id"`
	Name       string        `json:"name"`
	Type       string        `json:"type"` // "tilelayer" or "objectgroup"
	Visible    bool          `json:"visible"`
	Opacity    float64       `json:"opacity"`
	X          int           `json:"x"`
	Y          int           `json:"y"`
	Width      int           `json:"width,omitempty"`
	Height     int           `json:"height,omitempty"`
	OffsetX    int           `json:"offsetx,omitempty"`
	OffsetY    int           `json:"offsety,omitempty"`
	Class      string        `json:"class,omitempty"`
	Properties []TMJProperty `json:"properties,omitempty"`

	// Tile layer specific
	Data        interface{} `json:"data,omitempty"`        // []uint32 or string (base64)
	Encoding    string      `json:"encoding,omitempty"`    // "csv" or "base64"
	Compression string      `json:"compression,omitempty"` // "" or "gzip"

	// Object layer specific
	DrawOrder string      `json:"draworder,omitempty"`
	Objects   []TMJObject `json:"objects,omitempty"`
}

// TMJObject represents an entity or collision shape.
type TMJObject struct {
	ID         int           `json:"id"`
	Name       string        `json:"name"`
	Type       string        `json:"type,omitempty"`
	Class      string        `json:"class,omitempty"`
	X          float64       `json:"x"`
	Y          float64       `json:"y"`
	Width      float64       `json:"width"`
	Height     float64       `json:"height"`
	Rotation   float64       `json:"rotation"`
	GID        uint32        `json:"gid,omitempty"`
	Visible    bool          `json:"visible"`
	Properties []TMJProperty `json:"properties,omitempty"`
}

// TMJTileset references a collection of tiles.
type TMJTileset struct {
	FirstGID    uint32        `json:"firstgid"`
	Source      string        `json:"source,omitempty"`
	Name        string        `json:"name,omitempty"`
	Class       string        `json:"class,omitempty"`
	TileWidth   int           `json:"tilewidth,omitempty"`
	TileHeight  int           `json:"tileheight,omitempty"`
	Spacing     int           `json:"spacing,omitempty"`
	Margin      int           `json:"margin,omitempty"`
	TileCount   int           `json:"tilecount,omitempty"`
	Columns     int           `json:"columns,omitempty"`
	Image       string        `json:"image,omitempty"`
	ImageWidth  int           `json:"imagewidth,omitempty"`
	ImageHeight int           `json:"imageheight,omitempty"`
	Properties  []TMJProperty `json:"properties,omitempty"`
}

// TMJProperty represents a custom property.
type TMJProperty struct {
	Name  string      `json:"name"`
	Type  string      `json:"type"`
	Value interface{} `json:"value"`
}

// GID flags used to signal flipped tiles; unused by ExportTMJ but kept
// for consumers building their own layers with CalculateGID.
const (
	FlippedHorizontallyFlag = 0x80000000
	FlippedVerticallyFlag   = 0x40000000
	FlippedDiagonallyFlag   = 0x20000000
	TileIDMask              = 0x1FFFFFFF
)

// gidFloor is the single local tile used for every filled cell. Cell
// color, opacity and segments are not carried into the TMJ output; the
// floor layer only records which cells are filled.
const gidFloor = 1

// Builder Functions

// NewTMJMap creates a new TMJ map with default settings.
func NewTMJMap(width, height, tileWidth, tileHeight int) *TMJMap {
	return &TMJMap{
		Type:             "map",
		Version:          "1.10",
		TiledVersion:     "1.10.2",
		Width:            width,
		Height:           height,
		TileWidth:        tileWidth,
		TileHeight:       tileHeight,
		Orientation:      "orthogonal",
		RenderOrder:      "right-down",
		Infinite:         false,
		NextLayerID:      1,
		NextObjectID:     1,
		CompressionLevel: -1,
		Layers:           []TMJLayer{},
		Tilesets:         []TMJTileset{},
		Properties:       []TMJProperty{},
	}
}

// AddTileLayer adds a tile layer to the map.
func (m *TMJMap) AddTileLayer(name string, data []uint32) *TMJLayer {
	layer := TMJLayer{
		ID:       m.NextLayerID,
		Name:     name,
		Type:     "tilelayer",
		Visible:  true,
		Opacity:  1.0,
		Width:    m.Width,
		Height:   m.Height,
		Data:     data,
		Encoding: "csv",
	}
	m.NextLayerID++
	m.Layers = append(m.Layers, layer)
	return &m.Layers[len(m.Layers)-1]
}

// AddObjectLayer adds an object layer to the map.
func (m *TMJMap) AddObjectLayer(name string) *TMJLayer {
	layer := TMJLayer{
		ID:        m.NextLayerID,
		Name:      name,
		Type:      "objectgroup",
		Visible:   true,
		Opacity:   1.0,
		DrawOrder: "topdown",
		Objects:   []TMJObject{},
	}
	m.NextLayerID++
	m.Layers = append(m.Layers, layer)
	return &m.Layers[len(m.Layers)-1]
}

// AddObject adds an object to an object layer, assigning it the map's
// next object ID.
func (l *TMJLayer) AddObject(obj TMJObject, m *TMJMap) {
	if l.Type != "objectgroup" {
		return
	}
	obj.ID = m.NextObjectID
	m.NextObjectID++
	l.Objects = append(l.Objects, obj)
}

// AddTileset adds a tileset reference to the map.
func (m *TMJMap) AddTileset(name, imagePath string, tileWidth, tileHeight, tileCount, columns int) *TMJTileset {
	firstGID := uint32(1)
	if len(m.Tilesets) > 0 {
		last := m.Tilesets[len(m.Tilesets)-1]
		firstGID = last.FirstGID + uint32(last.TileCount)
	}

	imageWidth := columns * tileWidth
	imageHeight := (tileCount / columns) * tileHeight
	if tileCount%columns != 0 {
		imageHeight += tileHeight
	}

	tileset := TMJTileset{
		FirstGID:    firstGID,
		Name:        name,
		TileWidth:   tileWidth,
		TileHeight:  tileHeight,
		TileCount:   tileCount,
		Columns:     columns,
		Image:       imagePath,
		ImageWidth:  imageWidth,
		ImageHeight: imageHeight,
	}
	m.Tilesets = append(m.Tilesets, tileset)
	return &m.Tilesets[len(m.Tilesets)-1]
}

// CompressLayerData compresses tile data with gzip and encodes as base64.
func (l *TMJLayer) CompressLayerData() error {
	if l.Type != "tilelayer" {
		return fmt.Errorf("cannot compress non-tile layer")
	}

	data, ok := l.Data.([]uint32)
	if !ok {
		return fmt.Errorf("layer data is not []uint32")
	}

	buf := new(bytes.Buffer)
	for _, gid := range data {
		buf.WriteByte(byte(gid))
		buf.WriteByte(byte(gid >> 8))
		buf.WriteByte(byte(gid >> 16))
		buf.WriteByte(byte(gid >> 24))
	}

	var compressed bytes.Buffer
	gzipWriter := gzip.NewWriter(&compressed)
	if _, err := gzipWriter.Write(buf.Bytes()); err != nil {
		return err
	}
	if err := gzipWriter.Close(); err != nil {
		return err
	}

	l.Data = base64.StdEncoding.EncodeToString(compressed.Bytes())
	l.Encoding = "base64"
	l.Compression = "gzip"
	return nil
}

// CalculateGID converts a tileset-local tile ID to a global ID, applying
// flip flags.
func CalculateGID(tilesetFirstGID uint32, localTileID int, flipH, flipV, flipD bool) uint32 {
	gid := tilesetFirstGID + uint32(localTileID)
	if flipH {
		gid |= FlippedHorizontallyFlag
	}
	if flipV {
		gid |= FlippedVerticallyFlag
	}
	if flipD {
		gid |= FlippedDiagonallyFlag
	}
	return gid
}

// ParseGID extracts the tile ID and flip flags from a global ID.
func ParseGID(gid uint32) (tileID uint32, flipH, flipV, flipD bool) {
	flipH = (gid & FlippedHorizontallyFlag) != 0
	flipV = (gid & FlippedVerticallyFlag) != 0
	flipD = (gid & FlippedDiagonallyFlag) != 0
	tileID = gid & TileIDMask
	return
}

// Export Functions

// ExportTMJ converts a generated artifact to a Tiled-compatible TMJ map:
// one "floor" tile layer rasterized from the cell grid (spec §6.2's
// cells), one "objects" layer carrying doors, stairs, and every stocked
// object with its type as name/type/class and its alignment, scale and
// optional label as custom properties.
func ExportTMJ(artifact *dungeon.Artifact, compress bool) (*TMJMap, error) {
	if artifact == nil {
		return nil, fmt.Errorf("artifact cannot be nil")
	}

	meta := artifact.Metadata
	const tileSize = 16
	tmjMap := NewTMJMap(meta.GridWidth, meta.GridHeight, tileSize, tileSize)
	tmjMap.Class = "dungeon"
	tmjMap.AddTileset("dungeon_floor", "tilesets/dungeon.png", tileSize, tileSize, 1, 1)

	data := make([]uint32, meta.GridWidth*meta.GridHeight)
	for _, c := range artifact.Cells {
		if c.X < 0 || c.Y < 0 || c.X >= meta.GridWidth || c.Y >= meta.GridHeight {
			continue
		}
		data[c.Y*meta.GridWidth+c.X] = gidFloor
	}
	floorLayer := tmjMap.AddTileLayer("floor", data)
	floorLayer.Class = "floor"
	if compress {
		if err := floorLayer.CompressLayerData(); err != nil {
			return nil, fmt.Errorf("failed to compress floor layer: %w", err)
		}
	}

	objLayer := tmjMap.AddObjectLayer("objects")
	objLayer.Class = "objects"
	for _, o := range artifact.Objects {
		tmjObj := TMJObject{
			Name:    o.Type,
			Type:    o.Type,
			Class:   o.Type,
			X:       float64(o.Position.X * tileSize),
			Y:       float64(o.Position.Y * tileSize),
			Width:   float64(tileSize),
			Height:  float64(tileSize),
			GID:     gidFloor,
			Visible: true,
			Properties: []TMJProperty{
				{Name: "alignment", Type: "string", Value: string(o.Alignment)},
				{Name: "scale", Type: "float", Value: o.Scale},
			},
		}
		if o.Label != "" {
			tmjObj.Properties = append(tmjObj.Properties, TMJProperty{Name: "label", Type: "string", Value: o.Label})
		}
		objLayer.AddObject(tmjObj, tmjMap)
	}

	tmjMap.Properties = append(tmjMap.Properties,
		TMJProperty{Name: "generator", Type: "string", Value: "dungo"},
		TMJProperty{Name: "style", Type: "string", Value: meta.Style},
	)

	return tmjMap, nil
}

// MarshalTMJ serializes a TMJ map to indented JSON.
func MarshalTMJ(tmjMap *TMJMap) ([]byte, error) {
	return json.MarshalIndent(tmjMap, "", "  ")
}

// MarshalTMJCompact serializes a TMJ map to compact JSON.
func MarshalTMJCompact(tmjMap *TMJMap) ([]byte, error) {
	return json.Marshal(tmjMap)
}

// SaveTMJToFile writes a TMJ map to a file.
func SaveTMJToFile(tmjMap *TMJMap, filepath string) error {
	data, err := MarshalTMJ(tmjMap)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0644)
}

// EncodeTMJ writes a TMJ map to a writer with indentation.
func EncodeTMJ(tmjMap *TMJMap, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(tmjMap)
}

// ExportArtifactToTMJ exports an artifact directly to TMJ JSON bytes.
func ExportArtifactToTMJ(artifact *dungeon.Artifact, compress bool) ([]byte, error) {
	tmjMap, err := ExportTMJ(artifact, compress)
	if err != nil {
		return nil, err
	}
	return MarshalTMJ(tmjMap)
}

// SaveArtifactToTMJFile exports an artifact directly to a TMJ file.
func SaveArtifactToTMJFile(artifact *dungeon.Artifact, filepath string, compress bool) error {
	tmjMap, err := ExportTMJ(artifact, compress)
	if err != nil {
		return err
	}
	return SaveTMJToFile(tmjMap, filepath)
}
