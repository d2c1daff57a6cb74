package export

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	svg "github.com/ajstarks/svgo"
	"github.com/dshills/dungo/pkg/dungeon"
)

// SVGOptions configures debug SVG visualization export.
type SVGOptions struct {
	CellSize   int    // Pixel size of one grid cell
	ShowGrid   bool   // Draw faint gridlines between cells
	ShowLabels bool   // Label each object with its type
	ShowLegend bool   // Draw an object-type color legend
	Title      string // Optional title drawn above the map
	ShowStats  bool   // Show room/door/object counts
	Margin     int    // Canvas margin in pixels
}

// DefaultSVGOptions returns sensible default SVG export options.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		CellSize:   16,
		ShowGrid:   false,
		ShowLabels: false,
		ShowLegend: true,
		Title:      "Dungeon",
		ShowStats:  true,
		Margin:     40,
	}
}

// ExportSVG renders the artifact's cell grid and objects to SVG, for
// debugging generated dungeons by eye. This is not part of the wire
// format (spec §6.2) — it is a developer tool only.
func ExportSVG(artifact *dungeon.Artifact, opts SVGOptions) ([]byte, error) {
	if artifact == nil {
		return nil, fmt.Errorf("artifact cannot be nil")
	}
	if opts.CellSize <= 0 {
		opts.CellSize = 16
	}
	if opts.Margin <= 0 {
		opts.Margin = 40
	}

	headerHeight := 0
	if opts.Title != "" || opts.ShowStats {
		headerHeight = 50
	}
	width := artifact.Metadata.GridWidth*opts.CellSize + 2*opts.Margin
	height := artifact.Metadata.GridHeight*opts.CellSize + 2*opts.Margin + headerHeight
	legendWidth := 0
	if opts.ShowLegend {
		legendWidth = 160
		width += legendWidth
	}

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#1a1a2e")

	originX, originY := opts.Margin, opts.Margin+headerHeight
	drawCells(canvas, artifact.Cells, originX, originY, opts)
	drawObjects(canvas, artifact.Objects, originX, originY, opts)

	if opts.ShowLegend {
		drawObjectLegend(canvas, artifact.Objects, width-legendWidth+10, originY, opts)
	}
	if headerHeight > 0 {
		drawMapHeader(canvas, artifact, width-legendWidth, opts)
	}

	canvas.End()
	return buf.Bytes(), nil
}

// SaveSVGToFile renders and writes an SVG visualization to disk.
func SaveSVGToFile(artifact *dungeon.Artifact, filepath string, opts SVGOptions) error {
	data, err := ExportSVG(artifact, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0644)
}

func drawCells(canvas *svg.SVG, cells []dungeon.Cell, originX, originY int, opts SVGOptions) {
	for _, c := range cells {
		x := originX + c.X*opts.CellSize
		y := originY + c.Y*opts.CellSize
		style := fmt.Sprintf("fill:%s", c.Color)
		if c.HasOpacity {
			style = fmt.Sprintf("%s;opacity:%.2f", style, c.Opacity)
		}
		canvas.Rect(x, y, opts.CellSize, opts.CellSize, style)
		if opts.ShowGrid {
			canvas.Rect(x, y, opts.CellSize, opts.CellSize, "fill:none;stroke:#2d2d44;stroke-width:0.5")
		}
	}
}

func drawObjects(canvas *svg.SVG, objects []dungeon.Object, originX, originY int, opts SVGOptions) {
	sorted := append([]dungeon.Object(nil), objects...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	for _, o := range sorted {
		cx := originX + o.Position.X*opts.CellSize + opts.CellSize/2
		cy := originY + o.Position.Y*opts.CellSize + opts.CellSize/2
		radius := int(float64(opts.CellSize) * 0.35 * o.Scale)
		if radius < 2 {
			radius = 2
		}
		canvas.Circle(cx, cy, radius,
			fmt.Sprintf("fill:%s;stroke:#fff;stroke-width:1;opacity:0.9", objectColor(o.Type)))

		if opts.ShowLabels {
			canvas.Text(cx, cy+radius+10, o.Type,
				"text-anchor:middle;font-size:9px;font-family:monospace;fill:#e2e8f0")
		}
	}
}

// objectColor assigns a stable color per object type for the debug map:
// door types green, secret doors purple, stairs gold, "monster" red,
// "trap" orange, "treasure"/"hidden-treasure" yellow, and every other
// type blue. Water is shown through cell color, not here.
func objectColor(objType string) string {
	switch {
	case objType == "door-horizontal" || objType == "door-vertical":
		return "#48bb78"
	case objType == "secret-door":
		return "#805ad5"
	case objType == "stairs-down" || objType == "stairs-up":
		return "#ffd700"
	case objType == "trap":
		return "#ed8936"
	case objType == "treasure" || objType == "hidden-treasure":
		return "#ecc94b"
	case objType == "monster":
		return "#f56565"
	default:
		return "#4299e1"
	}
}

func drawObjectLegend(canvas *svg.SVG, objects []dungeon.Object, x, y int, opts SVGOptions) {
	seen := map[string]bool{}
	var types []string
	for _, o := range objects {
		if !seen[o.Type] {
			seen[o.Type] = true
			types = append(types, o.Type)
		}
	}
	sort.Strings(types)

	canvas.Rect(x-10, y-15, 150, 20+20*len(types), "fill:#2d3748;stroke:#4a5568;stroke-width:1;opacity:0.95;rx:5")
	canvas.Text(x, y, "Objects", "font-size:13px;font-weight:bold;fill:#e2e8f0")
	y += 20
	for _, t := range types {
		canvas.Circle(x+8, y, 6, fmt.Sprintf("fill:%s;stroke:#fff;stroke-width:1", objectColor(t)))
		canvas.Text(x+22, y+4, t, "font-size:10px;fill:#cbd5e0")
		y += 20
	}
}

func drawMapHeader(canvas *svg.SVG, artifact *dungeon.Artifact, width int, opts SVGOptions) {
	headerY := 25
	if opts.Title != "" {
		canvas.Text(width/2, headerY, opts.Title,
			"text-anchor:middle;font-size:18px;font-weight:bold;fill:#e2e8f0;font-family:sans-serif")
		headerY += 22
	}
	if opts.ShowStats {
		meta := artifact.Metadata
		stats := fmt.Sprintf("Rooms: %d | Doors: %d | Style: %s",
			meta.RoomCount, meta.DoorCount, meta.Style)
		canvas.Text(width/2, headerY, stats,
			"text-anchor:middle;font-size:11px;fill:#a0aec0;font-family:monospace")
	}
}
