package grid

import "math"

// RectOverlap reports whether rectangles a and b overlap once one of them
// is inflated by pad cells along every edge, i.e. whether they are fewer
// than pad empty cells apart on both axes.
func RectOverlap(a, b Rect, pad int) bool {
	return a.X+a.Width+pad > b.X &&
		b.X+b.Width+pad > a.X &&
		a.Y+a.Height+pad > b.Y &&
		b.Y+b.Height+pad > a.Y
}

// IsCellInRoomRect reports whether p lies within room's bounding box,
// ignoring its shape. Used only where circular/composite corners must not
// distort boundary detection, such as corridor alongside-room tests.
func IsCellInRoomRect(p Point, room Room) bool {
	return p.X >= room.Bounds.X && p.X < room.Bounds.Right() &&
		p.Y >= room.Bounds.Y && p.Y < room.Bounds.Bottom()
}

// IsCellInRoom reports whether p lies inside room, dispatching on its
// shape variant.
func IsCellInRoom(p Point, room Room) bool {
	switch room.Shape {
	case ShapeCircle:
		return isCellInCircle(p, room)
	case ShapeComposite:
		return isCellInComposite(p, room)
	default:
		return IsCellInRoomRect(p, room)
	}
}

func isCellInCircle(p Point, room Room) bool {
	r := room.Radius()
	cx := float64(room.Bounds.X) + r
	cy := float64(room.Bounds.Y) + r
	dx := float64(p.X) + 0.5 - cx
	dy := float64(p.Y) + 0.5 - cy
	return math.Hypot(dx, dy) <= r
}

func isCellInComposite(p Point, room Room) bool {
	for _, part := range room.Parts {
		if p.X >= part.X && p.X < part.Right() && p.Y >= part.Y && p.Y < part.Bottom() {
			return true
		}
	}
	return false
}

// IsCellAdjacentToRoom reports whether p is outside room's bounding box but
// one of its four orthogonal neighbours lies inside it.
func IsCellAdjacentToRoom(p Point, room Room) bool {
	if IsCellInRoomRect(p, room) {
		return false
	}
	neighbours := [4]Point{
		{X: p.X + 1, Y: p.Y},
		{X: p.X - 1, Y: p.Y},
		{X: p.X, Y: p.Y + 1},
		{X: p.X, Y: p.Y - 1},
	}
	for _, n := range neighbours {
		if IsCellInRoomRect(n, room) {
			return true
		}
	}
	return false
}

// RoomCells enumerates every cell occupied by room, shape-aware.
func RoomCells(room Room) []Point {
	cells := make([]Point, 0, room.Bounds.Width*room.Bounds.Height)
	for y := room.Bounds.Y; y < room.Bounds.Bottom(); y++ {
		for x := room.Bounds.X; x < room.Bounds.Right(); x++ {
			p := Point{X: x, Y: y}
			if IsCellInRoom(p, room) {
				cells = append(cells, p)
			}
		}
	}
	return cells
}

// RoomCenter returns room's center cell.
func RoomCenter(room Room) Point { return room.Center() }
