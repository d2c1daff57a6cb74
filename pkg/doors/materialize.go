package doors

import "github.com/dshills/dungo/pkg/rng"

// materializeGroup rolls a group's doorChance once and, on success, its
// secretDoorChance once: both hits turn every door in the group into a
// secret-door, a doorChance-only hit keeps each door's original
// horizontal/vertical type, and a miss places no doors for the group
// (spec §4.6).
func materializeGroup(g group, cfg Config, r *rng.RNG) []Door {
	if !r.Chance(cfg.DoorChance) {
		return nil
	}
	secret := r.Chance(cfg.SecretDoorChance)

	scale := 1.0
	if len(g.candidates) >= 2 {
		scale = 1.2
	}

	doors := make([]Door, 0, len(g.candidates))
	for _, c := range g.candidates {
		d := Door{
			RoomID:    c.roomID,
			Position:  c.pos,
			Alignment: c.alignment,
			Scale:     scale,
		}
		if secret {
			d.Type = "secret-door"
			d.Rotation = secretRotation(c.kind, c.alignment)
		} else if c.kind == KindVertical {
			d.Type = "door-vertical"
		} else {
			d.Type = "door-horizontal"
		}
		doors = append(doors, d)
	}
	return doors
}

// secretRotation gives a secret door its rotation override: 90 degrees
// for a vertical-type door on an east/west alignment, 45 for a ne/sw
// diagonal alignment, -45 for a nw/se diagonal alignment, 0 otherwise.
func secretRotation(kind Kind, align Alignment) float64 {
	switch align {
	case AlignNE, AlignSW:
		return 45
	case AlignNW, AlignSE:
		return -45
	case AlignEast, AlignWest:
		if kind == KindVertical {
			return 90
		}
	}
	return 0
}
