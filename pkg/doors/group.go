package doors

import (
	"sort"

	"github.com/dshills/dungo/pkg/grid"
)

// group is a contiguous 4-connected run of candidates sharing a
// (roomId, alignment) key, materialized together as one door roll.
type group struct {
	candidates []candidate
}

// groupCandidates groups valid candidates by (roomId, alignment), sorts
// each group by (x, y), and splits it into contiguous 4-connected runs
// (spec §4.6).
func groupCandidates(candidates []candidate) []group {
	type key struct {
		roomID int
		align  Alignment
	}
	buckets := make(map[key][]candidate)
	for _, c := range candidates {
		k := key{c.roomID, c.alignment}
		buckets[k] = append(buckets[k], c)
	}

	keys := make([]key, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].roomID != keys[j].roomID {
			return keys[i].roomID < keys[j].roomID
		}
		return keys[i].align < keys[j].align
	})

	var groups []group
	for _, k := range keys {
		bucket := buckets[k]
		sort.Slice(bucket, func(i, j int) bool {
			if bucket[i].pos.X != bucket[j].pos.X {
				return bucket[i].pos.X < bucket[j].pos.X
			}
			return bucket[i].pos.Y < bucket[j].pos.Y
		})
		groups = append(groups, splitContiguous(bucket)...)
	}
	return groups
}

func splitContiguous(sorted []candidate) []group {
	var groups []group
	var run []candidate
	for _, c := range sorted {
		if len(run) > 0 && !adjacent4(run[len(run)-1].pos, c.pos) {
			groups = append(groups, group{candidates: run})
			run = nil
		}
		run = append(run, c)
	}
	if len(run) > 0 {
		groups = append(groups, group{candidates: run})
	}
	return groups
}

func adjacent4(a, b grid.Point) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	return (abs(dx) == 1 && dy == 0) || (dx == 0 && abs(dy) == 1)
}
