// Package dedup contains the pure duplicate-detection logic for consumable
// usage records. Two records are duplicates when they share the natural key
// (usage_date, location_id, resource_type); among duplicates the record with
// the largest usage_id survives.
//
// Grouping by key and keeping the per-group maximum collapses groups of any
// size in one pass, which a pairwise self-join formulation does not
// guarantee for groups larger than two.
package dedup

import "sort"

// Key is the natural key of a consumable usage record. Comparison is exact,
// so resource types must be canonicalized before detection runs.
type Key struct {
	UsageDate    string
	LocationID   int64
	ResourceType string
}

// Entry is the minimal projection of a usage record needed for detection.
type Entry struct {
	UsageID int64
	Key     Key
}

// Survivors returns, for each natural key, the usage_id that is kept:
// the maximum usage_id among all entries sharing the key.
func Survivors(entries []Entry) map[Key]int64 {
	keep := make(map[Key]int64, len(entries))
	for _, e := range entries {
		if id, ok := keep[e.Key]; !ok || e.UsageID > id {
			keep[e.Key] = e.UsageID
		}
	}
	return keep
}

// Condemned returns the usage_ids to delete: every entry whose usage_id is
// not the maximum for its natural key. The result is sorted ascending so
// deletions are deterministic.
func Condemned(entries []Entry) []int64 {
	keep := Survivors(entries)

	var ids []int64
	for _, e := range entries {
		if keep[e.Key] != e.UsageID {
			ids = append(ids, e.UsageID)
		}
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
