package sprintsync

import "sort"

// Delta is the difference between two membership lists.
type Delta struct {
	// Added holds IDs in the current list but not the previous one, sorted.
	Added []string

	// Removed holds IDs in the previous list but not the current one, sorted.
	Removed []string
}

// Empty reports whether the membership did not change.
func (d Delta) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0
}

// Diff compares two membership lists as sets. Order and duplicates are
// ignored.
func Diff(current, previous []string) Delta {
	cur := toSet(current)
	prev := toSet(previous)

	var d Delta
	for _, id := range sortedKeys(cur) {
		if !prev[id] {
			d.Added = append(d.Added, id)
		}
	}
	for _, id := range sortedKeys(prev) {
		if !cur[id] {
			d.Removed = append(d.Removed, id)
		}
	}
	return d
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func union(a, b map[string]bool) map[string]bool {
	out := make(map[string]bool, len(a)+len(b))
	for k := range a {
		out[k] = true
	}
	for k := range b {
		out[k] = true
	}
	return out
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
