package impact

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"pmplan/internal/model"
)

// ErrUnknownSortKey is returned by [ParseSortKey] for a key that is not one of
// the supported [SortKey] values.
var ErrUnknownSortKey = errors.New("unknown sort key")

// SortKey selects the ordering used by [Rank].
type SortKey string

// Supported sort keys.
const (
	SortImpact   SortKey = "impact"   // impact score, highest first
	SortPriority SortKey = "priority" // must, should, could, wont
	SortStatus   SortKey = "status"   // todo, inProgress, done
	SortRecent   SortKey = "recent"   // UpdatedAt, newest first
	SortOldest   SortKey = "oldest"   // CreatedAt, oldest first
	SortTitle    SortKey = "title"    // Title, ascending
)

// SortKeys lists every supported key in display order.
var SortKeys = []SortKey{SortImpact, SortPriority, SortStatus, SortRecent, SortOldest, SortTitle}

// ParseSortKey validates a user-supplied sort key. Matching is case-insensitive.
func ParseSortKey(s string) (SortKey, error) {
	for _, k := range SortKeys {
		if strings.EqualFold(string(k), strings.TrimSpace(s)) {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSortKey, s)
}

var priorityOrder = map[model.Priority]int{
	model.PriorityMust:   0,
	model.PriorityShould: 1,
	model.PriorityCould:  2,
	model.PriorityWont:   3,
}

// boardOrder is the fixed three-column order used by the status sort. It is
// keyed by [model.BoardStatus], not [model.Status]: a story whose status has
// no board column (unassigned, planned, empty) sorts after every column.
var boardOrder = map[model.BoardStatus]int{
	model.BoardTodo:       0,
	model.BoardInProgress: 1,
	model.BoardDone:       2,
}

func orderOf[K comparable](table map[K]int, key K) int {
	if o, ok := table[key]; ok {
		return o
	}
	return len(table)
}

// Rank returns a new slice holding stories ordered by key.
//
// The sort is stable: stories with equal keys keep their input order. The
// input slice is not modified. An unrecognized key returns the stories in
// input order.
func (s *Scorer) Rank(stories []*model.Story, by SortKey) []*model.Story {
	ranked := make([]*model.Story, len(stories))
	copy(ranked, stories)

	var less func(a, b *model.Story) bool
	switch by {
	case SortImpact:
		scores := make(map[*model.Story]int, len(ranked))
		for _, st := range ranked {
			scores[st] = s.Score(st)
		}
		less = func(a, b *model.Story) bool { return scores[a] > scores[b] }
	case SortPriority:
		less = func(a, b *model.Story) bool {
			return orderOf(priorityOrder, orEmpty(a).Priority) < orderOf(priorityOrder, orEmpty(b).Priority)
		}
	case SortStatus:
		less = func(a, b *model.Story) bool {
			return orderOf(boardOrder, model.BoardStatus(orEmpty(a).Status)) < orderOf(boardOrder, model.BoardStatus(orEmpty(b).Status))
		}
	case SortRecent:
		less = func(a, b *model.Story) bool { return orEmpty(a).UpdatedAt.After(orEmpty(b).UpdatedAt) }
	case SortOldest:
		less = func(a, b *model.Story) bool { return orEmpty(a).CreatedAt.Before(orEmpty(b).CreatedAt) }
	case SortTitle:
		less = func(a, b *model.Story) bool { return orEmpty(a).Title < orEmpty(b).Title }
	default:
		return ranked
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return less(ranked[i], ranked[j])
	})
	return ranked
}

var emptyStory model.Story

// orEmpty lets the comparators treat a nil entry as a story with no fields set.
func orEmpty(st *model.Story) *model.Story {
	if st == nil {
		return &emptyStory
	}
	return st
}

// Top returns at most n stories ordered by impact. A non-positive n returns
// every story.
func (s *Scorer) Top(stories []*model.Story, n int) []*model.Story {
	ranked := s.Rank(stories, SortImpact)
	if n > 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// Rank orders stories by key without modifying the input.
//
// See [Scorer.Rank]. The needs, contacts and goals collections are only
// consulted for [SortImpact].
func Rank(stories []*model.Story, by SortKey, needs []model.Need, contacts []model.Contact, goals []model.Goal) []*model.Story {
	return NewScorer(needs, contacts, goals).Rank(stories, by)
}
