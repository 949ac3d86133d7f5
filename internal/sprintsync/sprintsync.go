// Package sprintsync keeps story status and sprint assignment consistent with
// sprint membership.
//
// Whenever a sprint's story list changes, [Reconcile] compares the new list
// with the previous one and corrects the affected stories:
//
//   - added: an unassigned story becomes planned and points at the sprint;
//     a story already in any other state is left alone
//   - removed: a story that is not done becomes unassigned and loses its
//     sprint; a done story is never touched
//   - unchanged: no status or sprint change
//
// Independently of membership changes, a new team ID is written to every
// story currently in the sprint.
//
// Reconcile is a pure function over caller-owned snapshots. It performs no
// locking; callers must serialize writes to the authoritative story store.
package sprintsync

import (
	"time"

	"pmplan/internal/model"
)

// Input is the membership change to reconcile.
type Input struct {
	// CurrentStoryIDs is the sprint's story list after the change.
	CurrentStoryIDs []string

	// PreviousStoryIDs is the sprint's story list before the change.
	PreviousStoryIDs []string

	// Stories is the full story collection. It is not modified.
	Stories []*model.Story

	// SprintID identifies the sprint whose membership changed.
	SprintID string

	// TeamID, when non-empty, is assigned to every story in CurrentStoryIDs.
	TeamID string

	// Now stamps UpdatedAt on changed stories. Zero means time.Now().
	Now time.Time
}

// Result is the outcome of [Reconcile].
type Result struct {
	// Stories is the full collection in input order. Unaffected stories are
	// the same pointers as in [Input.Stories]; affected stories are new values.
	Stories []*model.Story

	// Changed counts stories whose status or sprint assignment changed.
	Changed int

	// TeamAssigned counts stories whose team changed. Team-only changes are
	// not included in Changed.
	TeamAssigned int

	// Skipped lists IDs from either membership list that matched no story.
	Skipped []string
}

// Reconcile applies a sprint membership change to the story collection.
//
// IDs that do not resolve to a story are skipped and reported in
// [Result.Skipped]. Calling Reconcile again with the same current list, the
// previous call's current list as the previous list, and the previous
// result's stories yields no further changes.
func Reconcile(in Input) Result {
	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}

	delta := Diff(in.CurrentStoryIDs, in.PreviousStoryIDs)
	current := toSet(in.CurrentStoryIDs)

	index := make(map[string]int, len(in.Stories))
	for i, s := range in.Stories {
		if s == nil {
			continue
		}
		if _, ok := index[s.ID]; !ok {
			index[s.ID] = i
		}
	}

	res := Result{Stories: make([]*model.Story, len(in.Stories))}
	copy(res.Stories, in.Stories)

	for _, id := range sortedKeys(union(current, toSet(in.PreviousStoryIDs))) {
		if _, ok := index[id]; !ok {
			res.Skipped = append(res.Skipped, id)
		}
	}

	// updated holds the replacement for each affected position so a story
	// touched by both the status and the team pass is copied only once.
	updated := make(map[int]*model.Story)
	edit := func(i int) *model.Story {
		if s, ok := updated[i]; ok {
			return s
		}
		s := in.Stories[i].Clone()
		updated[i] = s
		res.Stories[i] = s
		return s
	}

	for _, id := range delta.Added {
		i, ok := index[id]
		if !ok {
			continue
		}
		if next, ok := onAdded(in.Stories[i].Status); ok {
			s := edit(i)
			s.Status = next
			s.SprintID = in.SprintID
			s.UpdatedAt = now
			res.Changed++
		}
	}

	for _, id := range delta.Removed {
		i, ok := index[id]
		if !ok {
			continue
		}
		if next, ok := onRemoved(in.Stories[i].Status); ok {
			s := edit(i)
			s.Status = next
			s.SprintID = ""
			s.UpdatedAt = now
			res.Changed++
		}
	}

	if in.TeamID != "" {
		for _, id := range sortedKeys(current) {
			i, ok := index[id]
			if !ok {
				continue
			}
			if res.Stories[i].TeamID == in.TeamID {
				continue
			}
			s := edit(i)
			s.TeamID = in.TeamID
			s.UpdatedAt = now
			res.TeamAssigned++
		}
	}

	return res
}
