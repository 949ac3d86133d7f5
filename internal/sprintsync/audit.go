package sprintsync

import (
	"fmt"

	"pmplan/internal/model"
)

// ViolationKind classifies an [Audit] finding.
type ViolationKind string

// Violation kinds.
const (
	// KindUnknownSprint: a story points at a sprint that does not exist.
	KindUnknownSprint ViolationKind = "unknown-sprint"

	// KindNotMember: a story points at a sprint that does not list it.
	KindNotMember ViolationKind = "not-member"

	// KindStaleMember: a sprint lists a story ID that matches no story.
	KindStaleMember ViolationKind = "stale-member"
)

// Violation is a single referential-integrity problem found by [Audit].
type Violation struct {
	Kind     ViolationKind `json:"kind"`
	StoryID  string        `json:"storyId"`
	SprintID string        `json:"sprintId"`
}

func (v Violation) String() string {
	switch v.Kind {
	case KindUnknownSprint:
		return fmt.Sprintf("story %s references unknown sprint %s", v.StoryID, v.SprintID)
	case KindNotMember:
		return fmt.Sprintf("story %s references sprint %s but is not a member", v.StoryID, v.SprintID)
	case KindStaleMember:
		return fmt.Sprintf("sprint %s lists unknown story %s", v.SprintID, v.StoryID)
	default:
		return fmt.Sprintf("%s: story %s, sprint %s", v.Kind, v.StoryID, v.SprintID)
	}
}

// Audit checks that every story's sprint reference is backed by membership
// in that sprint, and that sprints only list known stories.
//
// Violations are returned story-first in input order, then stale members in
// sprint order. Audit never modifies its inputs.
func Audit(stories []*model.Story, sprints []*model.Sprint) []Violation {
	byID := make(map[string]*model.Sprint, len(sprints))
	for _, sp := range sprints {
		if sp == nil {
			continue
		}
		if _, ok := byID[sp.ID]; !ok {
			byID[sp.ID] = sp
		}
	}

	known := make(map[string]bool, len(stories))
	var violations []Violation
	for _, s := range stories {
		if s == nil {
			continue
		}
		known[s.ID] = true
		if s.SprintID == "" {
			continue
		}
		sp, ok := byID[s.SprintID]
		switch {
		case !ok:
			violations = append(violations, Violation{Kind: KindUnknownSprint, StoryID: s.ID, SprintID: s.SprintID})
		case !sp.HasStory(s.ID):
			violations = append(violations, Violation{Kind: KindNotMember, StoryID: s.ID, SprintID: s.SprintID})
		}
	}

	for _, sp := range sprints {
		if sp == nil {
			continue
		}
		for _, id := range sortedKeys(toSet(sp.StoryIDs)) {
			if !known[id] {
				violations = append(violations, Violation{Kind: KindStaleMember, StoryID: id, SprintID: sp.ID})
			}
		}
	}

	return violations
}
