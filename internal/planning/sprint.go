package planning

import (
	"context"
	"fmt"

	"pmplan/internal/model"
	"pmplan/internal/sprintsync"
)

// Summary reports what a sprint membership edit changed.
type Summary struct {
	SprintID string `json:"sprintId"`

	// Added and Removed are the membership delta that was applied.
	Added   []string `json:"added"`
	Removed []string `json:"removed"`

	// Updated counts stories whose status or sprint assignment changed.
	Updated int `json:"updated"`

	// TeamID is the team applied to the sprint, empty if none was given.
	TeamID string `json:"teamId,omitempty"`

	// TeamAssigned counts stories whose team changed.
	TeamAssigned int `json:"teamAssigned"`

	// Skipped lists story IDs that matched no story in the backlog.
	Skipped []string `json:"skipped,omitempty"`
}

// Messages renders the summary as user-facing notification lines. An edit
// that changed nothing yields a single "no changes" line.
func (s Summary) Messages() []string {
	var msgs []string
	if s.Updated > 0 {
		msgs = append(msgs, fmt.Sprintf("%d %s updated", s.Updated, plural(s.Updated)))
	}
	if s.TeamAssigned > 0 {
		msgs = append(msgs, fmt.Sprintf("%d %s assigned to team %s", s.TeamAssigned, plural(s.TeamAssigned), s.TeamID))
	}
	if len(msgs) == 0 {
		msgs = append(msgs, "no changes")
	}
	return msgs
}

func plural(n int) string {
	if n == 1 {
		return "story"
	}
	return "stories"
}

// SetMembership replaces the sprint's story list with storyIDs and
// reconciles every affected story.
//
// When teamID is non-empty the sprint is assigned to that team and every
// member story inherits it. Unknown story IDs are skipped, logged and
// reported in [Summary.Skipped]; they are kept out of the sprint's story
// list. The backlog is only written when something changed.
//
// Returns [ErrSprintNotFound] if the sprint does not exist.
func (p *Planner) SetMembership(ctx context.Context, sprintID string, storyIDs []string, teamID string) (Summary, error) {
	if err := checkContext(ctx); err != nil {
		return Summary{}, err
	}

	backlog, err := p.load()
	if err != nil {
		return Summary{}, err
	}

	sprint := backlog.FindSprint(sprintID)
	if sprint == nil {
		return Summary{}, fmt.Errorf("%w: %s", ErrSprintNotFound, sprintID)
	}

	current := knownIDs(backlog, storyIDs)
	previous := sprint.StoryIDs

	res := sprintsync.Reconcile(sprintsync.Input{
		CurrentStoryIDs:  current,
		PreviousStoryIDs: previous,
		Stories:          backlog.Stories,
		SprintID:         sprintID,
		TeamID:           teamID,
		Now:              p.nowFunc(),
	})

	delta := sprintsync.Diff(current, previous)
	summary := Summary{
		SprintID:     sprintID,
		Added:        delta.Added,
		Removed:      delta.Removed,
		Updated:      res.Changed,
		TeamID:       teamID,
		TeamAssigned: res.TeamAssigned,
		Skipped:      unknownIDs(backlog, storyIDs),
	}

	for _, id := range summary.Skipped {
		p.logger.Debug("skipping unknown story", "sprint", sprintID, "story", id)
	}
	for _, id := range res.Skipped {
		p.logger.Debug("sprint listed unknown story", "sprint", sprintID, "story", id)
	}

	teamChanged := teamID != "" && sprint.TeamID != teamID
	if delta.Empty() && res.Changed == 0 && res.TeamAssigned == 0 && !teamChanged {
		p.emit("no changes")
		return summary, nil
	}

	backlog.Stories = res.Stories
	sprint.StoryIDs = current
	if teamID != "" {
		sprint.TeamID = teamID
	}

	if err := p.writer.Write(backlog); err != nil {
		return Summary{}, err
	}

	p.logger.Debug("sprint membership saved",
		"sprint", sprintID,
		"added", len(summary.Added),
		"removed", len(summary.Removed))
	for _, msg := range summary.Messages() {
		p.emit(msg)
	}

	return summary, nil
}

// AddStories adds storyIDs to the sprint's current members.
func (p *Planner) AddStories(ctx context.Context, sprintID string, storyIDs []string, teamID string) (Summary, error) {
	backlog, err := p.load()
	if err != nil {
		return Summary{}, err
	}
	sprint := backlog.FindSprint(sprintID)
	if sprint == nil {
		return Summary{}, fmt.Errorf("%w: %s", ErrSprintNotFound, sprintID)
	}

	members := append([]string(nil), sprint.StoryIDs...)
	for _, id := range storyIDs {
		if !sprint.HasStory(id) {
			members = append(members, id)
		}
	}
	return p.SetMembership(ctx, sprintID, members, teamID)
}

// RemoveStories removes storyIDs from the sprint's current members.
func (p *Planner) RemoveStories(ctx context.Context, sprintID string, storyIDs []string) (Summary, error) {
	backlog, err := p.load()
	if err != nil {
		return Summary{}, err
	}
	sprint := backlog.FindSprint(sprintID)
	if sprint == nil {
		return Summary{}, fmt.Errorf("%w: %s", ErrSprintNotFound, sprintID)
	}

	drop := make(map[string]bool, len(storyIDs))
	for _, id := range storyIDs {
		drop[id] = true
	}
	var members []string
	for _, id := range sprint.StoryIDs {
		if !drop[id] {
			members = append(members, id)
		}
	}
	return p.SetMembership(ctx, sprintID, members, "")
}

// knownIDs returns the IDs in ids that name a story, in order, without
// duplicates.
func knownIDs(backlog *model.Backlog, ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] || backlog.FindStory(id) == nil {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// unknownIDs returns the IDs in ids that name no story, in order.
func unknownIDs(backlog *model.Backlog, ids []string) []string {
	var out []string
	for _, id := range ids {
		if backlog.FindStory(id) == nil {
			out = append(out, id)
		}
	}
	return out
}
