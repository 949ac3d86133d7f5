package planning

import (
	"context"

	"pmplan/internal/impact"
	"pmplan/internal/model"
	"pmplan/internal/sprintsync"
)

// RankedStory is a story as shown on the prioritization board.
type RankedStory struct {
	Rank     int          `json:"rank"`
	Story    *model.Story `json:"story"`
	Score    int          `json:"score"`
	Band     impact.Band  `json:"band"`
	Warnings []string     `json:"warnings,omitempty"`
}

// Explanation is the full scoring detail for one story.
type Explanation struct {
	Story     *model.Story     `json:"story"`
	Breakdown impact.Breakdown `json:"breakdown"`
	Band      impact.Band      `json:"band"`
	Warnings  []string         `json:"warnings,omitempty"`
}

// Prioritize ranks every story in the backlog by key. A positive top limits
// the result to the first top stories.
func (p *Planner) Prioritize(ctx context.Context, by impact.SortKey, top int) ([]RankedStory, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	backlog, err := p.load()
	if err != nil {
		return nil, err
	}

	scorer := p.scorer(backlog)
	ranked := scorer.Rank(backlog.Stories, by)
	if top > 0 && top < len(ranked) {
		ranked = ranked[:top]
	}

	out := make([]RankedStory, 0, len(ranked))
	for _, s := range ranked {
		if s == nil {
			continue
		}
		score := scorer.Score(s)
		out = append(out, RankedStory{
			Rank:     len(out) + 1,
			Story:    s,
			Score:    score,
			Band:     impact.Classify(score),
			Warnings: impact.Validate(s),
		})
	}

	p.logger.Debug("ranked backlog", "by", by, "stories", len(out))
	return out, nil
}

// Statistics computes impact statistics over the whole backlog.
func (p *Planner) Statistics(ctx context.Context) (impact.Stats, error) {
	if err := checkContext(ctx); err != nil {
		return impact.Stats{}, err
	}

	backlog, err := p.load()
	if err != nil {
		return impact.Stats{}, err
	}
	return p.scorer(backlog).Stats(backlog.Stories), nil
}

// Explain returns the score breakdown for a single story.
//
// Returns [ErrStoryNotFound] for an unknown story ID.
func (p *Planner) Explain(ctx context.Context, storyID string) (Explanation, error) {
	if err := checkContext(ctx); err != nil {
		return Explanation{}, err
	}

	backlog, err := p.load()
	if err != nil {
		return Explanation{}, err
	}

	story := backlog.FindStory(storyID)
	if story == nil {
		return Explanation{}, wrapStory(ErrStoryNotFound, storyID)
	}

	b := p.scorer(backlog).Breakdown(story)
	return Explanation{
		Story:     story,
		Breakdown: b,
		Band:      impact.Classify(b.Score),
		Warnings:  impact.Validate(story),
	}, nil
}

// Validate returns advisory warnings keyed by story ID. With no IDs every
// story is checked; stories without warnings are omitted.
//
// Returns [ErrStoryNotFound] if any requested ID is unknown.
func (p *Planner) Validate(ctx context.Context, storyIDs ...string) (map[string][]string, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	backlog, err := p.load()
	if err != nil {
		return nil, err
	}

	stories := backlog.Stories
	if len(storyIDs) > 0 {
		stories = make([]*model.Story, 0, len(storyIDs))
		for _, id := range storyIDs {
			s := backlog.FindStory(id)
			if s == nil {
				return nil, wrapStory(ErrStoryNotFound, id)
			}
			stories = append(stories, s)
		}
	}

	out := make(map[string][]string)
	for _, s := range stories {
		if w := impact.Validate(s); len(w) > 0 {
			out[s.ID] = w
		}
	}
	return out, nil
}

// Audit reports sprint membership inconsistencies in the backlog.
func (p *Planner) Audit(ctx context.Context) ([]sprintsync.Violation, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	backlog, err := p.load()
	if err != nil {
		return nil, err
	}

	violations := sprintsync.Audit(backlog.Stories, backlog.Sprints)
	for _, v := range violations {
		p.logger.Warn(v.String())
	}
	return violations, nil
}
