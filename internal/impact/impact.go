// Package impact ranks backlog stories by business impact.
//
// The impact score of a story is the rounded product of five factors:
//
//	priority weight  must=4 should=3 could=2 wont=1
//	need weight      importance of the linked need, critical=4 .. low=1
//	goal weight      priority of the linked goal, critical=4 .. low=1
//	stakeholders     number of stakeholders, never below 1
//	client bonus     1.5 when the linked need traces to an external contact
//
// Scoring is best-effort: an unknown priority or an unresolvable need, goal
// or contact reference falls back to a weight of 1 instead of failing. A
// single bad reference therefore never breaks ranking for the whole backlog.
// Data-quality problems are reported separately by [Validate].
//
// Key types:
//   - [Scorer] - indexes needs, contacts and goals once and scores many stories
//   - [Band] - the severity band a score falls into, see [Classify]
//   - [Stats] - population statistics over a set of stories
//
// Package-level functions ([Score], [Rank], [StatsFor]) build a throwaway
// [Scorer] for one-off calls. Nothing in this package mutates its inputs.
package impact

import (
	"math"

	"pmplan/internal/model"
)

// ExternalClientBonus multiplies the score of stories whose linked need was
// raised by an external contact.
const ExternalClientBonus = 1.5

var priorityWeights = map[model.Priority]int{
	model.PriorityMust:   4,
	model.PriorityShould: 3,
	model.PriorityCould:  2,
	model.PriorityWont:   1,
}

var levelWeights = map[model.Level]int{
	model.LevelCritical: 4,
	model.LevelHigh:     3,
	model.LevelMedium:   2,
	model.LevelLow:      1,
}

// Breakdown is the set of factors that make up a story's impact score.
type Breakdown struct {
	PriorityWeight        int     `json:"priorityWeight"`
	NeedWeight            int     `json:"needWeight"`
	GoalWeight            int     `json:"goalWeight"`
	StakeholderMultiplier int     `json:"stakeholderMultiplier"`
	ClientBonus           float64 `json:"clientBonus"`
	Score                 int     `json:"score"`
}

// Scorer computes impact scores against a fixed set of needs, contacts and goals.
//
// Create with [NewScorer]. A Scorer holds only read-only indexes and may be
// shared between goroutines once built.
type Scorer struct {
	needs    map[string]model.Need
	contacts map[string]model.Contact
	// goals is nil when goal weighting is deactivated (no goals supplied).
	goals map[string]model.Goal
}

// NewScorer indexes the given collections by ID.
//
// Passing an empty goals collection deactivates goal weighting: every story
// then gets a goal weight of 1. When IDs repeat, the first entry wins.
func NewScorer(needs []model.Need, contacts []model.Contact, goals []model.Goal) *Scorer {
	s := &Scorer{
		needs:    make(map[string]model.Need, len(needs)),
		contacts: make(map[string]model.Contact, len(contacts)),
	}
	for _, n := range needs {
		if _, ok := s.needs[n.ID]; !ok {
			s.needs[n.ID] = n
		}
	}
	for _, c := range contacts {
		if _, ok := s.contacts[c.ID]; !ok {
			s.contacts[c.ID] = c
		}
	}
	if len(goals) > 0 {
		s.goals = make(map[string]model.Goal, len(goals))
		for _, g := range goals {
			if _, ok := s.goals[g.ID]; !ok {
				s.goals[g.ID] = g
			}
		}
	}
	return s
}

// Score returns the impact score of story. A nil story scores 0.
func (s *Scorer) Score(story *model.Story) int {
	return s.Breakdown(story).Score
}

// Breakdown returns every factor of story's impact score alongside the score.
func (s *Scorer) Breakdown(story *model.Story) Breakdown {
	if story == nil {
		return Breakdown{}
	}

	b := Breakdown{
		PriorityWeight:        weightOr(priorityWeights, story.Priority),
		NeedWeight:            1,
		GoalWeight:            1,
		StakeholderMultiplier: max(1, len(story.Stakeholders)),
		ClientBonus:           1.0,
	}

	if need, ok := s.lookupNeed(story.LinkedNeedID); ok {
		b.NeedWeight = weightOr(levelWeights, need.Importance)
		if contact, ok := s.lookupContact(need.ContactID); ok && contact.Type == model.ContactExternal {
			b.ClientBonus = ExternalClientBonus
		}
	}

	if goal, ok := s.lookupGoal(story.LinkedGoalID); ok {
		b.GoalWeight = weightOr(levelWeights, goal.Priority)
	}

	raw := float64(b.PriorityWeight*b.NeedWeight*b.GoalWeight*b.StakeholderMultiplier) * b.ClientBonus
	b.Score = roundHalfUp(raw)
	return b
}

func (s *Scorer) lookupNeed(id string) (model.Need, bool) {
	if id == "" {
		return model.Need{}, false
	}
	n, ok := s.needs[id]
	return n, ok
}

func (s *Scorer) lookupContact(id string) (model.Contact, bool) {
	if id == "" {
		return model.Contact{}, false
	}
	c, ok := s.contacts[id]
	return c, ok
}

func (s *Scorer) lookupGoal(id string) (model.Goal, bool) {
	if s.goals == nil || id == "" {
		return model.Goal{}, false
	}
	g, ok := s.goals[id]
	return g, ok
}

// weightOr returns the weight for key, or 1 when the key is not in the table.
func weightOr[K comparable](table map[K]int, key K) int {
	if w, ok := table[key]; ok {
		return w
	}
	return 1
}

// roundHalfUp rounds non-negative x to the nearest integer, halves going up.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// Score computes the impact score of a single story.
//
// This is a convenience wrapper around [NewScorer] and [Scorer.Score]. When
// scoring many stories against the same collections, build a [Scorer] once.
func Score(story *model.Story, needs []model.Need, contacts []model.Contact, goals []model.Goal) int {
	return NewScorer(needs, contacts, goals).Score(story)
}
