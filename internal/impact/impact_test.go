package impact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pmplan/internal/model"
)

func TestScore_DefaultsOnly(t *testing.T) {
	story := &model.Story{ID: "S1", Priority: model.PriorityMust}

	assert.Equal(t, 4, Score(story, nil, nil, nil))
	assert.Equal(t, 4, Score(story, []model.Need{}, []model.Contact{}, []model.Goal{}))
}

func TestScore_NilStory(t *testing.T) {
	assert.Equal(t, 0, Score(nil, nil, nil, nil))
}

func TestScore_ExternalClientScenario(t *testing.T) {
	story := &model.Story{
		ID:           "A",
		Priority:     model.PriorityMust,
		LinkedNeedID: "N1",
		Stakeholders: []string{"x", "y"},
	}
	needs := []model.Need{{ID: "N1", Importance: model.LevelCritical, ContactID: "C1"}}
	contacts := []model.Contact{{ID: "C1", Type: model.ContactExternal}}

	score := Score(story, needs, contacts, nil)

	assert.Equal(t, 48, score)
	assert.Equal(t, LabelCritical, Classify(score).Label)
}

func TestScore_Weights(t *testing.T) {
	needs := []model.Need{
		{ID: "N-crit", Importance: model.LevelCritical},
		{ID: "N-high", Importance: model.LevelHigh, ContactID: "C-int"},
		{ID: "N-ext", Importance: model.LevelLow, ContactID: "C-ext"},
		{ID: "N-bad", Importance: "urgent"},
		{ID: "N-ghost", Importance: model.LevelMedium, ContactID: "C-missing"},
	}
	contacts := []model.Contact{
		{ID: "C-int", Type: model.ContactInternal},
		{ID: "C-ext", Type: model.ContactExternal},
	}
	goals := []model.Goal{
		{ID: "G-crit", Priority: model.LevelCritical},
		{ID: "G-med", Priority: model.LevelMedium},
	}

	tests := []struct {
		name  string
		story model.Story
		want  int
	}{
		{
			name:  "unknown priority defaults to 1",
			story: model.Story{Priority: "urgent"},
			want:  1,
		},
		{
			name:  "missing priority defaults to 1",
			story: model.Story{},
			want:  1,
		},
		{
			name:  "critical need",
			story: model.Story{Priority: model.PriorityShould, LinkedNeedID: "N-crit"},
			want:  12,
		},
		{
			name:  "internal contact gives no bonus",
			story: model.Story{Priority: model.PriorityCould, LinkedNeedID: "N-high"},
			want:  6,
		},
		{
			name:  "external bonus rounds half up",
			story: model.Story{Priority: model.PriorityWont, LinkedNeedID: "N-ext"},
			want:  2,
		},
		{
			name:  "should with external low need rounds 4.5 to 5",
			story: model.Story{Priority: model.PriorityShould, LinkedNeedID: "N-ext"},
			want:  5,
		},
		{
			name:  "unknown importance defaults to 1",
			story: model.Story{Priority: model.PriorityMust, LinkedNeedID: "N-bad"},
			want:  4,
		},
		{
			name:  "unresolvable need defaults to 1",
			story: model.Story{Priority: model.PriorityMust, LinkedNeedID: "N-deleted"},
			want:  4,
		},
		{
			name:  "unresolvable contact gives no bonus",
			story: model.Story{Priority: model.PriorityMust, LinkedNeedID: "N-ghost"},
			want:  8,
		},
		{
			name:  "critical goal",
			story: model.Story{Priority: model.PriorityMust, LinkedGoalID: "G-crit"},
			want:  16,
		},
		{
			name:  "unresolvable goal defaults to 1",
			story: model.Story{Priority: model.PriorityMust, LinkedGoalID: "G-gone"},
			want:  4,
		},
		{
			name:  "empty stakeholder list multiplies by 1",
			story: model.Story{Priority: model.PriorityMust, Stakeholders: []string{}},
			want:  4,
		},
		{
			name: "all factors",
			story: model.Story{
				Priority:     model.PriorityMust,
				LinkedNeedID: "N-crit",
				LinkedGoalID: "G-med",
				Stakeholders: []string{"a", "b", "c"},
			},
			want: 96,
		},
	}

	scorer := NewScorer(needs, contacts, goals)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			story := tt.story
			assert.Equal(t, tt.want, scorer.Score(&story))
		})
	}
}

func TestScore_EmptyGoalsDeactivateGoalWeighting(t *testing.T) {
	story := &model.Story{Priority: model.PriorityMust, LinkedGoalID: "G1"}
	goals := []model.Goal{{ID: "G1", Priority: model.LevelCritical}}

	assert.Equal(t, 16, Score(story, nil, nil, goals))
	assert.Equal(t, 4, Score(story, nil, nil, []model.Goal{}))
}

func TestScore_DoesNotMutateInputs(t *testing.T) {
	story := &model.Story{
		ID:           "A",
		Priority:     model.PriorityMust,
		LinkedNeedID: "N1",
		Stakeholders: []string{"x"},
	}
	before := story.Clone()
	needs := []model.Need{{ID: "N1", Importance: model.LevelHigh}}

	Score(story, needs, nil, nil)

	assert.Equal(t, before, story)
	assert.Equal(t, []model.Need{{ID: "N1", Importance: model.LevelHigh}}, needs)
}

func TestScore_PriorityMonotonic(t *testing.T) {
	needs := []model.Need{{ID: "N1", Importance: model.LevelMedium, ContactID: "C1"}}
	contacts := []model.Contact{{ID: "C1", Type: model.ContactExternal}}
	goals := []model.Goal{{ID: "G1", Priority: model.LevelHigh}}

	order := []model.Priority{model.PriorityWont, model.PriorityCould, model.PriorityShould, model.PriorityMust}
	scorer := NewScorer(needs, contacts, goals)

	prev := -1
	for _, p := range order {
		story := &model.Story{Priority: p, LinkedNeedID: "N1", LinkedGoalID: "G1", Stakeholders: []string{"a"}}
		score := scorer.Score(story)
		assert.GreaterOrEqual(t, score, prev, "priority %s", p)
		prev = score
	}
}

func TestScorer_Breakdown(t *testing.T) {
	needs := []model.Need{{ID: "N1", Importance: model.LevelHigh, ContactID: "C1"}}
	contacts := []model.Contact{{ID: "C1", Type: model.ContactExternal}}
	scorer := NewScorer(needs, contacts, nil)

	b := scorer.Breakdown(&model.Story{
		Priority:     model.PriorityShould,
		LinkedNeedID: "N1",
		Stakeholders: []string{"a", "b"},
	})

	assert.Equal(t, Breakdown{
		PriorityWeight:        3,
		NeedWeight:            3,
		GoalWeight:            1,
		StakeholderMultiplier: 2,
		ClientBonus:           1.5,
		Score:                 27,
	}, b)
}

func TestNewScorer_FirstDuplicateWins(t *testing.T) {
	needs := []model.Need{
		{ID: "N1", Importance: model.LevelCritical},
		{ID: "N1", Importance: model.LevelLow},
	}
	scorer := NewScorer(needs, nil, nil)

	require.NotNil(t, scorer)
	assert.Equal(t, 16, scorer.Score(&model.Story{Priority: model.PriorityMust, LinkedNeedID: "N1"}))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{score: 1000, want: LabelCritical},
		{score: 32, want: LabelCritical},
		{score: 31, want: LabelHigh},
		{score: 16, want: LabelHigh},
		{score: 15, want: LabelMedium},
		{score: 8, want: LabelMedium},
		{score: 7, want: LabelLow},
		{score: 1, want: LabelLow},
		{score: 0, want: LabelLow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.score).Label, "score %d", tt.score)
	}
}

func TestClassify_EveryScoreHasOneBand(t *testing.T) {
	for score := 0; score <= 200; score++ {
		band := Classify(score)
		assert.Contains(t, Bands, band, "score %d", score)
		assert.NotEmpty(t, band.Icon)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		story *model.Story
		want  []string
	}{
		{
			name:  "nil story",
			story: nil,
			want:  nil,
		},
		{
			name: "complete story",
			story: &model.Story{
				Priority:     model.PriorityMust,
				LinkedNeedID: "N1",
				Stakeholders: []string{"a"},
			},
			want: nil,
		},
		{
			name:  "empty story",
			story: &model.Story{},
			want:  []string{WarnNoPriority, WarnNoLinkedNeed, WarnNoStakeholders},
		},
		{
			name:  "empty stakeholders only",
			story: &model.Story{Priority: model.PriorityCould, LinkedNeedID: "N1", Stakeholders: []string{}},
			want:  []string{WarnNoStakeholders},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.story))
		})
	}
}

func TestValidate_DoesNotBlockScoring(t *testing.T) {
	story := &model.Story{}

	assert.NotEmpty(t, Validate(story))
	assert.Equal(t, 1, Score(story, nil, nil, nil))
}
