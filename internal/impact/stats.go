package impact

import "pmplan/internal/model"

// Distribution counts stories per band.
type Distribution struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

// Stats summarizes the impact scores of a set of stories.
//
// An empty set yields the zero value.
type Stats struct {
	Count        int          `json:"count"`
	AverageScore int          `json:"averageScore"`
	MaxScore     int          `json:"maxScore"`
	MinScore     int          `json:"minScore"`
	Distribution Distribution `json:"distribution"`
}

// Stats computes population statistics over stories.
//
// The average is rounded to the nearest integer and the distribution uses the
// same thresholds as [Classify].
func (s *Scorer) Stats(stories []*model.Story) Stats {
	var st Stats
	if len(stories) == 0 {
		return st
	}

	total := 0
	for i, story := range stories {
		score := s.Score(story)
		total += score
		if i == 0 || score > st.MaxScore {
			st.MaxScore = score
		}
		if i == 0 || score < st.MinScore {
			st.MinScore = score
		}

		switch Classify(score).Label {
		case LabelCritical:
			st.Distribution.Critical++
		case LabelHigh:
			st.Distribution.High++
		case LabelMedium:
			st.Distribution.Medium++
		default:
			st.Distribution.Low++
		}
	}

	st.Count = len(stories)
	st.AverageScore = roundHalfUp(float64(total) / float64(len(stories)))
	return st
}

// StatsFor computes [Stats] for stories against the given collections.
func StatsFor(stories []*model.Story, needs []model.Need, contacts []model.Contact, goals []model.Goal) Stats {
	return NewScorer(needs, contacts, goals).Stats(stories)
}
