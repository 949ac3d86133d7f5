package impact

import "pmplan/internal/model"

// Advisory warnings returned by [Validate].
const (
	WarnNoPriority     = "No priority set (defaults to lowest weight)"
	WarnNoLinkedNeed   = "Not linked to a need (need weight defaults to 1)"
	WarnNoStakeholders = "No stakeholders identified (multiplier defaults to 1)"
)

// Validate returns advisory data-quality warnings for story.
//
// Warnings never affect scoring; a story with warnings still gets a score
// built from default weights. A nil story has no warnings.
func Validate(story *model.Story) []string {
	if story == nil {
		return nil
	}

	var warnings []string
	if story.Priority == "" {
		warnings = append(warnings, WarnNoPriority)
	}
	if story.LinkedNeedID == "" {
		warnings = append(warnings, WarnNoLinkedNeed)
	}
	if len(story.Stakeholders) == 0 {
		warnings = append(warnings, WarnNoStakeholders)
	}
	return warnings
}
