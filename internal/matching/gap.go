package matching

import "fmt"

// AnalyzeGap splits required skills into those the user has and those they
// lack. Names are compared exactly. When the user lists a name more than once
// the first record wins. An empty required list is rejected with
// ErrInvalidInput since no percentage can be computed for it.
func AnalyzeGap(required []ExtractedSkill, user []UserSkill) (*GapReport, error) {
	if len(required) == 0 {
		return nil, fmt.Errorf("%w: required skills are empty", ErrInvalidInput)
	}

	userLevels := make(map[string]string, len(user))
	for _, skill := range user {
		if _, seen := userLevels[skill.Name]; seen {
			continue
		}
		userLevels[skill.Name] = skill.Level
	}

	report := &GapReport{
		MatchedSkills: make([]MatchedSkill, 0),
		MissingSkills: make([]MissingSkill, 0),
		TotalRequired: len(required),
	}

	for _, skill := range required {
		level, ok := userLevels[skill.Name]
		if !ok {
			report.MissingSkills = append(report.MissingSkills, MissingSkill{
				ExtractedSkill: skill.clone(),
				Match:          MatchMissing,
			})
			continue
		}

		report.MatchedSkills = append(report.MatchedSkills, MatchedSkill{
			ExtractedSkill: skill.clone(),
			UserLevel:      level,
			Match:          MatchStrong,
		})
	}

	report.TotalMatched = len(report.MatchedSkills)
	report.TotalMissing = len(report.MissingSkills)
	report.MatchPercentage = percentage(report.TotalMatched, report.TotalRequired)

	return report, nil
}

// percentage returns 100*part/total rounded half up.
func percentage(part, total int) int {
	return (200*part + total) / (2 * total)
}
