// Package matching extracts catalog skills from free text and compares them
// with the skills a user declares. Everything here is a pure function of its
// inputs and the catalog it was built with.
package matching

import (
	"errors"
	"slices"

	"github.com/spigell/skillsync/internal/catalog"
)

// ErrInvalidInput is returned when an operation receives an argument it
// cannot work with, such as an empty list of required skills.
var ErrInvalidInput = errors.New("invalid input")

type MatchTag string

const (
	MatchStrong  MatchTag = "strong"
	MatchMissing MatchTag = "missing"
)

// ExtractedSkill is a catalog definition found in a job description.
type ExtractedSkill struct {
	Name      string        `json:"name"`
	Category  string        `json:"category"`
	Level     catalog.Level `json:"level"`
	Resources []string      `json:"resources"`
}

func newExtractedSkill(def catalog.Definition) ExtractedSkill {
	return ExtractedSkill{
		Name:      def.Name,
		Category:  def.Category,
		Level:     def.Level,
		Resources: def.Resources,
	}
}

func (s ExtractedSkill) clone() ExtractedSkill {
	s.Resources = slices.Clone(s.Resources)
	return s
}

// UserSkill is a skill the user claims to have. Level is not validated.
type UserSkill struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

type MatchedSkill struct {
	ExtractedSkill
	UserLevel string   `json:"userLevel"`
	Match     MatchTag `json:"match"`
}

type MissingSkill struct {
	ExtractedSkill
	Match MatchTag `json:"match"`
}

// GapReport compares required skills against the user's skills.
// TotalMatched + TotalMissing always equals TotalRequired.
type GapReport struct {
	MatchedSkills   []MatchedSkill `json:"matchedSkills"`
	MissingSkills   []MissingSkill `json:"missingSkills"`
	MatchPercentage int            `json:"matchPercentage"`
	TotalRequired   int            `json:"totalRequired"`
	TotalMatched    int            `json:"totalMatched"`
	TotalMissing    int            `json:"totalMissing"`
}

// JobAnalysis is the result of scanning one job description.
type JobAnalysis struct {
	Skills      []ExtractedSkill `json:"skills"`
	TotalSkills int              `json:"totalSkills"`
	Categories  Categories       `json:"categories"`
}
