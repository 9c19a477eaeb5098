// Package risk converts client demographics into a risk score and profile.
package risk

import (
	"fmt"

	"github.com/rmoura/advisor/internal/domain"
)

// Score thresholds for profile mapping
const (
	conservativeBelow = -1 // score < -1 -> conservative
	moderateUpTo      = 2  // -1 <= score <= 2 -> moderate, above -> aggressive
)

// Scorer derives a risk profile from age, objective and horizon.
// Pure and stateless: identical inputs always produce identical output.
type Scorer struct{}

// NewScorer creates a new risk scorer
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score calculates the risk score and maps it to a profile.
// The question trail records every rule that contributed, for audit.
func (s *Scorer) Score(age int, objective domain.ObjectiveCode, horizonYears int) domain.RiskAssessment {
	score := 0
	trail := make([]domain.TrailEntry, 0, 3)

	ageWeight := ageBandWeight(age)
	score += ageWeight
	trail = append(trail, domain.TrailEntry{
		QuestionID: "age_band",
		Answer:     fmt.Sprintf("%d", age),
		Weight:     ageWeight,
	})

	objWeight := objectiveWeight(objective, age)
	score += objWeight
	trail = append(trail, domain.TrailEntry{
		QuestionID: "objective",
		Answer:     string(objective),
		Weight:     objWeight,
	})

	horizonWeight := horizonBandWeight(horizonYears)
	score += horizonWeight
	trail = append(trail, domain.TrailEntry{
		QuestionID: "horizon_years",
		Answer:     fmt.Sprintf("%d", horizonYears),
		Weight:     horizonWeight,
	})

	return domain.RiskAssessment{
		Profile: profileForScore(score),
		Score:   score,
		Trail:   trail,
	}
}

// ageBandWeight contributes more risk capacity for younger clients
func ageBandWeight(age int) int {
	switch {
	case age < 30:
		return 3
	case age < 40:
		return 2
	case age < 50:
		return 1
	case age < 60:
		return 0
	default:
		return -1
	}
}

// objectiveWeight contributes a fixed delta per objective.
// Retirement flips sign at 45: accumulating vs preserving.
func objectiveWeight(objective domain.ObjectiveCode, age int) int {
	switch objective {
	case domain.ObjectiveRetirement:
		if age < 45 {
			return 1
		}
		return -1
	case domain.ObjectiveReserve:
		return -2
	case domain.ObjectiveWealth:
		return 2
	case domain.ObjectiveIncome:
		return -1
	case domain.ObjectiveEducation:
		return 1
	default:
		return 0
	}
}

// horizonBandWeight contributes more risk capacity for longer horizons
func horizonBandWeight(years int) int {
	switch {
	case years <= 2:
		return -2
	case years <= 5:
		return 0
	default:
		return 2
	}
}

func profileForScore(score int) domain.RiskProfile {
	switch {
	case score < conservativeBelow:
		return domain.ProfileConservative
	case score <= moderateUpTo:
		return domain.ProfileModerate
	default:
		return domain.ProfileAggressive
	}
}
