package risk

import (
	"testing"

	"github.com/rmoura/advisor/internal/domain"
)

func TestScore_Profiles(t *testing.T) {
	scorer := NewScorer()

	tests := []struct {
		name         string
		age          int
		objective    domain.ObjectiveCode
		horizonYears int
		wantScore    int
		wantProfile  domain.RiskProfile
	}{
		{
			name:         "young wealth builder long horizon",
			age:          25,
			objective:    domain.ObjectiveWealth,
			horizonYears: 10,
			wantScore:    7, // +3 age, +2 wealth, +2 horizon
			wantProfile:  domain.ProfileAggressive,
		},
		{
			name:         "retiree building reserve",
			age:          65,
			objective:    domain.ObjectiveReserve,
			horizonYears: 1,
			wantScore:    -5, // -1 age, -2 reserve, -2 horizon
			wantProfile:  domain.ProfileConservative,
		},
		{
			name:         "mid career retirement saver",
			age:          42,
			objective:    domain.ObjectiveRetirement,
			horizonYears: 20,
			wantScore:    4, // +1 age, +1 retirement under 45, +2 horizon
			wantProfile:  domain.ProfileAggressive,
		},
		{
			name:         "retirement flips negative at 45",
			age:          47,
			objective:    domain.ObjectiveRetirement,
			horizonYears: 10,
			wantScore:    2, // +1 age, -1 retirement at 45+, +2 horizon
			wantProfile:  domain.ProfileModerate,
		},
		{
			name:         "income seeker medium horizon",
			age:          52,
			objective:    domain.ObjectiveIncome,
			horizonYears: 4,
			wantScore:    -1, // +0 age, -1 income, 0 horizon
			wantProfile:  domain.ProfileModerate,
		},
		{
			name:         "boundary score below minus one is conservative",
			age:          60,
			objective:    domain.ObjectiveIncome,
			horizonYears: 5,
			wantScore:    -2, // -1 age, -1 income, 0 horizon
			wantProfile:  domain.ProfileConservative,
		},
		{
			name:         "boundary score two is still moderate",
			age:          35,
			objective:    domain.ObjectiveEducation,
			horizonYears: 1,
			wantScore:    1, // +2 age, +1 education, -2 horizon
			wantProfile:  domain.ProfileModerate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scorer.Score(tt.age, tt.objective, tt.horizonYears)
			if got.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", got.Score, tt.wantScore)
			}
			if got.Profile != tt.wantProfile {
				t.Errorf("Profile = %s, want %s", got.Profile, tt.wantProfile)
			}
		})
	}
}

func TestScore_MonotonicInAge(t *testing.T) {
	scorer := NewScorer()

	// For fixed objective and horizon, score must never increase as age
	// crosses the 30/40/50/60 band boundaries
	ages := []int{25, 29, 30, 39, 40, 49, 50, 59, 60, 75}

	for _, objective := range domain.AllObjectives() {
		for _, horizon := range []int{1, 5, 15} {
			prev := scorer.Score(ages[0], objective, horizon).Score
			for _, age := range ages[1:] {
				score := scorer.Score(age, objective, horizon).Score
				if score > prev {
					t.Errorf("score increased with age: objective=%s horizon=%d age=%d (%d > %d)",
						objective, horizon, age, score, prev)
				}
				prev = score
			}
		}
	}
}

func TestScore_Deterministic(t *testing.T) {
	scorer := NewScorer()

	a := scorer.Score(33, domain.ObjectiveWealth, 7)
	b := scorer.Score(33, domain.ObjectiveWealth, 7)

	if a.Score != b.Score || a.Profile != b.Profile {
		t.Errorf("identical inputs produced different results: %+v vs %+v", a, b)
	}
}

func TestScore_TrailCoversAllRules(t *testing.T) {
	scorer := NewScorer()

	got := scorer.Score(25, domain.ObjectiveWealth, 10)

	if len(got.Trail) != 3 {
		t.Fatalf("expected 3 trail entries, got %d", len(got.Trail))
	}

	sum := 0
	for _, entry := range got.Trail {
		sum += entry.Weight
	}
	if sum != got.Score {
		t.Errorf("trail weights sum %d does not match score %d", sum, got.Score)
	}
}
