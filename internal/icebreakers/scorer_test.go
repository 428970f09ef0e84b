package icebreakers

import (
	"math/rand"
	"testing"

	"icebreaker-backend/internal/profile"
)

func managerContext() profile.Context {
	return profile.Analyze(profile.RawProfile{
		Name:     "Sam",
		Title:    "Engineering Lead Manager",
		Industry: "technology",
		Skills:   []string{"Python", "Leadership"},
		Experience: []profile.Experience{
			{Title: "Engineering Lead Manager", Company: "Acme", Duration: "2 yrs", IsCurrent: true},
		},
	})
}

func TestScoreAdditiveRules(t *testing.T) {
	ctx := managerContext()

	cases := []struct {
		name    string
		starter Starter
		minimum float64
	}{
		{
			name:    "leadership_and_management",
			starter: Starter{Tags: []string{"leadership", "management"}},
			minimum: 6, // +3 lead, +3 manager
		},
		{
			name:    "technology_tag",
			starter: Starter{Tags: []string{"technology"}},
			minimum: 2,
		},
		{
			name:    "skills_tag_with_matching_skill",
			starter: Starter{Tags: []string{"skills"}},
			minimum: 2,
		},
		{
			name:    "no_matching_tags",
			starter: Starter{Tags: []string{"finance"}},
			minimum: 0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			scorer := NewScorerWithRand(rand.New(rand.NewSource(1)))
			got := scorer.Score(tc.starter, ctx)
			if got < tc.minimum {
				t.Fatalf("score %v below expected floor %v", got, tc.minimum)
			}
			if got >= tc.minimum+2 {
				t.Fatalf("score %v exceeds floor plus jitter bound: %v", got, tc.minimum+2)
			}
		})
	}
}

func TestScoreExperienceLengthRules(t *testing.T) {
	longCareer := profile.Context{}
	for i := 0; i < 6; i++ {
		longCareer.ProfessionalJourney.CareerProgression = append(
			longCareer.ProfessionalJourney.CareerProgression, profile.ProgressionEntry{},
		)
	}

	scorer := NewScorerWithRand(rand.New(rand.NewSource(1)))
	senior := scorer.Score(Starter{Tags: []string{"senior"}}, longCareer)
	if senior < 2 {
		t.Fatalf("expected senior bonus for long careers, got %v", senior)
	}

	scorer = NewScorerWithRand(rand.New(rand.NewSource(1)))
	early := scorer.Score(Starter{Tags: []string{"early_career"}}, profile.Context{})
	if early < 2 {
		t.Fatalf("expected early-career bonus for short careers, got %v", early)
	}
}

func TestScoreJitterIsReproducibleWithSeed(t *testing.T) {
	ctx := managerContext()
	starter := Starter{Tags: []string{"leadership"}}

	first := NewScorerWithRand(rand.New(rand.NewSource(42))).Score(starter, ctx)
	second := NewScorerWithRand(rand.New(rand.NewSource(42))).Score(starter, ctx)
	if first != second {
		t.Fatalf("expected identical scores for identical seeds: %v vs %v", first, second)
	}
}

func TestScoreNonNegative(t *testing.T) {
	scorer := NewScorerWithRand(rand.New(rand.NewSource(3)))
	if got := scorer.Score(Starter{}, profile.Context{}); got < 0 {
		t.Fatalf("score must be non-negative, got %v", got)
	}
}
