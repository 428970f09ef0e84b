package icebreakers

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"icebreaker-backend/internal/profile"
)

// Skill keywords that make skills/technical questions more relevant.
var scoringSkillKeywords = []string{
	"python", "javascript", "management", "leadership", "data", "analysis",
}

// Scorer assigns a relevance score to a (starter, profile) pair. Scores are
// non-negative and only meaningful relative to each other within one call.
// A bounded random jitter breaks ties so identical profiles don't always see
// identical rankings.
type Scorer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewScorer returns a scorer with time-seeded jitter.
func NewScorer() *Scorer {
	return NewScorerWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewScorerWithRand returns a scorer drawing jitter from the given source,
// so tests can make ordering reproducible.
func NewScorerWithRand(rng *rand.Rand) *Scorer {
	return &Scorer{rng: rng}
}

// Score applies the additive point rules plus jitter in [0, 2).
func (s *Scorer) Score(starter Starter, ctx profile.Context) float64 {
	score := 0.0

	title := strings.ToLower(ctx.PersonalInfo.CurrentRole)
	if strings.Contains(title, "lead") && starter.HasTag("leadership") {
		score += 3
	}
	if strings.Contains(title, "manager") && starter.HasTag("management") {
		score += 3
	}
	if isEngineeringTitle(title) && starter.HasTag("technical") {
		score += 3
	}

	industry := ""
	if len(ctx.Expertise.IndustryKnowledge) > 0 {
		industry = strings.ToLower(ctx.Expertise.IndustryKnowledge[0])
	}
	if strings.Contains(industry, "tech") && starter.HasTag("technology") {
		score += 2
	}
	if strings.Contains(industry, "finance") && starter.HasTag("finance") {
		score += 2
	}

	if hasScoringSkill(ctx) && (starter.HasTag("skills") || starter.HasTag("technical")) {
		score += 2
	}

	experienceCount := len(ctx.ProfessionalJourney.CareerProgression)
	if experienceCount > 5 && starter.HasTag("senior") {
		score += 2
	}
	if experienceCount < 3 && starter.HasTag("early_career") {
		score += 2
	}

	score += s.jitter()
	return score
}

func (s *Scorer) jitter() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64() * 2
}

func isEngineeringTitle(lowered string) bool {
	return strings.Contains(lowered, "engineer") ||
		strings.Contains(lowered, "developer") ||
		strings.Contains(lowered, "programmer") ||
		strings.Contains(lowered, "software")
}

func hasScoringSkill(ctx profile.Context) bool {
	skills := make([]string, 0, len(ctx.Expertise.CoreSkills)+len(ctx.Expertise.TechnicalSkills))
	skills = append(skills, ctx.Expertise.CoreSkills...)
	skills = append(skills, ctx.Expertise.TechnicalSkills...)
	for _, skill := range skills {
		lowered := strings.ToLower(skill)
		for _, keyword := range scoringSkillKeywords {
			if strings.Contains(lowered, keyword) {
				return true
			}
		}
	}
	return false
}
