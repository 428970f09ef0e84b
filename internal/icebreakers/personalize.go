package icebreakers

import (
	"fmt"
	"math/rand"
	"regexp"
	"sync"
	"time"

	"icebreaker-backend/internal/profile"
)

var (
	workPattern       = regexp.MustCompile(`(?i)your (work|job|role|career)`)
	skillsPattern     = regexp.MustCompile(`(?i)your skills`)
	backgroundPattern = regexp.MustCompile(`(?i)your background`)
)

// PersonalizedQuestion is the engine's output unit.
type PersonalizedQuestion struct {
	OriginalQuestion     string  `json:"originalQuestion"`
	PersonalizedQuestion string  `json:"personalizedQuestion"`
	Category             string  `json:"category"`
	Subcategory          string  `json:"subcategory"`
	RelevanceScore       float64 `json:"relevanceScore"`
}

// Personalizer rewrites starter templates with profile attributes via pattern
// substitution. It never fails: the worst case is the unmodified template.
// A coin flip decides whether to prefix a greeting.
type Personalizer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewPersonalizer returns a personalizer with a time-seeded coin.
func NewPersonalizer() *Personalizer {
	return NewPersonalizerWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewPersonalizerWithRand injects the coin-flip source for tests.
func NewPersonalizerWithRand(rng *rand.Rand) *Personalizer {
	return &Personalizer{rng: rng}
}

// Personalize applies each substitution rule independently, only when the
// backing profile field is actually present. Unmatched patterns stay verbatim.
func (p *Personalizer) Personalize(pick Scored, ctx profile.Context) PersonalizedQuestion {
	text := pick.Starter.Question

	info := ctx.PersonalInfo
	if hasRealRole(info) {
		text = workPattern.ReplaceAllString(text, fmt.Sprintf("your work as %s at %s", info.CurrentRole, info.CurrentCompany))
	}

	if skills := combinedSkills(ctx.Expertise); len(skills) >= 2 {
		text = skillsPattern.ReplaceAllString(text, fmt.Sprintf("your expertise in %s and %s", skills[0], skills[1]))
	}

	if len(ctx.Interests.EducationalBackground) > 0 {
		text = backgroundPattern.ReplaceAllString(text, "your background from "+ctx.Interests.EducationalBackground[0])
	}

	if p.coinFlip() && hasRealName(info) {
		text = fmt.Sprintf("Hi %s! %s", info.Name, text)
	}

	return PersonalizedQuestion{
		OriginalQuestion:     pick.Starter.Question,
		PersonalizedQuestion: text,
		Category:             pick.Starter.Category,
		Subcategory:          pick.Starter.Subcategory,
		RelevanceScore:       pick.Score,
	}
}

func (p *Personalizer) coinFlip() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.Float64() < 0.5
}

func hasRealRole(info profile.PersonalInfo) bool {
	return info.CurrentRole != "" && info.CurrentRole != profile.DefaultRole &&
		info.CurrentCompany != "" && info.CurrentCompany != profile.DefaultCompany
}

func hasRealName(info profile.PersonalInfo) bool {
	return info.Name != "" && info.Name != profile.DefaultName
}

func combinedSkills(e profile.Expertise) []string {
	out := make([]string, 0, len(e.CoreSkills)+len(e.TechnicalSkills))
	out = append(out, e.CoreSkills...)
	out = append(out, e.TechnicalSkills...)
	return out
}
