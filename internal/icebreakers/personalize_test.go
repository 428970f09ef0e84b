package icebreakers

import (
	"math/rand"
	"strings"
	"testing"

	"icebreaker-backend/internal/profile"
)

func richContext() profile.Context {
	return profile.Analyze(profile.RawProfile{
		Name:   "Dana Reyes",
		Title:  "Engineering Manager",
		Skills: []string{"Leadership", "Python"},
		Experience: []profile.Experience{
			{Title: "Engineering Manager", Company: "Acme", IsCurrent: true},
		},
		Education: []profile.Education{{School: "State University", Degree: "BSc", Field: "Computer Science"}},
	})
}

// stripGreeting removes the optional coin-flip prefix so assertions hold for
// either outcome.
func stripGreeting(text, name string) string {
	return strings.TrimPrefix(text, "Hi "+name+"! ")
}

func TestPersonalizeWorkSubstitution(t *testing.T) {
	p := NewPersonalizerWithRand(rand.New(rand.NewSource(1)))
	got := p.Personalize(Scored{Starter: Starter{Question: "What do you enjoy most about your work these days?"}}, richContext())

	text := stripGreeting(got.PersonalizedQuestion, "Dana Reyes")
	expected := "What do you enjoy most about your work as Engineering Manager at Acme these days?"
	if text != expected {
		t.Fatalf("expected %q, got %q", expected, text)
	}
	if got.OriginalQuestion != "What do you enjoy most about your work these days?" {
		t.Fatalf("original question must be preserved, got %q", got.OriginalQuestion)
	}
}

func TestPersonalizeRoleCareerJobVariants(t *testing.T) {
	ctx := richContext()
	cases := []struct {
		input    string
		expected string
	}{
		{"Tell me about your role.", "Tell me about your work as Engineering Manager at Acme."},
		{"Tell me about your career.", "Tell me about your work as Engineering Manager at Acme."},
		{"Tell me about your job.", "Tell me about your work as Engineering Manager at Acme."},
	}
	for _, tc := range cases {
		p := NewPersonalizerWithRand(rand.New(rand.NewSource(2)))
		got := p.Personalize(Scored{Starter: Starter{Question: tc.input}}, ctx)
		if text := stripGreeting(got.PersonalizedQuestion, "Dana Reyes"); text != tc.expected {
			t.Fatalf("input %q: expected %q, got %q", tc.input, tc.expected, text)
		}
	}
}

func TestPersonalizeSkillsSubstitution(t *testing.T) {
	p := NewPersonalizerWithRand(rand.New(rand.NewSource(3)))
	got := p.Personalize(Scored{Starter: Starter{Question: "Which of your skills has paid off most?"}}, richContext())

	text := stripGreeting(got.PersonalizedQuestion, "Dana Reyes")
	expected := "Which of your expertise in Leadership and Python has paid off most?"
	if text != expected {
		t.Fatalf("expected %q, got %q", expected, text)
	}
}

func TestPersonalizeBackgroundSubstitution(t *testing.T) {
	p := NewPersonalizerWithRand(rand.New(rand.NewSource(4)))
	got := p.Personalize(Scored{Starter: Starter{Question: "What's surprising about your background?"}}, richContext())

	text := stripGreeting(got.PersonalizedQuestion, "Dana Reyes")
	expected := "What's surprising about your background from BSc in Computer Science from State University?"
	if text != expected {
		t.Fatalf("expected %q, got %q", expected, text)
	}
}

func TestPersonalizeLeavesTemplateWhenFieldsMissing(t *testing.T) {
	p := NewPersonalizerWithRand(rand.New(rand.NewSource(5)))
	empty := profile.Analyze(profile.RawProfile{})
	question := "What do you enjoy most about your work, your skills and your background?"

	got := p.Personalize(Scored{Starter: Starter{Question: question}}, empty)
	if got.PersonalizedQuestion != question {
		t.Fatalf("expected verbatim template for empty profile, got %q", got.PersonalizedQuestion)
	}
}

func TestPersonalizeNeverGreetsDefaultName(t *testing.T) {
	anonymous := profile.Analyze(profile.RawProfile{
		Title: "Engineer",
		Experience: []profile.Experience{
			{Title: "Engineer", Company: "Acme", IsCurrent: true},
		},
	})

	for seed := int64(0); seed < 20; seed++ {
		p := NewPersonalizerWithRand(rand.New(rand.NewSource(seed)))
		got := p.Personalize(Scored{Starter: Starter{Question: "How is it going?"}}, anonymous)
		if strings.HasPrefix(got.PersonalizedQuestion, "Hi ") {
			t.Fatalf("seed %d: greeted a profile without a real name: %q", seed, got.PersonalizedQuestion)
		}
	}
}

func TestPersonalizeCarriesScoreAndCategories(t *testing.T) {
	p := NewPersonalizerWithRand(rand.New(rand.NewSource(6)))
	got := p.Personalize(Scored{
		Starter: Starter{Question: "q", Category: "soft_skills", Subcategory: "leadership"},
		Score:   4.25,
	}, profile.Analyze(profile.RawProfile{}))

	if got.Category != "soft_skills" || got.Subcategory != "leadership" || got.RelevanceScore != 4.25 {
		t.Fatalf("metadata not carried: %+v", got)
	}
}
