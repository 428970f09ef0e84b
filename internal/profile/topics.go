package profile

import (
	"fmt"
	"sort"
	"strings"
)

// buildConversationTopics emits up to one topic per signal: current role,
// industry, each significant transition, top-3 technical skills, and the
// primary education entry. Generation is additive; the result is sorted by
// relevance tier, stable for equal tiers.
func buildConversationTopics(p RawProfile, ctx Context) []Topic {
	topics := make([]Topic, 0, 8)

	info := ctx.PersonalInfo
	if info.CurrentRole != DefaultRole || info.CurrentCompany != DefaultCompany {
		topics = append(topics, Topic{
			Topic:             fmt.Sprintf("Their work as %s at %s", info.CurrentRole, info.CurrentCompany),
			Relevance:         TierHigh,
			Context:           "current position",
			SuggestedApproach: fmt.Sprintf("Ask what a typical week looks like as %s at %s", info.CurrentRole, info.CurrentCompany),
		})
	}

	if industry := strings.TrimSpace(p.Industry); industry != "" {
		topics = append(topics, Topic{
			Topic:             "Where " + industry + " is heading",
			Relevance:         TierMedium,
			Context:           "industry",
			SuggestedApproach: "Ask what changes in " + industry + " they find most interesting right now",
		})
	}

	for _, transition := range ctx.ProfessionalJourney.KeyTransitions {
		if transition.Type == TransitionCompanyChange {
			continue
		}
		relevance := TierMedium
		if transition.Type == TransitionCareerChange {
			relevance = TierHigh
		}
		topics = append(topics, Topic{
			Topic:             fmt.Sprintf("Their move from %s to %s", fallbackText(transition.FromTitle, "their previous role"), fallbackText(transition.ToTitle, "their current role")),
			Relevance:         relevance,
			Context:           "career transition",
			SuggestedApproach: "Ask what prompted the change and what surprised them most",
		})
	}

	for _, skill := range topN(ctx.Expertise.TechnicalSkills, 3) {
		topics = append(topics, Topic{
			Topic:             "Working with " + skill,
			Relevance:         TierMedium,
			Context:           "technical skill",
			SuggestedApproach: "Ask how they got into " + skill + " and where they see it going",
		})
	}

	if len(p.Education) > 0 {
		topics = append(topics, Topic{
			Topic:             formatEducation(p.Education[0]),
			Relevance:         TierLow,
			Context:           "education",
			SuggestedApproach: "Ask how their studies shaped the path they took",
		})
	}

	sort.SliceStable(topics, func(i, j int) bool {
		return tierRank(topics[i].Relevance) > tierRank(topics[j].Relevance)
	})
	return topics
}

// buildNetworkingOpportunities applies one independent rule per signal; each
// rule contributes at most one opportunity and there is no cross-rule scoring.
func buildNetworkingOpportunities(p RawProfile, ctx Context) []Opportunity {
	opportunities := make([]Opportunity, 0, 4)

	if industry := strings.TrimSpace(p.Industry); industry != "" {
		opportunities = append(opportunities, Opportunity{
			Type:        OppIndustryConnection,
			Description: "You both move in the " + industry + " world; compare notes on the space",
			Confidence:  TierMedium,
		})
	}

	if len(ctx.Expertise.CoreSkills) > 0 {
		opportunities = append(opportunities, Opportunity{
			Type:        OppSkillSynergy,
			Description: "Their strength in " + ctx.Expertise.CoreSkills[0] + " could complement your own work",
			Confidence:  TierHigh,
		})
	}

	if level := ctx.PersonalInfo.CareerLevel; level == LevelSenior || level == LevelExecutive {
		opportunities = append(opportunities, Opportunity{
			Type:        OppCareerAdvice,
			Description: "With their seniority they are well placed to share career advice",
			Confidence:  TierHigh,
		})
	}

	if len(p.Education) > 0 {
		opportunities = append(opportunities, Opportunity{
			Type:        OppEducationalBackground,
			Description: "Shared academic ground: " + formatEducation(p.Education[0]),
			Confidence:  TierMedium,
		})
	}

	return opportunities
}

func fallbackText(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
}
