package icebreakers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"icebreaker-backend/internal/llm"
	"icebreaker-backend/internal/profile"
)

const defaultAITimeout = 12 * time.Second

// aiCustomization is one item of the structured reply the completion service
// is asked to produce.
type aiCustomization struct {
	QuestionID         int     `json:"questionId"`
	CustomizedQuestion string  `json:"customizedQuestion"`
	RelevanceScore     float64 `json:"relevanceScore"`
	Reasoning          string  `json:"reasoning"`
}

// AICustomizer rewrites a batch of selected starters through an external
// completion service. It is strictly best-effort: any transport or parse
// problem surfaces as an error so the caller can fall back to rules.
type AICustomizer struct {
	client  llm.Client
	timeout time.Duration
}

// NewAICustomizer wraps the given client. A zero timeout gets the default.
func NewAICustomizer(client llm.Client, timeout time.Duration) *AICustomizer {
	if timeout <= 0 {
		timeout = defaultAITimeout
	}
	return &AICustomizer{client: client, timeout: timeout}
}

// Customize sends the batch and maps the reply back onto the picks, in pick
// order. Every pick must be covered by a valid reply item; anything less
// fails the whole batch.
func (a *AICustomizer) Customize(ctx context.Context, pctx profile.Context, picks []Scored) ([]PersonalizedQuestion, error) {
	if a.client == nil {
		return nil, errors.New("no completion client configured")
	}
	if len(picks) == 0 {
		return []PersonalizedQuestion{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	reply, err := a.client.Complete(ctx, buildCustomizePrompt(pctx, picks))
	if err != nil {
		return nil, err
	}

	items, err := parseCustomizations(reply)
	if err != nil {
		return nil, err
	}

	byID := make(map[int]aiCustomization, len(items))
	for _, item := range items {
		if strings.TrimSpace(item.CustomizedQuestion) == "" {
			return nil, fmt.Errorf("customization for question %d has empty text", item.QuestionID)
		}
		byID[item.QuestionID] = item
	}

	out := make([]PersonalizedQuestion, 0, len(picks))
	for _, pick := range picks {
		item, ok := byID[pick.Starter.ID]
		if !ok {
			return nil, fmt.Errorf("customization missing for question %d", pick.Starter.ID)
		}
		score := pick.Score
		if item.RelevanceScore > 0 {
			score = item.RelevanceScore
		}
		out = append(out, PersonalizedQuestion{
			OriginalQuestion:     pick.Starter.Question,
			PersonalizedQuestion: strings.TrimSpace(item.CustomizedQuestion),
			Category:             pick.Starter.Category,
			Subcategory:          pick.Starter.Subcategory,
			RelevanceScore:       score,
		})
	}
	return out, nil
}

func buildCustomizePrompt(pctx profile.Context, picks []Scored) string {
	var b strings.Builder
	b.WriteString("You help personalize networking conversation starters.\n\n")
	b.WriteString("About the person:\n")
	fmt.Fprintf(&b, "- Name: %s\n", pctx.PersonalInfo.Name)
	fmt.Fprintf(&b, "- Role: %s at %s\n", pctx.PersonalInfo.CurrentRole, pctx.PersonalInfo.CurrentCompany)
	fmt.Fprintf(&b, "- Career level: %s (%.1f years)\n", pctx.PersonalInfo.CareerLevel, pctx.PersonalInfo.YearsOfExperience)
	if skills := combinedSkills(pctx.Expertise); len(skills) > 0 {
		fmt.Fprintf(&b, "- Skills: %s\n", strings.Join(skills, ", "))
	}
	if len(pctx.ConversationTopics) > 0 {
		b.WriteString("- Suggested topics:\n")
		for _, topic := range pctx.ConversationTopics {
			fmt.Fprintf(&b, "  - [%s] %s\n", topic.Relevance, topic.Topic)
		}
	}

	b.WriteString("\nQuestions to customize:\n")
	for _, pick := range picks {
		fmt.Fprintf(&b, "- id %d: %s\n", pick.Starter.ID, pick.Starter.Question)
	}

	b.WriteString(`
Rewrite each question so it feels personal to this specific person while
keeping its intent. Reply with only a JSON array, one object per question:
[{"questionId": <id>, "customizedQuestion": "...", "relevanceScore": <0-10>, "reasoning": "..."}]
`)
	return b.String()
}

// parseCustomizations tolerates prose around the payload: it extracts the
// first balanced JSON array or object from the reply and parses that.
func parseCustomizations(reply string) ([]aiCustomization, error) {
	block, err := firstStructuredBlock(reply)
	if err != nil {
		return nil, err
	}

	if strings.HasPrefix(block, "{") {
		var single aiCustomization
		if err := json.Unmarshal([]byte(block), &single); err != nil {
			return nil, fmt.Errorf("parse customization object: %w", err)
		}
		return []aiCustomization{single}, nil
	}

	var items []aiCustomization
	if err := json.Unmarshal([]byte(block), &items); err != nil {
		return nil, fmt.Errorf("parse customization array: %w", err)
	}
	if len(items) == 0 {
		return nil, errors.New("customization array is empty")
	}
	return items, nil
}

// firstStructuredBlock scans for the first '[' or '{' and returns the
// substring up to its balanced closing bracket, skipping brackets inside
// JSON strings.
func firstStructuredBlock(s string) (string, error) {
	start := strings.IndexAny(s, "[{")
	if start < 0 {
		return "", errors.New("no structured block in response")
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		ch := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '[', '{':
			depth++
		case ']', '}':
			depth--
			if depth == 0 {
				return s[start : i+1], nil
			}
		}
	}
	return "", errors.New("unbalanced structured block in response")
}
