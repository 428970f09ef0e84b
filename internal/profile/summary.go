package profile

import (
	"fmt"
	"strings"
)

// Summary renders a short narrative paragraph describing the person, suitable
// for showing above the icebreaker list.
func Summary(ctx Context) string {
	info := ctx.PersonalInfo

	var b strings.Builder
	fmt.Fprintf(&b, "%s is %s %s at %s", info.Name, article(info.CurrentRole), info.CurrentRole, info.CurrentCompany)
	if info.YearsOfExperience > 0 {
		fmt.Fprintf(&b, " with about %.1f years of experience (%s level)", info.YearsOfExperience, info.CareerLevel)
	}
	b.WriteString(".")

	if skills := combinedSkills(ctx.Expertise); len(skills) > 0 {
		fmt.Fprintf(&b, " They bring strengths in %s.", joinNatural(topN(skills, 3)))
	}

	if len(ctx.ConversationTopics) > 0 {
		fmt.Fprintf(&b, " A good opening angle: %s.", lowerFirst(ctx.ConversationTopics[0].Topic))
	}

	return b.String()
}

func combinedSkills(e Expertise) []string {
	out := make([]string, 0, len(e.CoreSkills)+len(e.TechnicalSkills))
	out = append(out, e.CoreSkills...)
	out = append(out, e.TechnicalSkills...)
	return out
}

func joinNatural(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}

func article(noun string) string {
	trimmed := strings.TrimSpace(noun)
	if trimmed == "" {
		return "a"
	}
	switch trimmed[0] {
	case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
		return "an"
	}
	return "a"
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
