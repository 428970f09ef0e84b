package extract

import (
	"regexp"
	"strings"

	"icebreaker-backend/internal/profile"
)

var titleAtCompany = regexp.MustCompile(`(?i)^(.{2,80}?)\s+at\s+(.{2,80})$`)

// ParseProfile builds a loose profile from the plain text of an imported
// business card, resume header, or exported profile page. The heuristics
// are intentionally forgiving: anything that cannot be parsed is left
// empty and the analyzer fills in defaults downstream.
func ParseProfile(text string) profile.RawProfile {
	var raw profile.RawProfile

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		lower := strings.ToLower(line)
		switch {
		case strings.HasPrefix(lower, "skills:"):
			raw.Skills = append(raw.Skills, splitList(line[len("skills:"):])...)
			continue
		case strings.HasPrefix(lower, "industry:"):
			raw.Industry = strings.TrimSpace(line[len("industry:"):])
			continue
		case strings.HasPrefix(lower, "location:"):
			raw.Location = strings.TrimSpace(line[len("location:"):])
			continue
		case strings.HasPrefix(lower, "education:"):
			if school := strings.TrimSpace(line[len("education:"):]); school != "" {
				raw.Education = append(raw.Education, profile.Education{School: school})
			}
			continue
		}

		if raw.Name == "" {
			raw.Name = line
			continue
		}

		if raw.Title == "" {
			if m := titleAtCompany.FindStringSubmatch(line); m != nil {
				raw.Title = strings.TrimSpace(m[1])
				raw.Experience = append(raw.Experience, profile.Experience{
					Title:     raw.Title,
					Company:   strings.TrimSpace(m[2]),
					IsCurrent: true,
				})
			}
		}
	}

	return raw
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
