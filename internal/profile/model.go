package profile

// RawProfile is the loosely structured input handed to the analyzer by a
// profile source (manual entry, card import, upstream scraper). Every field
// is optional; derivations fall back to textual defaults instead of failing.
type RawProfile struct {
	Name              string       `json:"name,omitempty"`
	Title             string       `json:"title,omitempty"`
	Bio               string       `json:"bio,omitempty"`
	Skills            []string     `json:"skills,omitempty"`
	Experience        []Experience `json:"experience,omitempty"`
	Education         []Education  `json:"education,omitempty"`
	Industry          string       `json:"industry,omitempty"`
	Location          string       `json:"location,omitempty"`
	YearsOfExperience *float64     `json:"yearsOfExperience,omitempty"`
}

// Experience is one career entry, most recent first.
type Experience struct {
	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
	Duration    string `json:"duration,omitempty"`
	IsCurrent   bool   `json:"isCurrent,omitempty"`
	Description string `json:"description,omitempty"`
}

// Education is one schooling entry.
type Education struct {
	School    string `json:"school,omitempty"`
	Degree    string `json:"degree,omitempty"`
	Field     string `json:"field,omitempty"`
	StartYear int    `json:"startYear,omitempty"`
	EndYear   int    `json:"endYear,omitempty"`
}

// CurrentExperience returns the most recent experience entry, preferring one
// flagged as current.
func (p RawProfile) CurrentExperience() (Experience, bool) {
	for _, exp := range p.Experience {
		if exp.IsCurrent {
			return exp, true
		}
	}
	if len(p.Experience) > 0 {
		return p.Experience[0], true
	}
	return Experience{}, false
}
