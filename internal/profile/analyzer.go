package profile

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Textual defaults used when the raw profile is missing a field.
const (
	DefaultName     = "Professional"
	DefaultRole     = "Professional"
	DefaultCompany  = "their company"
	DefaultIndustry = "their field"
)

var seniorTitleKeywords = []string{"director", "vp", "vice president", "head"}

var coreSkillKeywords = []string{
	"leadership", "management", "strategy", "communication", "negotiation",
	"sales", "marketing", "product", "project", "mentoring", "analysis",
}

var technicalSkillKeywords = []string{
	"python", "javascript", "typescript", "java", "golang", "go", "rust",
	"react", "node", "sql", "aws", "azure", "gcp", "docker", "kubernetes",
	"data", "machine learning", "ml", "ai", "cloud", "api", "devops",
	"security", "mobile", "frontend", "backend",
}

// Analyze derives a structured Context from a raw profile. It is total: any
// combination of missing fields degrades to defaults, never to an error, and
// it is deterministic for a given input.
func Analyze(p RawProfile) Context {
	personal := analyzePersonalInfo(p)
	journey := analyzeJourney(p)
	expertise := analyzeExpertise(p)
	interests := analyzeInterests(p, expertise)

	ctx := Context{
		PersonalInfo:        personal,
		ProfessionalJourney: journey,
		Expertise:           expertise,
		Interests:           interests,
	}
	ctx.ConversationTopics = buildConversationTopics(p, ctx)
	ctx.NetworkingOpportunities = buildNetworkingOpportunities(p, ctx)
	return ctx
}

func analyzePersonalInfo(p RawProfile) PersonalInfo {
	years := 0.0
	if p.YearsOfExperience != nil && *p.YearsOfExperience >= 0 {
		years = *p.YearsOfExperience
	} else {
		years = totalExperienceYears(p.Experience)
	}

	role := strings.TrimSpace(p.Title)
	company := ""
	if current, ok := p.CurrentExperience(); ok {
		if role == "" {
			role = strings.TrimSpace(current.Title)
		}
		company = strings.TrimSpace(current.Company)
	}
	if role == "" {
		role = DefaultRole
	}
	if company == "" {
		company = DefaultCompany
	}

	name := strings.TrimSpace(p.Name)
	if name == "" {
		name = DefaultName
	}

	return PersonalInfo{
		Name:              name,
		CurrentRole:       role,
		CurrentCompany:    company,
		YearsOfExperience: years,
		CareerLevel:       careerLevel(years),
	}
}

// careerLevel maps total years to a coarse seniority bucket. Title keywords
// influence entry significance, not the level itself.
func careerLevel(years float64) string {
	switch {
	case years < 3:
		return LevelEntry
	case years < 8:
		return LevelMid
	case years < 15:
		return LevelSenior
	default:
		return LevelExecutive
	}
}

func analyzeJourney(p RawProfile) Journey {
	progression := make([]ProgressionEntry, 0, len(p.Experience))
	for i, exp := range p.Experience {
		progression = append(progression, ProgressionEntry{
			Title:        strings.TrimSpace(exp.Title),
			Company:      strings.TrimSpace(exp.Company),
			Duration:     strings.TrimSpace(exp.Duration),
			Significance: roleSignificance(i, exp.Title),
		})
	}

	transitions := make([]Transition, 0)
	for i := 0; i+1 < len(p.Experience); i++ {
		current := p.Experience[i]
		previous := p.Experience[i+1]
		transitions = append(transitions, Transition{
			FromTitle:   strings.TrimSpace(previous.Title),
			FromCompany: strings.TrimSpace(previous.Company),
			ToTitle:     strings.TrimSpace(current.Title),
			ToCompany:   strings.TrimSpace(current.Company),
			Type:        classifyTransition(previous, current),
		})
	}

	industries := make([]string, 0, 1)
	if industry := strings.TrimSpace(p.Industry); industry != "" {
		industries = append(industries, industry)
	}

	companyTypes := lo.Uniq(lo.FilterMap(p.Experience, func(exp Experience, _ int) (string, bool) {
		t := companyType(exp.Company)
		return t, t != ""
	}))
	roleTypes := lo.Uniq(lo.FilterMap(p.Experience, func(exp Experience, _ int) (string, bool) {
		t := roleType(exp.Title)
		return t, t != ""
	}))

	return Journey{
		CareerProgression:  progression,
		KeyTransitions:     transitions,
		IndustryExperience: industries,
		CompanyTypes:       companyTypes,
		RoleTypes:          roleTypes,
	}
}

// roleSignificance: the most recent entry is always high, senior-titled
// entries are high, the next two are medium, the rest low.
func roleSignificance(index int, title string) string {
	if index == 0 {
		return TierHigh
	}
	lowered := strings.ToLower(title)
	for _, keyword := range seniorTitleKeywords {
		if strings.Contains(lowered, keyword) {
			return TierHigh
		}
	}
	if index <= 2 {
		return TierMedium
	}
	return TierLow
}

func classifyTransition(previous, current Experience) string {
	prevCompany := strings.ToLower(strings.TrimSpace(previous.Company))
	currCompany := strings.ToLower(strings.TrimSpace(current.Company))
	if prevCompany != "" && prevCompany == currCompany {
		return TransitionPromotion
	}
	if isEngineerTitle(previous.Title) && isManagerTitle(current.Title) {
		return TransitionCareerChange
	}
	return TransitionCompanyChange
}

func isEngineerTitle(title string) bool {
	lowered := strings.ToLower(title)
	return strings.Contains(lowered, "engineer") || strings.Contains(lowered, "developer")
}

func isManagerTitle(title string) bool {
	lowered := strings.ToLower(title)
	return strings.Contains(lowered, "manager") || strings.Contains(lowered, "management")
}

func companyType(company string) string {
	lowered := strings.ToLower(strings.TrimSpace(company))
	switch {
	case lowered == "":
		return ""
	case strings.Contains(lowered, "universit") || strings.Contains(lowered, "college") || strings.Contains(lowered, "school"):
		return "academia"
	case strings.Contains(lowered, "consult"):
		return "consulting"
	case strings.Contains(lowered, "bank") || strings.Contains(lowered, "capital") || strings.Contains(lowered, "financial"):
		return "finance"
	case strings.Contains(lowered, "lab") || strings.Contains(lowered, "institute") || strings.Contains(lowered, "research"):
		return "research"
	default:
		return "corporate"
	}
}

func roleType(title string) string {
	lowered := strings.ToLower(strings.TrimSpace(title))
	switch {
	case lowered == "":
		return ""
	case strings.Contains(lowered, "engineer") || strings.Contains(lowered, "developer") || strings.Contains(lowered, "architect"):
		return "engineering"
	case strings.Contains(lowered, "manager") || strings.Contains(lowered, "director") || strings.Contains(lowered, "head") || strings.Contains(lowered, "vp"):
		return "management"
	case strings.Contains(lowered, "sales") || strings.Contains(lowered, "account"):
		return "sales"
	case strings.Contains(lowered, "market"):
		return "marketing"
	case strings.Contains(lowered, "design"):
		return "design"
	case strings.Contains(lowered, "product"):
		return "product"
	case strings.Contains(lowered, "data") || strings.Contains(lowered, "analyst") || strings.Contains(lowered, "scientist"):
		return "data"
	default:
		return "other"
	}
}

// analyzeExpertise classifies each raw skill into at most one bucket; the
// core bucket is checked first, so a skill matching both lands in core.
func analyzeExpertise(p RawProfile) Expertise {
	core := make([]string, 0)
	technical := make([]string, 0)
	for _, skill := range p.Skills {
		trimmed := strings.TrimSpace(skill)
		if trimmed == "" {
			continue
		}
		lowered := strings.ToLower(trimmed)
		switch {
		case matchesAny(lowered, coreSkillKeywords):
			core = append(core, trimmed)
		case matchesAny(lowered, technicalSkillKeywords):
			technical = append(technical, trimmed)
		}
	}

	knowledge := make([]string, 0, 1)
	if industry := strings.TrimSpace(p.Industry); industry != "" {
		knowledge = append(knowledge, industry)
	}

	certifications := make([]string, 0)
	for _, skill := range p.Skills {
		if strings.Contains(strings.ToLower(skill), "certif") {
			certifications = append(certifications, strings.TrimSpace(skill))
		}
	}

	specializations := lo.FilterMap(p.Education, func(edu Education, _ int) (string, bool) {
		field := strings.TrimSpace(edu.Field)
		return field, field != ""
	})

	return Expertise{
		CoreSkills:        core,
		TechnicalSkills:   technical,
		IndustryKnowledge: knowledge,
		Certifications:    certifications,
		Specializations:   lo.Uniq(specializations),
	}
}

func matchesAny(lowered string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

func analyzeInterests(p RawProfile, expertise Expertise) Interests {
	educational := make([]string, 0, len(p.Education))
	for _, edu := range p.Education {
		educational = append(educational, formatEducation(edu))
	}

	professional := make([]string, 0, len(expertise.CoreSkills)+1)
	professional = append(professional, expertise.CoreSkills...)
	if industry := strings.TrimSpace(p.Industry); industry != "" {
		professional = append(professional, industry)
	}

	likely := make([]string, 0, 4)
	if industry := strings.TrimSpace(p.Industry); industry != "" {
		likely = append(likely, "trends in "+industry)
	}
	for _, skill := range topN(expertise.TechnicalSkills, 2) {
		likely = append(likely, skill)
	}
	if len(p.Education) > 0 {
		likely = append(likely, "their time at "+schoolOrDefault(p.Education[0]))
	}

	return Interests{
		ProfessionalInterests: lo.Uniq(professional),
		VolunteerCauses:       []string{},
		EducationalBackground: educational,
		Languages:             []string{},
		LikelyTopics:          likely,
	}
}

// formatEducation renders "<degree> from <school>", defaulting missing parts.
func formatEducation(edu Education) string {
	degree := strings.TrimSpace(edu.Degree)
	if degree == "" {
		degree = "Studies"
	}
	if field := strings.TrimSpace(edu.Field); field != "" && !strings.Contains(strings.ToLower(degree), strings.ToLower(field)) {
		degree = degree + " in " + field
	}
	return fmt.Sprintf("%s from %s", degree, schoolOrDefault(edu))
}

func schoolOrDefault(edu Education) string {
	if school := strings.TrimSpace(edu.School); school != "" {
		return school
	}
	return "their school"
}

func topN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
