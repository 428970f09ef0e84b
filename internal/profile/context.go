package profile

// Career levels derived from total years of experience.
const (
	LevelEntry     = "entry"
	LevelMid       = "mid"
	LevelSenior    = "senior"
	LevelExecutive = "executive"
)

// Relevance / significance / confidence tiers.
const (
	TierHigh   = "high"
	TierMedium = "medium"
	TierLow    = "low"
)

// Transition classifications.
const (
	TransitionPromotion     = "promotion"
	TransitionCareerChange  = "career_change"
	TransitionCompanyChange = "company_change"
)

// Networking opportunity types.
const (
	OppSharedExperience      = "shared_experience"
	OppIndustryConnection    = "industry_connection"
	OppSkillSynergy          = "skill_synergy"
	OppEducationalBackground = "educational_background"
	OppCareerAdvice          = "career_advice"
)

// Context is the structured view of a profile, immutable once computed.
type Context struct {
	PersonalInfo            PersonalInfo  `json:"personalInfo"`
	ProfessionalJourney     Journey       `json:"professionalJourney"`
	Expertise               Expertise     `json:"expertise"`
	Interests               Interests     `json:"interests"`
	ConversationTopics      []Topic       `json:"conversationTopics"`
	NetworkingOpportunities []Opportunity `json:"networkingOpportunities"`
}

// PersonalInfo summarizes who the person is right now.
type PersonalInfo struct {
	Name              string  `json:"name"`
	CurrentRole       string  `json:"currentRole"`
	CurrentCompany    string  `json:"currentCompany"`
	YearsOfExperience float64 `json:"yearsOfExperience"`
	CareerLevel       string  `json:"careerLevel"`
}

// Journey captures how the career unfolded over time.
type Journey struct {
	CareerProgression  []ProgressionEntry `json:"careerProgression"`
	KeyTransitions     []Transition       `json:"keyTransitions"`
	IndustryExperience []string           `json:"industryExperience"`
	CompanyTypes       []string           `json:"companyTypes"`
	RoleTypes          []string           `json:"roleTypes"`
}

// ProgressionEntry mirrors one experience item with a derived significance tier.
type ProgressionEntry struct {
	Title        string `json:"title"`
	Company      string `json:"company"`
	Duration     string `json:"duration"`
	Significance string `json:"significance"`
}

// Transition describes one adjacent-pair move in reverse-chronological order.
type Transition struct {
	FromTitle   string `json:"fromTitle"`
	FromCompany string `json:"fromCompany"`
	ToTitle     string `json:"toTitle"`
	ToCompany   string `json:"toCompany"`
	Type        string `json:"type"`
}

// Expertise buckets the raw skills and related signals.
type Expertise struct {
	CoreSkills        []string `json:"coreSkills"`
	TechnicalSkills   []string `json:"technicalSkills"`
	IndustryKnowledge []string `json:"industryKnowledge"`
	Certifications    []string `json:"certifications"`
	Specializations   []string `json:"specializations"`
}

// Interests collects likely talking interests outside the strict career line.
type Interests struct {
	ProfessionalInterests []string `json:"professionalInterests"`
	VolunteerCauses       []string `json:"volunteerCauses"`
	EducationalBackground []string `json:"educationalBackground"`
	Languages             []string `json:"languages"`
	LikelyTopics          []string `json:"likelyTopics"`
}

// Topic is a suggested conversation subject with a tiered relevance.
type Topic struct {
	Topic             string `json:"topic"`
	Relevance         string `json:"relevance"`
	Context           string `json:"context"`
	SuggestedApproach string `json:"suggestedApproach"`
}

// Opportunity is a possible networking angle with a confidence tier.
type Opportunity struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Confidence  string `json:"confidence"`
}

func tierRank(tier string) int {
	switch tier {
	case TierHigh:
		return 3
	case TierMedium:
		return 2
	default:
		return 1
	}
}
