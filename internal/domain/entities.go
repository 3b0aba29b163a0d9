// Package domain defines the core entities, ports, and sentinel errors
// shared by every stage of the evaluation pipeline (C1-C7). Every type here
// is created by its producing stage and consumed read-only downstream; none
// is mutated after being returned, so a single evaluation's data chain is
// safe to hand to concurrent callers without further synchronization.
package domain

// MIME types accepted by the Document Extractor (C1).
const (
	MimePDF   = "application/pdf"
	MimeDOCX  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeDOC   = "application/msword"
	MimePlain = "text/plain"
)

// SkillCategory enumerates the fixed skill categories of §3/§4.4.
type SkillCategory string

// Skill categories.
const (
	CategoryProgrammingLanguages SkillCategory = "programming_languages"
	CategoryWebTechnologies      SkillCategory = "web_technologies"
	CategoryDatabases            SkillCategory = "databases"
	CategoryCloudPlatforms       SkillCategory = "cloud_platforms"
	CategoryDataScience          SkillCategory = "data_science"
	CategoryMobileDevelopment    SkillCategory = "mobile_development"
	CategoryDevOpsTools          SkillCategory = "devops_tools"
	CategorySoftSkills           SkillCategory = "soft_skills"
)

// SkillBucket enumerates the four buckets a SkillProfile groups skills into.
type SkillBucket string

// Skill buckets.
const (
	BucketTechnical SkillBucket = "technical_skills"
	BucketSoft      SkillBucket = "soft_skills"
	BucketDomain    SkillBucket = "domain_expertise"
	BucketTools     SkillBucket = "tools_platforms"
)

// MatchType enumerates the three cascade tiers of the Semantic Matcher (C5).
type MatchType string

// Match types.
const (
	MatchExact    MatchType = "exact"
	MatchFuzzy    MatchType = "fuzzy"
	MatchSemantic MatchType = "semantic"
)

// Suitability is the categorical verdict attached to a FinalScore.
type Suitability string

// Suitability tiers.
const (
	SuitabilityHigh   Suitability = "High"
	SuitabilityMedium Suitability = "Medium"
	SuitabilityLow    Suitability = "Low"
)

// ConfidenceLevel buckets a FinalScore's aggregate reliability.
type ConfidenceLevel string

// Confidence levels.
const (
	ConfidenceHigh   ConfidenceLevel = "high"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceLow    ConfidenceLevel = "low"
)

// UrgencyLevel enumerates a job posting's hiring urgency (§4.3).
type UrgencyLevel string

// Urgency levels.
const (
	UrgencyHigh   UrgencyLevel = "high"
	UrgencyMedium UrgencyLevel = "medium"
	UrgencyLow    UrgencyLevel = "low"
)

// NormalizedTextBlock is the output of the Document Extractor (C1): a
// normalized unicode string plus a parse-confidence in [0,1].
type NormalizedTextBlock struct {
	Text            string
	ParseConfidence float64
}

// ContactInfo holds optional contact fields extracted from a resume.
// Invariant: Email and Phone, when set, match their respective regex shapes
// (enforced by the extractor that populates this struct, not by the struct
// itself — a degraded/partial value is never constructed with an
// unvalidated field set).
type ContactInfo struct {
	Name      string
	Email     string
	Phone     string
	LinkedIn  string
	GitHub    string
	Portfolio string
	Location  string
}

// EducationEntry describes one education record. At least one of
// {Degree, Institution} is non-empty for an entry to be retained by C2.
type EducationEntry struct {
	Degree          string
	Institution     string
	Location        string
	GraduationYear  *int
	GPA             *float64
	Honors          []string
}

// WorkExperienceEntry describes one employment record.
// Invariant: Title and Company are non-empty.
type WorkExperienceEntry struct {
	Title        string
	Company      string
	Location     string
	StartDate    string
	EndDate      string // "Present" when open-ended
	Description  []string
	Technologies []string
	Achievements []string
}

// ProjectEntry describes one personal/professional project.
type ProjectEntry struct {
	Title        string
	Description  string
	Technologies []string
	URL          string
	StartDate    string
	EndDate      string
}

// ExtractedSkill is one canonicalized skill hit produced by the Skill
// Extractor (C4).
type ExtractedSkill struct {
	Name         string
	Category     SkillCategory
	Confidence   float64
	Context      string // up to 100 chars around the match
	Aliases      []string
	Proficiency  string
}

// SkillProfile is the categorized, deduplicated set of skills the Skill
// Extractor (C4) produces from any text.
type SkillProfile struct {
	TechnicalSkills  []ExtractedSkill
	SoftSkills       []ExtractedSkill
	DomainExpertise  []ExtractedSkill
	ToolsPlatforms   []ExtractedSkill
	Certifications   []string
	SkillCategories  map[SkillCategory][]string
	TotalSkillsCount int
	SkillDiversity   float64
}

// AllSkills returns every extracted skill across the four buckets.
func (p SkillProfile) AllSkills() []ExtractedSkill {
	out := make([]ExtractedSkill, 0, p.TotalSkillsCount)
	out = append(out, p.TechnicalSkills...)
	out = append(out, p.SoftSkills...)
	out = append(out, p.DomainExpertise...)
	out = append(out, p.ToolsPlatforms...)
	return out
}

// ParsedResume aggregates everything the Resume Structurer (C2) extracts.
type ParsedResume struct {
	Contact             ContactInfo
	Summary             string
	Skills              SkillProfile
	Education           []EducationEntry
	WorkHistory         []WorkExperienceEntry
	Projects            []ProjectEntry
	Certifications      []string
	Languages           []string
	Awards              []string
	TotalExperienceYears float64
	RawText             string
	ParsingConfidence   float64
}

// JobMetadata supplies caller-known fields (from a job catalog) that
// override any value the Job Structurer (C3) would otherwise parse.
type JobMetadata struct {
	Title      string
	Company    string
	Location   string
	Department string
}

// ParsedJobDescription aggregates everything the Job Structurer (C3) extracts.
type ParsedJobDescription struct {
	Title                   string
	Company                 string
	Location                string
	Department              string
	JobType                 string
	SalaryRange             string
	ExperienceRequiredText  string
	Summary                 string
	Responsibilities        []string
	Requirements            []string
	PreferredQualifications []string
	Benefits                []string
	RequiredSkills          []ExtractedSkill
	PreferredSkills         []ExtractedSkill
	RequiredExperienceYears *int
	EducationRequirements   []string
	RemoteAllowed           bool
	UrgencyLevel            UrgencyLevel
	RawContent              string
}

// SkillMatch is one aligned (resume skill, jd skill) pair produced by the
// Semantic Matcher (C5).
type SkillMatch struct {
	SkillName          string
	ResumeSkill        string
	JDSkill            string
	MatchType          MatchType
	Confidence         float64
	SemanticSimilarity *float64
}

// SemanticMatchResult is the full output of the Semantic Matcher (C5).
type SemanticMatchResult struct {
	OverallSimilarity     float64
	SkillMatches          []SkillMatch
	MissingSkills         []string
	AdditionalSkills      []string
	CategorySimilarities  map[string]float64
	EmbeddingSimilarity   float64
	TextSimilarity        float64
}

// DetailedScores carries every component and sub-component score the
// Scoring Engine (C6) computes, all in [0,100].
type DetailedScores struct {
	HardSkillsScore   float64
	SoftSkillsScore   float64
	ExperienceScore   float64
	EducationScore    float64
	SemanticScore     float64

	TechnicalSubScore float64
	DomainSubScore    float64
	ToolsSubScore     float64
	YearsSubScore     float64
	RelevanceSubScore float64
	EducationLevelSubScore     float64
	EducationRelevanceSubScore float64

	SkillsMatchedCount int
	SkillsMissingCount int

	ParsingConfidence float64
	MatchingConfidence float64
	OverallConfidence float64
}

// FinalScore is the output of the Scoring Engine (C6).
type FinalScore struct {
	OverallScore     float64
	Detailed         DetailedScores
	Suitability      Suitability
	PercentileRank   *float64 // always nil in the core; populated out-of-scope
	ConfidenceLevel  ConfidenceLevel
}

// Weights configures the Scoring Engine's component weighting and the
// suitability thresholds (§6 "Weights configuration").
type Weights struct {
	HardSkills     float64
	SoftSkills     float64
	Experience     float64
	Education      float64
	SemanticMatch  float64
	ThresholdHigh  float64
	ThresholdMedium float64
}

// DefaultWeights returns the default weighting from §6.
func DefaultWeights() Weights {
	return Weights{
		HardSkills:      0.35,
		SoftSkills:       0.15,
		Experience:       0.25,
		Education:        0.15,
		SemanticMatch:    0.10,
		ThresholdHigh:    80,
		ThresholdMedium:  60,
	}
}

// Sum returns the sum of the five component weights (thresholds excluded).
func (w Weights) Sum() float64 {
	return w.HardSkills + w.SoftSkills + w.Experience + w.Education + w.SemanticMatch
}

// SkillGapAnalysis buckets the Feedback Synthesizer's (C7) gap findings.
type SkillGapAnalysis struct {
	CriticalMissing    []string
	NiceToHave         []string
	LearningResources  map[string]string // skill name -> resource
	AlternativeSkills  []string
}

// FeedbackBundle is the full output of the Feedback Synthesizer (C7).
type FeedbackBundle struct {
	OverallAssessment         string
	Strengths                 []string
	AreasForImprovement       []string
	SpecificRecommendations   []string
	SkillGapAnalysis          SkillGapAnalysis
	CareerAdvancementTips     []string
	InterviewPreparationTips  []string
	ConfidenceLevel           ConfidenceLevel
	LLMNarrative              string // optional enrichment; empty when no LLMBackend is configured
}
