// Package score implements the Scoring Engine (C6): combining the Skill
// Extractor, Resume/Job Structurer, and Semantic Matcher outputs into a
// single weighted FinalScore with a suitability verdict and confidence
// level.
package score

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gouthamGottipati/resume-relevance-system/internal/domain"
)

const weightTolerance = 0.01

var (
	criticalKeywords = []string{"required", "must", "essential", "mandatory"}
	domainFamilies   = []string{"software", "data", "marketing", "finance", "sales"}

	levelPhD       = regexp.MustCompile(`(?i)\b(phd|doctorate)\b`)
	levelMaster    = regexp.MustCompile(`(?i)\b(master|mba|m\.?s\.?|m\.?a\.?)\b`)
	levelBachelor  = regexp.MustCompile(`(?i)\b(bachelor|b\.?s\.?|b\.?a\.?)\b`)
	levelAssociate = regexp.MustCompile(`(?i)\bassociate\b`)
	levelDiploma   = regexp.MustCompile(`(?i)\b(diploma|certificate)\b`)

	fourDigitYearRe = regexp.MustCompile(`\d{4}`)
)

// ValidateWeights rejects a Weights whose five components don't sum to
// (approximately) 1.0.
func ValidateWeights(w domain.Weights) error {
	sum := w.Sum()
	diff := sum - 1.0
	if diff < 0 {
		diff = -diff
	}
	if diff > weightTolerance {
		return fmt.Errorf("%w: weights sum to %.4f", domain.ErrInvalidWeights, sum)
	}
	return nil
}

// ComputeScore combines every upstream artifact into a FinalScore. weights
// must already have passed ValidateWeights.
func ComputeScore(resume domain.ParsedResume, jd domain.ParsedJobDescription, matchResult domain.SemanticMatchResult, weights domain.Weights) domain.FinalScore {
	hardSkills := hardSkillsScore(resume, jd, matchResult)
	softSkills := softSkillsScore(resume, jd, matchResult)

	yearsSub := yearsSubScore(resume.TotalExperienceYears, jd.RequiredExperienceYears)
	relevanceSub := experienceRelevanceScore(resume, jd)
	experience := yearsSub*0.6 + relevanceSub*0.4

	levelSub := educationLevelScore(resume, jd)
	relevanceEduSub := educationRelevanceScore(resume, jd)
	education := levelSub*0.6 + relevanceEduSub*0.4

	semantic := matchResult.OverallSimilarity * 100

	overall := weights.HardSkills*hardSkills +
		weights.SoftSkills*softSkills +
		weights.Experience*experience +
		weights.Education*education +
		weights.SemanticMatch*semantic

	// Technical/domain/tools are reported as an informational breakdown of
	// category-level match quality (§3 DetailedScores); they do not feed
	// into HardSkillsScore itself, which follows §4.6's literal formula.
	technical := avgCategories(matchResult.CategorySimilarities, "programming_languages", "web_technologies", "databases")
	domainAvg := avgCategories(matchResult.CategorySimilarities, "data_science", "mobile_development")
	tools := avgCategories(matchResult.CategorySimilarities, "cloud_platforms", "devops_tools")

	detailed := domain.DetailedScores{
		HardSkillsScore:            hardSkills,
		SoftSkillsScore:            softSkills,
		ExperienceScore:            experience,
		EducationScore:             education,
		SemanticScore:              semantic,
		TechnicalSubScore:          technical * 100,
		DomainSubScore:             domainAvg * 100,
		ToolsSubScore:              tools * 100,
		YearsSubScore:              yearsSub,
		RelevanceSubScore:          relevanceSub,
		EducationLevelSubScore:     levelSub,
		EducationRelevanceSubScore: relevanceEduSub,
		SkillsMatchedCount:         len(matchResult.SkillMatches),
		SkillsMissingCount:         len(matchResult.MissingSkills),
	}

	detailed.ParsingConfidence = resume.ParsingConfidence
	detailed.MatchingConfidence = matchingConfidence(matchResult)
	detailed.OverallConfidence = overallConfidence(detailed, resume)

	suitability := classify(overall, weights)
	suitability = applyAdjustments(suitability, detailed, overall)

	return domain.FinalScore{
		OverallScore:    clamp(overall),
		Detailed:        detailed,
		Suitability:     suitability,
		ConfidenceLevel: confidenceLevel(detailed.OverallConfidence),
	}
}

// hardSkillsScore implements §4.6's literal formula: coverage of required
// skills matched at confidence>=0.70, plus a skill-diversity bonus, plus a
// high-confidence-match bonus, minus a penalty for missing "critical"
// skills, clamped to [0,1]. With no required skills there is no signal to
// score against, so the result is the neutral 0.5 the spec calls for.
func hardSkillsScore(resume domain.ParsedResume, jd domain.ParsedJobDescription, m domain.SemanticMatchResult) float64 {
	required := jd.RequiredSkills
	if len(required) == 0 {
		return 0.5 * 100
	}

	requiredNames := map[string]bool{}
	criticalNames := map[string]bool{}
	for _, s := range required {
		name := strings.ToLower(s.Name)
		requiredNames[name] = true
		if isCriticalSkill(s) {
			criticalNames[name] = true
		}
	}

	matched := 0
	highConf := 0
	for _, sm := range m.SkillMatches {
		if !requiredNames[strings.ToLower(sm.JDSkill)] {
			continue
		}
		if sm.Confidence >= 0.70 {
			matched++
		}
		if sm.Confidence >= 0.90 {
			highConf++
		}
	}

	missingCritical := 0
	for _, missing := range m.MissingSkills {
		if criticalNames[strings.ToLower(missing)] {
			missingCritical++
		}
	}

	base := float64(matched) / float64(len(required))
	base += 0.2 * resume.Skills.SkillDiversity
	base += 0.1 * float64(highConf) / float64(len(required))
	if len(criticalNames) > 0 {
		base -= 0.3 * float64(missingCritical) / float64(len(criticalNames))
	}
	return clamp01(base) * 100
}

// isCriticalSkill reports whether a JD skill's own name contains one of
// §4.6's meta-words. Per spec.md §9 this rarely triggers in practice — the
// richer "critical if its surrounding bullet line contains a meta-word"
// reading is explicitly left out of the contract there.
func isCriticalSkill(s domain.ExtractedSkill) bool {
	lower := strings.ToLower(s.Name)
	for _, kw := range criticalKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// softSkillsScore implements §4.6: when the JD names canonical soft skills,
// score is the matched fraction of them; otherwise it's a flat 0.8/0.3 by
// whether the resume has any soft skill at all. A variety bonus rewards a
// broader resume soft-skill set, capped at 0.2.
func softSkillsScore(resume domain.ParsedResume, jd domain.ParsedJobDescription, m domain.SemanticMatchResult) float64 {
	jdSoft := softSkillNameSet(jd.RequiredSkills, jd.PreferredSkills)

	var base float64
	if len(jdSoft) > 0 {
		matchedJDSkills := map[string]bool{}
		for _, sm := range m.SkillMatches {
			matchedJDSkills[strings.ToLower(sm.JDSkill)] = true
		}
		matched := 0
		for name := range jdSoft {
			if matchedJDSkills[name] {
				matched++
			}
		}
		base = float64(matched) / float64(len(jdSoft))
	} else if len(resume.Skills.SoftSkills) > 0 {
		base = 0.8
	} else {
		base = 0.3
	}

	variety := float64(len(resume.Skills.SoftSkills)) / 10.0
	if variety > 0.2 {
		variety = 0.2
	}
	return clamp01(base+variety) * 100
}

func softSkillNameSet(groups ...[]domain.ExtractedSkill) map[string]bool {
	out := map[string]bool{}
	for _, group := range groups {
		for _, s := range group {
			if s.Category == domain.CategorySoftSkills {
				out[strings.ToLower(s.Name)] = true
			}
		}
	}
	return out
}

// yearsSubScore implements §4.6's step function against required_years,
// which defaults to 2 when the JD states none or a non-positive value.
func yearsSubScore(years float64, required *int) float64 {
	req := 2.0
	if required != nil && *required > 0 {
		req = float64(*required)
	}
	r := years / req
	switch {
	case r >= 1:
		v := 1.0
		if r >= 1.5 {
			v += 0.1
		}
		if v > 1.0 {
			v = 1.0
		}
		return v * 100
	case r >= 0.75:
		return 0.8 * 100
	case r >= 0.5:
		return 0.6 * 100
	default:
		return 0.5 * r * 100
	}
}

// experienceRelevanceScore implements §4.6's per-entry relevance formula
// (title/industry/description relevance weighted by recency), combining the
// top three entries with weights 0.5/0.3/0.2 (0.7/0.3 for two, the single
// value for one).
func experienceRelevanceScore(resume domain.ParsedResume, jd domain.ParsedJobDescription) float64 {
	if len(resume.WorkHistory) == 0 {
		return 0
	}

	jdKeywords := jobKeywords(jd)
	entryScores := make([]float64, 0, len(resume.WorkHistory))
	for _, entry := range resume.WorkHistory {
		title := jaccardTokens(entry.Title, jd.Title)
		industry := 0.4
		if tokensOverlap(entry.Company, jd.Company) {
			industry = 0.9
		}
		desc := descriptionRelevance(entry, jdKeywords)
		recency := recencyWeight(entry.EndDate)
		entryScores = append(entryScores, (0.4*title+0.2*industry+0.4*desc)*recency)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(entryScores)))

	switch {
	case len(entryScores) >= 3:
		return (entryScores[0]*0.5 + entryScores[1]*0.3 + entryScores[2]*0.2) * 100
	case len(entryScores) == 2:
		return (entryScores[0]*0.7 + entryScores[1]*0.3) * 100
	default:
		return entryScores[0] * 100
	}
}

func jobKeywords(jd domain.ParsedJobDescription) []string {
	set := map[string]bool{}
	for _, s := range jd.RequiredSkills {
		if name := strings.ToLower(s.Name); name != "" {
			set[name] = true
		}
	}
	for _, r := range jd.Responsibilities {
		for _, tok := range tokenize(r) {
			set[tok] = true
		}
	}
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	return out
}

func descriptionRelevance(entry domain.WorkExperienceEntry, jdKeywords []string) float64 {
	if len(jdKeywords) == 0 {
		return 0
	}
	text := strings.ToLower(strings.Join(entry.Description, " "))
	hits := 0
	for _, kw := range jdKeywords {
		if kw != "" && strings.Contains(text, kw) {
			hits++
		}
	}
	return float64(hits) / float64(len(jdKeywords))
}

func recencyWeight(endDate string) float64 {
	if strings.EqualFold(strings.TrimSpace(endDate), "present") {
		return 1.0
	}
	year := fourDigitYear(endDate)
	if year == 0 {
		return 1.0
	}
	w := 1.0 - 0.1*float64(time.Now().Year()-year)
	if w < 0.5 {
		w = 0.5
	}
	return w
}

func fourDigitYear(s string) int {
	m := fourDigitYearRe.FindString(s)
	if m == "" {
		return 0
	}
	y, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return y
}

// educationLevelScore implements §4.6's degree hierarchy comparison: the
// candidate's highest degree vs. the level parsed out of the JD's education
// requirements (defaulting to associate=2 when none is stated).
func educationLevelScore(resume domain.ParsedResume, jd domain.ParsedJobDescription) float64 {
	required := requiredEducationLevel(jd)
	candidate := 0
	for _, e := range resume.Education {
		if lvl := degreeLevel(e.Degree); lvl > candidate {
			candidate = lvl
		}
	}
	switch {
	case candidate >= required:
		return 100
	case candidate == required-1:
		return 80
	default:
		return 50
	}
}

func requiredEducationLevel(jd domain.ParsedJobDescription) int {
	best := 0
	for _, sentence := range jd.EducationRequirements {
		if lvl := degreeLevel(sentence); lvl > best {
			best = lvl
		}
	}
	if best == 0 {
		return 2
	}
	return best
}

func degreeLevel(text string) int {
	switch {
	case levelPhD.MatchString(text):
		return 5
	case levelMaster.MatchString(text):
		return 4
	case levelBachelor.MatchString(text):
		return 3
	case levelAssociate.MatchString(text):
		return 2
	case levelDiploma.MatchString(text):
		return 1
	default:
		return 0
	}
}

// educationRelevanceScore implements §4.6's domain-keyword relevance: the
// single domain family (software/data/marketing/finance/sales) that appears
// first in the job title+content is looked up in the candidate's degree
// text; 0.7 (as a percentage) when the JD names none of them.
func educationRelevanceScore(resume domain.ParsedResume, jd domain.ParsedJobDescription) float64 {
	family := selectDomainFamily(jd.Title + " " + jd.RawContent)
	if family == "" {
		return 70
	}
	for _, e := range resume.Education {
		if strings.Contains(strings.ToLower(e.Degree), family) {
			return 100
		}
	}
	return 0
}

func selectDomainFamily(content string) string {
	lower := strings.ToLower(content)
	bestIdx := -1
	bestFamily := ""
	for _, f := range domainFamilies {
		if idx := strings.Index(lower, f); idx >= 0 && (bestIdx < 0 || idx < bestIdx) {
			bestIdx = idx
			bestFamily = f
		}
	}
	return bestFamily
}

func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
}

func tokenSet(s string) map[string]bool {
	out := map[string]bool{}
	for _, t := range tokenize(s) {
		out[t] = true
	}
	return out
}

func jaccardTokens(a, b string) float64 {
	sa := tokenSet(a)
	sb := tokenSet(b)
	if len(sa) == 0 && len(sb) == 0 {
		return 0
	}
	inter := 0
	for t := range sa {
		if sb[t] {
			inter++
		}
	}
	union := len(sa) + len(sb) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

func tokensOverlap(a, b string) bool {
	sa := tokenSet(a)
	sb := tokenSet(b)
	for t := range sa {
		if sb[t] {
			return true
		}
	}
	return false
}

func avgCategories(sims map[string]float64, cats ...string) float64 {
	var sum float64
	var n int
	for _, c := range cats {
		if v, ok := sims[c]; ok {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func classify(overall float64, weights domain.Weights) domain.Suitability {
	switch {
	case overall >= weights.ThresholdHigh:
		return domain.SuitabilityHigh
	case overall >= weights.ThresholdMedium:
		return domain.SuitabilityMedium
	default:
		return domain.SuitabilityLow
	}
}

// applyAdjustments runs §4.6's three post-classification rules in order:
// a heavy-missing-skills downgrade, a standout-component Low->Medium
// upgrade (never higher), and a low-overall-confidence High->Medium
// downgrade (never lower).
func applyAdjustments(s domain.Suitability, d domain.DetailedScores, overall float64) domain.Suitability {
	if d.SkillsMissingCount > d.SkillsMatchedCount {
		s = downgradeOneLevel(s)
	}
	if d.ExperienceScore >= 90 || d.HardSkillsScore >= 95 || d.EducationScore >= 90 {
		if s == domain.SuitabilityLow && overall >= 50 {
			s = domain.SuitabilityMedium
		}
	}
	if d.OverallConfidence < 0.60 {
		if s == domain.SuitabilityHigh {
			s = domain.SuitabilityMedium
		}
	}
	return s
}

func downgradeOneLevel(s domain.Suitability) domain.Suitability {
	switch s {
	case domain.SuitabilityHigh:
		return domain.SuitabilityMedium
	case domain.SuitabilityMedium:
		return domain.SuitabilityLow
	default:
		return domain.SuitabilityLow
	}
}

func matchingConfidence(m domain.SemanticMatchResult) float64 {
	if len(m.SkillMatches) == 0 {
		return 0.5
	}
	var sum float64
	for _, sm := range m.SkillMatches {
		sum += sm.Confidence
	}
	return sum / float64(len(m.SkillMatches))
}

// overallConfidence averages five reliability factors per §4.6: parsing
// confidence, matching confidence, skill coverage capped at 1, a contact-
// email factor, and a work-history-presence factor. The last two are what
// makes confidence strictly monotonic in email/work-history presence
// (§8 "Confidence monotonicity").
func overallConfidence(d domain.DetailedScores, resume domain.ParsedResume) float64 {
	coverage := 1.0
	if d.SkillsMatchedCount+d.SkillsMissingCount > 0 {
		coverage = float64(d.SkillsMatchedCount) / float64(d.SkillsMatchedCount+d.SkillsMissingCount)
		if coverage > 1 {
			coverage = 1
		}
	}
	emailFactor := 0.5
	if resume.Contact.Email != "" {
		emailFactor = 1.0
	}
	workFactor := 0.3
	if len(resume.WorkHistory) > 0 {
		workFactor = 1.0
	}
	return (d.ParsingConfidence + d.MatchingConfidence + coverage + emailFactor + workFactor) / 5.0
}

func confidenceLevel(v float64) domain.ConfidenceLevel {
	switch {
	case v >= 0.75:
		return domain.ConfidenceHigh
	case v >= 0.5:
		return domain.ConfidenceMedium
	default:
		return domain.ConfidenceLow
	}
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
