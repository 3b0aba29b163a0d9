// Package job implements the Job Structurer (C3): segmenting a job
// description into sections and extracting metadata, requirements, and
// required/preferred skills.
package job

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gouthamGottipati/resume-relevance-system/internal/domain"
	"github.com/gouthamGottipati/resume-relevance-system/internal/pipeline/section"
	"github.com/gouthamGottipati/resume-relevance-system/internal/pipeline/skills"
	"github.com/gouthamGottipati/resume-relevance-system/internal/skilldict"
)

var (
	yearsRe  = regexp.MustCompile(`(?i)(\d+)\+?\s*(?:-\s*\d+\s*)?years?`)
	remoteRe = regexp.MustCompile(`(?i)\b(remote|work from home|wfh|hybrid)\b`)

	urgencyHighRe   = regexp.MustCompile(`(?i)\b(urgent(ly)?|immediate(ly)?|asap|hiring now)\b`)
	urgencyMediumRe = regexp.MustCompile(`(?i)\b(soon|quickly|fast[- ]paced)\b`)

	educationKeywordRe = regexp.MustCompile(`(?i)\b(bachelor|master|phd|doctorate|associate|diploma|degree|certification|bs|ba|ms|ma|mba)\b`)

	sentenceSplitRe = regexp.MustCompile(`(?:[.\n]+)`)
)

var sectionKeywords = map[string][]string{
	"summary":          skilldict.SectionKeywords["summary"],
	"responsibilities": skilldict.SectionKeywords["responsibilities"],
	"requirements":     skilldict.SectionKeywords["requirements"],
	"preferred":        skilldict.SectionKeywords["preferred"],
	"benefits":         skilldict.SectionKeywords["benefits"],
	"education":        skilldict.SectionKeywords["education"],
}

// StructureJob segments text and extracts every field of a
// ParsedJobDescription, applying meta as caller-known overrides.
func StructureJob(ctx domain.Context, text string, meta domain.JobMetadata) domain.ParsedJobDescription {
	sections := section.Split(text, sectionKeywords)

	requirementsLines := section.Find(sections, "requirements")
	preferredLines := section.Find(sections, "preferred")
	requirementBullets := section.Bullets(requirementsLines)

	// §4.3: required_skills is matched against the full text plus the
	// requirements bullets (not the requirements section alone), so a skill
	// named only in the summary/responsibilities is still captured.
	requiredCorpus := text + "\n" + strings.Join(requirementBullets, "\n")
	requiredProfile := skills.ExtractSkills(ctx, requiredCorpus)
	preferredProfile := skills.ExtractSkills(ctx, strings.Join(preferredLines, "\n"))

	jd := domain.ParsedJobDescription{
		Title:                   meta.Title,
		Company:                 meta.Company,
		Location:                meta.Location,
		Department:              meta.Department,
		Summary:                 strings.Join(section.Find(sections, "summary"), " "),
		Responsibilities:        section.Bullets(section.Find(sections, "responsibilities")),
		Requirements:            section.Bullets(requirementsLines),
		PreferredQualifications: section.Bullets(preferredLines),
		Benefits:                section.Bullets(section.Find(sections, "benefits")),
		RequiredSkills:          requiredProfile.AllSkills(),
		PreferredSkills:         preferredProfile.AllSkills(),
		RequiredExperienceYears: extractYears(text),
		EducationRequirements:   extractEducationRequirements(text),
		RemoteAllowed:           remoteRe.MatchString(text),
		UrgencyLevel:            detectUrgency(text),
		RawContent:              text,
	}
	jd.ExperienceRequiredText = firstMatch(yearsRe, text)
	return jd
}

func extractYears(text string) *int {
	m := yearsRe.FindStringSubmatch(text)
	if len(m) < 2 {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return &n
}

// extractEducationRequirements returns every sentence of text (§4.3: "any
// sentence containing" one of the education keywords), scanning the whole
// document rather than only the requirements section.
func extractEducationRequirements(text string) []string {
	var out []string
	seen := map[string]bool{}
	for _, sentence := range sentenceSplitRe.Split(text, -1) {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" || !educationKeywordRe.MatchString(sentence) {
			continue
		}
		key := strings.ToLower(sentence)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, sentence)
	}
	return out
}

func detectUrgency(text string) domain.UrgencyLevel {
	switch {
	case urgencyHighRe.MatchString(text):
		return domain.UrgencyHigh
	case urgencyMediumRe.MatchString(text):
		return domain.UrgencyMedium
	default:
		return domain.UrgencyLow
	}
}

func firstMatch(re *regexp.Regexp, text string) string {
	return re.FindString(text)
}
