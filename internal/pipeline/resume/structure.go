// Package resume implements the Resume Structurer (C2): segmenting résumé
// text into sections and extracting contact info, skills, education, work
// history, projects, certifications, and total years of experience.
// Structure never fails; missing sections simply yield empty slices.
package resume

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gouthamGottipati/resume-relevance-system/internal/domain"
	"github.com/gouthamGottipati/resume-relevance-system/internal/pipeline/section"
	"github.com/gouthamGottipati/resume-relevance-system/internal/pipeline/skills"
	"github.com/gouthamGottipati/resume-relevance-system/internal/skilldict"
)

var (
	emailRe    = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phoneRe    = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	linkedinRe = regexp.MustCompile(`(?i)(https?://)?(www\.)?linkedin\.com/in/[A-Za-z0-9_-]+`)
	githubRe   = regexp.MustCompile(`(?i)(https?://)?(www\.)?github\.com/[A-Za-z0-9_-]+`)
	urlRe      = regexp.MustCompile(`(?i)https?://\S+`)

	degreeRe      = regexp.MustCompile(`(?i)(bachelor|master|phd|associate|diploma|b\.?[as]\.?|m\.?[as]\.?|mba)`)
	yearRe        = regexp.MustCompile(`(19|20)\d{2}`)
	gpaRe         = regexp.MustCompile(`(?i)gpa:?\s*(\d+(\.\d+)?)`)
	capsWordRe    = regexp.MustCompile(`[A-Z][A-Za-z&.'-]*(\s+[A-Z][A-Za-z&.'-]*)*`)

	workHeaderRe = regexp.MustCompile(`^[A-Z][\w&.,'-]*(\s+[\w&.,'-]+)*\s*(at|@|-|\|)\s*.+`)
	dateTokenRe  = regexp.MustCompile(`(?i)(0[1-9]|1[0-2])/\d{4}|(January|February|March|April|May|June|July|August|September|October|November|December|Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\.?\s+\d{4}|\d{4}`)

	resumeLevelWords = map[string]bool{"resume": true, "cv": true, "profile": true, "summary": true}

	splitSkillTokens = regexp.MustCompile(`[,;|•\n]`)
)

var sectionKeywords = map[string][]string{
	"summary":        skilldict.SectionKeywords["summary"],
	"skills":         skilldict.SectionKeywords["skills"],
	"experience":     skilldict.SectionKeywords["experience"],
	"education":      skilldict.SectionKeywords["education"],
	"projects":       skilldict.SectionKeywords["projects"],
	"certifications": skilldict.SectionKeywords["certifications"],
	"languages":      skilldict.SectionKeywords["languages"],
	"awards":         skilldict.SectionKeywords["awards"],
}

// StructureResume segments text and extracts every field of a ParsedResume.
// It never fails; confidence propagates unchanged from C1.
func StructureResume(ctx domain.Context, text string, confidence float64) domain.ParsedResume {
	sections := section.Split(text, sectionKeywords)

	profile := skills.ExtractSkills(ctx, text)

	work := extractWork(section.Find(sections, "experience"))
	resumeText := text

	pr := domain.ParsedResume{
		Contact:              extractContact(text),
		Summary:              strings.Join(section.Find(sections, "summary"), " "),
		Skills:               mergeSkillUnion(profile, section.Find(sections, "skills")),
		Education:            extractEducation(section.Find(sections, "education")),
		WorkHistory:          work,
		Projects:             extractProjects(section.Find(sections, "projects")),
		Certifications:       dedup(section.Find(sections, "certifications")),
		Languages:            dedup(section.Find(sections, "languages")),
		Awards:               dedup(section.Find(sections, "awards")),
		TotalExperienceYears: totalYears(work),
		RawText:              resumeText,
		ParsingConfidence:    confidence,
	}
	return pr
}

// mergeSkillUnion folds the literal skills-section tokens (§4.2 rule a)
// into the SkillProfile that ExtractSkills (C4) already produced from the
// whole text (rule b is exactly what ExtractSkills does via the
// dictionary), so ParsedResume.Skills reflects the full union without
// re-deriving C4's confidence machinery.
func mergeSkillUnion(profile domain.SkillProfile, skillsSectionLines []string) domain.SkillProfile {
	if len(skillsSectionLines) == 0 {
		return profile
	}
	seen := map[string]bool{}
	for _, s := range profile.AllSkills() {
		seen[strings.ToLower(s.Name)] = true
	}
	joined := strings.Join(skillsSectionLines, "\n")
	for _, tok := range splitSkillTokens.Split(joined, -1) {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		words := strings.Fields(tok)
		if len(words) > 3 {
			continue
		}
		name := tok
		var cat domain.SkillCategory
		if entry, ok := skilldict.Lookup(tok); ok {
			name = entry.Name
			cat = entry.Category
		}
		if seen[strings.ToLower(name)] {
			continue
		}
		seen[strings.ToLower(name)] = true
		skill := domain.ExtractedSkill{Name: name, Category: cat, Confidence: 0.6}
		addToBucket(&profile, skill)
	}
	profile.TotalSkillsCount = len(profile.AllSkills())
	profile.SkillDiversity = diversity(profile)
	return profile
}

func addToBucket(p *domain.SkillProfile, s domain.ExtractedSkill) {
	switch skilldict.Bucket(s.Category) {
	case domain.BucketSoft:
		p.SoftSkills = append(p.SoftSkills, s)
	case domain.BucketTools:
		p.ToolsPlatforms = append(p.ToolsPlatforms, s)
	case domain.BucketDomain:
		p.DomainExpertise = append(p.DomainExpertise, s)
	default:
		p.TechnicalSkills = append(p.TechnicalSkills, s)
	}
	if p.SkillCategories == nil {
		p.SkillCategories = map[domain.SkillCategory][]string{}
	}
	p.SkillCategories[s.Category] = append(p.SkillCategories[s.Category], s.Name)
}

func diversity(p domain.SkillProfile) float64 {
	nonEmpty := 0
	if len(p.TechnicalSkills) > 0 {
		nonEmpty++
	}
	if len(p.SoftSkills) > 0 {
		nonEmpty++
	}
	if len(p.DomainExpertise) > 0 {
		nonEmpty++
	}
	if len(p.ToolsPlatforms) > 0 {
		nonEmpty++
	}
	return float64(nonEmpty) / 4.0
}

// extractContact extracts name/email/phone/linkedin/github from the whole
// text per §4.2.
func extractContact(text string) domain.ContactInfo {
	c := domain.ContactInfo{}
	if m := emailRe.FindString(text); m != "" {
		c.Email = m
	}
	if m := phoneRe.FindString(text); m != "" {
		c.Phone = m
	}
	if m := linkedinRe.FindString(text); m != "" {
		c.LinkedIn = m
	}
	if m := githubRe.FindString(text); m != "" {
		c.GitHub = m
	}
	c.Name = extractName(text)
	return c
}

// extractName finds the first of the first 5 lines that is 2-4 words,
// title-cased, free of email/phone/URL, and not a resume-level word.
func extractName(text string) string {
	lines := strings.Split(text, "\n")
	limit := 5
	if len(lines) < limit {
		limit = len(lines)
	}
	for i := 0; i < limit; i++ {
		line := strings.TrimSpace(lines[i])
		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		if emailRe.MatchString(line) || phoneRe.MatchString(line) || urlRe.MatchString(line) {
			continue
		}
		lower := strings.ToLower(line)
		if resumeLevelWords[lower] {
			continue
		}
		skip := false
		for w := range resumeLevelWords {
			if strings.Contains(lower, w) {
				skip = true
				break
			}
		}
		if skip {
			continue
		}
		if !isTitleCased(words) {
			continue
		}
		return line
	}
	return ""
}

func isTitleCased(words []string) bool {
	for _, w := range words {
		r := []rune(w)
		if len(r) == 0 {
			return false
		}
		if !('A' <= r[0] && r[0] <= 'Z') {
			return false
		}
	}
	return true
}

// extractEducation segments the education section on lines that open a new
// degree record, then extracts degree/institution/year/gpa per §4.2.
func extractEducation(lines []string) []domain.EducationEntry {
	var out []domain.EducationEntry
	var chunks [][]string
	var current []string
	for _, line := range lines {
		if degreeRe.MatchString(line) && len(current) > 0 {
			chunks = append(chunks, current)
			current = nil
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		chunks = append(chunks, current)
	}

	for _, chunk := range chunks {
		joined := strings.Join(chunk, " ")
		entry := domain.EducationEntry{}
		if m := degreeRe.FindString(joined); m != "" {
			entry.Degree = strings.TrimSpace(m)
		}
		for _, line := range chunk {
			if degreeRe.MatchString(line) || gpaRe.MatchString(line) {
				continue
			}
			if m := capsWordRe.FindString(line); m != "" && !strings.EqualFold(m, "GPA") {
				entry.Institution = strings.TrimSpace(m)
				break
			}
		}
		if years := yearRe.FindAllString(joined, -1); len(years) > 0 {
			latest := years[0]
			for _, y := range years {
				if y > latest {
					latest = y
				}
			}
			if yi, err := strconv.Atoi(latest); err == nil {
				now := time.Now().Year()
				if yi >= 1900 && yi <= now+5 {
					entry.GraduationYear = &yi
				}
			}
		}
		if m := gpaRe.FindStringSubmatch(joined); len(m) > 1 {
			if g, err := strconv.ParseFloat(m[1], 64); err == nil {
				entry.GPA = &g
			}
		}
		if entry.Degree != "" || entry.Institution != "" {
			out = append(out, entry)
		}
	}
	return out
}

// extractWork segments the experience section on lines that look like a
// "Title at/-/@/| Company" header, splits the header, and collects
// following lines as description bullets.
func extractWork(lines []string) []domain.WorkExperienceEntry {
	var out []domain.WorkExperienceEntry
	var chunks [][]string
	var current []string
	for _, line := range lines {
		if workHeaderRe.MatchString(line) && len(current) > 0 {
			chunks = append(chunks, current)
			current = nil
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		chunks = append(chunks, current)
	}

	for _, chunk := range chunks {
		if len(chunk) == 0 {
			continue
		}
		entry := parseWorkChunk(chunk)
		if entry.Title != "" && entry.Company != "" {
			out = append(out, entry)
		}
	}
	return out
}

var headerSplitters = []string{" at ", " @ ", " - ", " | "}

func parseWorkChunk(chunk []string) domain.WorkExperienceEntry {
	entry := domain.WorkExperienceEntry{}
	header := chunk[0]
	for _, sep := range headerSplitters {
		if idx := strings.Index(header, sep); idx >= 0 {
			entry.Title = strings.TrimSpace(header[:idx])
			entry.Company = strings.TrimSpace(header[idx+len(sep):])
			break
		}
	}
	if entry.Title == "" {
		entry.Title = strings.TrimSpace(header)
	}

	firstThree := strings.Join(chunk[:minInt(3, len(chunk))], " ")
	dates := dateTokenRe.FindAllString(firstThree, -1)
	if len(dates) > 0 {
		entry.StartDate = dates[0]
	}
	if len(dates) > 1 {
		entry.EndDate = dates[1]
	} else {
		entry.EndDate = "Present"
	}

	for _, line := range chunk[1:] {
		stripped := strings.TrimLeft(strings.TrimSpace(line), "•-*")
		stripped = strings.TrimSpace(stripped)
		if stripped != "" {
			entry.Description = append(entry.Description, stripped)
		}
	}
	return entry
}

// totalYears sums each entry's clamped duration in months then divides by
// 12, rounded to 0.1, per §4.2.
func totalYears(entries []domain.WorkExperienceEntry) float64 {
	now := time.Now().Year()
	totalMonths := 0
	for _, e := range entries {
		startYear := parseYear(e.StartDate)
		endYear := now
		if strings.EqualFold(e.EndDate, "Present") || e.EndDate == "" {
			endYear = now
		} else if y := parseYear(e.EndDate); y > 0 {
			endYear = y
		}
		if startYear == 0 {
			continue
		}
		years := endYear - startYear
		if years < 0 {
			years = 0
		}
		totalMonths += years * 12
	}
	rounded := float64(totalMonths) / 12.0
	return roundTo(rounded, 1)
}

func parseYear(s string) int {
	m := yearRe.FindString(s)
	if m == "" {
		return 0
	}
	y, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return y
}

func roundTo(v float64, decimals int) float64 {
	mul := 1.0
	for i := 0; i < decimals; i++ {
		mul *= 10
	}
	return float64(int(v*mul+0.5)) / mul
}

func extractProjects(lines []string) []domain.ProjectEntry {
	var out []domain.ProjectEntry
	var current *domain.ProjectEntry
	for _, line := range lines {
		trimmed := strings.TrimSpace(strings.TrimLeft(line, "•-*"))
		trimmed = strings.TrimSpace(trimmed)
		if trimmed == "" {
			continue
		}
		if current == nil || len(strings.Fields(trimmed)) <= 6 {
			if current != nil {
				out = append(out, *current)
			}
			current = &domain.ProjectEntry{Title: trimmed}
			if m := urlRe.FindString(trimmed); m != "" {
				current.URL = m
			}
			continue
		}
		current.Description += trimmed + " "
	}
	if current != nil {
		out = append(out, *current)
	}
	for i := range out {
		out[i].Description = strings.TrimSpace(out[i].Description)
	}
	return out
}

func dedup(items []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, it := range items {
		it = strings.TrimSpace(it)
		if it == "" || seen[strings.ToLower(it)] {
			continue
		}
		seen[strings.ToLower(it)] = true
		out = append(out, it)
	}
	sort.Strings(out)
	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
