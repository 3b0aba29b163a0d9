// Package skills implements the Skill Extractor (C4): four independent
// strategies (dictionary, regex, contextual, optional NLP) run over a block
// of text and are merged into one categorized, deduplicated SkillProfile.
package skills

import (
	"strings"

	"github.com/gouthamGottipati/resume-relevance-system/internal/domain"
	"github.com/gouthamGottipati/resume-relevance-system/internal/nlp"
	"github.com/gouthamGottipati/resume-relevance-system/internal/skilldict"
)

const (
	confidenceDictionary = 0.80
	confidenceContextual = 0.80
	confidenceNLP        = 0.70
	boostPerRepeat       = 0.05
	boostSkillsSection   = 0.10
	contextWindow        = 100
	proximityWindow      = 500
)

type hit struct {
	skilldict.Entry
	confidence float64
	count      int
	context    string
}

// ExtractSkills runs the four extraction strategies using a null NLP
// backend (no NLP-derived noun-chunk strategy) and merges the result.
func ExtractSkills(ctx domain.Context, text string) domain.SkillProfile {
	return ExtractSkillsWithBackend(ctx, text, nlp.NullBackend{})
}

// ExtractSkillsWithBackend is ExtractSkills with a caller-supplied NLP
// backend; when backend is unavailable the NLP strategy is silently
// skipped (§4.4's capability-interface contract).
func ExtractSkillsWithBackend(ctx domain.Context, text string, backend domain.NLPBackend) domain.SkillProfile {
	if backend == nil {
		backend = nlp.NullBackend{}
	}
	lower := strings.ToLower(text)
	skillsSectionPos := skillsSectionIndex(lower)

	hits := map[string]*hit{}
	record := func(e skilldict.Entry, conf float64, idx int) {
		key := string(e.Category) + "|" + strings.ToLower(e.Name)
		h, ok := hits[key]
		if !ok {
			h = &hit{Entry: e, confidence: conf}
			if idx >= 0 {
				h.context = snippet(text, idx)
			}
			hits[key] = h
		} else if conf > h.confidence {
			h.confidence = conf
		}
		h.count++
		if idx >= 0 && skillsSectionPos >= 0 && idx >= skillsSectionPos && idx-skillsSectionPos < proximityWindow {
			h.confidence = boost(h.confidence, boostSkillsSection)
		}
	}

	// Strategy 1: dictionary substring match.
	for _, e := range skilldict.All() {
		for _, name := range append([]string{e.Name}, e.Aliases...) {
			idx := strings.Index(lower, strings.ToLower(name))
			if idx >= 0 {
				record(e, confidenceDictionary, idx)
			}
		}
	}

	// Strategy 2: regex patterns for punctuation-heavy surface forms.
	for _, rs := range skilldict.RegexPatterns {
		if loc := rs.Pattern.FindStringIndex(text); loc != nil {
			record(skilldict.Entry{Name: rs.Name, Category: rs.Category}, rs.Confidence, loc[0])
		}
	}

	// Strategy 3: contextual trigger phrases ("experience with X, Y, Z").
	for _, trigger := range skilldict.ContextualTriggers {
		start := 0
		for {
			idx := strings.Index(lower[start:], trigger)
			if idx < 0 {
				break
			}
			abs := start + idx + len(trigger)
			segment := segmentAfter(text, abs)
			for _, tok := range strings.Split(segment, ",") {
				tok = strings.TrimSpace(tok)
				if tok == "" {
					continue
				}
				if e, ok := skilldict.Lookup(tok); ok {
					record(e, confidenceContextual, abs)
				}
			}
			start = start + idx + len(trigger)
		}
	}

	// Strategy 4: optional NLP noun-chunk extraction, skipped when the
	// backend is unavailable.
	if chunks, err := backend.NounChunks(ctx, text); err == nil {
		for _, chunk := range chunks {
			if e, ok := skilldict.Lookup(chunk); ok {
				record(e, confidenceNLP, -1)
			}
		}
	}

	// Repeat-occurrence boost, applied once per skill using its total count.
	for _, h := range hits {
		if h.count > 1 {
			h.confidence = boost(h.confidence, boostPerRepeat*float64(h.count-1))
		}
	}

	profile := domain.SkillProfile{SkillCategories: map[domain.SkillCategory][]string{}}
	for _, h := range hits {
		skill := domain.ExtractedSkill{
			Name:       h.Name,
			Category:   h.Category,
			Confidence: h.confidence,
			Context:    h.context,
			Aliases:    h.Aliases,
		}
		switch skilldict.Bucket(h.Category) {
		case domain.BucketSoft:
			profile.SoftSkills = append(profile.SoftSkills, skill)
		case domain.BucketTools:
			profile.ToolsPlatforms = append(profile.ToolsPlatforms, skill)
		case domain.BucketDomain:
			profile.DomainExpertise = append(profile.DomainExpertise, skill)
		default:
			profile.TechnicalSkills = append(profile.TechnicalSkills, skill)
		}
		profile.SkillCategories[h.Category] = append(profile.SkillCategories[h.Category], h.Name)
	}
	profile.Certifications = extractCertifications(text)
	profile.TotalSkillsCount = len(profile.AllSkills())
	profile.SkillDiversity = bucketDiversity(profile)
	return profile
}

func boost(conf, amount float64) float64 {
	conf += amount
	if conf > 1.0 {
		conf = 1.0
	}
	return conf
}

func skillsSectionIndex(lower string) int {
	best := -1
	for _, kw := range skilldict.SectionKeywords["skills"] {
		if idx := strings.Index(lower, kw); idx >= 0 && (best < 0 || idx < best) {
			best = idx
		}
	}
	return best
}

func snippet(text string, idx int) string {
	start := idx - contextWindow/2
	if start < 0 {
		start = 0
	}
	end := idx + contextWindow/2
	if end > len(text) {
		end = len(text)
	}
	return strings.TrimSpace(text[start:end])
}

// segmentAfter returns the text from abs up to the next sentence boundary
// or newline, bounded to a reasonable span for tokenizing.
func segmentAfter(text string, abs int) string {
	if abs >= len(text) {
		return ""
	}
	rest := text[abs:]
	if idx := strings.IndexAny(rest, ".\n"); idx >= 0 {
		rest = rest[:idx]
	}
	if len(rest) > 200 {
		rest = rest[:200]
	}
	return rest
}

func extractCertifications(text string) []string {
	seen := map[string]bool{}
	var out []string
	for _, re := range skilldict.CertificationPatterns {
		for _, m := range re.FindAllString(text, -1) {
			m = strings.TrimSpace(m)
			key := strings.ToLower(m)
			if m == "" || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, m)
		}
	}
	return out
}

func bucketDiversity(p domain.SkillProfile) float64 {
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
