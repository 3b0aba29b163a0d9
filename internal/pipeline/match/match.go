// Package match implements the Semantic Matcher (C5): a three-tier match
// cascade (exact, fuzzy, semantic) aligning job-description skills against
// résumé skills, plus category, embedding, and text-level similarity.
package match

import (
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"

	"github.com/gouthamGottipati/resume-relevance-system/internal/domain"
	"github.com/gouthamGottipati/resume-relevance-system/internal/embedding"
)

const (
	fuzzyThreshold    = 0.85
	semanticThreshold = 0.70

	weightSkill     = 0.40
	weightEmbedding = 0.35
	weightText      = 0.25
)

// MatchSkills cascades every jdSkill through exact, fuzzy, and (when
// backend is available) semantic matching against resumeSkills, then
// derives category, embedding, and text similarity. backend may be
// embedding.NullBackend{} when no embedding provider is configured; the
// semantic tier is skipped and its weight simply contributes zero.
func MatchSkills(ctx domain.Context, resumeSkills, jdSkills []domain.ExtractedSkill, resumeText, jdText string, backend domain.EmbeddingBackend) domain.SemanticMatchResult {
	if backend == nil {
		backend = embedding.NullBackend{}
	}
	matchedResume := map[string]bool{}
	var skillMatches []domain.SkillMatch
	var missing []string

	for _, jd := range jdSkills {
		sm, ok := matchOne(ctx, jd, resumeSkills, backend)
		if ok {
			skillMatches = append(skillMatches, sm)
			matchedResume[strings.ToLower(sm.ResumeSkill)] = true
		} else {
			missing = append(missing, jd.Name)
		}
	}

	var additional []string
	for _, rs := range resumeSkills {
		if !matchedResume[strings.ToLower(rs.Name)] {
			additional = append(additional, rs.Name)
		}
	}
	sort.Strings(missing)
	sort.Strings(additional)

	skillComponent := 1.0
	if len(jdSkills) > 0 {
		skillComponent = float64(len(skillMatches)) / float64(len(jdSkills))
	}

	embeddingSimilarity := embeddingSimilarityOf(ctx, resumeText, jdText, backend)
	textSimilarity := tfidfCosine(resumeText, jdText)

	overall := weightSkill*skillComponent + weightEmbedding*embeddingSimilarity + weightText*textSimilarity

	return domain.SemanticMatchResult{
		OverallSimilarity:    overall,
		SkillMatches:         skillMatches,
		MissingSkills:        missing,
		AdditionalSkills:     additional,
		CategorySimilarities: categorySimilarities(resumeSkills, jdSkills),
		EmbeddingSimilarity:  embeddingSimilarity,
		TextSimilarity:       textSimilarity,
	}
}

func matchOne(ctx domain.Context, jd domain.ExtractedSkill, resumeSkills []domain.ExtractedSkill, backend domain.EmbeddingBackend) (domain.SkillMatch, bool) {
	jdLower := strings.ToLower(jd.Name)

	// Tier 1: exact.
	for _, rs := range resumeSkills {
		if strings.ToLower(rs.Name) == jdLower {
			return domain.SkillMatch{
				SkillName:   jd.Name,
				ResumeSkill: rs.Name,
				JDSkill:     jd.Name,
				MatchType:   domain.MatchExact,
				Confidence:  1.0,
			}, true
		}
	}

	// Tier 2: fuzzy, via a token-sort ratio: both names are lowercased,
	// tokenized, sorted, rejoined, and compared by Levenshtein similarity.
	tokenSort := func(s string) string {
		fields := strings.Fields(strings.ToLower(s))
		sort.Strings(fields)
		return strings.Join(fields, " ")
	}
	jdSorted := tokenSort(jd.Name)
	bestRatio := float32(0)
	bestSkill := ""
	for _, rs := range resumeSkills {
		ratio, err := edlib.StringsSimilarity(jdSorted, tokenSort(rs.Name), edlib.Levenshtein)
		if err != nil {
			continue
		}
		if ratio > bestRatio {
			bestRatio = ratio
			bestSkill = rs.Name
		}
	}
	if bestSkill != "" && float64(bestRatio) >= fuzzyThreshold {
		return domain.SkillMatch{
			SkillName:   jd.Name,
			ResumeSkill: bestSkill,
			JDSkill:     jd.Name,
			MatchType:   domain.MatchFuzzy,
			Confidence:  float64(bestRatio),
		}, true
	}

	// Tier 3: semantic, via embeddings, skipped when backend is unavailable.
	if len(resumeSkills) == 0 {
		return domain.SkillMatch{}, false
	}
	names := make([]string, 0, len(resumeSkills)+1)
	names = append(names, jd.Name)
	for _, rs := range resumeSkills {
		names = append(names, rs.Name)
	}
	vecs, err := backend.Embed(ctx, names)
	if err != nil || len(vecs) != len(names) {
		return domain.SkillMatch{}, false
	}
	jdVec := vecs[0]
	bestSim := 0.0
	bestIdx := -1
	for i := 1; i < len(vecs); i++ {
		sim := vectorCosine(jdVec, vecs[i])
		if sim > bestSim {
			bestSim = sim
			bestIdx = i
		}
	}
	if bestIdx >= 0 && bestSim >= semanticThreshold {
		sim := bestSim
		return domain.SkillMatch{
			SkillName:          jd.Name,
			ResumeSkill:        resumeSkills[bestIdx-1].Name,
			JDSkill:            jd.Name,
			MatchType:          domain.MatchSemantic,
			Confidence:         sim,
			SemanticSimilarity: &sim,
		}, true
	}
	return domain.SkillMatch{}, false
}

func embeddingSimilarityOf(ctx domain.Context, resumeText, jdText string, backend domain.EmbeddingBackend) float64 {
	vecs, err := backend.Embed(ctx, []string{resumeText, jdText})
	if err != nil || len(vecs) != 2 {
		return 0
	}
	return vectorCosine(vecs[0], vecs[1])
}

func categorySimilarities(resumeSkills, jdSkills []domain.ExtractedSkill) map[string]float64 {
	resumeByCat := groupByCategory(resumeSkills)
	jdByCat := groupByCategory(jdSkills)

	cats := map[string]bool{}
	for c := range resumeByCat {
		cats[c] = true
	}
	for c := range jdByCat {
		cats[c] = true
	}

	out := map[string]float64{}
	for c := range cats {
		out[c] = jaccard(resumeByCat[c], jdByCat[c])
	}
	return out
}

func groupByCategory(skills []domain.ExtractedSkill) map[string]map[string]bool {
	out := map[string]map[string]bool{}
	for _, s := range skills {
		cat := string(s.Category)
		if out[cat] == nil {
			out[cat] = map[string]bool{}
		}
		out[cat][strings.ToLower(s.Name)] = true
	}
	return out
}

func jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	intersection := 0
	for k := range a {
		if b[k] {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
