package match

import (
	"math"

	"github.com/gouthamGottipati/resume-relevance-system/internal/textx"
)

// tfidfCosine computes the cosine similarity between two documents' TF-IDF
// vectors over the two-document corpus {a, b}. No third-party vector-space
// library exists in the reference pack suited to a simple two-document
// cosine similarity, so this stays on the standard library (see DESIGN.md).
func tfidfCosine(a, b string) float64 {
	tokensA := textx.Tokenize(a)
	tokensB := textx.Tokenize(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	tfA := termFrequency(tokensA)
	tfB := termFrequency(tokensB)

	df := map[string]int{}
	for term := range tfA {
		df[term]++
	}
	for term := range tfB {
		df[term]++
	}

	vocab := make([]string, 0, len(df))
	for term := range df {
		vocab = append(vocab, term)
	}

	vecA := make([]float64, len(vocab))
	vecB := make([]float64, len(vocab))
	for i, term := range vocab {
		idf := math.Log(float64(2)/float64(df[term])) + 1
		vecA[i] = tfA[term] * idf
		vecB[i] = tfB[term] * idf
	}
	return cosineSimilarity(vecA, vecB)
}

func termFrequency(tokens []string) map[string]float64 {
	counts := map[string]float64{}
	for _, t := range tokens {
		counts[t]++
	}
	total := float64(len(tokens))
	for t := range counts {
		counts[t] /= total
	}
	return counts
}

func cosineSimilarity(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// vectorCosine computes cosine similarity between two arbitrary embedding
// vectors, used for the optional embedding-backed semantic tier.
func vectorCosine(a, b []float32) float64 {
	af := make([]float64, len(a))
	bf := make([]float64, len(b))
	for i := range a {
		af[i] = float64(a[i])
	}
	for i := range b {
		bf[i] = float64(b[i])
	}
	return cosineSimilarity(af, bf)
}
