// Package scoring implements the resume-to-job scoring engine: lexical
// similarity, skill overlap, composite scoring, and feedback generation.
package scoring

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/jonathan/resume-screener/internal/nlp"
)

// defaultMaxFeatures caps the vocabulary at the top terms by corpus frequency.
const defaultMaxFeatures = 500

// SimilarityScorer computes pairwise lexical similarity between two documents
// using tf-idf weighting over the two-document corpus and cosine similarity.
// A scorer holds no per-invocation state and is safe for concurrent use; the
// vocabulary and weights are rebuilt for every document pair because they are
// a function of exactly that pair.
type SimilarityScorer struct {
	maxFeatures int
	stopwords   map[string]bool
}

// SimilarityOption configures a SimilarityScorer.
type SimilarityOption func(*SimilarityScorer)

// WithMaxFeatures overrides the vocabulary size cap.
func WithMaxFeatures(n int) SimilarityOption {
	return func(s *SimilarityScorer) {
		if n > 0 {
			s.maxFeatures = n
		}
	}
}

// WithStopwords overrides the stopword set.
func WithStopwords(words map[string]bool) SimilarityOption {
	return func(s *SimilarityScorer) {
		if words != nil {
			s.stopwords = words
		}
	}
}

// NewSimilarityScorer creates a scorer with the default vocabulary cap and
// the fixed English stopword set.
func NewSimilarityScorer(opts ...SimilarityOption) *SimilarityScorer {
	s := &SimilarityScorer{
		maxFeatures: defaultMaxFeatures,
		stopwords:   nlp.EnglishStopwords(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Similarity returns the cosine similarity of the tf-idf vectors of the two
// texts, in [0, 1]. Document frequency is computed over just these two
// documents, so the idf term mainly separates shared vocabulary from
// vocabulary exclusive to one document. Degenerate input (both texts empty
// after stopword removal) yields 0.0 rather than an error.
func (s *SimilarityScorer) Similarity(textA, textB string) float64 {
	termsA := s.terms(textA)
	termsB := s.terms(textB)

	vocab := buildVocabulary(termsA, termsB, s.maxFeatures)
	if len(vocab) == 0 {
		return 0.0
	}

	countsA := countTerms(termsA, vocab)
	countsB := countTerms(termsB, vocab)

	// Smooth idf over the two-document corpus: ln((1+n)/(1+df)) + 1 with n=2.
	// df is 1 or 2, so idf takes exactly two values.
	vecA := make([]float64, len(vocab))
	vecB := make([]float64, len(vocab))
	for term, i := range vocab {
		df := 0
		if countsA[term] > 0 {
			df++
		}
		if countsB[term] > 0 {
			df++
		}
		idf := math.Log(3.0/(1.0+float64(df))) + 1.0
		vecA[i] = float64(countsA[term]) * idf
		vecB[i] = float64(countsB[term]) * idf
	}

	return cosine(vecA, vecB)
}

// terms tokenizes text into stopword-filtered unigrams and bigrams of
// alphabetic tokens.
func (s *SimilarityScorer) terms(text string) []string {
	tokens := alphabeticTokens(strings.ToLower(text))

	kept := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if !s.stopwords[token] {
			kept = append(kept, token)
		}
	}

	terms := make([]string, 0, 2*len(kept))
	terms = append(terms, kept...)
	for i := 0; i+1 < len(kept); i++ {
		terms = append(terms, kept[i]+" "+kept[i+1])
	}
	return terms
}

// alphabeticTokens splits text into maximal runs of letters.
func alphabeticTokens(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}

// buildVocabulary selects up to maxFeatures terms by total corpus frequency.
// Ties are broken by first-encountered order.
func buildVocabulary(termsA, termsB []string, maxFeatures int) map[string]int {
	freq := make(map[string]int)
	order := make([]string, 0)
	for _, term := range termsA {
		if freq[term] == 0 {
			order = append(order, term)
		}
		freq[term]++
	}
	for _, term := range termsB {
		if freq[term] == 0 {
			order = append(order, term)
		}
		freq[term]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return freq[order[i]] > freq[order[j]]
	})
	if len(order) > maxFeatures {
		order = order[:maxFeatures]
	}

	vocab := make(map[string]int, len(order))
	for i, term := range order {
		vocab[term] = i
	}
	return vocab
}

func countTerms(terms []string, vocab map[string]int) map[string]int {
	counts := make(map[string]int)
	for _, term := range terms {
		if _, ok := vocab[term]; ok {
			counts[term]++
		}
	}
	return counts
}

func cosine(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0.0
	}

	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	// Guard against floating point drift outside [0, 1].
	if sim > 1.0 {
		sim = 1.0
	}
	if sim < 0.0 {
		sim = 0.0
	}
	return sim
}
