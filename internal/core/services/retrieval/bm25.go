// Package retrieval ranks knowledge base chunks against a query with BM25.
package retrieval

import (
	"math"
	"sort"

	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
	"github.com/custodia-labs/launchpad-assist/internal/normalisers/tokens"
)

// BM25 parameters.
const (
	K1 = 1.2
	B  = 0.75
)

// DefaultTopK is the number of chunks returned when the caller does not ask for a size.
const DefaultTopK = 4

// IDF returns the inverse document frequency of a term occurring in df of n chunks.
func IDF(n, df int) float64 {
	return math.Log(1 + (float64(n)-float64(df)+0.5)/(float64(df)+0.5))
}

// Score computes the BM25 score of chunk for the query tokens.
// Query terms absent from the chunk contribute nothing.
func Score(chunk domain.Chunk, query []string, corpus *domain.Corpus) float64 {
	if corpus == nil {
		return 0
	}
	avgLen := corpus.AvgChunkLength
	if avgLen == 0 {
		avgLen = 1
	}
	docLen := float64(chunk.TokenCount)
	if docLen == 0 {
		docLen = 1
	}

	tf := termCounts(chunk.Tokens)
	score := 0.0
	for _, term := range query {
		f := float64(tf[term])
		if f == 0 {
			continue
		}
		idf := IDF(corpus.ChunkCount, corpus.DocumentFrequency[term])
		score += idf * (f * (K1 + 1)) / (f + K1*(1-B+B*docLen/avgLen))
	}
	return score
}

func termCounts(toks []string) map[string]int {
	counts := make(map[string]int, len(toks))
	for _, t := range toks {
		counts[t]++
	}
	return counts
}

// Retrieve returns the topK chunks with a positive score for query, best first.
// Equal scores keep corpus order. An empty query or corpus yields an empty slice.
func Retrieve(corpus *domain.Corpus, query string, topK int) []domain.ScoredChunk {
	if topK <= 0 {
		topK = DefaultTopK
	}
	if corpus.IsEmpty() {
		return []domain.ScoredChunk{}
	}
	q := tokens.Tokenize(query)
	if len(q) == 0 {
		return []domain.ScoredChunk{}
	}

	scored := make([]domain.ScoredChunk, 0, len(corpus.Chunks))
	for _, c := range corpus.Chunks {
		if s := Score(c, q, corpus); s > 0 {
			scored = append(scored, domain.ScoredChunk{Chunk: c, Score: s})
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > topK {
		scored = scored[:topK]
	}
	return scored
}
