package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chunkOf(source string, tokens ...string) Chunk {
	return Chunk{
		ID:         source + "-" + strings.Join(tokens, "-"),
		SourceID:   source,
		Tokens:     tokens,
		TokenCount: len(tokens),
	}
}

func TestNewCorpus_Statistics(t *testing.T) {
	chunks := []Chunk{
		chunkOf("a.md", "role", "catalog", "role"),
		chunkOf("a.md", "catalog"),
		chunkOf("b.md", "cache", "index"),
	}

	c := NewCorpus(chunks, 2)

	assert.Equal(t, 3, c.ChunkCount)
	assert.Equal(t, 2, c.SourceCount)
	assert.InDelta(t, 2.0, c.AvgChunkLength, 1e-9)
	assert.Equal(t, 1, c.DocumentFrequency["role"], "repeated token counts once per chunk")
	assert.Equal(t, 2, c.DocumentFrequency["catalog"])
	assert.Equal(t, 1, c.DocumentFrequency["cache"])
	assert.Equal(t, []string{"a.md", "b.md"}, c.Sources())
}

func TestNewCorpus_Empty(t *testing.T) {
	c := EmptyCorpus()

	assert.True(t, c.IsEmpty())
	assert.Zero(t, c.AvgChunkLength)
	assert.Empty(t, c.DocumentFrequency)

	var nilCorpus *Corpus
	assert.True(t, nilCorpus.IsEmpty())
	assert.Equal(t, CorpusStats{Source: "x"}, nilCorpus.Stats("x"))
}

func TestNewCorpus_Deterministic(t *testing.T) {
	chunks := []Chunk{chunkOf("a.md", "x1", "y1"), chunkOf("b.md", "y1")}

	first := NewCorpus(chunks, 2)
	second := NewCorpus(chunks, 2)

	assert.Equal(t, first.AvgChunkLength, second.AvgChunkLength)
	assert.Equal(t, first.DocumentFrequency, second.DocumentFrequency)
}

func TestCitationFromChunk_TruncatesExcerpt(t *testing.T) {
	long := strings.Repeat("á", 300)
	c := CitationFromChunk(Chunk{SourceID: "f.md", Heading: "H", Anchor: "h", Text: long})

	assert.Equal(t, MaxExcerptLength, len([]rune(c.Excerpt)))
	assert.Equal(t, "f.md", c.File)
	assert.Equal(t, "h", c.Anchor)
}

func TestHybridResponse_NormaliseSerialisesEmptyLists(t *testing.T) {
	r := (&HybridResponse{Intent: IntentClarify, Confidence: 0.2}).Normalise()

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, []any{}, raw["missing_info_questions"])
	assert.Equal(t, []any{}, raw["recommended_actions"])
	assert.Equal(t, []any{}, raw["citations"])
	assert.Equal(t, "clarify", raw["intent"])
	assert.Contains(t, raw, "escalation_summary")
}
