package domain

// SourceDocument is a named knowledge base document as delivered by a corpus source.
type SourceDocument struct {
	// Name is the stable identifier of the document, conventionally its file name.
	Name string

	// Content is the raw markdown text.
	Content string
}

// Chunk is a paragraph-level unit of retrievable text.
// Chunks are immutable once produced by the chunker.
type Chunk struct {
	// ID is unique within a corpus: source, heading and ordinal.
	ID string `json:"id"`

	// SourceID is the document the chunk came from.
	SourceID string `json:"file"`

	// Heading is the nearest preceding heading, or "Introduction".
	Heading string `json:"heading"`

	// Anchor is the slugified heading.
	Anchor string `json:"anchor"`

	// Text is the paragraph with whitespace collapsed.
	Text string `json:"text"`

	// Tokens is the normalised token sequence of Text.
	Tokens []string `json:"tokens"`

	// TokenCount is len(Tokens).
	TokenCount int `json:"token_count"`
}

// ScoredChunk pairs a chunk with its retrieval score.
type ScoredChunk struct {
	Chunk Chunk
	Score float64
}

// Corpus is the in-memory knowledge base: every chunk plus BM25 statistics.
// A Corpus is read-only after NewCorpus returns and safe for concurrent use.
type Corpus struct {
	// Chunks in load order.
	Chunks []Chunk

	// ChunkCount is len(Chunks).
	ChunkCount int

	// AvgChunkLength is the mean TokenCount, or 0 for an empty corpus.
	AvgChunkLength float64

	// DocumentFrequency maps a token to the number of chunks containing it.
	DocumentFrequency map[string]int

	// SourceCount is the number of documents the corpus was built from.
	SourceCount int
}

// NewCorpus computes corpus statistics for chunks.
func NewCorpus(chunks []Chunk, sourceCount int) *Corpus {
	df := make(map[string]int)
	total := 0
	for _, c := range chunks {
		seen := make(map[string]struct{}, len(c.Tokens))
		for _, tok := range c.Tokens {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
		total += c.TokenCount
	}

	avg := 0.0
	if len(chunks) > 0 {
		avg = float64(total) / float64(len(chunks))
	}

	return &Corpus{
		Chunks:            chunks,
		ChunkCount:        len(chunks),
		AvgChunkLength:    avg,
		DocumentFrequency: df,
		SourceCount:       sourceCount,
	}
}

// EmptyCorpus returns a corpus with no chunks.
func EmptyCorpus() *Corpus {
	return NewCorpus(nil, 0)
}

// IsEmpty reports whether the corpus has no chunks. A nil corpus is empty.
func (c *Corpus) IsEmpty() bool {
	return c == nil || len(c.Chunks) == 0
}

// Sources returns the distinct source IDs in first-seen order.
func (c *Corpus) Sources() []string {
	if c == nil {
		return nil
	}
	var out []string
	seen := make(map[string]struct{})
	for _, ch := range c.Chunks {
		if _, ok := seen[ch.SourceID]; ok {
			continue
		}
		seen[ch.SourceID] = struct{}{}
		out = append(out, ch.SourceID)
	}
	return out
}

// CorpusStats summarises a corpus for status displays.
type CorpusStats struct {
	Source         string  `json:"source" yaml:"source"`
	Documents      int     `json:"documents" yaml:"documents"`
	Chunks         int     `json:"chunks" yaml:"chunks"`
	AvgChunkLength float64 `json:"avg_chunk_length" yaml:"avg_chunk_length"`
	Vocabulary     int     `json:"vocabulary" yaml:"vocabulary"`
}

// Stats returns the summary of the corpus. source names where it was loaded from.
func (c *Corpus) Stats(source string) CorpusStats {
	if c == nil {
		return CorpusStats{Source: source}
	}
	return CorpusStats{
		Source:         source,
		Documents:      c.SourceCount,
		Chunks:         c.ChunkCount,
		AvgChunkLength: c.AvgChunkLength,
		Vocabulary:     len(c.DocumentFrequency),
	}
}

// DocumentSummary describes one loaded document.
type DocumentSummary struct {
	Name     string   `json:"name" yaml:"name"`
	Chunks   int      `json:"chunks" yaml:"chunks"`
	Headings []string `json:"headings" yaml:"headings"`
}

// Documents summarises every source in first-seen order. Headings are
// distinct and in document order.
func (c *Corpus) Documents() []DocumentSummary {
	if c == nil {
		return nil
	}
	var out []DocumentSummary
	index := make(map[string]int)
	seenHeading := make(map[string]struct{})
	for _, ch := range c.Chunks {
		i, ok := index[ch.SourceID]
		if !ok {
			i = len(out)
			index[ch.SourceID] = i
			out = append(out, DocumentSummary{Name: ch.SourceID})
		}
		out[i].Chunks++
		key := ch.SourceID + "\x00" + ch.Heading
		if _, dup := seenHeading[key]; !dup {
			seenHeading[key] = struct{}{}
			out[i].Headings = append(out[i].Headings, ch.Heading)
		}
	}
	return out
}
