package domain

// MaxExcerptLength is the maximum number of characters in a citation excerpt.
const MaxExcerptLength = 220

// Classification is the outcome of intent classification.
type Classification struct {
	Intent     Intent
	Confidence float64
}

// Citation points at the knowledge base chunk backing an answer.
type Citation struct {
	File    string `json:"file" yaml:"file"`
	Heading string `json:"heading" yaml:"heading"`
	Anchor  string `json:"anchor" yaml:"anchor"`
	Excerpt string `json:"excerpt" yaml:"excerpt"`
}

// CitationFromChunk builds a citation whose excerpt is truncated to MaxExcerptLength runes.
func CitationFromChunk(c Chunk) Citation {
	excerpt := c.Text
	if r := []rune(excerpt); len(r) > MaxExcerptLength {
		excerpt = string(r[:MaxExcerptLength])
	}
	return Citation{
		File:    c.SourceID,
		Heading: c.Heading,
		Anchor:  c.Anchor,
		Excerpt: excerpt,
	}
}

// HybridResponse is the structured answer for one question.
// Its JSON form is the wire contract shared with the API and UI.
type HybridResponse struct {
	Intent               Intent     `json:"intent" yaml:"intent"`
	Confidence           float64    `json:"confidence" yaml:"confidence"`
	MissingInfoQuestions []string   `json:"missing_info_questions" yaml:"missing_info_questions"`
	RecommendedActions   []string   `json:"recommended_actions" yaml:"recommended_actions"`
	Citations            []Citation `json:"citations" yaml:"citations"`
	EscalationSummary    string     `json:"escalation_summary" yaml:"escalation_summary"`
}

// Normalise replaces nil lists with empty ones so they serialise as [].
func (r *HybridResponse) Normalise() *HybridResponse {
	if r.MissingInfoQuestions == nil {
		r.MissingInfoQuestions = []string{}
	}
	if r.RecommendedActions == nil {
		r.RecommendedActions = []string{}
	}
	if r.Citations == nil {
		r.Citations = []Citation{}
	}
	return r
}
