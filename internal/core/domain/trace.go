package domain

import "time"

// Trace records how one question was answered.
type Trace struct {
	ID         string    `json:"id" yaml:"id"`
	Question   string    `json:"question" yaml:"question"`
	Locale     Locale    `json:"locale" yaml:"locale"`
	Intent     Intent    `json:"intent" yaml:"intent"`
	Route      Route     `json:"route" yaml:"route"`
	Confidence float64   `json:"confidence" yaml:"confidence"`
	KBChunks   int       `json:"kb_chunks" yaml:"kb_chunks"`
	Provider   string    `json:"provider" yaml:"provider"`
	Model      string    `json:"model" yaml:"model"`
	LatencyMs  int64     `json:"latency_ms" yaml:"latency_ms"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
}

// IntentCount is the number of traces classified as Intent.
type IntentCount struct {
	Intent Intent `json:"intent" yaml:"intent"`
	Count  int    `json:"count" yaml:"count"`
}
