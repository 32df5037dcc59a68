package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
)

// defaultTopK is used when retrieve is called without top_k.
const defaultTopK = 5

// AskInput is the input schema for the ask tool.
type AskInput struct {
	Question string `json:"question" jsonschema:"the troubleshooting question in English or Spanish"`
	Language string `json:"language,omitempty" jsonschema:"response language: en or es (default en)"`
}

// RetrieveInput is the input schema for the retrieve tool.
type RetrieveInput struct {
	Query string `json:"query" jsonschema:"the text to match against knowledge base passages"`
	TopK  int    `json:"top_k,omitempty" jsonschema:"maximum number of passages to return (default 5)"`
}

// RetrieveOutput is the output schema for the retrieve tool.
type RetrieveOutput struct {
	Passages []PassageOutput `json:"passages"`
	Count    int             `json:"count"`
}

// PassageOutput represents a single retrieved chunk.
type PassageOutput struct {
	File    string  `json:"file"`
	Heading string  `json:"heading"`
	Anchor  string  `json:"anchor"`
	Score   float64 `json:"score"`
	Text    string  `json:"text"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask",
		Description: "Answer an SAP Fiori Launchpad troubleshooting question with actions, questions, citations and an escalation summary",
	}, s.handleAsk)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "retrieve",
		Description: "Return the knowledge base passages that best match a query",
	}, s.handleRetrieve)
}

// handleAsk handles the ask tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, domain.HybridResponse, error) {
	resp, err := s.ports.Ask.Ask(ctx, input.Question, domain.LocaleOrDefault(input.Language))
	if err != nil {
		return nil, domain.HybridResponse{}, err
	}
	return nil, *resp.Normalise(), nil
}

// handleRetrieve handles the retrieve tool invocation.
func (s *Server) handleRetrieve(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RetrieveInput,
) (*mcp.CallToolResult, RetrieveOutput, error) {
	topK := input.TopK
	if topK <= 0 {
		topK = defaultTopK
	}

	chunks, err := s.ports.Ask.Retrieve(ctx, input.Query, topK)
	if err != nil {
		return nil, RetrieveOutput{}, err
	}

	output := RetrieveOutput{
		Passages: make([]PassageOutput, len(chunks)),
		Count:    len(chunks),
	}
	for i, sc := range chunks {
		output.Passages[i] = PassageOutput{
			File:    sc.Chunk.SourceID,
			Heading: sc.Chunk.Heading,
			Anchor:  sc.Chunk.Anchor,
			Score:   sc.Score,
			Text:    sc.Chunk.Text,
		}
	}

	return nil, output, nil
}
