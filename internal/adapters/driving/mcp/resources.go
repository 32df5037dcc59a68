package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
)

const (
	// uriScheme is the URI scheme for knowledge base resources.
	uriScheme = "kb://"

	playbooksPrefix = uriScheme + "playbooks/"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "documents",
		Name:        "documents",
		Description: "Documents loaded into the knowledge base with their headings",
		MIMEType:    "application/json",
	}, s.handleDocumentsResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "stats",
		Name:        "stats",
		Description: "Knowledge base statistics",
		MIMEType:    "application/json",
	}, s.handleStatsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: playbooksPrefix + "{intent}{?lang}",
		Name:        "playbook",
		Description: "Starter actions, clarifying questions and citation files for an intent",
		MIMEType:    "application/json",
	}, s.handlePlaybookResource)
}

// handleDocumentsResource lists the loaded documents.
func (s *Server) handleDocumentsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	docs, err := s.ports.Ask.Documents(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	if docs == nil {
		docs = []domain.DocumentSummary{}
	}
	return jsonResource(req.Params.URI, docs)
}

// handleStatsResource returns the corpus statistics.
func (s *Server) handleStatsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	stats, err := s.ports.Ask.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading stats: %w", err)
	}
	return jsonResource(req.Params.URI, stats)
}

// handlePlaybookResource renders the playbook named in the URI. A
// "?lang=es" suffix selects Spanish.
func (s *Server) handlePlaybookResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Playbooks == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	name, locale := extractIntent(req.Params.URI)
	if name == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	view, err := s.ports.Playbooks.Get(name, locale)
	if errors.Is(err, domain.ErrUnknownIntent) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, err
	}
	return jsonResource(req.Params.URI, view)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractIntent parses kb://playbooks/{intent}[?lang=xx].
func extractIntent(uri string) (string, domain.Locale) {
	if !strings.HasPrefix(uri, playbooksPrefix) {
		return "", domain.LocaleEN
	}
	rest := strings.TrimPrefix(uri, playbooksPrefix)

	locale := domain.LocaleEN
	if i := strings.IndexByte(rest, '?'); i >= 0 {
		query := rest[i+1:]
		rest = rest[:i]
		for _, kv := range strings.Split(query, "&") {
			if v, ok := strings.CutPrefix(kv, "lang="); ok {
				locale = domain.LocaleOrDefault(v)
			}
		}
	}
	return rest, locale
}
