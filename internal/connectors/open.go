package connectors

import (
	"github.com/custodia-labs/launchpad-assist/internal/connectors/filesystem"
	"github.com/custodia-labs/launchpad-assist/internal/connectors/httpindex"
	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
	"github.com/custodia-labs/launchpad-assist/internal/core/ports/driven"
)

// Open returns the source for a knowledge base path. Only http(s) URLs
// are remote; anything else is a directory.
func Open(path string) driven.CorpusSource {
	if (domain.KnowledgeBaseSettings{Path: path}).IsRemote() {
		return httpindex.New(httpindex.Config{BaseURL: path})
	}
	return filesystem.New(path)
}
