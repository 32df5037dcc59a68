// Package domain defines the core business entities for launchpad-assist.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Chunk: A paragraph of a knowledge base document, tokenised for retrieval
//   - Corpus: All chunks of the knowledge base plus BM25 statistics
//   - Intent: The closed set of problem categories a question can describe
//   - Playbook: Static, localised guidance attached to an intent
//   - HybridResponse: The structured answer returned for every question
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
