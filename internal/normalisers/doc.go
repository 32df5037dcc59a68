// Package normalisers turns knowledge base documents into retrievable units.
//
// The tokens subpackage holds the single tokenizer shared by indexing,
// retrieval and intent classification. The markdown subpackage splits
// documents into heading-scoped paragraph chunks.
package normalisers
