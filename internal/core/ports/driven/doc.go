// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - CorpusSource: Lists knowledge base documents (directory or index.json site)
//   - Normaliser: Splits a document into retrievable chunks
//   - LLMService: Generates grounded answers. The mock provider stands in when
//     no real provider is configured.
//   - TraceStore: Persists one record per answered question
//   - ConfigStore: Application configuration
//   - AIConfigValidator: Checks LLM settings before they are saved
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or normaliser package
package driven
