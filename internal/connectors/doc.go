// Package connectors provides knowledge base sources. Each connector knows
// how to list markdown documents from one kind of location: a local
// directory (filesystem) or a static site publishing index.json (httpindex).
//
// Open picks the connector for a configured knowledge base path.
package connectors
