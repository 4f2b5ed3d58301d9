// Package cypher parses Cypher queries into a syntax tree and prints
// them back in a canonical layout.
//
// The tree keeps a reference to the full token stream, including
// whitespace and comments, so the printer can put every comment back
// next to the token it followed in the source.
package cypher
