package cypher

import "github.com/tomasnyberg/cypher-language-support/token"

// Terminal classification. A token of keyword type used as a name
// (a property called "count", a label called "Match") is not a keyword.

func (t *Tree) isKeyword(id NodeID) bool {
	return t.Token(id).Type.IsKeyword() && !t.isSymbolicName(id)
}

func (t *Tree) wantsUpperCase(id NodeID) bool { return t.isKeyword(id) }

func (t *Tree) wantsSpaceBefore(id NodeID) bool {
	return t.isKeyword(id) || t.Token(id).Type.IsOperator()
}

func (t *Tree) wantsSpaceAfter(id NodeID) bool {
	return t.wantsSpaceBefore(id) || t.Token(id).Type == token.Comma
}
