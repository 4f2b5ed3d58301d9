package cypher

import (
	"strings"

	"github.com/tomasnyberg/cypher-language-support/token"
)

// Canonical returns the normalized form of t: every visible token in
// lower case, separated by single spaces, with MERGE actions ordered
// the way Format orders them. Two queries that differ only in layout,
// comments, keyword case or the order of their ON CREATE and ON MATCH
// actions have the same canonical form.
func Canonical(t *Tree) string {
	var words []string
	var walk func(id NodeID)
	walk = func(id NodeID) {
		switch t.Kind(id) {
		case Terminal:
			if tok := t.Token(id); tok.Type != token.EOF {
				words = append(words, strings.ToLower(tok.Text))
			}
		case Merge:
			for _, c := range t.mergeOrder(id) {
				walk(c)
			}
		default:
			for _, c := range t.Children(id) {
				walk(c)
			}
		}
	}
	walk(t.Root)
	return strings.Join(words, " ")
}
