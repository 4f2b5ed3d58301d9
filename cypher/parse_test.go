package cypher_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/tomasnyberg/cypher-language-support/cypher"
)

func TestParseTree(t *testing.T) {
	tree, err := cypher.Parse(strings.NewReader("RETURN 1"))
	if err != nil {
		t.Fatal(err)
	}
	var b strings.Builder
	if err := cypher.Fdump(&b, tree); err != nil {
		t.Fatal(err)
	}
	want := `Statements
. Query
. . SingleQuery
. . . Return
. . . . return("RETURN")
. . . . ReturnItems
. . . . . ReturnItem
. . . . . . NumberLiteral
. . . . . . . Int("1")
. EOF
`
	if got := b.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestParseParents(t *testing.T) {
	tree, err := cypher.Parse(strings.NewReader("MATCH (n:Person)-[r]->(m) WHERE n.age > 3 RETURN m"))
	if err != nil {
		t.Fatal(err)
	}
	if p := tree.Parent(tree.Root); p != cypher.NoNode {
		t.Errorf("root has parent %d", p)
	}
	for id := range tree.Nodes {
		for _, c := range tree.Children(cypher.NodeID(id)) {
			if p := tree.Parent(c); p != cypher.NodeID(id) {
				t.Errorf("%v child %v has parent %d, want %d", tree.Kind(cypher.NodeID(id)), tree.Kind(c), p, id)
			}
		}
	}
}

func TestParseChild(t *testing.T) {
	tree, err := cypher.Parse(strings.NewReader("MATCH (a) WHERE EXISTS { MATCH (a)-->(b) RETURN b } RETURN a"))
	if err != nil {
		t.Fatal(err)
	}
	var sub cypher.NodeID = cypher.NoNode
	for id := range tree.Nodes {
		if tree.Kind(cypher.NodeID(id)) == cypher.Subquery {
			sub = cypher.NodeID(id)
		}
	}
	if sub == cypher.NoNode {
		t.Fatal("no subquery in tree")
	}
	q := tree.Child(sub, cypher.Query)
	if q == cypher.NoNode {
		t.Fatal("subquery has no query child")
	}
	if got := tree.Node(q).Parent; got != sub {
		t.Errorf("query parent = %d, want %d", got, sub)
	}
	if c := tree.Child(sub, cypher.Where); c != cypher.NoNode {
		t.Errorf("unexpected Where child %d", c)
	}
}

func TestParseText(t *testing.T) {
	tree, err := cypher.Parse(strings.NewReader("match (a)-->(b)\n  return   a.x"))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := tree.Text(tree.Root), "match ( a ) - - > ( b ) return a . x"; got != want {
		t.Errorf("Text = %q, want %q", got, want)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input        string
		line, column int
	}{
		{"MATCH (n RETURN n", 1, 10},
		{"RETURN 'abc", 1, 12},
		{"RETURN 1 2", 1, 10},
		{"RETURN n @", 1, 10},
		{"MATCH (n)\nWHERE", 2, 6},
		{"RETURN CASE END", 1, 16},
		{"FOREACH (x IN [1] | )", 1, 21},
		{"LOAD CSV FROM 'f' RETURN 1", 1, 19},
	}
	for _, tt := range tests {
		_, err := cypher.Parse(strings.NewReader(tt.input))
		var se *cypher.SyntaxError
		if !errors.As(err, &se) {
			t.Errorf("%q: got err %v, want *SyntaxError", tt.input, err)
			continue
		}
		if se.Line != tt.line || se.Column != tt.column {
			t.Errorf("%q: error at %d:%d (%v), want %d:%d", tt.input, se.Line, se.Column, se.Err, tt.line, tt.column)
		}
	}
}
