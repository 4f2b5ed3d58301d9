package format_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tomasnyberg/cypher-language-support/cypher"
	"github.com/tomasnyberg/cypher-language-support/format"
)

func TestPipe(t *testing.T) {
	var b bytes.Buffer
	err := format.Pipe("q.cypher", &b, strings.NewReader("match (n) return n"), cypher.Standard)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := b.String(), "MATCH (n)\nRETURN n\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPipeSyntaxError(t *testing.T) {
	err := format.Pipe("q.cypher", new(bytes.Buffer), strings.NewReader("MATCH (n RETURN n"), cypher.Standard)
	if err == nil {
		t.Fatal("expected error")
	}
	if got, want := err.Error(), "q.cypher:1:10: "; !strings.HasPrefix(got, want) {
		t.Errorf("got %q, want prefix %q", got, want)
	}
}

func TestEquivalent(t *testing.T) {
	tests := []struct {
		a, b string
		same bool
		diff string
	}{
		{"MATCH (n) RETURN n", "match (n)\n// c\nreturn n", true, ""},
		{
			"MERGE (n) ON MATCH SET n.a = 1 ON CREATE SET n.b = 2",
			"MERGE (n) ON CREATE SET n.b = 2 ON MATCH SET n.a = 1",
			true, "",
		},
		{"RETURN 1", "RETURN 2", false, "return [-1-] {+2+}"},
		{"RETURN a", "RETURN a, b", false, "return a {+, b+}"},
	}
	for _, tt := range tests {
		same, diff, err := format.Equivalent("a.cypher", []byte(tt.a), "b.cypher", []byte(tt.b))
		if err != nil {
			t.Errorf("%q, %q: %v", tt.a, tt.b, err)
			continue
		}
		if same != tt.same || diff != tt.diff {
			t.Errorf("Equivalent(%q, %q) = %v, %q; want %v, %q", tt.a, tt.b, same, diff, tt.same, tt.diff)
		}
	}

	_, _, err := format.Equivalent("a.cypher", []byte("RETURN 1"), "b.cypher", []byte("RETURN"))
	if err == nil {
		t.Fatal("expected error for invalid query")
	}
	if got, want := err.Error(), "b.cypher:1:7: "; !strings.HasPrefix(got, want) {
		t.Errorf("got %q, want prefix %q", got, want)
	}
}

func TestSourceIdempotent(t *testing.T) {
	src := []byte("match (a)-[:KNOWS]->(b) where a.age>30 return b.name as name order by name")
	once, err := format.Source("q", src, cypher.Standard)
	if err != nil {
		t.Fatal(err)
	}
	twice, err := format.Source("q", once, cypher.Standard)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(once, twice) {
		t.Errorf("not idempotent:\n%s\n---\n%s", once, twice)
	}
}
