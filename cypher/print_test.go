package cypher_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tomasnyberg/cypher-language-support/cypher"
	"github.com/tomasnyberg/cypher-language-support/token"
)

func mustParse(t *testing.T, src string) *cypher.Tree {
	t.Helper()
	tree, err := cypher.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parsing %q: %v", src, err)
	}
	return tree
}

var formatTests = []struct {
	name  string
	input string
	want  string
}{{
	"merge actions",
	"MERGE (n) ON CREATE SET n.prop = 0\nMERGE (a:A)-[:T]->(b:B)\nON MATCH SET b.name = 'you'\nON CREATE SET a.name = 'me'\nRETURN a.prop",
	"MERGE (n)\n  ON CREATE SET n.prop = 0\nMERGE (a:A)-[:T]->(b:B)\n  ON CREATE SET a.name = 'me'\n  ON MATCH SET b.name = 'you'\nRETURN a.prop",
}, {
	"exists subquery",
	"MATCH (a:A) WHERE EXISTS {MATCH (a)-->(b:B) WHERE b.prop = 'yellow'} RETURN a.foo",
	"MATCH (a:A)\nWHERE EXISTS {\n  MATCH (a)-->(b:B)\n  WHERE b.prop = 'yellow'\n}\nRETURN a.foo",
}, {
	"map literal",
	"WITH { key1 :'value' ,key2  :  42 } AS map RETURN map",
	"WITH {key1: 'value', key2: 42} AS map\nRETURN map",
}, {
	"path and comparison",
	"MATCH p=(s)-->(e)\nWHERE s.name<>e.name\nRETURN length(p)",
	"MATCH p = (s)-->(e)\nWHERE s.name <> e.name\nRETURN length(p)",
}, {
	"leading comment",
	"// note\nMATCH (n) return n",
	"// note\nMATCH (n)\nRETURN n",
}, {
	"count star",
	"match (n:Person {name: 'x'}) return count(*)",
	"MATCH (n:Person {name: 'x'})\nRETURN count(*)",
}, {
	"keywords as names",
	"MATCH (n) WHERE n.count > 1 RETURN n.count AS Count",
	"MATCH (n)\nWHERE n.count > 1\nRETURN n.count AS Count",
}, {
	"variable length",
	"OPTIONAL MATCH (a)<-[r:KNOWS*1..3]-(b) RETURN a, r, b ORDER BY a.name DESC, b.name SKIP 1 LIMIT 10",
	"OPTIONAL MATCH (a)<-[r:KNOWS*1..3]-(b)\nRETURN a, r, b ORDER BY a.name DESC, b.name SKIP 1 LIMIT 10",
}, {
	"signed numbers",
	"unwind [1, -2, 3.5] as x with x where x > 0 return x",
	"UNWIND [1, -2, 3.5] AS x\nWITH x\nWHERE x > 0\nRETURN x",
}, {
	"trailing comment",
	"MATCH (n) RETURN n // trailing",
	"MATCH (n)\nRETURN n // trailing",
}, {
	"block comment",
	"MATCH (n) /* block */ RETURN n",
	"MATCH (n) /* block */\nRETURN n",
}, {
	"multi-line block comment",
	"MATCH (n) /* a\n   b */ RETURN n",
	"MATCH (n) /* a\n   b */\nRETURN n",
}, {
	"comment after comma",
	"RETURN a, // first\n b",
	"RETURN a, // first\nb",
}, {
	"several leading comments",
	"// one\n/* two */\nMATCH (n) RETURN n",
	"// one\n/* two */\nMATCH (n)\nRETURN n",
}, {
	"list comprehension",
	"RETURN [x IN range(0,10) WHERE x%2=0|x*2] AS evens",
	"RETURN [x IN range(0, 10) WHERE x % 2 = 0 | x * 2] AS evens",
}, {
	"updating clauses",
	"MATCH (n) SET n:Label, n.x = $value REMOVE n:Old DELETE n",
	"MATCH (n)\nSET n:Label, n.x = $value\nREMOVE n:Old\nDELETE n",
}, {
	"procedure call",
	"CALL db.labels() YIELD label RETURN label",
	"CALL db.labels() YIELD label\nRETURN label",
}, {
	"call subquery",
	"CALL { MATCH (n) RETURN n } RETURN n",
	"CALL {\n  MATCH (n)\n  RETURN n\n}\nRETURN n",
}, {
	"exists pattern",
	"MATCH (a) WHERE EXISTS { (a)-->(:B) WHERE a.x = 1 } RETURN a",
	"MATCH (a)\nWHERE EXISTS { (a)-->(:B) WHERE a.x = 1 }\nRETURN a",
}, {
	"union",
	"MATCH (n) RETURN n UNION ALL MATCH (m) RETURN m",
	"MATCH (n)\nRETURN n\nUNION ALL\nMATCH (m)\nRETURN m",
}, {
	"case",
	"RETURN case when TRUE then 'a' else NULL end AS v",
	"RETURN CASE WHEN true THEN 'a' ELSE null END AS v",
}, {
	"predicates",
	"MATCH (n) WHERE n.name starts with 'A' and not n.age is null RETURN n",
	"MATCH (n)\nWHERE n.name STARTS WITH 'A' AND NOT n.age IS NULL\nRETURN n",
}, {
	"label expressions",
	"MATCH (n:A|B) WHERE n:C RETURN count(distinct n)",
	"MATCH (n:A|B)\nWHERE n:C\nRETURN count(DISTINCT n)",
}, {
	"statements",
	"RETURN 1; RETURN 2",
	"RETURN 1;\nRETURN 2",
}, {
	"properties without labels",
	"MATCH (n {name: 'x'}) RETURN n",
	"MATCH (n{name: 'x'})\nRETURN n",
}, {
	"is label",
	"MATCH (n IS Person) RETURN n",
	"MATCH (n IS Person)\nRETURN n",
}, {
	"return star",
	"MATCH (n) RETURN *",
	"MATCH (n)\nRETURN *",
}, {
	"parenthesized",
	"MATCH (n) WHERE (n.a = 1 OR n.b = 2) AND -n.c < 0 RETURN n",
	"MATCH (n)\nWHERE (n.a = 1 OR n.b = 2) AND -n.c < 0\nRETURN n",
}, {
	"map projection",
	"MATCH (n) RETURN n{.name,.age, .*, total: n.a+1, m} AS v",
	"MATCH (n)\nRETURN n {.name, .age, .*, total: n.a + 1, m} AS v",
}, {
	"pattern predicates",
	"MATCH (n) WHERE (n)-->(:B) and not (n)<-[:R]-(m) RETURN n",
	"MATCH (n)\nWHERE (n)-->(:B) AND NOT (n)<-[:R]-(m)\nRETURN n",
}, {
	"shortest path",
	"MATCH p=shortestPath((a:A)-[*]-(b:B)) RETURN p",
	"MATCH p = shortestPath((a:A)-[*]-(b:B))\nRETURN p",
}, {
	"all shortest paths",
	"MATCH p = allShortestPaths( (a)-[:R*..5]-(b) ) RETURN nodes(p)",
	"MATCH p = allShortestPaths((a)-[:R*..5]-(b))\nRETURN nodes(p)",
}, {
	"foreach",
	"MATCH p = (a)-->(b) foreach (n in nodes(p) | set n.marked = TRUE create (n)-[:SEEN]->(:Log))",
	"MATCH p = (a)-->(b)\nFOREACH (n IN nodes(p) | SET n.marked = true CREATE (n)-[:SEEN]->(:Log))",
}, {
	"load csv",
	"load csv with headers from 'file:///x.csv' as row fieldterminator ';' create (:P {name: row.name})",
	"LOAD CSV WITH HEADERS FROM 'file:///x.csv' AS row FIELDTERMINATOR ';'\nCREATE (:P {name: row.name})",
}, {
	"comment only",
	"// nothing here",
	"// nothing here",
}, {
	"empty",
	"",
	"",
}}

func TestFormat(t *testing.T) {
	for _, tt := range formatTests {
		t.Run(tt.name, func(t *testing.T) {
			got := cypher.Format(mustParse(t, tt.input))
			if got != tt.want {
				t.Errorf("got:\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestFormatIdempotent(t *testing.T) {
	for _, tt := range formatTests {
		t.Run(tt.name, func(t *testing.T) {
			once := cypher.Format(mustParse(t, tt.input))
			twice := cypher.Format(mustParse(t, once))
			if once != twice {
				t.Errorf("second pass changed output:\n%s\n---\n%s", once, twice)
			}
		})
	}
}

func TestFormatKeepsMeaning(t *testing.T) {
	for _, tt := range formatTests {
		t.Run(tt.name, func(t *testing.T) {
			tree := mustParse(t, tt.input)
			formatted := mustParse(t, cypher.Format(tree))
			if a, b := cypher.Canonical(tree), cypher.Canonical(formatted); a != b {
				t.Errorf("canonical forms differ:\n%s\n%s", a, b)
			}
		})
	}
}

func TestFormatKeepsComments(t *testing.T) {
	for _, tt := range formatTests {
		tree := mustParse(t, tt.input)
		out := cypher.Format(tree)
		for _, c := range token.Comments(tree.Tokens.Tokens()) {
			text := strings.TrimSpace(c.Text)
			if n := strings.Count(out, text); n != 1 {
				t.Errorf("%s: comment %q appears %d times in output", tt.name, text, n)
			}
		}
	}
}

func TestMergeActionOrder(t *testing.T) {
	in := "MERGE (n) ON MATCH SET n.a = 1 ON CREATE SET n.b = 2 ON MATCH SET n.c = 3 ON CREATE SET n.d = 4"
	want := "MERGE (n)\n" +
		"  ON CREATE SET n.b = 2\n" +
		"  ON CREATE SET n.d = 4\n" +
		"  ON MATCH SET n.a = 1\n" +
		"  ON MATCH SET n.c = 3"
	if got := cypher.Format(mustParse(t, in)); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestMergeInsideCall(t *testing.T) {
	in := "CALL { MERGE (n) ON MATCH SET n.a = 1 ON CREATE SET n.b = 2 RETURN n } RETURN n"
	want := "CALL {\n" +
		"  MERGE (n)\n" +
		"    ON CREATE SET n.b = 2\n" +
		"    ON MATCH SET n.a = 1\n" +
		"  RETURN n\n" +
		"}\n" +
		"RETURN n"
	if got := cypher.Format(mustParse(t, in)); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestFprintOptions(t *testing.T) {
	tree := mustParse(t, "// x\nMATCH (n) RETURN n // y")
	tests := []struct {
		opts cypher.Options
		want string
	}{
		{0, "// x\nMATCH (n)\nRETURN n // y"},
		{cypher.Standard, "// x\nMATCH (n)\nRETURN n // y\n"},
		{cypher.StripComments | cypher.FinalNewline, "MATCH (n)\nRETURN n\n"},
		{cypher.StripComments, "MATCH (n)\nRETURN n"},
	}
	for _, tt := range tests {
		var b bytes.Buffer
		if err := cypher.Fprint(&b, tree, tt.opts); err != nil {
			t.Fatal(err)
		}
		if got := b.String(); got != tt.want {
			t.Errorf("options %d: got %q, want %q", tt.opts, got, tt.want)
		}
	}
}

func TestFprintEmpty(t *testing.T) {
	var b bytes.Buffer
	if err := cypher.Fprint(&b, mustParse(t, "  \n"), cypher.Standard); err != nil {
		t.Fatal(err)
	}
	if b.Len() != 0 {
		t.Errorf("got %q, want no output", b.String())
	}
}
