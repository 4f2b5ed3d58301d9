package cypher

import (
	"cmp"
	"slices"
	"strings"

	"github.com/tomasnyberg/cypher-language-support/token"
)

// NodeID indexes Tree.Nodes.
type NodeID int32

// NoNode is the parent of the root.
const NoNode NodeID = -1

//go:generate go tool stringer -type Kind

// Kind is the grammar production a node was built from.
type Kind uint8

const (
	Terminal Kind = iota
	Statements
	Query
	SingleQuery
	Union

	// Clauses.
	Match
	Create
	Merge
	With
	Return
	Unwind
	Set
	Remove
	Delete
	CallProcedure
	CallSubquery
	Foreach
	LoadCSV

	// Clause parts.
	Where
	MergeAction
	ReturnItems
	ReturnItem
	OrderBy
	SortItem
	Skip
	Limit
	SetItem
	RemoveItem
	YieldItems
	YieldItem

	// Patterns.
	Pattern
	PathPattern
	NodePattern
	RelationshipPattern
	LabelExpression
	Quantifier
	ShortestPath

	// Expressions.
	Binary
	Unary
	Predicate
	Property
	Index
	LabelCheck
	Parenthesized
	FunctionCall
	CountStar
	Subquery
	Case
	CaseAlternative
	ListLiteral
	ListComprehension
	MapLiteral
	MapPair
	MapProjection
	MapProjectionItem
	NumberLiteral
	StringLiteral
	BooleanLiteral
	KeywordLiteral
	Parameter
	Variable
	SymbolicName
)

// isClause reports whether k is a top-level clause of a single query.
func (k Kind) isClause() bool { return Match <= k && k <= LoadCSV }

// Node is one element of the syntax tree. Terminal nodes refer to a
// visible token of the tree's stream; all other nodes only have children.
type Node struct {
	Kind     Kind
	Parent   NodeID
	Token    int // stream index, Terminal only
	Children []NodeID
}

// Tree is a parsed query. Nodes are stored in an arena and refer to
// each other by NodeID.
type Tree struct {
	Tokens *token.Stream
	Nodes  []Node
	Root   NodeID
}

func (t *Tree) Node(id NodeID) *Node { return &t.Nodes[id] }

func (t *Tree) Kind(id NodeID) Kind { return t.Nodes[id].Kind }

func (t *Tree) Parent(id NodeID) NodeID { return t.Nodes[id].Parent }

func (t *Tree) Children(id NodeID) []NodeID { return t.Nodes[id].Children }

// Token returns the token of a terminal node.
func (t *Tree) Token(id NodeID) token.Token {
	n := &t.Nodes[id]
	if n.Kind != Terminal {
		panic("cypher: Token called on " + n.Kind.String())
	}
	return t.Tokens.At(n.Token)
}

// Child returns the first child of id with the given kind, or NoNode.
func (t *Tree) Child(id NodeID, kind Kind) NodeID {
	for _, c := range t.Nodes[id].Children {
		if t.Nodes[c].Kind == kind {
			return c
		}
	}
	return NoNode
}

// Has reports whether id has a terminal child of token type typ.
func (t *Tree) Has(id NodeID, typ token.Type) bool {
	for _, c := range t.Nodes[id].Children {
		if t.Nodes[c].Kind == Terminal && t.Token(c).Type == typ {
			return true
		}
	}
	return false
}

// Text returns the visible tokens below id joined by single spaces.
func (t *Tree) Text(id NodeID) string {
	var b strings.Builder
	t.walkTerminals(id, func(tok token.Token) {
		if tok.Type == token.EOF {
			return
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.Text)
	})
	return b.String()
}

func (t *Tree) walkTerminals(id NodeID, fn func(token.Token)) {
	n := &t.Nodes[id]
	if n.Kind == Terminal {
		fn(t.Tokens.At(n.Token))
		return
	}
	for _, c := range n.Children {
		t.walkTerminals(c, fn)
	}
}

// isSymbolicName reports whether the terminal id is used as a name
// (variable, label, property key, ...) rather than as syntax.
func (t *Tree) isSymbolicName(id NodeID) bool {
	p := t.Nodes[id].Parent
	return p != NoNode && t.Nodes[p].Kind == SymbolicName
}

// mergeOrder returns the children of a MERGE clause with all ON CREATE
// actions before all ON MATCH actions. Actions of the same kind keep
// their source order.
func (t *Tree) mergeOrder(id NodeID) []NodeID {
	kids := slices.Clone(t.Nodes[id].Children)
	i := slices.IndexFunc(kids, func(c NodeID) bool { return t.Kind(c) == MergeAction })
	if i < 0 {
		return kids
	}
	priority := func(action NodeID) int {
		if t.Has(action, token.Create) {
			return 0
		}
		return 1
	}
	slices.SortStableFunc(kids[i:], func(a, b NodeID) int {
		return cmp.Compare(priority(a), priority(b))
	})
	return kids
}
