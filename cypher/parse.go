package cypher

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tomasnyberg/cypher-language-support/token"
)

// SyntaxError records an error and the position it occurred on.
type SyntaxError struct {
	Line, Column int
	Err          error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line:%d:%d: %v", e.Line, e.Column, e.Err)
}

type parser struct {
	stream *token.Stream
	vis    []int // stream indexes of visible tokens
	pos    int   // current position in vis
	nodes  []Node

	err error
	tok token.Token

	// noPipe disables | in label expressions while parsing
	// a list comprehension, where it separates the projection.
	noPipe int
}

// Parse parses one or more Cypher statements. If an error occurs while
// parsing (except io errors), the returned error will be of type *SyntaxError.
func Parse(r io.Reader) (*Tree, error) {
	stream, err := token.Scan(r)
	var se *token.ScanError
	if errors.As(err, &se) {
		return nil, &SyntaxError{Line: se.Pos.Line, Column: se.Pos.Column, Err: se.Err}
	} else if err != nil {
		return nil, err
	}
	return ParseStream(stream)
}

// ParseStream parses an already scanned token stream.
func ParseStream(stream *token.Stream) (*Tree, error) {
	p := &parser{stream: stream, vis: stream.Visible()}
	p.tok = stream.At(p.vis[0])
	if p.tok.Type == token.Illegal {
		p.errorf("illegal token %q", p.tok.Text)
	}
	root := p.parseStatements()
	if p.err != nil {
		return nil, p.err
	}
	return &Tree{Tokens: stream, Nodes: p.nodes, Root: root}, nil
}

func (p *parser) next() {
	if p.tok.Type == token.EOF {
		return
	}
	p.pos++
	p.tok = p.stream.At(p.vis[p.pos])
	if p.tok.Type == token.Illegal {
		p.errorf("illegal token %q", p.tok.Text)
	}
}

// peek returns the type of the visible token n positions ahead.
func (p *parser) peek(n int) token.Type {
	if p.tok.Type == token.EOF || p.pos+n >= len(p.vis) {
		return token.EOF
	}
	return p.stream.At(p.vis[p.pos+n]).Type
}

func (p *parser) errorf(format string, args ...interface{}) {
	if p.err == nil {
		se := &SyntaxError{Err: fmt.Errorf(format, args...)}
		se.Line, se.Column = p.tok.Pos.Line, p.tok.Pos.Column
		p.err = se
	}
	p.tok.Type = token.EOF
}

func (p *parser) node(kind Kind, children ...NodeID) NodeID {
	id := NodeID(len(p.nodes))
	p.nodes = append(p.nodes, Node{Kind: kind, Parent: NoNode, Token: -1, Children: children})
	for _, c := range children {
		p.nodes[c].Parent = id
	}
	return id
}

// term turns the current token into a terminal node and advances.
func (p *parser) term() NodeID {
	id := NodeID(len(p.nodes))
	p.nodes = append(p.nodes, Node{Kind: Terminal, Parent: NoNode, Token: p.vis[p.pos]})
	p.next()
	return id
}

func (p *parser) got(typ token.Type) (NodeID, bool) {
	if p.tok.Type == typ {
		return p.term(), true
	}
	return NoNode, false
}

func (p *parser) expect(typ token.Type) NodeID {
	if p.tok.Type != typ {
		p.errorf("expecting %v, found %v", typ, p.tok)
	}
	return p.term()
}

func isName(typ token.Type) bool {
	return typ == token.Ident || typ == token.EscapedIdent || typ.IsKeyword()
}

func isClauseStart(typ token.Type) bool {
	switch typ {
	case token.Match, token.Optional, token.Create, token.Merge,
		token.With, token.Return, token.Unwind, token.Set,
		token.Remove, token.Delete, token.Detach, token.Call,
		token.Foreach, token.Load:
		return true
	}
	return false
}

func (p *parser) parseStatements() NodeID {
	var kids []NodeID
	for p.tok.Type != token.EOF {
		kids = append(kids, p.parseQuery())
		semi, ok := p.got(token.Semicolon)
		if !ok {
			break
		}
		kids = append(kids, semi)
	}
	kids = append(kids, p.expect(token.EOF))
	return p.node(Statements, kids...)
}

func (p *parser) parseQuery() NodeID {
	kids := []NodeID{p.parseSingleQuery()}
	for p.tok.Type == token.Union {
		u := []NodeID{p.term()}
		if all, ok := p.got(token.All); ok {
			u = append(u, all)
		}
		kids = append(kids, p.node(Union, u...), p.parseSingleQuery())
	}
	return p.node(Query, kids...)
}

func (p *parser) parseSingleQuery() NodeID {
	var kids []NodeID
	for isClauseStart(p.tok.Type) {
		kids = append(kids, p.parseClause())
	}
	if len(kids) == 0 {
		p.errorf("expecting clause, found %v", p.tok)
	}
	return p.node(SingleQuery, kids...)
}

func (p *parser) parseClause() NodeID {
	var kids []NodeID
	switch p.tok.Type {
	case token.Optional, token.Match:
		if opt, ok := p.got(token.Optional); ok {
			kids = append(kids, opt)
		}
		kids = append(kids, p.expect(token.Match), p.parsePattern())
		if p.tok.Type == token.Where {
			kids = append(kids, p.parseWhere())
		}
		return p.node(Match, kids...)
	case token.Create:
		return p.node(Create, p.term(), p.parsePattern())
	case token.Merge:
		kids = append(kids, p.term(), p.parsePathPattern())
		for p.tok.Type == token.On {
			on := p.term()
			var what NodeID
			if p.tok.Type == token.Create || p.tok.Type == token.Match {
				what = p.term()
			} else {
				what = p.expect(token.Create)
			}
			kids = append(kids, p.node(MergeAction, on, what, p.parseSet()))
		}
		return p.node(Merge, kids...)
	case token.With:
		kids = p.parseReturnBody(append(kids, p.term()))
		if p.tok.Type == token.Where {
			kids = append(kids, p.parseWhere())
		}
		return p.node(With, kids...)
	case token.Return:
		return p.node(Return, p.parseReturnBody(append(kids, p.term()))...)
	case token.Unwind:
		kids = append(kids, p.term(), p.parseExpr(), p.expect(token.As), p.parseVariable())
		return p.node(Unwind, kids...)
	case token.Set:
		return p.parseSet()
	case token.Remove:
		kids = append(kids, p.term(), p.parseRemoveItem())
		for p.tok.Type == token.Comma {
			kids = append(kids, p.term(), p.parseRemoveItem())
		}
		return p.node(Remove, kids...)
	case token.Detach, token.Delete:
		if detach, ok := p.got(token.Detach); ok {
			kids = append(kids, detach)
		}
		kids = append(kids, p.expect(token.Delete), p.parseExpr())
		for p.tok.Type == token.Comma {
			kids = append(kids, p.term(), p.parseExpr())
		}
		return p.node(Delete, kids...)
	case token.Call:
		if p.peek(1) == token.Lbrace {
			kids = append(kids, p.term(), p.term(), p.parseQuery(), p.expect(token.Rbrace))
			return p.node(CallSubquery, kids...)
		}
		return p.parseCallProcedure()
	case token.Foreach:
		return p.parseForeach()
	case token.Load:
		kids = append(kids, p.term(), p.expect(token.Csv))
		if p.tok.Type == token.With && p.peek(1) == token.Headers {
			kids = append(kids, p.term(), p.term())
		}
		kids = append(kids, p.expect(token.From), p.parseExpr(), p.expect(token.As), p.parseVariable())
		if ft, ok := p.got(token.Fieldterminator); ok {
			kids = append(kids, ft, p.node(StringLiteral, p.expect(token.String)))
		}
		return p.node(LoadCSV, kids...)
	}
	p.errorf("expecting clause, found %v", p.tok)
	return p.term()
}

// parseForeach parses FOREACH (x IN list | clause ...).
func (p *parser) parseForeach() NodeID {
	kids := []NodeID{p.term(), p.expect(token.Lparen), p.parseVariable(), p.expect(token.In)}
	p.noPipe++
	kids = append(kids, p.parseExpr())
	p.noPipe--
	kids = append(kids, p.expect(token.Pipe))
	if !isClauseStart(p.tok.Type) {
		p.errorf("expecting clause, found %v", p.tok)
	}
	for isClauseStart(p.tok.Type) {
		kids = append(kids, p.parseClause())
	}
	return p.node(Foreach, append(kids, p.expect(token.Rparen))...)
}

func (p *parser) parseWhere() NodeID {
	return p.node(Where, p.expect(token.Where), p.parseExpr())
}

func (p *parser) parseSet() NodeID {
	kids := []NodeID{p.expect(token.Set), p.parseSetItem()}
	for p.tok.Type == token.Comma {
		kids = append(kids, p.term(), p.parseSetItem())
	}
	return p.node(Set, kids...)
}

func (p *parser) parseSetItem() NodeID {
	target := p.parsePropertyChain()
	switch p.tok.Type {
	case token.Colon, token.Is:
		return p.node(SetItem, target, p.parseLabelExpression())
	case token.Eq, token.AddAssign:
		return p.node(SetItem, target, p.term(), p.parseExpr())
	}
	p.errorf("expecting =, += or label, found %v", p.tok)
	return p.node(SetItem, target)
}

func (p *parser) parseRemoveItem() NodeID {
	target := p.parsePropertyChain()
	if p.tok.Type == token.Colon || p.tok.Type == token.Is {
		return p.node(RemoveItem, target, p.parseLabelExpression())
	}
	return p.node(RemoveItem, target)
}

// parsePropertyChain parses a variable followed by any number of
// property lookups, such as n.address.city.
func (p *parser) parsePropertyChain() NodeID {
	x := p.parseVariable()
	for p.tok.Type == token.Dot {
		x = p.node(Property, x, p.term(), p.parseSymbolicName())
	}
	return x
}

func (p *parser) parseReturnBody(kids []NodeID) []NodeID {
	if distinct, ok := p.got(token.Distinct); ok {
		kids = append(kids, distinct)
	}

	var items []NodeID
	if star, ok := p.got(token.Mul); ok {
		items = append(items, star)
	} else {
		items = append(items, p.parseReturnItem())
	}
	for p.tok.Type == token.Comma {
		items = append(items, p.term(), p.parseReturnItem())
	}
	kids = append(kids, p.node(ReturnItems, items...))

	if p.tok.Type == token.Order {
		order := []NodeID{p.term(), p.expect(token.By), p.parseSortItem()}
		for p.tok.Type == token.Comma {
			order = append(order, p.term(), p.parseSortItem())
		}
		kids = append(kids, p.node(OrderBy, order...))
	}
	if p.tok.Type == token.Skip || p.tok.Type == token.Offset {
		kids = append(kids, p.node(Skip, p.term(), p.parseExpr()))
	}
	if p.tok.Type == token.Limit {
		kids = append(kids, p.node(Limit, p.term(), p.parseExpr()))
	}
	return kids
}

func (p *parser) parseReturnItem() NodeID {
	x := p.parseExpr()
	if as, ok := p.got(token.As); ok {
		return p.node(ReturnItem, x, as, p.parseVariable())
	}
	return p.node(ReturnItem, x)
}

func (p *parser) parseSortItem() NodeID {
	x := p.parseExpr()
	switch p.tok.Type {
	case token.Asc, token.Ascending, token.Desc, token.Descending:
		return p.node(SortItem, x, p.term())
	}
	return p.node(SortItem, x)
}

func (p *parser) parseCallProcedure() NodeID {
	kids := []NodeID{p.term(), p.parseSymbolicName()}
	for p.tok.Type == token.Dot {
		kids = append(kids, p.term(), p.parseSymbolicName())
	}
	if p.tok.Type == token.Lparen {
		kids = p.parseArgs(kids, false)
	}
	if p.tok.Type == token.Yield {
		yield := []NodeID{p.term()}
		if star, ok := p.got(token.Mul); ok {
			yield = append(yield, star)
		} else {
			yield = append(yield, p.parseYieldItem())
			for p.tok.Type == token.Comma {
				yield = append(yield, p.term(), p.parseYieldItem())
			}
		}
		kids = append(kids, p.node(YieldItems, yield...))
		if p.tok.Type == token.Where {
			kids = append(kids, p.parseWhere())
		}
	}
	return p.node(CallProcedure, kids...)
}

func (p *parser) parseYieldItem() NodeID {
	name := p.parseSymbolicName()
	if as, ok := p.got(token.As); ok {
		return p.node(YieldItem, name, as, p.parseVariable())
	}
	return p.node(YieldItem, name)
}

// parseArgs appends a parenthesized argument list to kids.
func (p *parser) parseArgs(kids []NodeID, distinct bool) []NodeID {
	kids = append(kids, p.expect(token.Lparen))
	if distinct {
		if d, ok := p.got(token.Distinct); ok {
			kids = append(kids, d)
		}
	}
	if p.tok.Type != token.Rparen {
		kids = append(kids, p.parseExpr())
		for p.tok.Type == token.Comma {
			kids = append(kids, p.term(), p.parseExpr())
		}
	}
	return append(kids, p.expect(token.Rparen))
}

func (p *parser) parseSymbolicName() NodeID {
	if !isName(p.tok.Type) {
		p.errorf("expecting name, found %v", p.tok)
	}
	return p.node(SymbolicName, p.term())
}

func (p *parser) parseVariable() NodeID {
	return p.node(Variable, p.parseSymbolicName())
}

func (p *parser) parsePattern() NodeID {
	kids := []NodeID{p.parsePathPattern()}
	for p.tok.Type == token.Comma {
		kids = append(kids, p.term(), p.parsePathPattern())
	}
	return p.node(Pattern, kids...)
}

func (p *parser) parsePathPattern() NodeID {
	var kids []NodeID
	if isName(p.tok.Type) && p.peek(1) == token.Eq {
		kids = append(kids, p.parseVariable(), p.term())
	}
	if p.tok.Type == token.Ident && p.peek(1) == token.Lparen && isShortestPath(p.tok.Text) {
		name := p.parseSymbolicName()
		lparen := p.term()
		inner := p.node(PathPattern, p.parseElements(nil)...)
		kids = append(kids, p.node(ShortestPath, name, lparen, inner, p.expect(token.Rparen)))
		return p.node(PathPattern, kids...)
	}
	return p.node(PathPattern, p.parseElements(kids)...)
}

func isShortestPath(name string) bool {
	return strings.EqualFold(name, "shortestPath") || strings.EqualFold(name, "allShortestPaths")
}

// parseElements appends a chain of node patterns joined by
// relationship patterns to kids.
func (p *parser) parseElements(kids []NodeID) []NodeID {
	kids = append(kids, p.parseNodePattern())
	for p.tok.Type == token.Sub || p.tok.Type == token.Lt && p.peek(1) == token.Sub {
		kids = append(kids, p.parseRelationshipPattern(), p.parseNodePattern())
	}
	return kids
}

// patternAhead reports whether the "(" at the current position starts
// a node pattern followed by a relationship, as in WHERE (a)-->(b).
func (p *parser) patternAhead() bool {
	switch typ := p.peek(1); {
	case typ == token.Rparen, typ == token.Colon:
	case isName(typ):
		switch p.peek(2) {
		case token.Rparen, token.Colon, token.Lbrace, token.Param, token.Is, token.Where:
		default:
			return false
		}
	default:
		return false
	}

	i, depth := 0, 0
	for ; ; i++ {
		switch p.peek(i) {
		case token.Lparen, token.Lbrack, token.Lbrace:
			depth++
		case token.Rparen, token.Rbrack, token.Rbrace:
			depth--
		case token.EOF:
			return false
		}
		if depth == 0 {
			break
		}
	}
	i++

	if p.peek(i) == token.Lt {
		i++
	}
	if p.peek(i) != token.Sub {
		return false
	}
	i++
	switch p.peek(i) {
	case token.Lbrack:
		return true
	case token.Sub:
		i++
		if p.peek(i) == token.Gt {
			i++
		}
		return p.peek(i) == token.Lparen
	}
	return false
}

func (p *parser) parseNodePattern() NodeID {
	kids := []NodeID{p.expect(token.Lparen)}
	kids = p.parsePatternFiller(kids, false)
	return p.node(NodePattern, append(kids, p.expect(token.Rparen))...)
}

func (p *parser) parseRelationshipPattern() NodeID {
	var kids []NodeID
	if lt, ok := p.got(token.Lt); ok {
		kids = append(kids, lt)
	}
	kids = append(kids, p.expect(token.Sub))
	if lbrack, ok := p.got(token.Lbrack); ok {
		kids = p.parsePatternFiller(append(kids, lbrack), true)
		kids = append(kids, p.expect(token.Rbrack))
	}
	kids = append(kids, p.expect(token.Sub))
	if gt, ok := p.got(token.Gt); ok {
		kids = append(kids, gt)
	}
	return p.node(RelationshipPattern, kids...)
}

// parsePatternFiller parses what is between the parentheses of a node
// or the brackets of a relationship: variable, labels, quantifier,
// properties and an inline WHERE, each optional, in this order.
func (p *parser) parsePatternFiller(kids []NodeID, rel bool) []NodeID {
	if isName(p.tok.Type) && p.tok.Type != token.Where {
		kids = append(kids, p.parseVariable())
	}
	if p.tok.Type == token.Colon || p.tok.Type == token.Is {
		kids = append(kids, p.parseLabelExpression())
	}
	if rel && p.tok.Type == token.Mul {
		kids = append(kids, p.parseQuantifier())
	}
	switch p.tok.Type {
	case token.Lbrace:
		kids = append(kids, p.parseMap())
	case token.Param:
		kids = append(kids, p.node(Parameter, p.term()))
	}
	if where, ok := p.got(token.Where); ok {
		kids = append(kids, where, p.parseExpr())
	}
	return kids
}

func (p *parser) parseQuantifier() NodeID {
	kids := []NodeID{p.expect(token.Mul)}
	if n, ok := p.got(token.Int); ok {
		kids = append(kids, n)
	}
	if dd, ok := p.got(token.DotDot); ok {
		kids = append(kids, dd)
		if n, ok := p.got(token.Int); ok {
			kids = append(kids, n)
		}
	}
	return p.node(Quantifier, kids...)
}

func (p *parser) parseLabelExpression() NodeID {
	var kids []NodeID
	if is, ok := p.got(token.Is); ok {
		kids = append(kids, is)
	} else {
		kids = append(kids, p.expect(token.Colon))
	}
	kids = p.parseLabelTerm(kids)
	return p.node(LabelExpression, kids...)
}

func (p *parser) parseLabelTerm(kids []NodeID) []NodeID {
	kids = p.parseLabelFactor(kids)
	for {
		switch p.tok.Type {
		case token.Pipe:
			if p.noPipe > 0 {
				return kids
			}
		case token.Amp, token.Colon:
		default:
			return kids
		}
		kids = p.parseLabelFactor(append(kids, p.term()))
	}
}

func (p *parser) parseLabelFactor(kids []NodeID) []NodeID {
	switch p.tok.Type {
	case token.Bang:
		return p.parseLabelFactor(append(kids, p.term()))
	case token.Lparen:
		kids = p.parseLabelTerm(append(kids, p.term()))
		return append(kids, p.expect(token.Rparen))
	case token.Rem:
		return append(kids, p.term())
	}
	return append(kids, p.parseSymbolicName())
}
