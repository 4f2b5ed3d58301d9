package cypher

import "github.com/tomasnyberg/cypher-language-support/token"

// Expression parsing, from the loosest binding level to the tightest:
//
//	OR, XOR, AND, NOT, comparison, predicates (STARTS WITH, IN, IS NULL, ...),
//	+ -, * / %, ^, unary sign, postfix (.key, [i], :Label), atoms.

func (p *parser) parseExpr() NodeID {
	return p.parseBinary(0)
}

var binaryLevels = [...][]token.Type{
	{token.Or},
	{token.Xor},
	{token.And},
	nil, // NOT
	{token.Eq, token.Neq, token.Lt, token.Gt, token.Leq, token.Geq, token.RegexMatch},
	nil, // predicates
	{token.Add, token.Sub},
	{token.Mul, token.Quo, token.Rem},
	{token.Pow},
}

func (p *parser) parseBinary(level int) NodeID {
	switch {
	case level == len(binaryLevels):
		return p.parseUnary()
	case level == 3:
		if not, ok := p.got(token.Not); ok {
			return p.node(Unary, not, p.parseBinary(level))
		}
		return p.parseBinary(level + 1)
	case level == 5:
		return p.parsePredicate(p.parseBinary(level + 1))
	}

	x := p.parseBinary(level + 1)
	for isOneOf(p.tok.Type, binaryLevels[level]) {
		op := p.term()
		x = p.node(Binary, x, op, p.parseBinary(level+1))
	}
	return x
}

func isOneOf(typ token.Type, types []token.Type) bool {
	for _, t := range types {
		if t == typ {
			return true
		}
	}
	return false
}

func (p *parser) parsePredicate(x NodeID) NodeID {
	operand := func() NodeID { return p.parseBinary(6) }
	for {
		switch p.tok.Type {
		case token.Starts, token.Ends:
			kw := p.term()
			x = p.node(Predicate, x, kw, p.expect(token.With), operand())
		case token.Contains, token.In:
			kw := p.term()
			x = p.node(Predicate, x, kw, operand())
		case token.Is:
			kids := []NodeID{x, p.term()}
			if not, ok := p.got(token.Not); ok {
				kids = append(kids, not)
			}
			x = p.node(Predicate, append(kids, p.expect(token.Null))...)
		default:
			return x
		}
	}
}

func (p *parser) parseUnary() NodeID {
	switch p.tok.Type {
	case token.Sub:
		if typ := p.peek(1); typ == token.Int || typ == token.Float {
			return p.node(NumberLiteral, p.term(), p.term())
		}
		fallthrough
	case token.Add:
		sign := p.term()
		return p.node(Unary, sign, p.parseUnary())
	}
	return p.parsePostfix(p.parseAtom())
}

func (p *parser) parsePostfix(x NodeID) NodeID {
	for {
		switch p.tok.Type {
		case token.Dot:
			dot := p.term()
			x = p.node(Property, x, dot, p.parseSymbolicName())
		case token.Lbrack:
			kids := []NodeID{x, p.term()}
			if p.tok.Type != token.DotDot {
				kids = append(kids, p.parseExpr())
			}
			if dd, ok := p.got(token.DotDot); ok {
				kids = append(kids, dd)
				if p.tok.Type != token.Rbrack {
					kids = append(kids, p.parseExpr())
				}
			}
			x = p.node(Index, append(kids, p.expect(token.Rbrack))...)
		case token.Colon:
			x = p.node(LabelCheck, x, p.parseLabelExpression())
		case token.Lbrace:
			if p.kind(x) != Variable {
				return x
			}
			x = p.parseMapProjection(x)
		default:
			return x
		}
	}
}

func (p *parser) parseAtom() NodeID {
	switch typ := p.tok.Type; typ {
	case token.Int, token.Float:
		return p.node(NumberLiteral, p.term())
	case token.String:
		return p.node(StringLiteral, p.term())
	case token.True, token.False:
		return p.node(BooleanLiteral, p.term())
	case token.Null, token.Nan, token.Inf, token.Infinity:
		return p.node(KeywordLiteral, p.term())
	case token.Param:
		return p.node(Parameter, p.term())
	case token.Lbrack:
		if isName(p.peek(1)) && p.peek(2) == token.In {
			return p.parseListComprehension()
		}
		return p.parseList()
	case token.Lbrace:
		return p.parseMap()
	case token.Lparen:
		if p.patternAhead() {
			return p.parsePathPattern()
		}
		return p.node(Parenthesized, p.term(), p.parseExpr(), p.expect(token.Rparen))
	case token.Case:
		return p.parseCase()
	case token.Exists, token.Count, token.Collect:
		if p.peek(1) == token.Lbrace {
			return p.parseSubquery()
		}
		if typ == token.Count && p.peek(1) == token.Lparen && p.peek(2) == token.Mul {
			return p.node(CountStar, p.term(), p.term(), p.term(), p.expect(token.Rparen))
		}
	}

	if !isName(p.tok.Type) {
		p.errorf("unexpected %v", p.tok)
		return p.term()
	}
	n := 1
	for p.peek(n) == token.Dot && isName(p.peek(n+1)) {
		n += 2
	}
	if p.peek(n) == token.Lparen {
		return p.parseFunctionCall()
	}
	return p.parseVariable()
}

func (p *parser) parseFunctionCall() NodeID {
	kids := []NodeID{p.parseSymbolicName()}
	for p.tok.Type == token.Dot {
		kids = append(kids, p.term(), p.parseSymbolicName())
	}
	return p.node(FunctionCall, p.parseArgs(kids, true)...)
}

func (p *parser) parseSubquery() NodeID {
	kids := []NodeID{p.term(), p.expect(token.Lbrace)}
	if isClauseStart(p.tok.Type) {
		kids = append(kids, p.parseQuery())
	} else {
		kids = append(kids, p.parsePattern())
		if p.tok.Type == token.Where {
			kids = append(kids, p.parseWhere())
		}
	}
	return p.node(Subquery, append(kids, p.expect(token.Rbrace))...)
}

func (p *parser) parseCase() NodeID {
	kids := []NodeID{p.term()}
	if p.tok.Type != token.When {
		kids = append(kids, p.parseExpr())
	}
	for p.tok.Type == token.When {
		when := p.term()
		cond := p.parseExpr()
		kids = append(kids, p.node(CaseAlternative, when, cond, p.expect(token.Then), p.parseExpr()))
	}
	if len(kids) < 2 || p.kind(kids[len(kids)-1]) != CaseAlternative {
		p.errorf("expecting WHEN, found %v", p.tok)
	}
	if els, ok := p.got(token.Else); ok {
		kids = append(kids, els, p.parseExpr())
	}
	return p.node(Case, append(kids, p.expect(token.End))...)
}

func (p *parser) kind(id NodeID) Kind { return p.nodes[id].Kind }

func (p *parser) parseList() NodeID {
	kids := []NodeID{p.term()}
	if p.tok.Type != token.Rbrack {
		kids = append(kids, p.parseExpr())
		for p.tok.Type == token.Comma {
			kids = append(kids, p.term(), p.parseExpr())
		}
	}
	return p.node(ListLiteral, append(kids, p.expect(token.Rbrack))...)
}

func (p *parser) parseListComprehension() NodeID {
	p.noPipe++
	defer func() { p.noPipe-- }()

	kids := []NodeID{p.term(), p.parseVariable(), p.expect(token.In), p.parseExpr()}
	if where, ok := p.got(token.Where); ok {
		kids = append(kids, where, p.parseExpr())
	}
	if pipe, ok := p.got(token.Pipe); ok {
		kids = append(kids, pipe, p.parseExpr())
	}
	return p.node(ListComprehension, append(kids, p.expect(token.Rbrack))...)
}

func (p *parser) parseMap() NodeID {
	kids := []NodeID{p.expect(token.Lbrace)}
	if p.tok.Type != token.Rbrace {
		kids = append(kids, p.parseMapPair())
		for p.tok.Type == token.Comma {
			kids = append(kids, p.term(), p.parseMapPair())
		}
	}
	return p.node(MapLiteral, append(kids, p.expect(token.Rbrace))...)
}

// parseMapProjection parses n {.name, .*, key: expr, v}.
func (p *parser) parseMapProjection(x NodeID) NodeID {
	kids := []NodeID{x, p.term()}
	if p.tok.Type != token.Rbrace {
		kids = append(kids, p.parseMapProjectionItem())
		for p.tok.Type == token.Comma {
			kids = append(kids, p.term(), p.parseMapProjectionItem())
		}
	}
	return p.node(MapProjection, append(kids, p.expect(token.Rbrace))...)
}

func (p *parser) parseMapProjectionItem() NodeID {
	switch {
	case p.tok.Type == token.Dot:
		dot := p.term()
		if star, ok := p.got(token.Mul); ok {
			return p.node(MapProjectionItem, dot, star)
		}
		return p.node(MapProjectionItem, dot, p.parseSymbolicName())
	case isName(p.tok.Type) && p.peek(1) == token.Colon:
		return p.parseMapPair()
	}
	return p.parseVariable()
}

func (p *parser) parseMapPair() NodeID {
	key := p.parseSymbolicName()
	colon := p.expect(token.Colon)
	return p.node(MapPair, key, colon, p.parseExpr())
}
