package cypher

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/tomasnyberg/cypher-language-support/token"
)

type Options uint8

const (
	// StripComments drops all comments from the output.
	StripComments Options = 1 << iota

	// FinalNewline makes Fprint terminate non-empty output with a newline.
	FinalNewline

	// Standard is the default, “standard” formatting style.
	Standard = FinalNewline
)

// Format returns the formatted text of t.
//
// Keywords are upper-cased, binary operators and commas are
// surrounded by single spaces, every clause starts on a new line and
// comments are kept next to the token they followed in the source.
func Format(t *Tree) string {
	return format(t, 0)
}

// Fprint pretty-prints t to w.
func Fprint(w io.Writer, t *Tree, options Options) error {
	s := format(t, options)
	if options&FinalNewline > 0 && s != "" {
		s += "\n"
	}
	buf := bufio.NewWriter(w)
	buf.WriteString(s)
	return buf.Flush()
}

func format(t *Tree, options Options) string {
	p := &printer{tree: t, config: options}
	p.print(t.Root)

	var b strings.Builder
	for _, frag := range p.frags {
		switch frag := frag.(type) {
		case string:
			b.WriteString(frag)
		case whitespace:
			b.WriteByte(byte(frag))
		case indentation:
			for i := 0; i < int(frag); i++ {
				b.WriteString("  ")
			}
		}
	}
	return strings.TrimSpace(b.String())
}

type indentation int

type whitespace byte

const (
	newline whitespace = '\n'
	space   whitespace = ' '
)

type printer struct {
	tree   *Tree
	config Options

	frags   []any
	indent  indentation
	started bool // first token emitted
}

func (p *printer) print(args ...any) {
	for _, arg := range args {
		switch arg := arg.(type) {
		default:
			panic(fmt.Sprintf("cypher: unsupported type %T", arg))
		case NodeID:
			p.printNode(arg)
		case string:
			p.frags = append(p.frags, arg)
		case whitespace:
			p.frags = append(p.frags, arg)
		case indentation:
			if arg > 0 {
				p.frags = append(p.frags, arg)
			}
		}
	}
}

func (p *printer) last() any {
	if len(p.frags) == 0 {
		return nil
	}
	return p.frags[len(p.frags)-1]
}

// blank reports whether the output is empty or ends in whitespace.
func (p *printer) blank() bool {
	switch p.last().(type) {
	case nil, whitespace, indentation:
		return true
	}
	return false
}

// opens reports whether the output ends in an opening delimiter.
func (p *printer) opens() bool {
	s, ok := p.last().(string)
	return ok && (s == "(" || s == "[" || s == "{")
}

func (p *printer) removeLast(ws whitespace) {
	if p.last() == ws {
		p.frags = p.frags[:len(p.frags)-1]
	}
}

func (p *printer) space() {
	if !p.blank() {
		p.print(space)
	}
}

// breakLine ends the current line, if there is one.
func (p *printer) breakLine() {
	p.removeLast(space)
	if len(p.frags) == 0 || p.last() == newline {
		return
	}
	p.print(newline)
}

type emitMode uint8

const (
	spaced emitMode = iota // keyword casing and operator spacing
	raw                    // text as written, no spacing
)

func (p *printer) terminal(id NodeID, mode emitMode) {
	p.emit(id, mode, "")
}

// emit prints the terminal id. If text is not empty, it replaces the
// token's text.
func (p *printer) emit(id NodeID, mode emitMode, text string) {
	tok := p.tree.Token(id)
	if !p.started {
		p.started = true
		p.commentsBefore(tok)
	}
	if tok.Type == token.EOF {
		return
	}
	if p.last() == newline {
		p.print(p.indent)
	}

	spacing := mode == spaced
	if spacing && closes(tok.Type) {
		p.removeLast(space)
	}
	if spacing && !p.blank() && !p.opens() && p.tree.wantsSpaceBefore(id) {
		p.print(space)
	}
	switch {
	case text != "":
	case spacing && p.tree.wantsUpperCase(id):
		text = strings.ToUpper(tok.Text)
	default:
		text = tok.Text
	}
	p.print(text)
	if spacing && p.tree.wantsSpaceAfter(id) {
		p.print(space)
	}
	p.commentsAfter(tok)
}

func closes(typ token.Type) bool {
	switch typ {
	case token.Comma, token.Semicolon, token.Rparen, token.Rbrack, token.Rbrace:
		return true
	}
	return false
}

// printRaw prints all terminals below id as written.
func (p *printer) printRaw(id NodeID) {
	if p.tree.Kind(id) == Terminal {
		p.terminal(id, raw)
		return
	}
	for _, c := range p.tree.Children(id) {
		p.printRaw(c)
	}
}

func (p *printer) printChildren(id NodeID) {
	for _, c := range p.tree.Children(id) {
		p.print(c)
	}
}

func (p *printer) printNode(id NodeID) {
	t := p.tree
	kids := t.Children(id)
	switch t.Kind(id) {
	default:
		p.printChildren(id)
	case Terminal:
		p.terminal(id, spaced)
	case SingleQuery:
		for _, c := range kids {
			p.breakLine()
			p.print(c)
		}
	case Union:
		p.breakLine()
		p.printChildren(id)
		p.breakLine()
	case Where:
		p.breakLine()
		p.printChildren(id)
	case Merge:
		for _, c := range t.mergeOrder(id) {
			p.print(c)
		}
	case MergeAction:
		p.breakLine()
		p.indent++
		p.printChildren(id)
		p.indent--
	case CallSubquery:
		p.print(kids[0], kids[1])
		p.printBlock(kids[2])
		p.print(kids[3])
	case Subquery:
		p.print(kids[0], kids[1])
		body := kids[2 : len(kids)-1]
		if q := t.Child(id, Query); q != NoNode {
			p.printBlock(q)
		} else {
			p.space()
			for _, c := range body {
				if t.Kind(c) == Where {
					// Stays on the line of the pattern.
					p.printChildren(c)
					continue
				}
				p.print(c)
			}
			p.space()
		}
		p.terminal(kids[len(kids)-1], raw)
	case Foreach:
		for _, c := range kids {
			switch {
			case t.Kind(c).isClause():
				p.space()
			case t.Kind(c) == Terminal && t.Token(c).Type == token.Pipe:
				p.space()
				p.terminal(c, raw)
				continue
			}
			p.print(c)
		}
	case NodePattern, RelationshipPattern:
		p.printPattern(id)
	case LabelExpression:
		for i, c := range kids {
			if i == 0 && t.Token(c).Type == token.Is {
				p.space()
				p.emit(c, raw, "IS")
				p.print(space)
				continue
			}
			p.printRaw(c)
		}
	case Quantifier, NumberLiteral:
		p.printRaw(id)
	case CountStar:
		p.terminal(kids[0], raw)
		p.print(kids[1])
		p.terminal(kids[2], raw)
		p.print(kids[3])
	case Unary:
		if typ := t.Token(kids[0]).Type; typ == token.Add || typ == token.Sub {
			p.terminal(kids[0], raw)
			p.print(kids[1])
			break
		}
		p.printChildren(id)
	case BooleanLiteral:
		p.emit(kids[0], raw, strings.ToLower(t.Token(kids[0]).Text))
	case KeywordLiteral:
		var text string
		switch t.Token(kids[0]).Type {
		case token.Null:
			text = "null"
		case token.Nan:
			text = "NaN"
		}
		p.emit(kids[0], raw, text)
	case Property:
		p.print(kids[0])
		p.terminal(kids[1], raw)
		p.print(kids[2])
	case MapProjection:
		p.print(kids[0])
		p.space()
		for _, c := range kids[1:] {
			p.print(c)
		}
	case MapProjectionItem:
		p.printRaw(id)
	case MapPair:
		p.print(kids[0])
		p.terminal(kids[1], raw)
		p.space()
		p.print(kids[2])
	case ListComprehension:
		for _, c := range kids {
			if t.Kind(c) == Terminal && t.Token(c).Type == token.Pipe {
				p.space()
				p.terminal(c, raw)
				p.print(space)
				continue
			}
			p.print(c)
		}
	case ReturnItems, YieldItems:
		for _, c := range kids {
			if t.Kind(c) == Terminal && t.Token(c).Type == token.Mul {
				p.terminal(c, raw)
				continue
			}
			p.print(c)
		}
	}
}

// printBlock prints the query of a { ... } block, one level deeper
// and on its own lines.
func (p *printer) printBlock(query NodeID) {
	p.indent++
	p.print(query)
	p.breakLine()
	p.indent--
}

// printPattern prints a node or relationship pattern. Arrows and
// labels attach to their neighbours; properties are separated from
// the labels by a space.
func (p *printer) printPattern(id NodeID) {
	t := p.tree
	labels := false
	for _, c := range t.Children(id) {
		switch t.Kind(c) {
		case Terminal:
			switch t.Token(c).Type {
			case token.Sub, token.Lt, token.Gt:
				p.terminal(c, raw)
				continue
			}
		case LabelExpression:
			labels = true
		case MapLiteral, Parameter:
			if labels {
				p.space()
			}
		}
		p.print(c)
	}
}
