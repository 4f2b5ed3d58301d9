package cypher

import (
	"strings"

	"github.com/tomasnyberg/cypher-language-support/token"
)

// commentsBefore prints the comments preceding the first token, one per line.
func (p *printer) commentsBefore(tok token.Token) {
	if p.config&StripComments > 0 {
		return
	}
	for _, c := range token.Comments(p.tree.Tokens.HiddenLeft(tok.Index)) {
		p.print(strings.TrimSpace(c.Text), newline)
	}
}

// commentsAfter prints the comments that follow tok up to the next
// visible token. Each one ends the current line.
func (p *printer) commentsAfter(tok token.Token) {
	if p.config&StripComments > 0 {
		return
	}
	for _, c := range token.Comments(p.tree.Tokens.HiddenRight(tok.Index)) {
		if p.last() == newline {
			p.print(p.indent)
		}
		p.space()
		p.print(strings.TrimSpace(c.Text))
		p.breakLine()
	}
}
