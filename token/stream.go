package token

import (
	"io"
	"sort"
)

// Stream is the complete, ordered token sequence of one source text:
// visible and hidden tokens alike. A token's Index is its position
// in the stream. The last token is always EOF.
type Stream struct {
	tokens  []Token
	visible []int // indexes of visible tokens, ascending
}

// Scan reads all of r and returns its token stream.
// If the input cannot be tokenized, the returned error is a *ScanError
// (or an I/O error).
func Scan(r io.Reader) (*Stream, error) {
	scan := NewScanner(r)
	s := new(Stream)
	for {
		tok := scan.Next()
		s.add(tok)
		if tok.Type == EOF {
			break
		}
	}
	if err := scan.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Stream) add(tok Token) {
	tok.Index = len(s.tokens)
	if tok.Channel == Visible {
		s.visible = append(s.visible, tok.Index)
	}
	s.tokens = append(s.tokens, tok)
}

// Len returns the number of tokens, hidden ones included.
func (s *Stream) Len() int { return len(s.tokens) }

// At returns the token at index i.
func (s *Stream) At(i int) Token { return s.tokens[i] }

// Tokens returns all tokens. The slice must not be modified.
func (s *Stream) Tokens() []Token { return s.tokens }

// Visible returns the stream indexes of the visible tokens in order.
func (s *Stream) Visible() []int { return s.visible }

// HiddenLeft returns the hidden tokens lying strictly between the
// previous visible token and the token at index i.
func (s *Stream) HiddenLeft(i int) []Token {
	k := sort.SearchInts(s.visible, i)
	lo := 0
	if k > 0 {
		lo = s.visible[k-1] + 1
	}
	return s.tokens[lo:i]
}

// HiddenRight returns the hidden tokens lying strictly between the
// token at index i and the next visible token.
func (s *Stream) HiddenRight(i int) []Token {
	k := sort.SearchInts(s.visible, i+1)
	hi := len(s.tokens)
	if k < len(s.visible) {
		hi = s.visible[k]
	}
	return s.tokens[i+1 : hi]
}

// Comments returns the comment tokens among toks.
func Comments(toks []Token) []Token {
	var out []Token
	for _, tok := range toks {
		if tok.IsComment() {
			out = append(out, tok)
		}
	}
	return out
}
