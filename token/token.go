package token

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
)

type ScanError struct {
	Pos Pos
	Err error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("line:%v: %v", e.Pos, e.Err)
}

type Pos struct {
	Line, Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Channel partitions the token stream. Hidden tokens (whitespace and
// comments) never reach the parser but stay addressable by index.
type Channel uint8

const (
	Visible Channel = iota
	Hidden
)

type Token struct {
	Type    Type
	Text    string
	Pos     Pos
	Channel Channel
	Index   int
}

func (t Token) String() string {
	switch {
	case t.Type == EOF,
		punctStart < t.Type && t.Type < punctEnd,
		operatorStart < t.Type && t.Type < operatorEnd:
		return t.Type.String()
	default:
		return fmt.Sprintf("%v(%q)", t.Type, t.Text)
	}
}

// IsComment reports whether t is a line or block comment.
func (t Token) IsComment() bool { return t.Type == LineComment || t.Type == BlockComment }

//go:generate go tool stringer -type Type -linecomment

type Type uint

func (t Type) IsKeyword() bool  { return keywordStart < t && t < keywordEnd }
func (t Type) IsOperator() bool { return operatorStart < t && t < operatorEnd }
func (t Type) IsPunct() bool    { return punctStart < t && t < punctEnd }

// IsHidden reports whether tokens of this type go to the hidden channel.
func (t Type) IsHidden() bool {
	return t == Whitespace || t == LineComment || t == BlockComment
}

const (
	Illegal Type = iota
	EOF
	Whitespace
	LineComment
	BlockComment

	Ident
	EscapedIdent
	Int
	Float
	String
	Param

	punctStart
	Lparen    // (
	Rparen    // )
	Lbrack    // [
	Rbrack    // ]
	Lbrace    // {
	Rbrace    // }
	Dot       // .
	DotDot    // ..
	Comma     // ,
	Colon     // :
	Semicolon // ;
	Pipe      // |
	Amp       // &
	Bang      // !
	punctEnd

	operatorStart
	Add        // +
	Sub        // -
	Mul        // *
	Quo        // /
	Rem        // %
	Pow        // ^
	Eq         // =
	Neq        // <>
	Lt         // <
	Gt         // >
	Leq        // <=
	Geq        // >=
	RegexMatch // =~
	AddAssign  // +=
	operatorEnd

	keywordStart
	All             // all
	And             // and
	As              // as
	Asc             // asc
	Ascending       // ascending
	By              // by
	Call            // call
	Case            // case
	Collect         // collect
	Contains        // contains
	Count           // count
	Create          // create
	Csv             // csv
	Delete          // delete
	Desc            // desc
	Descending      // descending
	Detach          // detach
	Distinct        // distinct
	Else            // else
	End             // end
	Ends            // ends
	Exists          // exists
	False           // false
	Fieldterminator // fieldterminator
	Foreach         // foreach
	From            // from
	Headers         // headers
	In              // in
	Inf             // inf
	Infinity        // infinity
	Is              // is
	Limit           // limit
	Load            // load
	Match           // match
	Merge           // merge
	Nan             // nan
	Not             // not
	Null            // null
	Offset          // offset
	On              // on
	Optional        // optional
	Or              // or
	Order           // order
	Remove          // remove
	Return          // return
	Set             // set
	Skip            // skip
	Starts          // starts
	Then            // then
	True            // true
	Union           // union
	Unwind          // unwind
	When            // when
	Where           // where
	With            // with
	Xor             // xor
	Yield           // yield
	keywordEnd
)

var keywords map[string]Type

func init() {
	keywords = make(map[string]Type)
	for typ := keywordStart + 1; typ < keywordEnd; typ++ {
		keywords[typ.String()] = typ
	}
}

// Lookup returns the keyword type of ident, or Ident if it is not one.
// Cypher keywords are case-insensitive.
func Lookup(ident string) Type {
	if typ, ok := keywords[strings.ToLower(ident)]; ok {
		return typ
	}
	return Ident
}

const eof = -1

type Scanner struct {
	r     *bufio.Reader
	queue []Token
	done  bool
	err   error

	line, col   int
	lastLineLen int
}

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		r:    bufio.NewReader(r),
		line: 1,
		col:  1,
	}
}

// Next returns the next token. After an error, Next keeps returning EOF
// and Err reports the cause.
func (s *Scanner) Next() (tok Token) {
	if len(s.queue) > 0 {
		tok, s.queue = s.queue[0], s.queue[1:]
		return tok
	}

	pos := s.pos()
	tok = s.scanAny()
	if typ := tok.Type; tok.Text == "" && (typ.IsPunct() || typ.IsOperator()) {
		tok.Text = typ.String()
	}
	if tok.Type.IsHidden() {
		tok.Channel = Hidden
	}
	tok.Pos = pos
	return tok
}

func (s *Scanner) Err() error { return s.err }

func (s *Scanner) errorf(format string, args ...interface{}) Token {
	if s.err == nil {
		s.err = &ScanError{s.pos(), fmt.Errorf(format, args...)}
	}
	s.done = true
	return Token{Type: EOF}
}

func (s *Scanner) pos() Pos { return Pos{Line: s.line, Column: s.col} }

func (s *Scanner) read() rune {
	if s.done {
		return eof
	}
	r, _, err := s.r.ReadRune()
	if err != nil {
		if err != io.EOF {
			s.err = err
		}
		s.done = true
		return eof
	}
	if r == '\n' {
		s.line++
		s.lastLineLen, s.col = s.col, 1
	} else {
		s.col++
	}
	return r
}

func (s *Scanner) unread() {
	if s.done {
		return
	}
	if err := s.r.UnreadRune(); err != nil {
		// UnreadRune returns an error only on invalid use.
		panic(err)
	}
	s.col--
	if s.col == 0 {
		s.col = s.lastLineLen
		s.line--
	}
}

func (s *Scanner) peek() rune {
	r := s.read()
	s.unread()
	return r
}

func (s *Scanner) scanAny() (tok Token) {
	switch r := s.read(); r {
	case eof:
		return Token{Type: EOF}
	case '/':
		switch s.read() {
		case '/':
			return s.scanLineComment()
		case '*':
			return s.scanBlockComment()
		default:
			s.unread()
			return Token{Type: Quo}
		}
	case '$':
		return s.scanParam()
	case '(':
		return Token{Type: Lparen}
	case ')':
		return Token{Type: Rparen}
	case '[':
		return Token{Type: Lbrack}
	case ']':
		return Token{Type: Rbrack}
	case '{':
		return Token{Type: Lbrace}
	case '}':
		return Token{Type: Rbrace}
	case '=':
		if s.peek() == '~' {
			s.read()
			return Token{Type: RegexMatch}
		}
		return Token{Type: Eq}
	case '!':
		if s.peek() == '=' {
			s.read()
			return Token{Type: Neq, Text: "!="}
		}
		return Token{Type: Bang}
	case '+':
		if s.peek() == '=' {
			s.read()
			return Token{Type: AddAssign}
		}
		return Token{Type: Add}
	case '-':
		// Arrows are never merged into a single token;
		// --> is Sub Sub Gt.
		return Token{Type: Sub}
	case '*':
		return Token{Type: Mul}
	case '%':
		return Token{Type: Rem}
	case '^':
		return Token{Type: Pow}
	case '<':
		switch s.peek() {
		case '>':
			s.read()
			return Token{Type: Neq}
		case '=':
			s.read()
			return Token{Type: Leq}
		default:
			return Token{Type: Lt}
		}
	case '>':
		if s.peek() == '=' {
			s.read()
			return Token{Type: Geq}
		}
		return Token{Type: Gt}
	case '.':
		switch r2 := s.peek(); {
		case r2 == r:
			s.read()
			return Token{Type: DotDot}
		case isDigit(r2):
			b := new(strings.Builder)
			b.WriteRune(r)
			return s.scanFloat(b)
		default:
			return Token{Type: Dot}
		}
	case ',':
		return Token{Type: Comma}
	case ':':
		return Token{Type: Colon}
	case ';':
		return Token{Type: Semicolon}
	case '|':
		return Token{Type: Pipe}
	case '&':
		return Token{Type: Amp}
	case '`':
		return s.scanEscapedIdent()
	case '\'', '"':
		return s.scanQuoted(r)
	default:
		if isSpace(r) {
			s.unread()
			return s.scanWhitespace()
		}
		if isDigit(r) {
			return s.scanNumber(r)
		}
		s.unread()
		if id := s.scanIdent(); id != "" {
			return Token{Type: Lookup(id), Text: id}
		}
		s.read()
		return Token{Type: Illegal, Text: string(r)}
	}
}

func (s *Scanner) scanLineComment() Token {
	var b strings.Builder
	for {
		switch r := s.read(); r {
		default:
			b.WriteRune(r)
		case '\n', eof:
			s.unread()
			return Token{Type: LineComment, Text: "//" + b.String()}
		}
	}
}

func (s *Scanner) scanBlockComment() Token {
	var b strings.Builder
	for {
		switch r := s.read(); {
		default:
			b.WriteRune(r)
		case r == '*' && s.peek() == '/':
			s.read()
			return Token{Type: BlockComment, Text: "/*" + b.String() + "*/"}
		case r == eof:
			return s.errorf("unterminated block comment")
		}
	}
}

func (s *Scanner) scanIdent() string {
	var b strings.Builder
	for {
		switch r := s.read(); {
		case r == '_' || unicode.IsLetter(r):
			b.WriteRune(r)
		case isDigit(r):
			if b.Len() > 0 {
				b.WriteRune(r)
				continue
			}
			fallthrough
		default:
			s.unread()
			return b.String()
		}
	}
}

func (s *Scanner) scanEscapedIdent() Token {
	var b strings.Builder
	b.WriteRune('`')
	for {
		r := s.read()
		switch r {
		case eof:
			return s.errorf("escaped name not terminated")
		case '`':
			b.WriteRune(r)
			// A doubled backtick escapes itself.
			if s.peek() == '`' {
				b.WriteRune(s.read())
				continue
			}
			return Token{Type: EscapedIdent, Text: b.String()}
		default:
			b.WriteRune(r)
		}
	}
}

func (s *Scanner) scanParam() Token {
	switch r := s.peek(); {
	case r == '`':
		s.read()
		tok := s.scanEscapedIdent()
		if tok.Type == EOF {
			return tok
		}
		return Token{Type: Param, Text: "$" + tok.Text}
	case isDigit(r):
		var b strings.Builder
		for isDigit(s.peek()) {
			b.WriteRune(s.read())
		}
		return Token{Type: Param, Text: "$" + b.String()}
	}
	if id := s.scanIdent(); id != "" {
		return Token{Type: Param, Text: "$" + id}
	}
	return Token{Type: Illegal, Text: "$"}
}

func (s *Scanner) scanWhitespace() Token {
	var b strings.Builder
	for {
		r := s.read()
		if !isSpace(r) {
			s.unread()
			return Token{Type: Whitespace, Text: b.String()}
		}
		b.WriteRune(r)
	}
}

func (s *Scanner) scanQuoted(quote rune) Token {
	var b strings.Builder
	b.WriteRune(quote)
	for {
		r := s.read()
		switch r {
		case eof:
			return s.errorf("string not terminated")
		case '\\':
			b.WriteRune(r)
			if r = s.read(); r == eof {
				return s.errorf("string not terminated")
			}
			b.WriteRune(r)
		case quote:
			b.WriteRune(r)
			return Token{Type: String, Text: b.String()}
		default:
			b.WriteRune(r)
		}
	}
}

func (s *Scanner) scanNumber(r rune) Token {
	if r == '0' {
		switch r := s.peek(); r {
		case 'x', 'X':
			s.read()
			return s.scanRadix(r, isHexDigit)
		case 'o', 'O':
			s.read()
			return s.scanRadix(r, isOctalDigit)
		}
	}
	b := new(strings.Builder)
	b.WriteRune(r)
	s.scanDecimal(b)
	switch s.peek() {
	case '.':
		s.read()
		if s.peek() == '.' {
			// A range such as 1..3; the second dot is still unread.
			s.read()
			dd := Token{Type: DotDot, Text: DotDot.String()}
			dd.Pos = s.pos()
			dd.Pos.Column -= 2
			s.queue = append(s.queue, dd)
			return Token{Type: Int, Text: b.String()}
		}
		b.WriteRune('.')
		return s.scanFloat(b)
	case 'e', 'E':
		return s.scanExponent(b)
	}
	return Token{Type: Int, Text: b.String()}
}

func (s *Scanner) scanDecimal(b *strings.Builder) bool {
	n := b.Len()
	for {
		if b.Len() > 0 && s.peek() == '_' {
			b.WriteRune(s.read())
		}
		if !isDigit(s.peek()) {
			break
		}
		b.WriteRune(s.read())
	}
	return b.Len() > n
}

func (s *Scanner) scanRadix(delim rune, valid func(rune) bool) Token {
	var b strings.Builder
	for valid(s.peek()) {
		b.WriteRune(s.read())
	}
	if b.Len() == 0 {
		return Token{Type: Illegal, Text: "0" + string(delim)}
	}
	return Token{Type: Int, Text: "0" + string(delim) + b.String()}
}

func (s *Scanner) scanFloat(b *strings.Builder) Token {
	if !s.scanDecimal(b) {
		return Token{Type: Illegal, Text: b.String()}
	}
	if r := s.peek(); r == 'e' || r == 'E' {
		return s.scanExponent(b)
	}
	return Token{Type: Float, Text: b.String()}
}

func (s *Scanner) scanExponent(b *strings.Builder) Token {
	b.WriteRune(s.read())
	if r := s.peek(); r == '+' || r == '-' {
		b.WriteRune(s.read())
	}
	if !s.scanDecimal(b) {
		return Token{Type: Illegal, Text: b.String()}
	}
	return Token{Type: Float, Text: b.String()}
}

func isDigit(r rune) bool      { return '0' <= r && r <= '9' }
func isOctalDigit(r rune) bool { return '0' <= r && r <= '7' }

func isHexDigit(r rune) bool {
	return isDigit(r) || 'a' <= r && r <= 'f' || 'A' <= r && r <= 'F'
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n', '\f':
		return true
	}
	return false
}
