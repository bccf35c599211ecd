package types

import (
	"fmt"
)

type Position struct {
	Line     int
	Column   int
	Filename string
}

type Span struct {
	From Position
	To   Position
}

// Lexical markers. The lexer emits these as tokens of their own; the parser
// decides what they mean.
const (
	LiteralPrefix  = `"`
	VariablePrefix = ":"
	OpenBracket    = "["
	CloseBracket   = "]"
	Comment        = "//"
	Newline        = "\n"
)

func (p Position) String() string {
	if p.Filename == "" {
		p.Filename = "<unknown>"
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

func (s Span) String() string {
	return fmt.Sprintf("%s-%d:%d", s.From, s.To.Line, s.To.Column)
}

func SingleCharSpan(p Position) Span {
	return Span{p, p}
}

type Token struct {
	Text     string
	Location Span
}

func (t Token) IsNewline() bool {
	return t.Text == Newline
}

func (t Token) String() string {
	if t.IsNewline() {
		return `\n`
	}
	return t.Text
}
