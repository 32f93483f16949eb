package lexer

import (
	"fmt"

	"github.com/xiam/sxform/source"
)

// Token represents a known sequence of characters (lexical unit)
type Token struct {
	tt      TokenType
	text    string
	bracket BracketKind

	loc source.Location
}

// NewToken creates a lexical unit
func NewToken(tt TokenType, text string, loc source.Location) Token {
	return Token{
		tt:   tt,
		text: text,
		loc:  loc,
	}
}

// NewBracketToken creates an opening or closing bracket token of the given
// kind.
func NewBracketToken(open bool, bk BracketKind, loc source.Location) Token {
	tt, r := TokenCloseParen, bk.Close()
	if open {
		tt, r = TokenOpenParen, bk.Open()
	}
	return Token{
		tt:      tt,
		text:    string(r),
		bracket: bk,
		loc:     loc,
	}
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Text returns the decoded text of the lexical unit
func (t Token) Text() string {
	return t.text
}

// Bracket returns the bracket kind of a paren token, or BracketNone.
func (t Token) Bracket() BracketKind {
	return t.bracket
}

// Location returns the source region covered by the token
func (t Token) Location() source.Location {
	return t.loc
}

// Pos returns the line and column of the lexical unit
func (t Token) Pos() (int, int) {
	start := t.loc.Start()
	return start.Line, start.Column
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

// IsOpen returns true if the token opens a bracket of the given kind.
func (t Token) IsOpen(bk BracketKind) bool {
	return t.tt == TokenOpenParen && t.bracket == bk
}

// Touches returns true if next starts exactly where t ends, with nothing in
// between.
func (t Token) Touches(next Token) bool {
	return t.loc.End().Index == next.loc.Start().Index
}

func (t Token) String() string {
	return fmt.Sprintf("(:%v %q [%v])", t.tt, t.text, t.loc.Start())
}
