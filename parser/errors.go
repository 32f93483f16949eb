package parser

import (
	"errors"
	"fmt"

	"github.com/xiam/sxform/lexer"
	"github.com/xiam/sxform/source"
)

var (
	ErrUnexpectedToken   = errors.New("unexpected token")
	ErrUnmatchedClose    = errors.New("unmatched closing bracket")
	ErrUnclosedContainer = errors.New("unclosed container")
	ErrUnexpectedStop    = errors.New("unexpected parsing stop")
)

// Error is a parsing failure located at the offending token.
type Error struct {
	Err      error
	Token    lexer.Token
	Location source.Location
	Detail   string
}

func newError(err error, tok lexer.Token, detail string) *Error {
	return &Error{
		Err:      err,
		Token:    tok,
		Location: tok.Location(),
		Detail:   detail,
	}
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%v: %v %q: %s", e.Location, e.Err, e.Token.Text(), e.Detail)
	}
	return fmt.Sprintf("%v: %v %q", e.Location, e.Err, e.Token.Text())
}

func (e *Error) Unwrap() error {
	return e.Err
}
