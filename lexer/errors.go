package lexer

import (
	"errors"
	"fmt"

	"github.com/xiam/sxform/source"
)

var (
	ErrUnknownEscape      = errors.New("unknown escape sequence")
	ErrUnterminatedEscape = errors.New("unterminated escape sequence")
)

// Error is a fatal lexing error.
type Error struct {
	Source   source.ID
	Cursor   source.Cursor
	Sequence string
	Err      error
}

func (e *Error) Error() string {
	pos := e.Cursor.String()
	if e.Source != "" {
		pos = fmt.Sprintf("%s:%s", e.Source, pos)
	}
	if e.Sequence != "" {
		return fmt.Sprintf("%s: %v %q", pos, e.Err, e.Sequence)
	}
	return fmt.Sprintf("%s: %v", pos, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
