package lexer

import (
	"slices"
	"unicode/utf8"

	"github.com/xiam/sxform/source"
)

// subToken is a symbol, string or comment that has been started but not
// terminated yet. It survives across Tokenize calls.
type subToken struct {
	tt    TokenType
	value []rune
	start source.Cursor

	escape   bool
	escapeAt source.Cursor
}

// State holds everything the tokenizer needs to resume scanning with the
// next chunk of the same source. States are values: Tokenize never modifies
// the state it was given, so any earlier state can be kept as a snapshot.
type State struct {
	id      source.ID
	cursor  source.Cursor
	pending *subToken
	tokens  []Token

	// partial holds the bytes of a character split by the end of the last
	// chunk.
	partial string
}

// NewState creates a tokenizer state positioned at the beginning of the
// given source.
func NewState(id source.ID) State {
	return NewStateAt(id, source.Start)
}

// NewStateAt creates a tokenizer state that starts counting lines and
// columns at the given offset.
func NewStateAt(id source.ID, offset source.Cursor) State {
	return State{
		id:     id,
		cursor: offset,
	}
}

// Tokens returns the tokens collected so far.
func (s State) Tokens() []Token {
	return slices.Clone(s.tokens)
}

// Cursor returns the position of the next character to be scanned.
func (s State) Cursor() source.Cursor {
	return s.cursor
}

// Source returns the identifier of the scanned source.
func (s State) Source() source.ID {
	return s.id
}

// Pending returns true if a symbol, string, comment or multi-byte character
// was left open by the last chunk.
func (s State) Pending() bool {
	return s.pending != nil || s.partial != ""
}

// Tokenize scans chunk and returns a new state with the tokens found in it
// appended. A symbol, string or comment left open at the end of the chunk is
// carried in the returned state and is only closed by a later call with last
// set to true. The same goes for the leading bytes of a UTF-8 character cut
// by the end of the chunk; with last set they are decoded as U+FFFD.
//
// On error the returned state is the zero value; the state passed in remains
// valid and can be used to retry.
func Tokenize(s State, chunk string, last bool) (State, error) {
	lx := &scanner{
		id:     s.id,
		cursor: s.cursor,
		tokens: slices.Clip(s.tokens),
	}
	if s.pending != nil {
		sub := *s.pending
		sub.value = slices.Clip(sub.value)
		lx.sub = &sub
	}

	in := s.partial + chunk
	for len(in) > 0 {
		if !last && !utf8.FullRuneInString(in) {
			break
		}
		r, size := utf8.DecodeRuneInString(in)
		if err := lx.step(r); err != nil {
			return State{}, err
		}
		in = in[size:]
	}

	partial := ""
	if !last {
		partial = in
	}

	if last {
		if err := lx.finish(); err != nil {
			return State{}, err
		}
	}

	return State{
		id:      lx.id,
		cursor:  lx.cursor,
		pending: lx.sub,
		tokens:  lx.tokens,
		partial: partial,
	}, nil
}

// TokenizeBytes takes an array of bytes and returns all the tokens within it,
// or an error if a token can't be identified.
func TokenizeBytes(in []byte) ([]Token, error) {
	s, err := Tokenize(NewState(""), string(in), true)
	if err != nil {
		return nil, err
	}
	return s.tokens, nil
}

type scanner struct {
	id     source.ID
	cursor source.Cursor

	sub    *subToken
	tokens []Token
}

func advance(c source.Cursor, r rune) source.Cursor {
	if r == '\n' {
		return source.NewCursor(c.Line+1, 1, c.Index+1)
	}
	return source.NewCursor(c.Line, c.Column+1, c.Index+1)
}

func (lx *scanner) step(r rune) error {
	at := lx.cursor
	next := advance(at, r)
	defer func() {
		lx.cursor = next
	}()

	if lx.sub == nil {
		lx.begin(r, at, next)
		return nil
	}

	switch lx.sub.tt {
	case TokenSymbol:
		return lx.scanSymbol(r, at, next)
	case TokenString:
		return lx.scanString(r, at, next)
	case TokenComment:
		lx.scanComment(r, at)
		return nil
	}

	panic("unreachable")
}

func (lx *scanner) begin(r rune, at, next source.Cursor) {
	switch {
	case isOpenParen(r):
		lx.tokens = append(lx.tokens, NewBracketToken(true, bracketKinds[r], source.NewLocation(at, next, lx.id)))
	case isCloseParen(r):
		lx.tokens = append(lx.tokens, NewBracketToken(false, bracketKinds[r], source.NewLocation(at, next, lx.id)))
	case isWhitespace(r):
		// separator
	case r == commentStart:
		lx.sub = &subToken{tt: TokenComment, start: at}
	case r == stringQuote:
		lx.sub = &subToken{tt: TokenString, start: at}
	case r == escapeStart:
		lx.sub = &subToken{tt: TokenSymbol, start: at, escape: true, escapeAt: at}
	default:
		lx.sub = &subToken{tt: TokenSymbol, start: at, value: []rune{r}}
	}
}

func (lx *scanner) scanSymbol(r rune, at, next source.Cursor) error {
	sub := lx.sub
	switch {
	case sub.escape:
		v, ok := unescapeSymbol(r)
		if !ok {
			return lx.escapeError(r)
		}
		sub.value = append(sub.value, v)
		sub.escape = false
	case isDelimiter(r):
		lx.emit(at)
		lx.begin(r, at, next)
	case r == escapeStart:
		sub.escape, sub.escapeAt = true, at
	default:
		sub.value = append(sub.value, r)
	}
	return nil
}

func (lx *scanner) scanString(r rune, at, next source.Cursor) error {
	sub := lx.sub
	switch {
	case sub.escape:
		v, ok := unescapeString(r)
		if !ok {
			return lx.escapeError(r)
		}
		sub.value = append(sub.value, v)
		sub.escape = false
	case r == stringQuote:
		lx.emit(next)
	case r == escapeStart:
		sub.escape, sub.escapeAt = true, at
	default:
		sub.value = append(sub.value, r)
	}
	return nil
}

// scanComment ends a comment at a newline. A carriage return right before
// the newline is not part of the comment text.
func (lx *scanner) scanComment(r rune, at source.Cursor) {
	if r == '\n' {
		if v := lx.sub.value; len(v) > 0 && v[len(v)-1] == '\r' {
			lx.sub.value = v[:len(v)-1]
		}
		lx.emit(at)
		return
	}
	lx.sub.value = append(lx.sub.value, r)
}

// finish closes a pending sub-token at end of input.
func (lx *scanner) finish() error {
	if lx.sub == nil {
		return nil
	}
	if lx.sub.escape {
		return &Error{
			Source:   lx.id,
			Cursor:   lx.sub.escapeAt,
			Sequence: string(escapeStart),
			Err:      ErrUnterminatedEscape,
		}
	}
	lx.emit(lx.cursor)
	return nil
}

func (lx *scanner) emit(end source.Cursor) {
	sub := lx.sub
	lx.tokens = append(lx.tokens, NewToken(sub.tt, string(sub.value), source.NewLocation(sub.start, end, lx.id)))
	lx.sub = nil
}

func (lx *scanner) escapeError(r rune) error {
	return &Error{
		Source:   lx.id,
		Cursor:   lx.sub.escapeAt,
		Sequence: string([]rune{escapeStart, r}),
		Err:      ErrUnknownEscape,
	}
}
