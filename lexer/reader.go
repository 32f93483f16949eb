package lexer

import (
	"bufio"
	"errors"
	"io"
	"log"
	"slices"
	"strings"

	"github.com/xiam/sxform/source"
)

const defaultChunkSize = 4096

// Option configures a Lexer.
type Option func(*Lexer)

// WithChunkSize sets the number of characters fed to Tokenize at once.
func WithChunkSize(n int) Option {
	return func(lx *Lexer) {
		if n > 0 {
			lx.chunkSize = n
		}
	}
}

// WithLogger sets the logger used to report scanning failures.
func WithLogger(l *log.Logger) Option {
	return func(lx *Lexer) {
		if l != nil {
			lx.logger = l
		}
	}
}

// Lexer feeds the contents of a reader to Tokenize chunk by chunk.
type Lexer struct {
	in *bufio.Reader

	state     State
	done      bool
	chunkSize int
	logger    *log.Logger
}

// New initializes a Lexer object
func New(r io.Reader, id source.ID, opts ...Option) *Lexer {
	lx := &Lexer{
		in:        bufio.NewReader(r),
		state:     NewState(id),
		chunkSize: defaultChunkSize,
		logger:    log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(lx)
	}
	return lx
}

// State returns the tokenizer state reached so far.
func (lx *Lexer) State() State {
	return lx.state
}

// Next feeds the next chunk of input to the tokenizer and returns the tokens
// completed by it. done is true once the input has been exhausted and every
// pending token was flushed.
func (lx *Lexer) Next() (tokens []Token, done bool, err error) {
	if lx.done {
		return nil, true, nil
	}

	chunk, err := lx.readChunk()
	last := errors.Is(err, io.EOF)
	if err != nil && !last {
		lx.logger.Printf("lexer error: %v", err)
		return nil, false, err
	}

	n := len(lx.state.tokens)
	state, err := Tokenize(lx.state, chunk, last)
	if err != nil {
		lx.logger.Printf("lexer error: %v", err)
		return nil, false, err
	}
	lx.state, lx.done = state, last

	return slices.Clone(state.tokens[n:]), last, nil
}

// Scan reads the whole input and returns all the tokens within it.
func (lx *Lexer) Scan() ([]Token, error) {
	for {
		_, done, err := lx.Next()
		if err != nil {
			return nil, err
		}
		if done {
			return lx.state.Tokens(), nil
		}
	}
}

// readChunk reads up to chunkSize runes, so multi-byte characters are never
// split between chunks.
func (lx *Lexer) readChunk() (string, error) {
	var buf strings.Builder
	for i := 0; i < lx.chunkSize; i++ {
		r, _, err := lx.in.ReadRune()
		if err != nil {
			return buf.String(), err
		}
		buf.WriteRune(r)
	}
	return buf.String(), nil
}
