// Package sxform reads sources written in a small bracketed language into
// ast.Program trees.
//
// The work is split in packages: lexer turns text into tokens, parser turns
// tokens into a tree, transform rewrites trees and traverse inspects them.
// This package wires lexer and parser together for the common case of
// parsing a whole reader.
package sxform

import (
	"bytes"
	"io"

	"github.com/xiam/sxform/ast"
	"github.com/xiam/sxform/lexer"
	"github.com/xiam/sxform/parser"
	"github.com/xiam/sxform/source"
)

// Reader parses a source as it is read, feeding each chunk's tokens to the
// parser as soon as the lexer completes them.
type Reader struct {
	lx    *lexer.Lexer
	state parser.State
}

// Parse parses a complete source held in memory.
func Parse(in []byte) (*ast.Program, error) {
	return NewReader(bytes.NewReader(in), "").Parse()
}

// NewReader creates a Reader for the given source.
func NewReader(r io.Reader, id source.ID, opts ...lexer.Option) *Reader {
	return &Reader{
		lx:    lexer.New(r, id, opts...),
		state: parser.NewState(),
	}
}

// Parse reads until the end of input and returns the resulting program.
func (r *Reader) Parse() (*ast.Program, error) {
	for {
		tokens, done, err := r.lx.Next()
		if err != nil {
			return nil, err
		}

		if done {
			res, err := parser.Parse(r.state, tokens)
			if err != nil {
				return nil, err
			}
			return res.Program, nil
		}

		if r.state, err = parser.ParseStream(r.state, tokens); err != nil {
			return nil, err
		}
	}
}
