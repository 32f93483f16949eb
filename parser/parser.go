package parser

import (
	"fmt"
	"slices"

	"github.com/xiam/sxform/ast"
	"github.com/xiam/sxform/lexer"
)

// frame is a container that has been opened but not closed yet.
type frame struct {
	open   lexer.Token
	callee ast.Node
	items  []ast.Node
}

func (f frame) nodeType() ast.NodeType {
	if f.callee != nil {
		return ast.NodeTypeCall
	}
	return ast.ListType(f.open.Bracket())
}

// State is the parser state between two ParseStream calls: the containers
// still open (innermost last), the tokens consumed so far and the top level
// nodes already closed. ParseStream never modifies the state it was given.
type State struct {
	stack  []frame
	tokens []lexer.Token
	body   []ast.Node
}

// NewState creates an empty parser state.
func NewState() State {
	return State{}
}

// Depth returns the number of containers still open.
func (s State) Depth() int {
	return len(s.stack)
}

// Open returns the types of the containers still open, outermost first.
func (s State) Open() []ast.NodeType {
	types := make([]ast.NodeType, 0, len(s.stack))
	for i := range s.stack {
		types = append(types, s.stack[i].nodeType())
	}
	return types
}

// Tokens returns the tokens consumed so far.
func (s State) Tokens() []lexer.Token {
	return slices.Clone(s.tokens)
}

// Program returns a program made of the top level nodes closed so far.
func (s State) Program() *ast.Program {
	return ast.NewProgram(slices.Clone(s.body))
}

// Result is the outcome of a complete parse.
type Result struct {
	Program *ast.Program
	Tokens  []lexer.Token
}

// ParseStream consumes tokens and returns the advanced state. Containers may
// be left open, to be closed by tokens passed to a later call.
//
// On error the returned state is the zero value; the state passed in remains
// valid.
func ParseStream(s State, tokens []lexer.Token) (State, error) {
	p := &parser{
		stack:  slices.Clone(s.stack),
		tokens: slices.Clip(s.tokens),
		body:   slices.Clip(s.body),
	}
	for i := range p.stack {
		p.stack[i].items = slices.Clip(p.stack[i].items)
	}

	for _, tok := range tokens {
		rule, ok := rules[tok.Type()]
		if !ok {
			return State{}, newError(ErrUnexpectedToken, tok, fmt.Sprintf("unknown token type %v", tok.Type()))
		}
		if err := rule(p, tok); err != nil {
			return State{}, err
		}
		p.tokens = append(p.tokens, tok)
	}

	return State{
		stack:  p.stack,
		tokens: p.tokens,
		body:   p.body,
	}, nil
}

// Parse consumes tokens and requires the result to be a complete program:
// every container must be closed and every token consumed.
func Parse(s State, tokens []lexer.Token) (Result, error) {
	next, err := ParseStream(s, tokens)
	if err != nil {
		return Result{}, err
	}

	if n := len(next.stack); n > 0 {
		f := next.stack[n-1]
		return Result{}, newError(ErrUnclosedContainer, f.open, fmt.Sprintf("missing %q", f.open.Bracket().Close()))
	}

	if consumed := len(next.tokens) - len(s.tokens); consumed != len(tokens) {
		tok := tokens[consumed]
		return Result{}, newError(ErrUnexpectedStop, tok, fmt.Sprintf("%v", tok.Type()))
	}

	return Result{
		Program: ast.NewProgram(next.body),
		Tokens:  next.tokens,
	}, nil
}

// ParseBytes tokenizes and parses a complete source.
func ParseBytes(in []byte) (*ast.Program, error) {
	tokens, err := lexer.TokenizeBytes(in)
	if err != nil {
		return nil, err
	}

	res, err := Parse(NewState(), tokens)
	if err != nil {
		return nil, err
	}

	return res.Program, nil
}
