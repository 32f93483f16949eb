package parser

import (
	"fmt"
	"slices"

	"github.com/xiam/sxform/ast"
	"github.com/xiam/sxform/lexer"
)

type parser struct {
	stack  []frame
	tokens []lexer.Token
	body   []ast.Node
}

// tokenRule consumes one token.
type tokenRule func(p *parser, tok lexer.Token) error

var rules map[lexer.TokenType]tokenRule

func init() {
	rules = map[lexer.TokenType]tokenRule{
		lexer.TokenSymbol:     parseSymbol,
		lexer.TokenComment:    parseComment,
		lexer.TokenString:     parseString,
		lexer.TokenOpenParen:  parseOpen,
		lexer.TokenCloseParen: parseClose,
	}
}

// prev returns the last consumed token and whether it ends exactly where
// tok starts.
func (p *parser) prev(tok lexer.Token) (lexer.Token, bool, bool) {
	if len(p.tokens) == 0 {
		return lexer.Token{}, false, false
	}
	prev := p.tokens[len(p.tokens)-1]
	return prev, true, prev.Touches(tok)
}

func (p *parser) push(node ast.Node) {
	if n := len(p.stack); n > 0 {
		p.stack[n-1].items = append(p.stack[n-1].items, node)
		return
	}
	p.body = append(p.body, node)
}

// pop removes the last node of the innermost container. The slice is clipped
// so that a later push can't overwrite an earlier state's backing array.
func (p *parser) pop() ast.Node {
	if n := len(p.stack); n > 0 {
		f := &p.stack[n-1]
		node := f.items[len(f.items)-1]
		f.items = slices.Clip(f.items[:len(f.items)-1])
		return node
	}
	node := p.body[len(p.body)-1]
	p.body = slices.Clip(p.body[:len(p.body)-1])
	return node
}

func (p *parser) openList(tok lexer.Token) {
	p.stack = append(p.stack, frame{open: tok})
}

func (p *parser) openCall(callee ast.Node, tok lexer.Token) {
	p.stack = append(p.stack, frame{open: tok, callee: callee})
}

// leafAllowed reports whether a leaf token may follow prev. A leaf glued to
// the previous token is only legal right after an opening bracket.
func leafAllowed(p *parser, tok lexer.Token) bool {
	prev, ok, adjacent := p.prev(tok)
	return !ok || !adjacent || prev.Is(lexer.TokenOpenParen)
}

func parseSymbol(p *parser, tok lexer.Token) error {
	if !leafAllowed(p, tok) {
		return newError(ErrUnexpectedToken, tok, "symbol must be separated from the previous token")
	}
	p.push(ast.NewSymbol(tok.Text(), tok.Location()))
	return nil
}

func parseComment(p *parser, tok lexer.Token) error {
	if !leafAllowed(p, tok) {
		return newError(ErrUnexpectedToken, tok, "comment must be separated from the previous token")
	}
	p.push(ast.NewComment(tok.Text(), tok.Location()))
	return nil
}

func parseString(p *parser, tok lexer.Token) error {
	prev, ok, adjacent := p.prev(tok)
	if ok && adjacent && !prev.IsOpen(lexer.BracketRound) {
		return newError(ErrUnexpectedToken, tok, "string must be separated from the previous token")
	}
	p.push(ast.NewString(tok.Text(), tok.Location()))
	return nil
}

func parseOpen(p *parser, tok lexer.Token) error {
	prev, ok, adjacent := p.prev(tok)
	if !ok || !adjacent {
		p.openList(tok)
		return nil
	}

	switch prev.Type() {
	case lexer.TokenSymbol:
		callee := p.pop()
		if _, ok := callee.(*ast.Symbol); !ok {
			return newError(ErrUnexpectedToken, tok, fmt.Sprintf("can't call %v", callee.Type()))
		}
		p.openCall(callee, tok)
		return nil

	case lexer.TokenCloseParen:
		callee := p.pop()
		if _, ok := callee.(*ast.Call); !ok {
			return newError(ErrUnexpectedToken, tok, fmt.Sprintf("can't call %v", callee.Type()))
		}
		p.openCall(callee, tok)
		return nil

	case lexer.TokenOpenParen:
		p.openList(tok)
		return nil
	}

	return newError(ErrUnexpectedToken, tok, fmt.Sprintf("bracket can't follow %v", prev.Type()))
}

func parseClose(p *parser, tok lexer.Token) error {
	n := len(p.stack)
	if n == 0 {
		return newError(ErrUnmatchedClose, tok, "")
	}

	f := p.stack[n-1]
	if f.open.Bracket() != tok.Bracket() {
		return newError(ErrUnexpectedToken, tok, fmt.Sprintf("expected %q", f.open.Bracket().Close()))
	}
	p.stack = p.stack[:n-1]

	end := tok.Location().End()
	list := ast.NewList(f.open.Bracket(), f.items, f.open.Location().WithEnd(end))
	if f.callee == nil {
		p.push(list)
		return nil
	}
	p.push(ast.NewCall(f.callee, list, f.callee.Location().WithEnd(end)))
	return nil
}
