package ast

import (
	"fmt"
	"slices"

	"github.com/xiam/sxform/lexer"
	"github.com/xiam/sxform/source"
)

// Node is implemented by every AST node. The set of implementations is
// closed: Program, Comment, String, Symbol, List and Call.
//
// Nodes are immutable once built; rewriting a tree produces new nodes.
type Node interface {
	Type() NodeType
	Location() source.Location
	String() string

	node()
}

// Program is the root of a parsed source.
type Program struct {
	body []Node
	loc  source.Location
}

// NewProgram creates a program node. Its location spans from the first to
// the last node of the body.
func NewProgram(body []Node) *Program {
	return &Program{
		body: slices.Clip(body),
		loc:  spanOf(body),
	}
}

// Body returns a copy of the top level nodes.
func (p *Program) Body() []Node {
	return slices.Clone(p.body)
}

// Len returns the number of top level nodes.
func (p *Program) Len() int {
	return len(p.body)
}

// At returns the top level node at position i.
func (p *Program) At(i int) Node {
	return p.body[i]
}

func (p *Program) Type() NodeType            { return NodeTypeProgram }
func (p *Program) Location() source.Location { return p.loc }
func (p *Program) String() string            { return fmt.Sprintf("(%v)[%d]", p.Type(), len(p.body)) }
func (*Program) node()                       {}

// Comment is a comment, without its leading ";".
type Comment struct {
	text string
	loc  source.Location
}

// NewComment creates a comment node.
func NewComment(text string, loc source.Location) *Comment {
	return &Comment{text: text, loc: loc}
}

// Text returns the text of the comment.
func (c *Comment) Text() string {
	return c.text
}

func (c *Comment) Type() NodeType            { return NodeTypeComment }
func (c *Comment) Location() source.Location { return c.loc }
func (c *Comment) String() string            { return fmt.Sprintf("(%v): %q", c.Type(), c.text) }
func (*Comment) node()                       {}

// String is a quoted string literal.
type String struct {
	value string
	loc   source.Location
}

// NewString creates a string node.
func NewString(value string, loc source.Location) *String {
	return &String{value: value, loc: loc}
}

// Value returns the decoded value of the string.
func (s *String) Value() string {
	return s.value
}

func (s *String) Type() NodeType            { return NodeTypeString }
func (s *String) Location() source.Location { return s.loc }
func (s *String) String() string            { return fmt.Sprintf("(%v): %q", s.Type(), s.value) }
func (*String) node()                       {}

// Symbol is a bare word.
type Symbol struct {
	value string
	loc   source.Location
}

// NewSymbol creates a symbol node.
func NewSymbol(value string, loc source.Location) *Symbol {
	return &Symbol{value: value, loc: loc}
}

// Value returns the name of the symbol.
func (s *Symbol) Value() string {
	return s.value
}

func (s *Symbol) Type() NodeType            { return NodeTypeSymbol }
func (s *Symbol) Location() source.Location { return s.loc }
func (s *Symbol) String() string            { return fmt.Sprintf("(%v): %s", s.Type(), s.value) }
func (*Symbol) node()                       {}

// List is a bracketed sequence of nodes. Its type depends on the bracket it
// was opened with.
type List struct {
	bracket lexer.BracketKind
	items   []Node
	loc     source.Location
}

// NewList creates a list node.
func NewList(bk lexer.BracketKind, items []Node, loc source.Location) *List {
	return &List{
		bracket: bk,
		items:   slices.Clip(items),
		loc:     loc,
	}
}

// Bracket returns the bracket kind the list was opened and closed with.
func (l *List) Bracket() lexer.BracketKind {
	return l.bracket
}

// Items returns a copy of the list items.
func (l *List) Items() []Node {
	return slices.Clone(l.items)
}

// Len returns the number of items.
func (l *List) Len() int {
	return len(l.items)
}

// At returns the item at position i.
func (l *List) At(i int) Node {
	return l.items[i]
}

func (l *List) Type() NodeType            { return ListType(l.bracket) }
func (l *List) Location() source.Location { return l.loc }
func (l *List) String() string            { return fmt.Sprintf("(%v)[%d]", l.Type(), len(l.items)) }
func (*List) node()                       {}

// Call is a symbol, or another call, immediately followed by a bracketed
// argument list.
type Call struct {
	callee Node
	list   *List
	loc    source.Location
}

// NewCall creates a call node. The callee must be a *Symbol or a *Call.
func NewCall(callee Node, list *List, loc source.Location) *Call {
	return &Call{
		callee: callee,
		list:   list,
		loc:    loc,
	}
}

// IsCallee returns true if n can be the callee of a call.
func IsCallee(n Node) bool {
	switch n.(type) {
	case *Symbol, *Call:
		return true
	}
	return false
}

// Callee returns the called symbol or call.
func (c *Call) Callee() Node {
	return c.callee
}

// List returns the argument list.
func (c *Call) List() *List {
	return c.list
}

// Bracket returns the bracket kind of the argument list.
func (c *Call) Bracket() lexer.BracketKind {
	return c.list.bracket
}

func (c *Call) Type() NodeType            { return NodeTypeCall }
func (c *Call) Location() source.Location { return c.loc }
func (c *Call) String() string            { return fmt.Sprintf("(%v)[%d]", c.Type(), len(c.list.items)) }
func (*Call) node()                       {}

func spanOf(nodes []Node) source.Location {
	if len(nodes) == 0 {
		return source.NewLocation(source.Start, source.Start, "")
	}
	first, last := nodes[0].Location(), nodes[len(nodes)-1].Location()
	return source.NewLocation(first.Start(), last.End(), first.Source())
}

var (
	_ = Node(&Program{})
	_ = Node(&Comment{})
	_ = Node(&String{})
	_ = Node(&Symbol{})
	_ = Node(&List{})
	_ = Node(&Call{})
)
