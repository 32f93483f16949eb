package ast

import (
	"fmt"
)

// Clone returns a deep copy of n that shares no node with the original.
func Clone(n Node) Node {
	switch n := n.(type) {
	case *Program:
		return &Program{body: cloneNodes(n.body), loc: n.loc}
	case *Comment:
		return &Comment{text: n.text, loc: n.loc}
	case *String:
		return &String{value: n.value, loc: n.loc}
	case *Symbol:
		return &Symbol{value: n.value, loc: n.loc}
	case *List:
		return cloneList(n)
	case *Call:
		return &Call{callee: Clone(n.callee), list: cloneList(n.list), loc: n.loc}
	}
	panic(fmt.Errorf("%w: %T", ErrUnknownNodeType, n))
}

func cloneList(l *List) *List {
	return &List{bracket: l.bracket, items: cloneNodes(l.items), loc: l.loc}
}

func cloneNodes(nodes []Node) []Node {
	out := make([]Node, len(nodes))
	for i := range nodes {
		out[i] = Clone(nodes[i])
	}
	return out
}
