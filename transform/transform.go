// Package transform rewrites AST trees without modifying them.
//
// Transform walks a tree in pre-order and lets handlers replace nodes. A
// container is rebuilt only when one of its children changed, otherwise the
// original node is reused: the new tree shares every untouched subtree with
// the old one.
//
// The callee of a call is visited before its arguments, so a Symbol handler
// also sees, and may rename, called symbols. Both the callee and the
// arguments get the call as parent.
package transform

import (
	"errors"
	"fmt"

	"github.com/xiam/sxform/ast"
)

var (
	ErrInvalidReplacement = errors.New("invalid replacement")
)

// Handler is called for every node of the type it was registered for.
// Returning an error aborts the transformation.
type Handler func(ctx *Context, node ast.Node) error

// Visitors maps node types to handlers.
type Visitors map[ast.NodeType]Handler

// Transform returns the program produced by applying visitors to p. p is
// never modified.
func Transform(p *ast.Program, visitors Visitors) (*ast.Program, error) {
	if p == nil {
		return nil, unknownNodeType(nil)
	}

	n, err := transformNode(p, nil, nil, visitors)
	if err != nil {
		return nil, err
	}

	out, ok := n.(*ast.Program)
	if !ok {
		return nil, fmt.Errorf("%v: %w: program replaced by %v", p.Location(), ErrInvalidReplacement, n.Type())
	}
	return out, nil
}

func transformNode(n ast.Node, parent ast.Node, path []ast.NodeType, visitors Visitors) (ast.Node, error) {
	if n == nil || !n.Type().Valid() {
		return nil, unknownNodeType(n)
	}

	path = append(path[:len(path):len(path)], n.Type())
	descend := true

	if handler, ok := visitors[n.Type()]; ok {
		ctx := &Context{parent: parent, path: path}
		if err := handler(ctx, n); err != nil {
			return nil, err
		}

		if ctx.replaced {
			if ctx.replacement == nil || !ctx.replacement.Type().Valid() {
				return nil, fmt.Errorf("%v: %w: %v replaced by %v", n.Location(), ErrInvalidReplacement, n.Type(), describe(ctx.replacement))
			}
			n = ctx.replacement
			path[len(path)-1] = n.Type()
			descend = !ctx.stop
		}
	}

	if !descend || !n.Type().IsContainer() {
		return n, nil
	}

	return transformChildren(n, path, visitors)
}

func transformChildren(n ast.Node, path []ast.NodeType, visitors Visitors) (ast.Node, error) {
	switch n := n.(type) {
	case *ast.Program:
		body, changed, err := transformNodes(n.Body(), n, path, visitors)
		if err != nil {
			return nil, err
		}
		if changed {
			return ast.NewProgram(body), nil
		}
		return n, nil

	case *ast.List:
		list, err := transformList(n, n, path, visitors)
		if err != nil {
			return nil, err
		}
		return list, nil

	case *ast.Call:
		callee, err := transformNode(n.Callee(), n, path, visitors)
		if err != nil {
			return nil, err
		}
		if !ast.IsCallee(callee) {
			return nil, fmt.Errorf("%v: %w: callee replaced by %v", n.Location(), ErrInvalidReplacement, callee.Type())
		}

		list, err := transformList(n.List(), n, path, visitors)
		if err != nil {
			return nil, err
		}

		if callee != n.Callee() || list != n.List() {
			return ast.NewCall(callee, list, n.Location()), nil
		}
		return n, nil
	}

	return nil, unknownNodeType(n)
}

// transformList transforms the items of l, which belong to parent: l itself
// or the call l is the argument list of.
func transformList(l *ast.List, parent ast.Node, path []ast.NodeType, visitors Visitors) (*ast.List, error) {
	items, changed, err := transformNodes(l.Items(), parent, path, visitors)
	if err != nil {
		return nil, err
	}
	if changed {
		return ast.NewList(l.Bracket(), items, l.Location()), nil
	}
	return l, nil
}

// transformNodes transforms nodes in place and reports whether any of them
// was replaced by a different node.
func transformNodes(nodes []ast.Node, parent ast.Node, path []ast.NodeType, visitors Visitors) ([]ast.Node, bool, error) {
	changed := false
	for i := range nodes {
		n, err := transformNode(nodes[i], parent, path, visitors)
		if err != nil {
			return nil, false, err
		}
		if n != nodes[i] {
			nodes[i], changed = n, true
		}
	}
	return nodes, changed, nil
}

func describe(n ast.Node) string {
	if n == nil {
		return "nil"
	}
	return n.Type().String()
}

func unknownNodeType(n ast.Node) error {
	if n == nil {
		return fmt.Errorf("%w: nil", ast.ErrUnknownNodeType)
	}
	return fmt.Errorf("%v: %w: %v", n.Location(), ast.ErrUnknownNodeType, n.Type())
}
