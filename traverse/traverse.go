// Package traverse visits AST trees in pre-order for analysis.
package traverse

import (
	"fmt"

	"github.com/xiam/sxform/ast"
)

// Handler is called for every node of the type it was registered for, with
// the container holding it. The parent of the program is nil.
type Handler func(node, parent ast.Node) error

// Visitors maps node types to handlers.
type Visitors map[ast.NodeType]Handler

// Traverse visits every node of p depth-first: a node before its children
// and children from left to right. The callee of a call is visited before
// its arguments. Traverse returns p itself.
func Traverse(p *ast.Program, visitors Visitors) (*ast.Program, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: nil", ast.ErrUnknownNodeType)
	}
	if err := traverseNode(p, nil, visitors); err != nil {
		return nil, err
	}
	return p, nil
}

func traverseNodes(nodes []ast.Node, parent ast.Node, visitors Visitors) error {
	for i := range nodes {
		if err := traverseNode(nodes[i], parent, visitors); err != nil {
			return err
		}
	}
	return nil
}

func traverseNode(n, parent ast.Node, visitors Visitors) error {
	if n == nil || !n.Type().Valid() {
		return unknownNodeType(n)
	}

	if visit, ok := visitors[n.Type()]; ok {
		if err := visit(n, parent); err != nil {
			return err
		}
	}

	switch n.Type() {
	case ast.NodeTypeProgram:
		return traverseNodes(n.(*ast.Program).Body(), n, visitors)

	case ast.NodeTypeCall:
		call := n.(*ast.Call)
		if err := traverseNode(call.Callee(), n, visitors); err != nil {
			return err
		}
		return traverseNodes(call.List().Items(), n, visitors)

	case ast.NodeTypeRoundList, ast.NodeTypeSquareList, ast.NodeTypeFigureList:
		return traverseNodes(n.(*ast.List).Items(), n, visitors)

	case ast.NodeTypeSymbol, ast.NodeTypeString, ast.NodeTypeComment:
		return nil
	}

	return unknownNodeType(n)
}

func unknownNodeType(n ast.Node) error {
	if n == nil {
		return fmt.Errorf("%w: nil", ast.ErrUnknownNodeType)
	}
	return fmt.Errorf("%v: %w: %v", n.Location(), ast.ErrUnknownNodeType, n.Type())
}
