package transform

import (
	"slices"

	"github.com/xiam/sxform/ast"
)

// Context is passed to a handler together with the node being visited.
type Context struct {
	parent ast.Node
	path   []ast.NodeType

	replacement ast.Node
	replaced    bool
	stop        bool
}

// Parent returns the container holding the node, or nil for the program.
// For the callee and the arguments of a call this is the call itself.
func (c *Context) Parent() ast.Node {
	return c.parent
}

// Path returns the types of the nodes from the program down to the visited
// node, both included.
func (c *Context) Path() []ast.NodeType {
	return slices.Clone(c.path)
}

// Replace substitutes the visited node with n. The children of n are
// transformed afterwards.
func (c *Context) Replace(n ast.Node) {
	c.replacement, c.replaced, c.stop = n, true, false
}

// ReplaceAndStop substitutes the visited node with n and leaves the children
// of n untouched.
func (c *Context) ReplaceAndStop(n ast.Node) {
	c.replacement, c.replaced, c.stop = n, true, true
}
