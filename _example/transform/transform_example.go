package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/xiam/sxform/ast"
	"github.com/xiam/sxform/parser"
	"github.com/xiam/sxform/transform"
	"github.com/xiam/sxform/traverse"
)

func printTree(program *ast.Program) {
	depth := map[ast.Node]int{}

	_, err := traverse.Traverse(program, traverse.Visitors{
		ast.NodeTypeProgram:    printNode(depth),
		ast.NodeTypeCall:       printNode(depth),
		ast.NodeTypeRoundList:  printNode(depth),
		ast.NodeTypeSquareList: printNode(depth),
		ast.NodeTypeFigureList: printNode(depth),
		ast.NodeTypeSymbol:     printNode(depth),
		ast.NodeTypeString:     printNode(depth),
		ast.NodeTypeComment:    printNode(depth),
	})
	if err != nil {
		log.Fatal("traverse.Traverse:", err)
	}
}

func printNode(depth map[ast.Node]int) traverse.Handler {
	return func(node, parent ast.Node) error {
		level := 0
		if parent != nil {
			level = depth[parent] + 1
		}
		depth[node] = level

		indent := strings.Repeat("  ", level)
		switch n := node.(type) {
		case *ast.Symbol:
			fmt.Printf("%s<%s>%s</%s>\n", indent, n.Type(), n.Value(), n.Type())
		case *ast.String:
			fmt.Printf("%s<%s>%q</%s>\n", indent, n.Type(), n.Value(), n.Type())
		case *ast.Comment:
			fmt.Printf("%s<!--%s -->\n", indent, n.Text())
		default:
			fmt.Printf("%s<%s>\n", indent, n.Type())
		}
		return nil
	}
}

func main() {
	input := `fn_a(fn_b[89 :A :B [67 3.27]] ; numbers
	fn_c(66 3 53 'Hello world!' 😊))`

	root, err := parser.ParseBytes([]byte(input))
	if err != nil {
		log.Fatal("parser.ParseBytes:", err)
	}

	upper, err := transform.Transform(root, transform.Visitors{
		ast.NodeTypeString: func(ctx *transform.Context, node ast.Node) error {
			s := node.(*ast.String)
			ctx.Replace(ast.NewString(strings.ToUpper(s.Value()), s.Location()))
			return nil
		},
	})
	if err != nil {
		log.Fatal("transform.Transform:", err)
	}

	printTree(upper)
}
