package sxform_test

import (
	"fmt"
	"log"

	"github.com/xiam/sxform"
	"github.com/xiam/sxform/ast"
	"github.com/xiam/sxform/transform"
	"github.com/xiam/sxform/traverse"
)

func Example() {
	program, err := sxform.Parse([]byte("defn(square [x] mul(x x)) ; square it\nsquare(4)"))
	if err != nil {
		log.Fatal("sxform.Parse: ", err)
	}

	renamed, err := transform.Transform(program, transform.Visitors{
		ast.NodeTypeSymbol: func(ctx *transform.Context, node ast.Node) error {
			if sym := node.(*ast.Symbol); sym.Value() == "x" {
				ctx.Replace(ast.NewSymbol("n", sym.Location()))
			}
			return nil
		},
	})
	if err != nil {
		log.Fatal("transform.Transform: ", err)
	}

	_, err = traverse.Traverse(renamed, traverse.Visitors{
		ast.NodeTypeCall: func(node, parent ast.Node) error {
			call := node.(*ast.Call)
			fmt.Printf("call %s at %v with %d arguments\n", call.Callee().(*ast.Symbol).Value(), call.Location().Start(), call.List().Len())
			return nil
		},
	})
	if err != nil {
		log.Fatal("traverse.Traverse: ", err)
	}

	fmt.Println(ast.Dump(renamed.At(0)))
	fmt.Println(renamed.At(2) == program.At(2))

	// Output:
	// call defn at 1:1 with 3 arguments
	// call mul at 1:17 with 2 arguments
	// call square at 2:1 with 1 arguments
	// Call(callee=Symbol(defn), list=RoundList[Symbol(square), SquareList[Symbol(n)], Call(callee=Symbol(mul), list=RoundList[Symbol(n), Symbol(n)])])
	// true
}
