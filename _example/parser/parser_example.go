package main

import (
	"log"

	"github.com/xiam/sxform/ast"
	"github.com/xiam/sxform/parser"
)

func main() {
	input := `fn_a(fn_b[89 :A :B [67 3.27]] fn_c(66 3 53 'Hello world!' 😊))(curried)`

	root, err := parser.ParseBytes([]byte(input))
	if err != nil {
		log.Fatal("parser.ParseBytes:", err)
	}

	ast.Print(root)
}
