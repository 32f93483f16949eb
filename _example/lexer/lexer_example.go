package main

import (
	"fmt"
	"log"

	"github.com/xiam/sxform/lexer"
)

func main() {
	chunks := []string{
		"(fn_a ; comm",
		"ent\n\t(fn_b [89 'A' :B [67 3.27]])\n",
		"\t(fn_c 66 3 53 'Hello\\tworld!'))",
	}

	state := lexer.NewState("example")
	for i, chunk := range chunks {
		var err error
		state, err = lexer.Tokenize(state, chunk, i == len(chunks)-1)
		if err != nil {
			log.Fatal("lexer.Tokenize:", err)
		}
	}

	for i, tok := range state.Tokens() {
		line, col := tok.Pos()
		fmt.Printf("token[%d] (type: %v, line: %d, col: %d)\n\t-> %q\n\n", i, tok.Type(), line, col, tok.Text())
	}
}
