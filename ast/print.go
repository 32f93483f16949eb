package ast

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Print displays a human-readable representation of a node
func Print(n Node) {
	Fprint(os.Stdout, n)
}

// Fprint writes an indented, human-readable representation of a node to w.
func Fprint(w io.Writer, n Node) {
	printLevel(w, n, 0)
}

func printLevel(w io.Writer, n Node, level int) {
	indent := strings.Repeat("    ", level)
	if n == nil {
		fmt.Fprintf(w, "%s:nil\n", indent)
		return
	}
	fmt.Fprintf(w, "%s(%s) [%v]", indent, n.Type(), n.Location().Start())

	switch n := n.(type) {
	case *Program:
		fmt.Fprintln(w)
		for i := range n.body {
			printLevel(w, n.body[i], level+1)
		}

	case *List:
		fmt.Fprintln(w)
		for i := range n.items {
			printLevel(w, n.items[i], level+1)
		}

	case *Call:
		fmt.Fprintln(w)
		printLevel(w, n.callee, level+1)
		printLevel(w, n.list, level+1)

	case *Symbol:
		fmt.Fprintf(w, ": %s\n", n.value)

	case *String:
		fmt.Fprintf(w, ": %q\n", n.value)

	case *Comment:
		fmt.Fprintf(w, ": %q\n", n.text)

	default:
		fmt.Fprintln(w, ": ?")
	}
}

// Dump returns a compact one-line representation of a node, for example
// Program[Call(callee=Symbol(f), list=RoundList[Symbol(x)])].
func Dump(n Node) string {
	var b strings.Builder
	dump(&b, n)
	return b.String()
}

func dump(b *strings.Builder, n Node) {
	if n == nil {
		b.WriteString("nil")
		return
	}

	switch n := n.(type) {
	case *Program:
		b.WriteString("Program")
		dumpNodes(b, n.body)

	case *List:
		switch n.Type() {
		case NodeTypeRoundList:
			b.WriteString("RoundList")
		case NodeTypeSquareList:
			b.WriteString("SquareList")
		case NodeTypeFigureList:
			b.WriteString("FigureList")
		default:
			b.WriteString("List")
		}
		dumpNodes(b, n.items)

	case *Call:
		b.WriteString("Call(callee=")
		dump(b, n.callee)
		b.WriteString(", list=")
		dump(b, n.list)
		b.WriteString(")")

	case *Symbol:
		fmt.Fprintf(b, "Symbol(%s)", n.value)

	case *String:
		fmt.Fprintf(b, "String(%q)", n.value)

	case *Comment:
		fmt.Fprintf(b, "Comment(%q)", n.text)

	default:
		fmt.Fprintf(b, "%T", n)
	}
}

func dumpNodes(b *strings.Builder, nodes []Node) {
	b.WriteString("[")
	for i := range nodes {
		if i > 0 {
			b.WriteString(", ")
		}
		dump(b, nodes[i])
	}
	b.WriteString("]")
}
