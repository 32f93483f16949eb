package sxform

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/sxform/ast"
	"github.com/xiam/sxform/lexer"
	"github.com/xiam/sxform/parser"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{`'hello'`, `Program[String("hello")]`},
		{`(a b)`, `Program[RoundList[Symbol(a), Symbol(b)]]`},
		{`f(x y)`, `Program[Call(callee=Symbol(f), list=RoundList[Symbol(x), Symbol(y)])]`},
		{`f(x)(y)`, `Program[Call(callee=Call(callee=Symbol(f), list=RoundList[Symbol(x)]), list=RoundList[Symbol(y)])]`},
		{"; note\na", `Program[Comment(" note"), Symbol(a)]`},
	}

	for _, tc := range testCases {
		program, err := Parse([]byte(tc.In))
		require.NoError(t, err, tc.In)
		assert.Equal(t, tc.Out, ast.Dump(program), tc.In)
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte(`(a]`))
	assert.ErrorIs(t, err, parser.ErrUnexpectedToken)

	_, err = Parse([]byte(`(a`))
	assert.ErrorIs(t, err, parser.ErrUnclosedContainer)

	_, err = Parse([]byte(`'\z'`))
	assert.ErrorIs(t, err, lexer.ErrUnknownEscape)
}

func TestReader(t *testing.T) {
	input := strings.Repeat("defn(twice [f x] f(f(x))) ; higher order\n", 20) + "twice(inc)(1)"

	want, err := parser.ParseBytes([]byte(input))
	require.NoError(t, err)

	for _, size := range []int{1, 5, 16, 1024} {
		program, err := NewReader(strings.NewReader(input), "twice.lsp", lexer.WithChunkSize(size)).Parse()
		require.NoError(t, err)

		assert.Equal(t, ast.Dump(want), ast.Dump(program), "chunk size %d", size)
		assert.Equal(t, 41, program.Len())
	}
}

func TestReaderError(t *testing.T) {
	_, err := NewReader(strings.NewReader("(a\n b]"), "bad.lsp", lexer.WithChunkSize(2)).Parse()
	require.Error(t, err)
	assert.ErrorIs(t, err, parser.ErrUnexpectedToken)
	assert.Contains(t, err.Error(), "bad.lsp:2:3")
}
