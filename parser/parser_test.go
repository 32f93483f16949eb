package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/sxform/ast"
	"github.com/xiam/sxform/lexer"
	"github.com/xiam/sxform/source"
)

func tokenize(t *testing.T, in string) []lexer.Token {
	t.Helper()
	tokens, err := lexer.TokenizeBytes([]byte(in))
	require.NoError(t, err)
	return tokens
}

func mustParse(t *testing.T, in string) *ast.Program {
	t.Helper()
	program, err := ParseBytes([]byte(in))
	require.NoError(t, err)
	require.NotNil(t, program)
	return program
}

func TestParserBuildTree(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{
			In:  ``,
			Out: `Program[]`,
		},
		{
			In:  `[]`,
			Out: `Program[SquareList[]]`,
		},
		{
			In:  "[1\n 2\n\n3\n]",
			Out: `Program[SquareList[Symbol(1), Symbol(2), Symbol(3)]]`,
		},
		{
			In:  `[1 [ 1 2 3 ] 3] 4 [5 6] 7 8`,
			Out: `Program[SquareList[Symbol(1), SquareList[Symbol(1), Symbol(2), Symbol(3)], Symbol(3)], Symbol(4), SquareList[Symbol(5), Symbol(6)], Symbol(7), Symbol(8)]`,
		},
		{
			In:  `() (1) ()`,
			Out: `Program[RoundList[], RoundList[Symbol(1)], RoundList[]]`,
		},
		{
			In:  `{:foo 1}`,
			Out: `Program[FigureList[Symbol(:foo), Symbol(1)]]`,
		},
		{
			In:  "(fn [a b c]\n\n\t [\n(print a\n\n b c)])",
			Out: `Program[RoundList[Symbol(fn), SquareList[Symbol(a), Symbol(b), Symbol(c)], SquareList[RoundList[Symbol(print), Symbol(a), Symbol(b), Symbol(c)]]]]`,
		},
		{
			In:  `defn(square [x] mul(x x))`,
			Out: `Program[Call(callee=Symbol(defn), list=RoundList[Symbol(square), SquareList[Symbol(x)], Call(callee=Symbol(mul), list=RoundList[Symbol(x), Symbol(x)])])]`,
		},
		{
			In:  `print('hello\tworld')`,
			Out: `Program[Call(callee=Symbol(print), list=RoundList[String("hello\tworld")])]`,
		},
		{
			In:  `a(b)(c)(d)`,
			Out: `Program[Call(callee=Call(callee=Call(callee=Symbol(a), list=RoundList[Symbol(b)]), list=RoundList[Symbol(c)]), list=RoundList[Symbol(d)])]`,
		},
	}

	for _, tc := range testCases {
		program := mustParse(t, tc.In)
		assert.Equal(t, tc.Out, ast.Dump(program), tc.In)
	}
}

func TestParserLocations(t *testing.T) {
	program := mustParse(t, "f(x)(y)\n[a]")
	require.Equal(t, 2, program.Len())

	outer := program.At(0).(*ast.Call)
	assert.Equal(t, source.NewCursor(1, 1, 0), outer.Location().Start())
	assert.Equal(t, source.NewCursor(1, 8, 7), outer.Location().End())
	assert.Equal(t, source.NewCursor(1, 5, 4), outer.List().Location().Start())
	assert.Equal(t, source.NewCursor(1, 8, 7), outer.List().Location().End())

	inner := outer.Callee().(*ast.Call)
	assert.Equal(t, 0, inner.Location().Start().Index)
	assert.Equal(t, 4, inner.Location().End().Index)
	assert.Equal(t, 1, inner.List().Location().Start().Index)
	assert.Equal(t, 4, inner.List().Location().End().Index)

	callee := inner.Callee().(*ast.Symbol)
	assert.Equal(t, 1, callee.Location().Len())

	list := program.At(1).(*ast.List)
	assert.Equal(t, source.NewCursor(2, 1, 8), list.Location().Start())
	assert.Equal(t, source.NewCursor(2, 4, 11), list.Location().End())

	assert.Equal(t, 0, program.Location().Start().Index)
	assert.Equal(t, 11, program.Location().End().Index)
}

func TestParseStreamWithChunks(t *testing.T) {
	input := "defn(f [x]\n  ; doubles x\n  mul(x 2))\nf(21)('done')"
	chunks := []string{"de", "fn(f [", "x]\n  ; dou", "bles x\n  mul(x 2", "))\nf(21)(", "'do", "ne')"}

	want := mustParse(t, input)

	lx := lexer.NewState("stream")
	ps := NewState()
	for i, chunk := range chunks {
		n := len(lx.Tokens())

		var err error
		lx, err = lexer.Tokenize(lx, chunk, i == len(chunks)-1)
		require.NoError(t, err)

		ps, err = ParseStream(ps, lx.Tokens()[n:])
		require.NoError(t, err)
	}

	res, err := Parse(ps, nil)
	require.NoError(t, err)

	assert.Equal(t, ast.Dump(want), ast.Dump(res.Program))
	assert.Len(t, res.Tokens, len(lx.Tokens()))
}

func TestParseStreamOpenContainers(t *testing.T) {
	tokens := tokenize(t, "(a f(x")

	s, err := ParseStream(NewState(), tokens)
	require.NoError(t, err)

	assert.Equal(t, 2, s.Depth())
	assert.Equal(t, []ast.NodeType{ast.NodeTypeRoundList, ast.NodeTypeCall}, s.Open())
	assert.Equal(t, 0, s.Program().Len())
	assert.Len(t, s.Tokens(), len(tokens))

	_, err = Parse(s, nil)
	assert.ErrorIs(t, err, ErrUnclosedContainer)
}

func TestStateSnapshot(t *testing.T) {
	all := tokenize(t, "(a f(x)) (b)")
	other := tokenize(t, "(a f g)")

	base, err := ParseStream(NewState(), all[:3])
	require.NoError(t, err)

	left, err := Parse(base, all[3:])
	require.NoError(t, err)

	right, err := Parse(base, other[3:])
	require.NoError(t, err)

	assert.Equal(t,
		`Program[RoundList[Symbol(a), Call(callee=Symbol(f), list=RoundList[Symbol(x)])], RoundList[Symbol(b)]]`,
		ast.Dump(left.Program),
	)
	assert.Equal(t,
		`Program[RoundList[Symbol(a), Symbol(f), Symbol(g)]]`,
		ast.Dump(right.Program),
	)

	assert.Equal(t, 1, base.Depth())
	assert.Len(t, base.Tokens(), 3)

	_, err = ParseStream(base, tokenize(t, "]"))
	require.Error(t, err)

	retry, err := Parse(base, other[3:])
	require.NoError(t, err)
	assert.Equal(t, ast.Dump(right.Program), ast.Dump(retry.Program))
}

func TestErrorMessages(t *testing.T) {
	testCases := []struct {
		In  string
		Msg string
	}{
		{`(a]`, `1:3: unexpected token "]": expected ')'`},
		{`(a`, `1:1: unclosed container "(": missing ')'`},
		{`a}`, `1:2: unmatched closing bracket "}"`},
		{`(a)(b)`, `1:4: unexpected token "(": can't call RoundListExpression`},
	}

	for _, tc := range testCases {
		_, err := ParseBytes([]byte(tc.In))
		require.Error(t, err)
		assert.Equal(t, tc.Msg, err.Error(), tc.In)
	}
}

func TestErrorToken(t *testing.T) {
	_, err := ParseBytes([]byte("(ok)\n  [x)"))
	require.Error(t, err)

	var parseErr *Error
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, lexer.TokenCloseParen, parseErr.Token.Type())
	assert.Equal(t, lexer.BracketRound, parseErr.Token.Bracket())
	assert.Equal(t, source.NewCursor(2, 5, 9), parseErr.Location.Start())
}

func TestLexerErrorPropagates(t *testing.T) {
	_, err := ParseBytes([]byte(`(a '\q')`))
	assert.ErrorIs(t, err, lexer.ErrUnknownEscape)
}

func TestUnknownTokenType(t *testing.T) {
	loc := source.NewLocation(source.Start, source.NewCursor(1, 2, 1), "")
	_, err := ParseStream(NewState(), []lexer.Token{lexer.NewToken(lexer.TokenInvalid, "?", loc)})
	assert.ErrorIs(t, err, ErrUnexpectedToken)
}
