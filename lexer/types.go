package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid    TokenType = iota
	TokenSymbol               // Bare word: "foo", "a\ b"
	TokenString               // Quoted string: 'hello'
	TokenComment              // Comment: "; to end of line"
	TokenOpenParen            // Opening bracket: "(", "[" or "{"
	TokenCloseParen           // Closing bracket: ")", "]" or "}"
)

var tokenNames = map[TokenType]string{
	TokenInvalid:    "invalid",
	TokenSymbol:     "symbol",
	TokenString:     "string",
	TokenComment:    "comment",
	TokenOpenParen:  "open_paren",
	TokenCloseParen: "close_paren",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

// BracketKind identifies one of the three independent bracket families.
type BracketKind uint8

// Bracket kinds
const (
	BracketNone   BracketKind = iota
	BracketRound              // ( )
	BracketSquare             // [ ]
	BracketFigure             // { }
)

var bracketNames = map[BracketKind]string{
	BracketNone:   "none",
	BracketRound:  "round",
	BracketSquare: "square",
	BracketFigure: "figure",
}

func (bk BracketKind) String() string {
	if v, ok := bracketNames[bk]; ok {
		return v
	}
	return bracketNames[BracketNone]
}

// Open returns the opening character of the bracket kind.
func (bk BracketKind) Open() rune {
	switch bk {
	case BracketRound:
		return '('
	case BracketSquare:
		return '['
	case BracketFigure:
		return '{'
	}
	return 0
}

// Close returns the closing character of the bracket kind.
func (bk BracketKind) Close() rune {
	switch bk {
	case BracketRound:
		return ')'
	case BracketSquare:
		return ']'
	case BracketFigure:
		return '}'
	}
	return 0
}

const (
	commentStart = ';'
	stringQuote  = '\''
	escapeStart  = '\\'
)

var tokenValues = map[TokenType][]rune{
	TokenOpenParen:  []rune{'(', '[', '{'},
	TokenCloseParen: []rune{')', ']', '}'},
}

var bracketKinds = map[rune]BracketKind{
	'(': BracketRound,
	')': BracketRound,
	'[': BracketSquare,
	']': BracketSquare,
	'{': BracketFigure,
	'}': BracketFigure,
}

var whitespace = []rune{' ', '\t', '\r', '\n'}

var (
	isOpenParen  = isTokenType(TokenOpenParen)
	isCloseParen = isTokenType(TokenCloseParen)
)

func isTokenType(tt TokenType) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range tokenValues[tt] {
			if v == r {
				return true
			}
		}
		return false
	}
}

func isWhitespace(r rune) bool {
	for _, v := range whitespace {
		if v == r {
			return true
		}
	}
	return false
}

// isDelimiter reports whether r terminates a symbol.
func isDelimiter(r rune) bool {
	return isOpenParen(r) || isCloseParen(r) || isWhitespace(r) || r == commentStart || r == stringQuote
}

func unescapeSymbol(r rune) (rune, bool) {
	if isDelimiter(r) || r == escapeStart {
		return r, true
	}
	return 0, false
}

func unescapeString(r rune) (rune, bool) {
	switch r {
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	case escapeStart, stringQuote:
		return r, true
	}
	return 0, false
}
