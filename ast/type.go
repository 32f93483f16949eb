package ast

import (
	"github.com/xiam/sxform/lexer"
)

// NodeType represents the type of the AST node
type NodeType uint8

// Node types
const (
	NodeTypeInvalid NodeType = iota

	NodeTypeProgram
	NodeTypeComment
	NodeTypeString
	NodeTypeSymbol
	NodeTypeRoundList
	NodeTypeSquareList
	NodeTypeFigureList
	NodeTypeCall
)

var nodeTypeName = map[NodeType]string{
	NodeTypeInvalid:    "Invalid",
	NodeTypeProgram:    "Program",
	NodeTypeComment:    "CommentLiteral",
	NodeTypeString:     "StringLiteral",
	NodeTypeSymbol:     "SymbolLiteral",
	NodeTypeRoundList:  "RoundListExpression",
	NodeTypeSquareList: "SquareListExpression",
	NodeTypeFigureList: "FigureListExpression",
	NodeTypeCall:       "CallExpression",
}

func (nt NodeType) String() string {
	s, ok := nodeTypeName[nt]
	if ok {
		return s
	}
	return nodeTypeName[NodeTypeInvalid]
}

// IsContainer returns true for node types that hold child nodes.
func (nt NodeType) IsContainer() bool {
	switch nt {
	case NodeTypeProgram, NodeTypeRoundList, NodeTypeSquareList, NodeTypeFigureList, NodeTypeCall:
		return true
	}
	return false
}

// IsList returns true for the three bare list types.
func (nt NodeType) IsList() bool {
	switch nt {
	case NodeTypeRoundList, NodeTypeSquareList, NodeTypeFigureList:
		return true
	}
	return false
}

// ListType returns the node type of a list opened with the given bracket.
func ListType(bk lexer.BracketKind) NodeType {
	switch bk {
	case lexer.BracketRound:
		return NodeTypeRoundList
	case lexer.BracketSquare:
		return NodeTypeSquareList
	case lexer.BracketFigure:
		return NodeTypeFigureList
	}
	return NodeTypeInvalid
}

// Valid returns true if nt is one of the known node types.
func (nt NodeType) Valid() bool {
	_, ok := nodeTypeName[nt]
	return ok && nt != NodeTypeInvalid
}
