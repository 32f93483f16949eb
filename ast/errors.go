package ast

import (
	"errors"
)

var (
	ErrUnknownNodeType = errors.New("unknown node type")
)
