// Package source describes positions and spans within source text.
package source

import (
	"fmt"
)

// ID identifies the source a location belongs to, usually a file name.
type ID string

// Cursor is a point within source text. Line and Column are 1-based, Index is
// the 0-based character offset from the beginning of the source.
type Cursor struct {
	Line   int `json:"line"`
	Column int `json:"column"`
	Index  int `json:"index"`
}

// Start is the cursor at the very beginning of a source.
var Start = Cursor{Line: 1, Column: 1, Index: 0}

// NewCursor creates a cursor.
func NewCursor(line, column, index int) Cursor {
	return Cursor{Line: line, Column: column, Index: index}
}

func (c Cursor) String() string {
	return fmt.Sprintf("%d:%d", c.Line, c.Column)
}

// Location is a region of source text, Start is inclusive and End is
// exclusive.
type Location struct {
	start Cursor
	end   Cursor
	id    ID
}

// NewLocation creates a location. If end lies before start the location is
// collapsed to start.
func NewLocation(start, end Cursor, id ID) Location {
	if end.Index < start.Index {
		end = start
	}
	return Location{start: start, end: end, id: id}
}

// Start returns the first cursor of the region.
func (l Location) Start() Cursor {
	return l.start
}

// End returns the cursor right after the region.
func (l Location) End() Cursor {
	return l.end
}

// Source returns the identifier of the source the location belongs to.
func (l Location) Source() ID {
	return l.id
}

// Len returns the number of characters covered by the location.
func (l Location) Len() int {
	return l.end.Index - l.start.Index
}

// WithStart returns a copy of the location starting at the given cursor.
func (l Location) WithStart(start Cursor) Location {
	return NewLocation(start, l.end, l.id)
}

// WithEnd returns a copy of the location ending at the given cursor.
func (l Location) WithEnd(end Cursor) Location {
	return NewLocation(l.start, end, l.id)
}

func (l Location) String() string {
	if l.id != "" {
		return fmt.Sprintf("%s:%v", l.id, l.start)
	}
	return l.start.String()
}
