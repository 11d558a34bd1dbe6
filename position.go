package chess

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"
)

// A Position is a row and column on the board. Row 0 is the top row of the
// printed board (black's back rank) and column 0 is file a.
//
// Positions carry no bounds information; the Board decides whether a
// position lies on it.
type Position struct {
	Row int
	Col int
}

// NewPosition returns the position at the given row and column.
func NewPosition(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Translate returns the position one step away in the given direction.
func (p Position) Translate(d Direction) Position {
	return Position{Row: p.Row + d.RowOffset, Col: p.Col + d.ColOffset}
}

// String returns the algebraic square name, e.g. "e2", or "(row,col)" for
// positions off the board.
func (p Position) String() string {
	if !onBoard(p) {
		return "(" + strconv.Itoa(p.Row) + "," + strconv.Itoa(p.Col) + ")"
	}
	return string([]byte{byte('a' + p.Col), byte('1' + boardSize - 1 - p.Row)})
}

// ParseSquare converts an algebraic square name into a Position.
func ParseSquare(s string) (Position, error) {
	const squareLen = 2
	if len(s) != squareLen || !isFile(s[0]) || !isRank(s[1]) {
		return Position{}, &NotationError{Input: s, Msg: "invalid square"}
	}
	return Position{
		Row: boardSize - 1 - int(s[1]-'1'),
		Col: int(s[0] - 'a'),
	}, nil
}

// A Direction is a unit step along a straight or diagonal line.
// Each offset is one of -1, 0 or 1.
type Direction struct {
	RowOffset int
	ColOffset int
}

// DirectionOf returns the unit step from one position toward another.
// It is only meaningful when the two positions share a row, a column or a
// diagonal.
func DirectionOf(from, to Position) Direction {
	return Direction{
		RowOffset: sign(to.Row - from.Row),
		ColOffset: sign(to.Col - from.Col),
	}
}

func (d Direction) String() string {
	return fmt.Sprintf("(%+d,%+d)", d.RowOffset, d.ColOffset)
}

func onBoard(p Position) bool {
	return p.Row >= 0 && p.Row < boardSize && p.Col >= 0 && p.Col < boardSize
}

func sign[T constraints.Signed](v T) T {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

func isFile(ch byte) bool {
	return ch >= 'a' && ch <= 'h'
}

func isRank(ch byte) bool {
	return ch >= '1' && ch <= '8'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
