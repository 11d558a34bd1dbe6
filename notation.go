package chess

import (
	"strconv"
	"strings"
)

// Notation is the interface implemented by objects that can encode and
// decode a move as a pair of positions.
type Notation interface {
	Encode(from, to Position) string
	Decode(s string) (from, to Position, err error)
}

// UCINotation is a more computer friendly alternative to algebraic
// notation. It consists of the starting square followed by the ending
// square, e.g. "e2e4".
type UCINotation struct{}

// String implements the fmt.Stringer interface.
func (UCINotation) String() string {
	return "UCI Notation"
}

// Encode implements the Notation interface.
func (UCINotation) Encode(from, to Position) string {
	return from.String() + to.String()
}

// Decode implements the Notation interface.
func (UCINotation) Decode(s string) (Position, Position, error) {
	const uciLen = 4
	s = strings.TrimSpace(s)
	if len(s) != uciLen {
		return Position{}, Position{}, &NotationError{Input: s, Msg: "invalid UCI move"}
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return Position{}, Position{}, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return Position{}, Position{}, err
	}
	return from, to, nil
}

// CoordinateNotation writes a move as four 1-indexed numbers: from row,
// from column, to row, to column, matching the headers of Board.Draw.
// For example "7 5 5 5" moves the white king's pawn two rows forward.
type CoordinateNotation struct{}

// String implements the fmt.Stringer interface.
func (CoordinateNotation) String() string {
	return "Coordinate Notation"
}

// Encode implements the Notation interface.
func (CoordinateNotation) Encode(from, to Position) string {
	nums := []int{from.Row + 1, from.Col + 1, to.Row + 1, to.Col + 1}
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, " ")
}

// Decode implements the Notation interface. Values outside 1-8 decode to
// off-board positions, which the board rejects as illegal.
func (CoordinateNotation) Decode(s string) (Position, Position, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) != 4 {
		return Position{}, Position{}, &NotationError{Input: s, Msg: "expected four coordinates"}
	}
	var nums [4]int
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return Position{}, Position{}, &NotationError{Input: s, Msg: "invalid coordinate", Pos: i}
		}
		nums[i] = n - 1
	}
	return NewPosition(nums[0], nums[1]), NewPosition(nums[2], nums[3]), nil
}
