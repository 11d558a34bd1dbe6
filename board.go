/*
Package chess implements a two-player chess move-legality engine with a
simplified capture-the-king ending.

The Board decides whether a move is legal under piece movement, path
blocking and capture rules, then applies it. There is no check, castling,
en passant, promotion or draw detection: a game ends when a king is taken.

Board Layout (row, column indices as used by the API):

	     0 1 2 3 4 5 6 7
	  0  r n b q k b n r   <- black back rank
	  1  p p p p p p p p
	  2  - - - - - - - -
	  3  - - - - - - - -
	  4  - - - - - - - -
	  5  - - - - - - - -
	  6  P P P P P P P P
	  7  R N B Q K B N R   <- white back rank

White pawns move toward row 0, black pawns toward row 7.

Usage:

	board := NewBoard(map[Position]Piece{
	    NewPosition(7, 4): NewPiece(King, White),
	    NewPosition(0, 4): NewPiece(Rook, Black),
	})
	if board.IsValidMove(0, 4, 7, 4) {
	    _ = board.MovePiece(0, 4, 7, 4)
	}
	fmt.Println(board.IsKingCaptured()) // true
*/
package chess

import (
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
)

const boardSize = 8

// Board owns the 8x8 grid of cells and the terminal flag.
//
// A Board is not safe for concurrent use. Every IsValidMove/MovePiece pair
// must run to completion before the next one starts; Game serializes them.
type Board struct {
	cells        [boardSize][boardSize]Cell
	kingCaptured bool
}

// NewBoard returns a board with the given pieces placed. The map should
// contain only occupied squares; positions off the board are ignored.
//
// Example:
//
//	board := NewBoard(map[Position]Piece{
//	    NewPosition(7, 4): NewPiece(King, White),
//	    NewPosition(0, 4): NewPiece(King, Black),
//	})
func NewBoard(squares map[Position]Piece) *Board {
	b := &Board{}
	for row := range boardSize {
		for col := range boardSize {
			c := Black
			if (row+col)%2 == 0 {
				c = White
			}
			b.cells[row][col] = newCell(c)
		}
	}
	for pos, p := range squares {
		if !b.InBounds(pos) || p == NoPiece {
			continue
		}
		b.cell(pos).SetPiece(p)
	}
	return b
}

// StartingBoard returns a board in the standard starting arrangement.
func StartingBoard() *Board {
	back := [boardSize]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	m := map[Position]Piece{}
	for col, t := range back {
		m[NewPosition(0, col)] = NewPiece(t, Black)
		m[NewPosition(1, col)] = NewPiece(Pawn, Black)
		m[NewPosition(boardSize-2, col)] = NewPiece(Pawn, White)
		m[NewPosition(boardSize-1, col)] = NewPiece(t, White)
	}
	return NewBoard(m)
}

// InBounds reports whether the position lies on the board.
func (b *Board) InBounds(p Position) bool {
	return onBoard(p)
}

// Cell returns the cell at the position, or false when it is off the board.
func (b *Board) Cell(p Position) (*Cell, bool) {
	if !b.InBounds(p) {
		return nil, false
	}
	return b.cell(p), true
}

func (b *Board) cell(p Position) *Cell {
	return &b.cells[p.Row][p.Col]
}

// IsEmpty reports whether no piece stands on the position. Positions off
// the board are always empty.
func (b *Board) IsEmpty(p Position) bool {
	return !b.InBounds(p) || b.cell(p).IsEmpty()
}

// Piece returns the piece on the position. The boolean is false when the
// position is empty or off the board.
func (b *Board) Piece(p Position) (Piece, bool) {
	if b.IsEmpty(p) {
		return NoPiece, false
	}
	return b.cell(p).occupant, true
}

// SquareMap returns a mapping of positions to pieces for occupied squares.
func (b *Board) SquareMap() map[Position]Piece {
	m := map[Position]Piece{}
	for row := range boardSize {
		for col := range boardSize {
			if p, ok := b.Piece(NewPosition(row, col)); ok {
				m[NewPosition(row, col)] = p
			}
		}
	}
	return m
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// IsKingCaptured reports whether a move has taken a king. Once true it
// stays true.
func (b *Board) IsKingCaptured() bool {
	return b.kingCaptured
}

// IsValidMove reports whether moving the piece on (fromRow, fromCol) to
// (toRow, toCol) is legal. It never changes the board.
func (b *Board) IsValidMove(fromRow, fromCol, toRow, toCol int) bool {
	return b.isValidMove(NewPosition(fromRow, fromCol), NewPosition(toRow, toCol))
}

func (b *Board) isValidMove(from, to Position) bool {
	if from == to || !b.InBounds(from) || !b.InBounds(to) || b.IsEmpty(from) {
		return false
	}
	p := b.cell(from).occupant
	return b.isDestinationValid(p, to) &&
		(p.ValidMove(from, to) || p.isPawnCapture(from, to)) &&
		b.hasNoPieceInPath(p, from, to) &&
		(p.Type != Pawn || b.isValidPawnMove(p, from, to))
}

// isDestinationValid rejects capturing a piece of the mover's own color.
func (b *Board) isDestinationValid(p Piece, to Position) bool {
	target, ok := b.Piece(to)
	return !ok || target.Color != p.Color
}

// hasNoPieceInPath reports whether every square strictly between from and
// to is empty. Knights jump; moves off a straight or diagonal line fail.
func (b *Board) hasNoPieceInPath(p Piece, from, to Position) bool {
	if p.Type == Knight {
		return true
	}
	dr, dc := to.Row-from.Row, to.Col-from.Col
	if !isStraight(dr, dc) && !isDiagonal(dr, dc) {
		return false
	}
	dir := DirectionOf(from, to)
	for sq := from.Translate(dir); sq != to; sq = sq.Translate(dir) {
		if !b.IsEmpty(sq) {
			return false
		}
	}
	return true
}

// isValidPawnMove derives the pawn's board facts and applies the contextual
// pawn rule. Pawns never capture straight ahead.
func (b *Board) isValidPawnMove(p Piece, from, to Position) bool {
	if from.Col == to.Col && !b.IsEmpty(to) {
		return false
	}
	forwardRow := from.Row + p.Color.forward()
	left := NewPosition(forwardRow, from.Col+p.Color.left())
	right := NewPosition(forwardRow, from.Col-p.Color.left())
	ctx := PawnContext{
		AtInitialRank:   from.Row == p.Color.pawnRank(),
		CanCaptureLeft:  b.hasOpponent(left, p.Color),
		CanCaptureRight: b.hasOpponent(right, p.Color),
	}
	return p.ValidMoveGivenContext(from, to, ctx)
}

func (b *Board) hasOpponent(pos Position, c Color) bool {
	p, ok := b.Piece(pos)
	return ok && p.Color != c
}

// MovePiece moves the piece on (fromRow, fromCol) to (toRow, toCol),
// capturing any opposing piece there. A captured king ends the game.
//
// The move is validated first; an illegal move returns a *MoveError
// wrapping ErrInvalidMove and leaves the board unchanged.
func (b *Board) MovePiece(fromRow, fromCol, toRow, toCol int) error {
	from, to := NewPosition(fromRow, fromCol), NewPosition(toRow, toCol)
	if !b.isValidMove(from, to) {
		return &MoveError{From: from, To: to, Err: ErrInvalidMove}
	}
	b.movePiece(from, to)
	return nil
}

// movePiece applies a validated move.
func (b *Board) movePiece(from, to Position) {
	dst := b.cell(to)
	if dst.occupant.Type == King {
		b.kingCaptured = true
	}
	if !dst.IsEmpty() {
		dst.RemovePiece()
	}
	dst.SetPiece(b.cell(from).occupant)
	b.cell(from).RemovePiece()
}

// Place puts a piece on the position, replacing any occupant. It is meant
// for setting up positions and does not check legality.
func (b *Board) Place(pos Position, p Piece) error {
	c, ok := b.Cell(pos)
	if !ok {
		return &MoveError{From: pos, To: pos, Err: ErrOutOfBounds}
	}
	c.SetPiece(p)
	return nil
}

// Draw returns a visual ASCII representation of the board with 1-indexed
// row and column headers. Capital letters represent white pieces, lowercase
// represent black pieces and empty squares are shown as "-".
//
// Example output:
//
//	  1 2 3 4 5 6 7 8
//	1 r n b q k b n r
//	2 p p p p p p p p
//	3 - - - - - - - -
//	...
func (b *Board) Draw() string {
	var sb strings.Builder
	sb.WriteString("  ")
	for col := range boardSize {
		sb.WriteString(strconv.Itoa(col + 1))
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')
	for row := range boardSize {
		sb.WriteString(strconv.Itoa(row + 1))
		for col := range boardSize {
			sb.WriteByte(' ')
			sb.WriteString(b.cells[row][col].occupant.Symbol())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String implements the fmt.Stringer interface and returns the board in
// the FEN piece placement format, rows listed from row 0.
func (b *Board) String() string {
	var sb strings.Builder
	for row := range boardSize {
		empty := 0
		for col := range boardSize {
			p, ok := b.Piece(NewPosition(row, col))
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.Symbol())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if row < boardSize-1 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// WithPieces returns a copy of the board with the given pieces placed on
// top of the current arrangement. The king-captured flag is not copied.
func (b *Board) WithPieces(squares map[Position]Piece) *Board {
	m := b.SquareMap()
	maps.Copy(m, squares)
	return NewBoard(m)
}
