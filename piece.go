package chess

// Color represents the color of a piece or a board cell.
type Color int8

const (
	// NoColor is only reported for empty squares.
	NoColor Color = iota
	// White represents the color white.
	White
	// Black represents the color black.
	Black
)

// Other returns the opposing color.
func (c Color) Other() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColor
}

// String implements the fmt.Stringer interface.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return "No Color"
}

// forward is the row delta of a single pawn step.
func (c Color) forward() int {
	if c == White {
		return -1
	}
	return 1
}

// left is the column delta of the pawn's left hand side.
func (c Color) left() int {
	if c == White {
		return -1
	}
	return 1
}

// pawnRank is the row pawns of this color start on.
func (c Color) pawnRank() int {
	if c == Black {
		return 1
	}
	return boardSize - 2
}

// PieceType is the kind of a piece independent of its color.
type PieceType int8

const (
	// NoPieceType is the zero value used for empty squares.
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// PieceTypes returns every piece type.
func PieceTypes() [6]PieceType {
	return [6]PieceType{Pawn, Knight, Bishop, Rook, Queen, King}
}

func (p PieceType) String() string {
	switch p {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	}
	return ""
}

func (p PieceType) letter() byte {
	switch p {
	case Pawn:
		return 'p'
	case Knight:
		return 'n'
	case Bishop:
		return 'b'
	case Rook:
		return 'r'
	case Queen:
		return 'q'
	case King:
		return 'k'
	}
	return '-'
}

// A Piece is a piece type with a color. The zero value is NoPiece.
type Piece struct {
	Type  PieceType
	Color Color
}

// NoPiece is returned for empty or off-board squares.
var NoPiece = Piece{}

// NewPiece returns a piece of the given type and color.
func NewPiece(t PieceType, c Color) Piece {
	return Piece{Type: t, Color: c}
}

// String returns the color and type, e.g. "White Pawn".
func (p Piece) String() string {
	if p == NoPiece {
		return "no piece"
	}
	return p.Color.String() + " " + p.Type.String()
}

// Symbol returns the piece letter, upper case for white.
func (p Piece) Symbol() string {
	ch := p.Type.letter()
	if p.Color == White && ch != '-' {
		ch -= 'a' - 'A'
	}
	return string(ch)
}

// Glyph returns the unicode chess figure for the piece.
func (p Piece) Glyph() string {
	if p.Color == White {
		return whiteGlyphs[p.Type]
	}
	return blackGlyphs[p.Type]
}

//nolint:gochecknoglobals // lookup tables.
var (
	whiteGlyphs = map[PieceType]string{
		King: "♔", Queen: "♕", Rook: "♖", Bishop: "♗", Knight: "♘", Pawn: "♙",
	}
	blackGlyphs = map[PieceType]string{
		King: "♚", Queen: "♛", Rook: "♜", Bishop: "♝", Knight: "♞", Pawn: "♟",
	}
)

// ValidMove reports whether the shape of the displacement from one position
// to another is a legal move for the piece. Board occupancy is not
// considered.
//
// A pawn may step one row forward, or two rows forward from its initial
// rank. Diagonal pawn captures need board context; see ValidMoveGivenContext.
func (p Piece) ValidMove(from, to Position) bool {
	dr, dc := to.Row-from.Row, to.Col-from.Col
	switch p.Type {
	case Pawn:
		if dc != 0 {
			return false
		}
		fwd := p.Color.forward()
		return dr == fwd || (dr == 2*fwd && from.Row == p.Color.pawnRank())
	case Knight:
		ar, ac := abs(dr), abs(dc)
		return (ar == 1 && ac == 2) || (ar == 2 && ac == 1)
	case Bishop:
		return isDiagonal(dr, dc)
	case Rook:
		return isStraight(dr, dc)
	case Queen:
		return isStraight(dr, dc) || isDiagonal(dr, dc)
	case King:
		return max(abs(dr), abs(dc)) == 1
	}
	return false
}

// PawnContext holds the board facts a pawn cannot observe itself.
type PawnContext struct {
	AtInitialRank   bool
	CanCaptureLeft  bool
	CanCaptureRight bool
}

// ValidMoveGivenContext reports whether a pawn move is legal given facts
// derived from the board. Left and right are from the pawn's point of view.
// It returns false for every other piece type.
func (p Piece) ValidMoveGivenContext(from, to Position, ctx PawnContext) bool {
	if p.Type != Pawn {
		return false
	}
	dr, dc := to.Row-from.Row, to.Col-from.Col
	fwd, left := p.Color.forward(), p.Color.left()
	switch {
	case dc == 0 && dr == fwd:
		return true
	case dc == 0 && dr == 2*fwd:
		return ctx.AtInitialRank
	case dr == fwd && dc == left:
		return ctx.CanCaptureLeft
	case dr == fwd && dc == -left:
		return ctx.CanCaptureRight
	}
	return false
}

// isPawnCapture reports whether the displacement is a single forward
// diagonal step for the pawn's color.
func (p Piece) isPawnCapture(from, to Position) bool {
	return p.Type == Pawn &&
		to.Row-from.Row == p.Color.forward() &&
		abs(to.Col-from.Col) == 1
}

func isStraight(dr, dc int) bool {
	return (dr == 0) != (dc == 0)
}

func isDiagonal(dr, dc int) bool {
	return dr != 0 && abs(dr) == abs(dc)
}
