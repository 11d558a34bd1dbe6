package chess

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pos(row, col int) Position {
	return NewPosition(row, col)
}

func TestOutOfBoundsQueries(t *testing.T) {
	b := StartingBoard()
	for _, p := range []Position{pos(-1, 0), pos(0, -1), pos(8, 0), pos(0, 8), pos(8, 8), pos(-3, 12)} {
		assert.True(t, b.IsEmpty(p), p.String())
		piece, ok := b.Piece(p)
		assert.False(t, ok, p.String())
		assert.Equal(t, NoPiece, piece)
		_, ok = b.Cell(p)
		assert.False(t, ok, p.String())
	}
	assert.False(t, b.IsValidMove(6, 4, 8, 4))
	assert.False(t, b.IsValidMove(-1, 0, 0, 0))
}

func TestIsValidMoveHasNoSideEffects(t *testing.T) {
	b := StartingBoard()
	require.NoError(t, b.MovePiece(6, 4, 4, 4))
	before := b.SquareMap()
	fen := b.String()

	for _, from := range allPositions() {
		for _, to := range allPositions() {
			b.IsValidMove(from.Row, from.Col, to.Row, to.Col)
		}
	}

	assert.Equal(t, before, b.SquareMap())
	assert.Equal(t, fen, b.String())
	assert.False(t, b.IsKingCaptured())
}

func TestNullMoveRejected(t *testing.T) {
	b := StartingBoard()
	for _, p := range allPositions() {
		assert.False(t, b.IsValidMove(p.Row, p.Col, p.Row, p.Col), p.String())
	}
}

func TestEmptyOriginRejected(t *testing.T) {
	b := StartingBoard()
	assert.False(t, b.IsValidMove(4, 4, 3, 4))
}

func TestNoFriendlyFire(t *testing.T) {
	tests := []struct {
		mover    Piece
		from, to Position
	}{
		{NewPiece(Rook, White), pos(7, 0), pos(4, 0)},
		{NewPiece(Bishop, Black), pos(0, 2), pos(3, 5)},
		{NewPiece(Queen, White), pos(4, 4), pos(4, 7)},
		{NewPiece(King, Black), pos(0, 4), pos(1, 4)},
		{NewPiece(Knight, White), pos(7, 1), pos(5, 2)},
		{NewPiece(Pawn, White), pos(5, 4), pos(4, 3)},
	}
	for _, tt := range tests {
		friend := NewBoard(map[Position]Piece{tt.from: tt.mover, tt.to: NewPiece(Pawn, tt.mover.Color)})
		assert.False(t, friend.IsValidMove(tt.from.Row, tt.from.Col, tt.to.Row, tt.to.Col), "%s onto friend", tt.mover)

		foe := NewBoard(map[Position]Piece{tt.from: tt.mover, tt.to: NewPiece(Pawn, tt.mover.Color.Other())})
		assert.True(t, foe.IsValidMove(tt.from.Row, tt.from.Col, tt.to.Row, tt.to.Col), "%s onto foe", tt.mover)
	}
}

func TestPathBlocking(t *testing.T) {
	tests := []struct {
		name     string
		mover    Piece
		from, to Position
		blocker  Position
	}{
		{"rook file", NewPiece(Rook, White), pos(7, 0), pos(2, 0), pos(5, 0)},
		{"rook rank", NewPiece(Rook, Black), pos(3, 0), pos(3, 7), pos(3, 6)},
		{"bishop", NewPiece(Bishop, White), pos(7, 2), pos(3, 6), pos(6, 3)},
		{"queen diagonal", NewPiece(Queen, Black), pos(0, 0), pos(7, 7), pos(4, 4)},
		{"queen straight", NewPiece(Queen, White), pos(7, 3), pos(1, 3), pos(2, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unblocked := NewBoard(map[Position]Piece{tt.from: tt.mover})
			assert.True(t, unblocked.IsValidMove(tt.from.Row, tt.from.Col, tt.to.Row, tt.to.Col))

			for _, c := range []Color{White, Black} {
				blocked := NewBoard(map[Position]Piece{tt.from: tt.mover, tt.blocker: NewPiece(Knight, c)})
				assert.False(t, blocked.IsValidMove(tt.from.Row, tt.from.Col, tt.to.Row, tt.to.Col), "blocked by %s", c)
			}
		})
	}
}

func TestKnightJumps(t *testing.T) {
	b := StartingBoard()
	assert.True(t, b.IsValidMove(7, 1, 5, 2))
	assert.True(t, b.IsValidMove(7, 1, 5, 0))
	assert.True(t, b.IsValidMove(0, 6, 2, 5))
	assert.False(t, b.IsValidMove(7, 1, 6, 3), "own pawn on d2")
}

func TestStartingBoardMoves(t *testing.T) {
	b := StartingBoard()
	assert.False(t, b.IsValidMove(7, 0, 5, 0), "rook behind pawn")
	assert.False(t, b.IsValidMove(7, 2, 5, 4), "bishop behind pawn")
	assert.False(t, b.IsValidMove(7, 4, 6, 4), "king onto own pawn")
	assert.True(t, b.IsValidMove(6, 0, 4, 0))
	assert.True(t, b.IsValidMove(1, 7, 3, 7))
}

func TestPawnRules(t *testing.T) {
	whitePawn, blackPawn := NewPiece(Pawn, White), NewPiece(Pawn, Black)
	tests := []struct {
		name     string
		pieces   map[Position]Piece
		from, to Position
		want     bool
	}{
		{"two-step from initial rank", map[Position]Piece{pos(6, 4): whitePawn}, pos(6, 4), pos(4, 4), true},
		{"two-step blocked midway", map[Position]Piece{pos(6, 4): whitePawn, pos(5, 4): blackPawn}, pos(6, 4), pos(4, 4), false},
		{"two-step onto piece", map[Position]Piece{pos(6, 4): whitePawn, pos(4, 4): blackPawn}, pos(6, 4), pos(4, 4), false},
		{"single step", map[Position]Piece{pos(5, 4): whitePawn}, pos(5, 4), pos(4, 4), true},
		{"single step cannot capture", map[Position]Piece{pos(5, 4): whitePawn, pos(4, 4): blackPawn}, pos(5, 4), pos(4, 4), false},
		{"two-step off initial rank", map[Position]Piece{pos(5, 4): whitePawn}, pos(5, 4), pos(3, 4), false},
		{"diagonal capture left", map[Position]Piece{pos(5, 4): whitePawn, pos(4, 3): blackPawn}, pos(5, 4), pos(4, 3), true},
		{"diagonal capture right", map[Position]Piece{pos(5, 4): whitePawn, pos(4, 5): NewPiece(Queen, Black)}, pos(5, 4), pos(4, 5), true},
		{"diagonal onto empty", map[Position]Piece{pos(5, 4): whitePawn}, pos(5, 4), pos(4, 3), false},
		{"diagonal onto own piece", map[Position]Piece{pos(5, 4): whitePawn, pos(4, 3): NewPiece(Rook, White)}, pos(5, 4), pos(4, 3), false},
		{"backwards capture", map[Position]Piece{pos(5, 4): whitePawn, pos(6, 3): blackPawn}, pos(5, 4), pos(6, 3), false},
		{"long diagonal", map[Position]Piece{pos(5, 4): whitePawn, pos(3, 2): blackPawn}, pos(5, 4), pos(3, 2), false},
		{"black two-step", map[Position]Piece{pos(1, 3): blackPawn}, pos(1, 3), pos(3, 3), true},
		{"black capture", map[Position]Piece{pos(1, 3): blackPawn, pos(2, 4): whitePawn}, pos(1, 3), pos(2, 4), true},
		{"black capture other side", map[Position]Piece{pos(1, 3): blackPawn, pos(2, 2): whitePawn}, pos(1, 3), pos(2, 2), true},
		{"black moving up", map[Position]Piece{pos(3, 3): blackPawn}, pos(3, 3), pos(2, 3), false},
		{"edge file capture", map[Position]Piece{pos(5, 0): whitePawn, pos(4, 1): blackPawn}, pos(5, 0), pos(4, 1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard(tt.pieces)
			assert.Equal(t, tt.want, b.IsValidMove(tt.from.Row, tt.from.Col, tt.to.Row, tt.to.Col))
		})
	}
}

func TestMovePiece(t *testing.T) {
	b := StartingBoard()
	require.NoError(t, b.MovePiece(6, 4, 4, 4))
	assert.True(t, b.IsEmpty(pos(6, 4)))
	p, ok := b.Piece(pos(4, 4))
	require.True(t, ok)
	assert.Equal(t, NewPiece(Pawn, White), p)
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR", b.String())
}

func TestMovePieceCaptures(t *testing.T) {
	b := NewBoard(map[Position]Piece{
		pos(7, 0): NewPiece(Rook, White),
		pos(2, 0): NewPiece(Knight, Black),
	})
	require.NoError(t, b.MovePiece(7, 0, 2, 0))
	p, _ := b.Piece(pos(2, 0))
	assert.Equal(t, NewPiece(Rook, White), p)
	assert.Len(t, b.SquareMap(), 1)
	assert.False(t, b.IsKingCaptured())
}

func TestMovePieceRejectsIllegalMove(t *testing.T) {
	b := StartingBoard()
	before := b.String()

	err := b.MovePiece(7, 0, 5, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidMove))
	var moveErr *MoveError
	require.ErrorAs(t, err, &moveErr)
	assert.Equal(t, pos(7, 0), moveErr.From)
	assert.Equal(t, pos(5, 0), moveErr.To)

	require.ErrorIs(t, b.MovePiece(4, 4, 3, 4), ErrInvalidMove, "empty origin")
	require.ErrorIs(t, b.MovePiece(6, 4, 9, 4), ErrInvalidMove, "off board")
	assert.Equal(t, before, b.String())
}

func TestKingCaptureIsTerminal(t *testing.T) {
	b := NewBoard(map[Position]Piece{
		pos(0, 0): NewPiece(King, Black),
		pos(7, 0): NewPiece(Rook, White),
		pos(7, 7): NewPiece(King, White),
	})
	require.True(t, b.IsValidMove(7, 0, 0, 0))
	assert.False(t, b.IsKingCaptured())

	require.NoError(t, b.MovePiece(7, 0, 0, 0))
	assert.True(t, b.IsKingCaptured())

	b.IsValidMove(0, 0, 1, 0)
	b.Piece(pos(0, 0))
	b.IsEmpty(pos(7, 0))
	assert.True(t, b.IsKingCaptured())

	require.NoError(t, b.MovePiece(0, 0, 1, 0))
	assert.True(t, b.IsKingCaptured(), "flag never reverts")
}

func TestKingMoves(t *testing.T) {
	b := NewBoard(map[Position]Piece{pos(4, 4): NewPiece(King, White)})
	for _, to := range allPositions() {
		dr, dc := abs(to.Row-4), abs(to.Col-4)
		want := max(dr, dc) == 1
		assert.Equal(t, want, b.IsValidMove(4, 4, to.Row, to.Col), to.String())
	}
}

func TestNewBoardIgnoresOffBoardSquares(t *testing.T) {
	b := NewBoard(map[Position]Piece{
		pos(8, 0):  NewPiece(Queen, White),
		pos(0, -1): NewPiece(Queen, Black),
		pos(3, 3):  NoPiece,
	})
	assert.Empty(t, b.SquareMap())
}

func TestPlace(t *testing.T) {
	b := NewBoard(nil)
	require.NoError(t, b.Place(pos(3, 3), NewPiece(Queen, White)))
	p, ok := b.Piece(pos(3, 3))
	require.True(t, ok)
	assert.Equal(t, NewPiece(Queen, White), p)
	require.ErrorIs(t, b.Place(pos(9, 9), NewPiece(Queen, White)), ErrOutOfBounds)
}

func TestCloneIsIndependent(t *testing.T) {
	b := StartingBoard()
	c := b.Clone()
	require.NoError(t, c.MovePiece(6, 4, 4, 4))
	assert.False(t, b.IsEmpty(pos(6, 4)))
	assert.True(t, c.IsEmpty(pos(6, 4)))
}

func TestWithPieces(t *testing.T) {
	b := StartingBoard().WithPieces(map[Position]Piece{pos(4, 4): NewPiece(Queen, Black)})
	p, ok := b.Piece(pos(4, 4))
	require.True(t, ok)
	assert.Equal(t, NewPiece(Queen, Black), p)
	assert.Len(t, b.SquareMap(), 33)
}

func TestBoardRendering(t *testing.T) {
	b := StartingBoard()
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", b.String())

	want := "  1 2 3 4 5 6 7 8 \n" +
		"1 r n b q k b n r\n" +
		"2 p p p p p p p p\n" +
		"3 - - - - - - - -\n" +
		"4 - - - - - - - -\n" +
		"5 - - - - - - - -\n" +
		"6 - - - - - - - -\n" +
		"7 P P P P P P P P\n" +
		"8 R N B Q K B N R\n"
	assert.Equal(t, want, b.Draw())
}
