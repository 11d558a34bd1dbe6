/*
Package chess also provides Game, which sequences turns between two named
players on top of a Board and narrates each move.

Example usage:

	// Create new game
	game := NewGame(WithPlayers("Alice", "Bob"), WithNarrator(os.Stdout))

	// Make moves
	game.PushNotationMove("e2e4", UCINotation{})
	game.PushNotationMove("2 4 4 4", CoordinateNotation{})

	// Check game status
	if game.Outcome() != NoOutcome {
		fmt.Printf("Game ended: %s by %s\n", game.Outcome(), game.Method())
	}
*/
package chess

import (
	"fmt"
	"io"
	"sync"
)

// A Outcome is the result of a game.
type Outcome string

const (
	// NoOutcome indicates that a game is in progress.
	NoOutcome Outcome = "*"
	// WhiteWon indicates that white won the game.
	WhiteWon Outcome = "1-0"
	// BlackWon indicates that black won the game.
	BlackWon Outcome = "0-1"
)

// String implements the fmt.Stringer interface.
func (o Outcome) String() string {
	return string(o)
}

func winner(c Color) Outcome {
	if c == White {
		return WhiteWon
	}
	return BlackWon
}

// A Method is the method that generated the outcome.
type Method uint8

const (
	// NoMethod indicates that an outcome hasn't occurred.
	NoMethod Method = iota
	// KingCapture indicates that the game was won by taking the king.
	KingCapture
	// Resignation indicates that the game was won by resignation.
	Resignation
)

func (m Method) String() string {
	switch m {
	case KingCapture:
		return "KingCapture"
	case Resignation:
		return "Resignation"
	}
	return "NoMethod"
}

// A Player is a named participant playing one color.
type Player struct {
	Name  string
	Color Color
}

// A Game represents a single game between two players.
type Game struct {
	mu       sync.Mutex
	board    *Board
	players  [2]Player // white, black
	turn     Color
	outcome  Outcome
	method   Method
	narrator io.Writer
}

// NewGame returns a new game in the standard starting arrangement with
// white to move. Optional functions can be provided to configure the
// initial game state.
//
// Example:
//
//	// Standard game
//	game := NewGame()
//
//	// Custom arrangement with black to move
//	game := NewGame(WithBoard(board), WithTurn(Black))
func NewGame(options ...func(*Game)) *Game {
	g := &Game{
		board: StartingBoard(),
		players: [2]Player{
			{Name: White.String(), Color: White},
			{Name: Black.String(), Color: Black},
		},
		turn:     White,
		outcome:  NoOutcome,
		method:   NoMethod,
		narrator: io.Discard,
	}
	for _, f := range options {
		if f != nil {
			f(g)
		}
	}
	if g.board.IsKingCaptured() {
		g.outcome = winner(g.turn.Other())
		g.method = KingCapture
	}
	return g
}

// WithBoard returns a Game option that starts the game from the given board.
// The game takes ownership of the board.
func WithBoard(b *Board) func(*Game) {
	return func(g *Game) {
		if b != nil {
			g.board = b
		}
	}
}

// WithPlayers returns a Game option that names the white and black players.
func WithPlayers(white, black string) func(*Game) {
	return func(g *Game) {
		g.players[0].Name = white
		g.players[1].Name = black
	}
}

// WithTurn returns a Game option that sets the color to move first.
func WithTurn(c Color) func(*Game) {
	return func(g *Game) {
		if c == White || c == Black {
			g.turn = c
		}
	}
}

// WithNarrator returns a Game option that writes a line of narration for
// every move to w.
func WithNarrator(w io.Writer) func(*Game) {
	return func(g *Game) {
		if w != nil {
			g.narrator = w
		}
	}
}

// Board returns the game's board. Callers must not mutate it while the
// game is in use.
func (g *Game) Board() *Board {
	return g.board
}

// Players returns the white and black players.
func (g *Game) Players() [2]Player {
	return g.players
}

// Player returns the player of the given color.
func (g *Game) Player(c Color) Player {
	if c == Black {
		return g.players[1]
	}
	return g.players[0]
}

// PlayerName returns the name of the player owning the piece on the
// position, or false if the position is empty or off the board.
func (g *Game) PlayerName(pos Position) (string, bool) {
	p, ok := g.board.Piece(pos)
	if !ok {
		return "", false
	}
	return g.Player(p.Color).Name, true
}

// Turn returns the color to move.
func (g *Game) Turn() Color {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.turn
}

// Outcome returns the game outcome.
func (g *Game) Outcome() Outcome {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.outcome
}

// Method returns the method in which the outcome occurred.
func (g *Game) Method() Method {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.method
}

// PushNotationMove decodes moveStr with the given notation and plays it.
//
// Example:
//
//	err := game.PushNotationMove("e2e4", chess.UCINotation{})
//	if err != nil {
//	  panic(err)
//	}
func (g *Game) PushNotationMove(moveStr string, notation Notation) error {
	from, to, err := notation.Decode(moveStr)
	if err != nil {
		return err
	}
	return g.Move(from, to)
}

// Move plays the piece on from to to for the side on turn.
// It returns ErrGameOver once the game has ended, ErrWrongTurn when the
// piece belongs to the other side and ErrInvalidMove when the move is
// illegal, each wrapped in a *MoveError. A rejected move changes nothing.
func (g *Game) Move(from, to Position) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.outcome != NoOutcome {
		return &MoveError{From: from, To: to, Err: ErrGameOver}
	}
	if p, ok := g.board.Piece(from); ok && p.Color != g.turn {
		return &MoveError{From: from, To: to, Err: ErrWrongTurn}
	}
	if !g.board.isValidMove(from, to) {
		return &MoveError{From: from, To: to, Err: ErrInvalidMove}
	}

	g.narrate(from, to)
	g.board.movePiece(from, to)

	if g.board.IsKingCaptured() {
		g.outcome = winner(g.turn)
		g.method = KingCapture
	}
	g.turn = g.turn.Other()
	return nil
}

// narrate writes the move description before the board changes.
func (g *Game) narrate(from, to Position) {
	mover, _ := g.board.Piece(from)
	fmt.Fprintf(g.narrator, "%s moved %s from %s to %s\n",
		g.Player(mover.Color).Name, mover, from, to)
	if captured, ok := g.board.Piece(to); ok {
		fmt.Fprintf(g.narrator, "And has captured %s of %s\n",
			captured, g.Player(captured.Color).Name)
	}
}

// Resign resigns the game for the given color. If the game has
// already been completed then the game is not updated.
func (g *Game) Resign(color Color) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.outcome != NoOutcome || (color != White && color != Black) {
		return
	}
	g.outcome = winner(color.Other())
	g.method = Resignation
}

// String implements the fmt.Stringer interface.
func (g *Game) String() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fmt.Sprintf("%s vs %s, %s to move, %s\n%s",
		g.players[0].Name, g.players[1].Name, g.turn, g.outcome, g.board.Draw())
}
