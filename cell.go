package chess

// A Cell is a single board square. Its display color is fixed when the
// board is built; the occupant changes as pieces move.
type Cell struct {
	color    Color
	occupant Piece
}

func newCell(c Color) Cell {
	return Cell{color: c}
}

// Color returns the display color of the cell.
func (c *Cell) Color() Color {
	return c.color
}

// IsEmpty reports whether no piece occupies the cell.
func (c *Cell) IsEmpty() bool {
	return c.occupant == NoPiece
}

// Piece returns the occupant, or ErrEmptyCell when there is none.
func (c *Cell) Piece() (Piece, error) {
	if c.IsEmpty() {
		return NoPiece, ErrEmptyCell
	}
	return c.occupant, nil
}

// SetPiece replaces the occupant.
func (c *Cell) SetPiece(p Piece) {
	c.occupant = p
}

// RemovePiece clears the occupant.
func (c *Cell) RemovePiece() {
	c.occupant = NoPiece
}

// String renders the cell for board printing: the cell color initial
// followed by the occupant symbol, e.g. "W:P" or "B:-".
func (c *Cell) String() string {
	s := c.color.String()[:1] + ":"
	if c.IsEmpty() {
		return s + "-"
	}
	return s + c.occupant.Symbol()
}
