// Package image is a go library that creates images from kingcapture
// boards.
package image

import (
	"fmt"
	"image/color"
	"io"
	"strconv"

	svg "github.com/ajstarks/svgo"

	chess "github.com/mway1/kingcapture"
)

const (
	sqWidth   = 45
	sqHeight  = 45
	boardSize = 8
)

// SVG writes the board SVG representation into the writer.
// An error is returned if there is there is an error writing data.
// SVG also takes options which can customize the image output.
func SVG(w io.Writer, b *chess.Board, opts ...func(*encoder)) error {
	e := new(w, opts)
	return e.EncodeSVG(b)
}

// SquareColors is designed to be used as an optional argument
// to the SVG function.  It changes the default light and
// dark square colors to the colors given.
func SquareColors(light, dark color.Color) func(*encoder) {
	return func(e *encoder) {
		e.light = light
		e.dark = dark
	}
}

// MarkSquares is designed to be used as an optional argument
// to the SVG function.  It marks the given squares with the
// color.  A possible usage includes marking squares of the
// previous move.
func MarkSquares(c color.Color, sqs ...chess.Position) func(*encoder) {
	return func(e *encoder) {
		for _, sq := range sqs {
			e.marks[sq] = c
		}
	}
}

// Coordinates is designed to be used as an optional argument to the SVG
// function. It toggles the 1-indexed row and column labels.
func Coordinates(on bool) func(*encoder) {
	return func(e *encoder) {
		e.coordinates = on
	}
}

// A encoder encodes chess boards into images.
type encoder struct {
	w           io.Writer
	light       color.Color
	dark        color.Color
	marks       map[chess.Position]color.Color
	coordinates bool
}

// new returns an encoder that writes to the given writer.
// New also takes options which can customize the image
// output.
func new(w io.Writer, options []func(*encoder)) *encoder {
	e := &encoder{
		w:           w,
		light:       color.RGBA{235, 209, 166, 1},
		dark:        color.RGBA{165, 117, 81, 1},
		marks:       map[chess.Position]color.Color{},
		coordinates: true,
	}
	for _, op := range options {
		op(e)
	}
	return e
}

// EncodeSVG writes the board SVG representation into
// the encoder's writer. The cell display colors pick the light or dark
// fill.
func (e *encoder) EncodeSVG(b *chess.Board) error {
	cw := &errWriter{w: e.w}
	canvas := svg.New(cw)
	canvas.Start(sqWidth*boardSize, sqHeight*boardSize)
	canvas.Rect(0, 0, sqWidth*boardSize, sqHeight*boardSize)

	for row := range boardSize {
		for col := range boardSize {
			pos := chess.NewPosition(row, col)
			cell, _ := b.Cell(pos)
			x := col * sqWidth
			y := row * sqHeight

			fill := e.light
			if cell.Color() == chess.Black {
				fill = e.dark
			}
			canvas.Rect(x, y, sqWidth, sqHeight, "fill: "+colorToHex(fill))
			if c, ok := e.marks[pos]; ok {
				canvas.Rect(x, y, sqWidth, sqHeight, "fill-opacity:0.2;fill: "+colorToHex(c))
			}

			if e.coordinates {
				txtColor := e.dark
				if cell.Color() == chess.Black {
					txtColor = e.light
				}
				style := "font-size:11px;fill: " + colorToHex(txtColor)
				if col == 0 {
					canvas.Text(x+3, y+12, strconv.Itoa(row+1), style)
				}
				if row == boardSize-1 {
					canvas.Text(x+sqWidth-9, y+sqHeight-4, strconv.Itoa(col+1), style)
				}
			}

			if p, ok := b.Piece(pos); ok {
				canvas.Text(x+sqWidth/2, y+sqHeight*3/4, p.Glyph(),
					"font-size:34px;text-anchor:middle;fill:#000000")
			}
		}
	}
	canvas.End()
	return cw.err
}

// errWriter keeps the first write error; svgo discards them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}

func colorToHex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
