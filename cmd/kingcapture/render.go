package main

import (
	"strconv"
	"strings"

	"github.com/fatih/color"

	chess "github.com/mway1/kingcapture"
)

//nolint:gochecknoglobals // terminal palette.
var (
	lightCell = color.New(color.BgHiWhite, color.FgBlack)
	darkCell  = color.New(color.BgGreen, color.FgBlack)
)

// render draws the board with 1-indexed headers and colored cells, the
// layout CoordinateNotation reads.
func render(b *chess.Board) string {
	var sb strings.Builder
	sb.WriteString(" ")
	for col := range 8 {
		sb.WriteString("  " + strconv.Itoa(col+1))
	}
	sb.WriteString("\n")
	for row := range 8 {
		sb.WriteString(strconv.Itoa(row + 1))
		for col := range 8 {
			sb.WriteString(renderCell(b, chess.NewPosition(row, col)))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func renderCell(b *chess.Board, pos chess.Position) string {
	cell, _ := b.Cell(pos)
	bg := lightCell
	if cell.Color() == chess.Black {
		bg = darkCell
	}
	p, ok := b.Piece(pos)
	if !ok {
		return bg.Sprint("   ")
	}
	fg := color.FgHiBlue
	if p.Color == chess.Black {
		fg = color.FgRed
	}
	piece := color.New(color.Bold, fg, bgAttr(cell.Color()))
	return bg.Sprint(" ") + piece.Sprint(p.Symbol()) + bg.Sprint(" ")
}

func bgAttr(c chess.Color) color.Attribute {
	if c == chess.Black {
		return color.BgGreen
	}
	return color.BgHiWhite
}
