// Command kingcapture plays a two-player capture-the-king chess game on the
// console. Moves are read from stdin one per line until a king is taken.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"

	chess "github.com/mway1/kingcapture"
	"github.com/mway1/kingcapture/image"
)

type config struct {
	white    string
	black    string
	notation string
	script   string
	svgPath  string
	noColor  bool
}

func parseFlags(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("kingcapture", flag.ContinueOnError)
	fs.StringVar(&cfg.white, "white", "Player 1", "name of the white player")
	fs.StringVar(&cfg.black, "black", "Player 2", "name of the black player")
	fs.StringVar(&cfg.notation, "notation", "coord", "move notation: coord (\"7 5 5 5\") or uci (\"e2e4\")")
	fs.StringVar(&cfg.script, "script", "", "replay a move script before reading stdin")
	fs.StringVar(&cfg.svgPath, "svg", "", "write the final board as SVG to this file")
	fs.BoolVar(&cfg.noColor, "no-color", false, "disable colored output")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if _, err := notationFor(cfg.notation); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func notationFor(name string) (chess.Notation, error) {
	switch strings.ToLower(name) {
	case "coord", "coordinate":
		return chess.CoordinateNotation{}, nil
	case "uci":
		return chess.UCINotation{}, nil
	}
	return nil, fmt.Errorf("unknown notation %q", name)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("kingcapture: ")

	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if cfg.noColor {
		color.NoColor = true
	}

	game, err := newGame(cfg, color.Output)
	if err != nil {
		log.Fatal(err)
	}
	notation, _ := notationFor(cfg.notation)
	play(game, notation, os.Stdin, color.Output)

	if cfg.svgPath != "" {
		if err := writeSVG(cfg.svgPath, game.Board()); err != nil {
			log.Fatal(err)
		}
	}
}

func newGame(cfg config, out io.Writer) (*chess.Game, error) {
	opts := []func(*chess.Game){
		chess.WithPlayers(cfg.white, cfg.black),
		chess.WithNarrator(out),
	}
	if cfg.script == "" {
		return chess.NewGame(opts...), nil
	}
	f, err := os.Open(cfg.script)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	script, err := chess.ParseScript(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", cfg.script, err)
	}
	return script.Replay(opts...)
}

// play runs the turn loop until the game ends or in is exhausted.
func play(game *chess.Game, notation chess.Notation, in io.Reader, out io.Writer) {
	sc := bufio.NewScanner(in)
	for game.Outcome() == chess.NoOutcome {
		fmt.Fprint(out, render(game.Board()))
		p := game.Player(game.Turn())
		fmt.Fprintf(out, "%s (%s), your move: ", p.Name, p.Color)
		if !sc.Scan() {
			fmt.Fprintln(out)
			return
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line == "resign" {
			game.Resign(p.Color)
			break
		}
		if err := game.PushNotationMove(line, notation); err != nil {
			warn := color.New(color.FgRed).SprintFunc()
			fmt.Fprintln(out, warn("Invalid move: "+err.Error()))
		}
	}
	fmt.Fprint(out, render(game.Board()))
	fmt.Fprintf(out, "Game over: %s by %s\n", game.Outcome(), game.Method())
}

func writeSVG(path string, b *chess.Board) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := image.SVG(f, b); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
