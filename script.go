/*
Package chess provides parsing for move scripts: a small PGN-like format
holding optional tag pairs followed by moves in UCI notation.

	[White "Alice"]
	[Black "Bob"]
	[Turn "White"]

	1. e2e4 e7e5 2. d1h5 b8c6 *

Move numbers are optional. The trailing result token ("1-0", "0-1" or
"*") is optional as well; a decisive result on a game still in progress
is applied as a resignation by the losing side.

Example usage:

	script, err := ParseScript(strings.NewReader(text))
	if err != nil {
	    log.Fatal(err)
	}
	game, err := script.Replay(WithNarrator(os.Stdout))
*/
package chess

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

// TagPairs represents a collection of script tag pairs.
type TagPairs map[string]string

// A Script is a parsed move script.
type Script struct {
	TagPairs TagPairs
	Moves    []string
	Result   Outcome
}

// TokenType is the kind of a script token.
type TokenType int

const (
	EOF TokenType = iota
	TagStart
	TagKey
	TagValue
	TagEnd
	MoveNumber
	MoveText
	Result
)

func (t TokenType) String() string {
	switch t {
	case TagStart:
		return "TagStart"
	case TagKey:
		return "TagKey"
	case TagValue:
		return "TagValue"
	case TagEnd:
		return "TagEnd"
	case MoveNumber:
		return "MoveNumber"
	case MoveText:
		return "MoveText"
	case Result:
		return "Result"
	}
	return "EOF"
}

// Token is a lexical unit of a script.
type Token struct {
	Type  TokenType
	Value string
}

// ParserError describes a malformed script.
type ParserError struct {
	Message    string
	TokenValue string
	TokenType  TokenType
	Position   int
}

func (e *ParserError) Error() string {
	return fmt.Sprintf("Parser error at position %d: %s (Token: %v, Value: %s)",
		e.Position, e.Message, e.TokenType, e.TokenValue)
}

// ErrNoScriptFound is returned for input without tags or moves.
var ErrNoScriptFound = errors.New("chess: no moves or tags found in script") //nolint:gochecknoglobals // sentinel error.

// TokenizeScript splits script text into tokens.
func TokenizeScript(r io.Reader) ([]Token, error) {
	var tokens []Token
	sc := bufio.NewScanner(r)
	inTag := false
	for sc.Scan() {
		line := sc.Text()
		for i := 0; i < len(line); {
			ch := line[i]
			switch {
			case ch == ' ' || ch == '\t' || ch == '\r':
				i++
			case ch == '[':
				tokens = append(tokens, Token{Type: TagStart, Value: "["})
				inTag = true
				i++
			case ch == ']':
				tokens = append(tokens, Token{Type: TagEnd, Value: "]"})
				inTag = false
				i++
			case ch == '"':
				end := strings.IndexByte(line[i+1:], '"')
				if end < 0 {
					return nil, &ParserError{Message: "unterminated quote", TokenValue: line[i:], TokenType: TagValue, Position: len(tokens)}
				}
				tokens = append(tokens, Token{Type: TagValue, Value: line[i+1 : i+1+end]})
				i += end + 2
			default:
				j := i
				for j < len(line) && !strings.ContainsRune(" \t\r[]\"", rune(line[j])) {
					j++
				}
				tokens = append(tokens, classifyWord(line[i:j], inTag))
				i = j
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return tokens, nil
}

func classifyWord(w string, inTag bool) Token {
	switch {
	case inTag:
		return Token{Type: TagKey, Value: w}
	case w == string(WhiteWon) || w == string(BlackWon) || w == string(NoOutcome):
		return Token{Type: Result, Value: w}
	case strings.HasSuffix(w, ".") && isNumber(strings.TrimRight(w, ".")):
		return Token{Type: MoveNumber, Value: strings.TrimRight(w, ".")}
	}
	return Token{Type: MoveText, Value: w}
}

func isNumber(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// Parser holds the state needed during parsing.
type Parser struct {
	script   *Script
	tokens   []Token
	position int
}

// NewParser creates a new parser instance initialized with the given tokens.
//
// Example:
//
//	tokens, _ := TokenizeScript(r)
//	parser := NewParser(tokens)
func NewParser(tokens []Token) *Parser {
	return &Parser{
		tokens: tokens,
		script: &Script{TagPairs: make(TagPairs), Result: NoOutcome},
	}
}

// currentToken returns the current token being processed.
func (p *Parser) currentToken() Token {
	if p.position >= len(p.tokens) {
		return Token{Type: EOF}
	}
	return p.tokens[p.position]
}

// advance moves to the next token.
func (p *Parser) advance() {
	p.position++
}

// Parse processes all tokens and returns the script.
func (p *Parser) Parse() (*Script, error) {
	if len(p.tokens) == 0 {
		return nil, ErrNoScriptFound
	}
	for p.currentToken().Type == TagStart {
		if err := p.parseTagPair(); err != nil {
			return nil, err
		}
	}
	if err := p.parseMoveText(); err != nil {
		return nil, err
	}
	return p.script, nil
}

func (p *Parser) expect(t TokenType, msg string) (string, error) {
	tok := p.currentToken()
	if tok.Type != t {
		return "", &ParserError{
			Message:    msg,
			TokenType:  tok.Type,
			TokenValue: tok.Value,
			Position:   p.position,
		}
	}
	p.advance()
	return tok.Value, nil
}

func (p *Parser) parseTagPair() error {
	if _, err := p.expect(TagStart, "expected tag start"); err != nil {
		return err
	}
	key, err := p.expect(TagKey, "expected tag key")
	if err != nil {
		return err
	}
	value, err := p.expect(TagValue, "expected tag value")
	if err != nil {
		return err
	}
	if _, err := p.expect(TagEnd, "expected tag end"); err != nil {
		return err
	}
	p.script.TagPairs[key] = value
	return nil
}

func (p *Parser) parseMoveText() error {
	for p.position < len(p.tokens) {
		tok := p.currentToken()
		switch tok.Type {
		case MoveNumber:
			p.advance()
		case MoveText:
			if _, _, err := (UCINotation{}).Decode(tok.Value); err != nil {
				return &ParserError{
					Message:    "invalid move",
					TokenType:  tok.Type,
					TokenValue: tok.Value,
					Position:   p.position,
				}
			}
			p.script.Moves = append(p.script.Moves, tok.Value)
			p.advance()
		case Result:
			p.script.Result = Outcome(tok.Value)
			p.advance()
			if p.currentToken().Type != EOF {
				return &ParserError{
					Message:    "moves after result",
					TokenType:  p.currentToken().Type,
					TokenValue: p.currentToken().Value,
					Position:   p.position,
				}
			}
		default:
			return &ParserError{
				Message:    "unexpected token",
				TokenType:  tok.Type,
				TokenValue: tok.Value,
				Position:   p.position,
			}
		}
	}
	return nil
}

// ParseScript reads and parses a move script.
func ParseScript(r io.Reader) (*Script, error) {
	tokens, err := TokenizeScript(r)
	if err != nil {
		return nil, err
	}
	return NewParser(tokens).Parse()
}

// Options returns the Game options encoded in the script's tag pairs.
func (s *Script) Options() ([]func(*Game), error) {
	var opts []func(*Game)
	white, hasWhite := s.TagPairs["White"]
	black, hasBlack := s.TagPairs["Black"]
	if hasWhite || hasBlack {
		if !hasWhite {
			white = White.String()
		}
		if !hasBlack {
			black = Black.String()
		}
		opts = append(opts, WithPlayers(white, black))
	}
	if turn, ok := s.TagPairs["Turn"]; ok {
		switch strings.ToLower(turn) {
		case "white":
			opts = append(opts, WithTurn(White))
		case "black":
			opts = append(opts, WithTurn(Black))
		default:
			return nil, fmt.Errorf("chess: invalid Turn tag %q", turn)
		}
	}
	return opts, nil
}

// Replay plays the script's moves on a new game. Options given here are
// applied after the ones derived from the tag pairs.
func (s *Script) Replay(options ...func(*Game)) (*Game, error) {
	opts, err := s.Options()
	if err != nil {
		return nil, err
	}
	g := NewGame(append(opts, options...)...)
	for i, m := range s.Moves {
		if err := g.PushNotationMove(m, UCINotation{}); err != nil {
			return g, fmt.Errorf("chess: ply %d (%s): %w", i+1, m, err)
		}
	}
	switch {
	case s.Result == NoOutcome || s.Result == g.Outcome():
	case g.Outcome() == NoOutcome && s.Result == WhiteWon:
		g.Resign(Black)
	case g.Outcome() == NoOutcome && s.Result == BlackWon:
		g.Resign(White)
	default:
		return g, fmt.Errorf("chess: script result %s does not match game outcome %s", s.Result, g.Outcome())
	}
	return g, nil
}

// Clone returns a deep copy of the script.
func (s *Script) Clone() *Script {
	c := &Script{
		TagPairs: make(TagPairs, len(s.TagPairs)),
		Moves:    append([]string(nil), s.Moves...),
		Result:   s.Result,
	}
	maps.Copy(c.TagPairs, s.TagPairs)
	return c
}

// String implements the fmt.Stringer interface and renders the script in
// its text form.
func (s *Script) String() string {
	var sb strings.Builder
	keys := make([]string, 0, len(s.TagPairs))
	for k := range s.TagPairs {
		keys = append(keys, k)
	}
	sortTagKeys(keys)
	for _, k := range keys {
		fmt.Fprintf(&sb, "[%s \"%s\"]\n", k, s.TagPairs[k])
	}
	if len(keys) > 0 {
		sb.WriteString("\n")
	}
	for i, m := range s.Moves {
		if i%2 == 0 {
			fmt.Fprintf(&sb, "%d. ", i/2+1)
		}
		sb.WriteString(m)
		sb.WriteString(" ")
	}
	sb.WriteString(s.Result.String())
	return sb.String()
}

// sortTagKeys orders the known tags first and the rest ascending.
func sortTagKeys(keys []string) {
	slices.SortFunc(keys, cmpTags)
}

func cmpTags(a, b string) int {
	if a == b {
		return 0
	}
	for _, req := range []string{"White", "Black", "Turn"} {
		if a == req {
			return -1
		}
		if b == req {
			return +1
		}
	}
	return strings.Compare(a, b)
}
