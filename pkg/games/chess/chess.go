// Package chess plugs standard chess into the search engine using the
// dragontoothmg move generator. Actions are UCI strings such as "e2e4".
package chess

import (
	"fmt"
	"math/bits"
	"strings"

	dragon "github.com/IlikeChooros/dragontoothmg"
	"github.com/akuroiwa/mcts-gen/pkg/domain"
	"github.com/akuroiwa/mcts-gen/pkg/registry"
)

// Name is the registry key of this domain.
const Name = "chess"

// StartFEN is the standard starting position.
const StartFEN = dragon.Startpos

const (
	// White moves first.
	White = 1
	// Black moves second.
	Black = -1
)

// State wraps a board. The board is never modified after construction;
// Apply works on a clone.
type State struct {
	board    *dragon.Board
	origin   *origin
	history  []string // UCI
	notation []string // SAN, parallel to history
	maxPlies int
	moves    []dragon.Move
}

// origin is the position the game was set up from. PGN numbering
// continues from it.
type origin struct {
	fen        string
	fullmove   int
	whiteFirst bool
}

type args struct {
	FEN      string   `json:"fen"`
	Moves    []string `json:"moves"`
	MaxPlies int      `json:"max_plies"`
}

// New returns the standard starting position.
func New() *State {
	s, _ := FromFEN(StartFEN, nil, 0)
	return s
}

// FromFEN sets up the position described by fen and replays UCI moves on top
// of it. An empty fen means the starting position. A positive maxPlies ends
// the game as a draw once that many moves have been played from fen.
func FromFEN(fen string, moves []string, maxPlies int) (*State, error) {
	if maxPlies < 0 {
		return nil, fmt.Errorf("%w: max_plies=%d", domain.ErrInvalidConfiguration, maxPlies)
	}
	if fen == "" {
		fen = StartFEN
	}
	b, err := parseFEN(fen)
	if err != nil {
		return nil, err
	}

	s := newState(b, &origin{
		fen:        b.ToFen(),
		fullmove:   int(b.Fullmoveno),
		whiteFirst: b.Wtomove,
	}, nil, nil, maxPlies)
	for _, m := range moves {
		next, err := s.Apply(m)
		if err != nil {
			return nil, err
		}
		s = next.(*State)
	}
	return s, nil
}

// FromMoves replays UCI moves from the starting position.
func FromMoves(moves []string, maxPlies int) (*State, error) {
	return FromFEN("", moves, maxPlies)
}

// Factory reads "fen" (defaults to the starting position), "moves" (UCI
// strings played from fen) and "max_plies".
func Factory(raw map[string]any) (domain.State, error) {
	var a args
	if err := registry.Decode(raw, &a); err != nil {
		return nil, err
	}
	return FromFEN(strings.TrimSpace(a.FEN), a.Moves, a.MaxPlies)
}

// parseFEN validates fen before handing it to dragontoothmg, whose parser
// panics on malformed input.
func parseFEN(fen string) (b *dragon.Board, err error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 || len(fields) > 6 {
		return nil, invalidFEN(fen, "want 4 to 6 fields")
	}
	defer func() {
		if r := recover(); r != nil {
			b, err = nil, invalidFEN(fen, fmt.Sprint(r))
		}
	}()

	board := dragon.ParseFen(strings.Join(fields, " "))
	got := strings.Fields(board.ToFen())
	for i := 0; i < 4; i++ {
		if got[i] != fields[i] {
			return nil, invalidFEN(fen, fmt.Sprintf("field %d reads back as %q", i+1, got[i]))
		}
	}
	if bits.OnesCount64(board.White.Kings) != 1 || bits.OnesCount64(board.Black.Kings) != 1 {
		return nil, invalidFEN(fen, "each side needs exactly one king")
	}
	if board.Fullmoveno == 0 {
		board.Fullmoveno = 1
	}
	return &board, nil
}

func invalidFEN(fen, reason string) error {
	return fmt.Errorf("%w: fen %q: %s", domain.ErrInvalidConfiguration, fen, reason)
}

func newState(b *dragon.Board, o *origin, history, notation []string, maxPlies int) *State {
	return &State{
		board:    b,
		origin:   o,
		history:  history,
		notation: notation,
		maxPlies: maxPlies,
		moves:    b.GenerateLegalMoves(),
	}
}

func (s *State) CurrentPlayer() int {
	if s.board.Wtomove {
		return White
	}
	return Black
}

func (s *State) LegalActions() []domain.Action {
	if s.IsTerminal() {
		return nil
	}
	out := make([]domain.Action, len(s.moves))
	for i, m := range s.moves {
		out[i] = m.String()
	}
	return out
}

func (s *State) Apply(a domain.Action) (domain.State, error) {
	uci, ok := a.(string)
	if !ok || s.IsTerminal() {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidAction, a)
	}
	for _, m := range s.moves {
		if m.String() != uci {
			continue
		}
		b := s.board.Clone()
		b.Make(m)
		history := append(append([]string(nil), s.history...), uci)
		next := newState(b, s.origin, history, nil, s.maxPlies)
		next.notation = append(append([]string(nil), s.notation...), s.san(m, next))
		return next, nil
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrInvalidAction, uci)
}

func (s *State) IsTerminal() bool {
	if s.maxPlies > 0 && len(s.history) >= s.maxPlies {
		return true
	}
	return s.board.IsTerminated(len(s.moves))
}

// Checkmate reports whether the side to move has been mated.
func (s *State) Checkmate() bool {
	return s.board.IsTerminated(len(s.moves)) && s.board.Termination() == dragon.TerminationCheckmate
}

// Reward is -1 when the side to move is mated and 0 for any draw.
func (s *State) Reward() float64 {
	if s.Checkmate() {
		return -1
	}
	return 0
}

// History returns the UCI moves played since the starting position.
func (s *State) History() []string {
	return append([]string(nil), s.history...)
}

// FEN serializes the current position.
func (s *State) FEN() string {
	return s.board.ToFen()
}

// PGN renders the moves played since the starting position as numbered
// movetext, for example "1. e4 e5 2. Nf3". A game set up with black to move
// opens with "N... ".
func (s *State) PGN() string {
	var sb strings.Builder
	n, white := s.origin.fullmove, s.origin.whiteFirst
	for i, san := range s.notation {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch {
		case white:
			fmt.Fprintf(&sb, "%d. ", n)
		case i == 0:
			fmt.Fprintf(&sb, "%d... ", n)
		}
		sb.WriteString(san)
		if !white {
			n++
		}
		white = !white
	}
	return sb.String()
}

func (s *State) Summary() map[string]any {
	toMove := "white"
	if !s.board.Wtomove {
		toMove = "black"
	}
	summary := map[string]any{
		"fen":       s.FEN(),
		"pgn":       s.PGN(),
		"moves":     s.History(),
		"to_move":   toMove,
		"checkmate": s.Checkmate(),
	}
	if s.origin.fen != StartFEN {
		summary["start_fen"] = s.origin.fen
	}
	return summary
}
