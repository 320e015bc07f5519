package chess

import (
	"strings"

	dragon "github.com/IlikeChooros/dragontoothmg"
)

var pieceLetters = [...]string{
	dragon.Knight: "N",
	dragon.Bishop: "B",
	dragon.Rook:   "R",
	dragon.Queen:  "Q",
	dragon.King:   "K",
}

// san renders m, a legal move in s, in standard algebraic notation. next is
// the position after the move and decides the check suffix.
func (s *State) san(m dragon.Move, next *State) string {
	from, to := m.From(), m.To()
	piece, _ := dragon.GetPieceType(from, s.board)

	var sb strings.Builder
	if piece == dragon.King && (from%8 == 4) && (to%8 == 6 || to%8 == 2) {
		if to%8 == 6 {
			sb.WriteString("O-O")
		} else {
			sb.WriteString("O-O-O")
		}
	} else {
		capture := dragon.IsCapture(m, s.board)
		if piece == dragon.Pawn {
			// A pawn captures exactly when it changes file, en passant included.
			capture = fileOf(from) != fileOf(to)
			if capture {
				sb.WriteByte(fileOf(from))
			}
		} else {
			sb.WriteString(pieceLetters[piece])
			sb.WriteString(s.disambiguate(m, piece))
		}
		if capture {
			sb.WriteByte('x')
		}
		sb.WriteString(dragon.IndexToAlgebraic(dragon.Square(to)))
		if p := m.Promote(); p != dragon.Nothing {
			sb.WriteByte('=')
			sb.WriteString(pieceLetters[p])
		}
	}

	if next.board.OurKingInCheck() {
		if len(next.moves) == 0 {
			sb.WriteByte('#')
		} else {
			sb.WriteByte('+')
		}
	}
	return sb.String()
}

// disambiguate returns the origin file, rank or square needed when another
// piece of the same type can also reach m's destination.
func (s *State) disambiguate(m dragon.Move, piece int) string {
	from, to := m.From(), m.To()
	var ambiguous, sameFile, sameRank bool
	for _, o := range s.moves {
		if o.To() != to || o.From() == from {
			continue
		}
		if p, _ := dragon.GetPieceType(o.From(), s.board); p != piece {
			continue
		}
		ambiguous = true
		sameFile = sameFile || o.From()%8 == from%8
		sameRank = sameRank || o.From()/8 == from/8
	}

	switch {
	case !ambiguous:
		return ""
	case !sameFile:
		return string(fileOf(from))
	case !sameRank:
		return string(rankOf(from))
	default:
		return string([]byte{fileOf(from), rankOf(from)})
	}
}

func fileOf(sq uint8) byte { return 'a' + sq%8 }

func rankOf(sq uint8) byte { return '1' + sq/8 }
