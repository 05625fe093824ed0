package engine

import "fmt"

// Move is a single chess move as carried through move generation,
// make/unmake, and search. MoveWorth is transient scratch space the
// ordering layer fills in; nothing in this package reads it.
//
// Two moves are equal iff From, To, Piece, Promotion, IsPromotion and
// IsEnPassant all match; IsCapture is deliberately excluded from the
// comparison.
type Move struct {
	From        Square
	To          Square
	Piece       Piece     // the moving piece's code
	Promotion   PieceType // promotion piece type, Empty if none
	IsCapture   bool
	IsPromotion bool
	IsEnPassant bool

	MoveWorth int // ordering scratch space, see internal/search
}

// Equal reports whether m and o describe the same move, per the
// equality rule documented on Move.
func (m Move) Equal(o Move) bool {
	return m.From == o.From &&
		m.To == o.To &&
		m.Piece == o.Piece &&
		m.Promotion == o.Promotion &&
		m.IsPromotion == o.IsPromotion &&
		m.IsEnPassant == o.IsEnPassant
}

// IsCastle reports whether m moves a king two files in one step, the
// structural signature of castling (Move carries no dedicated flag for
// it — see spec §4.4).
func (m Move) IsCastle() bool {
	if m.Piece.Type() != King {
		return false
	}
	delta := int(m.To) - int(m.From)
	return delta == 2 || delta == -2
}

// String renders a move in coordinate notation, e.g. "e2e4", "a7a8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	switch m.Promotion {
	case Queen:
		s += "q"
	case Rook:
		s += "r"
	case Bishop:
		s += "b"
	case Knight:
		s += "n"
	}
	return s
}

// ParseUCIMove parses coordinate notation ("e2e4", "a7a8q") against pos,
// filling in the moving piece and capture/en-passant flags from the
// current board so the result can be passed straight to Position.Make.
// It does not check legality; callers that need a legal move should
// match the result against Position.LegalMoves.
func ParseUCIMove(pos *Position, s string) (Move, error) {
	if len(s) < 4 || len(s) > 5 {
		return Move{}, fmt.Errorf("invalid move format: %q", s)
	}
	from, ok := SquareFromAlgebraic(s[0:2])
	if !ok {
		return Move{}, fmt.Errorf("invalid from square: %s", s[0:2])
	}
	to, ok := SquareFromAlgebraic(s[2:4])
	if !ok {
		return Move{}, fmt.Errorf("invalid to square: %s", s[2:4])
	}

	promotion := Empty
	if len(s) == 5 {
		switch s[4] {
		case 'q':
			promotion = Queen
		case 'r':
			promotion = Rook
		case 'b':
			promotion = Bishop
		case 'n':
			promotion = Knight
		default:
			return Move{}, fmt.Errorf("invalid promotion character: %c", s[4])
		}
	}

	moving := pos.PieceAt(from)
	target := pos.PieceAt(to)
	isEnPassant := moving.Type() == Pawn && to == pos.enPassantTargetFor(moving.Color()) && target.IsEmpty()

	return Move{
		From:        from,
		To:          to,
		Piece:       moving,
		Promotion:   promotion,
		IsCapture:   !target.IsEmpty() || isEnPassant,
		IsPromotion: promotion != Empty,
		IsEnPassant: isEnPassant,
	}, nil
}
