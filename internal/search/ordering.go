// Package search implements the negamax/alpha-beta tree search over an
// engine.Position, its static move ordering, and the root-parallel
// dispatch described in §4.6, §4.7, and §5.
package search

import (
	"sort"

	"github.com/corvidchess/chesscore/internal/engine"
	"github.com/corvidchess/chesscore/internal/eval"
)

// orderMoves scores each move's worth per §4.6 and returns a sorted
// copy: descending when maximizing is true, ascending otherwise. Every
// node negamax visits is the maximizer from its own perspective, so
// negamax.go always calls this with maximizing=true; the parameter is
// kept so the ordering itself matches §4.6's literal two-direction
// contract.
func orderMoves(pos *engine.Position, moves []engine.Move, maximizing bool) []engine.Move {
	endgame := eval.IsEndgame(pos)

	ordered := make([]engine.Move, len(moves))
	copy(ordered, moves)
	for i := range ordered {
		ordered[i].MoveWorth = moveWorth(pos, ordered[i], endgame)
	}

	sort.Slice(ordered, func(i, j int) bool {
		if maximizing {
			return ordered[i].MoveWorth > ordered[j].MoveWorth
		}
		return ordered[i].MoveWorth < ordered[j].MoveWorth
	})
	return ordered
}

// moveWorth scores m per §4.6: capture value, promotion value, an
// attacked-destination penalty, and a PST prior, all evaluated against
// pos before m is made.
func moveWorth(pos *engine.Position, m engine.Move, endgame bool) int {
	worth := 0
	moverValue := eval.PieceValue(m.Piece.Type())

	if m.IsCapture {
		capturedType := pos.PieceAt(m.To).Type()
		if m.IsEnPassant {
			capturedType = engine.Pawn
		}
		worth += eval.PieceValue(capturedType) - moverValue
		if capturedType == engine.King {
			worth += eval.KingValue
		}
	}

	if m.IsPromotion {
		worth += eval.PieceValue(m.Promotion)
	}

	if pos.IsAttacked(m.To, m.Piece.Color().Opponent()) {
		worth += moverValue
	}

	worth += eval.PSTBonus(m.Piece, m.To, endgame)

	return worth
}
