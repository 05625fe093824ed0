package search

import (
	"github.com/corvidchess/chesscore/internal/engine"
	"github.com/corvidchess/chesscore/internal/eval"
)

// infScore bounds alpha/beta away from actual overflow so negating it
// at any recursion depth stays representable.
const infScore = 1 << 30

// negamax implements §4.7's internal-node contract: for each legal move
// in ordered sequence, make, recurse with negated/swapped bounds,
// unmake, and fold the result with alpha-beta pruning. It mutates pos
// in place via make/unmake and restores it fully before returning.
func negamax(pos *engine.Position, depth int, alpha, beta int, nodes *uint64) int {
	*nodes++

	pos.UpdateWinner()
	if depth <= 0 || pos.Winner != engine.WinnerNone {
		return quiescence(pos, alpha, beta, nodes)
	}

	moves := pos.LegalMoves()
	if len(moves) == 0 {
		return eval.Evaluate(pos)
	}
	moves = orderMoves(pos, moves, true)

	value := -infScore
	for _, m := range moves {
		if err := pos.Make(m); err != nil {
			continue
		}
		score := -negamax(pos, depth-1, -beta, -alpha, nodes)
		pos.Unmake()

		if score > value {
			value = score
		}
		if value > alpha {
			alpha = value
		}
		if alpha >= beta {
			break
		}
	}
	return value
}

// quiescence extends the search over captures only, per §4.7: the
// stand-pat score short-circuits on a beta cutoff, otherwise ordered
// captures are explored with the same negamax/alpha-beta discipline
// until none remain.
func quiescence(pos *engine.Position, alpha, beta int, nodes *uint64) int {
	*nodes++

	standPat := eval.Evaluate(pos)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	moves := pos.LegalMoves()
	captures := make([]engine.Move, 0, len(moves))
	for _, m := range moves {
		if m.IsCapture {
			captures = append(captures, m)
		}
	}
	captures = orderMoves(pos, captures, true)

	for _, m := range captures {
		if err := pos.Make(m); err != nil {
			continue
		}
		score := -quiescence(pos, -beta, -alpha, nodes)
		pos.Unmake()

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}
