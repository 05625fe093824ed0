package search

import (
	"testing"

	"github.com/corvidchess/chesscore/internal/eval"
)

// TestNegamaxFindsMateInOne exercises the sequential negamax core
// directly (no root dispatch), mirroring the teacher's mate-in-one
// tactical tests.
func TestNegamaxFindsMateInOne(t *testing.T) {
	pos := mustFEN(t, "6k1/8/6K1/8/8/8/8/R7 w - - 0 1")

	var best = -infScore - 1
	var nodes uint64
	for _, m := range orderMoves(pos, pos.LegalMoves(), true) {
		if err := pos.Make(m); err != nil {
			t.Fatalf("Make(%v): %v", m, err)
		}
		score := -negamax(pos, 0, -infScore, infScore, &nodes)
		pos.Unmake()

		if score > best {
			best = score
		}
	}

	if best != eval.KingValue {
		t.Errorf("best score over root moves = %d, want %d", best, eval.KingValue)
	}
}

// TestNegamaxRestoresPositionAfterSearch confirms negamax leaves pos
// byte-identical once the recursive make/unmake tree unwinds.
func TestNegamaxRestoresPositionAfterSearch(t *testing.T) {
	pos := mustFEN(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	before := *pos

	var nodes uint64
	negamax(pos, 2, -infScore, infScore, &nodes)

	if pos.Squares != before.Squares {
		t.Error("negamax left the board mutated")
	}
	if pos.Hash != before.Hash {
		t.Error("negamax left the hash mutated")
	}
	if pos.SideToMove != before.SideToMove {
		t.Error("negamax left side-to-move mutated")
	}
	if nodes == 0 {
		t.Error("expected at least one node visited")
	}
}

// TestQuiescenceStopsWhenNoCapturesRemain confirms quiescence falls
// back to the stand-pat score once a position has no captures left.
func TestQuiescenceStopsWhenNoCapturesRemain(t *testing.T) {
	pos := mustFEN(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	var nodes uint64
	score := quiescence(pos, -infScore, infScore, &nodes)
	if score != eval.Evaluate(pos) {
		t.Errorf("quiescence(start) = %d, want stand-pat %d", score, eval.Evaluate(pos))
	}
}
