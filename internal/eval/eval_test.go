package eval

import (
	"testing"

	"github.com/corvidchess/chesscore/internal/engine"
)

func mustFEN(t *testing.T, fen string) *engine.Position {
	t.Helper()
	pos, err := engine.FromFEN(fen)
	if err != nil {
		t.Fatalf("FromFEN(%s): %v", fen, err)
	}
	return pos
}

// TestEvaluateStartingPositionIsSymmetric is §8 property 8: the
// starting position is perfectly symmetric, so it must score 0 for
// whichever side is to move.
func TestEvaluateStartingPositionIsSymmetric(t *testing.T) {
	pos := mustFEN(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if got := Evaluate(pos); got != 0 {
		t.Errorf("Evaluate(start, white to move) = %d, want 0", got)
	}

	pos.SideToMove = engine.Black
	if got := Evaluate(pos); got != 0 {
		t.Errorf("Evaluate(start, black to move) = %d, want 0", got)
	}
}

// TestEvaluateAntisymmetric is §8 property 8: flipping only the side to
// move must negate the score.
func TestEvaluateAntisymmetric(t *testing.T) {
	fens := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/P6k/8/8/8/8/8/7K w - - 0 1",
	}
	for _, fen := range fens {
		pos := mustFEN(t, fen)
		white := Evaluate(pos)

		flipped := mustFEN(t, fen)
		flipped.SideToMove = flipped.SideToMove.Opponent()
		black := Evaluate(flipped)

		if white != -black {
			t.Errorf("%s: Evaluate = %d, Evaluate(side flipped) = %d, want negation", fen, white, black)
		}
	}
}

func TestEvaluateMaterialAdvantage(t *testing.T) {
	// White is up a queen with everything else level.
	pos := mustFEN(t, "4k3/8/8/8/8/8/8/4KQ2 w - - 0 1")
	if got := Evaluate(pos); got <= QueenValue/2 {
		t.Errorf("Evaluate(white up a queen) = %d, want a clear positive score", got)
	}
}

func TestEvaluateDrawIsZero(t *testing.T) {
	pos := mustFEN(t, "k7/8/8/8/8/8/8/7K w - - 0 1")
	if got := Evaluate(pos); got != 0 {
		t.Errorf("Evaluate(two kings only) = %d, want 0", got)
	}
}

func TestEvaluateCheckmateIsMinusKingValue(t *testing.T) {
	pos := mustFEN(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	for _, uci := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		m, err := engine.ParseUCIMove(pos, uci)
		if err != nil {
			t.Fatalf("ParseUCIMove(%s): %v", uci, err)
		}
		if err := pos.Make(m); err != nil {
			t.Fatalf("Make(%s): %v", uci, err)
		}
	}
	if got := Evaluate(pos); got != -KingValue {
		t.Errorf("Evaluate(fool's mate, black checkmated) = %d, want %d", got, -KingValue)
	}
}

func TestCountDoubledPawns(t *testing.T) {
	// e2 and e3 share a file; only the rearward pawn (e2) has a friendly
	// pawn further toward promotion, so exactly one counts as doubled.
	pos := mustFEN(t, "4k3/8/8/8/8/4P3/4P3/4K3 w - - 0 1")
	if got := countDoubledPawns(pos, engine.White); got != 1 {
		t.Errorf("countDoubledPawns = %d, want 1", got)
	}
	if got := countDoubledPawns(pos, engine.Black); got != 0 {
		t.Errorf("countDoubledPawns(black) = %d, want 0", got)
	}
}

func TestCountBlockedPawns(t *testing.T) {
	pos := mustFEN(t, "4k3/8/8/8/4p3/4P3/8/4K3 w - - 0 1")
	if got := countBlockedPawns(pos, engine.White); got != 1 {
		t.Errorf("countBlockedPawns(white) = %d, want 1", got)
	}
	if got := countBlockedPawns(pos, engine.Black); got != 1 {
		t.Errorf("countBlockedPawns(black) = %d, want 1", got)
	}
}

func TestCountIsolatedPawns(t *testing.T) {
	pos := mustFEN(t, "4k3/8/8/8/8/8/P6P/4K3 w - - 0 1")
	if got := countIsolatedPawns(pos, engine.White); got != 2 {
		t.Errorf("countIsolatedPawns = %d, want 2 (a and h pawns have no neighbor)", got)
	}
}
