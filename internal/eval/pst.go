// Package eval implements chesscore's static evaluator: material,
// pawn-structure penalties, mobility, and piece-square tables. See §4.5.
package eval

// Piece-square tables, one entry per square in chesscore's rank-8-first
// indexing (row 0 = rank 8 ... row 7 = rank 1), values in centipawns
// from White's perspective. Black's bonus for a piece on square s is
// looked up at s^56, the vertical mirror. Grounded on the teacher's
// bot/eval.go tables (same per-rank shape, converted from fractions of
// a pawn to centipawns and reordered to this engine's square indexing);
// queen carries no positional table, matching the teacher.

var pawnPST = [64]int{
	// rank 8
	0, 0, 0, 0, 0, 0, 0, 0,
	// rank 7
	50, 50, 60, 70, 70, 60, 50, 50,
	// rank 6
	30, 30, 40, 50, 50, 40, 30, 30,
	// rank 5
	20, 20, 30, 40, 40, 30, 20, 20,
	// rank 4
	15, 15, 20, 35, 35, 20, 15, 15,
	// rank 3
	10, 10, 20, 30, 30, 20, 10, 10,
	// rank 2
	0, 0, 0, 0, 0, 0, 0, 0,
	// rank 1
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightPST = [64]int{
	// rank 8
	-50, -40, -30, -30, -30, -30, -40, -50,
	// rank 7
	-40, -20, 0, 5, 5, 0, -20, -40,
	// rank 6
	-30, 5, 10, 15, 15, 10, 5, -30,
	// rank 5
	-30, 0, 15, 20, 20, 15, 0, -30,
	// rank 4
	-30, 5, 15, 20, 20, 15, 5, -30,
	// rank 3
	-30, 0, 10, 15, 15, 10, 0, -30,
	// rank 2
	-40, -20, 0, 0, 0, 0, -20, -40,
	// rank 1
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopPST = [64]int{
	// rank 8
	-20, -10, -10, -10, -10, -10, -10, -20,
	// rank 7
	-10, 5, 0, 0, 0, 0, 5, -10,
	// rank 6
	-10, 10, 10, 10, 10, 10, 10, -10,
	// rank 5
	-10, 0, 10, 10, 10, 10, 0, -10,
	// rank 4
	-10, 5, 5, 10, 10, 5, 5, -10,
	// rank 3
	-10, 0, 5, 10, 10, 5, 0, -10,
	// rank 2
	-10, 0, 0, 0, 0, 0, 0, -10,
	// rank 1
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookPST = [64]int{
	// rank 8
	0, 0, 0, 0, 0, 0, 0, 0,
	// rank 7
	25, 25, 25, 25, 25, 25, 25, 25,
	// rank 6
	-5, 0, 0, 0, 0, 0, 0, -5,
	// rank 5
	-5, 0, 0, 0, 0, 0, 0, -5,
	// rank 4
	-5, 0, 0, 0, 0, 0, 0, -5,
	// rank 3
	-5, 0, 0, 0, 0, 0, 0, -5,
	// rank 2
	5, 10, 10, 10, 10, 10, 10, 5,
	// rank 1
	0, 0, 0, 0, 0, 0, 0, 0,
}

// queenPST carries no positional bonus, matching the teacher.
var queenPST = [64]int{}

// kingMiddlePST favors the castled corners and penalizes the center;
// the teacher had no middlegame king table (TermChess only evaluates
// with the endgame one), so this is authored fresh in the same
// per-rank style for the middlegame/endgame split §4.5 requires.
var kingMiddlePST = [64]int{
	// rank 8
	-30, -40, -40, -50, -50, -40, -40, -30,
	// rank 7
	-30, -40, -40, -50, -50, -40, -40, -30,
	// rank 6
	-30, -40, -40, -50, -50, -40, -40, -30,
	// rank 5
	-30, -40, -40, -50, -50, -40, -40, -30,
	// rank 4
	-20, -30, -30, -40, -40, -30, -30, -20,
	// rank 3
	-10, -20, -20, -20, -20, -20, -20, -10,
	// rank 2
	20, 20, 0, 0, 0, 0, 20, 20,
	// rank 1
	20, 30, 10, 0, 0, 10, 30, 20,
}

var kingEndPST = [64]int{
	// rank 8
	-30, -40, -40, -50, -50, -40, -40, -30,
	// rank 7
	-30, -40, -40, -50, -50, -40, -40, -30,
	// rank 6
	-30, -40, -20, 0, 0, -20, -40, -30,
	// rank 5
	-30, -30, 0, 20, 20, 0, -30, -30,
	// rank 4
	-30, -30, 0, 20, 20, 0, -30, -30,
	// rank 3
	-30, -40, -20, 0, 0, -20, -40, -30,
	// rank 2
	-30, -40, -40, -50, -50, -40, -40, -30,
	// rank 1
	-30, -40, -40, -50, -50, -40, -40, -30,
}
