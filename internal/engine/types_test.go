package engine

import "testing"

func TestPieceEncoding(t *testing.T) {
	cases := []struct {
		color Color
		typ   PieceType
		want  Piece
	}{
		{White, Bishop, 17},
		{White, King, 18},
		{White, Knight, 19},
		{White, Pawn, 20},
		{White, Queen, 21},
		{White, Rook, 22},
		{Black, Bishop, 9},
		{Black, King, 10},
		{Black, Knight, 11},
		{Black, Pawn, 12},
		{Black, Queen, 13},
		{Black, Rook, 14},
	}

	for _, tc := range cases {
		t.Run(string(tc.want.FENChar()), func(t *testing.T) {
			got := NewPiece(tc.color, tc.typ)
			if got != tc.want {
				t.Fatalf("NewPiece(%v, %v) = %d, want %d", tc.color, tc.typ, got, tc.want)
			}
			if got.Color() != tc.color {
				t.Errorf("Color() = %v, want %v", got.Color(), tc.color)
			}
			if got.Type() != tc.typ {
				t.Errorf("Type() = %v, want %v", got.Type(), tc.typ)
			}
			if got.IsWhite() != (tc.color == White) {
				t.Errorf("IsWhite() = %v, want %v", got.IsWhite(), tc.color == White)
			}
		})
	}
}

func TestPieceFENRoundTrip(t *testing.T) {
	for _, typ := range []PieceType{Bishop, King, Knight, Pawn, Queen, Rook} {
		for _, color := range []Color{White, Black} {
			p := NewPiece(color, typ)
			ch := p.FENChar()
			got, ok := PieceFromFENChar(ch)
			if !ok {
				t.Fatalf("PieceFromFENChar(%c) failed to parse its own FENChar output", ch)
			}
			if got != p {
				t.Errorf("round trip for %v: got %d, want %d", p, got, p)
			}
		}
	}
}

func TestSquareAlgebraicRoundTrip(t *testing.T) {
	cases := []struct {
		alg  string
		sq   Square
		rank int
		file int
	}{
		{"a8", 0, 8, 0},
		{"h8", 7, 8, 7},
		{"a1", 56, 1, 0},
		{"h1", 63, 1, 7},
		{"e1", 60, 1, 4},
		{"e8", 4, 8, 4},
	}

	for _, tc := range cases {
		t.Run(tc.alg, func(t *testing.T) {
			sq, ok := SquareFromAlgebraic(tc.alg)
			if !ok {
				t.Fatalf("SquareFromAlgebraic(%s) failed", tc.alg)
			}
			if sq != tc.sq {
				t.Fatalf("SquareFromAlgebraic(%s) = %d, want %d", tc.alg, sq, tc.sq)
			}
			if sq.Rank() != tc.rank {
				t.Errorf("Rank() = %d, want %d", sq.Rank(), tc.rank)
			}
			if sq.File() != tc.file {
				t.Errorf("File() = %d, want %d", sq.File(), tc.file)
			}
			if got := sq.String(); got != tc.alg {
				t.Errorf("String() = %s, want %s", got, tc.alg)
			}
		})
	}
}

func TestSquareInvalid(t *testing.T) {
	if NoSquare.IsValid() {
		t.Error("NoSquare must not be valid")
	}
	if Square(64).IsValid() {
		t.Error("square 64 must not be valid")
	}
	if Square(-1).IsValid() {
		t.Error("square -1 must not be valid")
	}
}
