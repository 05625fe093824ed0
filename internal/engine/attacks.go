package engine

// IsAttacked reports whether sq is attacked by any piece of byColor.
// Per §4.3 it is built on the move generator itself: byColor's
// pseudo-legal moves (king moves generated without castling, to avoid
// the mutual recursion castling legality would otherwise create) are
// scanned for one landing on sq. A pawn's diagonal "attack" on an empty
// square never shows up this way, since pawn pseudo-moves only capture
// onto occupied squares — so it is checked separately, the fix §9's
// open question on castling-through-check settles on.
func (p *Position) IsAttacked(sq Square, byColor Color) bool {
	if !sq.IsValid() {
		return false
	}

	for _, m := range p.pseudoLegalMoves(byColor, false) {
		if m.To == sq {
			return true
		}
	}

	return p.pawnAttacksSquare(sq, byColor)
}

// pawnAttacksSquare reports whether a pawn of byColor sits on one of
// sq's attack diagonals, regardless of what (if anything) occupies sq.
func (p *Position) pawnAttacksSquare(sq Square, byColor Color) bool {
	row, file := int(sq.row()), sq.File()

	attackerRow := row - 1
	if byColor == White {
		attackerRow = row + 1
	}

	for _, df := range [2]int{-1, 1} {
		attackerSq, ok := squareFromRowFile(attackerRow, file+df)
		if !ok {
			continue
		}
		piece := p.Squares[attackerSq]
		if piece.Type() == Pawn && piece.Color() == byColor {
			return true
		}
	}

	return false
}
