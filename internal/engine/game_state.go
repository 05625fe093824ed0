package engine

// LegalMoves returns every legal move for the side to move: each
// pseudo-legal move is made, the mover's king is tested for check, and
// the move is unmade (§4.3). Opponent pieces never contribute moves
// here, matching the generator's documented contract.
func (p *Position) LegalMoves() []Move {
	color := p.SideToMove
	opponent := color.Opponent()

	pseudo := p.pseudoLegalMoves(color, true)
	legal := make([]Move, 0, len(pseudo))

	for _, m := range pseudo {
		if err := p.Make(m); err != nil {
			continue
		}
		if !p.IsAttacked(p.KingSquareOf(color), opponent) {
			legal = append(legal, m)
		}
		p.Unmake()
	}

	return legal
}

// InCheck reports whether the side to move's king is currently
// attacked.
func (p *Position) InCheck() bool {
	return p.IsAttacked(p.KingSquareOf(p.SideToMove), p.SideToMove.Opponent())
}

// onlyKingsRemain reports whether every occupied square holds a king
// (§4.3: "when only the two kings remain, the game ends in a draw
// immediately").
func (p *Position) onlyKingsRemain() bool {
	for _, piece := range p.Squares {
		if !piece.IsEmpty() && piece.Type() != King {
			return false
		}
	}
	return true
}

// UpdateWinner recomputes and stores p.Winner from the current
// position: a draw if only the two kings remain, otherwise ongoing if
// the side to move has a legal move, otherwise checkmate (the side to
// move loses) if its king is attacked, otherwise stalemate (a draw).
func (p *Position) UpdateWinner() {
	if p.onlyKingsRemain() {
		p.Winner = WinnerDraw
		return
	}

	if len(p.LegalMoves()) > 0 {
		p.Winner = WinnerNone
		return
	}

	if p.InCheck() {
		if p.SideToMove == White {
			p.Winner = WinnerBlack
		} else {
			p.Winner = WinnerWhite
		}
		return
	}

	p.Winner = WinnerDraw
}

// IsGameFinished reports whether the game has ended, recomputing
// Winner from the current position first.
func (p *Position) IsGameFinished() bool {
	p.UpdateWinner()
	return p.Winner != WinnerNone
}

// WinnerFEN recomputes Winner and renders it as the single outcome
// character of §6.
func (p *Position) WinnerFEN() byte {
	p.UpdateWinner()
	return p.Winner.FEN()
}
