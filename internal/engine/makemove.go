package engine

// Make applies m to p, validating it first (§7) and pushing the
// pre-move state onto the undo history only once validation passes —
// a rejected move leaves p untouched, as §7's propagation policy
// requires. See §4.4 for the nine-step algorithm this follows.
func (p *Position) Make(m Move) error {
	if !m.From.IsValid() || !m.To.IsValid() {
		return ErrInvalidSquare
	}

	moving := p.Squares[m.From]
	if moving.IsEmpty() {
		return ErrNoPieceAtOrigin
	}
	if p.Squares[m.To].Type() == King {
		return ErrKingCapture
	}
	if m.IsPromotion && m.Promotion == Empty {
		return ErrMissingPromotion
	}

	p.pushHistory()

	color := moving.Color()
	originalType := moving.Type()

	switch {
	case m.IsEnPassant:
		capturedSq := enPassantCapturedSquare(m.To, color)
		captured := p.Squares[capturedSq]
		p.Place(capturedSq, Piece(Empty))
		p.appendCapture(color, captured)
	case m.IsPromotion:
		moving = NewPiece(color, m.Promotion)
	case m.IsCastle():
		p.performCastleRookMove(m.To, color)
	}

	p.move(m.From, moving, m.To)

	p.clearEnPassantTargets()
	p.updateEnPassantAfterDoublePush(m, originalType, color)
	p.updateCastlingRights(m, originalType, color)

	if originalType == Pawn || m.IsCapture {
		p.HalfMoveClock = 0
	} else {
		p.HalfMoveClock++
	}

	p.toggleSideToMove()
	if color == Black {
		p.FullMoveNumber++
	}

	return nil
}

// Unmake pops the most recently pushed state and restores it verbatim,
// undoing exactly one Make (including the nested rook co-move, which
// does not push its own history entry).
func (p *Position) Unmake() {
	n := len(p.history)
	if n == 0 {
		return
	}
	st := p.history[n-1]
	p.history = p.history[:n-1]

	p.Squares = st.squares
	p.SideToMove = st.sideToMove
	p.CastleWK, p.CastleWQ, p.CastleBK, p.CastleBQ = st.castleWK, st.castleWQ, st.castleBK, st.castleBQ
	p.KingMovedWhite, p.KingMovedBlack = st.kingMovedWhite, st.kingMovedBlack
	p.EnPassantWhite, p.EnPassantBlack = st.enPassantWhite, st.enPassantBlack
	p.CapturedByWhite = p.CapturedByWhite[:st.capturedByWhiteLen]
	p.CapturedByBlack = p.CapturedByBlack[:st.capturedByBlackLen]
	p.KingSquare = st.kingSquare
	p.HalfMoveClock = st.halfMoveClock
	p.FullMoveNumber = st.fullMoveNumber
	p.Winner = st.winner
	p.Hash = st.hash
}

func (p *Position) pushHistory() {
	p.history = append(p.history, undoState{
		squares:            p.Squares,
		sideToMove:         p.SideToMove,
		castleWK:           p.CastleWK,
		castleWQ:           p.CastleWQ,
		castleBK:           p.CastleBK,
		castleBQ:           p.CastleBQ,
		kingMovedWhite:     p.KingMovedWhite,
		kingMovedBlack:     p.KingMovedBlack,
		enPassantWhite:     p.EnPassantWhite,
		enPassantBlack:     p.EnPassantBlack,
		capturedByWhiteLen: len(p.CapturedByWhite),
		capturedByBlackLen: len(p.CapturedByBlack),
		kingSquare:         p.KingSquare,
		halfMoveClock:      p.HalfMoveClock,
		fullMoveNumber:     p.FullMoveNumber,
		winner:             p.Winner,
		hash:               p.Hash,
	})
}

// enPassantCapturedSquare returns the square the captured pawn actually
// sits on, which is one row away from the en-passant target (to) in
// the direction the capturing pawn came from.
func enPassantCapturedSquare(to Square, moverColor Color) Square {
	if moverColor == White {
		return to + 8
	}
	return to - 8
}

// performCastleRookMove is the nested "make" of §4.4 step 5: it moves
// the rook by the same atomic primitive the king's own move uses, but
// outside Make's bookkeeping (it pushes no history of its own and does
// not touch en-passant or castling-rights state; the outer Make does
// that once for the whole compound move).
func (p *Position) performCastleRookMove(kingTo Square, color Color) {
	var rookFrom, rookTo Square
	if color == White {
		if kingTo == WhiteKingsideDest {
			rookFrom, rookTo = WhiteRookKingside, WhiteRookKDest
		} else {
			rookFrom, rookTo = WhiteRookQueenside, WhiteRookQDest
		}
	} else {
		if kingTo == BlackKingsideDest {
			rookFrom, rookTo = BlackRookKingside, BlackRookKDest
		} else {
			rookFrom, rookTo = BlackRookQueenside, BlackRookQDest
		}
	}
	rook := p.Squares[rookFrom]
	p.move(rookFrom, rook, rookTo)
}

func (p *Position) clearEnPassantTargets() {
	p.setEnPassantWhite(NoSquare)
	p.setEnPassantBlack(NoSquare)
}

// updateEnPassantAfterDoublePush implements §4.4 step 7's second
// sentence: a pawn double push sets the *opponent's* en-passant
// target to the square it passed over.
func (p *Position) updateEnPassantAfterDoublePush(m Move, originalType PieceType, color Color) {
	if originalType != Pawn {
		return
	}
	delta := int(m.To) - int(m.From)
	switch {
	case color == White && delta == -16 && m.From >= 48 && m.From <= 55:
		p.setEnPassantBlack(m.From - 8)
	case color == Black && delta == 16 && m.From >= 8 && m.From <= 15:
		p.setEnPassantWhite(m.From + 8)
	}
}

// updateCastlingRights implements §4.4 step 8: a king move clears both
// of its color's rights; a rook moving from, or an enemy capturing on,
// one of the four original rook squares clears that one right.
func (p *Position) updateCastlingRights(m Move, originalType PieceType, color Color) {
	if originalType == King {
		if color == White {
			p.KingMovedWhite = true
			p.clearCastleWK()
			p.clearCastleWQ()
		} else {
			p.KingMovedBlack = true
			p.clearCastleBK()
			p.clearCastleBQ()
		}
	}

	for _, sq := range [2]Square{m.From, m.To} {
		switch sq {
		case WhiteRookQueenside:
			p.clearCastleWQ()
		case WhiteRookKingside:
			p.clearCastleWK()
		case BlackRookQueenside:
			p.clearCastleBQ()
		case BlackRookKingside:
			p.clearCastleBK()
		}
	}
}
