package engine

// Direction tables as (row-delta, file-delta) pairs. Using row/file
// pairs and squareFromRowFile's bounds check gets the same wraparound
// rejection §4.3 describes via raw ±1/±7/±8/±9 offsets and modular
// file arithmetic, without re-deriving the file delta by hand at every
// step.
var (
	rookDirs = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

	bishopDirs = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

	queenDirs = [8][2]int{
		{-1, 0}, {1, 0}, {0, -1}, {0, 1},
		{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
	}

	knightDeltas = [8][2]int{
		{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
		{1, -2}, {1, 2}, {2, -1}, {2, 1},
	}
)

// pseudoLegalMoves generates every pseudo-legal move for color's
// pieces on p, regardless of whose turn it actually is — IsAttacked
// calls this for the opponent's color to probe threats. includeCastling
// gates king castling candidates; IsAttacked always passes false to
// avoid the mutual recursion §4.3 warns about (castling legality itself
// depends on IsAttacked).
func (p *Position) pseudoLegalMoves(color Color, includeCastling bool) []Move {
	moves := make([]Move, 0, 32)

	for sq := Square(0); sq < 64; sq++ {
		piece := p.Squares[sq]
		if piece.Color() != color {
			continue
		}

		switch piece.Type() {
		case Pawn:
			p.genPawnMoves(sq, piece, &moves)
		case Knight:
			p.genSteppingMoves(sq, piece, knightDeltas[:], &moves)
		case Bishop:
			p.genSlidingMoves(sq, piece, bishopDirs[:], &moves)
		case Rook:
			p.genSlidingMoves(sq, piece, rookDirs[:], &moves)
		case Queen:
			p.genSlidingMoves(sq, piece, queenDirs[:], &moves)
		case King:
			p.genSteppingMoves(sq, piece, queenDirs[:], &moves)
			if includeCastling {
				p.genCastlingMoves(sq, piece, &moves)
			}
		}
	}

	return moves
}

// genSlidingMoves generates bishop/rook/queen rays: each ray runs until
// it falls off the board, lands on an own piece (excluded), or lands on
// an enemy piece (included as a capture, then the ray stops).
func (p *Position) genSlidingMoves(from Square, piece Piece, dirs [][2]int, moves *[]Move) {
	row, file := int(from.row()), from.File()

	for _, d := range dirs {
		r, f := row, file
		for {
			r += d[0]
			f += d[1]
			to, ok := squareFromRowFile(r, f)
			if !ok {
				break
			}
			target := p.Squares[to]
			if target.IsEmpty() {
				*moves = append(*moves, Move{From: from, To: to, Piece: piece})
				continue
			}
			if target.Color() != piece.Color() {
				*moves = append(*moves, Move{From: from, To: to, Piece: piece, IsCapture: true})
			}
			break
		}
	}
}

// genSteppingMoves generates single-step moves (knight or king) from a
// fixed offset table.
func (p *Position) genSteppingMoves(from Square, piece Piece, deltas [][2]int, moves *[]Move) {
	row, file := int(from.row()), from.File()

	for _, d := range deltas {
		to, ok := squareFromRowFile(row+d[0], file+d[1])
		if !ok {
			continue
		}
		target := p.Squares[to]
		if target.IsEmpty() {
			*moves = append(*moves, Move{From: from, To: to, Piece: piece})
		} else if target.Color() != piece.Color() {
			*moves = append(*moves, Move{From: from, To: to, Piece: piece, IsCapture: true})
		}
	}
}

// genCastlingMoves appends king-move-by-two candidates per §4.3's five
// conditions: right available and king never moved, empty path, king
// not in check, king does not transit or land on an attacked square.
func (p *Position) genCastlingMoves(from Square, piece Piece, moves *[]Move) {
	color := piece.Color()
	opponent := color.Opponent()

	kingHome, kingsideDest, queensideDest := WhiteKingHome, WhiteKingsideDest, WhiteQueensideDest
	rookKingside, rookQueenside := WhiteRookKingside, WhiteRookQueenside
	kingMoved, rightKingside, rightQueenside := p.KingMovedWhite, p.CastleWK, p.CastleWQ
	if color == Black {
		kingHome, kingsideDest, queensideDest = BlackKingHome, BlackKingsideDest, BlackQueensideDest
		rookKingside, rookQueenside = BlackRookKingside, BlackRookQueenside
		kingMoved, rightKingside, rightQueenside = p.KingMovedBlack, p.CastleBK, p.CastleBQ
	}

	if from != kingHome || kingMoved {
		return
	}

	if rightKingside && p.squaresEmpty(kingHome+1, rookKingside-1) &&
		!p.IsAttacked(kingHome, opponent) &&
		!p.IsAttacked(kingHome+1, opponent) &&
		!p.IsAttacked(kingsideDest, opponent) {
		*moves = append(*moves, Move{From: from, To: kingsideDest, Piece: piece})
	}

	if rightQueenside && p.squaresEmpty(rookQueenside+1, kingHome-1) &&
		!p.IsAttacked(kingHome, opponent) &&
		!p.IsAttacked(kingHome-1, opponent) &&
		!p.IsAttacked(queensideDest, opponent) {
		*moves = append(*moves, Move{From: from, To: queensideDest, Piece: piece})
	}
}

// squaresEmpty reports whether every square in [from, to] is empty.
func (p *Position) squaresEmpty(from, to Square) bool {
	for sq := from; sq <= to; sq++ {
		if !p.Squares[sq].IsEmpty() {
			return false
		}
	}
	return true
}

// genPawnMoves generates pushes, the home-rank double push, diagonal
// captures, en passant, and eager promotion expansion (§4.3: the
// generator itself emits all four promotion choices — see DESIGN.md's
// note on the S5 scenario).
func (p *Position) genPawnMoves(from Square, piece Piece, moves *[]Move) {
	color := piece.Color()
	row, file := int(from.row()), from.File()

	forward, homeRow, promoRow := -1, 6, 0
	if color == Black {
		forward, homeRow, promoRow = 1, 1, 7
	}

	if oneTo, ok := squareFromRowFile(row+forward, file); ok && p.Squares[oneTo].IsEmpty() {
		p.appendPawnMove(moves, from, oneTo, piece, false, false, promoRow)

		if row == homeRow {
			if twoTo, ok2 := squareFromRowFile(row+2*forward, file); ok2 && p.Squares[twoTo].IsEmpty() {
				*moves = append(*moves, Move{From: from, To: twoTo, Piece: piece})
			}
		}
	}

	epTarget := p.enPassantTargetFor(color)

	for _, df := range [2]int{-1, 1} {
		to, ok := squareFromRowFile(row+forward, file+df)
		if !ok {
			continue
		}
		target := p.Squares[to]
		switch {
		case !target.IsEmpty() && target.Color() != color:
			p.appendPawnMove(moves, from, to, piece, true, false, promoRow)
		case target.IsEmpty() && epTarget != NoSquare && to == epTarget:
			*moves = append(*moves, Move{From: from, To: to, Piece: piece, IsCapture: true, IsEnPassant: true})
		}
	}
}

// appendPawnMove appends a single pawn move, expanding it into the four
// promotion choices when the destination is the final rank.
func (p *Position) appendPawnMove(moves *[]Move, from, to Square, piece Piece, isCapture, isEnPassant bool, promoRow int) {
	if int(to.row()) == promoRow {
		for _, promo := range PromotionChoices() {
			*moves = append(*moves, Move{
				From:        from,
				To:          to,
				Piece:       piece,
				Promotion:   promo,
				IsCapture:   isCapture,
				IsPromotion: true,
				IsEnPassant: isEnPassant,
			})
		}
		return
	}
	*moves = append(*moves, Move{From: from, To: to, Piece: piece, IsCapture: isCapture, IsEnPassant: isEnPassant})
}
