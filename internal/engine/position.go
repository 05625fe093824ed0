package engine

// Winner encodes the outcome of a Position, reusing the Color bits: 0
// while the game is ongoing, 8 if black has won, 16 if white has won,
// 24 (black|white) for a draw.
type Winner int8

const (
	WinnerNone  Winner = 0
	WinnerBlack Winner = Winner(Black)
	WinnerWhite Winner = Winner(White)
	WinnerDraw  Winner = Winner(Black) | Winner(White)
)

// FEN renders w as the single winner character of §6: w, b, d, or -.
func (w Winner) FEN() byte {
	switch w {
	case WinnerWhite:
		return 'w'
	case WinnerBlack:
		return 'b'
	case WinnerDraw:
		return 'd'
	default:
		return '-'
	}
}

// Original rook/king home squares, used by castling legality and the
// rook co-move in make/unmake. Row 0 is rank 8 under this board's
// rank-8-first indexing, so white's back rank is row 7.
const (
	WhiteKingHome      Square = 60 // e1
	WhiteRookKingside  Square = 63 // h1
	WhiteRookQueenside Square = 56 // a1
	WhiteKingsideDest  Square = 62 // g1
	WhiteQueensideDest Square = 58 // c1
	WhiteRookKDest     Square = 61 // f1
	WhiteRookQDest     Square = 59 // d1

	BlackKingHome      Square = 4 // e8
	BlackRookKingside  Square = 7 // h8
	BlackRookQueenside Square = 0 // a8
	BlackKingsideDest  Square = 6 // g8
	BlackQueensideDest Square = 2 // c8
	BlackRookKDest     Square = 5 // f8
	BlackRookQDest     Square = 3 // d8
)

// Position is the full aggregate state of a chess game: the board, side
// to move, castling/en-passant state, capture history, king-square
// cache, move counters, winner code, and incremental Zobrist hash. See
// §3.
type Position struct {
	Squares [64]Piece

	SideToMove Color

	// Castling rights: four independent booleans, monotonically
	// non-increasing between FEN loads (§3 invariant 4).
	CastleWK bool
	CastleWQ bool
	CastleBK bool
	CastleBQ bool

	// KingMoved flags are tracked alongside the rights above; a king
	// move clears both of that color's rights regardless of whether the
	// king ever reaches a castling destination.
	KingMovedWhite bool
	KingMovedBlack bool

	// En-passant targets: the destination square a capturing pawn of
	// that color would move to, or NoSquare. At most one is ever set in
	// a legal position (§3 invariant 3).
	EnPassantWhite Square
	EnPassantBlack Square

	// Captured-piece lists, in capture order, keyed by the capturing
	// side.
	CapturedByWhite []Piece
	CapturedByBlack []Piece

	// KingSquare caches each color's king square: index 0 is white,
	// index 1 is black (Color.Index).
	KingSquare [2]Square

	HalfMoveClock  int
	FullMoveNumber int

	Winner Winner

	Hash uint64

	history []undoState
}

// undoState is a full snapshot of everything Make mutates, pushed
// before a move is applied and popped verbatim by Unmake. Capture
// lists are restored by truncation rather than by copy: Make only ever
// appends to them, so recording the pre-move length is enough.
type undoState struct {
	squares [64]Piece

	sideToMove Color

	castleWK, castleWQ, castleBK, castleBQ bool
	kingMovedWhite, kingMovedBlack         bool

	enPassantWhite, enPassantBlack Square

	capturedByWhiteLen, capturedByBlackLen int

	kingSquare [2]Square

	halfMoveClock  int
	fullMoveNumber int

	winner Winner
	hash   uint64
}

// NewPosition returns an empty Position: no pieces placed, white to
// move, full castling rights, no en-passant targets, move counters at
// their initial values. Callers load an actual game with FromFEN.
func NewPosition() *Position {
	p := &Position{
		SideToMove:     White,
		CastleWK:       true,
		CastleWQ:       true,
		CastleBK:       true,
		CastleBQ:       true,
		EnPassantWhite: NoSquare,
		EnPassantBlack: NoSquare,
		KingSquare:     [2]Square{NoSquare, NoSquare},
		FullMoveNumber: 1,
	}
	p.Hash = p.ComputeHash()
	return p
}

// PieceAt returns the piece on sq, or the empty piece for an
// out-of-range square.
func (p *Position) PieceAt(sq Square) Piece {
	if !sq.IsValid() {
		return Piece(Empty)
	}
	return p.Squares[sq]
}

// IsValid reports whether sq is a real board square.
func (p *Position) IsValid(sq Square) bool {
	return sq.IsValid()
}

// KingSquareOf returns the cached king square for c.
func (p *Position) KingSquareOf(c Color) Square {
	return p.KingSquare[c.Index()]
}

// enPassantTargetFor returns the en-passant target square a capturing
// pawn of moverColor may land on, or NoSquare if none is set.
func (p *Position) enPassantTargetFor(moverColor Color) Square {
	if moverColor == White {
		return p.EnPassantWhite
	}
	return p.EnPassantBlack
}

// Place writes piece onto sq, updating the king-square cache and the
// incremental Zobrist hash. Writing to an invalid square is a no-op.
// Any piece already on sq is XORed out before piece is XORed in.
func (p *Position) Place(sq Square, piece Piece) {
	if !sq.IsValid() {
		return
	}

	old := p.Squares[sq]
	if !old.IsEmpty() {
		p.Hash ^= hashPiece(old, sq)
		if old.Type() == King {
			p.KingSquare[old.Color().Index()] = NoSquare
		}
	}

	p.Squares[sq] = piece

	if !piece.IsEmpty() {
		p.Hash ^= hashPiece(piece, sq)
		if piece.Type() == King {
			p.KingSquare[piece.Color().Index()] = sq
		}
	}
}

// move is the atomic compound write described in §4.1: it reads the
// captured piece at to, places piece at to, clears from, appends any
// captured piece to the mover's capture list, and maintains the king-
// square cache and incremental Zobrist hash. It returns the captured
// piece (the empty piece if to was empty).
func (p *Position) move(from Square, piece Piece, to Square) Piece {
	captured := p.Squares[to]
	if !captured.IsEmpty() {
		p.Hash ^= hashPiece(captured, to)
		p.appendCapture(piece.Color(), captured)
	}

	p.Hash ^= hashPiece(p.Squares[from], from)
	p.Hash ^= hashPiece(piece, to)

	p.Squares[from] = Piece(Empty)
	p.Squares[to] = piece

	if piece.Type() == King {
		p.KingSquare[piece.Color().Index()] = to
	}

	return captured
}

// appendCapture records captured as taken by the side by.
func (p *Position) appendCapture(by Color, captured Piece) {
	if by == White {
		p.CapturedByWhite = append(p.CapturedByWhite, captured)
	} else {
		p.CapturedByBlack = append(p.CapturedByBlack, captured)
	}
}

// setEnPassantWhite replaces the white en-passant target, XORing the
// presence bitstring only when presence actually changes (§4.2).
func (p *Position) setEnPassantWhite(sq Square) {
	if (p.EnPassantWhite != NoSquare) != (sq != NoSquare) {
		p.Hash ^= zobristEnPassantWhite
	}
	p.EnPassantWhite = sq
}

// setEnPassantBlack is setEnPassantWhite's black-side counterpart.
func (p *Position) setEnPassantBlack(sq Square) {
	if (p.EnPassantBlack != NoSquare) != (sq != NoSquare) {
		p.Hash ^= zobristEnPassantBlack
	}
	p.EnPassantBlack = sq
}

// clearCastleWK drops the white kingside right, XORing its bitstring
// only on the one transition from true to false (rights are monotone).
func (p *Position) clearCastleWK() {
	if p.CastleWK {
		p.CastleWK = false
		p.Hash ^= zobristCastleWK
	}
}

func (p *Position) clearCastleWQ() {
	if p.CastleWQ {
		p.CastleWQ = false
		p.Hash ^= zobristCastleWQ
	}
}

func (p *Position) clearCastleBK() {
	if p.CastleBK {
		p.CastleBK = false
		p.Hash ^= zobristCastleBK
	}
}

func (p *Position) clearCastleBQ() {
	if p.CastleBQ {
		p.CastleBQ = false
		p.Hash ^= zobristCastleBQ
	}
}

// toggleSideToMove flips the side to move and XORs its bitstring.
func (p *Position) toggleSideToMove() {
	p.Hash ^= zobristSideToMove
	p.SideToMove = p.SideToMove.Opponent()
}

// Copy returns an independent deep copy of p, suitable for handing to
// a root-parallel search worker: the clone shares no backing array or
// slice with p (§5: "each worker owns an independent Position").
func (p *Position) Copy() *Position {
	clone := *p
	clone.CapturedByWhite = append([]Piece(nil), p.CapturedByWhite...)
	clone.CapturedByBlack = append([]Piece(nil), p.CapturedByBlack...)
	clone.history = nil
	return &clone
}
