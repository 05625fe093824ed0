package engine

import "math/rand"

// Zobrist tables, seeded once at package init with a fixed source so the
// same position always hashes to the same value across runs and across
// worker clones (see §4.2: "a fixed table Z[square][piece_index]").
var (
	// zobristTable[sq][pieceIndex] is XORed in/out whenever a piece is
	// placed on or removed from sq. pieceIndex packs color and type:
	// white {B,K,N,P,Q,R} = 0..5, black {B,K,N,P,Q,R} = 6..11.
	zobristTable [64][12]uint64

	zobristSideToMove     uint64
	zobristEnPassantWhite uint64
	zobristEnPassantBlack uint64
	zobristCastleWK       uint64
	zobristCastleWQ       uint64
	zobristCastleBK       uint64
	zobristCastleBQ       uint64
)

func init() {
	rng := rand.New(rand.NewSource(0x5D4E3C2B1A))

	for sq := 0; sq < 64; sq++ {
		for idx := 0; idx < 12; idx++ {
			zobristTable[sq][idx] = rng.Uint64()
		}
	}

	zobristSideToMove = rng.Uint64()
	zobristEnPassantWhite = rng.Uint64()
	zobristEnPassantBlack = rng.Uint64()
	zobristCastleWK = rng.Uint64()
	zobristCastleWQ = rng.Uint64()
	zobristCastleBK = rng.Uint64()
	zobristCastleBQ = rng.Uint64()
}

// zobristPieceIndex returns p's slot in zobristTable's second dimension,
// or -1 for an empty piece.
func zobristPieceIndex(p Piece) int {
	if p.IsEmpty() {
		return -1
	}
	base := 0
	if p.Color() == Black {
		base = 6
	}
	return base + int(p.Type()) - 1
}

// hashPiece returns the Zobrist contribution of placing p on sq, or 0 if
// p is empty. XOR it in to add p, XOR it again to remove it.
func hashPiece(p Piece, sq Square) uint64 {
	idx := zobristPieceIndex(p)
	if idx < 0 {
		return 0
	}
	return zobristTable[sq][idx]
}

// ComputeHash recomputes the Zobrist hash from scratch by scanning every
// square and scalar bit. Position.Hash is normally maintained
// incrementally; this is the full XOR recomputation §8 property 2 checks
// it against.
func (p *Position) ComputeHash() uint64 {
	var hash uint64

	for sq := Square(0); sq < 64; sq++ {
		hash ^= hashPiece(p.Squares[sq], sq)
	}

	if p.SideToMove == Black {
		hash ^= zobristSideToMove
	}
	if p.EnPassantWhite != NoSquare {
		hash ^= zobristEnPassantWhite
	}
	if p.EnPassantBlack != NoSquare {
		hash ^= zobristEnPassantBlack
	}
	if p.CastleWK {
		hash ^= zobristCastleWK
	}
	if p.CastleWQ {
		hash ^= zobristCastleWQ
	}
	if p.CastleBK {
		hash ^= zobristCastleBK
	}
	if p.CastleBQ {
		hash ^= zobristCastleBQ
	}

	return hash
}
