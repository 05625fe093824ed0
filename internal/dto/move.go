// Package dto holds the wire shapes the engine core exposes across the
// host-language boundary (§6): move records and the pieces they carry.
package dto

import "github.com/corvidchess/chesscore/internal/engine"

// MoveDTO is a legal move rendered for the external binding. Numeric
// fields use the encodings of §3: FromPosition/ToPosition are board
// square indices, PieceValue is the moving piece's full color|type
// code.
type MoveDTO struct {
	FromPosition  int8
	ToPosition    int8
	PieceValue    int8
	PromotionType byte
	IsCapture     bool
	IsPromotion   bool
	IsEnPassant   bool
}

// FromMove converts a Move played (or playable) on pos into its DTO.
// pos is consulted only for context the Move itself doesn't carry
// today; currently none is needed, but the signature matches §6 and
// keeps the conversion symmetric with ParseUCIMove's pos parameter.
func FromMove(pos *engine.Position, m engine.Move) MoveDTO {
	_ = pos
	return MoveDTO{
		FromPosition:  int8(m.From),
		ToPosition:    int8(m.To),
		PieceValue:    int8(m.Piece),
		PromotionType: promotionChar(m),
		IsCapture:     m.IsCapture,
		IsPromotion:   m.IsPromotion,
		IsEnPassant:   m.IsEnPassant,
	}
}

// promotionChar renders m's promotion piece as one of qrbnQRBN-, the
// alphabet §6 specifies. The case follows the moving pawn's color,
// matching engine.Piece.FENChar's convention.
func promotionChar(m engine.Move) byte {
	if !m.IsPromotion {
		return '-'
	}
	promoted := engine.NewPiece(m.Piece.Color(), m.Promotion)
	return promoted.FENChar()
}
