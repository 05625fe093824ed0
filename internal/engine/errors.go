package engine

import "errors"

// Sentinel errors returned by Position.Make. See §7: generation and
// search never fail, only Make does, and only with one of these four.
var (
	// ErrInvalidSquare: from- or to-square outside 0..63.
	ErrInvalidSquare = errors.New("engine: square out of range")
	// ErrNoPieceAtOrigin: from-square is empty.
	ErrNoPieceAtOrigin = errors.New("engine: no piece at origin square")
	// ErrKingCapture: to-square contains a king. Legal-move filtering
	// never produces this; it guards arbitrary externally supplied
	// moves.
	ErrKingCapture = errors.New("engine: move captures a king")
	// ErrMissingPromotion: move flagged as promotion but the promotion
	// piece type is empty.
	ErrMissingPromotion = errors.New("engine: promotion move missing promotion piece")
)
