package dto

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvidchess/chesscore/internal/engine"
)

func TestFromMoveQuietMove(t *testing.T) {
	pos, err := engine.FromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)

	m, err := engine.ParseUCIMove(pos, "e2e4")
	require.NoError(t, err)

	got := FromMove(pos, m)
	require.EqualValues(t, m.From, got.FromPosition)
	require.EqualValues(t, m.To, got.ToPosition)
	require.EqualValues(t, m.Piece, got.PieceValue)
	require.Equal(t, byte('-'), got.PromotionType)
	require.False(t, got.IsCapture)
	require.False(t, got.IsPromotion)
	require.False(t, got.IsEnPassant)
}

func TestFromMoveEnPassant(t *testing.T) {
	pos, err := engine.FromFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	require.NoError(t, err)

	m, err := engine.ParseUCIMove(pos, "e5d6")
	require.NoError(t, err)
	require.True(t, m.IsEnPassant)

	got := FromMove(pos, m)
	require.True(t, got.IsCapture)
	require.True(t, got.IsEnPassant)
	require.Equal(t, byte('-'), got.PromotionType)
}

func TestFromMovePromotion(t *testing.T) {
	pos, err := engine.FromFEN("8/P6k/8/8/8/8/8/7K w - - 0 1")
	require.NoError(t, err)

	m, err := engine.ParseUCIMove(pos, "a7a8q")
	require.NoError(t, err)

	got := FromMove(pos, m)
	require.True(t, got.IsPromotion)
	require.Equal(t, byte('Q'), got.PromotionType)
}

func TestFromMoveBlackPromotionIsLowercase(t *testing.T) {
	pos, err := engine.FromFEN("7k/8/8/8/8/8/p7/7K b - - 0 1")
	require.NoError(t, err)

	m, err := engine.ParseUCIMove(pos, "a2a1n")
	require.NoError(t, err)

	got := FromMove(pos, m)
	require.Equal(t, byte('n'), got.PromotionType)
}
