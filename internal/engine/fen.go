package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// FromFEN loads a Position from a FEN string. Parsing is permissive
// per §7: trailing fields (castling, en-passant, half-move clock,
// full-move number) may be absent and default to no-rights,
// no-target, and 0 respectively; a malformed counter also defaults to
// 0 rather than failing the whole parse. Only an empty string or a
// malformed piece-placement field aborts the load; an active-color
// field other than "b" is read as white.
func FromFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return nil, fmt.Errorf("engine: empty FEN")
	}

	p := &Position{
		SideToMove:     White,
		EnPassantWhite: NoSquare,
		EnPassantBlack: NoSquare,
		KingSquare:     [2]Square{NoSquare, NoSquare},
	}

	if err := p.loadPlacement(fields[0]); err != nil {
		return nil, err
	}

	if len(fields) >= 2 && fields[1] == "b" {
		p.SideToMove = Black
	}

	if len(fields) >= 3 && fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				p.CastleWK = true
			case 'Q':
				p.CastleWQ = true
			case 'k':
				p.CastleBK = true
			case 'q':
				p.CastleBQ = true
			}
		}
	}

	if len(fields) >= 4 && fields[3] != "-" {
		if sq, ok := SquareFromAlgebraic(fields[3]); ok {
			if p.SideToMove == Black {
				p.EnPassantBlack = sq
			} else {
				p.EnPassantWhite = sq
			}
		}
	}

	if len(fields) >= 5 {
		if n, err := strconv.Atoi(fields[4]); err == nil && n >= 0 {
			p.HalfMoveClock = n
		}
	}

	if len(fields) >= 6 {
		if n, err := strconv.Atoi(fields[5]); err == nil && n >= 0 {
			p.FullMoveNumber = n
		}
	}

	p.Hash = p.ComputeHash()
	return p, nil
}

// loadPlacement parses FEN's first field (ranks 8 down to 1, '/'
// separated) into p.Squares via Place so the king-square cache comes
// along for free.
func (p *Position) loadPlacement(placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("engine: FEN piece placement must have 8 ranks, got %d", len(ranks))
	}

	for rankIdx, rankStr := range ranks {
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			if file > 7 {
				return fmt.Errorf("engine: too many squares in FEN rank %d", rankIdx+1)
			}
			piece, ok := PieceFromFENChar(byte(ch))
			if !ok {
				return fmt.Errorf("engine: invalid FEN piece character: %c", ch)
			}
			sq, ok := squareFromRowFile(rankIdx, file)
			if !ok {
				return fmt.Errorf("engine: invalid FEN square in rank %d", rankIdx+1)
			}
			p.Place(sq, piece)
			file++
		}
		if file != 8 {
			return fmt.Errorf("engine: FEN rank %d has %d squares, expected 8", rankIdx+1, file)
		}
	}

	return nil
}
