package search

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sync/errgroup"

	"github.com/corvidchess/chesscore/internal/engine"
	"github.com/corvidchess/chesscore/internal/enginelog"
	"github.com/corvidchess/chesscore/internal/searchconfig"
)

var log = enginelog.GetLog("chesscore.search")

// Result is the outcome of a root search.
type Result struct {
	Move         engine.Move
	Score        int
	NodesVisited uint64
	SearchID     string
}

// Search runs a fixed-depth search from pos's current state, root-
// parallel across the first-ply legal moves (§4.7, §5). pos itself is
// never mutated: each worker clones it before making its first-ply
// move, matching §5's "no shared Position between workers".
func Search(ctx context.Context, pos *engine.Position, cfg searchconfig.SearchConfig) (Result, error) {
	searchID := uuid.NewString()

	moves := pos.LegalMoves()
	if len(moves) == 0 {
		return Result{SearchID: searchID}, nil
	}
	moves = orderMoves(pos, moves, true)

	workers := cfg.RootWorkers
	if workers <= 0 {
		workers = cpuid.CPU.LogicalCores
	}
	if workers <= 0 {
		workers = 1
	}
	if workers > len(moves) {
		workers = len(moves)
	}

	log.Infof("search %s: depth=%d root_moves=%d workers=%d", searchID, cfg.Depth, len(moves), workers)

	var (
		mu         sync.Mutex
		bestScore  = -infScore - 1
		bestMove   engine.Move
		nodesTotal uint64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, m := range moves {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			worker := pos.Copy()
			if err := worker.Make(m); err != nil {
				return err
			}

			var nodes uint64
			score := -negamax(worker, cfg.Depth-1, -infScore, infScore, &nodes)

			atomic.AddUint64(&nodesTotal, nodes)

			mu.Lock()
			if score > bestScore {
				bestScore = score
				bestMove = m
			}
			mu.Unlock()

			log.Debugf("search %s: move=%s score=%d nodes=%d", searchID, m.String(), score, nodes)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	log.Infof("search %s: best=%s score=%d nodes=%d", searchID, bestMove.String(), bestScore, nodesTotal)

	return Result{
		Move:         bestMove,
		Score:        bestScore,
		NodesVisited: nodesTotal,
		SearchID:     searchID,
	}, nil
}
