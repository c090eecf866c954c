// Package search implements alpha-beta game tree search over board.Position:
// iterative deepening, quiescence search, null-move pruning, late-move
// reduction, principal-variation re-search and a transposition table. The
// search runs on a single goroutine with cooperative cancellation: a caller
// gets a direct, synchronous result and cancels it by cancelling the
// context or letting the deadline pass.
package search

import (
	"context"
	"time"

	"github.com/herohde/xiangqi/pkg/board"
	"github.com/herohde/xiangqi/pkg/eval"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// Limits bounds a search. An absent field means that bound is not enforced;
// with no Depth set (or Depth <= 0), Search deepens to at most depth 64.
type Limits struct {
	Depth    lang.Optional[int]
	Nodes    lang.Optional[uint64]
	Deadline lang.Optional[time.Time]
}

// PV is the principal variation found at one iterative-deepening depth.
type PV struct {
	Depth int
	Move  board.Move
	Score board.Score
	Nodes uint64
	Moves []board.Move
	Time  time.Duration
}

// deadlineCheckInterval is how often (in nodes) the search checks the
// context and deadline, rather than on every node.
const deadlineCheckInterval = 4096

type searcher struct {
	ctx   context.Context
	pos   *board.Position
	tt    TranspositionTable
	hist  HistoryTable
	eval  eval.Evaluator
	nodes uint64

	limits  Limits
	stopped bool
}

func (s *searcher) shouldStop() bool {
	if s.stopped {
		return true
	}
	if s.nodes%deadlineCheckInterval != 0 {
		return false
	}
	if contextx.IsCancelled(s.ctx) {
		s.stopped = true
	}
	if n, ok := s.limits.Nodes.V(); ok && s.nodes >= n {
		s.stopped = true
	}
	if d, ok := s.limits.Deadline.V(); ok && !time.Now().Before(d) {
		s.stopped = true
	}
	return s.stopped
}

// Search runs iterative deepening from the current position up to
// limits.Depth (or until the node/time budget or context is exhausted),
// returning the deepest complete result found; if the search is stopped
// during depth 1, that interrupted depth-1 result is returned. The position
// is restored to its initial state before Search returns.
func Search(ctx context.Context, pos *board.Position, tt TranspositionTable, hist HistoryTable, limits Limits) PV {
	s := &searcher{ctx: ctx, pos: pos, tt: tt, hist: hist, eval: eval.Full{}, limits: limits}
	tt.NewSearch()

	var best PV
	maxDepth, ok := limits.Depth.V()
	if !ok || maxDepth <= 0 {
		maxDepth = 64
	}

	for depth := 1; depth <= maxDepth; depth++ {
		start := time.Now()
		score, pv := s.negamax(depth, board.NegInf, board.Inf, 0)
		if s.stopped && depth > 1 {
			break
		}

		best = PV{
			Depth: depth,
			Move:  firstOrZero(pv),
			Score: score,
			Nodes: s.nodes,
			Moves: pv,
			Time:  time.Since(start),
		}

		if score.IsMate() || s.stopped {
			break
		}
	}
	return best
}

func firstOrZero(pv []board.Move) board.Move {
	if len(pv) == 0 {
		return board.Move{}
	}
	return pv[0]
}
