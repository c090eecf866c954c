package search

import (
	"github.com/herohde/xiangqi/pkg/board"
	"github.com/herohde/xiangqi/pkg/eval"
)

// maxQuiescenceDepth bounds the capture-chain recursion so a long forced
// capture sequence cannot blow the stack or the time budget; at the bound,
// the position is scored as if quiet.
const maxQuiescenceDepth = 32

// quiescence is a capture-only alpha-beta search from the current position,
// used at the leaves of the main search to avoid the horizon effect:
// stopping evaluation mid-capture-exchange misjudges who actually wins the
// material.
func (s *searcher) quiescence(alpha, beta board.Score, qdepth int) board.Score {
	s.nodes++
	if s.shouldStop() {
		return alpha
	}

	standPat := eval.Full{}.Evaluate(s.pos)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}
	if qdepth >= maxQuiescenceDepth {
		return alpha
	}

	captures := board.LegalCaptures(s.pos)
	board.SortByPriority(captures, orderingPriority(s.hist))

	for _, m := range captures {
		s.pos.Make(m)
		score := -s.quiescence(-beta, -alpha, qdepth+1)
		s.pos.Undo()

		if s.stopped {
			return alpha
		}
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}
