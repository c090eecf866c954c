package search

import "github.com/herohde/xiangqi/pkg/board"

// negamax is alpha-beta search with NegaMax sign convention: the returned
// score always favors the side to move. Pseudo-code (ignoring the
// transposition table, null-move pruning, LMR and PVS re-search layered on
// top below):
//
//	function negamax(node, depth, α, β) is
//	    if depth = 0 or node is terminal then
//	        return heuristic value of node
//	    value := −∞
//	    for each child of node do
//	        value := max(value, −negamax(child, depth−1, −β, −α))
//	        α := max(α, value)
//	        if α ≥ β then
//	            break (* β cutoff *)
//	    return value
//
// See: https://en.wikipedia.org/wiki/Negamax.
func (s *searcher) negamax(depth int, alpha, beta board.Score, ply int) (board.Score, []board.Move) {
	s.nodes++
	if s.shouldStop() {
		return 0, nil
	}
	if ply > 0 && (s.pos.RepetitionCount() >= 3 || s.pos.NoProgressPly() >= 60) {
		return board.ZeroScore, nil
	}

	var ttMove board.Move
	if entry, ok := s.tt.Probe(s.pos.Hash()); ok {
		ttMove = entry.Move
		if entry.Depth >= depth {
			switch entry.Bound {
			case ExactBound:
				return entry.Score, []board.Move{entry.Move}
			case LowerBound:
				if entry.Score > alpha {
					alpha = entry.Score
				}
			case UpperBound:
				if entry.Score < beta {
					beta = entry.Score
				}
			}
			if alpha >= beta {
				return entry.Score, []board.Move{entry.Move}
			}
		}
	}

	if depth <= 0 {
		return s.quiescence(alpha, beta, 0), nil
	}

	inCheck := s.pos.IsChecked(s.pos.Turn())

	// Null-move pruning: if the side to move is so far ahead that even
	// passing the turn outright doesn't let the opponent catch up, the
	// real best move will only be better. Guarded against check (a null
	// move while in check is not a legal position to reason about) and
	// against low-material endgames (s.pos.Phase() is the shared
	// non-Soldier material counter; low values mean zugzwang -- where
	// passing would in fact help -- is a live possibility).
	if depth >= 3 && ply > 0 && !inCheck && s.pos.Phase() > 6 {
		const nullReduction = 2
		s.pos.MakeNull()
		score, _ := s.negamax(depth-1-nullReduction, -beta, -beta+1, ply+1)
		s.pos.UndoNull()
		if !s.stopped && -score >= beta {
			return beta, nil
		}
	}

	// A side with no legal moves loses outright in Xiangqi, whether or not
	// its General is currently in check: there is no stalemate draw.
	moves := board.LegalMoves(s.pos)
	if len(moves) == 0 {
		return board.MateScore(ply), nil
	}

	list := board.NewMoveList(moves, board.First(ttMove, orderingPriority(s.hist)))

	bound := UpperBound
	var pv []board.Move
	var bestMove board.Move
	searched := 0

	for {
		m, ok := list.Next()
		if !ok {
			break
		}

		s.pos.Make(m)

		var score board.Score
		var rem []board.Move

		reduced := 0
		if searched >= 4 && depth >= 3 && !m.IsCapture() && !inCheck {
			reduced = 1
		}

		switch {
		case searched == 0:
			// First move: full window, assumed to be the principal variation.
			score, rem = s.negamax(depth-1, -beta, -alpha, ply+1)
			score = -score
		default:
			// Every later move: null-window probe (principal variation
			// search), at reduced depth once move ordering has proven
			// itself deep enough into the list (late-move reduction).
			score, rem = s.negamax(depth-1-reduced, -alpha-1, -alpha, ply+1)
			score = -score
			if score > alpha {
				// Failed high: re-search at full depth with the full
				// [alpha,beta] window.
				score, rem = s.negamax(depth-1, -beta, -alpha, ply+1)
				score = -score
			}
		}

		s.pos.Undo()
		searched++

		if s.stopped {
			return 0, nil
		}

		if score > alpha {
			alpha = score
			bestMove = m
			pv = append([]board.Move{m}, rem...)
			bound = ExactBound
		}
		if alpha >= beta {
			bound = LowerBound
			if !m.IsCapture() {
				s.hist.Update(m, depth)
			}
			break
		}
	}

	s.tt.Store(Entry{Hash: s.pos.Hash(), Move: bestMove, Depth: depth, Score: alpha, Bound: bound})
	return alpha, pv
}
