package search

import "github.com/herohde/xiangqi/pkg/board"

// HistoryTable accumulates a score for quiet moves that have produced beta
// cutoffs in the past, independent of the position they occurred in. It is
// a swappable interface, matching the TranspositionTable/
// NoTranspositionTable pattern, so that search correctness tests can
// disable it.
type HistoryTable interface {
	Score(m board.Move) board.MovePriority
	Update(m board.Move, depth int)
}

type historyTable struct {
	counts [board.NumSquares][board.NumSquares]int
}

// NewHistoryTable returns an empty history heuristic table.
func NewHistoryTable() HistoryTable {
	return &historyTable{}
}

func (h *historyTable) Score(m board.Move) board.MovePriority {
	return board.MovePriority(h.counts[m.From][m.To])
}

func (h *historyTable) Update(m board.Move, depth int) {
	h.counts[m.From][m.To] += depth * depth
}

// NoHistory disables the history heuristic; every quiet move sorts equally.
type NoHistory struct{}

func (NoHistory) Score(board.Move) board.MovePriority { return 0 }
func (NoHistory) Update(board.Move, int)              {}

// mvvLVABase keeps every capture's priority above the highest plausible
// history-heuristic count, so captures are always tried before quiets.
const mvvLVABase = board.MovePriority(1 << 20)

// orderingPriority ranks captures by MVV-LVA (most valuable victim, least
// valuable attacker) ahead of quiet moves ranked by history count.
func orderingPriority(hist HistoryTable) board.MovePriorityFn {
	return func(m board.Move) board.MovePriority {
		if !m.IsCapture() {
			return hist.Score(m)
		}
		victim := board.MovePriority(board.NominalValue(m.Capture))
		attacker := board.MovePriority(board.NominalValue(m.Piece))
		return mvvLVABase + victim*16 - attacker
	}
}
