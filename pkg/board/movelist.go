package board

import (
	"container/heap"
	"fmt"
	"math"
	"sort"
)

// MovePriority orders moves for search: higher values are tried first.
type MovePriority int32

// MovePriorityFn assigns a priority to a move, e.g. MVV-LVA for captures or
// a history-heuristic count for quiet moves.
type MovePriorityFn func(m Move) MovePriority

// First forces the given move (typically a transposition-table hint) to the
// front, falling back to fn for everything else.
func First(first Move, fn MovePriorityFn) MovePriorityFn {
	return func(m Move) MovePriority {
		if first.Equals(m) {
			return math.MaxInt32
		}
		return fn(m)
	}
}

// SortByPriority sorts moves by descending priority, stable on ties.
func SortByPriority(moves []Move, fn MovePriorityFn) {
	sort.SliceStable(moves, func(i, j int) bool {
		return fn(moves[i]) > fn(moves[j])
	})
}

// MoveList is a fixed-size move priority queue. Search pulls moves off it
// one at a time via Next rather than sorting the whole list up front, so
// that a beta cutoff on an early move skips computing the rest.
type MoveList struct {
	h moveHeap
}

// NewMoveList builds a move list with priorities assigned by fn.
func NewMoveList(moves []Move, fn MovePriorityFn) *MoveList {
	h := make(moveHeap, len(moves))
	for i, m := range moves {
		h[i] = elm{m: m, val: fn(m)}
	}
	heap.Init(&h)
	return &MoveList{h: h}
}

// Next pops the highest-priority remaining move.
func (ml *MoveList) Next() (Move, bool) {
	if ml.Size() == 0 {
		return Move{}, false
	}
	top := heap.Pop(&ml.h).(elm)
	return top.m, true
}

func (ml *MoveList) Size() int {
	return ml.h.Len()
}

func (ml *MoveList) String() string {
	if ml.Size() == 0 {
		return "[size=0]"
	}
	return fmt.Sprintf("[top=%v, size=%v]", ml.h[0].m, ml.Size())
}

type elm struct {
	m   Move
	val MovePriority
}

type moveHeap []elm

func (h moveHeap) Len() int            { return len(h) }
func (h moveHeap) Less(i, j int) bool  { return h[i].val > h[j].val }
func (h moveHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *moveHeap) Push(x interface{}) { panic("fixed-size heap: use NewMoveList") }

func (h *moveHeap) Pop() interface{} {
	n := len(*h)
	ret := (*h)[n-1]
	*h = (*h)[:n-1]
	return ret
}
