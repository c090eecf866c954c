// Package engine exposes the synchronous façade a UI or protocol adapter
// drives: new_engine/reset/play/undo/search/load_book. It owns the single
// Position instance plus the transposition and history tables that live for
// the lifetime of the engine.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/herohde/xiangqi/pkg/board"
	"github.com/herohde/xiangqi/pkg/book"
	"github.com/herohde/xiangqi/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

// SearchResult is the outcome of one engine.Search call.
type SearchResult struct {
	BestMove board.Move
	Score    board.Score
	Depth    int
	Nodes    uint64
	PV       []board.Move
}

// Engine encapsulates game-playing state, search and the opening book
// behind a mutex-guarded, synchronous API.
type Engine struct {
	id uuid.UUID

	zt       *board.ZobristTable
	seed     int64
	ttBuckets int

	mu   sync.Mutex
	pos  *board.Position
	tt   search.TranspositionTable
	hist search.HistoryTable
	book book.Book
}

// NewEngine constructs an engine with a transposition table sized to
// ttBuckets buckets (rounded down to a power of two) and a Zobrist table
// seeded deterministically from seed, reset to the initial position.
func NewEngine(ctx context.Context, ttBuckets int, seed int64) *Engine {
	e := &Engine{
		id:        uuid.New(),
		seed:      seed,
		ttBuckets: ttBuckets,
		book:      book.Empty,
	}
	e.zt = board.NewZobristTable(seed)
	e.ResetToInitialPosition(ctx)

	logw.Infof(ctx, "Initialized engine %v %v, instance=%v", Name(), version, e.id)
	return e
}

// Name returns the engine name.
func Name() string {
	return "xiangqi-engine"
}

// ResetToInitialPosition discards the current game and starts a fresh one
// from the standard starting layout. The transposition and history tables
// are also cleared, since their entries are keyed by a hash space that no
// longer corresponds to any reachable position in the new game.
func (e *Engine) ResetToInitialPosition(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.pos = board.NewInitialPosition(e.zt)
	e.tt = search.NewTranspositionTable(e.ttBuckets)
	e.hist = search.NewHistoryTable()

	logw.Infof(ctx, "Reset to initial position, instance=%v", e.id)
}

// Play applies a move supplied in f1r1f2r2 exchange notation. The move must
// match a currently legal move; piece/capture metadata is recovered from
// the legal move list rather than trusted from the caller.
func (e *Engine) Play(ctx context.Context, move string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	candidate, err := board.ParseMove(move)
	if err != nil {
		return fmt.Errorf("invalid move %q: %w", move, err)
	}

	for _, m := range board.LegalMoves(e.pos) {
		if !m.Equals(candidate) {
			continue
		}
		e.pos.Make(m)
		logw.Infof(ctx, "Play %v, instance=%v", m, e.id)
		return nil
	}
	return fmt.Errorf("illegal move: %v", move)
}

// Undo takes back the most recently played move.
func (e *Engine) Undo(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.pos.CanUndo() {
		return fmt.Errorf("no move to take back")
	}
	e.pos.Undo()

	logw.Infof(ctx, "Undo, instance=%v", e.id)
	return nil
}

// Search runs a search from the current position under the given limits and
// returns its result. The opening book, if loaded, is consulted first; a
// book hit short-circuits the search entirely.
func (e *Engine) Search(ctx context.Context, limits search.Limits) SearchResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	if m, ok := e.book.Pick(e.pos.Hash()); ok {
		logw.Debugf(ctx, "Book hit %v, instance=%v", m, e.id)
		return SearchResult{BestMove: m, PV: []board.Move{m}}
	}

	pv := search.Search(ctx, e.pos, e.tt, e.hist, limits)

	logw.Infof(ctx, "Search depth=%v score=%v nodes=%v pv=%v, instance=%v",
		pv.Depth, pv.Score, pv.Nodes, board.FormatMoves(pv.Moves), e.id)

	return SearchResult{
		BestMove: pv.Move,
		Score:    pv.Score,
		Depth:    pv.Depth,
		Nodes:    pv.Nodes,
		PV:       pv.Moves,
	}
}

// LoadBook loads a binary opening book from path. On a corrupt or missing
// file, the failure is logged and returned, and the engine keeps whatever
// book it had before (none, unless one was loaded earlier).
func (e *Engine) LoadBook(ctx context.Context, path string) error {
	b, err := book.Load(path)
	if err != nil {
		logw.Errorf(ctx, "CorruptBook %v: %v, instance=%v", path, err, e.id)
		return err
	}

	e.mu.Lock()
	e.book = b
	e.mu.Unlock()

	logw.Infof(ctx, "Loaded book %v, %v positions, instance=%v", path, b.Size(), e.id)
	return nil
}

// InCheckmateOrStalemate reports whether the side to move has no legal
// moves, and whether it is currently in check -- Xiangqi has no true
// stalemate draw: a side with no legal moves loses regardless of check.
func (e *Engine) InCheckmateOrStalemate(ctx context.Context) (inCheck, noMoves bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.pos.IsChecked(e.pos.Turn()), !board.HasLegalMove(e.pos)
}
