package search_test

import (
	"math/rand"
	"testing"

	"github.com/herohde/xiangqi/pkg/board"
	"github.com/herohde/xiangqi/pkg/search"
	"github.com/stretchr/testify/assert"
)

func TestTranspositionTableRoundsBucketsDownToPowerOfTwo(t *testing.T) {
	tt := search.NewTranspositionTable(0x1000)
	assert.Equal(t, 0x1000, tt.Buckets())

	tt2 := search.NewTranspositionTable(0x1f00)
	assert.Equal(t, 0x1000, tt2.Buckets())
}

func TestTranspositionTableReadWrite(t *testing.T) {
	tt := search.NewTranspositionTable(256)

	a := board.ZobristHash(rand.Uint64())

	_, ok := tt.Probe(a)
	assert.False(t, ok)

	m := board.Move{From: board.NewSquare(4, 0), To: board.NewSquare(4, 1), Piece: board.General}
	tt.Store(search.Entry{Hash: a, Move: m, Depth: 5, Score: 120, Bound: search.ExactBound})

	entry, ok := tt.Probe(a)
	assert.True(t, ok)
	assert.Equal(t, search.ExactBound, entry.Bound)
	assert.Equal(t, 5, entry.Depth)
	assert.Equal(t, board.Score(120), entry.Score)
	assert.Equal(t, m, entry.Move)

	_, ok = tt.Probe(a ^ 0xff0000)
	assert.False(t, ok)
}

func TestTranspositionTableExactHashUpdatesInPlace(t *testing.T) {
	tt := search.NewTranspositionTable(256)

	a := board.ZobristHash(1)
	m := board.Move{From: board.NewSquare(0, 0), To: board.NewSquare(0, 1), Piece: board.Rook}

	tt.Store(search.Entry{Hash: a, Move: m, Depth: 2, Score: 10, Bound: search.LowerBound})
	tt.Store(search.Entry{Hash: a, Move: m, Depth: 8, Score: 50, Bound: search.ExactBound})

	entry, ok := tt.Probe(a)
	assert.True(t, ok)
	assert.Equal(t, 8, entry.Depth)
	assert.Equal(t, board.Score(50), entry.Score)
	assert.Equal(t, search.ExactBound, entry.Bound)
}

func TestTranspositionTableAgeAffectsReplacement(t *testing.T) {
	// A single-bucket table (bucket count rounds down to 1) forces every
	// distinct hash into the same bucket, exercising the replacement policy.
	tt := search.NewTranspositionTable(1)
	m := board.Move{From: board.NewSquare(0, 0), To: board.NewSquare(0, 1), Piece: board.Rook}

	for i := 0; i < 3; i++ {
		tt.Store(search.Entry{Hash: board.ZobristHash(i + 1), Move: m, Depth: 10, Score: 0, Bound: search.ExactBound})
	}

	tt.NewSearch()
	tt.NewSearch()

	// A shallower entry from the current search fills the last slot.
	tt.Store(search.Entry{Hash: board.ZobristHash(4), Move: m, Depth: 7, Score: 0, Bound: search.ExactBound})

	// After two age ticks the depth-10 entries are worth 10-2*2 = 6, less
	// than the fresh depth-7 entry, so a new entry displaces a stale one.
	// Without aging, the depth-7 entry would be the one evicted.
	tt.Store(search.Entry{Hash: board.ZobristHash(99), Move: m, Depth: 1, Score: 0, Bound: search.ExactBound})

	found := 0
	for i := 1; i <= 3; i++ {
		if _, ok := tt.Probe(board.ZobristHash(i)); ok {
			found++
		}
	}
	_, newOk := tt.Probe(board.ZobristHash(99))
	_, freshOk := tt.Probe(board.ZobristHash(4))

	assert.True(t, newOk, "the new entry must have displaced a stale one")
	assert.True(t, freshOk, "the fresh entry must survive the stale, deeper ones")
	assert.Equal(t, 2, found, "exactly one of the three stale entries must have been evicted")
}

func TestNoTranspositionTableAlwaysMisses(t *testing.T) {
	tt := search.NoTranspositionTable{}
	tt.Store(search.Entry{Hash: 1, Depth: 10, Score: 100, Bound: search.ExactBound})

	_, ok := tt.Probe(1)
	assert.False(t, ok)
	assert.Equal(t, 0, tt.Buckets())
}
