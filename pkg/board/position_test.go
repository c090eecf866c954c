package board_test

import (
	"testing"

	"github.com/herohde/xiangqi/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestPositionMakeUndo(t *testing.T) {
	zt := board.NewZobristTable(7)

	t.Run("undo restores hash, eval and turn exactly", func(t *testing.T) {
		p := board.NewInitialPosition(zt)

		hash0 := p.Hash()
		eval0 := p.Eval()
		turn0 := p.Turn()
		ply0 := p.NoProgressPly()

		m := board.Move{From: board.NewSquare(1, 2), To: board.NewSquare(4, 2), Piece: board.Cannon}
		p.Make(m)
		assert.NotEqual(t, hash0, p.Hash())
		assert.Equal(t, turn0.Opponent(), p.Turn())

		p.Undo()
		assert.Equal(t, hash0, p.Hash())
		assert.Equal(t, eval0, p.Eval())
		assert.Equal(t, turn0, p.Turn())
		assert.Equal(t, ply0, p.NoProgressPly())
	})

	t.Run("capture resets the no-progress counter and undo restores it", func(t *testing.T) {
		p := board.NewInitialPosition(zt)

		quiet := board.Move{From: board.NewSquare(4, 3), To: board.NewSquare(4, 4), Piece: board.Soldier}
		p.Make(quiet)
		assert.Equal(t, 1, p.NoProgressPly())

		capture := board.Move{From: board.NewSquare(1, 2), To: board.NewSquare(1, 9), Piece: board.Cannon, Capture: board.Horse}
		p.Make(capture)
		assert.Equal(t, 0, p.NoProgressPly())

		p.Undo()
		assert.Equal(t, 1, p.NoProgressPly())
	})

	t.Run("sequence of make/undo returns to the initial position", func(t *testing.T) {
		p := board.NewInitialPosition(zt)
		hash0, eval0 := p.Hash(), p.Eval()

		moves := board.LegalMoves(p)
		assert.Equal(t, 44, len(moves))

		for i := 0; i < 5 && i < len(moves); i++ {
			ok := p.MakeLegal(moves[i])
			assert.True(t, ok)
			p.Undo()
			assert.Equal(t, hash0, p.Hash())
			assert.Equal(t, eval0, p.Eval())
		}
	})
}

func TestPositionRepetitionCount(t *testing.T) {
	zt := board.NewZobristTable(7)
	p := board.NewInitialPosition(zt)
	hash0 := p.Hash()

	redOut := board.Move{From: board.NewSquare(0, 0), To: board.NewSquare(0, 1), Piece: board.Rook}
	redBack := board.Move{From: board.NewSquare(0, 1), To: board.NewSquare(0, 0), Piece: board.Rook}
	blackOut := board.Move{From: board.NewSquare(0, 9), To: board.NewSquare(0, 8), Piece: board.Rook}
	blackBack := board.Move{From: board.NewSquare(0, 8), To: board.NewSquare(0, 9), Piece: board.Rook}

	assert.Equal(t, 1, p.RepetitionCount())

	for i := 0; i < 3; i++ {
		p.Make(redOut)
		p.Make(blackOut)
		p.Make(redBack)
		p.Make(blackBack)
		assert.Equal(t, hash0, p.Hash(), "shuttling both rooks out and back must restore the exact position")
	}

	assert.Equal(t, 4, p.RepetitionCount(), "the initial position recurred 3 times on top of its own first occurrence")
}
