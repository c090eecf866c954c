package eval_test

import (
	"testing"

	"github.com/herohde/xiangqi/pkg/board"
	"github.com/herohde/xiangqi/pkg/eval"
	"github.com/stretchr/testify/assert"
)

func TestFullEvaluatorSymmetry(t *testing.T) {
	zt := board.NewZobristTable(9)

	t.Run("initial position is balanced", func(t *testing.T) {
		p := board.NewInitialPosition(zt)
		assert.Equal(t, board.ZeroScore, eval.Full{}.Evaluate(p))
	})

	t.Run("losing a Horse is a large, unfavorable swing for the side that lost it", func(t *testing.T) {
		p := board.NewInitialPosition(zt)
		before := eval.Full{}.Evaluate(p)

		// Red's Cannon jumps the Black screen Cannon and captures Black's
		// Horse outright.
		p.Make(board.Move{From: board.NewSquare(1, 2), To: board.NewSquare(1, 9), Piece: board.Cannon, Capture: board.Horse})

		after := eval.Full{}.Evaluate(p)
		// after is reported from Black's perspective (now to move), so a
		// material gain for Red shows up as a large negative swing.
		assert.True(t, after < before, "expected a large unfavorable swing, before=%v after=%v", before, after)
	})
}

func TestHollowCannonPattern(t *testing.T) {
	zt := board.NewZobristTable(9)
	p := board.NewInitialPosition(zt)

	before := eval.Patterns(p)

	// Clear Red's side of the center file and place a Red Cannon on it,
	// directly facing the Black General with nothing in between.
	p.Make(board.Move{From: board.NewSquare(4, 3), To: board.NewSquare(3, 3), Piece: board.Soldier})
	p.Make(board.Move{From: board.NewSquare(4, 6), To: board.NewSquare(3, 6), Piece: board.Soldier})
	p.Make(board.Move{From: board.NewSquare(4, 0), To: board.NewSquare(4, 1), Piece: board.General})
	p.Make(board.Move{From: board.NewSquare(3, 6), To: board.NewSquare(3, 5), Piece: board.Soldier})
	p.Make(board.Move{From: board.NewSquare(1, 2), To: board.NewSquare(4, 2), Piece: board.Cannon})

	after := eval.Patterns(p)
	assert.True(t, after-before >= 40, "hollow cannon pattern should add at least 40cp, got %v", after-before)
}
