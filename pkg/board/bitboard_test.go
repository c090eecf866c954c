package board_test

import (
	"testing"

	"github.com/herohde/xiangqi/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestBitboard(t *testing.T) {

	t.Run("popcount", func(t *testing.T) {
		tests := []struct {
			bb       board.Bitboard
			expected int
		}{
			{board.EmptyBitboard, 0},
			{board.BitMask(board.NewSquare(4, 0)), 1},
			{board.BitMask(board.NewSquare(4, 0)).Or(board.BitMask(board.NewSquare(4, 9))), 2},
		}

		for _, tt := range tests {
			assert.Equal(t, tt.expected, tt.bb.PopCount())
		}
	})

	t.Run("set and clear", func(t *testing.T) {
		sq := board.NewSquare(3, 6)
		bb := board.EmptyBitboard.Set(sq)
		assert.True(t, bb.IsSet(sq))
		assert.False(t, bb.IsEmpty())

		bb = bb.Clear(sq)
		assert.False(t, bb.IsSet(sq))
		assert.True(t, bb.IsEmpty())
	})

	t.Run("squares round-trip in ascending order", func(t *testing.T) {
		var bb board.Bitboard
		for _, f := range []board.File{8, 0, 4} {
			bb = bb.Set(board.NewSquare(f, 5))
		}

		sqs := bb.Squares()
		assert.Equal(t, []board.Square{
			board.NewSquare(0, 5),
			board.NewSquare(4, 5),
			board.NewSquare(8, 5),
		}, sqs)
	})

	t.Run("palace mask size", func(t *testing.T) {
		assert.Equal(t, 9, board.PalaceMask(board.Red).PopCount())
		assert.Equal(t, 9, board.PalaceMask(board.Black).PopCount())
		assert.True(t, board.PalaceMask(board.Red).And(board.PalaceMask(board.Black)).IsEmpty())
	})

	t.Run("has crossed river", func(t *testing.T) {
		assert.False(t, board.HasCrossedRiver(board.Red, board.NewSquare(0, 4)))
		assert.True(t, board.HasCrossedRiver(board.Red, board.NewSquare(0, 5)))
		assert.False(t, board.HasCrossedRiver(board.Black, board.NewSquare(0, 5)))
		assert.True(t, board.HasCrossedRiver(board.Black, board.NewSquare(0, 4)))
	})
}
