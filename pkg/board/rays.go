package board

// Rook and Cannon are sliding pieces generated by ray scans over the live
// occupancy rather than a pre-computed table: Xiangqi's 90-square,
// non-power-of-two-friendly board makes the classic rotated-bitboard trick
// awkward, and ray scanning at 4 directions x up to 9 steps is cheap enough
// for this board size.

type direction struct{ df, dr int }

var orthogonalDirections = [4]direction{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
}

// step returns the next square in the given direction from sq, or false if
// it would leave the board.
func step(sq Square, d direction) (Square, bool) {
	f, r := int(sq.File())+d.df, int(sq.Rank())+d.dr
	if !inBounds(f, 0, int(NumFiles)) || !inBounds(r, 0, int(NumRanks)) {
		return 0, false
	}
	return NewSquare(File(f), Rank(r)), true
}

// RookAttackboard returns all squares a Rook at sq can move to or capture
// on, stopping at (and including, if occupied) the first blocker in each
// direction.
func RookAttackboard(occ Bitboard, sq Square) Bitboard {
	var bb Bitboard
	for _, d := range orthogonalDirections {
		cur := sq
		for {
			next, ok := step(cur, d)
			if !ok {
				break
			}
			bb = bb.Set(next)
			if occ.IsSet(next) {
				break
			}
			cur = next
		}
	}
	return bb
}

// CannonMoveboard returns the non-capture destinations for a Cannon at sq:
// a ray up to (exclusive of) the first occupied square.
func CannonMoveboard(occ Bitboard, sq Square) Bitboard {
	var bb Bitboard
	for _, d := range orthogonalDirections {
		cur := sq
		for {
			next, ok := step(cur, d)
			if !ok || occ.IsSet(next) {
				break
			}
			bb = bb.Set(next)
			cur = next
		}
	}
	return bb
}

// CannonCaptureboard returns the capture destinations for a Cannon at sq:
// exactly one occupied "screen" square, then the first occupied square past
// it (regardless of color -- callers filter by color when generating moves).
func CannonCaptureboard(occ Bitboard, sq Square) Bitboard {
	var bb Bitboard
	for _, d := range orthogonalDirections {
		cur := sq
		screened := false
		for {
			next, ok := step(cur, d)
			if !ok {
				break
			}
			if !screened {
				if occ.IsSet(next) {
					screened = true
				}
				cur = next
				continue
			}
			if occ.IsSet(next) {
				bb = bb.Set(next)
				break
			}
			cur = next
		}
	}
	return bb
}
