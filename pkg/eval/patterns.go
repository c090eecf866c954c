package eval

import "github.com/herohde/xiangqi/pkg/board"

// Fixed bonuses for recognizable tactical patterns, in centipawns.
const (
	bottomCannonBonus = board.Score(35)
	hollowCannonBonus = board.Score(45)
	trappedHorseBonus = board.Score(15)
)

// Patterns returns the Red-minus-Black total of the recognized tactical
// patterns: a Cannon on the opponent's back rank (a "bottom cannon"), a
// Cannon sharing the opponent's General's file with
// nothing between them (a "hollow cannon" -- any piece the opponent
// interposes becomes capturable), and opponent Horses with no legal hop
// (fully blocked at the leg).
func Patterns(p *board.Position) board.Score {
	return patternsOf(p, board.Red) - patternsOf(p, board.Black)
}

func patternsOf(p *board.Position, c board.Color) board.Score {
	var s board.Score
	if hasBottomCannon(p, c) {
		s += bottomCannonBonus
	}
	if hasHollowCannon(p, c) {
		s += hollowCannonBonus
	}
	s += board.Score(countTrappedHorses(p, c.Opponent())) * trappedHorseBonus
	return s
}

func hasBottomCannon(p *board.Position, c board.Color) bool {
	back := board.NumRanks - 1
	if c == board.Black {
		back = board.ZeroRank
	}
	return !p.PieceBB(c, board.Cannon).And(board.BitRank(back)).IsEmpty()
}

func hasHollowCannon(p *board.Position, c board.Color) bool {
	general := p.GeneralSquare(c.Opponent())
	for _, sq := range p.PieceBB(c, board.Cannon).Squares() {
		if sq.File() != general.File() {
			continue
		}
		if fileIsClear(p, sq, general) {
			return true
		}
	}
	return false
}

func fileIsClear(p *board.Position, a, b board.Square) bool {
	lo, hi := a.Rank(), b.Rank()
	if lo > hi {
		lo, hi = hi, lo
	}
	for r := lo + 1; r < hi; r++ {
		if !p.IsEmpty(board.NewSquare(a.File(), r)) {
			return false
		}
	}
	return true
}

func countTrappedHorses(p *board.Position, c board.Color) int {
	occ := p.Occupancy()
	n := 0
	for _, sq := range p.PieceBB(c, board.Horse).Squares() {
		if board.HorseAttackboard(occ, sq).IsEmpty() {
			n++
		}
	}
	return n
}
