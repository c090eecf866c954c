package board

// This file holds the pre-computed, piece-agnostic attack tables for the
// non-sliding pieces (General, Advisor, Elephant, Horse, Soldier), built once
// at package init time. Sliding pieces (Rook, Cannon) are generated by ray
// scans over the live occupancy instead (see rays.go) -- there is no
// rotated-bitboard table for them here.

// Step is a candidate destination paired with the "blocking" square that
// must be empty for the step to be legal (the Elephant's eye, the Horse's
// leg). HasBlock=false means "no blocker required".
type Step struct {
	To      Square
	Block   Square
	HasBlock bool
}

var (
	generalSteps  [NumSquares]Bitboard // palace-constrained, one step orthogonal
	advisorSteps  [NumSquares]Bitboard // palace-constrained, one step diagonal
	elephantSteps [NumSquares][]Step   // two-step diagonal, own side of river, eye must be empty
	horseSteps    [NumSquares][]Step   // L-shape, leg must be empty
	soldierSteps  [NumColors][NumSquares]Bitboard

	// horseAttackers[sq] holds, for each square that could hop a Horse onto
	// sq, the origin and the leg square (relative to the origin) that must
	// be empty. Unlike the Elephant's eye, a Horse's leg is not the midpoint
	// of origin/target, so the origin->target table cannot be reused
	// backwards for attack queries; this is its reverse.
	horseAttackers [NumSquares][]Step

	// soldierAttackers[c][sq] is the set of squares from which a Soldier of
	// color c could move/capture onto sq. Built as the reverse of
	// soldierSteps for the same reason (forward direction depends on the
	// origin's color, not the target).
	soldierAttackers [NumColors][NumSquares]Bitboard
)

func init() {
	initGeneralSteps()
	initAdvisorSteps()
	initElephantSteps()
	initHorseSteps()
	initSoldierSteps()
	initReverseTables()
}

func initReverseTables() {
	for origin := ZeroSquare; origin < NumSquares; origin++ {
		for _, s := range horseSteps[origin] {
			horseAttackers[s.To] = append(horseAttackers[s.To], Step{To: origin, Block: s.Block, HasBlock: true})
		}
		for c := ZeroColor; c < NumColors; c++ {
			for _, target := range soldierSteps[c][origin].Squares() {
				soldierAttackers[c][target] = soldierAttackers[c][target].Set(origin)
			}
		}
	}
}

func inPalace(c Color, f File, r Rank) bool {
	if f < PalaceFileMin || f > PalaceFileMax {
		return false
	}
	if c == Red {
		return r <= Rank(2)
	}
	return r >= Rank(7)
}

// palaceColorOf returns the palace a square belongs to, if any.
func palaceColorOf(sq Square) (Color, bool) {
	f, r := sq.File(), sq.Rank()
	if inPalace(Red, f, r) {
		return Red, true
	}
	if inPalace(Black, f, r) {
		return Black, true
	}
	return 0, false
}

func initGeneralSteps() {
	deltas := [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	for sq := ZeroSquare; sq < NumSquares; sq++ {
		c, ok := palaceColorOf(sq)
		if !ok {
			continue
		}
		f, r := int(sq.File()), int(sq.Rank())
		var bb Bitboard
		for _, d := range deltas {
			nf, nr := f+d[0], r+d[1]
			if nf < 0 || nr < 0 || nf >= int(NumFiles) || nr >= int(NumRanks) {
				continue
			}
			if !inPalace(c, File(nf), Rank(nr)) {
				continue
			}
			bb = bb.Set(NewSquare(File(nf), Rank(nr)))
		}
		generalSteps[sq] = bb
	}
}

func initAdvisorSteps() {
	deltas := [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	for sq := ZeroSquare; sq < NumSquares; sq++ {
		c, ok := palaceColorOf(sq)
		if !ok {
			continue
		}
		f, r := int(sq.File()), int(sq.Rank())
		var bb Bitboard
		for _, d := range deltas {
			nf, nr := f+d[0], r+d[1]
			if nf < 0 || nr < 0 || nf >= int(NumFiles) || nr >= int(NumRanks) {
				continue
			}
			if !inPalace(c, File(nf), Rank(nr)) {
				continue
			}
			bb = bb.Set(NewSquare(File(nf), Rank(nr)))
		}
		advisorSteps[sq] = bb
	}
}

func initElephantSteps() {
	deltas := [][2]int{{2, 2}, {2, -2}, {-2, 2}, {-2, -2}}
	for sq := ZeroSquare; sq < NumSquares; sq++ {
		f, r := int(sq.File()), int(sq.Rank())

		var c Color
		switch {
		case r <= int(RedSideTopRank):
			c = Red
		default:
			c = Black
		}

		var steps []Step
		for _, d := range deltas {
			nf, nr := f+d[0], r+d[1]
			if !inBounds(nf, 0, int(NumFiles)) || !inBounds(nr, 0, int(NumRanks)) {
				continue
			}
			target := NewSquare(File(nf), Rank(nr))
			if !OwnSideMask(c).IsSet(target) {
				continue // would cross the river
			}
			eye := NewSquare(File(f+d[0]/2), Rank(r+d[1]/2))
			steps = append(steps, Step{To: target, Block: eye, HasBlock: true})
		}
		elephantSteps[sq] = steps
	}
}

func initHorseSteps() {
	// {leg delta, target delta} pairs for the eight L-shapes.
	type hop struct{ leg, target [2]int }
	hops := []hop{
		{[2]int{0, 1}, [2]int{1, 2}},
		{[2]int{0, 1}, [2]int{-1, 2}},
		{[2]int{0, -1}, [2]int{1, -2}},
		{[2]int{0, -1}, [2]int{-1, -2}},
		{[2]int{1, 0}, [2]int{2, 1}},
		{[2]int{1, 0}, [2]int{2, -1}},
		{[2]int{-1, 0}, [2]int{-2, 1}},
		{[2]int{-1, 0}, [2]int{-2, -1}},
	}

	for sq := ZeroSquare; sq < NumSquares; sq++ {
		f, r := int(sq.File()), int(sq.Rank())

		var steps []Step
		for _, h := range hops {
			lf, lr := f+h.leg[0], r+h.leg[1]
			tf, tr := f+h.target[0], r+h.target[1]
			if !inBounds(tf, 0, int(NumFiles)) || !inBounds(tr, 0, int(NumRanks)) {
				continue
			}
			leg := NewSquare(File(lf), Rank(lr))
			target := NewSquare(File(tf), Rank(tr))
			steps = append(steps, Step{To: target, Block: leg, HasBlock: true})
		}
		horseSteps[sq] = steps
	}
}

func initSoldierSteps() {
	for sq := ZeroSquare; sq < NumSquares; sq++ {
		f, r := int(sq.File()), int(sq.Rank())

		for c := ZeroColor; c < NumColors; c++ {
			var bb Bitboard

			forward := 1
			if c == Black {
				forward = -1
			}
			if nr := r + forward; nr >= 0 && nr < int(NumRanks) {
				bb = bb.Set(NewSquare(File(f), Rank(nr)))
			}

			if HasCrossedRiver(c, sq) {
				if f > 0 {
					bb = bb.Set(NewSquare(File(f-1), Rank(r)))
				}
				if f < int(NumFiles)-1 {
					bb = bb.Set(NewSquare(File(f+1), Rank(r)))
				}
			}

			soldierSteps[c][sq] = bb
		}
	}
}

// GeneralAttackboard returns the palace-constrained destinations for a
// General at sq.
func GeneralAttackboard(sq Square) Bitboard {
	return generalSteps[sq]
}

// AdvisorAttackboard returns the palace-constrained destinations for an
// Advisor at sq.
func AdvisorAttackboard(sq Square) Bitboard {
	return advisorSteps[sq]
}

// ElephantAttackboard returns the unblocked destinations for an Elephant at
// sq, given the current occupancy.
func ElephantAttackboard(occ Bitboard, sq Square) Bitboard {
	var bb Bitboard
	for _, s := range elephantSteps[sq] {
		if !occ.IsSet(s.Block) {
			bb = bb.Set(s.To)
		}
	}
	return bb
}

// HorseAttackboard returns the unblocked destinations for a Horse at sq,
// given the current occupancy.
func HorseAttackboard(occ Bitboard, sq Square) Bitboard {
	var bb Bitboard
	for _, s := range horseSteps[sq] {
		if !occ.IsSet(s.Block) {
			bb = bb.Set(s.To)
		}
	}
	return bb
}

// SoldierAttackboard returns the destinations for a Soldier of the given
// color at sq (forward only before crossing the river; forward+sideways
// after).
func SoldierAttackboard(c Color, sq Square) Bitboard {
	return soldierSteps[c][sq]
}

// HorseAttackersTo returns the set of squares holding a Horse of either
// color that currently attacks sq, given the occupancy.
func HorseAttackersTo(occ Bitboard, sq Square) Bitboard {
	var bb Bitboard
	for _, s := range horseAttackers[sq] {
		if !occ.IsSet(s.Block) {
			bb = bb.Set(s.To)
		}
	}
	return bb
}

// SoldierAttackersTo returns the set of squares holding a Soldier of the
// given color that currently attacks sq. Soldiers have no blocker to check.
func SoldierAttackersTo(c Color, sq Square) Bitboard {
	return soldierAttackers[c][sq]
}
