package board

import "fmt"

// Score is a signed position or move score in centipawns, from the
// perspective of the side to move unless documented otherwise. Mate scores
// are offset by ply so that shorter mates sort higher; see MateIn/MateThreshold.
type Score int32

const (
	ZeroScore Score = 0

	// Mate is the base magnitude for a forced mate, reduced by the number of
	// plies to the mate so that -Mate+1 < -Mate+3 < 0 < Mate-3 < Mate-1.
	Mate Score = 100000

	// MateThreshold is the minimum absolute score that indicates a mate is
	// being reported.
	MateThreshold Score = 30000

	// Inf/NegInf bound alpha-beta search windows; kept strictly wider than any
	// real evaluation or mate score so they never alias a legitimate value.
	Inf    Score = Mate + 1
	NegInf Score = -Mate - 1

	MinScore Score = -1000000
	MaxScore Score = 1000000
)

// Negate flips the score, as required when swapping perspective in NegaMax.
func (s Score) Negate() Score {
	return -s
}

// IsMate returns true iff the score reports a forced mate.
func (s Score) IsMate() bool {
	return s >= MateThreshold || s <= -MateThreshold
}

// MateIn returns the number of plies to mate, valid only if IsMate().
func (s Score) MateIn() int {
	if s >= 0 {
		return int(Mate - s)
	}
	return int(Mate + s)
}

// MateScore returns the score of a side to move that is mated at the given
// ply from the root, -Mate+ply: being mated sooner scores lower, so after
// negation the winning side scores shorter mates higher.
func MateScore(ply int) Score {
	return -Mate + Score(ply)
}

func Max(a, b Score) Score {
	if a > b {
		return a
	}
	return b
}

func Min(a, b Score) Score {
	if a < b {
		return a
	}
	return b
}

func Crop(s Score) Score {
	switch {
	case s > MaxScore:
		return MaxScore
	case s < MinScore:
		return MinScore
	default:
		return s
	}
}

func (s Score) String() string {
	if s.IsMate() {
		return fmt.Sprintf("mate%+d", signOf(s)*((s.MateIn()+1)/2))
	}
	return fmt.Sprintf("%.2f", float64(s)/100)
}

func signOf(s Score) int {
	if s < 0 {
		return -1
	}
	return 1
}
