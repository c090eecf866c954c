package board

// Tapered material + piece-square evaluation tables. Each (color, kind) has
// a middlegame (MG) and endgame (EG) 90-entry table. Red's tables are
// defined programmatically below; Black's are Red's reflected across the
// river (rank mirrored).

// NominalValue is the material value of a piece kind, in centipawns. The
// General is excluded from material sums (it is never captured: MakeLegal
// rejects any move that leaves the mover's General attacked).
func NominalValue(p Piece) Score {
	switch p {
	case Soldier:
		return 100
	case Advisor, Elephant:
		return 200
	case Horse:
		return 400
	case Cannon:
		return 450
	case Rook:
		return 900
	default:
		return 0
	}
}

// PhaseWeight is the non-pawn (non-Soldier) material phase contribution of
// one piece of the given kind, used to maintain the game-phase counter P.
func PhaseWeight(p Piece) int {
	switch p {
	case Rook:
		return 4
	case Cannon, Horse:
		return 2
	default:
		return 0
	}
}

// PhaseMax is P_max: the phase counter at the start of the game (2 Rooks,
// 2 Cannons, 2 Horses per side).
const PhaseMax = 2*4 + 2*2 + 2*2 + 2*4 + 2*2 + 2*2 // red + black

var mgTable, egTable [NumColors][NumPieces][NumSquares]Score

func init() {
	for _, p := range AllPieces {
		for sq := ZeroSquare; sq < NumSquares; sq++ {
			mg, eg := pstValue(p, sq)
			mgTable[Red][p][sq] = mg
			egTable[Red][p][sq] = eg

			mirror := mirrorSquare(sq)
			mgTable[Black][p][mirror] = mg
			egTable[Black][p][mirror] = eg
		}
	}
}

// mirrorSquare reflects a square across the river, turning a Red-side
// layout into the equivalent Black-side layout (same file, opposite rank).
func mirrorSquare(sq Square) Square {
	return NewSquare(sq.File(), Rank(NumRanks-1)-sq.Rank())
}

// centerDistance is a small helper used by several PSTs to reward
// centrality: 0 at the board's central file, growing towards the edges.
func centerDistance(f File) int {
	d := int(f) - 4
	if d < 0 {
		d = -d
	}
	return d
}

// pstValue computes the Red-perspective (mg, eg) piece-square bonus for a
// piece kind at a square, added on top of NominalValue.
func pstValue(p Piece, sq Square) (Score, Score) {
	f, r := sq.File(), sq.Rank()

	switch p {
	case General:
		// Mild preference for the back point, away from the palace's open
		// middle, in the middlegame; no preference in the endgame.
		if r == 0 && f == 4 {
			return 10, 0
		}
		return 0, 0

	case Advisor:
		// Central palace point (the one touching the General) is the most
		// useful defensive post.
		if f == 4 {
			return 6, 6
		}
		return 0, 0

	case Elephant:
		// Small bonus for an Elephant on file 2 or 6; the central file-4
		// post gets none.
		if f == 2 || f == 6 {
			return 4, 4
		}
		return 0, 0

	case Horse:
		// Horses are strong centrally, weak on the rim -- classic "horse on
		// the rim is dim".
		bonus := Score(4 - centerDistance(f))
		return bonus * 3, bonus * 2

	case Rook:
		// Rooks are strong everywhere; small bonus for central files and for
		// advancing towards the opponent in the middlegame (open lines).
		centrality := Score(4 - centerDistance(f))
		advance := Score(r)
		return centrality + advance, centrality

	case Cannon:
		// Cannons are rewarded for central files only; the rank does not
		// affect the bonus.
		centrality := Score(4 - centerDistance(f))
		return centrality * 2, centrality

	case Soldier:
		// Worthless until across the river; then increasingly valuable as it
		// advances, especially in the middlegame where a soldier near the
		// enemy palace is a serious threat. Endgame values advances too, but
		// more evenly, since soldiers are precious when material is low.
		if !HasCrossedRiver(Red, sq) {
			return 0, 10
		}
		advance := Score(r) - Score(RedSideTopRank)
		return advance * 18, advance*10 + 20

	default:
		return 0, 0
	}
}

// MaterialPST returns the Red-perspective (mg, eg) material+PST contribution
// of a piece of the given color at the given square. Position accumulates
// these raw components incrementally in Make/Undo; only the final read
// tapers them by the phase counter P via "(MG*P + EG*(P_max-P))/P_max", so
// re-tapering already-placed pieces as P changes is never needed.
func MaterialPST(c Color, p Piece, sq Square) (mg, eg Score) {
	mg = NominalValue(p) + mgTable[c][p][sq]
	eg = NominalValue(p) + egTable[c][p][sq]
	if c == Black {
		return -mg, -eg
	}
	return mg, eg
}

// Taper blends mg/eg totals by the phase counter P.
func Taper(mg, eg Score, phase int) Score {
	return (mg*Score(phase) + eg*Score(PhaseMax-phase)) / Score(PhaseMax)
}
