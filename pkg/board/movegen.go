package board

// GenMode selects which pseudo-legal moves Generate produces.
type GenMode int

const (
	All GenMode = iota
	CapturesOnly
)

// Generate returns the pseudo-legal moves for the side to move: moves that
// respect piece movement rules and blocking, but have not been checked for
// leaving the mover's own General attacked or for a flying-generals position.
// Use LegalMoves/LegalCaptures to additionally apply those checks.
func Generate(p *Position, mode GenMode) []Move {
	c := p.Turn()
	occ := p.Occupancy()
	own := p.ColorBB(c)
	opp := p.ColorBB(c.Opponent())

	var moves []Move
	for _, piece := range AllPieces {
		for _, from := range p.PieceBB(c, piece).Squares() {
			var targets Bitboard

			switch piece {
			case General:
				targets = GeneralAttackboard(from)
			case Advisor:
				targets = AdvisorAttackboard(from)
			case Elephant:
				targets = ElephantAttackboard(occ, from)
			case Horse:
				targets = HorseAttackboard(occ, from)
			case Rook:
				targets = RookAttackboard(occ, from)
			case Cannon:
				quiet := CannonMoveboard(occ, from)
				captures := CannonCaptureboard(occ, from).And(opp)
				targets = quiet.Or(captures)
			case Soldier:
				targets = SoldierAttackboard(c, from)
			}

			targets = targets.AndNot(own)
			if mode == CapturesOnly {
				targets = targets.And(opp)
			}

			for _, to := range targets.Squares() {
				capture := NoPiece
				if _, cp, ok := p.Square(to); ok {
					capture = cp
				}
				moves = append(moves, Move{From: from, To: to, Piece: piece, Capture: capture})
			}
		}
	}
	return moves
}

// LegalMoves returns every legal move for the side to move. Each candidate
// is played and immediately undone to test legality, leaving p unchanged on
// return.
func LegalMoves(p *Position) []Move {
	return filterLegal(p, Generate(p, All))
}

// LegalCaptures returns every legal capturing move for the side to move,
// used by quiescence search.
func LegalCaptures(p *Position) []Move {
	return filterLegal(p, Generate(p, CapturesOnly))
}

func filterLegal(p *Position, pseudo []Move) []Move {
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		if p.MakeLegal(m) {
			p.Undo()
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMove reports whether the side to move has at least one legal
// move, without building the full list. A position with none is either
// checkmate (IsChecked) or stalemate.
func HasLegalMove(p *Position) bool {
	for _, m := range Generate(p, All) {
		if p.MakeLegal(m) {
			p.Undo()
			return true
		}
	}
	return false
}
