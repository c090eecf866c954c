package board

import "strings"

// Position is the mutable board state: piece placement, side to move, and
// the incremental state (hash, material/PST totals, phase counter, no-
// progress ply count) needed by search and evaluation. Position is mutated
// in place via Make/Undo, which must be exact inverses of one another -- an
// undo stack rather than a persistent tree of positions, since search
// revisits and backs out of millions of positions per move.
type Position struct {
	zt *ZobristTable

	// pieces[c][p] is the bitboard of color c's pieces of kind p. Slot
	// NoPiece (0) is not a piece kind; it is kept as the aggregate
	// occupancy bitboard for color c, updated alongside every place/remove.
	pieces [NumColors][NumPieces]Bitboard

	turn Color
	hash ZobristHash

	// noProgressPly counts plies (half-moves) since the last capture, for
	// the 60-ply no-progress draw rule.
	noProgressPly int

	// mg/eg are the raw, untapered material+PST sums from Red's
	// perspective, maintained incrementally by place/remove. phase is the
	// non-Soldier material counter P. Position.Eval tapers them on read.
	mg, eg Score
	phase  int

	history    []undoFrame
	repetition []ZobristHash
}

type undoFrame struct {
	move           Move
	captured       Piece
	prevHash       ZobristHash
	prevNoProgress int
	prevMG, prevEG Score
	prevPhase      int
}

// NewInitialPosition returns the standard Xiangqi starting position.
func NewInitialPosition(zt *ZobristTable) *Position {
	p := &Position{zt: zt, turn: Red}

	backRank := [...]Piece{Rook, Horse, Elephant, Advisor, General, Advisor, Elephant, Horse, Rook}
	for f, piece := range backRank {
		p.place(Red, piece, NewSquare(File(f), ZeroRank))
		p.place(Black, piece, NewSquare(File(f), NumRanks-1))
	}
	for _, f := range [...]File{1, 7} {
		p.place(Red, Cannon, NewSquare(f, 2))
		p.place(Black, Cannon, NewSquare(f, NumRanks-1-2))
	}
	for _, f := range [...]File{0, 2, 4, 6, 8} {
		p.place(Red, Soldier, NewSquare(f, 3))
		p.place(Black, Soldier, NewSquare(f, NumRanks-1-3))
	}

	p.repetition = append(p.repetition, p.hash)
	return p
}

// Placement is one piece to drop onto a board built by NewPosition.
type Placement struct {
	Color  Color
	Piece  Piece
	Square Square
}

// NewPosition builds an arbitrary position from an explicit piece list, for
// constructing test and analysis positions that do not arise from playing
// out the initial position move by move.
func NewPosition(zt *ZobristTable, turn Color, placements []Placement) *Position {
	p := &Position{zt: zt, turn: turn}
	for _, pl := range placements {
		p.place(pl.Color, pl.Piece, pl.Square)
	}
	p.repetition = append(p.repetition, p.hash)
	return p
}

// place adds a piece to the board, maintaining the aggregate bitboard, the
// incremental hash, and the incremental material/PST/phase accumulators.
func (p *Position) place(c Color, piece Piece, sq Square) {
	p.pieces[c][piece] = p.pieces[c][piece].Set(sq)
	p.pieces[c][NoPiece] = p.pieces[c][NoPiece].Set(sq)
	p.hash ^= p.zt.PieceKey(c, piece, sq)

	mg, eg := MaterialPST(c, piece, sq)
	p.mg += mg
	p.eg += eg
	p.phase += PhaseWeight(piece)
}

// remove is the exact inverse of place.
func (p *Position) remove(c Color, piece Piece, sq Square) {
	p.pieces[c][piece] = p.pieces[c][piece].Clear(sq)
	p.pieces[c][NoPiece] = p.pieces[c][NoPiece].Clear(sq)
	p.hash ^= p.zt.PieceKey(c, piece, sq)

	mg, eg := MaterialPST(c, piece, sq)
	p.mg -= mg
	p.eg -= eg
	p.phase -= PhaseWeight(piece)
}

// Turn returns the side to move.
func (p *Position) Turn() Color {
	return p.turn
}

// Hash returns the position's zobrist hash, maintained incrementally.
func (p *Position) Hash() ZobristHash {
	return p.hash
}

// Phase returns the current non-Soldier material phase counter P.
func (p *Position) Phase() int {
	return p.phase
}

// NoProgressPly returns the number of plies since the last capture.
func (p *Position) NoProgressPly() int {
	return p.noProgressPly
}

// Eval returns the tapered material+PST evaluation from Red's perspective
// (positive favors Red).
func (p *Position) Eval() Score {
	return Taper(p.mg, p.eg, p.phase)
}

// RepetitionCount returns the number of times the current hash has occurred
// in this position's history, including the current occurrence. A result of
// 3 means the current position has been reached three times.
func (p *Position) RepetitionCount() int {
	n := 0
	for _, h := range p.repetition {
		if h == p.hash {
			n++
		}
	}
	return n
}

// Occupancy returns the union of all pieces on the board.
func (p *Position) Occupancy() Bitboard {
	return p.pieces[Red][NoPiece].Or(p.pieces[Black][NoPiece])
}

// ColorBB returns the union of the given color's pieces.
func (p *Position) ColorBB(c Color) Bitboard {
	return p.pieces[c][NoPiece]
}

// PieceBB returns the bitboard of the given color's pieces of the given
// kind. piece must not be NoPiece.
func (p *Position) PieceBB(c Color, piece Piece) Bitboard {
	return p.pieces[c][piece]
}

// IsEmpty returns true iff no piece occupies sq.
func (p *Position) IsEmpty(sq Square) bool {
	return !p.Occupancy().IsSet(sq)
}

// Square returns the piece occupying sq, if any.
func (p *Position) Square(sq Square) (Color, Piece, bool) {
	if !p.Occupancy().IsSet(sq) {
		return 0, NoPiece, false
	}
	for c := ZeroColor; c < NumColors; c++ {
		if !p.pieces[c][NoPiece].IsSet(sq) {
			continue
		}
		for _, piece := range AllPieces {
			if p.pieces[c][piece].IsSet(sq) {
				return c, piece, true
			}
		}
	}
	return 0, NoPiece, false
}

// GeneralSquare returns the square of the given color's General. Returns
// ZeroSquare if the General is missing, which should not happen in a
// reachable position (MakeLegal never allows a move that leaves a General
// capturable).
func (p *Position) GeneralSquare(c Color) Square {
	bb := p.pieces[c][General]
	if bb.IsEmpty() {
		return ZeroSquare
	}
	return bb.LSB()
}

// IsAttacked reports whether any of c's opponent's pieces attacks sq.
// Advisors and Elephants never attack an enemy General: both are confined to
// their own half of the board (Elephant never crosses the river, Advisor
// never leaves its own palace) and so can never reach a square on the
// opponent's side where a General could be threatened.
func (p *Position) IsAttacked(c Color, sq Square) bool {
	opp := c.Opponent()
	occ := p.Occupancy()

	if !GeneralAttackboard(sq).And(p.pieces[opp][General]).IsEmpty() {
		return true
	}
	if !HorseAttackersTo(occ, sq).And(p.pieces[opp][Horse]).IsEmpty() {
		return true
	}
	if !RookAttackboard(occ, sq).And(p.pieces[opp][Rook]).IsEmpty() {
		return true
	}
	if !CannonCaptureboard(occ, sq).And(p.pieces[opp][Cannon]).IsEmpty() {
		return true
	}
	if !SoldierAttackersTo(opp, sq).And(p.pieces[opp][Soldier]).IsEmpty() {
		return true
	}
	return false
}

// IsChecked reports whether c's General is currently attacked.
func (p *Position) IsChecked(c Color) bool {
	return p.IsAttacked(c, p.GeneralSquare(c))
}

// generalsFacing reports whether the two Generals stand on the same open
// file with nothing between them -- the "flying generals" rule makes this
// an illegal position regardless of whose move just created it.
func (p *Position) generalsFacing() bool {
	red, black := p.GeneralSquare(Red), p.GeneralSquare(Black)
	if red.File() != black.File() {
		return false
	}
	return RookAttackboard(p.Occupancy(), red).IsSet(black)
}

// Make applies a pseudo-legal move in place. m.Piece and m.Capture must
// already be filled in correctly by the caller (see movegen.go); Make itself
// does no legality checking. Use MakeLegal to additionally reject moves that
// leave the mover's own General attacked or create a flying-generals
// position.
func (p *Position) Make(m Move) {
	frame := undoFrame{
		move:           m,
		captured:       m.Capture,
		prevHash:       p.hash,
		prevNoProgress: p.noProgressPly,
		prevMG:         p.mg,
		prevEG:         p.eg,
		prevPhase:      p.phase,
	}

	mover := p.turn
	p.remove(mover, m.Piece, m.From)
	if m.Capture != NoPiece {
		p.remove(mover.Opponent(), m.Capture, m.To)
	}
	p.place(mover, m.Piece, m.To)

	p.turn = mover.Opponent()
	p.hash ^= p.zt.TurnKey()

	if m.Capture != NoPiece {
		p.noProgressPly = 0
	} else {
		p.noProgressPly++
	}

	p.history = append(p.history, frame)
	p.repetition = append(p.repetition, p.hash)
}

// CanUndo reports whether there is a move to undo.
func (p *Position) CanUndo() bool {
	return len(p.history) > 0
}

// Undo reverses the most recent Make. Panics if there is no move to undo.
func (p *Position) Undo() {
	n := len(p.history) - 1
	frame := p.history[n]
	p.history = p.history[:n]
	p.repetition = p.repetition[:len(p.repetition)-1]

	mover := p.turn.Opponent()

	p.remove(mover, frame.move.Piece, frame.move.To)
	if frame.captured != NoPiece {
		p.place(mover.Opponent(), frame.captured, frame.move.To)
	}
	p.place(mover, frame.move.Piece, frame.move.From)

	// place/remove already restore hash/mg/eg/phase exactly by symmetric
	// XOR and arithmetic; re-assigning from the saved frame is a cheap,
	// defensive guarantee of the make/undo identity invariant.
	p.turn = mover
	p.hash = frame.prevHash
	p.noProgressPly = frame.prevNoProgress
	p.mg = frame.prevMG
	p.eg = frame.prevEG
	p.phase = frame.prevPhase
}

// MakeNull passes the turn without moving a piece, used by search's
// null-move pruning. UndoNull must follow it exactly as Undo follows Make.
func (p *Position) MakeNull() {
	p.history = append(p.history, undoFrame{
		prevHash:       p.hash,
		prevNoProgress: p.noProgressPly,
		prevMG:         p.mg,
		prevEG:         p.eg,
		prevPhase:      p.phase,
	})

	p.turn = p.turn.Opponent()
	p.hash ^= p.zt.TurnKey()
	p.noProgressPly++

	p.repetition = append(p.repetition, p.hash)
}

// UndoNull reverses the most recent MakeNull.
func (p *Position) UndoNull() {
	n := len(p.history) - 1
	frame := p.history[n]
	p.history = p.history[:n]
	p.repetition = p.repetition[:len(p.repetition)-1]

	p.turn = p.turn.Opponent()
	p.hash = frame.prevHash
	p.noProgressPly = frame.prevNoProgress
	p.mg = frame.prevMG
	p.eg = frame.prevEG
	p.phase = frame.prevPhase
}

// MakeLegal applies m and returns true iff the resulting position is legal
// (the mover's own General is not attacked, and the Generals do not face
// each other on an open file). On an illegal move, it undoes the move
// before returning false, leaving the position unchanged.
func (p *Position) MakeLegal(m Move) bool {
	mover := p.turn
	p.Make(m)
	if p.IsChecked(mover) || p.generalsFacing() {
		p.Undo()
		return false
	}
	return true
}

// String renders the board as 10 ranks of 9 single-character cells, Black's
// back rank first, matching Bitboard.String()'s orientation. Upper case is
// Red, lower case is Black.
func (p *Position) String() string {
	var sb strings.Builder
	for r := Rank(NumRanks - 1); ; r-- {
		for f := ZeroFile; f < NumFiles; f++ {
			c, piece, ok := p.Square(NewSquare(f, r))
			switch {
			case !ok:
				sb.WriteRune('.')
			case c == Red:
				sb.WriteString(strings.ToUpper(piece.String()))
			default:
				sb.WriteString(piece.String())
			}
		}
		if r == ZeroRank {
			break
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}
