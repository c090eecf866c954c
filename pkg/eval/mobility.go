package eval

import "github.com/herohde/xiangqi/pkg/board"

// Per-square mobility weights, in centipawns. Rook and Horse mobility
// matters the most since both pieces become much stronger with open lines;
// Cannon mobility is counted over both its move and capture rays.
const (
	rookMobilityWeight   = board.Score(4)
	cannonMobilityWeight = board.Score(3)
	horseMobilityWeight  = board.Score(5)
)

// Mobility returns the Red-minus-Black pseudo-legal destination count for
// Rook, Cannon and Horse, weighted per piece kind. Pseudo-legal
// destinations are used rather than fully legal ones: a full
// legality filter here would mean a make/undo per candidate move, on every
// node, just to score mobility.
func Mobility(p *board.Position) board.Score {
	return mobilityOf(p, board.Red) - mobilityOf(p, board.Black)
}

func mobilityOf(p *board.Position, c board.Color) board.Score {
	occ := p.Occupancy()
	own := p.ColorBB(c)

	var total board.Score
	for _, sq := range p.PieceBB(c, board.Rook).Squares() {
		n := board.RookAttackboard(occ, sq).AndNot(own).PopCount()
		total += board.Score(n) * rookMobilityWeight
	}
	for _, sq := range p.PieceBB(c, board.Horse).Squares() {
		n := board.HorseAttackboard(occ, sq).AndNot(own).PopCount()
		total += board.Score(n) * horseMobilityWeight
	}
	for _, sq := range p.PieceBB(c, board.Cannon).Squares() {
		moves := board.CannonMoveboard(occ, sq).PopCount()
		captures := board.CannonCaptureboard(occ, sq).AndNot(own).PopCount()
		total += board.Score(moves+captures) * cannonMobilityWeight
	}
	return total
}
