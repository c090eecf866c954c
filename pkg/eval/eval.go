// Package eval contains static position evaluation: tapered material+PST
// (board.Position.Eval), mobility, king safety and tactical pattern bonuses,
// combined and returned from the side-to-move's perspective for direct use
// in NegaMax search.
package eval

import "github.com/herohde/xiangqi/pkg/board"

// Evaluator is a static position evaluator.
type Evaluator interface {
	// Evaluate returns the position score in centipawns from the
	// perspective of the side to move: positive favors the mover.
	Evaluate(p *board.Position) board.Score
}

// Full is the engine's default evaluator: material+PST, mobility, king
// safety and tactical patterns, each computed from Red's perspective and
// summed, then flipped to the side to move.
type Full struct{}

func (Full) Evaluate(p *board.Position) board.Score {
	score := p.Eval() + Mobility(p) + KingSafety(p) + Patterns(p)
	if p.Turn() == board.Black {
		return -score
	}
	return score
}

// Material is a bare material+PST evaluator, useful for regression-testing
// the tapered accumulator in isolation from mobility/safety/patterns.
type Material struct{}

func (Material) Evaluate(p *board.Position) board.Score {
	score := p.Eval()
	if p.Turn() == board.Black {
		return -score
	}
	return score
}
