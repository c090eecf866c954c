package eval

import "github.com/herohde/xiangqi/pkg/board"

// KingSafety returns the Black-minus-Red exposure penalty: the opponent's
// weakness is worth just as much as our own safety. A General's safety in
// Xiangqi comes almost entirely from its two Advisors and two Elephants;
// losing them matters more the more attacking material (Cannon, Rook,
// Horse) the opponent still has.
func KingSafety(p *board.Position) board.Score {
	return weaknessOf(p, board.Black) - weaknessOf(p, board.Red)
}

func weaknessOf(p *board.Position, c board.Color) board.Score {
	missingAdvisors := 2 - p.PieceBB(c, board.Advisor).PopCount()
	if missingAdvisors < 0 {
		missingAdvisors = 0
	}
	missingElephants := 2 - p.PieceBB(c, board.Elephant).PopCount()
	if missingElephants < 0 {
		missingElephants = 0
	}

	opp := c.Opponent()
	attackers := board.Score(p.PieceBB(opp, board.Cannon).PopCount())*3 +
		board.Score(p.PieceBB(opp, board.Rook).PopCount())*2 +
		board.Score(p.PieceBB(opp, board.Horse).PopCount())

	exposure := board.Score(missingAdvisors)*8 + board.Score(missingElephants)*5
	return exposure * (attackers + 2) / 4
}
