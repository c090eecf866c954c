// perft is a movegen debugging tool. See: https://www.chessprogramming.org/Perft_Results.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/herohde/xiangqi/pkg/board"
	"github.com/seekerror/logw"
)

var (
	depth  = flag.Int("depth", 4, "Search depth")
	seed   = flag.Int64("seed", 0, "Zobrist table seed")
	divide = flag.Bool("divide", false, "Divide counts by initial move")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	zt := board.NewZobristTable(*seed)
	pos := board.NewInitialPosition(zt)

	for i := 1; i <= *depth; i++ {
		start := time.Now()
		nodes := perft(pos, i, *divide && i == *depth)
		duration := time.Since(start)

		println(fmt.Sprintf("perft,%v,%v,%v", i, nodes, duration.Microseconds()))
	}

	logw.Infof(ctx, "Done")
}

func perft(pos *board.Position, depth int, d bool) int64 {
	if depth == 0 {
		return 1
	}

	var nodes int64
	for _, m := range board.LegalMoves(pos) {
		pos.Make(m)
		count := perft(pos, depth-1, false)
		pos.Undo()

		if d {
			println(fmt.Sprintf("%v: %v", m, count))
		}
		nodes += count
	}
	return nodes
}
