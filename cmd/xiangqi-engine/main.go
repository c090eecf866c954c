// xiangqi-engine is a minimal command-line driver for pkg/engine: it plays
// the moves given on the command line and searches the resulting position.
// Process setup, configuration loading and protocol adapters are out of
// scope for this core; this binary exists only to give the façade a real
// entrypoint.
package main

import (
	"context"
	"flag"
	"strings"
	"time"

	"github.com/herohde/xiangqi/pkg/engine"
	"github.com/herohde/xiangqi/pkg/search"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

var (
	depth     = flag.Int("depth", 6, "Search depth limit")
	ttBuckets = flag.Int("tt", 1<<16, "Transposition table bucket count")
	seed      = flag.Int64("seed", 0, "Zobrist table seed")
	book      = flag.String("book", "", "Path to a binary opening book")
	moves     = flag.String("moves", "", "Space-separated moves to play before searching, e.g. \"7062 7967\"")
)

func main() {
	flag.Parse()
	ctx := context.Background()

	e := engine.NewEngine(ctx, *ttBuckets, *seed)

	if *book != "" {
		if err := e.LoadBook(ctx, *book); err != nil {
			logw.Errorf(ctx, "Book not loaded: %v", err)
		}
	}

	for _, m := range strings.Fields(*moves) {
		if err := e.Play(ctx, m); err != nil {
			logw.Exitf(ctx, "Invalid move %q: %v", m, err)
		}
	}

	result := e.Search(ctx, search.Limits{
		Depth:    lang.Some(*depth),
		Deadline: lang.Some(time.Now().Add(10 * time.Second)),
	})
	logw.Infof(ctx, "bestmove=%v score=%v depth=%v nodes=%v", result.BestMove, result.Score, result.Depth, result.Nodes)
}
