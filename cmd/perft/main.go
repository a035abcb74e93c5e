// perft is a movegen debugging tool. See: https://www.chessprogramming.org/Perft_Results.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/gridchess/engine/pkg/board"
	"github.com/seekerror/logw"
)

var (
	depth   = flag.Int("depth", 4, "Search depth")
	fixture = flag.String("fixture", "", "Start position (default to standard opening)")
	divide  = flag.Bool("divide", false, "Divide counts by initial ply")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	start := board.StandardOpening
	if *fixture != "" {
		start = *fixture
	}

	pos, err := board.NewPosition(start)
	if err != nil {
		logw.Exitf(ctx, "Invalid fixture %q: %v", start, err)
	}

	for i := 1; i <= *depth; i++ {
		t := time.Now()
		nodes := perft(pos, i, *divide && i == *depth)
		duration := time.Since(t)

		fmt.Printf("perft,%v,%v,%v\n", i, nodes, duration.Microseconds())
	}
}

func perft(pos *board.Position, depth int, d bool) int64 {
	if depth == 0 {
		return 1
	}

	var nodes int64
	for _, ply := range pos.AllLegalPlys(pos.SideToMove()) {
		prev, hasPrev := pos.LastPly()
		pos.Make(ply)
		count := perft(pos, depth-1, false)
		if hasPrev {
			pos.Unmake(ply, &prev)
		} else {
			pos.Unmake(ply, nil)
		}

		if d {
			fmt.Printf("%v: %v\n", ply, count)
		}
		nodes += count
	}
	return nodes
}
