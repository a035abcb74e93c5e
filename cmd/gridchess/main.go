// gridchess runs the engine's iterative-deepening search on a fixture
// position and prints each depth's principal variation to stdout. There is
// no UCI/console protocol layer: the front-end that drives a game loop is
// out of scope for this module.
package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/gridchess/engine/pkg/board"
	"github.com/gridchess/engine/pkg/engine"
	"github.com/seekerror/logw"
)

var (
	fixture = flag.String("fixture", "", "ASCII fixture (default to standard opening)")
	depth   = flag.Int("depth", 6, "Maximum iterative-deepening depth")
)

func main() {
	flag.Parse()
	ctx := context.Background()

	pos := board.StandardOpening
	if *fixture != "" {
		pos = *fixture
	}

	e := engine.New(ctx, "gridchess", "gridchess", engine.WithOptions(engine.Options{
		DepthLimit: int8(*depth),
	}))
	if err := e.Reset(ctx, pos); err != nil {
		logw.Exitf(ctx, "Invalid fixture: %v", err)
	}

	out, err := e.Analyze(ctx)
	if err != nil {
		logw.Exitf(ctx, "Analyze failed: %v", err)
	}

	for pv := range out {
		fmt.Println(pv)
	}
}
