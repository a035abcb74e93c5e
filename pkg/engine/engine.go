package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gridchess/engine/pkg/board"
	"github.com/gridchess/engine/pkg/eval"
	"github.com/gridchess/engine/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"go.uber.org/atomic"
)

var version = build.NewVersion(0, 1, 0)

// Options configures engine search behavior.
type Options struct {
	// DepthLimit is the maximum iterative-deepening depth. Zero means
	// DefaultDepthLimit.
	DepthLimit int8
	// Weights are the evaluator's coefficients. Zero value means
	// eval.DefaultWeights.
	Weights eval.Weights
}

// DefaultDepthLimit is used when Options.DepthLimit is unset.
const DefaultDepthLimit int8 = 6

func (o Options) String() string {
	return fmt.Sprintf("{depth=%v}", o.DepthLimit)
}

func (o Options) depthLimit() int8 {
	if o.DepthLimit <= 0 {
		return DefaultDepthLimit
	}
	return o.DepthLimit
}

func (o Options) weights() eval.Weights {
	if o.Weights == (eval.Weights{}) {
		return eval.DefaultWeights
	}
	return o.Weights
}

// PV is one principal-variation report: the result of completing a single
// iterative-deepening iteration.
type PV struct {
	Depth   int8
	Score   board.Score
	BestPly *board.Ply
	Nodes   uint64
	Time    time.Duration
}

func (p PV) String() string {
	best := "none"
	if p.BestPly != nil {
		best = p.BestPly.String()
	}
	return fmt.Sprintf("depth=%v score=%v best=%v nodes=%v time=%v", p.Depth, p.Score, best, p.Nodes, p.Time)
}

// Engine wraps a Position with an async iterative-deepening search handle.
// It owns the Position exclusively between searches; Analyze forks off a
// goroutine that reports one PV per completed depth until Halt is called
// or the depth limit is reached.
type Engine struct {
	name, author string
	opts         Options

	pos    *board.Position
	active *handle
	mu     sync.Mutex
}

// Option is an engine creation option.
type Option func(*Engine)

// WithOptions sets default runtime options.
func WithOptions(opts Options) Option {
	return func(e *Engine) {
		e.opts = opts
	}
}

// New creates an engine starting from the standard opening position.
func New(ctx context.Context, name, author string, opts ...Option) *Engine {
	e := &Engine{name: name, author: author}
	for _, fn := range opts {
		fn(e)
	}

	_ = e.Reset(ctx, board.StandardOpening)

	logw.Infof(ctx, "Initialized engine: %v, options=%v", e.Name(), e.opts)
	return e
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the author.
func (e *Engine) Author() string {
	return e.author
}

// Position returns an ASCII rendering of the current position (see
// board.Position.String; inactive squares print as '.').
func (e *Engine) Position() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.pos.String()
}

// Reset resets the engine to the position described by the given ASCII
// fixture.
func (e *Engine) Reset(ctx context.Context, fixture string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	logw.Infof(ctx, "Reset %q, depth=%v", fixture, e.opts.depthLimit())

	_, _ = e.haltSearchIfActive(ctx)

	pos, err := board.NewPosition(fixture)
	if err != nil {
		return err
	}
	e.pos = pos

	logw.Infof(ctx, "New position: %v", e.pos)
	return nil
}

// Move resolves from and to (e.g. an opponent's move entered by a front-end)
// against the current legal plys and applies the match. Returns *board.
// IllegalPly if no legal ply has these coordinates.
func (e *Engine) Move(ctx context.Context, from, to board.BitIndex) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	_, _ = e.haltSearchIfActive(ctx)

	ply, err := e.pos.FindLegalPly(from, to)
	if err != nil {
		return err
	}
	e.pos.Make(ply)
	logw.Infof(ctx, "Move %v: %v", ply, e.pos)
	return nil
}

// Analyze launches an iterative-deepening search of the current position
// and returns a channel of PV reports, one per completed depth. The channel
// holds one report; a report not yet received when the next depth completes
// is replaced by the newer one. The channel is closed when the search ends.
func (e *Engine) Analyze(ctx context.Context) (<-chan PV, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	logw.Infof(ctx, "Analyze %v, opt=%v", e.pos, e.opts)

	if e.active != nil {
		return nil, fmt.Errorf("search already active")
	}

	out := make(chan PV, 1)
	h := &handle{init: make(chan struct{}), quit: make(chan struct{})}
	e.active = h

	go h.run(ctx, e.pos, e.opts.depthLimit(), e.opts.weights(), out)
	return out, nil
}

// Halt halts the active search and returns its last completed PV, if any.
func (e *Engine) Halt(ctx context.Context) (PV, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	logw.Infof(ctx, "Halt")

	pv, ok := e.haltSearchIfActive(ctx)
	if !ok {
		return PV{}, fmt.Errorf("no active search")
	}
	return pv, nil
}

func (e *Engine) haltSearchIfActive(ctx context.Context) (PV, bool) {
	if e.active != nil {
		pv := e.active.halt()
		logw.Infof(ctx, "Search %v halted: %v", e.pos, pv)

		e.active = nil
		return pv, true
	}
	return PV{}, false
}

// handle drives one iterative-deepening search in its own goroutine.
type handle struct {
	init, quit        chan struct{}
	initialized, done atomic.Bool

	pv PV
	mu sync.Mutex
}

func (h *handle) run(ctx context.Context, pos *board.Position, maxDepth int8, w eval.Weights, out chan PV) {
	defer h.markInitialized()
	defer close(out)

	for depth := int8(1); depth <= maxDepth && !h.done.Load(); depth++ {
		start := time.Now()

		result, nodes := search.AlphaBeta(pos, board.NegInf, board.Inf, int(depth), true, w)

		pv := PV{Depth: depth, Score: result.Score, BestPly: result.BestPly, Nodes: nodes, Time: time.Since(start)}
		logw.Debugf(ctx, "Searched %v: %v", pos, pv)

		h.mu.Lock()
		h.pv = pv
		h.mu.Unlock()

		select {
		case <-out:
		default:
		}
		out <- pv

		h.markInitialized()
		if pv.BestPly == nil {
			return
		}
	}
}

func (h *handle) halt() PV {
	<-h.init
	if h.done.CAS(false, true) {
		close(h.quit)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	return h.pv
}

func (h *handle) markInitialized() {
	if h.initialized.CAS(false, true) {
		close(h.init)
	}
}
