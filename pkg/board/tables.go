package board

import "sync"

// Tables holds the memoisation state shared across every clone of a
// Position: cached evaluations, cached quiescence scores, the principal
// variation table, en-prise masks, and threefold-repetition counts. A single
// mutex guards all of it -- per spec this is uncontended during a
// single-threaded search and only matters when a front-end clones a
// Position for a concurrent "look ahead without committing" probe.
type Tables struct {
	mu sync.Mutex

	eval       map[ZobristHash]Score
	quiescence map[ZobristHash]Score
	pv         map[ZobristHash]Ply
	enPrise    map[enPriseKey]BitBoard
	visited    map[ZobristHash]int
}

type enPriseKey struct {
	hash  ZobristHash
	color Color
}

// NewTables returns an empty, ready-to-use Tables.
func NewTables() *Tables {
	return &Tables{
		eval:       make(map[ZobristHash]Score),
		quiescence: make(map[ZobristHash]Score),
		pv:         make(map[ZobristHash]Ply),
		enPrise:    make(map[enPriseKey]BitBoard),
		visited:    make(map[ZobristHash]int),
	}
}

func (t *Tables) ReadEval(h ZobristHash) (Score, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.eval[h]
	return s, ok
}

func (t *Tables) WriteEval(h ZobristHash, s Score) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.eval[h] = s
}

func (t *Tables) ReadQuiescence(h ZobristHash) (Score, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.quiescence[h]
	return s, ok
}

func (t *Tables) WriteQuiescence(h ZobristHash, s Score) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.quiescence[h] = s
}

func (t *Tables) ReadPV(h ZobristHash) (Ply, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	p, ok := t.pv[h]
	return p, ok
}

func (t *Tables) WritePV(h ZobristHash, p Ply) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pv[h] = p
}

func (t *Tables) ReadEnPrise(h ZobristHash, c Color) (BitBoard, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	b, ok := t.enPrise[enPriseKey{h, c}]
	return b, ok
}

func (t *Tables) WriteEnPrise(h ZobristHash, c Color, b BitBoard) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.enPrise[enPriseKey{h, c}] = b
}

// VisitCount returns the current reference count for h: how many times it
// is present along the live make/unmake spine.
func (t *Tables) VisitCount(h ZobristHash) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.visited[h]
}

// IncrementVisit bumps h's visit count on make and returns the count
// observed before the bump -- a non-zero prior count means this hash is
// already on the live make/unmake path (used to set Position.checkCache).
func (t *Tables) IncrementVisit(h ZobristHash) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	was := t.visited[h]
	t.visited[h] = was + 1
	return was
}

// DecrementVisit undoes IncrementVisit on unmake. The threefold-repetition
// counter must be decremented on unmake or repetition detection becomes
// permanent.
func (t *Tables) DecrementVisit(h ZobristHash) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.visited[h]--
}
