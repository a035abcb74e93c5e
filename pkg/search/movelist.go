package search

import (
	"container/heap"
	"fmt"

	"github.com/gridchess/engine/pkg/board"
)

// PlyQueue is a max-priority queue of plys ordered by board.Ply.Priority():
// PV first, then captures by MVV-LVA, then non-captures by piece kind.
type PlyQueue struct {
	h plyHeap
}

// NewPlyQueue builds a queue from plys. If pv is non-nil and matches one of
// the plys (by moving piece, from, and to), that ply is marked as the
// principal variation so it sorts first.
func NewPlyQueue(plys []board.Ply, pv *board.Ply) *PlyQueue {
	h := make(plyHeap, len(plys))
	for i, p := range plys {
		if pv != nil && samePly(p, *pv) {
			p.PVMove = true
		}
		h[i] = p
	}
	heap.Init(&h)
	return &PlyQueue{h: h}
}

// Next pops and returns the highest-priority remaining ply.
func (q *PlyQueue) Next() (board.Ply, bool) {
	if q.h.Len() == 0 {
		return board.Ply{}, false
	}
	return heap.Pop(&q.h).(board.Ply), true
}

// Len returns the number of plys remaining in the queue.
func (q *PlyQueue) Len() int {
	return q.h.Len()
}

func (q *PlyQueue) String() string {
	if q.h.Len() == 0 {
		return "[size=0]"
	}
	return fmt.Sprintf("[top=%v, size=%v]", q.h[0], q.h.Len())
}

// samePly compares the identity of a move (moving piece, from, to) without
// regard to its PVMove or ordering metadata.
func samePly(a, b board.Ply) bool {
	return a.MovingPiece == b.MovingPiece && a.From == b.From && a.To == b.To
}

type plyHeap []board.Ply

func (h plyHeap) Len() int           { return len(h) }
func (h plyHeap) Less(i, j int) bool { return h[i].Priority() > h[j].Priority() }
func (h plyHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *plyHeap) Push(x interface{}) {
	*h = append(*h, x.(board.Ply))
}

func (h *plyHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
