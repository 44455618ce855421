package search

import "github.com/katalvlaran/stepsearch/pqueue"

// fringe is the container discipline of a tree search.
// pushAll receives successors in ascending id order.
type fringe interface {
	pushAll(recs []Record)
	pop() Record
	len() int
}

// fifo pushes at the back and pops from the front.
type fifo struct {
	items []Record
	head  int
}

func (f *fifo) pushAll(recs []Record) { f.items = append(f.items, recs...) }

func (f *fifo) pop() Record {
	r := f.items[f.head]
	f.items[f.head] = Record{}
	f.head++
	// compact once the consumed prefix dominates
	if f.head > 32 && f.head*2 > len(f.items) {
		f.items = append(f.items[:0], f.items[f.head:]...)
		f.head = 0
	}

	return r
}

func (f *fifo) len() int { return len(f.items) - f.head }

// lifo pushes successors in descending id order so the lowest id pops first.
type lifo struct {
	items []Record
}

func (l *lifo) pushAll(recs []Record) {
	for i := len(recs) - 1; i >= 0; i-- {
		l.items = append(l.items, recs[i])
	}
}

func (l *lifo) pop() Record {
	n := len(l.items) - 1
	r := l.items[n]
	l.items[n] = Record{}
	l.items = l.items[:n]

	return r
}

func (l *lifo) len() int { return len(l.items) }

// priority orders records by a key; ties pop in insertion order.
type priority struct {
	q   *pqueue.Queue[Record]
	key func(Record) int64
}

func newPriority(key func(Record) int64) *priority {
	return &priority{q: pqueue.New[Record](16), key: key}
}

func (p *priority) pushAll(recs []Record) {
	for _, r := range recs {
		p.q.Add(r, p.key(r))
	}
}

func (p *priority) pop() Record { return p.q.Pop() }

func (p *priority) len() int { return p.q.Len() }

// Priority keys.
func byCost(r Record) int64          { return r.Cost }
func byHeuristic(r Record) int64     { return r.Heuristic }
func byCostHeuristic(r Record) int64 { return r.Cost + r.Heuristic }

// newFringe returns the container for a single-direction strategy.
func newFringe(alg Algorithm) fringe {
	switch alg {
	case BreadthFirst:
		return &fifo{}
	case UniformCost:
		return newPriority(byCost)
	case Greedy:
		return newPriority(byHeuristic)
	case AStar:
		return newPriority(byCostHeuristic)
	default: // depth-first family
		return &lifo{}
	}
}
