package search

// Record is the per-traversal copy of a node held in a frontier.
//
// It copies the few node fields a strategy needs and adds the accumulated
// cost and ancestor chain. A Record never aliases graph storage: Path is
// always a fresh slice.
type Record struct {
	// ID is the underlying node id.
	ID int

	// Cost is the summed edge weight from the source.
	Cost int64

	// Heuristic is copied from the node when the record is built.
	Heuristic int64

	// Path lists ancestor ids from the source up to, excluding, ID.
	Path []int
}

// Depth is the length of the ancestor chain.
func (r Record) Depth() int { return len(r.Path) }

// Nodes returns Path followed by ID.
func (r Record) Nodes() []int {
	out := make([]int, 0, len(r.Path)+1)
	out = append(out, r.Path...)

	return append(out, r.ID)
}

// root builds the record of the source node.
func root(id int, heuristic int64) Record {
	return Record{ID: id, Heuristic: heuristic, Path: []int{}}
}

// child builds the record reached from r over an edge of the given weight.
func (r Record) child(id int, weight, heuristic int64) Record {
	path := make([]int, len(r.Path), len(r.Path)+1)
	copy(path, r.Path)

	return Record{
		ID:        id,
		Cost:      r.Cost + weight,
		Heuristic: heuristic,
		Path:      append(path, r.ID),
	}
}
